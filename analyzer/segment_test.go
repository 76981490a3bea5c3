package analyzer

import (
	"strings"
	"testing"
	"unicode/utf8"

	"github.com/stretchr/testify/assert"
)

func TestSplitSentencesBasic(t *testing.T) {
	text := "音質はとても良いです。デザインも気に入っています。"
	got := SplitSentences(text)

	assert.Equal(t, []string{"音質はとても良いです。", "デザインも気に入っています。"}, got)
}

func TestSplitSentencesKeepsPunctuation(t *testing.T) {
	got := SplitSentences("バッテリーがすぐ切れます！最悪でした！！")

	assert.Len(t, got, 2)
	assert.True(t, strings.HasSuffix(got[0], "！"))
	assert.True(t, strings.HasSuffix(got[1], "！！"))
}

func TestSplitSentencesDiscardsShortFragments(t *testing.T) {
	cases := []struct {
		name string
		text string
		want int
	}{
		{"empty", "", 0},
		{"five runes dropped", "良いです。", 0},
		{"six runes kept", "良いですよ。", 1},
		{"punctuation only", "。。。！？", 0},
	}

	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			assert.Len(t, SplitSentences(tc.text), tc.want)
		})
	}
}

func TestSplitSentencesLengthFloor(t *testing.T) {
	text := "音質が良い。最高！バッテリーの持ちは悪いです。うん。"
	for _, s := range SplitSentences(text) {
		assert.GreaterOrEqual(t, utf8.RuneCountInString(s), 6, "fragment %q below floor", s)
	}
}

func TestSplitSentencesNewlines(t *testing.T) {
	text := "音質はとても良いです\n\nデザインも気に入っています"
	got := SplitSentences(text)

	assert.Equal(t, []string{"音質はとても良いです", "デザインも気に入っています"}, got)
}

func TestSplitSentencesLongSentenceConjunction(t *testing.T) {
	text := "音質はとても気に入っていますが、バッテリーの持ちが悪くてすぐに充電が必要になります。"
	got := SplitSentences(text)

	assert.Len(t, got, 2)
	assert.True(t, strings.HasSuffix(got[0], "ますが、"))
	assert.True(t, strings.HasSuffix(got[1], "。"))
}

func TestSplitSentencesShortSentenceNotRefined(t *testing.T) {
	// under the length threshold, the conjunction stays inside one sentence
	text := "良い音だけど、少し高いです。"
	got := SplitSentences(text)

	assert.Equal(t, []string{"良い音だけど、少し高いです。"}, got)
}
