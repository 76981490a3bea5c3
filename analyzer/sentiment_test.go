package analyzer

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestJudgeSentimentPositive(t *testing.T) {
	got := JudgeSentiment("音が良い")

	assert.Equal(t, "positive", got.Sentiment)
	assert.Contains(t, got.MatchedPositive, "良い")
	assert.Empty(t, got.MatchedNegative)
}

func TestJudgeSentimentNegatedPositive(t *testing.T) {
	got := JudgeSentiment("音が良くない")

	assert.Equal(t, "negative", got.Sentiment)
	assert.Contains(t, got.MatchedNegative, "良く(否定)")
}

func TestJudgeSentimentNegativeExpression(t *testing.T) {
	got := JudgeSentiment("接続がすぐ切れて最悪です")

	assert.Equal(t, "negative", got.Sentiment)
	assert.Contains(t, got.MatchedNegative, "最悪")
	assert.Contains(t, got.MatchedNegative, "切れ")
}

func TestJudgeSentimentNeutral(t *testing.T) {
	got := JudgeSentiment("昨日届きました")

	assert.Equal(t, "neutral", got.Sentiment)
	assert.Zero(t, got.PositiveScore)
	assert.Zero(t, got.NegativeScore)
}

func TestJudgeSentimentMixed(t *testing.T) {
	// one positive and one negative expression cancel out
	got := JudgeSentiment("音は良いが値段が高い")

	assert.Equal(t, got.PositiveScore, got.NegativeScore)
	assert.Equal(t, "neutral", got.Sentiment)
}

func TestJudgeSentimentScoresOncePerExpression(t *testing.T) {
	got := JudgeSentiment("良い、良い、良い")

	assert.Equal(t, 2, got.PositiveScore)
}
