package analyzer

import (
	"strings"
	"unicode/utf8"

	"go-reviewlens/lexicon"
	"go-reviewlens/types"
)

const (
	negationBeforeRunes = 3
	negationAfterRunes  = 5
	expressionScore     = 2
)

// runeWindow returns the rune slice [start, end) of runes, clamped to bounds.
func runeWindow(runes []rune, start, end int) string {
	if start < 0 {
		start = 0
	}
	if end > len(runes) {
		end = len(runes)
	}
	if start >= end {
		return ""
	}
	return string(runes[start:end])
}

// JudgeSentiment scores a single sentence. Positive expressions are checked
// for a nearby negation marker (3 runes before, 5 after the first match) and
// count as negative when one is present. Negative expressions always count as
// negative. Each matched expression scores once, regardless of how often it
// occurs in the sentence.
func JudgeSentiment(sentence string) types.SentimentJudgement {
	runes := []rune(sentence)
	positiveScore := 0
	negativeScore := 0
	matchedPositive := []string{}
	matchedNegative := []string{}

	for _, expr := range lexicon.PositiveExpressions {
		byteIdx := strings.Index(sentence, expr)
		if byteIdx < 0 {
			continue
		}
		at := utf8.RuneCountInString(sentence[:byteIdx])
		exprLen := utf8.RuneCountInString(expr)
		after := runeWindow(runes, at+exprLen, at+exprLen+negationAfterRunes)
		before := runeWindow(runes, at-negationBeforeRunes, at)

		negated := false
		for _, marker := range lexicon.NegationMarkers {
			if strings.Contains(after, marker) || strings.Contains(before, marker) {
				negated = true
				break
			}
		}

		if negated {
			negativeScore += expressionScore
			matchedNegative = append(matchedNegative, expr+"(否定)")
		} else {
			positiveScore += expressionScore
			matchedPositive = append(matchedPositive, expr)
		}
	}

	for _, expr := range lexicon.NegativeExpressions {
		if strings.Contains(sentence, expr) {
			negativeScore += expressionScore
			matchedNegative = append(matchedNegative, expr)
		}
	}

	sentiment := "neutral"
	if positiveScore > negativeScore {
		sentiment = "positive"
	} else if negativeScore > positiveScore {
		sentiment = "negative"
	}

	return types.SentimentJudgement{
		Sentiment:       sentiment,
		PositiveScore:   positiveScore,
		NegativeScore:   negativeScore,
		MatchedPositive: matchedPositive,
		MatchedNegative: matchedNegative,
	}
}
