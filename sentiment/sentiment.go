// Package sentiment scores whole review texts against a weighted keyword
// dictionary. It is coarser than the per-sentence judge in the analyzer
// package and is meant for quick standalone scoring of raw reviews.
package sentiment

import (
	"math"
	"sort"
	"strconv"
	"strings"

	"go-reviewlens/types"
)

const (
	positiveLabelFloor  = 2
	negatedWindowAfter  = 10
	negatedWindowBefore = 5
	topKeywordCap       = 15
)

// AnalyzeText scores one text. Every dictionary hit contributes its weight
// once per occurrence; a negated positive word flips to a single negative
// contribution instead.
func AnalyzeText(text string) types.TextScore {
	result := types.TextScore{Label: "neutral"}
	if strings.TrimSpace(text) == "" {
		return result
	}

	score := 0
	for _, w := range positiveWords {
		count := strings.Count(text, w.Word)
		if count == 0 {
			continue
		}
		if isNegated(text, w.Word) {
			score -= w.Score
			result.NegativeWords = append(result.NegativeWords, types.WordHit{
				Word:  w.Word + "（否定）",
				Score: -w.Score,
			})
		} else {
			score += w.Score * count
			result.PositiveWords = append(result.PositiveWords, types.WordHit{
				Word:  w.Word,
				Score: w.Score,
				Count: count,
			})
		}
	}
	for _, w := range negativeWords {
		count := strings.Count(text, w.Word)
		if count == 0 {
			continue
		}
		score += w.Score * count
		result.NegativeWords = append(result.NegativeWords, types.WordHit{
			Word:  w.Word,
			Score: w.Score,
			Count: count,
		})
	}

	result.Score = score
	if score >= positiveLabelFloor {
		result.Label = "positive"
	} else if score <= -positiveLabelFloor {
		result.Label = "negative"
	}
	return result
}

// isNegated reports whether the first occurrence of word is followed by a
// negation suffix within 10 runes, or preceded by 不/非 within 5 runes.
func isNegated(text, word string) bool {
	byteIdx := strings.Index(text, word)
	if byteIdx < 0 {
		return false
	}
	runes := []rune(text)
	idx := len([]rune(text[:byteIdx]))
	wordLen := len([]rune(word))

	afterEnd := idx + wordLen + negatedWindowAfter
	if afterEnd > len(runes) {
		afterEnd = len(runes)
	}
	after := string(runes[idx+wordLen : afterEnd])
	for _, neg := range negationWords {
		if strings.Contains(after, neg) {
			return true
		}
	}

	beforeStart := idx - negatedWindowBefore
	if beforeStart < 0 {
		beforeStart = 0
	}
	before := string(runes[beforeStart:idx])
	return strings.Contains(before, "不") || strings.Contains(before, "非")
}

// AnalyzeReviews scores a batch of reviews and rolls up sentiment ratios,
// rating distribution and the 15 most frequent keywords per polarity.
func AnalyzeReviews(reviews []types.Review) types.BatchScore {
	result := types.BatchScore{
		RatingDistribution: map[string]int{"1": 0, "2": 0, "3": 0, "4": 0, "5": 0},
	}
	if len(reviews) == 0 {
		return result
	}

	scoreSum := 0
	for _, review := range reviews {
		scored := types.ScoredReview{Review: review, Sentiment: AnalyzeText(review.Text)}
		result.Reviews = append(result.Reviews, scored)
		scoreSum += scored.Sentiment.Score

		switch scored.Sentiment.Label {
		case "positive":
			result.SentimentBreakdown.Positive++
		case "negative":
			result.SentimentBreakdown.Negative++
		default:
			result.SentimentBreakdown.Neutral++
		}

		r := int(math.Round(review.Rating))
		if r >= 1 && r <= 5 {
			result.RatingDistribution[strconv.Itoa(r)]++
		}
	}

	total := len(reviews)
	result.TotalCount = total
	result.SentimentRatio = types.SentimentRatio{
		Positive: int(math.Round(float64(result.SentimentBreakdown.Positive) / float64(total) * 100)),
		Negative: int(math.Round(float64(result.SentimentBreakdown.Negative) / float64(total) * 100)),
		Neutral:  int(math.Round(float64(result.SentimentBreakdown.Neutral) / float64(total) * 100)),
	}
	result.AverageScore = math.Round(float64(scoreSum)/float64(total)*100) / 100

	result.TopPositiveKeywords = topKeywords(result.Reviews, true)
	result.TopNegativeKeywords = topKeywords(result.Reviews, false)
	return result
}

// topKeywords tallies word hits across the batch in first-seen order, then
// ranks by count.
func topKeywords(reviews []types.ScoredReview, positive bool) []types.KeywordCount {
	index := make(map[string]int)
	var tally []types.KeywordCount

	for _, r := range reviews {
		hits := r.Sentiment.PositiveWords
		if !positive {
			hits = r.Sentiment.NegativeWords
		}
		for _, hit := range hits {
			count := hit.Count
			if count == 0 {
				count = 1
			}
			if i, ok := index[hit.Word]; ok {
				tally[i].Count += count
			} else {
				index[hit.Word] = len(tally)
				tally = append(tally, types.KeywordCount{Word: hit.Word, Count: count})
			}
		}
	}

	sort.SliceStable(tally, func(i, j int) bool { return tally[i].Count > tally[j].Count })
	if len(tally) > topKeywordCap {
		tally = tally[:topKeywordCap]
	}
	return tally
}
