package sentiment

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"go-reviewlens/types"
)

func TestAnalyzeTextEmpty(t *testing.T) {
	got := AnalyzeText("   ")

	assert.Zero(t, got.Score)
	assert.Equal(t, "neutral", got.Label)
	assert.Empty(t, got.PositiveWords)
	assert.Empty(t, got.NegativeWords)
}

func TestAnalyzeTextPositive(t *testing.T) {
	got := AnalyzeText("最高の商品でした")

	assert.Equal(t, 3, got.Score)
	assert.Equal(t, "positive", got.Label)
	require.Len(t, got.PositiveWords, 1)
	assert.Equal(t, "最高", got.PositiveWords[0].Word)
	assert.Equal(t, 1, got.PositiveWords[0].Count)
}

func TestAnalyzeTextCountsOccurrences(t *testing.T) {
	got := AnalyzeText("便利です。とにかく便利")

	assert.Equal(t, 4, got.Score)
	require.Len(t, got.PositiveWords, 1)
	assert.Equal(t, 2, got.PositiveWords[0].Count)
}

func TestAnalyzeTextNegatedPositive(t *testing.T) {
	got := AnalyzeText("満足できない")

	assert.Equal(t, -2, got.Score)
	assert.Equal(t, "negative", got.Label)
	assert.Empty(t, got.PositiveWords)
	require.Len(t, got.NegativeWords, 1)
	assert.Equal(t, "満足（否定）", got.NegativeWords[0].Word)
}

func TestAnalyzeTextPrefixNegation(t *testing.T) {
	got := AnalyzeText("非常に不親切な対応")

	assert.Negative(t, got.Score)
	assert.Equal(t, "negative", got.Label)
}

func TestAnalyzeTextNegativeWords(t *testing.T) {
	got := AnalyzeText("すぐ壊れて最悪でした")

	assert.Equal(t, "negative", got.Label)
	words := make([]string, 0, len(got.NegativeWords))
	for _, w := range got.NegativeWords {
		words = append(words, w.Word)
	}
	assert.Contains(t, words, "最悪")
	assert.Contains(t, words, "すぐ壊れ")
}

func TestAnalyzeReviewsEmptyBatch(t *testing.T) {
	got := AnalyzeReviews(nil)

	assert.Zero(t, got.TotalCount)
	assert.Zero(t, got.AverageScore)
	assert.Empty(t, got.Reviews)
	assert.Equal(t, map[string]int{"1": 0, "2": 0, "3": 0, "4": 0, "5": 0}, got.RatingDistribution)
}

func TestAnalyzeReviewsBatch(t *testing.T) {
	reviews := []types.Review{
		{Text: "最高の商品でした", Rating: 5},
		{Text: "すぐ壊れて最悪でした", Rating: 1},
	}

	got := AnalyzeReviews(reviews)

	assert.Equal(t, 2, got.TotalCount)
	assert.Equal(t, 1, got.SentimentBreakdown.Positive)
	assert.Equal(t, 1, got.SentimentBreakdown.Negative)
	assert.Equal(t, 50, got.SentimentRatio.Positive)
	assert.Equal(t, 50, got.SentimentRatio.Negative)
	assert.Equal(t, 1, got.RatingDistribution["5"])
	assert.Equal(t, 1, got.RatingDistribution["1"])
	assert.NotEmpty(t, got.TopPositiveKeywords)
	assert.NotEmpty(t, got.TopNegativeKeywords)
}

func TestAnalyzeReviewsAverageScoreRounding(t *testing.T) {
	reviews := []types.Review{
		{Text: "最高の商品でした", Rating: 5}, // +3
		{Text: "便利です", Rating: 4},      // +2
		{Text: "昨日届きました", Rating: 3},   // 0
	}

	got := AnalyzeReviews(reviews)

	assert.InDelta(t, 1.67, got.AverageScore, 0.001)
}
