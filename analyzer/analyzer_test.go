package analyzer

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"go-reviewlens/types"
)

func TestAnalyzeReviewSentences(t *testing.T) {
	review := types.Review{
		Text:   "音質はとても良いです。バッテリーの持ちが悪いです。",
		Rating: 3,
		Title:  "一長一短",
	}

	got := AnalyzeReviewSentences(review, 7)

	require.Len(t, got, 2)
	assert.Equal(t, "音質", got[0].Aspect)
	assert.Equal(t, "positive", got[0].Sentiment)
	assert.Equal(t, "耐久性", got[1].Aspect)
	assert.Equal(t, "negative", got[1].Sentiment)
	for _, s := range got {
		assert.Equal(t, 7, s.SourceReview.ReviewIndex)
		assert.Equal(t, 3.0, s.SourceReview.Rating)
		assert.Equal(t, "一長一短", s.SourceReview.Title)
	}
}

func TestAnalyzeReviewsEmpty(t *testing.T) {
	got := AnalyzeReviews(nil)

	assert.Zero(t, got.TotalReviews)
	assert.Zero(t, got.TotalSentences)
	assert.Zero(t, got.AverageRating)
	assert.Empty(t, got.AspectMatrix)
	assert.Empty(t, got.TopNegativeSentences)
	assert.Empty(t, got.ImprovementRequests)
	assert.Equal(t, map[string]int{"1": 0, "2": 0, "3": 0, "4": 0, "5": 0}, got.RatingDistribution)
}

func TestAnalyzeReviewsAverageRatingRounding(t *testing.T) {
	reviews := []types.Review{
		{Text: "音質はとても良いです。", Rating: 4},
		{Text: "デザインが気に入っています。", Rating: 4},
		{Text: "バッテリーの持ちが悪いです。", Rating: 5},
	}

	got := AnalyzeReviews(reviews)

	assert.Equal(t, 4.3, got.AverageRating)
}

func TestAnalyzeReviewsRatingDistributionExcludesOutOfRange(t *testing.T) {
	reviews := []types.Review{
		{Text: "音質はとても良いです。", Rating: 4},
		{Text: "デザインが気に入っています。", Rating: 0},
	}

	got := AnalyzeReviews(reviews)

	assert.Equal(t, 2, got.TotalReviews)
	assert.Equal(t, 1, got.RatingDistribution["4"])
	total := 0
	for _, n := range got.RatingDistribution {
		total += n
	}
	assert.Equal(t, 1, total)
}

func TestAnalyzeReviewsAspectMatrixExcludesOtherWithoutSubject(t *testing.T) {
	reviews := []types.Review{
		{Text: "すごく気に入りました。", Rating: 5},
	}

	got := AnalyzeReviews(reviews)

	assert.Equal(t, 1, got.TotalSentences)
	assert.Equal(t, 1, got.SentimentBreakdown.Positive)
	assert.Empty(t, got.AspectMatrix)
}

func TestAnalyzeReviewsAspectMatrixSortedByVolume(t *testing.T) {
	reviews := []types.Review{
		{Text: "音質はとても良いです。音がクリアで最高です。デザインも気に入っています。", Rating: 5},
	}

	got := AnalyzeReviews(reviews)

	require.NotEmpty(t, got.AspectMatrix)
	assert.Equal(t, "音質", got.AspectMatrix[0].Aspect)
	assert.Equal(t, 2, got.AspectMatrix[0].PositiveCount)
}

func TestAnalyzeReviewsDeterministic(t *testing.T) {
	reviews := []types.Review{
		{Text: "音質はとても良いです。バッテリーが持たないです。", Rating: 3},
		{Text: "デザインは気に入っています。もう少し安ければいいのに。", Rating: 4},
		{Text: "バッテリーが持たない。操作が分かりにくいです。", Rating: 2},
	}

	first := AnalyzeReviews(reviews)
	second := AnalyzeReviews(reviews)

	assert.Equal(t, first, second)
}

func TestAnalyzeReviewsCollectsImprovementRequests(t *testing.T) {
	reviews := []types.Review{
		{Text: "バッテリーをもう少し改善してほしいです。", Rating: 2},
	}

	got := AnalyzeReviews(reviews)

	require.Len(t, got.ImprovementRequests, 1)
	assert.Equal(t, "耐久性", got.ImprovementRequests[0].Aspect)
	assert.Equal(t, 1, got.ImprovementRequests[0].Count)
}
