package aggregation

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"go-reviewlens/analyzer"
	"go-reviewlens/types"
)

func entryWithMatrix(name string, matrix []types.AspectMatrixEntry) types.ProductAnalysisEntry {
	return types.ProductAnalysisEntry{
		ProductInfo: types.ProductInfo{Name: name, Price: 1000},
		Analysis:    types.ProductAnalysis{AspectMatrix: matrix},
	}
}

func TestComparisonTableThresholds(t *testing.T) {
	cases := []struct {
		name     string
		positive int
		negative int
		want     string
	}{
		{"clear positive", 4, 2, "positive"},
		{"not strictly greater", 3, 2, "neutral"},
		{"clear negative", 2, 4, "negative"},
		{"no data", 0, 0, "neutral"},
	}

	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			entry := entryWithMatrix("テスト商品", []types.AspectMatrixEntry{
				{Aspect: "音質", PositiveCount: tc.positive, NegativeCount: tc.negative},
			})

			summary := GenerateCrossSummary([]types.ProductAnalysisEntry{entry})

			require.Len(t, summary.ComparisonTable, 1)
			assert.Equal(t, tc.want, summary.ComparisonTable[0].Aspects["音質"])
		})
	}
}

func TestCategoryInference(t *testing.T) {
	entries := []types.ProductAnalysisEntry{
		entryWithMatrix("Aイヤホン Pro", nil),
		entryWithMatrix("Bイヤホン Lite", nil),
		entryWithMatrix("Cイヤホン X", nil),
	}

	summary := GenerateCrossSummary(entries)

	assert.Contains(t, summary.Category, "イヤホン")
}

func TestCategoryUnknownWhenNothingShared(t *testing.T) {
	entries := []types.ProductAnalysisEntry{
		entryWithMatrix("加湿器デラックス", nil),
		entryWithMatrix("ウクレレ入門セット", nil),
	}

	summary := GenerateCrossSummary(entries)

	assert.Equal(t, "不明", summary.Category)
}

func TestSingleProductCategoryIsItsName(t *testing.T) {
	entries := []types.ProductAnalysisEntry{
		entryWithMatrix("ワイヤレスイヤホン", nil),
	}

	summary := GenerateCrossSummary(entries)

	assert.Equal(t, "ワイヤレスイヤホン", summary.Category)
}

func TestPriceRangeIgnoresUnpriced(t *testing.T) {
	entries := []types.ProductAnalysisEntry{
		{ProductInfo: types.ProductInfo{Name: "A", Price: 3000}},
		{ProductInfo: types.ProductInfo{Name: "B", Price: 0}},
		{ProductInfo: types.ProductInfo{Name: "C", Price: 5000}},
	}

	summary := GenerateCrossSummary(entries)

	assert.Equal(t, 3000, summary.PriceRange.Min)
	assert.Equal(t, 5000, summary.PriceRange.Max)
}

func TestGenerateCrossSummaryEmpty(t *testing.T) {
	summary := GenerateCrossSummary(nil)

	assert.Equal(t, "不明", summary.Category)
	assert.Zero(t, summary.ProductCount)
	assert.Zero(t, summary.TotalReviews)
	assert.Empty(t, summary.NegativeFactors)
	assert.Empty(t, summary.DifferentiationHints)
	assert.Empty(t, summary.ComparisonTable)
}

func TestGenerateCrossSummaryDeterministic(t *testing.T) {
	reviewSets := [][]types.Review{
		{
			{Text: "音質はとても良いです。バッテリーが持たないです。", Rating: 3},
			{Text: "配送がとても早かったです。", Rating: 5},
		},
		{
			{Text: "バッテリーが持たない。", Rating: 2},
			{Text: "もう少し安ければいいのに。", Rating: 3},
		},
	}
	names := []string{"Aイヤホン Pro", "Bイヤホン Lite"}

	build := func() types.CrossSummary {
		entries := make([]types.ProductAnalysisEntry, len(reviewSets))
		for i, reviews := range reviewSets {
			entries[i] = types.ProductAnalysisEntry{
				ProductInfo: types.ProductInfo{Name: names[i], Price: 3000 + i*500},
				Analysis:    analyzer.AnalyzeReviews(reviews),
			}
		}
		return GenerateCrossSummary(entries)
	}

	assert.Equal(t, build(), build())
}

func TestSharedBatteryComplaintAcrossThreeProducts(t *testing.T) {
	reviewSets := [][]types.Review{
		{
			{Text: "バッテリーが持たないです。", Rating: 2},
			{Text: "デザインは気に入っています。", Rating: 4},
		},
		{
			{Text: "バッテリーが持たない。", Rating: 1},
			{Text: "音質はとても良いです。", Rating: 4},
		},
		{
			{Text: "バッテリーが持たないでした。", Rating: 2},
			{Text: "配送がとても早かったです。", Rating: 5},
		},
	}
	names := []string{"Aイヤホン Pro", "Bイヤホン Lite", "Cイヤホン X"}

	entries := make([]types.ProductAnalysisEntry, len(reviewSets))
	for i, reviews := range reviewSets {
		entries[i] = types.ProductAnalysisEntry{
			ProductInfo: types.ProductInfo{Name: names[i], Price: 4000 + i*500},
			Analysis:    analyzer.AnalyzeReviews(reviews),
		}
	}

	summary := GenerateCrossSummary(entries)

	require.NotEmpty(t, summary.NegativeFactors)
	battery := summary.NegativeFactors[0]
	assert.Equal(t, "耐久性", battery.Aspect)
	assert.Len(t, battery.Products, 3)
	assert.Equal(t, 3, battery.TotalCount)

	require.NotEmpty(t, summary.DifferentiationHints)
	hint := summary.DifferentiationHints[0]
	assert.Equal(t, "耐久性", hint.Aspect)
	assert.Contains(t, hint.Hint, "耐久性")
	assert.Equal(t, battery.Sentence, hint.RelatedNegative)
}
