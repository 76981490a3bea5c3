package report

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"go-reviewlens/store"
	"go-reviewlens/types"
)

func sampleRun() *store.AnalysisRun {
	s := store.New()
	products := []types.ProductInfo{
		{Name: "Aイヤホン Pro", Price: 4980},
		{Name: "Bイヤホン Lite", Price: 3280},
	}
	analyses := []types.ProductAnalysisEntry{
		{
			ProductInfo: products[0],
			Analysis: types.ProductAnalysis{
				TotalReviews:  10,
				AverageRating: 3.8,
				AspectMatrix: []types.AspectMatrixEntry{
					{Aspect: "音質", PositiveCount: 5, NegativeCount: 1},
					{Aspect: "耐久性", PositiveCount: 0, NegativeCount: 4},
				},
				TopNegativeSentences: []types.Factor{
					{Sentence: "バッテリーが持たない", Aspect: "耐久性", Count: 4},
				},
			},
		},
		{
			ProductInfo: products[1],
			Analysis:    types.ProductAnalysis{TotalReviews: 8, AverageRating: 4.0},
		},
	}
	summary := types.CrossSummary{
		Category:     "イヤホン",
		PriceRange:   types.PriceRange{Min: 3280, Max: 4980},
		ProductCount: 2,
		TotalReviews: 18,
		NegativeFactors: []types.CrossFactor{
			{Sentence: "バッテリーが持たない", Aspect: "耐久性", TotalCount: 4, Products: []string{"Aイヤホン Pro", "Bイヤホン Lite"}},
		},
		DifferentiationHints: []types.DifferentiationHint{
			{Hint: "耐久性の改善が差別化ポイント", Reason: "2商品中2商品で共通の不満。ここを解決すれば優位に立てる", Aspect: "耐久性", ImpactScore: 24},
		},
		ComparisonTable: []types.ComparisonRow{
			{ProductName: "Aイヤホン Pro", Price: 4980, Rating: 3.8, ReviewCount: 10, Aspects: map[string]string{"音質": "positive", "耐久性": "negative"}},
			{ProductName: "Bイヤホン Lite", Price: 3280, Rating: 4.0, ReviewCount: 8, Aspects: map[string]string{}},
		},
	}
	return s.Save(products, analyses, summary)
}

func TestGenerateCSVNilRun(t *testing.T) {
	assert.Empty(t, GenerateCSV(nil))
}

func TestGenerateCSV(t *testing.T) {
	csv := GenerateCSV(sampleRun())

	assert.True(t, strings.HasPrefix(csv, "\uFEFF"), "missing BOM")
	assert.Contains(t, csv, "=== クロス商品サマリ ===")
	assert.Contains(t, csv, "カテゴリ,イヤホン")
	assert.Contains(t, csv, "価格帯,¥3,280〜¥4,980")
	assert.Contains(t, csv, "=== 評価が下がる要因 ===")
	assert.Contains(t, csv, "バッテリーが持たない")
	assert.Contains(t, csv, "=== 個別分析: Aイヤホン Pro ===")
	assert.Contains(t, csv, "平均評価,3.8")
	assert.Contains(t, csv, "😠悪い")
}

func TestGenerateCSVEscaping(t *testing.T) {
	assert.Equal(t, `"a,b"`, csvEscape("a,b"))
	assert.Equal(t, `"say ""hi"""`, csvEscape(`say "hi"`))
	assert.Equal(t, "plain", csvEscape("plain"))
}

func TestGenerateCSVQuotesCommaProductHeader(t *testing.T) {
	s := store.New()
	products := []types.ProductInfo{{Name: "イヤホン A, Gen2", Price: 1980}}
	analyses := []types.ProductAnalysisEntry{
		{ProductInfo: products[0], Analysis: types.ProductAnalysis{TotalReviews: 1, AverageRating: 5}},
	}
	run := s.Save(products, analyses, types.CrossSummary{ProductCount: 1})

	csv := GenerateCSV(run)
	assert.Contains(t, csv, "\"=== 個別分析: イヤホン A, Gen2 ===\"\r\n")
}

func TestFormatPrice(t *testing.T) {
	cases := map[int]string{
		0:       "0",
		980:     "980",
		4980:    "4,980",
		1234567: "1,234,567",
	}
	for in, want := range cases {
		assert.Equal(t, want, formatPrice(in))
	}
}

func TestGeneratePrintableHTML(t *testing.T) {
	html, err := GeneratePrintableHTML(sampleRun())
	require.NoError(t, err)

	assert.Contains(t, html, "商品レビュー分析レポート")
	assert.Contains(t, html, "カテゴリ: イヤホン")
	assert.Contains(t, html, "耐久性の改善が差別化ポイント")
	assert.Contains(t, html, "Aイヤホン Pro")
	assert.Contains(t, html, "page-break")
}

func TestGeneratePrintableHTMLNilRun(t *testing.T) {
	html, err := GeneratePrintableHTML(nil)
	require.NoError(t, err)
	assert.Contains(t, html, "分析データがありません")
}
