// Package report renders a stored analysis run as a BOM-prefixed CSV export
// and as a printable HTML report.
package report

import (
	"fmt"
	"strconv"
	"strings"

	"go-reviewlens/store"
	"go-reviewlens/types"
)

const rankingRows = 5

var verdictLabels = map[string]string{
	"positive": "😊良い",
	"negative": "😠悪い",
	"neutral":  "😐普通",
}

// GenerateCSV renders the run as sectioned CSV. The leading BOM keeps Excel
// from mangling the Japanese text.
func GenerateCSV(run *store.AnalysisRun) string {
	if run == nil {
		return ""
	}
	summary := run.Summary

	var b strings.Builder
	b.WriteString("\uFEFF")
	row := func(cells ...string) {
		b.WriteString(strings.Join(cells, ","))
		b.WriteString("\r\n")
	}

	row("=== クロス商品サマリ ===")
	row("カテゴリ", csvEscape(summary.Category))
	row("価格帯", fmt.Sprintf("¥%s〜¥%s", formatPrice(summary.PriceRange.Min), formatPrice(summary.PriceRange.Max)))
	row("分析商品数", strconv.Itoa(summary.ProductCount))
	row("総レビュー数", strconv.Itoa(summary.TotalReviews))
	row()

	writeFactorSection(&b, "=== 評価が上がる要因 ===", summary.PositiveFactors)
	writeFactorSection(&b, "=== 評価が下がる要因 ===", summary.NegativeFactors)

	row("=== 差別化のヒント ===")
	row("ヒント", "理由", "関連する不満", "関連する要望")
	for _, h := range summary.DifferentiationHints {
		row(csvEscape(h.Hint), csvEscape(h.Reason), csvEscape(h.RelatedNegative), csvEscape(h.RelatedRequest))
	}
	row()

	row("=== 商品間比較 ===")
	names := make([]string, 0, len(summary.ComparisonTable))
	prices := make([]string, 0, len(summary.ComparisonTable))
	ratings := make([]string, 0, len(summary.ComparisonTable))
	counts := make([]string, 0, len(summary.ComparisonTable))
	for _, p := range summary.ComparisonTable {
		names = append(names, csvEscape(p.ProductName))
		prices = append(prices, "¥"+formatPrice(p.Price))
		ratings = append(ratings, formatRating(p.Rating))
		counts = append(counts, strconv.Itoa(p.ReviewCount))
	}
	row(append([]string{"項目"}, names...)...)
	row(append([]string{"価格"}, prices...)...)
	row(append([]string{"評価"}, ratings...)...)
	row(append([]string{"レビュー数"}, counts...)...)
	for _, aspect := range aspectOrder(run.Analyses) {
		cells := []string{csvEscape(aspect)}
		for _, p := range summary.ComparisonTable {
			verdict := p.Aspects[aspect]
			if verdict == "" {
				verdict = "neutral"
			}
			cells = append(cells, verdictLabels[verdict])
		}
		row(cells...)
	}
	row()

	for i, pa := range run.Analyses {
		name := pa.ProductInfo.Name
		if name == "" {
			name = fmt.Sprintf("商品%d", i+1)
		}
		row(csvEscape(fmt.Sprintf("=== 個別分析: %s ===", name)))
		row("レビュー数", strconv.Itoa(pa.Analysis.TotalReviews))
		row("平均評価", formatRating(pa.Analysis.AverageRating))
		row("ポジティブ文", strconv.Itoa(pa.Analysis.SentimentBreakdown.Positive))
		row("ネガティブ文", strconv.Itoa(pa.Analysis.SentimentBreakdown.Negative))
		row("ニュートラル文", strconv.Itoa(pa.Analysis.SentimentBreakdown.Neutral))
		row()

		row("アスペクト別評価:")
		row("アスペクト", "ポジティブ", "ネガティブ")
		for _, a := range pa.Analysis.AspectMatrix {
			row(csvEscape(a.Aspect), strconv.Itoa(a.PositiveCount), strconv.Itoa(a.NegativeCount))
		}
		row()

		row("ネガティブランキング:")
		writeRankingRows(&b, pa.Analysis.TopNegativeSentences)
		row()

		row("ポジティブランキング:")
		writeRankingRows(&b, pa.Analysis.TopPositiveSentences)
		row()
	}

	return b.String()
}

func writeFactorSection(b *strings.Builder, header string, factors []types.CrossFactor) {
	b.WriteString(header + "\r\n")
	b.WriteString("順位,要因,アスペクト,件数,商品数,対象商品\r\n")
	for i, f := range factors {
		b.WriteString(fmt.Sprintf("%d,%s,%s,%d,%d,%s\r\n",
			i+1, csvEscape(f.Sentence), csvEscape(f.Aspect), f.TotalCount, len(f.Products),
			csvEscape(strings.Join(f.Products, " / "))))
	}
	b.WriteString("\r\n")
}

func writeRankingRows(b *strings.Builder, factors []types.Factor) {
	for i, f := range factors {
		if i >= rankingRows {
			break
		}
		b.WriteString(fmt.Sprintf("%d,%s,%s,%d件\r\n", i+1, csvEscape(f.Sentence), csvEscape(f.Aspect), f.Count))
	}
}

// aspectOrder unions aspects across all products in first-seen matrix order,
// so every export lists rows the same way.
func aspectOrder(analyses []types.ProductAnalysisEntry) []string {
	seen := make(map[string]struct{})
	var order []string
	for _, pa := range analyses {
		for _, a := range pa.Analysis.AspectMatrix {
			if _, ok := seen[a.Aspect]; ok {
				continue
			}
			seen[a.Aspect] = struct{}{}
			order = append(order, a.Aspect)
		}
	}
	return order
}

func csvEscape(s string) string {
	if strings.ContainsAny(s, ",\"\n") {
		return `"` + strings.ReplaceAll(s, `"`, `""`) + `"`
	}
	return s
}

// formatPrice renders a yen amount with thousands separators.
func formatPrice(n int) string {
	s := strconv.Itoa(n)
	if len(s) <= 3 {
		return s
	}
	var b strings.Builder
	lead := len(s) % 3
	if lead > 0 {
		b.WriteString(s[:lead])
	}
	for i := lead; i < len(s); i += 3 {
		if b.Len() > 0 {
			b.WriteByte(',')
		}
		b.WriteString(s[i : i+3])
	}
	return b.String()
}

func formatRating(r float64) string {
	return strconv.FormatFloat(r, 'f', 1, 64)
}
