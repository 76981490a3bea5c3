// Package aggregation merges per-product analyses into a cross-product
// summary: shared positive and negative factors, common improvement requests,
// differentiation hints and a side-by-side comparison table.
package aggregation

import (
	"fmt"
	"regexp"
	"sort"

	"go-reviewlens/types"
)

const (
	factorCap      = 8
	requestCap     = 8
	hintCap        = 5
	normalizeRunes = 20
	sharedProducts = 2
)

var (
	crossPunctRe  = regexp.MustCompile(`[。！？!?\s、,]`)
	crossEndingRe = regexp.MustCompile(`です|ます|ました|でした|だった`)
	katakanaRunRe = regexp.MustCompile(`[ァ-ヶー]+`)
	alnumRunRe    = regexp.MustCompile(`[a-zA-Z0-9]+`)
	kanjiRunRe    = regexp.MustCompile(`[一-龥]+`)
)

// GenerateCrossSummary merges the analyses of several products into one
// category-level view. Factor and request lists are built over the full data
// and only capped at the end so hints see everything.
func GenerateCrossSummary(productAnalyses []types.ProductAnalysisEntry) types.CrossSummary {
	products := make([]types.ProductInfo, 0, len(productAnalyses))
	totalReviews := 0
	for _, pa := range productAnalyses {
		products = append(products, pa.ProductInfo)
		totalReviews += pa.Analysis.TotalReviews
	}

	category, priceRange := estimateCategoryAndPriceRange(products)

	positiveFactors := aggregateFactors(productAnalyses, "positive")
	negativeFactors := aggregateFactors(productAnalyses, "negative")
	allRequests := aggregateRequests(productAnalyses)
	hints := generateHints(negativeFactors, allRequests)

	return types.CrossSummary{
		Category:             category,
		PriceRange:           priceRange,
		ProductCount:         len(products),
		TotalReviews:         totalReviews,
		PositiveFactors:      capFactors(positiveFactors, factorCap),
		NegativeFactors:      capFactors(negativeFactors, factorCap),
		DifferentiationHints: capHints(hints, hintCap),
		ImprovementRequests:  capFactors(allRequests, requestCap),
		ComparisonTable:      buildComparisonTable(productAnalyses),
	}
}

// estimateCategoryAndPriceRange guesses the category from keywords shared
// across product names and takes the price range over priced products.
func estimateCategoryAndPriceRange(products []types.ProductInfo) (string, types.PriceRange) {
	var priceRange types.PriceRange
	first := true
	for _, p := range products {
		if p.Price <= 0 {
			continue
		}
		if first || p.Price < priceRange.Min {
			priceRange.Min = p.Price
		}
		if first || p.Price > priceRange.Max {
			priceRange.Max = p.Price
		}
		first = false
	}

	names := make([]string, 0, len(products))
	for _, p := range products {
		names = append(names, p.Name)
	}
	common := findCommonKeywords(names)
	if len(common) == 0 {
		return "不明", priceRange
	}
	category := common[0]
	for _, w := range common[1:] {
		category += " " + w
	}
	return category, priceRange
}

// findCommonKeywords tokenizes product names into katakana, alphanumeric and
// kanji runs and keeps the tokens shared by at least half the names. A single
// name is its own category.
func findCommonKeywords(names []string) []string {
	if len(names) < 2 {
		return names
	}

	counts := make(map[string]int)
	var order []string
	for _, name := range names {
		seen := make(map[string]struct{})
		for _, re := range []*regexp.Regexp{katakanaRunRe, alnumRunRe, kanjiRunRe} {
			for _, t := range re.FindAllString(name, -1) {
				if len([]rune(t)) < 2 {
					continue
				}
				if _, ok := seen[t]; ok {
					continue
				}
				seen[t] = struct{}{}
				if counts[t] == 0 {
					order = append(order, t)
				}
				counts[t]++
			}
		}
	}

	threshold := len(names) / 2
	if threshold < 2 {
		threshold = 2
	}
	var common []string
	for _, t := range order {
		if counts[t] >= threshold {
			common = append(common, t)
		}
	}
	sort.SliceStable(common, func(i, j int) bool { return counts[common[i]] > counts[common[j]] })
	if len(common) > 3 {
		common = common[:3]
	}
	return common
}

type crossFactorMap struct {
	index map[string]*types.CrossFactor
	order []*types.CrossFactor
}

func newCrossFactorMap() *crossFactorMap {
	return &crossFactorMap{index: make(map[string]*types.CrossFactor)}
}

func (m *crossFactorMap) add(factor types.Factor, productName string) {
	key := normalizeForGrouping(factor.Sentence)
	cf, ok := m.index[key]
	if !ok {
		cf = &types.CrossFactor{Sentence: factor.Sentence, Aspect: factor.Aspect}
		m.index[key] = cf
		m.order = append(m.order, cf)
	}
	cf.TotalCount += factor.Count
	for _, p := range cf.Products {
		if p == productName {
			return
		}
	}
	cf.Products = append(cf.Products, productName)
}

func (m *crossFactorMap) factors() []types.CrossFactor {
	out := make([]types.CrossFactor, 0, len(m.order))
	for _, cf := range m.order {
		out = append(out, *cf)
	}
	return out
}

// aggregateFactors merges each product's ranked sentences of one polarity,
// keyed by a truncated normalized form so near-identical complaints from
// different products collapse into one factor.
func aggregateFactors(productAnalyses []types.ProductAnalysisEntry, polarity string) []types.CrossFactor {
	m := newCrossFactorMap()
	for i, pa := range productAnalyses {
		source := pa.Analysis.TopPositiveSentences
		if polarity == "negative" {
			source = pa.Analysis.TopNegativeSentences
		}
		name := productDisplayName(pa.ProductInfo, i)
		for _, item := range source {
			m.add(item, name)
		}
	}

	factors := m.factors()
	sort.SliceStable(factors, func(i, j int) bool {
		return len(factors[i].Products)*10+factors[i].TotalCount > len(factors[j].Products)*10+factors[j].TotalCount
	})
	return factors
}

func aggregateRequests(productAnalyses []types.ProductAnalysisEntry) []types.CrossFactor {
	m := newCrossFactorMap()
	for i, pa := range productAnalyses {
		name := productDisplayName(pa.ProductInfo, i)
		for _, req := range pa.Analysis.ImprovementRequests {
			m.add(req, name)
		}
	}

	requests := m.factors()
	sort.SliceStable(requests, func(i, j int) bool {
		return requests[i].TotalCount > requests[j].TotalCount
	})
	return requests
}

// generateHints turns complaints and requests that span two or more products
// into differentiation hints, one hint per aspect, ranked by impact.
func generateHints(negativeFactors, requests []types.CrossFactor) []types.DifferentiationHint {
	var hints []types.DifferentiationHint

	for _, neg := range negativeFactors {
		if len(neg.Products) < sharedProducts {
			continue
		}
		relatedRequest := ""
		for _, r := range requests {
			if r.Aspect == neg.Aspect {
				relatedRequest = r.Sentence
				break
			}
		}
		hints = append(hints, types.DifferentiationHint{
			Hint:            fmt.Sprintf("%sの改善が差別化ポイント", neg.Aspect),
			Reason:          fmt.Sprintf("%d商品中%d商品で共通の不満。ここを解決すれば優位に立てる", len(neg.Products), len(neg.Products)),
			RelatedNegative: neg.Sentence,
			RelatedRequest:  relatedRequest,
			Aspect:          neg.Aspect,
			ImpactScore:     len(neg.Products)*10 + neg.TotalCount,
		})
	}

	for _, req := range requests {
		if len(req.Products) < sharedProducts {
			continue
		}
		covered := false
		for _, h := range hints {
			if h.Aspect == req.Aspect {
				covered = true
				break
			}
		}
		if covered {
			continue
		}
		hints = append(hints, types.DifferentiationHint{
			Hint:           fmt.Sprintf("「%s」の声に応える", req.Sentence),
			Reason:         fmt.Sprintf("%d商品で共通の要望（計%d件）", len(req.Products), req.TotalCount),
			RelatedRequest: req.Sentence,
			Aspect:         req.Aspect,
			ImpactScore:    len(req.Products)*5 + req.TotalCount,
		})
	}

	sort.SliceStable(hints, func(i, j int) bool { return hints[i].ImpactScore > hints[j].ImpactScore })
	return hints
}

// buildComparisonTable reduces each product's aspect matrix to a coarse
// positive/negative/neutral verdict per aspect. A polarity has to beat the
// other by half again to count as a verdict.
func buildComparisonTable(productAnalyses []types.ProductAnalysisEntry) []types.ComparisonRow {
	rows := make([]types.ComparisonRow, 0, len(productAnalyses))
	for i, pa := range productAnalyses {
		aspects := make(map[string]string, len(pa.Analysis.AspectMatrix))
		for _, am := range pa.Analysis.AspectMatrix {
			verdict := "neutral"
			if float64(am.PositiveCount) > float64(am.NegativeCount)*1.5 {
				verdict = "positive"
			} else if float64(am.NegativeCount) > float64(am.PositiveCount)*1.5 {
				verdict = "negative"
			}
			aspects[am.Aspect] = verdict
		}
		rows = append(rows, types.ComparisonRow{
			ProductName: productDisplayName(pa.ProductInfo, i),
			Price:       pa.ProductInfo.Price,
			Rating:      pa.Analysis.AverageRating,
			ReviewCount: pa.Analysis.TotalReviews,
			Aspects:     aspects,
		})
	}
	return rows
}

func productDisplayName(info types.ProductInfo, idx int) string {
	if info.Name != "" {
		return info.Name
	}
	return fmt.Sprintf("商品%d", idx+1)
}

// normalizeForGrouping is a coarser normalization than the analyzer's,
// truncated to 20 runes so long sentences sharing a head merge.
func normalizeForGrouping(sentence string) string {
	s := crossPunctRe.ReplaceAllString(sentence, "")
	s = crossEndingRe.ReplaceAllString(s, "")
	runes := []rune(s)
	if len(runes) > normalizeRunes {
		runes = runes[:normalizeRunes]
	}
	return string(runes)
}

func capFactors(factors []types.CrossFactor, n int) []types.CrossFactor {
	if len(factors) > n {
		return factors[:n]
	}
	return factors
}

func capHints(hints []types.DifferentiationHint, n int) []types.DifferentiationHint {
	if len(hints) > n {
		return hints[:n]
	}
	return hints
}
