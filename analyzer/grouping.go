package analyzer

import (
	"regexp"
	"sort"
	"strings"
	"unicode/utf8"

	"go-reviewlens/lexicon"
	"go-reviewlens/types"
)

// Grouping thresholds. Three ranked stages: cheap substring containment for
// prefix/suffix paraphrases, keyword-gated bigram similarity for topically
// identical rephrasings, and a stricter bigram-only fallback for near
// duplicates that share no dictionary keyword.
const (
	minAcceptScore       = 0.4
	containmentScore     = 0.9
	aspectBonus          = 0.15
	keywordOverlapFloor  = 0.5
	gatedBigramFloor     = 0.35
	fallbackSameAspect   = 0.5
	fallbackCrossAspect  = 0.6
	minContainmentRunes  = 5
	minRepresentativeLen = 10 // representative sentences must stay substantive
)

var (
	normPunctRe   = regexp.MustCompile(`[。！？!?\s、,・「」『』（）()【】\[\]]`)
	normEndingRe  = regexp.MustCompile(`です|ます|ました|でした|だった|ている|ていた|ております|しています|されています`)
	normConnRe    = regexp.MustCompile(`ですが|ますが|けど|けれど|ものの`)
	normLeadingRe = regexp.MustCompile(`^(また|そして|しかし|ただ|でも|ですので|なので|それに|さらに)`)
)

// NormalizeSentence strips punctuation, polite/past verb endings and leading
// discourse connectives, leaving the part of the sentence that carries its
// meaning. Replacement order matters and is part of the grouping contract.
func NormalizeSentence(sentence string) string {
	s := normPunctRe.ReplaceAllString(sentence, "")
	s = normEndingRe.ReplaceAllString(s, "")
	s = normConnRe.ReplaceAllString(s, "")
	s = normLeadingRe.ReplaceAllString(s, "")
	return s
}

// ExtractKeywords collects every dictionary term (aspect keywords plus
// positive/negative expressions, ≥2 runes) found in the sentence, first seen
// first, deduplicated.
func ExtractKeywords(sentence string) []string {
	seen := make(map[string]struct{})
	var keywords []string
	add := func(kw string) {
		if _, ok := seen[kw]; ok {
			return
		}
		seen[kw] = struct{}{}
		keywords = append(keywords, kw)
	}

	for _, entry := range lexicon.Aspects {
		for _, kw := range entry.Keywords {
			if strings.Contains(sentence, kw) && utf8.RuneCountInString(kw) >= 2 {
				add(kw)
			}
		}
	}
	for _, expr := range lexicon.PositiveExpressions {
		if strings.Contains(sentence, expr) && utf8.RuneCountInString(expr) >= 2 {
			add(expr)
		}
	}
	for _, expr := range lexicon.NegativeExpressions {
		if strings.Contains(sentence, expr) && utf8.RuneCountInString(expr) >= 2 {
			add(expr)
		}
	}
	return keywords
}

// KeywordOverlap is the Dice coefficient over two keyword lists.
func KeywordOverlap(a, b []string) float64 {
	if len(a) == 0 || len(b) == 0 {
		return 0
	}
	set := make(map[string]struct{}, len(a))
	for _, kw := range a {
		set[kw] = struct{}{}
	}
	overlap := 0
	for _, kw := range b {
		if _, ok := set[kw]; ok {
			overlap++
		}
	}
	return float64(2*overlap) / float64(len(a)+len(b))
}

// BigramSimilarity is the Dice coefficient over the rune-bigram sets of two
// strings, a cheap lexical-similarity proxy.
func BigramSimilarity(a, b string) float64 {
	ra := []rune(a)
	rb := []rune(b)
	if len(ra) < 2 || len(rb) < 2 {
		return 0
	}
	bigramsA := make(map[string]struct{}, len(ra)-1)
	for i := 0; i < len(ra)-1; i++ {
		bigramsA[string(ra[i:i+2])] = struct{}{}
	}
	bigramsB := make(map[string]struct{}, len(rb)-1)
	for i := 0; i < len(rb)-1; i++ {
		bigramsB[string(rb[i:i+2])] = struct{}{}
	}
	intersection := 0
	for bg := range bigramsA {
		if _, ok := bigramsB[bg]; ok {
			intersection++
		}
	}
	return float64(2*intersection) / float64(len(bigramsA)+len(bigramsB))
}

type sentenceGroup struct {
	factor        types.Factor
	normalizedKey string
	keywords      []string
}

// GroupSimilarSentences clusters near-duplicate sentences into factors with
// occurrence counts, sorted by count descending (insertion order on ties).
// Each item joins the best-scoring existing cluster across the three stages,
// or seeds a new one when nothing reaches the acceptance floor. Shorter
// sentences (over 10 runes) replace a cluster's representative because
// concision reads better in rankings.
func GroupSimilarSentences(items []types.GroupInput) []types.Factor {
	var groups []*sentenceGroup

	for _, item := range items {
		normalized := NormalizeSentence(item.Sentence)
		keywords := ExtractKeywords(item.Sentence)

		var bestGroup *sentenceGroup
		bestScore := 0.0

		for _, g := range groups {
			gNorm := g.normalizedKey
			shorter, longer := normalized, gNorm
			if utf8.RuneCountInString(normalized) >= utf8.RuneCountInString(gNorm) {
				shorter, longer = gNorm, normalized
			}

			bonus := 0.0
			if item.Aspect != "" && item.Aspect == g.factor.Aspect {
				bonus = aspectBonus
			}

			// Stage 1: containment
			if utf8.RuneCountInString(shorter) >= minContainmentRunes && strings.Contains(longer, shorter) {
				if score := containmentScore + bonus; score > bestScore {
					bestScore = score
					bestGroup = g
				}
				continue
			}

			// Stage 2: keyword overlap gating a lenient bigram threshold
			kwOverlap := KeywordOverlap(keywords, g.keywords)
			if kwOverlap >= keywordOverlapFloor {
				if sim := BigramSimilarity(normalized, gNorm); sim >= gatedBigramFloor {
					if score := kwOverlap*0.4 + sim*0.4 + bonus; score > bestScore {
						bestScore = score
						bestGroup = g
					}
					continue
				}
			}

			// Stage 3: bigram-only fallback with a stricter bar
			sim := BigramSimilarity(normalized, gNorm)
			threshold := fallbackCrossAspect
			if item.Aspect == g.factor.Aspect {
				threshold = fallbackSameAspect
			}
			if sim >= threshold {
				if score := sim*0.7 + bonus; score > bestScore {
					bestScore = score
					bestGroup = g
				}
			}
		}

		if bestGroup != nil && bestScore >= minAcceptScore {
			bestGroup.factor.Count++
			if utf8.RuneCountInString(item.Sentence) < utf8.RuneCountInString(bestGroup.factor.Sentence) &&
				utf8.RuneCountInString(item.Sentence) > minRepresentativeLen {
				bestGroup.factor.Sentence = item.Sentence
			}
			continue
		}

		groups = append(groups, &sentenceGroup{
			factor: types.Factor{
				Sentence: item.Sentence,
				Aspect:   item.Aspect,
				Subject:  item.Subject,
				Count:    1,
			},
			normalizedKey: normalized,
			keywords:      keywords,
		})
	}

	factors := make([]types.Factor, 0, len(groups))
	for _, g := range groups {
		factors = append(factors, g.factor)
	}
	sort.SliceStable(factors, func(i, j int) bool { return factors[i].Count > factors[j].Count })
	return factors
}
