package analyzer

import (
	"regexp"
	"strings"
	"unicode/utf8"

	"go-reviewlens/lexicon"
)

var subjectFallbackRe = regexp.MustCompile(`^(.{2,8}?)[がはもをの]`)

// ClassifyAspect assigns a sentence to the aspect whose keywords cover the
// most characters in it. Longer keywords are stronger signals than short ones
// that might appear incidentally, so each hit scores its keyword length.
// Ties keep the earlier aspect in dictionary order; no hits means その他.
func ClassifyAspect(sentence string) string {
	lower := strings.ToLower(sentence)

	best := lexicon.OtherAspect
	bestScore := 0
	for _, entry := range lexicon.Aspects {
		score := 0
		for _, kw := range entry.Keywords {
			if strings.Contains(lower, strings.ToLower(kw)) {
				score += utf8.RuneCountInString(kw)
			}
		}
		if score > bestScore {
			bestScore = score
			best = entry.Name
		}
	}
	return best
}

// ExtractSubject picks a best-effort "what is being talked about" for a
// sentence: the first aspect keyword (≥2 runes) found in dictionary order,
// falling back to the noun-ish run before the first particle.
func ExtractSubject(sentence string) string {
	for _, entry := range lexicon.Aspects {
		for _, kw := range entry.Keywords {
			if strings.Contains(sentence, kw) && utf8.RuneCountInString(kw) >= 2 {
				return kw
			}
		}
	}
	if m := subjectFallbackRe.FindStringSubmatch(sentence); m != nil {
		return m[1]
	}
	return ""
}
