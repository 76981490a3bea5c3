package analyzer

import (
	"regexp"
	"strings"
	"unicode/utf8"
)

// Reviews are informal and punctuation-sparse. Splitting only on terminal
// punctuation under-segments long run-on sentences that mix a positive and a
// negative clause, so long sentences get a second pass on contrastive
// conjunction markers.
var (
	newlineRe   = regexp.MustCompile(`\n+`)
	punctRunRe  = regexp.MustCompile(`[。！？!?]+`)
	punctOnlyRe = regexp.MustCompile(`^[。！？!?]+$`)
	conjRe      = regexp.MustCompile(`ですが、|ますが、|だが、|だけど、|けど、|けれど、|ものの、|のに、`)
	conjOnlyRe  = regexp.MustCompile(`^(ですが、|ますが、|だが、|だけど、|けど、|けれど、|ものの、|のに、)$`)
)

// Fragments at or below this rune count are discarded as noise.
const minFragmentRunes = 5

// Sentences longer than this get the conjunction-based refinement pass.
const longSentenceRunes = 30

// splitKeep splits s around every match of re, keeping the separators as
// their own elements, like a capture-group split.
func splitKeep(s string, re *regexp.Regexp) []string {
	var parts []string
	last := 0
	for _, m := range re.FindAllStringIndex(s, -1) {
		parts = append(parts, s[last:m[0]], s[m[0]:m[1]])
		last = m[1]
	}
	return append(parts, s[last:])
}

// SplitSentences splits raw review text into trimmed candidate sentences.
// Terminal punctuation stays attached to the sentence it ends, conjunction
// markers stay attached to the clause they close.
func SplitSentences(text string) []string {
	var sentences []string

	for _, chunk := range newlineRe.Split(text, -1) {
		current := ""
		for _, p := range splitKeep(chunk, punctRunRe) {
			part := strings.TrimSpace(p)
			if part == "" {
				continue
			}
			if punctOnlyRe.MatchString(part) {
				current += part
				if utf8.RuneCountInString(strings.TrimSpace(current)) > minFragmentRunes {
					sentences = append(sentences, strings.TrimSpace(current))
				}
				current = ""
			} else {
				if utf8.RuneCountInString(strings.TrimSpace(current)) > minFragmentRunes {
					sentences = append(sentences, strings.TrimSpace(current))
				}
				current = part
			}
		}
		if utf8.RuneCountInString(strings.TrimSpace(current)) > minFragmentRunes {
			sentences = append(sentences, strings.TrimSpace(current))
		}
	}

	// Second pass: break up long run-on sentences at contrastive conjunctions.
	var refined []string
	for _, s := range sentences {
		if utf8.RuneCountInString(s) <= longSentenceRunes {
			refined = append(refined, s)
			continue
		}
		buf := ""
		for _, p := range splitKeep(s, conjRe) {
			buf += p
			if conjOnlyRe.MatchString(p) {
				if utf8.RuneCountInString(strings.TrimSpace(buf)) > minFragmentRunes {
					refined = append(refined, strings.TrimSpace(buf))
				}
				buf = ""
			}
		}
		if utf8.RuneCountInString(strings.TrimSpace(buf)) > minFragmentRunes {
			refined = append(refined, strings.TrimSpace(buf))
		}
	}

	return refined
}
