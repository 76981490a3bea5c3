package analyzer

import "go-reviewlens/lexicon"

// IsImprovementRequest reports whether a sentence is phrased as an
// improvement request. A single pattern hit is enough; there is no scoring.
func IsImprovementRequest(sentence string) bool {
	for _, pattern := range lexicon.RequestPatterns {
		if pattern.MatchString(sentence) {
			return true
		}
	}
	return false
}
