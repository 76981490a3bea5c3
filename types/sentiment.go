package types

// WordHit is one dictionary word found by the whole-text scorer.
type WordHit struct {
	Word  string `json:"word"`
	Score int    `json:"score"`
	Count int    `json:"count,omitempty"`
}

// TextScore is the whole-text word-frequency sentiment result. This scorer is
// independent of the sentence-level judge and keeps its own weighted lexicon.
type TextScore struct {
	Score         int       `json:"score"`
	Label         string    `json:"label"` // positive | negative | neutral
	PositiveWords []WordHit `json:"positiveWords"`
	NegativeWords []WordHit `json:"negativeWords"`
}

// ScoredReview is a review annotated with its whole-text score.
type ScoredReview struct {
	Review
	Sentiment TextScore `json:"sentiment"`
}

// KeywordCount is a tallied dictionary word across a review batch.
type KeywordCount struct {
	Word  string `json:"word"`
	Count int    `json:"count"`
}

// SentimentRatio holds the percentage split of a review batch.
type SentimentRatio struct {
	Positive int `json:"positive"`
	Negative int `json:"negative"`
	Neutral  int `json:"neutral"`
}

// BatchScore summarizes the whole-text scorer over a review batch.
type BatchScore struct {
	TotalCount          int                `json:"totalCount"`
	SentimentBreakdown  SentimentBreakdown `json:"sentimentBreakdown"`
	SentimentRatio      SentimentRatio     `json:"sentimentRatio"`
	AverageScore        float64            `json:"averageScore"` // rounded to 2 decimals
	RatingDistribution  map[string]int     `json:"ratingDistribution"`
	TopPositiveKeywords []KeywordCount     `json:"topPositiveKeywords"`
	TopNegativeKeywords []KeywordCount     `json:"topNegativeKeywords"`
	Reviews             []ScoredReview     `json:"reviews"`
}
