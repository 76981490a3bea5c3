package types

// SourceReview is a back-reference from a sentence to the review it came from.
// It never owns the review, it only points at it.
type SourceReview struct {
	ReviewIndex int     `json:"reviewIndex"`
	Rating      float64 `json:"rating"`
	FullText    string  `json:"fullText,omitempty"`
	Title       string  `json:"title,omitempty"`
}

// SentimentJudgement is the output of the sentence-level sentiment judge.
type SentimentJudgement struct {
	Sentiment       string   `json:"sentiment"` // positive | negative | neutral
	PositiveScore   int      `json:"positiveScore"`
	NegativeScore   int      `json:"negativeScore"`
	MatchedPositive []string `json:"matchedPositive"`
	MatchedNegative []string `json:"matchedNegative"`
}

// SentenceRecord is produced for every segmented sentence of every review.
type SentenceRecord struct {
	OriginalSentence string       `json:"originalSentence"`
	Subject          string       `json:"subject"`
	Aspect           string       `json:"aspect"`
	Sentiment        string       `json:"sentiment"`
	PositiveScore    int          `json:"positiveScore"`
	NegativeScore    int          `json:"negativeScore"`
	MatchedPositive  []string     `json:"matchedPositive"`
	MatchedNegative  []string     `json:"matchedNegative"`
	IsRequest        bool         `json:"isRequest"`
	SourceReview     SourceReview `json:"sourceReview"`
}

// GroupInput is one sentence fed into the similarity grouper.
type GroupInput struct {
	Sentence string `json:"sentence"`
	Aspect   string `json:"aspect"`
	Subject  string `json:"subject,omitempty"`
}

// Factor is a cluster of near-duplicate sentences reduced to one
// representative sentence plus an occurrence count.
type Factor struct {
	Sentence string `json:"sentence"`
	Aspect   string `json:"aspect"`
	Subject  string `json:"subject"`
	Count    int    `json:"count"`
}

// AspectMatrixEntry summarizes one aspect's sentiment split for a product.
type AspectMatrixEntry struct {
	Aspect            string   `json:"aspect"`
	PositiveCount     int      `json:"positiveCount"`
	NegativeCount     int      `json:"negativeCount"`
	NeutralCount      int      `json:"neutralCount"`
	PositiveSentences []Factor `json:"positiveSentences"`
	NegativeSentences []Factor `json:"negativeSentences"`
}

// SentimentBreakdown counts sentences per sentiment label.
type SentimentBreakdown struct {
	Positive int `json:"positive"`
	Neutral  int `json:"neutral"`
	Negative int `json:"negative"`
}

// ProductAnalysis is the full per-product analysis result.
type ProductAnalysis struct {
	TotalReviews         int                 `json:"totalReviews"`
	TotalSentences       int                 `json:"totalSentences"`
	AverageRating        float64             `json:"averageRating"` // rounded to 1 decimal
	SentimentBreakdown   SentimentBreakdown  `json:"sentimentBreakdown"`
	RatingDistribution   map[string]int      `json:"ratingDistribution"` // keys "1".."5"
	AspectMatrix         []AspectMatrixEntry `json:"aspectMatrix"`
	TopNegativeSentences []Factor            `json:"topNegativeSentences"`
	TopPositiveSentences []Factor            `json:"topPositiveSentences"`
	ImprovementRequests  []Factor            `json:"improvementRequests"`
	AllAnalyzedSentences []SentenceRecord    `json:"allAnalyzedSentences"`
}

// ProductAnalysisEntry pairs a product with its analysis, the unit the
// cross-product aggregator consumes.
type ProductAnalysisEntry struct {
	ProductInfo ProductInfo     `json:"productInfo"`
	Analysis    ProductAnalysis `json:"analysis"`
}
