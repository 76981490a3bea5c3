package types

// CrossFactor is a Factor merged across products. Products never contains
// the same name twice.
type CrossFactor struct {
	Sentence   string   `json:"sentence"`
	Aspect     string   `json:"aspect"`
	TotalCount int      `json:"totalCount"`
	Products   []string `json:"products"`
}

// DifferentiationHint is a generated suggestion that addressing a shared
// negative factor or request would create competitive advantage.
type DifferentiationHint struct {
	Hint            string `json:"hint"`
	Reason          string `json:"reason"`
	RelatedNegative string `json:"relatedNegative"`
	RelatedRequest  string `json:"relatedRequest"`
	Aspect          string `json:"aspect"`
	ImpactScore     int    `json:"impactScore"`
}

// PriceRange is the min/max of all known product prices.
type PriceRange struct {
	Min int `json:"min"`
	Max int `json:"max"`
}

// ComparisonRow is one product's row in the cross-product comparison table.
// Aspects maps aspect name to "positive" | "negative" | "neutral".
type ComparisonRow struct {
	ProductName string            `json:"productName"`
	Price       int               `json:"price"`
	Rating      float64           `json:"rating"`
	ReviewCount int               `json:"reviewCount"`
	Aspects     map[string]string `json:"aspects"`
}

// CrossSummary merges N products' analyses into a category-wide view.
type CrossSummary struct {
	Category             string                `json:"category"`
	PriceRange           PriceRange            `json:"priceRange"`
	ProductCount         int                   `json:"productCount"`
	TotalReviews         int                   `json:"totalReviews"`
	PositiveFactors      []CrossFactor         `json:"positiveFactors"`
	NegativeFactors      []CrossFactor         `json:"negativeFactors"`
	DifferentiationHints []DifferentiationHint `json:"differentiationHints"`
	ImprovementRequests  []CrossFactor         `json:"improvementRequests"`
	ComparisonTable      []ComparisonRow       `json:"comparisonTable"`
	Digest               string                `json:"digest,omitempty"`
}
