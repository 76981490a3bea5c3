package types

// Review is a single customer review as supplied by the scraping layer.
// Reviews are identified only by their position in a product's review list.
type Review struct {
	Text   string  `json:"text"`
	Rating float64 `json:"rating"` // 0-5, 0 means unrated
	Title  string  `json:"title,omitempty"`
}

// ProductInfo holds the product metadata scraped from the item page.
type ProductInfo struct {
	Name     string `json:"name"`
	Price    int    `json:"price"` // yen, 0 when unknown
	ShopCode string `json:"shopCode,omitempty"`
	ItemID   string `json:"itemId,omitempty"`
	URL      string `json:"url,omitempty"`
}

// ParsedURL is the result of parsing a Rakuten item URL.
type ParsedURL struct {
	ShopCode    string `json:"shopCode"`
	ItemID      string `json:"itemId"`
	OriginalURL string `json:"originalUrl"`
	ReviewURL   string `json:"reviewUrl"`
}
