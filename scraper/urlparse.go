package scraper

import (
	"fmt"
	"net/url"
	"regexp"
	"strings"

	"go-reviewlens/types"
)

var lineSplitRe = regexp.MustCompile(`[\n\r]+`)

// ParseItemURL extracts the shop code and item ID from a Rakuten item URL.
// Returns nil for anything that is not a rakuten.co.jp item page.
func ParseItemURL(raw string) *types.ParsedURL {
	raw = strings.TrimSpace(raw)
	parsed, err := url.Parse(raw)
	if err != nil {
		return nil
	}
	if !strings.Contains(parsed.Hostname(), "rakuten.co.jp") {
		return nil
	}

	var parts []string
	for _, p := range strings.Split(parsed.Path, "/") {
		if p != "" {
			parts = append(parts, p)
		}
	}
	if len(parts) < 2 {
		return nil
	}

	shopCode, itemID := parts[0], parts[1]
	return &types.ParsedURL{
		ShopCode:    shopCode,
		ItemID:      itemID,
		OriginalURL: raw,
		ReviewURL:   fmt.Sprintf("https://review.rakuten.co.jp/item/%s/%s/", shopCode, itemID),
	}
}

// ParseItemURLs parses a newline-separated block of URLs, skipping blank
// lines and anything that does not parse.
func ParseItemURLs(rawText string) []types.ParsedURL {
	var results []types.ParsedURL
	for _, line := range lineSplitRe.Split(rawText, -1) {
		line = strings.TrimSpace(line)
		if line == "" {
			continue
		}
		if parsed := ParseItemURL(line); parsed != nil {
			results = append(results, *parsed)
		}
	}
	return results
}
