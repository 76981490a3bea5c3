// Package scraper fetches Rakuten item pages and review pages and extracts
// product info and review entries from their HTML.
package scraper

import (
	"context"
	"fmt"
	"math"
	"net/http"
	"strconv"
	"strings"
	"time"
	"unicode/utf8"

	"github.com/PuerkitoBio/goquery"
	"github.com/sirupsen/logrus"

	"go-reviewlens/types"
)

const (
	defaultMaxPages  = 3
	defaultDelay     = 1500 * time.Millisecond
	minReviewRunes   = 10
	productNameRunes = 80
	userAgent        = "Mozilla/5.0 (Windows NT 10.0; Win64; x64) AppleWebKit/537.36 (KHTML, like Gecko) Chrome/120.0.0.0 Safari/537.36"
)

// Scraper fetches Rakuten pages with a shared client and a politeness delay
// between review pages.
type Scraper struct {
	client   *http.Client
	log      *logrus.Logger
	maxPages int
	delay    time.Duration
}

func New(log *logrus.Logger, delay time.Duration) *Scraper {
	if delay <= 0 {
		delay = defaultDelay
	}
	return &Scraper{
		client:   &http.Client{Timeout: 20 * time.Second},
		log:      log,
		maxPages: defaultMaxPages,
		delay:    delay,
	}
}

func (s *Scraper) fetch(ctx context.Context, url string) (*goquery.Document, error) {
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, url, nil)
	if err != nil {
		return nil, err
	}
	req.Header.Set("User-Agent", userAgent)
	req.Header.Set("Accept-Language", "ja,en-US;q=0.9,en;q=0.8")

	resp, err := s.client.Do(req)
	if err != nil {
		return nil, err
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		return nil, fmt.Errorf("unexpected status %s for %s", resp.Status, url)
	}
	return goquery.NewDocumentFromReader(resp.Body)
}

// FetchProductInfo scrapes the item page for the product name and price.
// Failures degrade to a shopCode/itemId placeholder name so an analysis run
// never dies on a missing product page.
func (s *Scraper) FetchProductInfo(ctx context.Context, parsed types.ParsedURL) types.ProductInfo {
	fallback := types.ProductInfo{
		Name:     parsed.ShopCode + "/" + parsed.ItemID,
		ShopCode: parsed.ShopCode,
		ItemID:   parsed.ItemID,
		URL:      parsed.OriginalURL,
	}

	url := fmt.Sprintf("https://item.rakuten.co.jp/%s/%s/", parsed.ShopCode, parsed.ItemID)
	doc, err := s.fetch(ctx, url)
	if err != nil {
		s.log.WithError(err).WithField("url", url).Warn("product page fetch failed")
		return fallback
	}

	name := strings.TrimSpace(strings.SplitN(doc.Find("title").Text(), "|", 2)[0])
	if name == "" {
		name = strings.TrimSpace(doc.Find("h1").First().Text())
	}
	if name == "" {
		name = fallback.Name
	}
	if runes := []rune(name); len(runes) > productNameRunes {
		name = string(runes[:productNameRunes])
	}

	price := 0
	priceText := doc.Find(`[class*="price"]`).First().Text()
	if digits := firstNumberRun(priceText); digits != "" {
		price, _ = strconv.Atoi(strings.ReplaceAll(digits, ",", ""))
	}

	return types.ProductInfo{
		Name:     name,
		Price:    price,
		ShopCode: parsed.ShopCode,
		ItemID:   parsed.ItemID,
		URL:      parsed.OriginalURL,
	}
}

// ScrapeReviews pulls up to maxPages of reviews for one item, trying the
// current review markup first and the legacy markup as a fallback. Stops at
// the first page that yields nothing.
func (s *Scraper) ScrapeReviews(ctx context.Context, parsed types.ParsedURL) []types.Review {
	var reviews []types.Review

	for page := 1; page <= s.maxPages; page++ {
		url := fmt.Sprintf("https://review.rakuten.co.jp/item/%s/%s/?p=%d", parsed.ShopCode, parsed.ItemID, page)
		doc, err := s.fetch(ctx, url)
		if err != nil {
			s.log.WithError(err).WithFields(logrus.Fields{"item": parsed.ItemID, "page": page}).Warn("review page fetch failed")
			break
		}

		pageReviews := extractReviews(doc)
		if len(pageReviews) == 0 {
			break
		}
		reviews = append(reviews, pageReviews...)

		if page < s.maxPages {
			select {
			case <-ctx.Done():
				return reviews
			case <-time.After(s.delay):
			}
		}
	}

	s.log.WithFields(logrus.Fields{"item": parsed.ItemID, "reviews": len(reviews)}).Info("scraped reviews")
	return reviews
}

func extractReviews(doc *goquery.Document) []types.Review {
	var reviews []types.Review

	doc.Find(`div.review-item, div.revRvwUserSec, div[class*="review"]`).Each(func(_ int, sel *goquery.Selection) {
		text := strings.TrimSpace(sel.Find(`.review-body, .revRvwUserEntryCmt, [class*="comment"], [class*="body"]`).Text())
		if utf8.RuneCountInString(text) <= minReviewRunes {
			return
		}
		rating := parseRating(sel.Find(`[class*="star"], [class*="rating"]`).Text())
		title := strings.TrimSpace(sel.Find(`.review-title, [class*="title"]`).First().Text())
		reviews = append(reviews, types.Review{Text: text, Rating: rating, Title: title})
	})
	if len(reviews) > 0 {
		return reviews
	}

	// legacy markup
	doc.Find("div.revRvwUserSec, div.revRvw").Each(func(_ int, sel *goquery.Selection) {
		text := strings.TrimSpace(sel.Find(".revRvwUserEntryCmt, .revRvwComment, td.revRvwCmnt").Text())
		if utf8.RuneCountInString(text) <= minReviewRunes {
			return
		}
		rating := parseRating(sel.Find(`.revUserRvwStar, .revRvwUserEntryRate, [class*="star"]`).Text())
		reviews = append(reviews, types.Review{Text: text, Rating: rating})
	})
	return reviews
}

// parseRating extracts the first decimal number from star markup, clamped to 5.
func parseRating(text string) float64 {
	digits := firstNumberRun(text)
	if digits == "" {
		return 0
	}
	rating, err := strconv.ParseFloat(strings.ReplaceAll(digits, ",", ""), 64)
	if err != nil {
		return 0
	}
	return math.Min(rating, 5)
}

func firstNumberRun(text string) string {
	start := -1
	for i, r := range text {
		if (r >= '0' && r <= '9') || (start >= 0 && (r == ',' || r == '.')) {
			if start < 0 {
				start = i
			}
			continue
		}
		if start >= 0 {
			return text[start:i]
		}
	}
	if start >= 0 {
		return text[start:]
	}
	return ""
}
