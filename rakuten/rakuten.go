// Package rakuten is a thin client for the Rakuten Ichiba search APIs.
package rakuten

import (
	"context"
	"encoding/json"
	"fmt"
	"net/http"
	"net/url"
	"strconv"
	"time"
)

const baseURL = "https://app.rakuten.co.jp/services/api"

type Client struct {
	appID  string
	client *http.Client
}

func NewClient(appID string) *Client {
	return &Client{
		appID:  appID,
		client: &http.Client{Timeout: 15 * time.Second},
	}
}

type Genre struct {
	GenreID    int    `json:"genreId"`
	GenreName  string `json:"genreName"`
	GenreLevel int    `json:"genreLevel"`
}

type GenreResult struct {
	Current  Genre   `json:"current"`
	Children []Genre `json:"children"`
}

type Item struct {
	ItemCode      string  `json:"itemCode"`
	ItemName      string  `json:"itemName"`
	ItemPrice     int     `json:"itemPrice"`
	ItemURL       string  `json:"itemUrl"`
	ImageURL      string  `json:"imageUrl"`
	ShopName      string  `json:"shopName"`
	ShopCode      string  `json:"shopCode"`
	ReviewCount   int     `json:"reviewCount"`
	ReviewAverage float64 `json:"reviewAverage"`
	GenreID       string  `json:"genreId"`
}

type ItemSearchResult struct {
	Items     []Item `json:"items"`
	Count     int    `json:"count"`
	Page      int    `json:"page"`
	PageCount int    `json:"pageCount"`
	Hits      int    `json:"hits"`
}

// ItemSearchParams narrows an item search. Zero values are omitted.
type ItemSearchParams struct {
	Keyword       string
	GenreID       string
	Hits          int
	Page          int
	Sort          string
	HasReviewFlag bool
}

func (c *Client) get(ctx context.Context, rawURL string, out interface{}) error {
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, rawURL, nil)
	if err != nil {
		return err
	}

	resp, err := c.client.Do(req)
	if err != nil {
		return err
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		return fmt.Errorf("rakuten API returned status %s", resp.Status)
	}
	return json.NewDecoder(resp.Body).Decode(out)
}

// SearchGenres lists the child genres of genreId (0 is the root).
func (c *Client) SearchGenres(ctx context.Context, genreID int) (*GenreResult, error) {
	query := url.Values{
		"format":        {"json"},
		"applicationId": {c.appID},
		"genreId":       {strconv.Itoa(genreID)},
	}
	rawURL := fmt.Sprintf("%s/IchibaGenre/Search/20140222?%s", baseURL, query.Encode())

	var raw struct {
		Current  Genre `json:"current"`
		Children []struct {
			Child Genre `json:"child"`
		} `json:"children"`
	}
	if err := c.get(ctx, rawURL, &raw); err != nil {
		return nil, err
	}

	result := &GenreResult{Current: raw.Current}
	for _, c := range raw.Children {
		result.Children = append(result.Children, c.Child)
	}
	return result, nil
}

// SearchItems runs an Ichiba item search, defaulting to 30 hits sorted by
// review count.
func (c *Client) SearchItems(ctx context.Context, params ItemSearchParams) (*ItemSearchResult, error) {
	hits := params.Hits
	if hits == 0 {
		hits = 30
	}
	page := params.Page
	if page == 0 {
		page = 1
	}
	sortOrder := params.Sort
	if sortOrder == "" {
		sortOrder = "-reviewCount"
	}

	query := url.Values{
		"format":        {"json"},
		"applicationId": {c.appID},
		"hits":          {strconv.Itoa(hits)},
		"page":          {strconv.Itoa(page)},
		"sort":          {sortOrder},
	}
	if params.GenreID != "" {
		query.Set("genreId", params.GenreID)
	}
	if params.Keyword != "" {
		query.Set("keyword", params.Keyword)
	}
	if params.HasReviewFlag {
		query.Set("hasReviewFlag", "1")
	}
	rawURL := fmt.Sprintf("%s/IchibaItem/Search/20220601?%s", baseURL, query.Encode())

	var raw struct {
		Items []struct {
			Item struct {
				ItemCode        string `json:"itemCode"`
				ItemName        string `json:"itemName"`
				ItemPrice       int    `json:"itemPrice"`
				ItemURL         string `json:"itemUrl"`
				MediumImageURLs []struct {
					ImageURL string `json:"imageUrl"`
				} `json:"mediumImageUrls"`
				ShopName      string  `json:"shopName"`
				ShopCode      string  `json:"shopCode"`
				ReviewCount   int     `json:"reviewCount"`
				ReviewAverage float64 `json:"reviewAverage"`
				GenreID       string  `json:"genreId"`
			} `json:"Item"`
		} `json:"Items"`
		Count     int `json:"count"`
		Page      int `json:"page"`
		PageCount int `json:"pageCount"`
		Hits      int `json:"hits"`
	}
	if err := c.get(ctx, rawURL, &raw); err != nil {
		return nil, err
	}

	result := &ItemSearchResult{
		Count:     raw.Count,
		Page:      raw.Page,
		PageCount: raw.PageCount,
		Hits:      raw.Hits,
	}
	for _, wrapper := range raw.Items {
		item := wrapper.Item
		imageURL := ""
		if len(item.MediumImageURLs) > 0 {
			imageURL = item.MediumImageURLs[0].ImageURL
		}
		result.Items = append(result.Items, Item{
			ItemCode:      item.ItemCode,
			ItemName:      item.ItemName,
			ItemPrice:     item.ItemPrice,
			ItemURL:       item.ItemURL,
			ImageURL:      imageURL,
			ShopName:      item.ShopName,
			ShopCode:      item.ShopCode,
			ReviewCount:   item.ReviewCount,
			ReviewAverage: item.ReviewAverage,
			GenreID:       item.GenreID,
		})
	}
	return result, nil
}
