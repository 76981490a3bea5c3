package scraper

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestParseItemURL(t *testing.T) {
	got := ParseItemURL("https://item.rakuten.co.jp/audio-shop/earphone-123/")

	require.NotNil(t, got)
	assert.Equal(t, "audio-shop", got.ShopCode)
	assert.Equal(t, "earphone-123", got.ItemID)
	assert.Equal(t, "https://review.rakuten.co.jp/item/audio-shop/earphone-123/", got.ReviewURL)
}

func TestParseItemURLTrimsWhitespace(t *testing.T) {
	got := ParseItemURL("  https://item.rakuten.co.jp/shop/item/  ")

	require.NotNil(t, got)
	assert.Equal(t, "https://item.rakuten.co.jp/shop/item/", got.OriginalURL)
}

func TestParseItemURLRejects(t *testing.T) {
	cases := []struct {
		name string
		url  string
	}{
		{"wrong host", "https://www.amazon.co.jp/dp/B000000000"},
		{"too few path parts", "https://item.rakuten.co.jp/shoponly/"},
		{"not a url", "こんにちは"},
	}

	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			assert.Nil(t, ParseItemURL(tc.url))
		})
	}
}

func TestParseItemURLs(t *testing.T) {
	raw := `
https://item.rakuten.co.jp/shop-a/item-1/
not-a-rakuten-url

https://item.rakuten.co.jp/shop-b/item-2/
`
	got := ParseItemURLs(raw)

	require.Len(t, got, 2)
	assert.Equal(t, "shop-a", got[0].ShopCode)
	assert.Equal(t, "shop-b", got[1].ShopCode)
}

func TestParseItemURLsEmpty(t *testing.T) {
	assert.Empty(t, ParseItemURLs(""))
	assert.Empty(t, ParseItemURLs("not a url at all"))
}
