package handlers

import (
	"net/http"
	"strconv"

	"github.com/gin-gonic/gin"

	"go-reviewlens/rakuten"
)

// SearchHandler proxies an Ichiba item search so the frontend can find
// candidate products to analyze. Requires RAKUTEN_APP_ID to be configured.
func SearchHandler(c *gin.Context, client *rakuten.Client) {
	if client == nil {
		c.JSON(http.StatusServiceUnavailable, gin.H{"error": "RAKUTEN_APP_ID is not configured"})
		return
	}

	params := rakuten.ItemSearchParams{
		Keyword:       c.Query("keyword"),
		GenreID:       c.Query("genreId"),
		Sort:          c.Query("sort"),
		HasReviewFlag: c.Query("hasReviewFlag") == "1",
	}
	if hits, err := strconv.Atoi(c.Query("hits")); err == nil {
		params.Hits = hits
	}
	if page, err := strconv.Atoi(c.Query("page")); err == nil {
		params.Page = page
	}
	if params.Keyword == "" && params.GenreID == "" {
		c.JSON(http.StatusBadRequest, gin.H{"error": "keyword or genreId is required"})
		return
	}

	result, err := client.SearchItems(c.Request.Context(), params)
	if err != nil {
		c.JSON(http.StatusBadGateway, gin.H{"error": err.Error()})
		return
	}
	c.JSON(http.StatusOK, result)
}

// GenresHandler lists child genres of the given genre, defaulting to the root.
func GenresHandler(c *gin.Context, client *rakuten.Client) {
	if client == nil {
		c.JSON(http.StatusServiceUnavailable, gin.H{"error": "RAKUTEN_APP_ID is not configured"})
		return
	}

	genreID := 0
	if id, err := strconv.Atoi(c.Query("genreId")); err == nil {
		genreID = id
	}

	result, err := client.SearchGenres(c.Request.Context(), genreID)
	if err != nil {
		c.JSON(http.StatusBadGateway, gin.H{"error": err.Error()})
		return
	}
	c.JSON(http.StatusOK, result)
}
