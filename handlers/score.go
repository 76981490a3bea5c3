package handlers

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"go-reviewlens/sentiment"
	"go-reviewlens/types"
)

type scoreRequest struct {
	Reviews []types.Review `json:"reviews"`
}

// ScoreHandler runs the standalone weighted scorer over a posted batch of
// reviews, no scraping or caching involved.
func ScoreHandler(c *gin.Context) {
	var req scoreRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "reviews is required"})
		return
	}

	c.JSON(http.StatusOK, sentiment.AnalyzeReviews(req.Reviews))
}
