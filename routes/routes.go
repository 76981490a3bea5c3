package routes

import (
	"github.com/gin-gonic/gin"
	"github.com/sirupsen/logrus"

	"go-reviewlens/handlers"
	"go-reviewlens/rakuten"
	"go-reviewlens/scraper"
	"go-reviewlens/store"
	"go-reviewlens/summarization"
)

func SetupRouter(
	s *scraper.Scraper,
	st *store.Store,
	sum *summarization.Summarizer,
	rakutenClient *rakuten.Client,
	log *logrus.Logger,
) *gin.Engine {
	r := gin.Default()

	r.GET("/", func(c *gin.Context) {
		c.JSON(200, gin.H{
			"message": "レビュー分析ツール（文レベル構造化分析 + クロス商品サマリ）",
		})
	})

	api := r.Group("/api")
	{
		api.POST("/parse-urls", func(c *gin.Context) {
			handlers.ParseURLsHandler(c, s, log)
		})
		api.POST("/analyze", func(c *gin.Context) {
			handlers.AnalyzeHandler(c, s, st, sum, log)
		})
		api.GET("/product/:index/details", func(c *gin.Context) {
			handlers.ProductDetailsHandler(c, st)
		})
		api.GET("/summary", func(c *gin.Context) {
			handlers.SummaryHandler(c, st)
		})
		api.GET("/export/csv", func(c *gin.Context) {
			handlers.ExportCSVHandler(c, st)
		})
		api.GET("/report", func(c *gin.Context) {
			handlers.ReportHandler(c, st)
		})
		api.POST("/score", handlers.ScoreHandler)
		api.GET("/search", func(c *gin.Context) {
			handlers.SearchHandler(c, rakutenClient)
		})
		api.GET("/genres", func(c *gin.Context) {
			handlers.GenresHandler(c, rakutenClient)
		})
	}

	return r
}
