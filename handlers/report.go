package handlers

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"go-reviewlens/report"
	"go-reviewlens/store"
)

// ExportCSVHandler streams the latest run as a CSV download.
func ExportCSVHandler(c *gin.Context, st *store.Store) {
	run, err := st.Latest()
	if err != nil {
		c.JSON(http.StatusNotFound, gin.H{"error": "先に分析を実行してください"})
		return
	}

	c.Header("Content-Disposition", `attachment; filename="review-analysis.csv"`)
	c.Data(http.StatusOK, "text/csv; charset=utf-8", []byte(report.GenerateCSV(run)))
}

// ReportHandler renders the latest run as a printable HTML page.
func ReportHandler(c *gin.Context, st *store.Store) {
	run, err := st.Latest()
	if err != nil {
		c.JSON(http.StatusNotFound, gin.H{"error": "先に分析を実行してください"})
		return
	}

	html, err := report.GeneratePrintableHTML(run)
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
		return
	}
	c.Data(http.StatusOK, "text/html; charset=utf-8", []byte(html))
}
