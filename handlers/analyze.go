package handlers

import (
	"net/http"
	"strconv"
	"strings"
	"sync"

	"github.com/gin-gonic/gin"
	"github.com/sirupsen/logrus"

	"go-reviewlens/aggregation"
	"go-reviewlens/analyzer"
	"go-reviewlens/scraper"
	"go-reviewlens/store"
	"go-reviewlens/summarization"
	"go-reviewlens/types"
)

type urlsRequest struct {
	URLs string `json:"urls"`
}

// ParseURLsHandler resolves a newline-separated block of Rakuten URLs into
// product info.
func ParseURLsHandler(c *gin.Context, s *scraper.Scraper, log *logrus.Logger) {
	var req urlsRequest
	if err := c.ShouldBindJSON(&req); err != nil || req.URLs == "" {
		c.JSON(http.StatusBadRequest, gin.H{"error": "urls is required"})
		return
	}

	parsed := scraper.ParseItemURLs(req.URLs)
	if len(parsed) == 0 {
		c.JSON(http.StatusBadRequest, gin.H{"error": "有効な楽天商品URLが見つかりませんでした"})
		return
	}

	products := make([]types.ProductInfo, len(parsed))
	for i, p := range parsed {
		products[i] = s.FetchProductInfo(c.Request.Context(), p)
	}

	c.JSON(http.StatusOK, gin.H{"products": products})
}

type analysisSummaryRow struct {
	ProductInfo        types.ProductInfo        `json:"productInfo"`
	TotalReviews       int                      `json:"totalReviews"`
	TotalSentences     int                      `json:"totalSentences"`
	AverageRating      float64                  `json:"averageRating"`
	SentimentBreakdown types.SentimentBreakdown `json:"sentimentBreakdown"`
}

// AnalyzeHandler runs the full pipeline for every product: review retrieval,
// sentence analysis and the cross-product summary. With no URLs it analyzes
// the built-in demo dataset. Products are processed concurrently, results
// keep request order.
func AnalyzeHandler(c *gin.Context, s *scraper.Scraper, st *store.Store, sum *summarization.Summarizer, log *logrus.Logger) {
	var req urlsRequest
	_ = c.ShouldBindJSON(&req)

	demoMode := strings.TrimSpace(req.URLs) == ""

	var parsed []types.ParsedURL
	var products []types.ProductInfo
	if demoMode {
		parsed = demoParsedURLs()
		products = demoProducts()
	} else {
		parsed = scraper.ParseItemURLs(req.URLs)
		if len(parsed) == 0 {
			c.JSON(http.StatusBadRequest, gin.H{"error": "有効なURLがありません"})
			return
		}
		products = make([]types.ProductInfo, len(parsed))
		for i, p := range parsed {
			products[i] = s.FetchProductInfo(c.Request.Context(), p)
		}
	}

	analyses := make([]types.ProductAnalysisEntry, len(products))
	var wg sync.WaitGroup
	for i := range products {
		wg.Add(1)
		go func(idx int) {
			defer wg.Done()

			var reviews []types.Review
			if demoMode {
				reviews = demoReviewsForProduct(idx)
			} else {
				reviews = s.ScrapeReviews(c.Request.Context(), parsed[idx])
			}

			analyses[idx] = types.ProductAnalysisEntry{
				ProductInfo: products[idx],
				Analysis:    analyzer.AnalyzeReviews(reviews),
			}
		}(i)
	}
	wg.Wait()

	summary := aggregation.GenerateCrossSummary(analyses)

	if sum != nil {
		digest, err := sum.GenerateDigest(c.Request.Context(), summary)
		if err != nil {
			log.WithError(err).Warn("digest generation failed")
		} else {
			summary.Digest = digest
		}
	}

	run := st.Save(products, analyses, summary)
	log.WithFields(logrus.Fields{
		"runId":    run.RunID,
		"products": len(products),
		"reviews":  summary.TotalReviews,
	}).Info("analysis complete")

	rows := make([]analysisSummaryRow, 0, len(analyses))
	for _, pa := range analyses {
		rows = append(rows, analysisSummaryRow{
			ProductInfo:        pa.ProductInfo,
			TotalReviews:       pa.Analysis.TotalReviews,
			TotalSentences:     pa.Analysis.TotalSentences,
			AverageRating:      pa.Analysis.AverageRating,
			SentimentBreakdown: pa.Analysis.SentimentBreakdown,
		})
	}

	c.JSON(http.StatusOK, gin.H{
		"runId":    run.RunID,
		"products": products,
		"analyses": rows,
		"summary":  summary,
	})
}

type sentenceDetail struct {
	OriginalSentence string   `json:"originalSentence"`
	Subject          string   `json:"subject"`
	Aspect           string   `json:"aspect"`
	Sentiment        string   `json:"sentiment"`
	IsRequest        bool     `json:"isRequest"`
	MatchedPositive  []string `json:"matchedPositive"`
	MatchedNegative  []string `json:"matchedNegative"`
	SourceReview     struct {
		Rating float64 `json:"rating"`
	} `json:"sourceReview"`
}

// ProductDetailsHandler returns one product's analysis with the sentence
// records trimmed of their full review texts.
func ProductDetailsHandler(c *gin.Context, st *store.Store) {
	idx, err := strconv.Atoi(c.Param("index"))
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid product index"})
		return
	}

	entry, err := st.ProductEntry(idx)
	if err != nil {
		if err == store.ErrNoAnalysis {
			c.JSON(http.StatusNotFound, gin.H{"error": "先に分析を実行してください"})
		} else {
			c.JSON(http.StatusNotFound, gin.H{"error": "商品が見つかりません"})
		}
		return
	}

	sentences := make([]sentenceDetail, 0, len(entry.Analysis.AllAnalyzedSentences))
	for _, s := range entry.Analysis.AllAnalyzedSentences {
		d := sentenceDetail{
			OriginalSentence: s.OriginalSentence,
			Subject:          s.Subject,
			Aspect:           s.Aspect,
			Sentiment:        s.Sentiment,
			IsRequest:        s.IsRequest,
			MatchedPositive:  s.MatchedPositive,
			MatchedNegative:  s.MatchedNegative,
		}
		d.SourceReview.Rating = s.SourceReview.Rating
		sentences = append(sentences, d)
	}

	c.JSON(http.StatusOK, gin.H{
		"productInfo": entry.ProductInfo,
		"analysis": gin.H{
			"totalReviews":         entry.Analysis.TotalReviews,
			"totalSentences":       entry.Analysis.TotalSentences,
			"averageRating":        entry.Analysis.AverageRating,
			"sentimentBreakdown":   entry.Analysis.SentimentBreakdown,
			"ratingDistribution":   entry.Analysis.RatingDistribution,
			"aspectMatrix":         entry.Analysis.AspectMatrix,
			"topNegativeSentences": entry.Analysis.TopNegativeSentences,
			"topPositiveSentences": entry.Analysis.TopPositiveSentences,
			"improvementRequests":  entry.Analysis.ImprovementRequests,
			"allAnalyzedSentences": sentences,
		},
	})
}

// SummaryHandler returns the cross-product summary of the latest run.
func SummaryHandler(c *gin.Context, st *store.Store) {
	run, err := st.Latest()
	if err != nil {
		c.JSON(http.StatusNotFound, gin.H{"error": "先に分析を実行してください"})
		return
	}
	c.JSON(http.StatusOK, run.Summary)
}
