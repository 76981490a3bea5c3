// Package cronjobs re-analyzes a fixed watchlist of product URLs on a
// schedule, so the cached run stays fresh without anyone hitting the analyze
// endpoint.
package cronjobs

import (
	"context"
	"time"

	"github.com/robfig/cron/v3"
	"github.com/sirupsen/logrus"

	"go-reviewlens/aggregation"
	"go-reviewlens/analyzer"
	"go-reviewlens/scraper"
	"go-reviewlens/store"
	"go-reviewlens/types"
)

const defaultSchedule = "0 6 * * *"

// InitCronJobs schedules the watchlist refresh. A nil return means nothing
// was scheduled because the watchlist is empty.
func InitCronJobs(watchURLs string, schedule string, s *scraper.Scraper, st *store.Store, log *logrus.Logger) *cron.Cron {
	parsed := scraper.ParseItemURLs(watchURLs)
	if len(parsed) == 0 {
		log.Info("no watch URLs configured, skipping cron setup")
		return nil
	}
	if schedule == "" {
		schedule = defaultSchedule
	}

	c := cron.New()
	_, err := c.AddFunc(schedule, func() {
		refreshWatchlist(parsed, s, st, log)
	})
	if err != nil {
		log.WithError(err).Error("failed to schedule watchlist refresh")
		return nil
	}

	c.Start()
	log.WithFields(logrus.Fields{"urls": len(parsed), "schedule": schedule}).Info("watchlist refresh scheduled")
	return c
}

func refreshWatchlist(parsed []types.ParsedURL, s *scraper.Scraper, st *store.Store, log *logrus.Logger) {
	ctx, cancel := context.WithTimeout(context.Background(), 10*time.Minute)
	defer cancel()

	log.WithField("urls", len(parsed)).Info("watchlist refresh started")
	started := time.Now()

	products := make([]types.ProductInfo, len(parsed))
	analyses := make([]types.ProductAnalysisEntry, len(parsed))
	for i, p := range parsed {
		products[i] = s.FetchProductInfo(ctx, p)
		reviews := s.ScrapeReviews(ctx, p)
		analyses[i] = types.ProductAnalysisEntry{
			ProductInfo: products[i],
			Analysis:    analyzer.AnalyzeReviews(reviews),
		}
	}

	summary := aggregation.GenerateCrossSummary(analyses)
	run := st.Save(products, analyses, summary)

	log.WithFields(logrus.Fields{
		"runId":    run.RunID,
		"reviews":  summary.TotalReviews,
		"duration": time.Since(started).Round(time.Millisecond).String(),
	}).Info("watchlist refresh finished")
}
