package main

import (
	"os"
	"strconv"
	"time"

	"github.com/joho/godotenv"
	"github.com/sirupsen/logrus"

	"go-reviewlens/cronjobs"
	"go-reviewlens/rakuten"
	"go-reviewlens/routes"
	"go-reviewlens/scraper"
	"go-reviewlens/store"
	"go-reviewlens/summarization"
)

func main() {
	log := logrus.New()
	log.SetFormatter(&logrus.TextFormatter{FullTimestamp: true})

	// .env is optional, env vars may come from the environment directly
	if err := godotenv.Load(); err != nil {
		log.Info("no .env file found, using environment variables")
	}

	scrapeDelay := time.Duration(0)
	if ms, err := strconv.Atoi(os.Getenv("SCRAPE_DELAY_MS")); err == nil && ms > 0 {
		scrapeDelay = time.Duration(ms) * time.Millisecond
	}

	st := store.New()
	sc := scraper.New(log, scrapeDelay)

	sum := summarization.New(os.Getenv("OPENAI_API_KEY"), log)
	if sum == nil {
		log.Info("OPENAI_API_KEY not set, digest generation disabled")
	}

	var rakutenClient *rakuten.Client
	if appID := os.Getenv("RAKUTEN_APP_ID"); appID != "" {
		rakutenClient = rakuten.NewClient(appID)
	} else {
		log.Info("RAKUTEN_APP_ID not set, item search disabled")
	}

	cronjobs.InitCronJobs(os.Getenv("WATCH_URLS"), os.Getenv("WATCH_SCHEDULE"), sc, st, log)

	port := os.Getenv("PORT")
	if port == "" {
		port = "3001"
	}

	r := routes.SetupRouter(sc, st, sum, rakutenClient, log)
	log.WithField("port", port).Info("starting server")
	if err := r.Run(":" + port); err != nil {
		log.WithError(err).Fatal("failed to start server")
	}
}
