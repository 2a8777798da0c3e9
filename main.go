package main

import (
	"log"
	"time"

	"reviewlens/analytics"
	"reviewlens/auth"
	"reviewlens/config"
	"reviewlens/playstore"
	"reviewlens/routes"
	"reviewlens/summarization"
)

func main() {
	cfg := config.Load()

	authSvc := auth.NewService(auth.StaticVerifier{
		Username: cfg.DashboardUser,
		Password: cfg.DashboardPass,
	})

	client := playstore.NewClient(
		playstore.WithLocale(cfg.PlayLang, cfg.PlayCountry),
		playstore.WithPageInterval(time.Duration(cfg.PageIntervalMs)*time.Millisecond),
	)

	analyzer := analytics.NewAnalyzer()

	summarizer := summarization.NewSummarizer(cfg.OpenAIAPIKey)
	if summarizer == nil {
		log.Println("OPENAI_API_KEY not set, review summaries disabled")
	}

	r := routes.SetupRouter(authSvc, client, analyzer, summarizer)
	if err := r.Run(cfg.ListenAddr); err != nil {
		log.Fatal("Failed to start server:", err)
	}
}
