package main

import (
	"context"
	"log"
	"os"

	"github.com/joho/godotenv"

	"github.com/fahadriazkiani/Reportsay/internal/catalog"
	"github.com/fahadriazkiani/Reportsay/internal/config"
	"github.com/fahadriazkiani/Reportsay/internal/llm"
	"github.com/fahadriazkiani/Reportsay/internal/pricestore"
	"github.com/fahadriazkiani/Reportsay/internal/pricing"
	"github.com/fahadriazkiani/Reportsay/internal/report"
	"github.com/fahadriazkiani/Reportsay/internal/router"
	"github.com/fahadriazkiani/Reportsay/internal/scraper"
)

func main() {

	// ───────────────────────── ENV ─────────────────────────
	if os.Getenv("APP_ENV") != "production" {
		_ = godotenv.Load()
	}

	cfg, err := config.Load()
	if err != nil {
		log.Fatalf("❌ Config error: %v", err)
	}
	if err := cfg.RequireGemini(); err != nil {
		log.Fatalf("❌ %v", err)
	}

	// ───────────────────────── REFERENCE DATA ─────────────────────────
	cat := catalog.Default()
	if err := cat.Validate(); err != nil {
		log.Fatalf("❌ Catalog invalid: %v", err)
	}

	backup := catalog.BackupPrices()
	if err := catalog.ValidateBackup(cat, backup); err != nil {
		log.Fatalf("❌ Backup prices invalid: %v", err)
	}

	log.Println("✅ Reference data loaded")

	// ───────────────────────── PRICES ─────────────────────────
	store := pricestore.NewStore(cfg.PriceFile)
	lookup := pricing.NewLookup(cfg.Thresholds)
	priceService := pricing.NewService(store, lookup, backup)

	normalizer := pricing.NewNormalizer(cat, cfg.Thresholds)
	refresher := scraper.NewRefresher(
		scraper.NewFetcher(),
		normalizer,
		store,
		scraper.DefaultSources(),
		backup,
	)

	priceHandler := pricing.NewHandler(priceService, refresher)

	// ───────────────────────── REPORTS ─────────────────────────
	geminiClient, err := llm.NewGeminiClient(
		context.Background(),
		cfg.GeminiAPIKey,
		cfg.GeminiModel,
	)
	if err != nil {
		log.Fatal("❌ Gemini init failed:", err)
	}

	reportService := report.NewService(geminiClient)
	reportHandler := report.NewHandler(reportService)

	// ───────────────────────── START ─────────────────────────
	r := router.New(reportHandler, priceHandler)

	log.Printf("🚀 API running at http://localhost:%s", cfg.Port)
	if err := r.Run(":" + cfg.Port); err != nil {
		log.Fatal("Failed to start server:", err)
	}
}
