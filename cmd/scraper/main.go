package main

import (
	"context"
	"log"
	"time"

	"github.com/joho/godotenv"

	"github.com/fahadriazkiani/Reportsay/internal/catalog"
	"github.com/fahadriazkiani/Reportsay/internal/config"
	"github.com/fahadriazkiani/Reportsay/internal/pricestore"
	"github.com/fahadriazkiani/Reportsay/internal/pricing"
	"github.com/fahadriazkiani/Reportsay/internal/scraper"
)

// One-shot hybrid scrape: best-effort live prices per lab merged over
// the backup rates, written to the flat price file. Scheduling is the
// job of whatever runs this binary (cron, CI workflow).
func main() {
	if err := godotenv.Load(); err != nil {
		log.Println("Note: No .env file found, using environment variables")
	}

	cfg, err := config.Load()
	if err != nil {
		log.Fatalf("❌ Config error: %v", err)
	}

	cat := catalog.Default()
	if err := cat.Validate(); err != nil {
		log.Fatalf("❌ Catalog invalid: %v", err)
	}

	backup := catalog.BackupPrices()
	if err := catalog.ValidateBackup(cat, backup); err != nil {
		log.Fatalf("❌ Backup prices invalid: %v", err)
	}

	log.Println("🚀 Starting hybrid scrape...")

	refresher := scraper.NewRefresher(
		scraper.NewFetcher(),
		pricing.NewNormalizer(cat, cfg.Thresholds),
		pricestore.NewStore(cfg.PriceFile),
		scraper.DefaultSources(),
		backup,
	)

	ctx, cancel := context.WithTimeout(context.Background(), 2*time.Minute)
	defer cancel()

	table, err := refresher.Refresh(ctx)
	if err != nil {
		log.Fatalf("❌ Refresh failed: %v", err)
	}

	log.Printf("✅ Price data saved for %d labs (backups applied where live data failed)", len(table))
}
