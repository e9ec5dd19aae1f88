package scraper

import (
	"context"
	"log"

	"github.com/fahadriazkiani/Reportsay/internal/catalog"
	"github.com/fahadriazkiani/Reportsay/internal/pricing"
)

// PageFetcher is what a refresh run needs from the scraping side.
type PageFetcher interface {
	Fetch(ctx context.Context, src Source) FetchResult
}

// TableStore persists the merged price table.
type TableStore interface {
	Save(table pricing.Table) error
}

// Refresher runs the hybrid scrape: best-effort live data per lab,
// merged over the backup rates so the table is always complete.
type Refresher struct {
	fetcher    PageFetcher
	normalizer *pricing.Normalizer
	store      TableStore
	sources    []Source
	backup     map[string]map[catalog.CanonicalTest]int
}

func NewRefresher(
	fetcher PageFetcher,
	normalizer *pricing.Normalizer,
	store TableStore,
	sources []Source,
	backup map[string]map[catalog.CanonicalTest]int,
) *Refresher {
	return &Refresher{
		fetcher:    fetcher,
		normalizer: normalizer,
		store:      store,
		sources:    sources,
		backup:     backup,
	}
}

// Refresh scrapes every source, normalizes each lab against its backup
// table and replaces the persisted price file. A lab whose page could
// not be scraped still ends up in the table with its full backup
// rates, so refresh only fails when the file itself cannot be written.
func (r *Refresher) Refresh(ctx context.Context) (pricing.Table, error) {
	table := make(pricing.Table, len(r.sources))

	for _, src := range r.sources {
		result := r.fetcher.Fetch(ctx, src)
		if result.Unavailable {
			log.Printf("⚠️  %s: live scrape unavailable (%s), keeping backup rates", src.Lab, result.Reason)
		} else {
			log.Printf("✅ %s: scraped %d raw rows", src.Lab, len(result.Entries))
		}

		merged := r.normalizer.Normalize(src.Lab, r.backup[src.Lab], result.Entries)

		prices := make(map[string]pricing.Price, len(merged))
		for test, amount := range merged {
			prices[string(test)] = pricing.NumericPrice(amount)
		}
		table[src.Lab] = prices
	}

	if err := r.store.Save(table); err != nil {
		return nil, err
	}
	return table, nil
}
