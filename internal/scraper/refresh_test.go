package scraper

import (
	"context"
	"errors"
	"testing"

	"github.com/fahadriazkiani/Reportsay/internal/catalog"
	"github.com/fahadriazkiani/Reportsay/internal/pricing"
)

// --------------------------------------------------
// Mocks
// --------------------------------------------------

type mockFetcher struct {
	results map[string]FetchResult
}

func (m *mockFetcher) Fetch(_ context.Context, src Source) FetchResult {
	if r, ok := m.results[src.Lab]; ok {
		return r
	}
	return NotAvailable("no mock configured")
}

type mockStore struct {
	saved   pricing.Table
	saveErr error
}

func (m *mockStore) Save(table pricing.Table) error {
	if m.saveErr != nil {
		return m.saveErr
	}
	m.saved = table
	return nil
}

func newRefresher(fetcher PageFetcher, store TableStore) *Refresher {
	cat := catalog.Default()
	return NewRefresher(
		fetcher,
		pricing.NewNormalizer(cat, pricing.DefaultThresholds()),
		store,
		[]Source{
			{Lab: "Mughal Labs", URL: "https://example.test/mughal"},
			{Lab: "Al-Noor", URL: "https://example.test/alnoor"},
		},
		catalog.BackupPrices(),
	)
}

// --------------------------------------------------
// Tests
// --------------------------------------------------

func TestRefresh_MergesLiveOverBackup(t *testing.T) {
	fetcher := &mockFetcher{results: map[string]FetchResult{
		"Mughal Labs": Ok([]pricing.RawPriceEntry{
			{Name: "Complete Blood Count", Price: "Rs. 1050"},
		}),
		"Al-Noor": NotAvailable("timeout"),
	}}
	store := &mockStore{}

	table, err := newRefresher(fetcher, store).Refresh(context.Background())
	if err != nil {
		t.Fatalf("refresh: %v", err)
	}

	// Live override applied for Mughal.
	cbc := table["Mughal Labs"]["CBC"]
	if !cbc.Numeric || cbc.Amount != 1050 {
		t.Fatalf("expected live CBC 1050, got %+v", cbc)
	}

	// Unavailable lab keeps its full backup table.
	alnoor := table["Al-Noor"]
	if len(alnoor) != len(catalog.Default().Tests()) {
		t.Fatalf("expected full backup coverage for Al-Noor, got %d entries", len(alnoor))
	}
	if p := alnoor["CBC"]; !p.Numeric || p.Amount != 850 {
		t.Fatalf("expected backup CBC 850 for Al-Noor, got %+v", p)
	}

	// The merged table is what got persisted.
	if store.saved == nil {
		t.Fatal("expected table to be saved")
	}
	if len(store.saved) != 2 {
		t.Fatalf("expected 2 labs saved, got %d", len(store.saved))
	}
}

func TestRefresh_EveryLabFullyCovered(t *testing.T) {
	fetcher := &mockFetcher{results: map[string]FetchResult{}}
	store := &mockStore{}

	table, err := newRefresher(fetcher, store).Refresh(context.Background())
	if err != nil {
		t.Fatalf("refresh: %v", err)
	}

	tests := catalog.Default().Tests()
	for lab, prices := range table {
		for _, test := range tests {
			if _, ok := prices[string(test)]; !ok {
				t.Errorf("lab %s missing %s after refresh", lab, test)
			}
		}
	}
}

func TestRefresh_SaveErrorPropagates(t *testing.T) {
	fetcher := &mockFetcher{results: map[string]FetchResult{}}
	store := &mockStore{saveErr: errors.New("disk full")}

	if _, err := newRefresher(fetcher, store).Refresh(context.Background()); err == nil {
		t.Fatal("expected save error to propagate")
	}
}
