package pricing

import (
	"errors"
	"testing"
	"time"

	"github.com/fahadriazkiani/Reportsay/internal/catalog"
)

// --------------------------------------------------
// Mock loader
// --------------------------------------------------

type mockLoader struct {
	table   Table
	err     error
	updated time.Time
}

func (m *mockLoader) Load() (Table, error) {
	if m.err != nil {
		return nil, m.err
	}
	return m.table, nil
}

func (m *mockLoader) UpdatedAt() time.Time { return m.updated }

func newTestService(loader TableLoader) *Service {
	return NewService(loader, NewLookup(DefaultThresholds()), catalog.BackupPrices())
}

// --------------------------------------------------
// Tests
// --------------------------------------------------

func TestCompare_FromFile(t *testing.T) {
	updated := time.Date(2025, 6, 1, 8, 0, 0, 0, time.UTC)
	loader := &mockLoader{
		table: Table{
			"LabA": {"CBC": NumericPrice(700)},
			"LabB": {"CBC": NumericPrice(900)},
			"LabC": {"CBC": NumericPrice(800)},
		},
		updated: updated,
	}

	c := newTestService(loader).Compare("CBC")

	if !c.Available {
		t.Fatal("expected prices to be available")
	}
	if c.Source != "file" {
		t.Fatalf("expected source file, got %s", c.Source)
	}
	if c.Summary == nil {
		t.Fatal("expected a summary")
	}
	if c.Summary.Min != 700 || c.Summary.Max != 900 || c.Summary.Average != 800 {
		t.Fatalf("unexpected summary: %+v", c.Summary)
	}
	if !c.UpdatedAt.Equal(updated) {
		t.Fatalf("expected updated_at %v, got %v", updated, c.UpdatedAt)
	}
}

func TestCompare_FallsBackToBackupWholesale(t *testing.T) {
	loader := &mockLoader{err: errors.New("price file not populated yet")}

	c := newTestService(loader).Compare("CBC")

	if c.Source != "backup" {
		t.Fatalf("expected backup source, got %s", c.Source)
	}
	if !c.Available {
		t.Fatal("backup table always lists CBC")
	}
	if len(c.Results) != 5 {
		t.Fatalf("expected all 5 backup labs, got %d", len(c.Results))
	}
}

func TestCompare_UnknownTestUnavailableEverywhere(t *testing.T) {
	loader := &mockLoader{table: Table{
		"LabA": {"CBC": NumericPrice(900)},
	}}

	c := newTestService(loader).Compare("PET Scan")

	if c.Available {
		t.Fatal("expected unavailable result set")
	}
	if c.Summary != nil {
		t.Fatal("expected no summary when nothing matched")
	}
	if len(c.Results) != 1 {
		t.Fatalf("expected the lab still listed as unavailable, got %d results", len(c.Results))
	}
}

func TestListTests_SortedUnion(t *testing.T) {
	loader := &mockLoader{table: Table{
		"LabA": {"CBC": NumericPrice(900), "LFTs": NumericPrice(1800)},
		"LabB": {"CBC": NumericPrice(950), "Thyroid Profile": NumericPrice(3200)},
	}}

	tests := newTestService(loader).ListTests()

	want := []string{"CBC", "LFTs", "Thyroid Profile"}
	if len(tests) != len(want) {
		t.Fatalf("expected %v, got %v", want, tests)
	}
	for i, name := range want {
		if tests[i] != name {
			t.Fatalf("expected %v, got %v", want, tests)
		}
	}
}

func TestListTests_BackupFallback(t *testing.T) {
	loader := &mockLoader{err: errors.New("missing")}

	tests := newTestService(loader).ListTests()

	if len(tests) != len(catalog.Default().Tests()) {
		t.Fatalf("expected the canonical set from backup, got %v", tests)
	}
}
