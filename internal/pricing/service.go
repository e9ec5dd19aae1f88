package pricing

import (
	"log"
	"sort"
	"time"

	"github.com/fahadriazkiani/Reportsay/internal/catalog"
)

// TableLoader reads the persisted price table.
type TableLoader interface {
	Load() (Table, error)
	UpdatedAt() time.Time
}

// Comparison is the full answer to one price query.
type Comparison struct {
	Test      string      `json:"test"`
	Results   []LabResult `json:"results"`
	Summary   *Summary    `json:"summary,omitempty"`
	Available bool        `json:"available"`
	Source    string      `json:"source"` // "file" or "backup"
	UpdatedAt time.Time   `json:"updated_at,omitempty"`
}

// Service answers price queries against the persisted table, falling
// back to the static backup rates when no price file exists yet.
type Service struct {
	loader TableLoader
	lookup *Lookup
	backup map[string]map[catalog.CanonicalTest]int
}

func NewService(loader TableLoader, lookup *Lookup, backup map[string]map[catalog.CanonicalTest]int) *Service {
	return &Service{
		loader: loader,
		lookup: lookup,
		backup: backup,
	}
}

// --------------------------------------------------
// Current table (file, or backup wholesale)
// --------------------------------------------------
func (s *Service) currentTable() (Table, string) {
	table, err := s.loader.Load()
	if err != nil {
		log.Printf("⚠️  price file unavailable (%v), serving backup rates", err)
		return BackupTable(s.backup), "backup"
	}
	return table, "file"
}

// BackupTable converts the static backup rates into a price table.
func BackupTable(backup map[string]map[catalog.CanonicalTest]int) Table {
	table := make(Table, len(backup))
	for lab, prices := range backup {
		entry := make(map[string]Price, len(prices))
		for test, amount := range prices {
			entry[string(test)] = NumericPrice(amount)
		}
		table[lab] = entry
	}
	return table
}

// --------------------------------------------------
// Master test list (dropdown source)
// --------------------------------------------------
func (s *Service) ListTests() []string {
	table, _ := s.currentTable()

	seen := make(map[string]bool)
	for _, prices := range table {
		for name := range prices {
			seen[name] = true
		}
	}

	tests := make([]string, 0, len(seen))
	for name := range seen {
		tests = append(tests, name)
	}
	sort.Strings(tests)
	return tests
}

// --------------------------------------------------
// Price comparison for one test
// --------------------------------------------------
func (s *Service) Compare(label string) Comparison {
	table, source := s.currentTable()

	results := s.lookup.Resolve(label, table)

	comparison := Comparison{
		Test:      label,
		Results:   results,
		Source:    source,
		UpdatedAt: s.loader.UpdatedAt(),
	}

	for _, r := range results {
		if r.Found {
			comparison.Available = true
			break
		}
	}

	if summary, ok := Summarize(results); ok {
		comparison.Summary = &summary
	}

	return comparison
}
