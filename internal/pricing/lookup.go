package pricing

import (
	"sort"
	"strings"
)

// LabResult is the resolution outcome for one lab. Found is false when
// neither an exact nor a fuzzy match produced a price; the UI renders
// that as "not listed", never as an error.
type LabResult struct {
	Lab   string `json:"lab"`
	Price Price  `json:"price,omitempty"`
	Found bool   `json:"found"`
}

// Summary aggregates the labs that resolved to a numeric price.
type Summary struct {
	Min     int `json:"min"`
	Max     int `json:"max"`
	Average int `json:"average"`
	Labs    int `json:"labs"`
}

// Lookup resolves a user-supplied test label against a price table.
type Lookup struct {
	thresholds Thresholds
}

func NewLookup(t Thresholds) *Lookup {
	return &Lookup{thresholds: t}
}

// Resolve finds the best price per lab: an exact key match wins, then
// the first case-insensitive substring match over the lab's keys in
// sorted order, guarded so that long descriptive keys cannot match a
// short label incidentally. Results come back sorted by lab name.
func (l *Lookup) Resolve(label string, table Table) []LabResult {
	labs := make([]string, 0, len(table))
	for lab := range table {
		labs = append(labs, lab)
	}
	sort.Strings(labs)

	results := make([]LabResult, 0, len(labs))
	for _, lab := range labs {
		results = append(results, l.resolveLab(label, lab, table[lab]))
	}
	return results
}

func (l *Lookup) resolveLab(label, lab string, prices map[string]Price) LabResult {
	if price, ok := prices[label]; ok {
		return LabResult{Lab: lab, Price: price, Found: true}
	}

	// Fuzzy fallback: first substring hit wins, no scoring. Keys are
	// walked in sorted order so a lookup is reproducible for a fixed
	// table.
	needle := strings.ToLower(label)
	keys := make([]string, 0, len(prices))
	for k := range prices {
		keys = append(keys, k)
	}
	sort.Strings(keys)

	for _, k := range keys {
		if len(k) >= l.thresholds.MaxFuzzyKeyLen {
			continue
		}
		if strings.Contains(strings.ToLower(k), needle) {
			return LabResult{Lab: lab, Price: prices[k], Found: true}
		}
	}

	return LabResult{Lab: lab, Found: false}
}

// Summarize computes min/max/floor-average over the labs that carry a
// numeric price. It returns false when no lab does, so callers can
// skip the summary block instead of showing zeros.
func Summarize(results []LabResult) (Summary, bool) {
	var s Summary
	sum := 0
	for _, r := range results {
		if !r.Found || !r.Price.Numeric {
			continue
		}
		amount := r.Price.Amount
		if s.Labs == 0 || amount < s.Min {
			s.Min = amount
		}
		if s.Labs == 0 || amount > s.Max {
			s.Max = amount
		}
		sum += amount
		s.Labs++
	}
	if s.Labs == 0 {
		return Summary{}, false
	}
	s.Average = sum / s.Labs
	return s, true
}
