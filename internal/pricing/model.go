package pricing

// RawPriceEntry is a single line item exactly as a data source reported
// it. Entries are transient: the normalizer consumes them once and the
// slice order is whatever order the source produced, which keeps a
// normalization run reproducible for a fixed input.
type RawPriceEntry struct {
	Name  string
	Price string
}

// Table maps lab name → test name → price. Test names are canonical
// after a normalization run, but consumers must tolerate arbitrary raw
// keys and string prices from older or degraded price files.
type Table map[string]map[string]Price

// Thresholds carries the two matching heuristics inherited from the
// price data itself. Their exact values are unprincipled, so they are
// configurable rather than buried in the code.
type Thresholds struct {
	// MinPriceDigits rejects a live override whose digit-only form is
	// shorter than this (filters stray "1"s and page numbers).
	MinPriceDigits int
	// MaxFuzzyKeyLen rejects fuzzy-match candidates with keys at or
	// above this length (long descriptive strings match everything).
	MaxFuzzyKeyLen int
}

// DefaultThresholds returns the values the price data was tuned against.
func DefaultThresholds() Thresholds {
	return Thresholds{
		MinPriceDigits: 3,
		MaxFuzzyKeyLen: 30,
	}
}
