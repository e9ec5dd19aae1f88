package pricing

import (
	"strconv"

	"github.com/fahadriazkiani/Reportsay/internal/catalog"
)

// Normalizer reconciles raw name→price sources for a single lab into a
// stable canonical mapping. It is a pure function over its inputs:
// persistence belongs to the caller, and the defaults table is never
// mutated.
type Normalizer struct {
	catalog    *catalog.Catalog
	thresholds Thresholds
}

func NewNormalizer(c *catalog.Catalog, t Thresholds) *Normalizer {
	return &Normalizer{catalog: c, thresholds: t}
}

// Normalize merges live entries on top of the backup defaults for one
// lab. Every canonical test present in defaults survives the merge; a
// live entry can only overwrite, never remove. Live entries are walked
// in slice order, so a later accepted override for the same canonical
// test replaces an earlier one.
func (n *Normalizer) Normalize(
	labID string,
	defaults map[catalog.CanonicalTest]int,
	live []RawPriceEntry,
) map[catalog.CanonicalTest]int {

	result := make(map[catalog.CanonicalTest]int, len(defaults))
	for test, price := range defaults {
		result[test] = price
	}

	for _, entry := range live {
		test, ok := n.catalog.Match(entry.Name)
		if !ok {
			// Raw names outside the canonical vocabulary are dropped
			// from the canonical view.
			continue
		}

		amount, ok := n.acceptPrice(entry.Price)
		if !ok {
			continue
		}
		result[test] = amount
	}

	return result
}

// acceptPrice extracts the digits from a raw price token and applies
// the minimum-digit sanity filter. A stray "1" or a page number never
// overwrites a known backup rate.
func (n *Normalizer) acceptPrice(raw string) (int, bool) {
	digits := ExtractDigits(raw)
	if len(digits) < n.thresholds.MinPriceDigits {
		return 0, false
	}
	amount, err := strconv.Atoi(digits)
	if err != nil {
		// Digit strings long enough to overflow int are garbage, not
		// prices.
		return 0, false
	}
	return amount, true
}
