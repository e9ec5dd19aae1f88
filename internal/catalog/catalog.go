package catalog

import (
	"fmt"
	"strings"
)

// CanonicalTest is one of the fixed lab-test categories used for
// cross-lab comparison. The set is defined at build time and never
// changes during a process lifetime.
type CanonicalTest string

const (
	CBC            CanonicalTest = "CBC"
	HbA1c          CanonicalTest = "HbA1c"
	GlucoseProfile CanonicalTest = "Glucose Profile"
	LipidProfile   CanonicalTest = "Lipid Profile"
	LFTs           CanonicalTest = "LFTs"
	RFTs           CanonicalTest = "RFTs"
	CardiacProfile CanonicalTest = "Cardiac Profile"
	ThyroidProfile CanonicalTest = "Thyroid Profile"
	Vitamins       CanonicalTest = "Vitamins"
)

// Entry binds a canonical test to the lowercase keyword fragments
// used to recognize it inside raw scraped names.
type Entry struct {
	Test     CanonicalTest
	Keywords []string
}

// Catalog is the ordered canonical vocabulary. Matching walks entries
// in declaration order and the first keyword hit wins, so the order
// below is part of the contract, not an accident of iteration.
type Catalog struct {
	entries []Entry
}

// Default returns the standard catalog. Keyword lists mirror the
// naming used on the lab sites themselves.
func Default() *Catalog {
	return &Catalog{entries: []Entry{
		{CBC, []string{"cbc", "complete blood", "cp"}},
		{HbA1c, []string{"hba1c", "glycosylated"}},
		{GlucoseProfile, []string{"glucose", "sugar", "fasting", "bsr"}},
		{LipidProfile, []string{"lipid", "cholesterol"}},
		{LFTs, []string{"lft", "liver"}},
		{RFTs, []string{"rft", "renal", "kidney", "creatinine"}},
		{CardiacProfile, []string{"cardiac", "troponin"}},
		{ThyroidProfile, []string{"thyroid", "tsh"}},
		{Vitamins, []string{"vitamin", "vit d"}},
	}}
}

// Entries returns the catalog entries in declaration order.
func (c *Catalog) Entries() []Entry {
	return c.entries
}

// Tests returns the canonical test names in declaration order.
func (c *Catalog) Tests() []CanonicalTest {
	tests := make([]CanonicalTest, 0, len(c.entries))
	for _, e := range c.entries {
		tests = append(tests, e.Test)
	}
	return tests
}

// Match resolves a raw test name against the catalog. It returns the
// first canonical test (in declaration order) whose keywords occur as
// a case-insensitive substring of the raw name, or false when nothing
// matches.
func (c *Catalog) Match(rawName string) (CanonicalTest, bool) {
	lower := strings.ToLower(rawName)
	for _, e := range c.entries {
		for _, kw := range e.Keywords {
			if strings.Contains(lower, kw) {
				return e.Test, true
			}
		}
	}
	return "", false
}

// Validate checks the catalog for configuration mistakes. These are
// programmer errors, so they surface once at startup rather than
// during a per-request lookup.
func (c *Catalog) Validate() error {
	if len(c.entries) == 0 {
		return fmt.Errorf("catalog is empty")
	}

	seen := make(map[CanonicalTest]bool)
	for _, e := range c.entries {
		if e.Test == "" {
			return fmt.Errorf("catalog entry with empty test name")
		}
		if seen[e.Test] {
			return fmt.Errorf("duplicate canonical test: %s", e.Test)
		}
		seen[e.Test] = true

		if len(e.Keywords) == 0 {
			return fmt.Errorf("canonical test %s has no keywords", e.Test)
		}
		for _, kw := range e.Keywords {
			if kw == "" {
				return fmt.Errorf("canonical test %s has an empty keyword", e.Test)
			}
			if kw != strings.ToLower(kw) {
				return fmt.Errorf("canonical test %s keyword %q must be lowercase", e.Test, kw)
			}
		}
	}
	return nil
}
