package catalog

import "fmt"

// BackupPrices holds the hand-maintained reference rates per lab.
// These guarantee the app never answers "check lab" for a common test:
// the normalizer seeds every lab from this table before applying any
// live scrape result on top.
func BackupPrices() map[string]map[CanonicalTest]int {
	return map[string]map[CanonicalTest]int{
		"Mughal Labs": {
			CBC: 900, HbA1c: 1600, GlucoseProfile: 600,
			LipidProfile: 2200, LFTs: 1800, RFTs: 1500,
			CardiacProfile: 4500, ThyroidProfile: 3200, Vitamins: 4000,
		},
		"Shaukat Khanum": {
			CBC: 950, HbA1c: 1750, GlucoseProfile: 700,
			LipidProfile: 2600, LFTs: 2100, RFTs: 1800,
			CardiacProfile: 5000, ThyroidProfile: 3500, Vitamins: 4500,
		},
		"IDC": {
			CBC: 1050, HbA1c: 1800, GlucoseProfile: 750,
			LipidProfile: 2800, LFTs: 2200, RFTs: 1900,
			CardiacProfile: 5200, ThyroidProfile: 3600, Vitamins: 4800,
		},
		"Chughtai Lab": {
			CBC: 1100, HbA1c: 1900, GlucoseProfile: 800,
			LipidProfile: 3000, LFTs: 2500, RFTs: 2100,
			CardiacProfile: 5500, ThyroidProfile: 3800, Vitamins: 5000,
		},
		"Al-Noor": {
			CBC: 850, HbA1c: 1500, GlucoseProfile: 550,
			LipidProfile: 2000, LFTs: 1600, RFTs: 1400,
			CardiacProfile: 4200, ThyroidProfile: 3000, Vitamins: 3800,
		},
	}
}

// ValidateBackup checks that every backup table only references tests
// the catalog knows and covers the full canonical set for each lab.
func ValidateBackup(c *Catalog, backup map[string]map[CanonicalTest]int) error {
	known := make(map[CanonicalTest]bool)
	for _, t := range c.Tests() {
		known[t] = true
	}

	for lab, prices := range backup {
		if lab == "" {
			return fmt.Errorf("backup table with empty lab name")
		}
		for test, price := range prices {
			if !known[test] {
				return fmt.Errorf("lab %s references unknown test %q", lab, test)
			}
			if price <= 0 {
				return fmt.Errorf("lab %s has non-positive price for %s", lab, test)
			}
		}
		for t := range known {
			if _, ok := prices[t]; !ok {
				return fmt.Errorf("lab %s is missing a backup price for %s", lab, t)
			}
		}
	}
	return nil
}
