package config

import (
	"fmt"
	"os"
	"strconv"

	"github.com/fahadriazkiani/Reportsay/internal/pricing"
)

// Config bundles everything read from the environment. Reference data
// (the canonical catalog and backup rates) is compiled in and lives in
// the catalog package, not here.
type Config struct {
	Port         string
	GeminiAPIKey string
	GeminiModel  string
	PriceFile    string
	Thresholds   pricing.Thresholds
}

// Load reads the environment, applies defaults and validates the
// threshold overrides. Threshold misconfiguration is a hard failure
// here, at startup, never during a request.
func Load() (*Config, error) {
	cfg := &Config{
		Port:         getenv("PORT", "8000"),
		GeminiAPIKey: os.Getenv("GEMINI_API_KEY"),
		GeminiModel:  getenv("GEMINI_MODEL", "gemini-1.5-flash"),
		PriceFile:    getenv("PRICE_FILE", "data/lab_prices.json"),
		Thresholds:   pricing.DefaultThresholds(),
	}

	if v := os.Getenv("MIN_PRICE_DIGITS"); v != "" {
		n, err := strconv.Atoi(v)
		if err != nil || n < 1 {
			return nil, fmt.Errorf("invalid MIN_PRICE_DIGITS: %q", v)
		}
		cfg.Thresholds.MinPriceDigits = n
	}

	if v := os.Getenv("MAX_FUZZY_KEY_LEN"); v != "" {
		n, err := strconv.Atoi(v)
		if err != nil || n < 1 {
			return nil, fmt.Errorf("invalid MAX_FUZZY_KEY_LEN: %q", v)
		}
		cfg.Thresholds.MaxFuzzyKeyLen = n
	}

	return cfg, nil
}

// RequireGemini fails fast when the report analysis flow cannot run.
// The scraper binary does not call this: it has no model dependency.
func (c *Config) RequireGemini() error {
	if c.GeminiAPIKey == "" {
		return fmt.Errorf("missing env var: GEMINI_API_KEY")
	}
	if c.GeminiModel == "" {
		return fmt.Errorf("missing env var: GEMINI_MODEL")
	}
	return nil
}

func getenv(key, fallback string) string {
	if v := os.Getenv(key); v != "" {
		return v
	}
	return fallback
}
