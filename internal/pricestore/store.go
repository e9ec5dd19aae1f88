package pricestore

import (
	"encoding/json"
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"time"

	"github.com/fahadriazkiani/Reportsay/internal/pricing"
)

// ErrNotPopulated is returned when the price file has never been
// written. Callers fall back to the backup table wholesale.
var ErrNotPopulated = errors.New("price file not populated yet")

// Store reads and writes the flat JSON price file. The file is the
// only persisted artifact: it is replaced wholesale on refresh, with
// no history and no versioning.
type Store struct {
	path string
}

func NewStore(path string) *Store {
	return &Store{path: path}
}

// Load reads the full price table. Prices decode through the tagged
// Price value, so a file carrying string prices from a degraded
// scrape run still loads.
func (s *Store) Load() (pricing.Table, error) {
	data, err := os.ReadFile(s.path)
	if err != nil {
		if os.IsNotExist(err) {
			return nil, ErrNotPopulated
		}
		return nil, fmt.Errorf("read price file: %w", err)
	}

	var table pricing.Table
	if err := json.Unmarshal(data, &table); err != nil {
		return nil, fmt.Errorf("decode price file: %w", err)
	}
	return table, nil
}

// Save replaces the price file with the given table. The write goes to
// a temp file first and renames over the target, so a concurrent
// reader sees either the old or the new complete file.
func (s *Store) Save(table pricing.Table) error {
	data, err := json.MarshalIndent(table, "", "    ")
	if err != nil {
		return fmt.Errorf("encode price table: %w", err)
	}

	dir := filepath.Dir(s.path)
	if err := os.MkdirAll(dir, 0o755); err != nil {
		return fmt.Errorf("create data dir: %w", err)
	}

	tmp, err := os.CreateTemp(dir, "lab_prices-*.json")
	if err != nil {
		return fmt.Errorf("create temp price file: %w", err)
	}
	tmpName := tmp.Name()

	if _, err := tmp.Write(data); err != nil {
		tmp.Close()
		os.Remove(tmpName)
		return fmt.Errorf("write price file: %w", err)
	}
	if err := tmp.Close(); err != nil {
		os.Remove(tmpName)
		return fmt.Errorf("close price file: %w", err)
	}

	if err := os.Rename(tmpName, s.path); err != nil {
		os.Remove(tmpName)
		return fmt.Errorf("replace price file: %w", err)
	}
	return nil
}

// UpdatedAt reports when the price file was last replaced, for the
// "prices updated" caption. Zero time when the file does not exist.
func (s *Store) UpdatedAt() time.Time {
	info, err := os.Stat(s.path)
	if err != nil {
		return time.Time{}
	}
	return info.ModTime()
}
