package report

import (
	"time"

	"github.com/fahadriazkiani/Reportsay/internal/llm"
)

// Languages the interpretation can be written in. Mirrors the UI
// language selector.
var SupportedLanguages = []string{"English", "Urdu"}

// Report is one analyzed upload, held in memory for the lifetime of
// the process so the PDF export can re-render it.
type Report struct {
	ID        string        `json:"id"`
	Filename  string        `json:"filename"`
	Language  string        `json:"language"`
	Analysis  *llm.Analysis `json:"analysis"`
	CreatedAt time.Time     `json:"created_at"`
}
