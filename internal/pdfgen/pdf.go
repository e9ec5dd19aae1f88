package pdfgen

import (
	"bytes"
	"fmt"

	"github.com/go-pdf/fpdf"

	"github.com/fahadriazkiani/Reportsay/internal/llm"
)

const footerText = "Generated by ReportSay. Consult a doctor for medical advice."

// Render lays the analysis out as a downloadable PDF: title header,
// one block per section, italic disclaimer footer. Core PDF fonts are
// latin-1, so unsupported runes degrade to replacements the same way
// the report view's download always has.
func Render(title string, a *llm.Analysis) ([]byte, error) {
	pdf := fpdf.New("P", "mm", "A4", "")
	tr := pdf.UnicodeTranslatorFromDescriptor("")
	pdf.AddPage()

	pdf.SetFont("Arial", "B", 16)
	pdf.CellFormat(0, 10, tr(title), "", 1, "C", false, 0, "")
	pdf.Ln(6)

	section := func(heading, body string) {
		if body == "" {
			return
		}
		pdf.SetFont("Arial", "B", 12)
		pdf.CellFormat(0, 8, tr(heading), "", 1, "L", false, 0, "")
		pdf.SetFont("Arial", "", 11)
		pdf.MultiCell(0, 7, tr(body), "", "L", false)
		pdf.Ln(4)
	}

	section("Summary", a.Summary)

	if len(a.Findings) > 0 {
		pdf.SetFont("Arial", "B", 12)
		pdf.CellFormat(0, 8, "Findings", "", 1, "L", false, 0, "")
		pdf.SetFont("Arial", "", 11)
		for _, f := range a.Findings {
			line := fmt.Sprintf("%s: %s (%s)", f.Test, f.Value, f.Status)
			if f.Note != "" {
				line += " - " + f.Note
			}
			pdf.MultiCell(0, 7, tr(line), "", "L", false)
		}
		pdf.Ln(4)
	}

	section("What these tests mean", a.Explanation)
	section("Next steps", a.NextSteps)
	section("Disclaimer", a.Disclaimer)

	pdf.Ln(6)
	pdf.SetFont("Arial", "I", 8)
	pdf.CellFormat(0, 10, footerText, "", 1, "C", false, 0, "")

	var buf bytes.Buffer
	if err := pdf.Output(&buf); err != nil {
		return nil, fmt.Errorf("render pdf: %w", err)
	}
	return buf.Bytes(), nil
}
