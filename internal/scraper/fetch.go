package scraper

import (
	"context"
	"fmt"
	"net/http"
	"strings"
	"time"

	"github.com/PuerkitoBio/goquery"

	"github.com/fahadriazkiani/Reportsay/internal/pricing"
)

// FetchResult is the outcome of scraping one lab page. Any network or
// parse failure degrades to Unavailable, so the normalizer treats the
// lab exactly like "no live update available" instead of surfacing a
// fault.
type FetchResult struct {
	Entries     []pricing.RawPriceEntry
	Unavailable bool
	Reason      string
}

// Ok wraps a successful scrape.
func Ok(entries []pricing.RawPriceEntry) FetchResult {
	return FetchResult{Entries: entries}
}

// NotAvailable marks a scrape that produced nothing usable.
func NotAvailable(reason string) FetchResult {
	return FetchResult{Unavailable: true, Reason: reason}
}

// Fetcher pulls raw price rows from lab pages.
type Fetcher struct {
	client *http.Client
}

func NewFetcher() *Fetcher {
	return &Fetcher{
		client: &http.Client{Timeout: 10 * time.Second},
	}
}

// Fetch scrapes one lab rate page. Lab sites publish prices in plain
// HTML tables with no stable markup, so the heuristic is generic: the
// first cell of a row is the test name, the first later cell that
// contains a digit is the price.
func (f *Fetcher) Fetch(ctx context.Context, src Source) FetchResult {
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, src.URL, nil)
	if err != nil {
		return NotAvailable(fmt.Sprintf("bad url: %v", err))
	}

	resp, err := f.client.Do(req)
	if err != nil {
		return NotAvailable(fmt.Sprintf("request failed: %v", err))
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		return NotAvailable(fmt.Sprintf("status %d", resp.StatusCode))
	}

	doc, err := goquery.NewDocumentFromReader(resp.Body)
	if err != nil {
		return NotAvailable(fmt.Sprintf("parse failed: %v", err))
	}

	entries := ParseRateTable(doc)
	if len(entries) == 0 {
		return NotAvailable("no price rows found")
	}
	return Ok(entries)
}

// ParseRateTable walks every table row in the document and applies the
// name/price column heuristic. Rows that do not yield both a name and
// a digit-bearing price cell are skipped.
func ParseRateTable(doc *goquery.Document) []pricing.RawPriceEntry {
	var entries []pricing.RawPriceEntry

	doc.Find("tr").Each(func(_ int, row *goquery.Selection) {
		cells := row.Find("td")
		if cells.Length() < 2 {
			return
		}

		texts := make([]string, 0, cells.Length())
		cells.Each(func(_ int, cell *goquery.Selection) {
			texts = append(texts, strings.TrimSpace(cell.Text()))
		})

		name := texts[0]
		if name == "" {
			return
		}

		for _, t := range texts[1:] {
			if strings.ContainsAny(t, "0123456789") {
				entries = append(entries, pricing.RawPriceEntry{Name: name, Price: t})
				return
			}
		}
	})

	return entries
}
