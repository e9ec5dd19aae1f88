package pricing

import "testing"

func newTestLookup() *Lookup {
	return NewLookup(DefaultThresholds())
}

func findLab(t *testing.T, results []LabResult, lab string) LabResult {
	t.Helper()
	for _, r := range results {
		if r.Lab == lab {
			return r
		}
	}
	t.Fatalf("lab %s missing from results", lab)
	return LabResult{}
}

func TestResolve_ExactMatchBeatsFuzzy(t *testing.T) {
	l := newTestLookup()
	table := Table{
		"LabA": {
			"CBC":                  NumericPrice(900),
			"Complete Blood Count": NumericPrice(800),
		},
	}

	r := findLab(t, l.Resolve("CBC", table), "LabA")

	if !r.Found {
		t.Fatal("expected a match")
	}
	if r.Price.Amount != 900 {
		t.Fatalf("expected exact match 900, got %d", r.Price.Amount)
	}
}

func TestResolve_FuzzyFallback(t *testing.T) {
	l := newTestLookup()
	table := Table{
		"LabA": {
			"Full Blood Profile": NumericPrice(1200),
		},
	}

	r := findLab(t, l.Resolve("Blood", table), "LabA")

	if !r.Found || r.Price.Amount != 1200 {
		t.Fatalf("expected fuzzy match 1200, got %+v", r)
	}
}

func TestResolve_FuzzyLengthGuard(t *testing.T) {
	l := newTestLookup()

	longKey := "Full Blood Profile Including Everything Measured"
	if len(longKey) < DefaultThresholds().MaxFuzzyKeyLen {
		t.Fatalf("test key too short to exercise the guard")
	}

	table := Table{
		"LabA": {longKey: NumericPrice(1200)},
	}

	r := findLab(t, l.Resolve("Blood", table), "LabA")
	if r.Found {
		t.Fatal("expected long key to be rejected by the length guard")
	}
}

func TestResolve_CaseInsensitiveFuzzy(t *testing.T) {
	l := newTestLookup()
	table := Table{
		"LabA": {"THYROID PROFILE (T3 T4 TSH)": NumericPrice(3200)},
	}

	r := findLab(t, l.Resolve("thyroid", table), "LabA")
	if !r.Found || r.Price.Amount != 3200 {
		t.Fatalf("expected case-insensitive match, got %+v", r)
	}
}

func TestResolve_NoMatchReportsUnavailable(t *testing.T) {
	l := newTestLookup()
	table := Table{
		"LabA": {"CBC": NumericPrice(900)},
		"LabB": {},
	}

	results := l.Resolve("MRI Brain", table)

	for _, r := range results {
		if r.Found {
			t.Errorf("lab %s should report unavailable", r.Lab)
		}
	}
}

func TestSummarize_MinMaxFloorAverage(t *testing.T) {
	results := []LabResult{
		{Lab: "A", Price: NumericPrice(700), Found: true},
		{Lab: "B", Price: NumericPrice(900), Found: true},
		{Lab: "C", Price: NumericPrice(800), Found: true},
	}

	s, ok := Summarize(results)
	if !ok {
		t.Fatal("expected a summary")
	}
	if s.Min != 700 || s.Max != 900 || s.Average != 800 || s.Labs != 3 {
		t.Fatalf("unexpected summary: %+v", s)
	}
}

func TestSummarize_FloorDivision(t *testing.T) {
	results := []LabResult{
		{Lab: "A", Price: NumericPrice(700), Found: true},
		{Lab: "B", Price: NumericPrice(801), Found: true},
	}

	s, ok := Summarize(results)
	if !ok {
		t.Fatal("expected a summary")
	}
	if s.Average != 750 {
		t.Fatalf("expected floor average 750, got %d", s.Average)
	}
}

func TestSummarize_SkipsStringPrices(t *testing.T) {
	results := []LabResult{
		{Lab: "A", Price: NumericPrice(700), Found: true},
		{Lab: "B", Price: CoercePrice("call lab"), Found: true},
	}

	s, ok := Summarize(results)
	if !ok {
		t.Fatal("expected a summary from the one numeric lab")
	}
	if s.Labs != 1 || s.Min != 700 || s.Max != 700 {
		t.Fatalf("unexpected summary: %+v", s)
	}
}

func TestSummarize_EmptyWhenNothingNumeric(t *testing.T) {
	results := []LabResult{
		{Lab: "A", Found: false},
		{Lab: "B", Price: CoercePrice("tbd"), Found: true},
	}

	if _, ok := Summarize(results); ok {
		t.Fatal("expected no summary")
	}
}
