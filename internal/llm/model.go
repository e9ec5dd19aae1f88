package llm

// Finding is one test the model recognized on the report.
type Finding struct {
	Test   string `json:"test"`
	Value  string `json:"value"`
	Status string `json:"status"` // high | low | normal | unknown
	Note   string `json:"note"`
}

// Analysis is the structured interpretation of an uploaded report.
type Analysis struct {
	Summary     string    `json:"summary"`
	Findings    []Finding `json:"findings"`
	Explanation string    `json:"explanation"`
	NextSteps   string    `json:"next_steps"`
	Disclaimer  string    `json:"disclaimer"`
}
