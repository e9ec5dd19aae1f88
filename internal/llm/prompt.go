package llm

import "fmt"

// BuildReportPrompt builds the interpretation prompt for one report.
// The output contract is strict JSON so the handler can render and
// export it without scraping free text.
func BuildReportPrompt(language string) string {
	return fmt.Sprintf(`
You are a helpful medical assistant. Analyze this lab report and explain it in %s.

1. Summary of key findings.
2. Highlight any abnormal values (High/Low).
3. Simple explanation of what these tests mean.
4. Disclaimer: Consult a doctor for medical advice.

Return ONLY a JSON object in this exact structure, with every text field written in %s:

{
  "summary": "short summary of the key findings",
  "findings": [
    {
      "test": "Hemoglobin",
      "value": "10.7 g/dL",
      "status": "low",
      "note": "one-line note about this value"
    }
  ],
  "explanation": "simple, patient-friendly explanation of what these tests mean",
  "next_steps": "what the patient should do next, in 2-3 sentences",
  "disclaimer": "Consult a doctor for medical advice."
}

- NO explanations outside the JSON.
- NO markdown.
- Output MUST start with { and end with }.
`, language, language)
}
