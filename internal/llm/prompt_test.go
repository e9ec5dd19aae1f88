package llm

import (
	"strings"
	"testing"
)

func TestBuildReportPrompt(t *testing.T) {
	prompt := BuildReportPrompt("Urdu")

	if !strings.Contains(prompt, "explain it in Urdu") {
		t.Error("prompt missing language instruction")
	}
	if !strings.Contains(prompt, `"summary"`) || !strings.Contains(prompt, `"next_steps"`) {
		t.Error("prompt missing the JSON schema")
	}
	if !strings.Contains(prompt, "Consult a doctor") {
		t.Error("prompt missing the disclaimer instruction")
	}
}
