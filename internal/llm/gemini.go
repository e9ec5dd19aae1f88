package llm

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"

	"google.golang.org/genai"
)

// GeminiClient sends report images to the Gemini API and enforces the
// JSON-only output contract.
type GeminiClient struct {
	client *genai.Client
	model  string
}

// NewGeminiClient builds a client from an explicit key and model name.
// Both are required; main validates the env vars before calling this.
func NewGeminiClient(ctx context.Context, apiKey, model string) (*GeminiClient, error) {
	if apiKey == "" {
		return nil, errors.New("missing GEMINI_API_KEY")
	}
	if model == "" {
		return nil, errors.New("missing GEMINI_MODEL")
	}

	client, err := genai.NewClient(ctx, &genai.ClientConfig{
		APIKey:  apiKey,
		Backend: genai.BackendGeminiAPI,
	})
	if err != nil {
		return nil, fmt.Errorf("create gemini client: %w", err)
	}

	return &GeminiClient{client: client, model: model}, nil
}

// AnalyzeReport sends the report bytes inline with the interpretation
// prompt and decodes the structured analysis.
func (g *GeminiClient) AnalyzeReport(
	ctx context.Context,
	data []byte,
	mimeType string,
	language string,
) (*Analysis, error) {

	if len(data) == 0 {
		return nil, errors.New("empty report file")
	}

	contents := []*genai.Content{
		{
			Parts: []*genai.Part{
				{Text: BuildReportPrompt(language)},
				{
					InlineData: &genai.Blob{
						Data:     data,
						MIMEType: mimeType,
					},
				},
			},
		},
	}

	result, err := g.client.Models.GenerateContent(ctx, g.model, contents, &genai.GenerateContentConfig{
		ResponseMIMEType: "application/json",
	})
	if err != nil {
		return nil, fmt.Errorf("gemini api error: %w", err)
	}

	text := result.Text()
	if text == "" {
		return nil, errors.New("empty gemini response")
	}

	if !json.Valid([]byte(text)) {
		return nil, errors.New("gemini returned non-json output")
	}

	var analysis Analysis
	if err := json.Unmarshal([]byte(text), &analysis); err != nil {
		return nil, fmt.Errorf("decode gemini response: %w", err)
	}

	return &analysis, nil
}
