package llm

import "context"

// Client interprets an uploaded lab report image.
type Client interface {
	AnalyzeReport(ctx context.Context, data []byte, mimeType, language string) (*Analysis, error)
}
