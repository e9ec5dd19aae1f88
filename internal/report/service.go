package report

import (
	"context"
	"errors"
	"fmt"
	"io"
	"mime/multipart"
	"time"

	"github.com/google/uuid"

	"github.com/fahadriazkiani/Reportsay/internal/llm"
)

// ErrNotFound is returned when a report id is unknown (or the process
// restarted since it was analyzed).
var ErrNotFound = errors.New("report not found")

// MaxUploadBytes caps report uploads. Lab report scans are small; a
// larger body is either the wrong file or abuse.
const MaxUploadBytes = 10 << 20 // 10 MiB

type Service struct {
	llm   llm.Client
	cache *Cache
}

func NewService(client llm.Client) *Service {
	return &Service{
		llm:   client,
		cache: NewCache(),
	}
}

// --------------------------------------------------
// Analyze uploaded report
// --------------------------------------------------
func (s *Service) Analyze(
	ctx context.Context,
	file multipart.File,
	filename string,
	language string,
) (*Report, error) {

	mime, err := ValidateFileExtension(filename)
	if err != nil {
		return nil, err
	}

	lang, err := ValidateLanguage(language)
	if err != nil {
		return nil, err
	}

	data, err := io.ReadAll(io.LimitReader(file, MaxUploadBytes+1))
	if err != nil {
		return nil, fmt.Errorf("read upload: %w", err)
	}
	if len(data) == 0 {
		return nil, fmt.Errorf("%w: uploaded file is empty", ErrInvalidUpload)
	}
	if len(data) > MaxUploadBytes {
		return nil, fmt.Errorf("%w: uploaded file is too large", ErrInvalidUpload)
	}

	analysis, err := s.llm.AnalyzeReport(ctx, data, mime, lang)
	if err != nil {
		return nil, err
	}

	r := &Report{
		ID:        uuid.New().String(),
		Filename:  filename,
		Language:  lang,
		Analysis:  analysis,
		CreatedAt: time.Now(),
	}
	s.cache.Put(r)

	return r, nil
}

// --------------------------------------------------
// Fetch analyzed report (for PDF export)
// --------------------------------------------------
func (s *Service) Get(id string) (*Report, error) {
	r, ok := s.cache.Get(id)
	if !ok {
		return nil, ErrNotFound
	}
	return r, nil
}
