package report

import (
	"errors"
	"fmt"
	"path/filepath"
	"strings"
)

// ErrInvalidUpload marks problems with the request itself, as opposed
// to a failure of the model call. Handlers map it to a 400.
var ErrInvalidUpload = errors.New("invalid upload")

var allowedExt = map[string]string{
	".png":  "image/png",
	".jpg":  "image/jpeg",
	".jpeg": "image/jpeg",
	".pdf":  "application/pdf",
}

// ValidateFileExtension checks the upload against the accepted report
// formats and returns the MIME type to send to the model.
func ValidateFileExtension(filename string) (string, error) {
	ext := strings.ToLower(filepath.Ext(filename))

	if ext == "" {
		return "", fmt.Errorf("%w: file extension missing", ErrInvalidUpload)
	}

	mime, ok := allowedExt[ext]
	if !ok {
		return "", fmt.Errorf("%w: file type not allowed, upload png, jpg, jpeg or pdf", ErrInvalidUpload)
	}

	return mime, nil
}

// ValidateLanguage checks the requested interpretation language.
// Empty defaults to English.
func ValidateLanguage(language string) (string, error) {
	if language == "" {
		return "English", nil
	}
	for _, l := range SupportedLanguages {
		if strings.EqualFold(language, l) {
			return l, nil
		}
	}
	return "", fmt.Errorf("%w: language not supported, use English or Urdu", ErrInvalidUpload)
}
