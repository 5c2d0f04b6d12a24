// Package plaintext extracts text from plain text uploads.
package plaintext

import (
	"context"
	"fmt"
	"strings"

	"github.com/campushq/resourcehub/internal/core/domain"
	"github.com/campushq/resourcehub/internal/core/ports/driven"
	"github.com/campushq/resourcehub/internal/extractors"
)

// Ensure Extractor implements the interface.
var _ driven.Extractor = (*Extractor)(nil)

// Extractor decodes plain text files as UTF-8.
type Extractor struct{}

// New creates a plain text extractor.
func New() *Extractor {
	return &Extractor{}
}

// SupportedMediaTypes returns the MIME types this extractor handles.
func (e *Extractor) SupportedMediaTypes() []string {
	return []string{extractors.MediaTypePlainText}
}

// Priority returns the selection priority.
func (e *Extractor) Priority() int {
	return 5 // Fallback extractor
}

// Extract decodes the bytes as UTF-8, replacing invalid sequences, and
// trims surrounding whitespace.
func (e *Extractor) Extract(_ context.Context, content []byte, _, _ string) (string, error) {
	if len(content) == 0 {
		return "", fmt.Errorf("%w: empty file", domain.ErrInvalidInput)
	}
	text := strings.ToValidUTF8(string(content), "")
	return strings.TrimSpace(text), nil
}
