// Package pdf extracts text from PDF files by shelling out to pdftotext.
package pdf

import (
	"context"
	"errors"
	"fmt"
	"os"
	"os/exec"
	"path/filepath"
	"strings"

	"github.com/campushq/resourcehub/internal/core/domain"
	"github.com/campushq/resourcehub/internal/core/ports/driven"
	"github.com/campushq/resourcehub/internal/extractors"
	"github.com/campushq/resourcehub/internal/logger"
)

// Ensure Extractor implements the interface.
var _ driven.Extractor = (*Extractor)(nil)

// ErrPDFToolNotFound indicates pdftotext is not installed.
var ErrPDFToolNotFound = errors.New("pdftotext not found in PATH (install poppler-utils)")

// Extractor converts PDF bytes to plain text using pdftotext.
type Extractor struct {
	runner driven.CommandRunner
}

// New creates a PDF extractor that runs pdftotext via os/exec.
func New() *Extractor {
	return NewWithRunner(extractors.NewExecRunner())
}

// NewWithRunner creates a PDF extractor with an injected command runner.
// Used in tests to avoid requiring pdftotext.
func NewWithRunner(runner driven.CommandRunner) *Extractor {
	return &Extractor{runner: runner}
}

// SupportedMediaTypes returns the MIME types this extractor handles.
func (e *Extractor) SupportedMediaTypes() []string {
	return []string{extractors.MediaTypePDF}
}

// Priority returns the selection priority.
func (e *Extractor) Priority() int {
	return 50
}

// Extract writes the PDF to a temporary file and converts it with
// pdftotext. Conversion failures are logged and normalised to
// domain.ErrExtractionFailed.
func (e *Extractor) Extract(ctx context.Context, content []byte, fileName, _ string) (string, error) {
	if len(content) == 0 {
		return "", fmt.Errorf("%w: empty file", domain.ErrInvalidInput)
	}

	if _, err := exec.LookPath("pdftotext"); err != nil {
		return "", ErrPDFToolNotFound
	}

	tmp, err := os.CreateTemp("", "resourcehub-*.pdf")
	if err != nil {
		logger.Warn("pdf: creating temp file for %s: %v", fileName, err)
		return "", domain.ErrExtractionFailed
	}
	defer os.Remove(tmp.Name())

	if _, err := tmp.Write(content); err != nil {
		tmp.Close()
		logger.Warn("pdf: writing temp file for %s: %v", fileName, err)
		return "", domain.ErrExtractionFailed
	}
	if err := tmp.Close(); err != nil {
		logger.Warn("pdf: closing temp file for %s: %v", fileName, err)
		return "", domain.ErrExtractionFailed
	}

	// "-" sends the extracted text to stdout
	output, err := e.runner.Run(ctx, "pdftotext", "-enc", "UTF-8", tmp.Name(), "-")
	if err != nil {
		logger.Warn("pdf: pdftotext failed for %s: %v", filepath.Base(fileName), err)
		return "", domain.ErrExtractionFailed
	}

	return strings.TrimSpace(string(output)), nil
}
