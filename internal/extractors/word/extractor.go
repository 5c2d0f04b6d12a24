// Package word extracts text from Word documents: modern .docx files are
// parsed directly (ZIP + XML), legacy .doc files are converted with
// antiword.
package word

import (
	"archive/zip"
	"bytes"
	"context"
	"encoding/xml"
	"errors"
	"fmt"
	"io"
	"os"
	"os/exec"
	"strings"

	"github.com/campushq/resourcehub/internal/core/domain"
	"github.com/campushq/resourcehub/internal/core/ports/driven"
	"github.com/campushq/resourcehub/internal/extractors"
	"github.com/campushq/resourcehub/internal/logger"
)

// Ensure Extractor implements the interface.
var _ driven.Extractor = (*Extractor)(nil)

// ErrDocToolNotFound indicates antiword is not installed.
var ErrDocToolNotFound = errors.New("antiword not found in PATH")

// Extractor converts Word documents to plain text.
type Extractor struct {
	runner driven.CommandRunner
}

// New creates a Word extractor that converts legacy files via os/exec.
func New() *Extractor {
	return NewWithRunner(extractors.NewExecRunner())
}

// NewWithRunner creates a Word extractor with an injected command runner.
// Used in tests to avoid requiring antiword.
func NewWithRunner(runner driven.CommandRunner) *Extractor {
	return &Extractor{runner: runner}
}

// SupportedMediaTypes returns the MIME types this extractor handles.
func (e *Extractor) SupportedMediaTypes() []string {
	return []string{
		extractors.MediaTypeDOCX,
		extractors.MediaTypeDOC,
	}
}

// Priority returns the selection priority.
func (e *Extractor) Priority() int {
	return 50
}

// Extract dispatches on media type. Parser failures are logged and
// normalised to domain.ErrExtractionFailed.
func (e *Extractor) Extract(ctx context.Context, content []byte, fileName, mediaType string) (string, error) {
	if len(content) == 0 {
		return "", fmt.Errorf("%w: empty file", domain.ErrInvalidInput)
	}

	if mediaType == extractors.MediaTypeDOC {
		return e.extractLegacy(ctx, content, fileName)
	}
	return e.extractDOCX(content, fileName)
}

// extractDOCX pulls text out of word/document.xml inside the archive.
func (e *Extractor) extractDOCX(content []byte, fileName string) (string, error) {
	reader, err := zip.NewReader(bytes.NewReader(content), int64(len(content)))
	if err != nil {
		logger.Warn("word: opening %s as archive: %v", fileName, err)
		return "", domain.ErrExtractionFailed
	}

	for _, file := range reader.File {
		if file.Name != "word/document.xml" {
			continue
		}

		rc, err := file.Open()
		if err != nil {
			logger.Warn("word: opening document.xml in %s: %v", fileName, err)
			return "", domain.ErrExtractionFailed
		}

		raw, err := io.ReadAll(rc)
		rc.Close()
		if err != nil {
			logger.Warn("word: reading document.xml in %s: %v", fileName, err)
			return "", domain.ErrExtractionFailed
		}

		return parseDocumentXML(raw), nil
	}

	logger.Warn("word: no word/document.xml in %s", fileName)
	return "", domain.ErrExtractionFailed
}

// extractLegacy converts a binary .doc file with antiword.
func (e *Extractor) extractLegacy(ctx context.Context, content []byte, fileName string) (string, error) {
	if _, err := exec.LookPath("antiword"); err != nil {
		return "", ErrDocToolNotFound
	}

	tmp, err := os.CreateTemp("", "resourcehub-*.doc")
	if err != nil {
		logger.Warn("word: creating temp file for %s: %v", fileName, err)
		return "", domain.ErrExtractionFailed
	}
	defer os.Remove(tmp.Name())

	if _, err := tmp.Write(content); err != nil {
		tmp.Close()
		logger.Warn("word: writing temp file for %s: %v", fileName, err)
		return "", domain.ErrExtractionFailed
	}
	if err := tmp.Close(); err != nil {
		logger.Warn("word: closing temp file for %s: %v", fileName, err)
		return "", domain.ErrExtractionFailed
	}

	output, err := e.runner.Run(ctx, "antiword", tmp.Name())
	if err != nil {
		logger.Warn("word: antiword failed for %s: %v", fileName, err)
		return "", domain.ErrExtractionFailed
	}

	return strings.TrimSpace(string(output)), nil
}

// documentXML represents the structure of word/document.xml.
type documentXML struct {
	Body struct {
		Paragraphs []paragraph `xml:"p"`
	} `xml:"body"`
}

type paragraph struct {
	Runs []run `xml:"r"`
}

type run struct {
	Text []textElement `xml:"t"`
}

type textElement struct {
	Content string `xml:",chardata"`
}

// parseDocumentXML extracts the paragraph text from the document XML.
func parseDocumentXML(content []byte) string {
	var doc documentXML
	if err := xml.Unmarshal(content, &doc); err != nil {
		return ""
	}

	var result strings.Builder
	for i, para := range doc.Body.Paragraphs {
		if i > 0 {
			result.WriteString("\n")
		}
		for _, r := range para.Runs {
			for _, text := range r.Text {
				result.WriteString(text.Content)
			}
		}
	}

	return strings.TrimSpace(result.String())
}
