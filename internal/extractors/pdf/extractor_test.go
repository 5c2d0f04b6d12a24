package pdf

import (
	"context"
	"errors"
	"os/exec"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/campushq/resourcehub/internal/core/domain"
	"github.com/campushq/resourcehub/internal/extractors"
)

// mockRunner is a test double for CommandRunner.
type mockRunner struct {
	output []byte
	err    error
}

func (m *mockRunner) Run(_ context.Context, _ string, _ ...string) ([]byte, error) {
	return m.output, m.err
}

func TestNew(t *testing.T) {
	extractor := New()
	require.NotNil(t, extractor)
	assert.IsType(t, &Extractor{}, extractor)
}

func TestSupportedMediaTypes(t *testing.T) {
	extractor := New()
	mediaTypes := extractor.SupportedMediaTypes()

	require.Len(t, mediaTypes, 1)
	assert.Contains(t, mediaTypes, extractors.MediaTypePDF)
}

func TestPriority(t *testing.T) {
	assert.Equal(t, 50, New().Priority())
}

func TestExtract_EmptyContent(t *testing.T) {
	extractor := New()

	_, err := extractor.Extract(context.Background(), nil, "empty.pdf", extractors.MediaTypePDF)
	assert.ErrorIs(t, err, domain.ErrInvalidInput)
}

// TestExtract_WithMockRunner tests extraction with a mocked pdftotext.
func TestExtract_WithMockRunner(t *testing.T) {
	// LookPath check happens before the runner.
	if _, err := exec.LookPath("pdftotext"); err != nil {
		t.Skip("pdftotext not in PATH, skipping mock runner test")
	}

	runner := &mockRunner{output: []byte("  Extracted PDF text.\n")}
	extractor := NewWithRunner(runner)

	text, err := extractor.Extract(context.Background(), []byte("%PDF-1.4 fake"), "doc.pdf", extractors.MediaTypePDF)
	require.NoError(t, err)
	assert.Equal(t, "Extracted PDF text.", text, "output should be trimmed")
}

// TestExtract_RunnerError verifies parser failures are normalised.
func TestExtract_RunnerError(t *testing.T) {
	if _, err := exec.LookPath("pdftotext"); err != nil {
		t.Skip("pdftotext not in PATH, skipping runner error test")
	}

	runner := &mockRunner{err: errors.New("pdftotext crashed")}
	extractor := NewWithRunner(runner)

	_, err := extractor.Extract(context.Background(), []byte("%PDF-1.4 corrupt"), "bad.pdf", extractors.MediaTypePDF)
	require.Error(t, err)
	assert.ErrorIs(t, err, domain.ErrExtractionFailed)
	// The cause must not leak to the caller.
	assert.NotContains(t, err.Error(), "crashed")
}

func TestErrPDFToolNotFound(t *testing.T) {
	assert.Contains(t, ErrPDFToolNotFound.Error(), "pdftotext")
}
