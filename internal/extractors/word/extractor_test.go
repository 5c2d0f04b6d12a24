package word

import (
	"archive/zip"
	"bytes"
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

// buildDOCX builds a minimal in-memory .docx archive.
func buildDOCX(t *testing.T, documentXML string) []byte {
	t.Helper()

	var buf bytes.Buffer
	w := zip.NewWriter(&buf)
	f, err := w.Create("word/document.xml")
	require.NoError(t, err)
	_, err = f.Write([]byte(documentXML))
	require.NoError(t, err)
	require.NoError(t, w.Close())
	return buf.Bytes()
}

func TestSupportedMediaTypes(t *testing.T) {
	mediaTypes := New().SupportedMediaTypes()
	require.Len(t, mediaTypes, 2)
	assert.Contains(t, mediaTypes, extractors.MediaTypeDOCX)
	assert.Contains(t, mediaTypes, extractors.MediaTypeDOC)
}

func TestExtract_EmptyContent(t *testing.T) {
	_, err := New().Extract(context.Background(), nil, "empty.docx", extractors.MediaTypeDOCX)
	assert.ErrorIs(t, err, domain.ErrInvalidInput)
}

func TestExtract_DOCX(t *testing.T) {
	content := buildDOCX(t, `<?xml version="1.0"?>
<document xmlns:w="http://schemas.openxmlformats.org/wordprocessingml/2006/main">
  <body>
    <p><r><t>First paragraph.</t></r></p>
    <p><r><t>Second </t></r><r><t>paragraph.</t></r></p>
  </body>
</document>`)

	text, err := New().Extract(context.Background(), content, "doc.docx", extractors.MediaTypeDOCX)
	require.NoError(t, err)
	assert.Equal(t, "First paragraph.\nSecond paragraph.", text)
}

func TestExtract_DOCX_NotAnArchive(t *testing.T) {
	_, err := New().Extract(context.Background(), []byte("not a zip"), "doc.docx", extractors.MediaTypeDOCX)
	require.Error(t, err)
	assert.ErrorIs(t, err, domain.ErrExtractionFailed)
}

func TestExtract_DOCX_MissingDocumentXML(t *testing.T) {
	var buf bytes.Buffer
	w := zip.NewWriter(&buf)
	f, err := w.Create("word/other.xml")
	require.NoError(t, err)
	_, err = f.Write([]byte("<x/>"))
	require.NoError(t, err)
	require.NoError(t, w.Close())

	_, err = New().Extract(context.Background(), buf.Bytes(), "doc.docx", extractors.MediaTypeDOCX)
	assert.ErrorIs(t, err, domain.ErrExtractionFailed)
}

func TestExtract_Legacy_WithMockRunner(t *testing.T) {
	if _, err := exec.LookPath("antiword"); err != nil {
		t.Skip("antiword not in PATH, skipping mock runner test")
	}

	runner := &mockRunner{output: []byte("Legacy document text.\n")}
	extractor := NewWithRunner(runner)

	text, err := extractor.Extract(context.Background(), []byte{0xD0, 0xCF, 0x11, 0xE0}, "old.doc", extractors.MediaTypeDOC)
	require.NoError(t, err)
	assert.Equal(t, "Legacy document text.", text)
}

func TestExtract_Legacy_RunnerError(t *testing.T) {
	if _, err := exec.LookPath("antiword"); err != nil {
		t.Skip("antiword not in PATH, skipping runner error test")
	}

	runner := &mockRunner{err: errors.New("antiword exploded")}
	extractor := NewWithRunner(runner)

	_, err := extractor.Extract(context.Background(), []byte{0xD0, 0xCF}, "old.doc", extractors.MediaTypeDOC)
	require.Error(t, err)
	assert.ErrorIs(t, err, domain.ErrExtractionFailed)
	assert.NotContains(t, err.Error(), "exploded")
}

func TestParseDocumentXML_Invalid(t *testing.T) {
	assert.Empty(t, parseDocumentXML([]byte("<<<garbage")))
}
