package driven

import "context"

// Extractor converts raw file bytes of a known media type into plain text.
// Each extractor handles specific MIME types (e.g., PDF, Word documents).
type Extractor interface {
	// SupportedMediaTypes returns the MIME types this extractor handles.
	SupportedMediaTypes() []string

	// Priority returns the selection priority (higher = preferred) when
	// multiple extractors claim the same media type.
	Priority() int

	// Extract returns the plain text content of the file, trimmed of
	// leading and trailing whitespace. Parser failures are normalised to
	// domain.ErrExtractionFailed; the cause is logged, not returned.
	Extract(ctx context.Context, content []byte, fileName, mediaType string) (string, error)
}

// ExtractorRegistry dispatches extraction to the extractor registered for
// a media type.
type ExtractorRegistry interface {
	// Extract selects the highest-priority extractor for the media type
	// and delegates to it. Unknown media types fail with
	// domain.ErrUnsupportedMediaType.
	Extract(ctx context.Context, content []byte, fileName, mediaType string) (string, error)

	// Register adds an extractor to the registry.
	Register(extractor Extractor)

	// SupportedMediaTypes returns all media types that can be extracted.
	SupportedMediaTypes() []string
}

// CommandRunner executes an external command and returns its standard
// output. It exists so extractors that shell out (pdftotext, antiword)
// can be tested without the tool installed.
type CommandRunner interface {
	Run(ctx context.Context, name string, args ...string) ([]byte, error)
}
