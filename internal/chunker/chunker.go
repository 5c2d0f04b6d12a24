// Package chunker provides boundary-aware text splitting for the
// ingestion pipeline.
package chunker

import "strings"

// DefaultChunkSize is the default number of characters per chunk.
const DefaultChunkSize = 1000

// DefaultOverlap is the default number of overlapping characters.
const DefaultOverlap = 200

// Splitter splits plain text into overlapping chunks, preferring to break
// at sentence or line boundaries past the midpoint of each window.
type Splitter struct {
	chunkSize int
	overlap   int
}

// Option configures the splitter.
type Option func(*Splitter)

// WithChunkSize sets the chunk size in characters.
func WithChunkSize(size int) Option {
	return func(s *Splitter) {
		if size > 0 {
			s.chunkSize = size
		}
	}
}

// WithOverlap sets the overlap between chunks in characters.
func WithOverlap(overlap int) Option {
	return func(s *Splitter) {
		if overlap >= 0 {
			s.overlap = overlap
		}
	}
}

// New creates a new splitter with the given options.
func New(opts ...Option) *Splitter {
	s := &Splitter{
		chunkSize: DefaultChunkSize,
		overlap:   DefaultOverlap,
	}

	for _, opt := range opts {
		opt(s)
	}

	// An overlap >= chunkSize would stall the cursor
	if s.overlap >= s.chunkSize {
		s.overlap = s.chunkSize / 4
	}

	return s
}

// ChunkSize returns the configured chunk size.
func (s *Splitter) ChunkSize() int {
	return s.chunkSize
}

// Overlap returns the configured overlap.
func (s *Splitter) Overlap() int {
	return s.overlap
}

// Split divides text into trimmed, overlapping chunks in document order.
// Windows that do not reach the end of the text are shortened to the last
// '.' or '\n' in the window when that boundary lies past the window's
// midpoint. Chunks that are empty after trimming are dropped.
func (s *Splitter) Split(text string) []string {
	if text == "" {
		return nil
	}

	textLen := len(text)
	chunks := make([]string, 0, textLen/(s.chunkSize-s.overlap)+1)

	start := 0
	for start < textLen {
		end := start + s.chunkSize
		if end >= textLen {
			// Final window reaches the end of the text
			appendTrimmed(&chunks, text[start:])
			break
		}

		window := text[start:end]

		// Prefer a sentence or line boundary past the window midpoint
		breakPoint := lastBoundary(window)
		next := end - s.overlap
		if breakPoint >= 0 {
			abs := start + breakPoint
			if float64(abs) > float64(start)+float64(s.chunkSize)*0.5 {
				appendTrimmed(&chunks, text[start:abs+1])
				next = abs + 1 - s.overlap
			} else {
				appendTrimmed(&chunks, window)
			}
		} else {
			appendTrimmed(&chunks, window)
		}

		// Forward-progress guard: aggressive overlap settings can push
		// the cursor back past the previous start
		if next <= start {
			next = start + 1
		}
		start = next
	}

	return chunks
}

// lastBoundary returns the index of the last '.' or '\n' in the window,
// or -1 when neither occurs.
func lastBoundary(window string) int {
	period := strings.LastIndexByte(window, '.')
	newline := strings.LastIndexByte(window, '\n')
	if newline > period {
		return newline
	}
	return period
}

func appendTrimmed(chunks *[]string, chunk string) {
	if trimmed := strings.TrimSpace(chunk); trimmed != "" {
		*chunks = append(*chunks, trimmed)
	}
}
