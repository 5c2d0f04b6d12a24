package domain

import "errors"

// Domain errors represent business logic failures.
// These are distinct from infrastructure errors.
var (
	// ErrNotFound indicates a requested entity does not exist.
	ErrNotFound = errors.New("not found")

	// ErrInvalidInput indicates malformed or invalid input.
	ErrInvalidInput = errors.New("invalid input")

	// ErrUnsupportedMediaType indicates no extractor handles the file's
	// media type.
	ErrUnsupportedMediaType = errors.New("unsupported media type")

	// ErrExtractionFailed indicates a parser failed on a supported media
	// type. The underlying cause is logged, not propagated.
	ErrExtractionFailed = errors.New("failed to extract text from file")

	// ErrInsufficientContent indicates the extracted text is too short
	// to be worth indexing.
	ErrInsufficientContent = errors.New("file contains insufficient text content")

	// ErrEmbeddingService indicates the embedding service call failed.
	ErrEmbeddingService = errors.New("embedding service error")

	// ErrVectorIndex indicates a vector index operation failed.
	ErrVectorIndex = errors.New("vector index error")

	// ErrGenerationService indicates the language model call failed.
	ErrGenerationService = errors.New("generation service error")
)
