package domain

import (
	"fmt"
	"time"
)

// Resource represents an uploaded campus file (lecture notes, policy
// document, form) tracked in the relational store.
type Resource struct {
	// ID is the unique identifier for the resource.
	ID string

	// Title is the human-readable title.
	Title string

	// FileName is the original upload file name.
	FileName string

	// MediaType is the MIME type of the uploaded file.
	MediaType string

	// UploadedBy identifies the uploading user.
	UploadedBy string

	// Department is an optional owning department tag.
	Department string

	// Subject is an optional subject tag.
	Subject string

	// Summary is the generated three-bullet summary.
	// Empty until ingestion completes.
	Summary string

	// CreatedAt is when the resource was first stored.
	CreatedAt time.Time

	// UpdatedAt is when the resource was last updated.
	UpdatedAt time.Time
}

// Chunk is a bounded, overlapping segment of a resource's extracted text.
// Chunks are the unit of embedding and retrieval.
type Chunk struct {
	// ResourceID links to the parent Resource.
	ResourceID string

	// Index is the zero-based position within the resource.
	Index int

	// Total is the chunk count for the whole resource.
	Total int

	// Text is the chunk content.
	Text string
}

// ID returns the deterministic vector id for this chunk.
// Re-chunking with identical parameters regenerates identical ids, so
// index upserts overwrite rather than duplicate.
func (c Chunk) ID() string {
	return ChunkID(c.ResourceID, c.Index)
}

// ChunkID builds the vector id for a (resource, index) pair.
func ChunkID(resourceID string, index int) string {
	return fmt.Sprintf("%s_chunk_%d", resourceID, index)
}

// ChunkMetadata is the typed metadata record stored alongside each vector.
// The index doubles as the text store for retrieval snippets, so the chunk
// text travels with the vector.
type ChunkMetadata struct {
	ResourceID  string `json:"resourceId"`
	FileName    string `json:"fileName"`
	Title       string `json:"title"`
	UploadedBy  string `json:"uploadedBy"`
	Department  string `json:"department"`
	Subject     string `json:"subject"`
	ChunkIndex  int    `json:"chunkIndex"`
	TotalChunks int    `json:"totalChunks"`
	Text        string `json:"text"`
}

// Validate checks the fields the index boundary requires.
func (m ChunkMetadata) Validate() error {
	if m.ResourceID == "" {
		return fmt.Errorf("%w: metadata missing resource id", ErrInvalidInput)
	}
	if m.ChunkIndex < 0 || m.TotalChunks <= m.ChunkIndex {
		return fmt.Errorf("%w: chunk index %d out of range [0,%d)", ErrInvalidInput, m.ChunkIndex, m.TotalChunks)
	}
	return nil
}
