package domain

// SearchFilters restricts a similarity query to exact metadata matches.
// Zero-value fields impose no constraint.
type SearchFilters struct {
	// Department filters to resources tagged with a department.
	Department string

	// Subject filters to resources tagged with a subject.
	Subject string

	// UploadedBy filters to a single uploader.
	UploadedBy string
}

// IsZero reports whether no filter field is set.
func (f SearchFilters) IsZero() bool {
	return f == SearchFilters{}
}

// VectorEntry is the unit stored in the vector index.
type VectorEntry struct {
	// ID is the chunk id.
	ID string

	// Embedding is the vector representation of the chunk text.
	Embedding []float32

	// Metadata is the typed payload stored with the vector.
	Metadata ChunkMetadata
}

// SearchResult is a raw similarity hit returned by the vector index,
// before per-resource aggregation.
type SearchResult struct {
	// ID is the matched chunk id.
	ID string

	// Score is the similarity score. Higher is more similar.
	Score float64

	// Metadata is the payload copied from the matched entry.
	Metadata ChunkMetadata
}

// ResourceHit is one aggregated search result per source resource:
// the best-scoring chunk of each resource, with a short snippet.
type ResourceHit struct {
	// ResourceID identifies the source resource.
	ResourceID string

	// Title is the resource title from the chunk metadata.
	Title string

	// Score is the similarity score of the best-ranked chunk.
	Score float64

	// Snippet is a truncated preview of the matched chunk text.
	Snippet string
}
