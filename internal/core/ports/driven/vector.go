package driven

import (
	"context"

	"github.com/campushq/resourcehub/internal/core/domain"
)

// VectorIndex provides persistent vector storage with metadata-filtered
// similarity search. Backed by an external service (Qdrant) or an
// in-memory index for tests.
type VectorIndex interface {
	// Upsert stores an entry, overwriting any existing entry with the
	// same id. Idempotent by id.
	Upsert(ctx context.Context, entry domain.VectorEntry) error

	// Query returns up to topK entries most similar to the vector,
	// ordered by descending score. The filter is an exact-match
	// conjunction over metadata fields; zero-value fields impose no
	// constraint.
	Query(ctx context.Context, vector []float32, topK int, filter domain.SearchFilters) ([]domain.SearchResult, error)

	// Delete removes an entry by id. Deleting a non-existent id is not
	// an error.
	Delete(ctx context.Context, id string) error

	// DeleteByResource removes every entry whose metadata names the
	// resource, regardless of chunk count.
	DeleteByResource(ctx context.Context, resourceID string) error

	// Close releases resources.
	Close() error
}
