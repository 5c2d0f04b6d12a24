// Package memory provides an in-memory vector index for tests and
// offline development.
package memory

import (
	"context"
	"math"
	"sort"
	"sync"

	"github.com/campushq/resourcehub/internal/core/domain"
	"github.com/campushq/resourcehub/internal/core/ports/driven"
)

// Ensure Index implements the interface.
var _ driven.VectorIndex = (*Index)(nil)

// Index is an in-memory implementation of driven.VectorIndex using
// exact cosine similarity.
type Index struct {
	mu      sync.RWMutex
	entries map[string]domain.VectorEntry
}

// NewIndex creates a new in-memory vector index.
func NewIndex() *Index {
	return &Index{
		entries: make(map[string]domain.VectorEntry),
	}
}

// Upsert stores an entry, overwriting any existing entry with the same id.
func (x *Index) Upsert(_ context.Context, entry domain.VectorEntry) error {
	if err := entry.Metadata.Validate(); err != nil {
		return err
	}
	x.mu.Lock()
	defer x.mu.Unlock()
	x.entries[entry.ID] = entry
	return nil
}

// Query returns the topK most similar entries, best score first.
func (x *Index) Query(_ context.Context, vector []float32, topK int, filter domain.SearchFilters) ([]domain.SearchResult, error) {
	if topK <= 0 {
		topK = 10
	}

	x.mu.RLock()
	defer x.mu.RUnlock()

	results := make([]domain.SearchResult, 0, len(x.entries))
	for _, entry := range x.entries {
		if !matches(entry.Metadata, filter) {
			continue
		}
		results = append(results, domain.SearchResult{
			ID:       entry.ID,
			Score:    cosineSimilarity(vector, entry.Embedding),
			Metadata: entry.Metadata,
		})
	}

	sort.Slice(results, func(i, j int) bool {
		if results[i].Score != results[j].Score {
			return results[i].Score > results[j].Score
		}
		return results[i].ID < results[j].ID
	})

	if len(results) > topK {
		results = results[:topK]
	}
	return results, nil
}

// Delete removes an entry by id. Unknown ids are not an error.
func (x *Index) Delete(_ context.Context, id string) error {
	x.mu.Lock()
	defer x.mu.Unlock()
	delete(x.entries, id)
	return nil
}

// DeleteByResource removes every entry whose metadata names the resource.
func (x *Index) DeleteByResource(_ context.Context, resourceID string) error {
	x.mu.Lock()
	defer x.mu.Unlock()
	for id, entry := range x.entries {
		if entry.Metadata.ResourceID == resourceID {
			delete(x.entries, id)
		}
	}
	return nil
}

// Close releases resources.
func (x *Index) Close() error {
	return nil
}

// Len returns the number of stored entries. Test helper.
func (x *Index) Len() int {
	x.mu.RLock()
	defer x.mu.RUnlock()
	return len(x.entries)
}

// Get returns a stored entry by id. Test helper.
func (x *Index) Get(id string) (domain.VectorEntry, bool) {
	x.mu.RLock()
	defer x.mu.RUnlock()
	entry, ok := x.entries[id]
	return entry, ok
}

// matches reports whether metadata satisfies the exact-match conjunction.
func matches(m domain.ChunkMetadata, f domain.SearchFilters) bool {
	if f.Department != "" && m.Department != f.Department {
		return false
	}
	if f.Subject != "" && m.Subject != f.Subject {
		return false
	}
	if f.UploadedBy != "" && m.UploadedBy != f.UploadedBy {
		return false
	}
	return true
}

// cosineSimilarity computes the cosine of the angle between two vectors.
// Mismatched lengths or zero vectors score 0.
func cosineSimilarity(a, b []float32) float64 {
	if len(a) != len(b) || len(a) == 0 {
		return 0
	}
	var dot, normA, normB float64
	for i := range a {
		dot += float64(a[i]) * float64(b[i])
		normA += float64(a[i]) * float64(a[i])
		normB += float64(b[i]) * float64(b[i])
	}
	if normA == 0 || normB == 0 {
		return 0
	}
	return dot / (math.Sqrt(normA) * math.Sqrt(normB))
}
