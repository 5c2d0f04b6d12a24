package services

import (
	"context"
	"fmt"
	"strings"

	"github.com/campushq/resourcehub/internal/core/domain"
	"github.com/campushq/resourcehub/internal/core/ports/driven"
	"github.com/campushq/resourcehub/internal/core/ports/driving"
	"github.com/campushq/resourcehub/internal/logger"
)

const (
	// searchTopK is the number of chunk matches fetched per query.
	searchTopK = 10

	// snippetLength is the number of characters of chunk text shown per hit.
	snippetLength = 200
)

// Ensure SearchService implements the interface.
var _ driving.SearchService = (*SearchService)(nil)

// SearchService answers similarity queries over the ingested corpus.
type SearchService struct {
	embedder driven.EmbeddingService
	vectors  driven.VectorIndex
	composer *Composer
}

// NewSearchService creates a new search service.
func NewSearchService(
	embedder driven.EmbeddingService,
	vectors driven.VectorIndex,
	composer *Composer,
) *SearchService {
	return &SearchService{
		embedder: embedder,
		vectors:  vectors,
		composer: composer,
	}
}

// Search embeds the query, fetches the closest chunks and aggregates them
// into one hit per resource, keeping each resource's best-scoring chunk.
func (s *SearchService) Search(ctx context.Context, query string, filters domain.SearchFilters) ([]domain.ResourceHit, error) {
	results, err := s.queryChunks(ctx, query, filters)
	if err != nil {
		return nil, err
	}
	return aggregateByResource(results), nil
}

// Ask answers a question grounded in the retrieved chunks. The returned
// hits identify the resources the answer draws from.
func (s *SearchService) Ask(ctx context.Context, query string, filters domain.SearchFilters) (*driving.Answer, error) {
	results, err := s.queryChunks(ctx, query, filters)
	if err != nil {
		return nil, err
	}

	hits := aggregateByResource(results)
	if len(results) == 0 {
		// Nothing retrieved; let the model say so rather than invent.
		logger.Debug("No context retrieved for question")
	}

	contexts := make([]string, 0, len(results))
	for _, result := range results {
		contexts = append(contexts, result.Metadata.Text)
	}
	sources := make([]string, 0, len(hits))
	for _, hit := range hits {
		sources = append(sources, hit.Title)
	}

	text, err := s.composer.Answer(ctx, query, contexts, sources)
	if err != nil {
		return nil, err
	}

	return &driving.Answer{
		Text: text,
		Hits: hits,
	}, nil
}

// queryChunks embeds the query and runs the similarity search.
func (s *SearchService) queryChunks(ctx context.Context, query string, filters domain.SearchFilters) ([]domain.SearchResult, error) {
	query = strings.TrimSpace(query)
	if query == "" {
		return nil, fmt.Errorf("%w: query is empty", domain.ErrInvalidInput)
	}

	logger.Section("Search")
	logger.Debug("Query: %q", query)

	embedding, err := s.embedder.Embed(ctx, query)
	if err != nil {
		return nil, fmt.Errorf("embedding query: %w", err)
	}

	results, err := s.vectors.Query(ctx, embedding, searchTopK, filters)
	if err != nil {
		return nil, fmt.Errorf("querying index: %w", err)
	}
	logger.Debug("Raw results: %d chunks", len(results))
	return results, nil
}

// aggregateByResource collapses chunk matches into one hit per resource.
// Results arrive sorted by score, so the first chunk seen for a resource
// is its best one; resource order follows that of their best chunks.
func aggregateByResource(results []domain.SearchResult) []domain.ResourceHit {
	seen := make(map[string]struct{}, len(results))
	hits := make([]domain.ResourceHit, 0, len(results))
	for _, result := range results {
		resourceID := result.Metadata.ResourceID
		if resourceID == "" {
			continue
		}
		if _, ok := seen[resourceID]; ok {
			continue
		}
		seen[resourceID] = struct{}{}
		hits = append(hits, domain.ResourceHit{
			ResourceID: resourceID,
			Title:      result.Metadata.Title,
			Score:      result.Score,
			Snippet:    snippet(result.Metadata.Text),
		})
	}
	return hits
}

// snippet returns the leading part of a chunk text for display. The
// trailing marker is always appended, even when nothing was cut.
func snippet(text string) string {
	runes := []rune(text)
	if len(runes) > snippetLength {
		runes = runes[:snippetLength]
	}
	return string(runes) + "..."
}
