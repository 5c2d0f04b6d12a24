package mcp

import (
	"context"

	"github.com/campushq/resourcehub/internal/adapters/driven/storage/memory"
	"github.com/campushq/resourcehub/internal/core/domain"
	"github.com/campushq/resourcehub/internal/core/ports/driving"
)

// mockSearchService is a mock implementation of driving.SearchService.
type mockSearchService struct {
	hits    []domain.ResourceHit
	answer  *driving.Answer
	err     error
	lastQ   string
	filters domain.SearchFilters
}

func (m *mockSearchService) Search(
	_ context.Context,
	query string,
	filters domain.SearchFilters,
) ([]domain.ResourceHit, error) {
	m.lastQ = query
	m.filters = filters
	return m.hits, m.err
}

func (m *mockSearchService) Ask(
	_ context.Context,
	query string,
	filters domain.SearchFilters,
) (*driving.Answer, error) {
	m.lastQ = query
	m.filters = filters
	if m.err != nil {
		return nil, m.err
	}
	return m.answer, nil
}

// newTestResourceStore returns an in-memory store seeded with resources.
func newTestResourceStore(resources ...*domain.Resource) *memory.ResourceStore {
	store := memory.NewResourceStore()
	for _, resource := range resources {
		_ = store.Save(context.Background(), resource)
	}
	return store
}
