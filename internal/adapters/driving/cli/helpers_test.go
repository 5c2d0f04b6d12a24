package cli

import (
	"context"

	"github.com/campushq/resourcehub/internal/adapters/driven/storage/memory"
	"github.com/campushq/resourcehub/internal/core/domain"
	"github.com/campushq/resourcehub/internal/core/ports/driving"
)

// mockSearchService implements driving.SearchService for command tests.
type mockSearchService struct {
	hits    []domain.ResourceHit
	answer  *driving.Answer
	err     error
	lastQ   string
	filters domain.SearchFilters
}

func (m *mockSearchService) Search(_ context.Context, query string, filters domain.SearchFilters) ([]domain.ResourceHit, error) {
	m.lastQ = query
	m.filters = filters
	return m.hits, m.err
}

func (m *mockSearchService) Ask(_ context.Context, query string, filters domain.SearchFilters) (*driving.Answer, error) {
	m.lastQ = query
	m.filters = filters
	if m.err != nil {
		return nil, m.err
	}
	return m.answer, nil
}

// mockIngestService implements driving.IngestService for command tests.
type mockIngestService struct {
	result  *driving.IngestResult
	err     error
	lastReq driving.IngestRequest
	deleted []string
}

func (m *mockIngestService) Ingest(_ context.Context, req driving.IngestRequest) (*driving.IngestResult, error) {
	m.lastReq = req
	if m.err != nil {
		return nil, m.err
	}
	return m.result, nil
}

func (m *mockIngestService) DeleteResource(_ context.Context, resourceID string) error {
	if m.err != nil {
		return m.err
	}
	m.deleted = append(m.deleted, resourceID)
	return nil
}

// setupTestServices wires mock services into the package-level slots and
// returns a cleanup that restores the previous ones.
func setupTestServices() (search *mockSearchService, ingest *mockIngestService, cleanup func()) {
	oldSearch, oldIngest, oldStore := searchService, ingestService, resourceStore

	search = &mockSearchService{
		hits: []domain.ResourceHit{
			{ResourceID: "res-1", Title: "Exam Guidelines", Score: 0.91, Snippet: "Exams begin..."},
		},
		answer: &driving.Answer{
			Text: "Exams begin in June.",
			Hits: []domain.ResourceHit{{ResourceID: "res-1", Title: "Exam Guidelines", Score: 0.91}},
		},
	}
	ingest = &mockIngestService{
		result: &driving.IngestResult{Summary: "• A\n• B\n• C", ChunksStored: 3},
	}

	searchService = search
	ingestService = ingest
	resourceStore = memory.NewResourceStore()

	cleanup = func() {
		searchService, ingestService, resourceStore = oldSearch, oldIngest, oldStore
	}
	return search, ingest, cleanup
}
