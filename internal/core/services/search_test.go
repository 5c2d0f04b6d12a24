package services

import (
	"context"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/campushq/resourcehub/internal/core/domain"
)

func searchResults() []domain.SearchResult {
	return []domain.SearchResult{
		{
			ID:    "res-a_chunk_1",
			Score: 0.9,
			Metadata: domain.ChunkMetadata{
				ResourceID: "res-a",
				Title:      "Enrollment Handbook",
				Text:       "Enrollment opens in the first week of the semester.",
			},
		},
		{
			ID:    "res-b_chunk_0",
			Score: 0.85,
			Metadata: domain.ChunkMetadata{
				ResourceID: "res-b",
				Title:      "Course Catalog",
				Text:       "The catalog lists all undergraduate courses.",
			},
		},
		{
			ID:    "res-a_chunk_3",
			Score: 0.8,
			Metadata: domain.ChunkMetadata{
				ResourceID: "res-a",
				Title:      "Enrollment Handbook",
				Text:       "Late enrollment requires advisor approval.",
			},
		},
	}
}

func newSearchFixture() (*SearchService, *mockEmbedder, *mockVectorIndex, *mockLLM) {
	embedder := &mockEmbedder{}
	vectors := newMockVectorIndex()
	llm := &mockLLM{chatResult: "Enrollment opens in week one [Enrollment Handbook]."}
	service := NewSearchService(embedder, vectors, NewComposer(llm))
	return service, embedder, vectors, llm
}

func TestSearchService_Search_AggregatesByResource(t *testing.T) {
	service, _, vectors, _ := newSearchFixture()
	vectors.results = searchResults()

	hits, err := service.Search(context.Background(), "enrollment", domain.SearchFilters{})
	require.NoError(t, err)

	// Two resources, each represented by its best chunk, best first.
	require.Len(t, hits, 2)
	assert.Equal(t, "res-a", hits[0].ResourceID)
	assert.Equal(t, "Enrollment Handbook", hits[0].Title)
	assert.InDelta(t, 0.9, hits[0].Score, 1e-9)
	assert.Equal(t, "res-b", hits[1].ResourceID)
	assert.InDelta(t, 0.85, hits[1].Score, 1e-9)

	// Snippet comes from the best chunk, with the trailing marker.
	assert.Equal(t, "Enrollment opens in the first week of the semester....", hits[0].Snippet)
}

func TestSearchService_Search_SnippetTruncation(t *testing.T) {
	service, _, vectors, _ := newSearchFixture()
	long := strings.Repeat("x", 450)
	vectors.results = []domain.SearchResult{{
		ID:       "res-a_chunk_0",
		Score:    0.5,
		Metadata: domain.ChunkMetadata{ResourceID: "res-a", Text: long},
	}}

	hits, err := service.Search(context.Background(), "anything", domain.SearchFilters{})
	require.NoError(t, err)
	require.Len(t, hits, 1)
	assert.Len(t, hits[0].Snippet, 203)
	assert.True(t, strings.HasSuffix(hits[0].Snippet, "..."))
}

func TestSearchService_Search_EmptyQuery(t *testing.T) {
	service, _, _, _ := newSearchFixture()

	_, err := service.Search(context.Background(), "   ", domain.SearchFilters{})
	assert.ErrorIs(t, err, domain.ErrInvalidInput)
}

func TestSearchService_Search_NoResults(t *testing.T) {
	service, _, _, _ := newSearchFixture()

	hits, err := service.Search(context.Background(), "nothing indexed", domain.SearchFilters{})
	require.NoError(t, err)
	assert.Empty(t, hits)
}

func TestSearchService_Search_EmbeddingError(t *testing.T) {
	service, embedder, _, _ := newSearchFixture()
	embedder.embedErr = domain.ErrEmbeddingService

	_, err := service.Search(context.Background(), "query", domain.SearchFilters{})
	assert.ErrorIs(t, err, domain.ErrEmbeddingService)
}

func TestSearchService_Search_IndexError(t *testing.T) {
	service, _, vectors, _ := newSearchFixture()
	vectors.queryErr = domain.ErrVectorIndex

	_, err := service.Search(context.Background(), "query", domain.SearchFilters{})
	assert.ErrorIs(t, err, domain.ErrVectorIndex)
}

func TestSearchService_Ask(t *testing.T) {
	service, _, vectors, llm := newSearchFixture()
	vectors.results = searchResults()

	answer, err := service.Ask(context.Background(), "When does enrollment open?", domain.SearchFilters{})
	require.NoError(t, err)

	assert.Equal(t, "Enrollment opens in week one [Enrollment Handbook].", answer.Text)
	require.Len(t, answer.Hits, 2)
	assert.Equal(t, "res-a", answer.Hits[0].ResourceID)

	// All retrieved chunk texts go into the prompt, sources deduplicated.
	require.Len(t, llm.lastMessages, 2)
	user := llm.lastMessages[1].Content
	assert.Contains(t, user, "Enrollment opens in the first week of the semester.")
	assert.Contains(t, user, "Late enrollment requires advisor approval.")
	assert.Contains(t, user, "Sources: Enrollment Handbook, Course Catalog")
}

func TestSearchService_Ask_NoContext(t *testing.T) {
	service, _, _, llm := newSearchFixture()
	llm.chatResult = "I could not find relevant information in the context."

	answer, err := service.Ask(context.Background(), "obscure question", domain.SearchFilters{})
	require.NoError(t, err)
	assert.Empty(t, answer.Hits)
	assert.NotEmpty(t, answer.Text)
}
