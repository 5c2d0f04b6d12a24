package driving

import (
	"context"

	"github.com/campushq/resourcehub/internal/core/domain"
)

// Answer is a grounded response to a free-text question.
type Answer struct {
	// Text is the language model's reply.
	Text string

	// Hits are the aggregated resources the answer was grounded on.
	Hits []domain.ResourceHit
}

// SearchService answers free-text queries against the vector index.
type SearchService interface {
	// Search returns at most one hit per resource, best score first.
	Search(ctx context.Context, query string, filters domain.SearchFilters) ([]domain.ResourceHit, error)

	// Ask retrieves relevant passages and composes a grounded answer.
	Ask(ctx context.Context, query string, filters domain.SearchFilters) (*Answer, error)
}
