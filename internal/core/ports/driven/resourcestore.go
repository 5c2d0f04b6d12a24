package driven

import (
	"context"

	"github.com/campushq/resourcehub/internal/core/domain"
)

// ResourceStore persists resource records.
// Backed by SQLite for metadata storage.
type ResourceStore interface {
	// Save stores or updates a resource record.
	Save(ctx context.Context, resource *domain.Resource) error

	// Get retrieves a resource by ID.
	Get(ctx context.Context, id string) (*domain.Resource, error)

	// List returns all resources, most recently updated first.
	List(ctx context.Context) ([]domain.Resource, error)

	// UpdateSummary sets the generated summary on a resource record.
	UpdateSummary(ctx context.Context, id, summary string) error

	// Delete removes a resource record.
	Delete(ctx context.Context, id string) error
}
