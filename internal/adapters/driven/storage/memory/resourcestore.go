// Package memory provides an in-memory ResourceStore for tests and development.
package memory

import (
	"context"
	"fmt"
	"sort"
	"sync"
	"time"

	"github.com/campushq/resourcehub/internal/core/domain"
	"github.com/campushq/resourcehub/internal/core/ports/driven"
)

// Ensure ResourceStore implements the interface.
var _ driven.ResourceStore = (*ResourceStore)(nil)

// ResourceStore is an in-memory implementation of driven.ResourceStore.
type ResourceStore struct {
	mu        sync.RWMutex
	resources map[string]domain.Resource
}

// NewResourceStore creates a new in-memory resource store.
func NewResourceStore() *ResourceStore {
	return &ResourceStore{
		resources: make(map[string]domain.Resource),
	}
}

// Save stores or updates a resource record.
func (s *ResourceStore) Save(_ context.Context, resource *domain.Resource) error {
	if resource == nil || resource.ID == "" {
		return fmt.Errorf("%w: resource ID is required", domain.ErrInvalidInput)
	}

	now := time.Now().UTC()
	if resource.CreatedAt.IsZero() {
		resource.CreatedAt = now
	}
	resource.UpdatedAt = now

	s.mu.Lock()
	defer s.mu.Unlock()
	s.resources[resource.ID] = *resource
	return nil
}

// Get retrieves a resource by ID.
func (s *ResourceStore) Get(_ context.Context, id string) (*domain.Resource, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	resource, ok := s.resources[id]
	if !ok {
		return nil, domain.ErrNotFound
	}
	return &resource, nil
}

// List returns all resources, most recently updated first.
func (s *ResourceStore) List(_ context.Context) ([]domain.Resource, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	result := make([]domain.Resource, 0, len(s.resources))
	for _, resource := range s.resources {
		result = append(result, resource)
	}
	sort.Slice(result, func(i, j int) bool {
		if result[i].UpdatedAt.Equal(result[j].UpdatedAt) {
			return result[i].ID < result[j].ID
		}
		return result[i].UpdatedAt.After(result[j].UpdatedAt)
	})
	return result, nil
}

// UpdateSummary sets the generated summary on a resource record.
func (s *ResourceStore) UpdateSummary(_ context.Context, id, summary string) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	resource, ok := s.resources[id]
	if !ok {
		return domain.ErrNotFound
	}
	resource.Summary = summary
	resource.UpdatedAt = time.Now().UTC()
	s.resources[id] = resource
	return nil
}

// Delete removes a resource record.
func (s *ResourceStore) Delete(_ context.Context, id string) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	delete(s.resources, id)
	return nil
}
