package extractors

import (
	"context"
	"fmt"
	"sort"
	"sync"

	"github.com/campushq/resourcehub/internal/core/domain"
	"github.com/campushq/resourcehub/internal/core/ports/driven"
)

// Ensure Registry implements the interface.
var _ driven.ExtractorRegistry = (*Registry)(nil)

// Registry dispatches extraction based on media type. When multiple
// extractors claim a media type the highest priority wins.
type Registry struct {
	mu         sync.RWMutex
	extractors []driven.Extractor
}

// NewRegistry creates an empty extractor registry.
func NewRegistry() *Registry {
	return &Registry{}
}

// Register adds an extractor to the registry.
func (r *Registry) Register(extractor driven.Extractor) {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.extractors = append(r.extractors, extractor)
}

// Extract selects the extractor for the media type and delegates to it.
func (r *Registry) Extract(ctx context.Context, content []byte, fileName, mediaType string) (string, error) {
	extractor, err := r.forMediaType(mediaType)
	if err != nil {
		return "", err
	}
	return extractor.Extract(ctx, content, fileName, mediaType)
}

// SupportedMediaTypes returns all media types that can be extracted.
func (r *Registry) SupportedMediaTypes() []string {
	r.mu.RLock()
	defer r.mu.RUnlock()

	seen := make(map[string]struct{})
	var types []string
	for _, e := range r.extractors {
		for _, mt := range e.SupportedMediaTypes() {
			if _, ok := seen[mt]; !ok {
				seen[mt] = struct{}{}
				types = append(types, mt)
			}
		}
	}
	sort.Strings(types)
	return types
}

// forMediaType returns the highest-priority extractor for the media type.
func (r *Registry) forMediaType(mediaType string) (driven.Extractor, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	var best driven.Extractor
	for _, e := range r.extractors {
		for _, mt := range e.SupportedMediaTypes() {
			if mt != mediaType {
				continue
			}
			if best == nil || e.Priority() > best.Priority() {
				best = e
			}
		}
	}
	if best == nil {
		return nil, fmt.Errorf("%w: %s", domain.ErrUnsupportedMediaType, mediaType)
	}
	return best, nil
}
