// Package embedding provides decorators shared by embedding service
// adapters.
package embedding

import (
	"context"

	"golang.org/x/time/rate"

	"github.com/campushq/resourcehub/internal/core/ports/driven"
)

// Ensure RateLimited implements the interface.
var _ driven.EmbeddingService = (*RateLimited)(nil)

// RateLimitConfig holds token bucket settings for embedding calls.
type RateLimitConfig struct {
	// RequestsPerSecond is the sustained rate limit.
	RequestsPerSecond float64
	// BurstSize is the maximum burst size.
	BurstSize int
}

// DefaultRateLimit keeps parallel chunk fan-out well inside typical
// embedding API quotas.
var DefaultRateLimit = RateLimitConfig{RequestsPerSecond: 10.0, BurstSize: 20}

// RateLimited wraps an EmbeddingService with a token bucket so the
// parallel per-chunk fan-out during ingestion cannot stampede the
// provider.
type RateLimited struct {
	inner   driven.EmbeddingService
	limiter *rate.Limiter
}

// NewRateLimited wraps the service with the default rate limit.
func NewRateLimited(inner driven.EmbeddingService) *RateLimited {
	return NewRateLimitedWithConfig(inner, DefaultRateLimit)
}

// NewRateLimitedWithConfig wraps the service with a custom rate limit.
func NewRateLimitedWithConfig(inner driven.EmbeddingService, cfg RateLimitConfig) *RateLimited {
	if cfg.RequestsPerSecond <= 0 {
		cfg = DefaultRateLimit
	}
	if cfg.BurstSize <= 0 {
		cfg.BurstSize = 1
	}
	return &RateLimited{
		inner:   inner,
		limiter: rate.NewLimiter(rate.Limit(cfg.RequestsPerSecond), cfg.BurstSize),
	}
}

// Embed waits for a token, then delegates.
func (s *RateLimited) Embed(ctx context.Context, text string) ([]float32, error) {
	if err := s.limiter.Wait(ctx); err != nil {
		return nil, err
	}
	return s.inner.Embed(ctx, text)
}

// EmbedBatch waits for a token, then delegates. A batch counts as one
// request against the limit.
func (s *RateLimited) EmbedBatch(ctx context.Context, texts []string) ([][]float32, error) {
	if err := s.limiter.Wait(ctx); err != nil {
		return nil, err
	}
	return s.inner.EmbedBatch(ctx, texts)
}

// Dimensions returns the wrapped service's vector size.
func (s *RateLimited) Dimensions() int {
	return s.inner.Dimensions()
}

// ModelName returns the wrapped service's model name.
func (s *RateLimited) ModelName() string {
	return s.inner.ModelName()
}

// Ping delegates without consuming a token.
func (s *RateLimited) Ping(ctx context.Context) error {
	return s.inner.Ping(ctx)
}

// Close closes the wrapped service.
func (s *RateLimited) Close() error {
	return s.inner.Close()
}
