// Package qdrant provides a vector index adapter backed by the Qdrant
// REST API.
package qdrant

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"time"

	"github.com/google/uuid"

	"github.com/campushq/resourcehub/internal/core/domain"
	"github.com/campushq/resourcehub/internal/core/ports/driven"
)

// Ensure Index implements the interface.
var _ driven.VectorIndex = (*Index)(nil)

// Default configuration values.
const (
	DefaultCollection = "campus-resources"
	DefaultTimeout    = 30 * time.Second
)

// Config holds configuration for the Qdrant index.
type Config struct {
	// URL is the Qdrant base URL (required), e.g. http://localhost:6333.
	URL string

	// APIKey authenticates requests (optional for local instances).
	APIKey string

	// Collection is the collection name (default: campus-resources).
	Collection string

	// Timeout is the request timeout (default: 30s).
	Timeout time.Duration
}

// Index stores chunk vectors in a Qdrant collection. Chunk ids are
// mapped to deterministic UUIDv5 point ids, so upserting the same chunk
// id always overwrites the same point.
type Index struct {
	client     *http.Client
	url        string
	apiKey     string
	collection string
}

// NewIndex creates a new Qdrant-backed vector index.
func NewIndex(cfg Config) (*Index, error) {
	if cfg.URL == "" {
		return nil, fmt.Errorf("qdrant: URL is required")
	}
	if cfg.Collection == "" {
		cfg.Collection = DefaultCollection
	}
	if cfg.Timeout == 0 {
		cfg.Timeout = DefaultTimeout
	}

	return &Index{
		client:     &http.Client{Timeout: cfg.Timeout},
		url:        cfg.URL,
		apiKey:     cfg.APIKey,
		collection: cfg.Collection,
	}, nil
}

// EnsureCollection creates the collection with cosine distance if it does
// not already exist.
func (x *Index) EnsureCollection(ctx context.Context, dimension int) error {
	if dimension <= 0 {
		return fmt.Errorf("%w: invalid dimension %d", domain.ErrInvalidInput, dimension)
	}
	body := map[string]any{
		"vectors": map[string]any{
			"size":     dimension,
			"distance": "Cosine",
		},
	}
	// Qdrant returns 200 when the collection already exists with the
	// same schema
	return x.do(ctx, http.MethodPut, fmt.Sprintf("/collections/%s", x.collection), body, nil)
}

// Upsert stores an entry, overwriting any point with the same chunk id.
func (x *Index) Upsert(ctx context.Context, entry domain.VectorEntry) error {
	if err := entry.Metadata.Validate(); err != nil {
		return err
	}

	body := map[string]any{
		"points": []map[string]any{
			{
				"id":      pointID(entry.ID),
				"vector":  entry.Embedding,
				"payload": payload(entry.Metadata),
			},
		},
	}
	path := fmt.Sprintf("/collections/%s/points?wait=true", x.collection)
	return x.do(ctx, http.MethodPut, path, body, nil)
}

// Query returns the topK most similar entries, best score first.
func (x *Index) Query(ctx context.Context, vector []float32, topK int, filter domain.SearchFilters) ([]domain.SearchResult, error) {
	if topK <= 0 {
		topK = 10
	}

	body := map[string]any{
		"vector":       vector,
		"limit":        topK,
		"with_payload": true,
	}
	if f := filterClause(filter); f != nil {
		body["filter"] = f
	}

	var resp struct {
		Result []struct {
			Score   float64              `json:"score"`
			Payload domain.ChunkMetadata `json:"payload"`
		} `json:"result"`
	}
	path := fmt.Sprintf("/collections/%s/points/search", x.collection)
	if err := x.do(ctx, http.MethodPost, path, body, &resp); err != nil {
		return nil, err
	}

	results := make([]domain.SearchResult, 0, len(resp.Result))
	for _, r := range resp.Result {
		results = append(results, domain.SearchResult{
			ID:       domain.ChunkID(r.Payload.ResourceID, r.Payload.ChunkIndex),
			Score:    r.Score,
			Metadata: r.Payload,
		})
	}
	return results, nil
}

// Delete removes a point by chunk id. Unknown ids are not an error.
func (x *Index) Delete(ctx context.Context, id string) error {
	body := map[string]any{
		"points": []string{pointID(id)},
	}
	path := fmt.Sprintf("/collections/%s/points/delete?wait=true", x.collection)
	return x.do(ctx, http.MethodPost, path, body, nil)
}

// DeleteByResource removes every point whose payload names the resource.
// This is filter-based, so it handles any chunk count.
func (x *Index) DeleteByResource(ctx context.Context, resourceID string) error {
	body := map[string]any{
		"filter": map[string]any{
			"must": []map[string]any{
				{"key": "resourceId", "match": map[string]any{"value": resourceID}},
			},
		},
	}
	path := fmt.Sprintf("/collections/%s/points/delete?wait=true", x.collection)
	return x.do(ctx, http.MethodPost, path, body, nil)
}

// Close releases resources.
func (x *Index) Close() error {
	// HTTP client doesn't need explicit cleanup
	return nil
}

// pointID derives the deterministic Qdrant point id for a chunk id.
// Qdrant only accepts integers or UUIDs as point ids.
func pointID(chunkID string) string {
	return uuid.NewSHA1(uuid.NameSpaceURL, []byte(chunkID)).String()
}

// payload converts the typed metadata record into a Qdrant payload.
func payload(m domain.ChunkMetadata) map[string]any {
	return map[string]any{
		"resourceId":  m.ResourceID,
		"fileName":    m.FileName,
		"title":       m.Title,
		"uploadedBy":  m.UploadedBy,
		"department":  m.Department,
		"subject":     m.Subject,
		"chunkIndex":  m.ChunkIndex,
		"totalChunks": m.TotalChunks,
		"text":        m.Text,
	}
}

// filterClause builds the exact-match conjunction for the set filter
// fields, or nil when no field is set.
func filterClause(f domain.SearchFilters) map[string]any {
	var must []map[string]any
	if f.Department != "" {
		must = append(must, map[string]any{"key": "department", "match": map[string]any{"value": f.Department}})
	}
	if f.Subject != "" {
		must = append(must, map[string]any{"key": "subject", "match": map[string]any{"value": f.Subject}})
	}
	if f.UploadedBy != "" {
		must = append(must, map[string]any{"key": "uploadedBy", "match": map[string]any{"value": f.UploadedBy}})
	}
	if must == nil {
		return nil
	}
	return map[string]any{"must": must}
}

// do sends a JSON request and decodes the JSON response into out.
func (x *Index) do(ctx context.Context, method, path string, body, out any) error {
	jsonBody, err := json.Marshal(body)
	if err != nil {
		return fmt.Errorf("marshal request: %w", err)
	}

	req, err := http.NewRequestWithContext(ctx, method, x.url+path, bytes.NewReader(jsonBody))
	if err != nil {
		return fmt.Errorf("create request: %w", err)
	}
	req.Header.Set("Content-Type", "application/json")
	if x.apiKey != "" {
		req.Header.Set("api-key", x.apiKey)
	}

	resp, err := x.client.Do(req)
	if err != nil {
		return fmt.Errorf("%w: send request: %w", domain.ErrVectorIndex, err)
	}
	defer resp.Body.Close()

	respBody, err := io.ReadAll(resp.Body)
	if err != nil {
		return fmt.Errorf("%w: read response: %w", domain.ErrVectorIndex, err)
	}

	if resp.StatusCode >= http.StatusMultipleChoices {
		return fmt.Errorf("%w: %s %s: status %d: %s", domain.ErrVectorIndex, method, path, resp.StatusCode, string(respBody))
	}

	if out != nil {
		if err := json.Unmarshal(respBody, out); err != nil {
			return fmt.Errorf("%w: decode response: %w", domain.ErrVectorIndex, err)
		}
	}
	return nil
}
