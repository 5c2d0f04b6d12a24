package services

import (
	"context"
	"sync"

	"github.com/campushq/resourcehub/internal/core/domain"
	"github.com/campushq/resourcehub/internal/core/ports/driven"
)

// --- Mock implementations ---

// mockExtractorRegistry implements driven.ExtractorRegistry for testing.
type mockExtractorRegistry struct {
	text string
	err  error
}

func (m *mockExtractorRegistry) Extract(_ context.Context, _ []byte, _, _ string) (string, error) {
	if m.err != nil {
		return "", m.err
	}
	return m.text, nil
}

func (m *mockExtractorRegistry) Register(_ driven.Extractor) {}

func (m *mockExtractorRegistry) SupportedMediaTypes() []string {
	return []string{"text/plain"}
}

// mockEmbedder implements driven.EmbeddingService for testing.
type mockEmbedder struct {
	mu        sync.Mutex
	embedErr  error
	failAfter int // fail once this many Embed calls succeeded; 0 disables
	calls     int
}

func (m *mockEmbedder) Embed(_ context.Context, text string) ([]float32, error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	if m.embedErr != nil && (m.failAfter == 0 || m.calls >= m.failAfter) {
		return nil, m.embedErr
	}
	m.calls++
	// Deterministic tiny vector derived from the text length.
	return []float32{float32(len(text)), 1, 0}, nil
}

func (m *mockEmbedder) EmbedBatch(ctx context.Context, texts []string) ([][]float32, error) {
	out := make([][]float32, 0, len(texts))
	for _, t := range texts {
		v, err := m.Embed(ctx, t)
		if err != nil {
			return nil, err
		}
		out = append(out, v)
	}
	return out, nil
}

func (m *mockEmbedder) Dimensions() int { return 3 }

func (m *mockEmbedder) ModelName() string { return "mock-embedder" }

func (m *mockEmbedder) Ping(_ context.Context) error { return nil }

func (m *mockEmbedder) Close() error { return nil }

// mockVectorIndex implements driven.VectorIndex for testing.
type mockVectorIndex struct {
	mu        sync.Mutex
	entries   map[string]domain.VectorEntry
	results   []domain.SearchResult
	upsertErr error
	queryErr  error
	deleteErr error

	deletedResources []string
}

func newMockVectorIndex() *mockVectorIndex {
	return &mockVectorIndex{entries: make(map[string]domain.VectorEntry)}
}

func (m *mockVectorIndex) Upsert(_ context.Context, entry domain.VectorEntry) error {
	if m.upsertErr != nil {
		return m.upsertErr
	}
	m.mu.Lock()
	defer m.mu.Unlock()
	m.entries[entry.ID] = entry
	return nil
}

func (m *mockVectorIndex) Query(_ context.Context, _ []float32, topK int, _ domain.SearchFilters) ([]domain.SearchResult, error) {
	if m.queryErr != nil {
		return nil, m.queryErr
	}
	if topK > len(m.results) {
		return m.results, nil
	}
	return m.results[:topK], nil
}

func (m *mockVectorIndex) Delete(_ context.Context, id string) error {
	if m.deleteErr != nil {
		return m.deleteErr
	}
	m.mu.Lock()
	defer m.mu.Unlock()
	delete(m.entries, id)
	return nil
}

func (m *mockVectorIndex) DeleteByResource(_ context.Context, resourceID string) error {
	if m.deleteErr != nil {
		return m.deleteErr
	}
	m.mu.Lock()
	defer m.mu.Unlock()
	m.deletedResources = append(m.deletedResources, resourceID)
	for id, entry := range m.entries {
		if entry.Metadata.ResourceID == resourceID {
			delete(m.entries, id)
		}
	}
	return nil
}

func (m *mockVectorIndex) Close() error { return nil }

func (m *mockVectorIndex) len() int {
	m.mu.Lock()
	defer m.mu.Unlock()
	return len(m.entries)
}

// mockLLM implements driven.LLMService for testing.
type mockLLM struct {
	generateResult string
	generateErr    error
	chatResult     string
	chatErr        error

	lastPrompt   string
	lastMessages []driven.ChatMessage
	lastGenOpts  driven.GenerateOptions
	lastChatOpts driven.ChatOptions
}

func (m *mockLLM) Generate(_ context.Context, prompt string, opts driven.GenerateOptions) (string, error) {
	m.lastPrompt = prompt
	m.lastGenOpts = opts
	if m.generateErr != nil {
		return "", m.generateErr
	}
	return m.generateResult, nil
}

func (m *mockLLM) Chat(_ context.Context, messages []driven.ChatMessage, opts driven.ChatOptions) (string, error) {
	m.lastMessages = messages
	m.lastChatOpts = opts
	if m.chatErr != nil {
		return "", m.chatErr
	}
	return m.chatResult, nil
}

func (m *mockLLM) ModelName() string { return "mock-llm" }

func (m *mockLLM) Ping(_ context.Context) error { return nil }

func (m *mockLLM) Close() error { return nil }
