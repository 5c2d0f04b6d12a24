package domain

import (
	"errors"
	"testing"
)

func TestChunkID(t *testing.T) {
	tests := []struct {
		name       string
		resourceID string
		index      int
		expected   string
	}{
		{
			name:       "first chunk",
			resourceID: "res-1",
			index:      0,
			expected:   "res-1_chunk_0",
		},
		{
			name:       "later chunk",
			resourceID: "abc",
			index:      42,
			expected:   "abc_chunk_42",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := ChunkID(tt.resourceID, tt.index); got != tt.expected {
				t.Errorf("expected %q, got %q", tt.expected, got)
			}
		})
	}
}

func TestChunk_ID_Deterministic(t *testing.T) {
	c := Chunk{ResourceID: "res-9", Index: 3, Total: 10, Text: "text"}
	if c.ID() != c.ID() {
		t.Error("chunk id should be stable across calls")
	}
	if c.ID() != "res-9_chunk_3" {
		t.Errorf("unexpected chunk id %q", c.ID())
	}
}

func TestChunkMetadata_Validate(t *testing.T) {
	valid := ChunkMetadata{
		ResourceID:  "res-1",
		Title:       "Handbook",
		ChunkIndex:  0,
		TotalChunks: 2,
	}
	if err := valid.Validate(); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	missing := valid
	missing.ResourceID = ""
	if err := missing.Validate(); !errors.Is(err, ErrInvalidInput) {
		t.Errorf("expected ErrInvalidInput, got %v", err)
	}

	outOfRange := valid
	outOfRange.ChunkIndex = 2
	if err := outOfRange.Validate(); !errors.Is(err, ErrInvalidInput) {
		t.Errorf("expected ErrInvalidInput, got %v", err)
	}
}

func TestSearchFilters_IsZero(t *testing.T) {
	if !(SearchFilters{}).IsZero() {
		t.Error("empty filters should be zero")
	}
	if (SearchFilters{Department: "CS"}).IsZero() {
		t.Error("filters with a department should not be zero")
	}
}
