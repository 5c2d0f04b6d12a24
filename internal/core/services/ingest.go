package services

import (
	"context"
	"fmt"
	"strings"

	"golang.org/x/sync/errgroup"

	"github.com/campushq/resourcehub/internal/chunker"
	"github.com/campushq/resourcehub/internal/core/domain"
	"github.com/campushq/resourcehub/internal/core/ports/driven"
	"github.com/campushq/resourcehub/internal/core/ports/driving"
	"github.com/campushq/resourcehub/internal/logger"
)

// minTextLength is the minimum extracted text length for a file to be
// considered ingestable.
const minTextLength = 10

// maxConcurrentChunks bounds the embed-and-upsert fan-out per file.
const maxConcurrentChunks = 8

// Ensure IngestService implements the interface.
var _ driving.IngestService = (*IngestService)(nil)

// IngestService runs the document ingestion pipeline: text extraction,
// summarisation, chunking, embedding and vector index population.
type IngestService struct {
	extractors driven.ExtractorRegistry
	splitter   *chunker.Splitter
	embedder   driven.EmbeddingService
	vectors    driven.VectorIndex
	resources  driven.ResourceStore
	composer   *Composer
}

// NewIngestService creates a new ingestion service.
func NewIngestService(
	extractors driven.ExtractorRegistry,
	splitter *chunker.Splitter,
	embedder driven.EmbeddingService,
	vectors driven.VectorIndex,
	resources driven.ResourceStore,
	composer *Composer,
) *IngestService {
	return &IngestService{
		extractors: extractors,
		splitter:   splitter,
		embedder:   embedder,
		vectors:    vectors,
		resources:  resources,
		composer:   composer,
	}
}

// Ingest processes one uploaded file end to end. On success the resource
// record carries the generated summary and every chunk is stored in the
// vector index under a deterministic id. Chunk failures abort the run;
// already-stored chunks are left in place and repaired by re-ingestion.
func (s *IngestService) Ingest(ctx context.Context, req driving.IngestRequest) (*driving.IngestResult, error) {
	if err := validateIngestRequest(req); err != nil {
		return nil, err
	}

	logger.Section("Ingestion")
	logger.Info("Ingesting %s (%s, %d bytes)", req.FileName, req.MediaType, len(req.Content))

	text, err := s.extractors.Extract(ctx, req.Content, req.FileName, req.MediaType)
	if err != nil {
		return nil, err
	}

	text = strings.TrimSpace(text)
	if len(text) < minTextLength {
		return nil, domain.ErrInsufficientContent
	}
	logger.Debug("Extracted %d characters", len(text))

	resource := &domain.Resource{
		ID:         req.ResourceID,
		Title:      req.Title,
		FileName:   req.FileName,
		MediaType:  req.MediaType,
		UploadedBy: req.UploadedBy,
		Department: req.Department,
		Subject:    req.Subject,
	}
	if err := s.resources.Save(ctx, resource); err != nil {
		return nil, fmt.Errorf("saving resource: %w", err)
	}

	summary, err := s.composer.Summarize(ctx, req.Title, text)
	if err != nil {
		return nil, err
	}
	if err := s.resources.UpdateSummary(ctx, req.ResourceID, summary); err != nil {
		return nil, fmt.Errorf("storing summary: %w", err)
	}

	chunks := s.splitter.Split(text)
	if len(chunks) == 0 {
		return nil, domain.ErrInsufficientContent
	}
	logger.Info("Split into %d chunks", len(chunks))

	// Re-ingestion may produce fewer chunks than before; clear any
	// previously stored vectors so stale chunks cannot match.
	if err := s.vectors.DeleteByResource(ctx, req.ResourceID); err != nil {
		return nil, fmt.Errorf("clearing stale vectors: %w", err)
	}

	if err := s.storeChunks(ctx, req, chunks); err != nil {
		return nil, err
	}

	logger.Info("Stored %d chunks for %s", len(chunks), req.ResourceID)
	return &driving.IngestResult{
		Summary:      summary,
		ChunksStored: len(chunks),
	}, nil
}

// storeChunks embeds and upserts all chunks with bounded concurrency.
// The first failure cancels the remaining work.
func (s *IngestService) storeChunks(ctx context.Context, req driving.IngestRequest, chunks []string) error {
	g, ctx := errgroup.WithContext(ctx)
	g.SetLimit(maxConcurrentChunks)

	for i, text := range chunks {
		g.Go(func() error {
			embedding, err := s.embedder.Embed(ctx, text)
			if err != nil {
				return fmt.Errorf("embedding chunk %d: %w", i, err)
			}

			entry := domain.VectorEntry{
				ID:        domain.ChunkID(req.ResourceID, i),
				Embedding: embedding,
				Metadata: domain.ChunkMetadata{
					ResourceID:  req.ResourceID,
					FileName:    req.FileName,
					Title:       req.Title,
					UploadedBy:  req.UploadedBy,
					Department:  req.Department,
					Subject:     req.Subject,
					ChunkIndex:  i,
					TotalChunks: len(chunks),
					Text:        text,
				},
			}
			if err := s.vectors.Upsert(ctx, entry); err != nil {
				return fmt.Errorf("storing chunk %d: %w", i, err)
			}
			return nil
		})
	}

	return g.Wait()
}

// DeleteResource removes a resource's vectors and its metadata record.
func (s *IngestService) DeleteResource(ctx context.Context, resourceID string) error {
	if resourceID == "" {
		return fmt.Errorf("%w: resource ID is required", domain.ErrInvalidInput)
	}

	logger.Info("Deleting resource %s", resourceID)
	if err := s.vectors.DeleteByResource(ctx, resourceID); err != nil {
		return fmt.Errorf("deleting vectors: %w", err)
	}
	if err := s.resources.Delete(ctx, resourceID); err != nil {
		return fmt.Errorf("deleting resource record: %w", err)
	}
	return nil
}

func validateIngestRequest(req driving.IngestRequest) error {
	switch {
	case req.ResourceID == "":
		return fmt.Errorf("%w: resource ID is required", domain.ErrInvalidInput)
	case req.FileName == "":
		return fmt.Errorf("%w: file name is required", domain.ErrInvalidInput)
	case len(req.Content) == 0:
		return fmt.Errorf("%w: file content is empty", domain.ErrInvalidInput)
	case req.MediaType == "":
		return fmt.Errorf("%w: media type is required", domain.ErrInvalidInput)
	}
	return nil
}
