package driving

import "context"

// IngestRequest describes one file to run through the pipeline.
type IngestRequest struct {
	// ResourceID identifies the resource record to ingest into.
	ResourceID string

	// FileName is the original upload file name.
	FileName string

	// Content is the raw file bytes.
	Content []byte

	// MediaType is the MIME type of the file.
	MediaType string

	// Title is the human-readable title.
	Title string

	// UploadedBy identifies the uploading user.
	UploadedBy string

	// Department is an optional owning department tag.
	Department string

	// Subject is an optional subject tag.
	Subject string
}

// IngestResult reports a completed ingestion.
type IngestResult struct {
	// Summary is the generated three-bullet summary.
	Summary string

	// ChunksStored is the number of chunks written to the vector index.
	ChunksStored int
}

// IngestService runs uploaded files through the extraction, chunking,
// embedding and indexing pipeline.
type IngestService interface {
	// Ingest processes one file end to end: extract, summarise, chunk,
	// embed and index. All chunk upserts for the file are issued in
	// parallel; the first failure fails the whole call and nothing is
	// rolled back.
	Ingest(ctx context.Context, req IngestRequest) (*IngestResult, error)

	// DeleteResource removes every indexed chunk for a resource and the
	// resource record itself.
	DeleteResource(ctx context.Context, resourceID string) error
}
