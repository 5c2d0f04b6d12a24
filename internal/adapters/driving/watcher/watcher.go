// Package watcher ingests files dropped into a watched directory.
// New and modified files with a supported extension are run through the
// ingestion pipeline; hidden files and subdirectories are ignored.
package watcher

import (
	"context"
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/fsnotify/fsnotify"
	"github.com/google/uuid"

	"github.com/campushq/resourcehub/internal/core/ports/driving"
	"github.com/campushq/resourcehub/internal/extractors"
	"github.com/campushq/resourcehub/internal/logger"
)

// Metadata tags applied to every resource ingested from the folder.
type Metadata struct {
	UploadedBy string
	Department string
	Subject    string
}

// Watcher watches a drop folder and ingests files as they appear.
type Watcher struct {
	dir    string
	ingest driving.IngestService
	meta   Metadata
}

// New creates a watcher over the given directory.
func New(dir string, ingest driving.IngestService, meta Metadata) *Watcher {
	return &Watcher{
		dir:    dir,
		ingest: ingest,
		meta:   meta,
	}
}

// Run watches the directory until the context is cancelled. Files present
// before the watch starts are not picked up; only new writes are.
func (w *Watcher) Run(ctx context.Context) error {
	fsWatcher, err := fsnotify.NewWatcher()
	if err != nil {
		return fmt.Errorf("creating watcher: %w", err)
	}
	defer fsWatcher.Close()

	if err := fsWatcher.Add(w.dir); err != nil {
		return fmt.Errorf("watching %s: %w", w.dir, err)
	}
	logger.Info("Watching %s", w.dir)

	for {
		select {
		case <-ctx.Done():
			return ctx.Err()

		case event, ok := <-fsWatcher.Events:
			if !ok {
				return nil
			}
			w.handleEvent(ctx, event)

		case err, ok := <-fsWatcher.Errors:
			if !ok {
				return nil
			}
			logger.Warn("Watcher error: %v", err)
		}
	}
}

// handleEvent ingests the file behind a create or write event, if eligible.
// Ingestion failures are logged, not fatal: one bad file must not stop the
// watch loop.
func (w *Watcher) handleEvent(ctx context.Context, event fsnotify.Event) {
	if !event.Has(fsnotify.Create) && !event.Has(fsnotify.Write) {
		return
	}
	if !eligible(event.Name) {
		return
	}

	info, err := os.Stat(event.Name)
	if err != nil || info.IsDir() {
		return
	}

	content, err := os.ReadFile(event.Name)
	if err != nil {
		logger.Warn("Reading %s: %v", event.Name, err)
		return
	}

	fileName := filepath.Base(event.Name)
	req := driving.IngestRequest{
		// Derived from the path so rewrites update the same resource.
		ResourceID: resourceID(event.Name),
		FileName:   fileName,
		Content:    content,
		MediaType:  extractors.DetectMediaType(fileName),
		Title:      strings.TrimSuffix(fileName, filepath.Ext(fileName)),
		UploadedBy: w.meta.UploadedBy,
		Department: w.meta.Department,
		Subject:    w.meta.Subject,
	}

	result, err := w.ingest.Ingest(ctx, req)
	if err != nil {
		logger.Warn("Ingesting %s: %v", fileName, err)
		return
	}
	logger.Info("Ingested %s (%d chunks)", fileName, result.ChunksStored)
}

// eligible reports whether a path points at a file the watcher should
// ingest: visible and with a recognised extension.
func eligible(path string) bool {
	name := filepath.Base(path)
	if strings.HasPrefix(name, ".") {
		return false
	}
	switch strings.ToLower(filepath.Ext(name)) {
	case ".pdf", ".docx", ".doc", ".txt", ".text", ".md":
		return true
	}
	return false
}

// resourceID derives a stable id from the absolute file path.
func resourceID(path string) string {
	if abs, err := filepath.Abs(path); err == nil {
		path = abs
	}
	return uuid.NewSHA1(uuid.NameSpaceURL, []byte("file://"+path)).String()
}
