package sqlite

import (
	"context"
	"database/sql"
	"embed"
	"errors"
	"fmt"
	"io/fs"
	"os"
	"path/filepath"
	"sort"
	"strings"
	"time"

	_ "modernc.org/sqlite" // SQLite driver

	"github.com/campushq/resourcehub/internal/adapters/driven/storage/sqlite/migrations"
	"github.com/campushq/resourcehub/internal/core/domain"
	"github.com/campushq/resourcehub/internal/core/ports/driven"
)

// Store is a SQLite-backed resource metadata store.
type Store struct {
	db   *sql.DB
	path string
}

var _ driven.ResourceStore = (*Store)(nil)

// NewStore creates a new SQLite store at the specified data directory.
// If dataDir is empty, defaults to ~/.resourcehub/data/resources.db.
func NewStore(dataDir string) (*Store, error) {
	if dataDir == "" {
		home, err := os.UserHomeDir()
		if err != nil {
			return nil, fmt.Errorf("getting home directory: %w", err)
		}
		dataDir = filepath.Join(home, ".resourcehub", "data")
	}

	// Ensure directory exists
	if err := os.MkdirAll(dataDir, 0700); err != nil {
		return nil, fmt.Errorf("creating data directory: %w", err)
	}

	dbPath := filepath.Join(dataDir, "resources.db")

	// Open database with WAL mode for better concurrency
	db, err := sql.Open("sqlite", dbPath+"?_pragma=journal_mode(WAL)&_pragma=busy_timeout(5000)")
	if err != nil {
		return nil, fmt.Errorf("opening database: %w", err)
	}

	s := &Store{
		db:   db,
		path: dbPath,
	}

	// Run migrations
	if err := s.migrate(migrations.FS); err != nil {
		db.Close()
		return nil, fmt.Errorf("running migrations: %w", err)
	}

	return s, nil
}

// Close closes the database connection.
func (s *Store) Close() error {
	return s.db.Close()
}

// Path returns the database file path.
func (s *Store) Path() string {
	return s.path
}

// migrate runs all pending migrations.
func (s *Store) migrate(fsys embed.FS) error {
	// Ensure schema_migrations table exists
	_, err := s.db.Exec(`
		CREATE TABLE IF NOT EXISTS schema_migrations (
			version INTEGER PRIMARY KEY,
			applied_at DATETIME DEFAULT CURRENT_TIMESTAMP
		)
	`)
	if err != nil {
		return fmt.Errorf("creating schema_migrations table: %w", err)
	}

	// Get current version
	var currentVersion int
	row := s.db.QueryRow("SELECT COALESCE(MAX(version), 0) FROM schema_migrations")
	if err := row.Scan(&currentVersion); err != nil {
		return fmt.Errorf("getting current version: %w", err)
	}

	// Find all up migrations
	entries, err := fs.ReadDir(fsys, ".")
	if err != nil {
		return fmt.Errorf("reading migrations directory: %w", err)
	}

	// Sort and run migrations
	var upFiles []string
	for _, entry := range entries {
		name := entry.Name()
		if strings.HasSuffix(name, ".up.sql") {
			upFiles = append(upFiles, name)
		}
	}
	sort.Strings(upFiles)

	for _, name := range upFiles {
		// Extract version number (e.g., "001_initial.up.sql" -> 1)
		var version int
		if _, err := fmt.Sscanf(name, "%d_", &version); err != nil {
			continue // Skip files that don't match pattern
		}

		if version <= currentVersion {
			continue // Already applied
		}

		// Read and execute migration
		content, err := fs.ReadFile(fsys, name)
		if err != nil {
			return fmt.Errorf("reading migration %s: %w", name, err)
		}

		if _, err := s.db.Exec(string(content)); err != nil {
			return fmt.Errorf("executing migration %s: %w", name, err)
		}

		if _, err := s.db.Exec("INSERT INTO schema_migrations (version) VALUES (?)", version); err != nil {
			return fmt.Errorf("recording migration %s: %w", name, err)
		}
	}

	return nil
}

// Save stores or updates a resource record.
func (s *Store) Save(ctx context.Context, resource *domain.Resource) error {
	if resource == nil || resource.ID == "" {
		return fmt.Errorf("%w: resource ID is required", domain.ErrInvalidInput)
	}

	now := time.Now().UTC()
	if resource.CreatedAt.IsZero() {
		resource.CreatedAt = now
	}
	resource.UpdatedAt = now

	_, err := s.db.ExecContext(ctx, `
		INSERT INTO resources (id, title, file_name, media_type, uploaded_by, department, subject, summary, created_at, updated_at)
		VALUES (?, ?, ?, ?, ?, ?, ?, ?, ?, ?)
		ON CONFLICT(id) DO UPDATE SET
			title = excluded.title,
			file_name = excluded.file_name,
			media_type = excluded.media_type,
			uploaded_by = excluded.uploaded_by,
			department = excluded.department,
			subject = excluded.subject,
			summary = excluded.summary,
			updated_at = excluded.updated_at
	`, resource.ID, resource.Title, resource.FileName, resource.MediaType,
		resource.UploadedBy, resource.Department, resource.Subject, resource.Summary,
		resource.CreatedAt, resource.UpdatedAt)

	if err != nil {
		return fmt.Errorf("saving resource: %w", err)
	}
	return nil
}

// Get retrieves a resource by ID.
func (s *Store) Get(ctx context.Context, id string) (*domain.Resource, error) {
	row := s.db.QueryRowContext(ctx, `
		SELECT id, title, file_name, media_type, uploaded_by, department, subject, summary, created_at, updated_at
		FROM resources WHERE id = ?
	`, id)

	resource, err := scanResource(row)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, domain.ErrNotFound
		}
		return nil, fmt.Errorf("scanning resource: %w", err)
	}

	return resource, nil
}

// List returns all resources, most recently updated first.
func (s *Store) List(ctx context.Context) ([]domain.Resource, error) {
	rows, err := s.db.QueryContext(ctx, `
		SELECT id, title, file_name, media_type, uploaded_by, department, subject, summary, created_at, updated_at
		FROM resources ORDER BY updated_at DESC
	`)
	if err != nil {
		return nil, fmt.Errorf("querying resources: %w", err)
	}
	defer rows.Close()

	var resources []domain.Resource //nolint:prealloc // size unknown from query
	for rows.Next() {
		resource, err := scanResource(rows)
		if err != nil {
			return nil, fmt.Errorf("scanning resource: %w", err)
		}
		resources = append(resources, *resource)
	}

	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("iterating resources: %w", err)
	}

	return resources, nil
}

// UpdateSummary sets the generated summary on a resource record.
func (s *Store) UpdateSummary(ctx context.Context, id, summary string) error {
	result, err := s.db.ExecContext(ctx, `
		UPDATE resources SET summary = ?, updated_at = ? WHERE id = ?
	`, summary, time.Now().UTC(), id)
	if err != nil {
		return fmt.Errorf("updating summary: %w", err)
	}

	affected, err := result.RowsAffected()
	if err != nil {
		return fmt.Errorf("checking update result: %w", err)
	}
	if affected == 0 {
		return domain.ErrNotFound
	}
	return nil
}

// Delete removes a resource record.
func (s *Store) Delete(ctx context.Context, id string) error {
	_, err := s.db.ExecContext(ctx, "DELETE FROM resources WHERE id = ?", id)
	if err != nil {
		return fmt.Errorf("deleting resource: %w", err)
	}
	return nil
}

// scanner abstracts over *sql.Row and *sql.Rows.
type scanner interface {
	Scan(dest ...any) error
}

func scanResource(row scanner) (*domain.Resource, error) {
	var resource domain.Resource
	var createdAt, updatedAt sql.NullTime
	if err := row.Scan(&resource.ID, &resource.Title, &resource.FileName, &resource.MediaType,
		&resource.UploadedBy, &resource.Department, &resource.Subject, &resource.Summary,
		&createdAt, &updatedAt); err != nil {
		return nil, err
	}
	if createdAt.Valid {
		resource.CreatedAt = createdAt.Time
	}
	if updatedAt.Valid {
		resource.UpdatedAt = updatedAt.Time
	}
	return &resource, nil
}
