// Package sqlite persists annotation coverage reports.
package sqlite

import (
	"context"
	"database/sql"
	"embed"
	"fmt"
	"io/fs"
	"os"
	"path/filepath"
	"sort"
	"strings"

	_ "modernc.org/sqlite" // SQLite driver

	"github.com/custodia-labs/glossa-cli/internal/adapters/driven/storage/sqlite/migrations"
	"github.com/custodia-labs/glossa-cli/internal/core/ports/driven"
)

// Ensure Store implements the interface.
var _ driven.ReportStore = (*Store)(nil)

// Store is a SQLite-backed report store.
type Store struct {
	db   *sql.DB
	path string
}

// NewStore creates a report store at the specified data directory.
// If dataDir is empty, defaults to ~/.glossa/data/reports.db.
func NewStore(dataDir string) (*Store, error) {
	if dataDir == "" {
		home, err := os.UserHomeDir()
		if err != nil {
			return nil, fmt.Errorf("getting home directory: %w", err)
		}
		dataDir = filepath.Join(home, ".glossa", "data")
	}

	if err := os.MkdirAll(dataDir, 0700); err != nil {
		return nil, fmt.Errorf("creating data directory: %w", err)
	}

	dbPath := filepath.Join(dataDir, "reports.db")

	// Open database with WAL mode for better concurrency
	db, err := sql.Open("sqlite", dbPath+"?_pragma=journal_mode(WAL)&_pragma=busy_timeout(5000)")
	if err != nil {
		return nil, fmt.Errorf("opening database: %w", err)
	}

	if _, err := db.Exec("PRAGMA foreign_keys = ON"); err != nil {
		db.Close()
		return nil, fmt.Errorf("enabling foreign keys: %w", err)
	}

	s := &Store{db: db, path: dbPath}

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

// SaveReport stores or replaces the report for a document path.
func (s *Store) SaveReport(ctx context.Context, report *driven.Report) error {
	tx, err := s.db.BeginTx(ctx, nil)
	if err != nil {
		return fmt.Errorf("beginning transaction: %w", err)
	}
	defer tx.Rollback()

	// One report per document path; replace any previous run.
	if _, err := tx.ExecContext(ctx,
		"DELETE FROM reports WHERE document_path = ?", report.DocumentPath); err != nil {
		return fmt.Errorf("clearing previous report: %w", err)
	}

	if _, err := tx.ExecContext(ctx,
		"INSERT INTO reports (id, document_path, annotations, annotated_at) VALUES (?, ?, ?, ?)",
		report.ID, report.DocumentPath, report.Annotations, report.AnnotatedAt); err != nil {
		return fmt.Errorf("inserting report: %w", err)
	}

	for term, hits := range report.TermHits {
		if _, err := tx.ExecContext(ctx,
			"INSERT INTO term_hits (report_id, term, hits) VALUES (?, ?, ?)",
			report.ID, term, hits); err != nil {
			return fmt.Errorf("inserting term hits: %w", err)
		}
	}
	return tx.Commit()
}

// Coverage returns per-term aggregates, ordered by descending hits.
func (s *Store) Coverage(ctx context.Context) ([]driven.TermCoverage, error) {
	rows, err := s.db.QueryContext(ctx, `
		SELECT term, COUNT(DISTINCT report_id), SUM(hits)
		FROM term_hits
		GROUP BY term
		ORDER BY SUM(hits) DESC, term ASC
	`)
	if err != nil {
		return nil, fmt.Errorf("querying coverage: %w", err)
	}
	defer rows.Close()

	var coverage []driven.TermCoverage
	for rows.Next() {
		var c driven.TermCoverage
		if err := rows.Scan(&c.Term, &c.Documents, &c.Hits); err != nil {
			return nil, fmt.Errorf("scanning coverage row: %w", err)
		}
		coverage = append(coverage, c)
	}
	return coverage, rows.Err()
}

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

	entries, err := fs.ReadDir(fsys, ".")
	if err != nil {
		return fmt.Errorf("reading migrations directory: %w", err)
	}

	var upFiles []string
	for _, entry := range entries {
		name := entry.Name()
		if strings.HasSuffix(name, ".up.sql") {
			upFiles = append(upFiles, name)
		}
	}
	sort.Strings(upFiles)

	for _, name := range upFiles {
		// Extract version number (e.g., "0001_reports.up.sql" -> 1)
		var version int
		if _, err := fmt.Sscanf(name, "%d_", &version); err != nil {
			continue
		}
		if version <= currentVersion {
			continue
		}

		content, err := fs.ReadFile(fsys, name)
		if err != nil {
			return fmt.Errorf("reading migration %s: %w", name, err)
		}
		if _, err := s.db.Exec(string(content)); err != nil {
			return fmt.Errorf("applying migration %s: %w", name, err)
		}
		if _, err := s.db.Exec(
			"INSERT INTO schema_migrations (version) VALUES (?)", version); err != nil {
			return fmt.Errorf("recording migration %s: %w", name, err)
		}
	}
	return nil
}
