package database

import (
	"database/sql"
	"errors"
	"fmt"
	"os"
	"time"

	"github.com/aziis98/trim-margin/internal/logging"
	_ "github.com/mattn/go-sqlite3"
)

// executor defines an interface for executing SQL queries, compatible with *sql.DB and *sql.Tx.
type executor interface {
	Exec(query string, args ...interface{}) (sql.Result, error)
}

// DB wraps sql.DB with the render cache methods
type DB struct {
	*sql.DB
	path string
}

// RenderRecord is one cached render of a source file
type RenderRecord struct {
	Source       string
	Output       string
	Hash         string
	Lines        int
	TrimmedLines int
	RenderedAt   time.Time
}

// New opens the render cache at dbPath and initializes the schema
func New(dbPath string) (*DB, error) {
	db, err := sql.Open("sqlite3", dbPath+"?_journal_mode=WAL&_busy_timeout=5000")
	if err != nil {
		return nil, fmt.Errorf("opening render cache at %s: %w", dbPath, err)
	}

	dbWrapper := &DB{
		DB:   db,
		path: dbPath,
	}

	if err := dbWrapper.createSchema(db); err != nil {
		db.Close()
		return nil, fmt.Errorf("initializing render cache schema: %w", err)
	}

	return dbWrapper, nil
}

// createSchema creates the renders table using the provided executor.
func (db *DB) createSchema(exec executor) error {
	logging.Debugf("Ensuring renders table exists...")
	query := `
		CREATE TABLE IF NOT EXISTS renders (
			source TEXT PRIMARY KEY,
			output TEXT NOT NULL,
			hash TEXT NOT NULL,
			lines INTEGER NOT NULL DEFAULT 0,
			trimmed_lines INTEGER NOT NULL DEFAULT 0,
			rendered_at TIMESTAMP NOT NULL
		);
		CREATE INDEX IF NOT EXISTS idx_renders_rendered_at ON renders (rendered_at);
	`
	if _, err := exec.Exec(query); err != nil {
		return fmt.Errorf("creating renders table: %w", err)
	}
	return nil
}

// Path returns the file the cache lives in
func (db *DB) Path() string {
	return db.path
}

// Size returns the size of the cache file in bytes
func (db *DB) Size() (int64, error) {
	fileInfo, err := os.Stat(db.path)
	if err != nil {
		return 0, err
	}
	return fileInfo.Size(), nil
}

// GetStoredHash retrieves the hash a source was last rendered from
func (db *DB) GetStoredHash(sourcePath string) (string, error) {
	var storedHash string
	err := db.QueryRow("SELECT hash FROM renders WHERE source = ?", sourcePath).Scan(&storedHash)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return "", nil // Never rendered
		}
		return "", fmt.Errorf("querying stored hash for %s: %w", sourcePath, err)
	}
	return storedHash, nil
}

// UpsertRender records a render of a source file
func (db *DB) UpsertRender(rec RenderRecord) error {
	logging.Debugf("Recording render of %s -> %s (%d lines)", rec.Source, rec.Output, rec.Lines)

	if rec.RenderedAt.IsZero() {
		rec.RenderedAt = time.Now()
	}
	_, err := db.Exec(`
		INSERT INTO renders (source, output, hash, lines, trimmed_lines, rendered_at)
		VALUES (?, ?, ?, ?, ?, ?)
		ON CONFLICT (source) DO UPDATE SET
			output = excluded.output,
			hash = excluded.hash,
			lines = excluded.lines,
			trimmed_lines = excluded.trimmed_lines,
			rendered_at = excluded.rendered_at
	`, rec.Source, rec.Output, rec.Hash, rec.Lines, rec.TrimmedLines, rec.RenderedAt.UTC())
	if err != nil {
		return fmt.Errorf("recording render of %s: %w", rec.Source, err)
	}
	return nil
}

// ListRenders returns cached renders, newest first. A limit <= 0 returns all.
func (db *DB) ListRenders(limit int) ([]RenderRecord, error) {
	if limit <= 0 {
		limit = -1
	}
	rows, err := db.Query(`
		SELECT source, output, hash, lines, trimmed_lines, rendered_at
		FROM renders
		ORDER BY rendered_at DESC, source
		LIMIT ?
	`, limit)
	if err != nil {
		return nil, fmt.Errorf("listing renders: %w", err)
	}
	defer rows.Close()

	var records []RenderRecord
	for rows.Next() {
		var rec RenderRecord
		if err := rows.Scan(&rec.Source, &rec.Output, &rec.Hash, &rec.Lines, &rec.TrimmedLines, &rec.RenderedAt); err != nil {
			return nil, fmt.Errorf("scanning render row: %w", err)
		}
		records = append(records, rec)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("iterating renders: %w", err)
	}
	return records, nil
}

// Forget removes the render records of the given sources
func (db *DB) Forget(sources []string) (int, error) {
	tx, err := db.Begin()
	if err != nil {
		return 0, fmt.Errorf("beginning transaction: %w", err)
	}
	defer tx.Rollback()

	stmt, err := tx.Prepare("DELETE FROM renders WHERE source = ?")
	if err != nil {
		return 0, fmt.Errorf("preparing delete statement: %w", err)
	}
	defer stmt.Close()

	removed := 0
	for _, source := range sources {
		res, err := stmt.Exec(source)
		if err != nil {
			return 0, fmt.Errorf("forgetting %s: %w", source, err)
		}
		n, _ := res.RowsAffected()
		removed += int(n)
	}

	if err := tx.Commit(); err != nil {
		return 0, fmt.Errorf("committing forget transaction: %w", err)
	}
	return removed, nil
}

// Reset drops and recreates the renders table
func (db *DB) Reset() error {
	logging.Debugf("Resetting render cache...")

	tx, err := db.Begin()
	if err != nil {
		return fmt.Errorf("beginning transaction: %w", err)
	}
	defer tx.Rollback() // Rollback if commit is not successful

	if _, err := tx.Exec("DROP TABLE IF EXISTS renders;"); err != nil {
		return fmt.Errorf("dropping renders table: %w", err)
	}
	if err := db.createSchema(tx); err != nil {
		return err
	}

	if err := tx.Commit(); err != nil {
		return fmt.Errorf("committing reset transaction: %w", err)
	}
	return nil
}
