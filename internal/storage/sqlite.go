// Package storage provides SQLite-based persistence for the drawing history.
// Uses the pure-Go modernc.org/sqlite driver to avoid CGO dependencies.
package storage

import (
	"database/sql"
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"time"

	_ "modernc.org/sqlite" // Pure Go SQLite driver
)

// ErrUnknownDrawing is returned when a path has no history entry.
var ErrUnknownDrawing = errors.New("storage: unknown drawing")

// Store manages the SQLite database connection for the drawing history.
type Store struct {
	db  *sql.DB
	now func() time.Time
}

// Drawing is one history record.
type Drawing struct {
	ID        int64
	Path      string
	Width     int
	Height    int
	Edits     int
	CreatedAt time.Time
	OpenedAt  time.Time
}

// Stats contains aggregated history statistics.
type Stats struct {
	Drawings   int
	TotalEdits int
	LastOpened time.Time
}

// Open creates or opens a SQLite database at the given path.
// It creates the parent directories if needed and runs migrations.
func Open(dbPath string) (*Store, error) {
	// Expand ~ to home directory
	if dbPath != "" && dbPath[0] == '~' {
		home, err := os.UserHomeDir()
		if err != nil {
			return nil, fmt.Errorf("storage: cannot expand home directory: %w", err)
		}
		dbPath = filepath.Join(home, dbPath[1:])
	}

	// Create parent directories
	dir := filepath.Dir(dbPath)
	if err := os.MkdirAll(dir, 0o755); err != nil {
		return nil, fmt.Errorf("storage: cannot create directory %s: %w", dir, err)
	}

	// Open database
	db, err := sql.Open("sqlite", dbPath)
	if err != nil {
		return nil, fmt.Errorf("storage: cannot open database: %w", err)
	}

	// Test connection
	if err := db.Ping(); err != nil {
		db.Close()
		return nil, fmt.Errorf("storage: cannot connect to database: %w", err)
	}

	store := &Store{db: db, now: time.Now}

	// Run migrations
	if err := store.migrate(); err != nil {
		db.Close()
		return nil, fmt.Errorf("storage: migration failed: %w", err)
	}

	return store, nil
}

// migrate creates the database schema if it doesn't exist.
// Timestamps are stored as Unix nanoseconds.
func (s *Store) migrate() error {
	schema := `
		CREATE TABLE IF NOT EXISTS drawings (
			id INTEGER PRIMARY KEY AUTOINCREMENT,
			path TEXT NOT NULL UNIQUE,
			width INTEGER NOT NULL,
			height INTEGER NOT NULL,
			edits INTEGER NOT NULL DEFAULT 0,
			created_at INTEGER NOT NULL,
			opened_at INTEGER NOT NULL
		);
		CREATE INDEX IF NOT EXISTS idx_drawings_opened ON drawings(opened_at DESC);
	`

	_, err := s.db.Exec(schema)
	return err
}

// Close closes the database connection.
func (s *Store) Close() error {
	if s.db != nil {
		return s.db.Close()
	}
	return nil
}

// key normalizes a drawing path so relative and absolute spellings share a row.
func key(path string) string {
	if abs, err := filepath.Abs(path); err == nil {
		return abs
	}
	return filepath.Clean(path)
}

// Touch records that a drawing was created or opened.
// A new path is inserted; a known path gets its size and opened_at updated.
func (s *Store) Touch(path string, width, height int) error {
	now := s.now().UnixNano()
	_, err := s.db.Exec(
		`INSERT INTO drawings (path, width, height, created_at, opened_at)
		 VALUES (?, ?, ?, ?, ?)
		 ON CONFLICT(path) DO UPDATE SET
			width = excluded.width,
			height = excluded.height,
			opened_at = excluded.opened_at`,
		key(path), width, height, now, now,
	)
	if err != nil {
		return fmt.Errorf("storage: cannot touch drawing: %w", err)
	}
	return nil
}

// AddEdits adds n cell edits to a drawing's counter.
func (s *Store) AddEdits(path string, n int) error {
	if n == 0 {
		return nil
	}

	result, err := s.db.Exec(
		"UPDATE drawings SET edits = edits + ? WHERE path = ?",
		n, key(path),
	)
	if err != nil {
		return fmt.Errorf("storage: cannot add edits: %w", err)
	}

	affected, err := result.RowsAffected()
	if err != nil {
		return fmt.Errorf("storage: cannot get affected rows: %w", err)
	}
	if affected == 0 {
		return fmt.Errorf("%w: %s", ErrUnknownDrawing, path)
	}
	return nil
}

// Recent retrieves the most recently opened drawings.
// Results are ordered by opened_at descending.
func (s *Store) Recent(limit int) ([]Drawing, error) {
	if limit <= 0 {
		limit = 10
	}

	rows, err := s.db.Query(
		`SELECT id, path, width, height, edits, created_at, opened_at
		 FROM drawings
		 ORDER BY opened_at DESC, id DESC
		 LIMIT ?`,
		limit,
	)
	if err != nil {
		return nil, fmt.Errorf("storage: cannot query drawings: %w", err)
	}
	defer rows.Close()

	var entries []Drawing
	for rows.Next() {
		d, err := scanDrawing(rows)
		if err != nil {
			return nil, err
		}
		entries = append(entries, d)
	}

	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("storage: row iteration error: %w", err)
	}

	return entries, nil
}

// Lookup retrieves the history entry for path.
// Returns nil, nil if the drawing is not tracked.
func (s *Store) Lookup(path string) (*Drawing, error) {
	row := s.db.QueryRow(
		`SELECT id, path, width, height, edits, created_at, opened_at
		 FROM drawings
		 WHERE path = ?`,
		key(path),
	)

	d, err := scanDrawing(row)
	if errors.Is(err, sql.ErrNoRows) {
		return nil, nil
	}
	if err != nil {
		return nil, err
	}
	return &d, nil
}

// Forget removes a drawing from the history. The file itself is untouched.
func (s *Store) Forget(path string) error {
	_, err := s.db.Exec("DELETE FROM drawings WHERE path = ?", key(path))
	if err != nil {
		return fmt.Errorf("storage: cannot forget drawing: %w", err)
	}
	return nil
}

// Prune forgets every drawing whose file no longer exists.
// Returns the removed paths.
func (s *Store) Prune() ([]string, error) {
	rows, err := s.db.Query("SELECT path FROM drawings")
	if err != nil {
		return nil, fmt.Errorf("storage: cannot query drawings: %w", err)
	}

	var missing []string
	for rows.Next() {
		var path string
		if err := rows.Scan(&path); err != nil {
			rows.Close()
			return nil, fmt.Errorf("storage: cannot scan row: %w", err)
		}
		if _, err := os.Stat(path); errors.Is(err, os.ErrNotExist) {
			missing = append(missing, path)
		}
	}
	if err := rows.Err(); err != nil {
		rows.Close()
		return nil, fmt.Errorf("storage: row iteration error: %w", err)
	}
	rows.Close()

	for _, path := range missing {
		if err := s.Forget(path); err != nil {
			return nil, err
		}
	}
	return missing, nil
}

// GetStats retrieves aggregated statistics over the whole history.
func (s *Store) GetStats() (*Stats, error) {
	var (
		stats    Stats
		lastNano sql.NullInt64
	)

	err := s.db.QueryRow(
		`SELECT COUNT(*), COALESCE(SUM(edits), 0), MAX(opened_at)
		 FROM drawings`,
	).Scan(&stats.Drawings, &stats.TotalEdits, &lastNano)
	if err != nil {
		return nil, fmt.Errorf("storage: cannot get stats: %w", err)
	}

	if lastNano.Valid {
		stats.LastOpened = time.Unix(0, lastNano.Int64)
	}
	return &stats, nil
}

// scanner is satisfied by *sql.Row and *sql.Rows.
type scanner interface {
	Scan(dest ...any) error
}

func scanDrawing(sc scanner) (Drawing, error) {
	var (
		d                 Drawing
		created, openedAt int64
	)
	if err := sc.Scan(&d.ID, &d.Path, &d.Width, &d.Height, &d.Edits, &created, &openedAt); err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return d, err
		}
		return d, fmt.Errorf("storage: cannot scan row: %w", err)
	}
	d.CreatedAt = time.Unix(0, created)
	d.OpenedAt = time.Unix(0, openedAt)
	return d, nil
}
