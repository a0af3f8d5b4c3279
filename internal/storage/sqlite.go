// Package storage provides persistence for the single in-progress game
// snapshot: a JSON file (the default) or a one-row SQLite table holding
// the same document. SQLite uses the pure-Go modernc.org/sqlite driver to
// avoid CGO dependencies.
package storage

import (
	"database/sql"
	"encoding/json"
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"time"

	_ "modernc.org/sqlite" // Pure Go SQLite driver

	"github.com/vovakirdan/tetris-cube/internal/games/tetris"
)

// SQLiteStore keeps the snapshot in a SQLite database.
type SQLiteStore struct {
	db *sql.DB
}

var _ tetris.SaveStore = (*SQLiteStore)(nil)

// SnapshotInfo describes the stored snapshot.
type SnapshotInfo struct {
	State     tetris.SaveState
	UpdatedAt time.Time
}

// OpenSQLite creates or opens a SQLite database at the given path.
// It creates the parent directories if needed and runs migrations.
func OpenSQLite(dbPath string) (*SQLiteStore, error) {
	dbPath, err := expandHome(dbPath)
	if err != nil {
		return nil, err
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

	store := &SQLiteStore{db: db}

	// Run migrations
	if err := store.migrate(); err != nil {
		db.Close()
		return nil, fmt.Errorf("storage: migration failed: %w", err)
	}

	return store, nil
}

// migrate creates the database schema if it doesn't exist.
// The CHECK constraint keeps the table to a single row.
func (s *SQLiteStore) migrate() error {
	schema := `
		CREATE TABLE IF NOT EXISTS snapshot (
			id INTEGER PRIMARY KEY CHECK (id = 1),
			data TEXT NOT NULL,
			updated_at DATETIME DEFAULT CURRENT_TIMESTAMP
		);
	`

	_, err := s.db.Exec(schema)
	return err
}

// Close closes the database connection.
func (s *SQLiteStore) Close() error {
	if s.db != nil {
		return s.db.Close()
	}
	return nil
}

// Save writes the snapshot, replacing any previous one.
func (s *SQLiteStore) Save(st tetris.SaveState) error {
	data, err := json.Marshal(st)
	if err != nil {
		return fmt.Errorf("storage: cannot encode snapshot: %w", err)
	}

	_, err = s.db.Exec(
		`INSERT INTO snapshot (id, data, updated_at) VALUES (1, ?, CURRENT_TIMESTAMP)
		 ON CONFLICT(id) DO UPDATE SET data = excluded.data, updated_at = excluded.updated_at`,
		string(data),
	)
	if err != nil {
		return fmt.Errorf("storage: cannot save snapshot: %w", err)
	}
	return nil
}

// Load returns the stored snapshot, or tetris.ErrNoSave.
func (s *SQLiteStore) Load() (tetris.SaveState, error) {
	info, err := s.Info()
	if err != nil {
		return tetris.SaveState{}, err
	}
	return info.State, nil
}

// Info returns the stored snapshot with its last update time.
func (s *SQLiteStore) Info() (SnapshotInfo, error) {
	var info SnapshotInfo
	var data string
	var updatedAt any

	err := s.db.QueryRow("SELECT data, updated_at FROM snapshot WHERE id = 1").Scan(&data, &updatedAt)
	if errors.Is(err, sql.ErrNoRows) {
		return info, tetris.ErrNoSave
	}
	if err != nil {
		return info, fmt.Errorf("storage: cannot query snapshot: %w", err)
	}

	if err := json.Unmarshal([]byte(data), &info.State); err != nil {
		return info, fmt.Errorf("storage: cannot decode snapshot: %w: %w", tetris.ErrInvalidSave, err)
	}

	// Parse the datetime - handle both time.Time and string
	switch v := updatedAt.(type) {
	case time.Time:
		info.UpdatedAt = v
	case string:
		if parsed, err := time.Parse("2006-01-02 15:04:05", v); err == nil {
			info.UpdatedAt = parsed
		}
	}

	return info, nil
}

// Delete removes the snapshot. Deleting when none exists is not an error.
func (s *SQLiteStore) Delete() error {
	_, err := s.db.Exec("DELETE FROM snapshot")
	if err != nil {
		return fmt.Errorf("storage: cannot delete snapshot: %w", err)
	}
	return nil
}

// expandHome expands a leading ~ to the home directory.
func expandHome(path string) (string, error) {
	if path == "" || path[0] != '~' {
		return path, nil
	}
	home, err := os.UserHomeDir()
	if err != nil {
		return "", fmt.Errorf("storage: cannot expand home directory: %w", err)
	}
	return filepath.Join(home, path[1:]), nil
}
