package storage

import (
	"encoding/json"
	"errors"
	"fmt"
	"io/fs"
	"os"
	"path/filepath"
	"time"

	"github.com/vovakirdan/tetris-cube/internal/games/tetris"
)

// FileStore keeps the snapshot as a JSON document on disk.
type FileStore struct {
	path string
}

var _ tetris.SaveStore = (*FileStore)(nil)

// OpenFile returns a store for the JSON file at path, creating the parent
// directory. The file itself is created on the first Save.
func OpenFile(path string) (*FileStore, error) {
	path, err := expandHome(path)
	if err != nil {
		return nil, err
	}
	dir := filepath.Dir(path)
	if err := os.MkdirAll(dir, 0o755); err != nil {
		return nil, fmt.Errorf("storage: cannot create directory %s: %w", dir, err)
	}
	return &FileStore{path: path}, nil
}

// Path returns the resolved file path.
func (f *FileStore) Path() string {
	return f.path
}

// Load reads the snapshot, or returns tetris.ErrNoSave if the file is absent.
// Undecodable content is reported as tetris.ErrInvalidSave.
func (f *FileStore) Load() (tetris.SaveState, error) {
	var st tetris.SaveState

	data, err := os.ReadFile(f.path)
	if errors.Is(err, fs.ErrNotExist) {
		return st, tetris.ErrNoSave
	}
	if err != nil {
		return st, fmt.Errorf("storage: cannot read snapshot: %w", err)
	}

	if err := json.Unmarshal(data, &st); err != nil {
		return tetris.SaveState{}, fmt.Errorf("storage: cannot decode snapshot: %w: %w", tetris.ErrInvalidSave, err)
	}
	return st, nil
}

// Save writes the snapshot atomically, replacing any previous one.
func (f *FileStore) Save(st tetris.SaveState) error {
	data, err := json.Marshal(st)
	if err != nil {
		return fmt.Errorf("storage: cannot encode snapshot: %w", err)
	}

	tmp := f.path + ".tmp"
	if err := os.WriteFile(tmp, data, 0o600); err != nil {
		return fmt.Errorf("storage: cannot write snapshot: %w", err)
	}
	if err := os.Rename(tmp, f.path); err != nil {
		os.Remove(tmp)
		return fmt.Errorf("storage: cannot replace snapshot: %w", err)
	}
	return nil
}

// Delete removes the snapshot file. A missing file is not an error.
func (f *FileStore) Delete() error {
	if err := os.Remove(f.path); err != nil && !errors.Is(err, fs.ErrNotExist) {
		return fmt.Errorf("storage: cannot delete snapshot: %w", err)
	}
	return nil
}

// Info returns the snapshot with the file's modification time.
func (f *FileStore) Info() (SnapshotInfo, error) {
	st, err := f.Load()
	if err != nil {
		return SnapshotInfo{}, err
	}
	var updated time.Time
	if fi, err := os.Stat(f.path); err == nil {
		updated = fi.ModTime()
	}
	return SnapshotInfo{State: st, UpdatedAt: updated}, nil
}
