package storage

import (
	"fmt"
	"io"

	"github.com/vovakirdan/tetris-cube/internal/config"
	"github.com/vovakirdan/tetris-cube/internal/games/tetris"
)

// Store is a snapshot backend that can also describe its contents.
type Store interface {
	tetris.SaveStore
	Info() (SnapshotInfo, error)
}

// Open returns the backend named by cfg. The returned closer releases any
// resources held by the backend; it is never nil.
func Open(cfg config.SaveConfig) (Store, io.Closer, error) {
	path := cfg.ResolvedPath()

	switch cfg.Backend {
	case config.BackendSQLite:
		s, err := OpenSQLite(path)
		if err != nil {
			return nil, nopCloser{}, err
		}
		return s, s, nil
	case config.BackendFile, "":
		s, err := OpenFile(path)
		if err != nil {
			return nil, nopCloser{}, err
		}
		return s, nopCloser{}, nil
	default:
		return nil, nopCloser{}, fmt.Errorf("storage: unknown backend %q", cfg.Backend)
	}
}

type nopCloser struct{}

func (nopCloser) Close() error { return nil }
