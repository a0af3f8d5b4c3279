package main

import (
	"io"
	"testing"

	"github.com/charmbracelet/log"

	"github.com/vovakirdan/tetris-cube/internal/config"
	"github.com/vovakirdan/tetris-cube/internal/games/tetris"
)

func withSaveFlags(t *testing.T, backend, path string) {
	t.Helper()
	oldBackend, oldPath, oldConfig := flagSaveBackend, flagSavePath, flagConfig
	t.Cleanup(func() {
		flagSaveBackend, flagSavePath, flagConfig = oldBackend, oldPath, oldConfig
	})
	flagSaveBackend, flagSavePath, flagConfig = backend, path, ""
}

func TestLoadConfigSaveFlags(t *testing.T) {
	quiet := log.New(io.Discard)

	tests := []struct {
		name        string
		backend     string
		path        string
		wantBackend config.SaveBackend
		wantPath    string
		wantErr     bool
	}{
		{"sqlite backend uses its default path", "sqlite", "", config.BackendSQLite, config.DefaultSQLitePath, false},
		{"explicit path wins", "sqlite", "/tmp/x.db", config.BackendSQLite, "/tmp/x.db", false},
		{"file backend", "file", "", config.BackendFile, config.DefaultSavePath, false},
		{"unknown backend", "redis", "", "", "", true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			withSaveFlags(t, tt.backend, tt.path)

			cfg, err := loadConfig(quiet)
			if tt.wantErr {
				if err == nil {
					t.Fatal("expected error")
				}
				return
			}
			if err != nil {
				t.Fatalf("loadConfig failed: %v", err)
			}
			if cfg.Save.Backend != tt.wantBackend {
				t.Errorf("backend = %q, expected %q", cfg.Save.Backend, tt.wantBackend)
			}
			if got := cfg.Save.ResolvedPath(); got != tt.wantPath {
				t.Errorf("path = %q, expected %q", got, tt.wantPath)
			}
		})
	}
}

func TestFilledCells(t *testing.T) {
	grid := make([][]int, tetris.Rows)
	for r := range grid {
		grid[r] = make([]int, tetris.Cols)
	}
	grid[19][0] = 3
	grid[19][9] = 1
	grid[0][4] = 7

	if got := filledCells(tetris.SaveState{Grid: grid}); got != 3 {
		t.Errorf("filledCells = %d, expected 3", got)
	}
}
