package config

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gopkg.in/yaml.v3"
)

func TestEmbeddedDefaultsMatchHardcoded(t *testing.T) {
	var cfg TetrisConfig
	require.NoError(t, yaml.Unmarshal(GetDefaultYAML(), &cfg))
	assert.Equal(t, DefaultTetrisConfig(), Normalize(cfg))
}

func TestLoadTetrisCustomPath(t *testing.T) {
	path := filepath.Join(t.TempDir(), "tetris.yaml")
	data := []byte("gravity:\n  base_interval_ms: 800\nsave:\n  backend: sqlite\n")
	require.NoError(t, os.WriteFile(path, data, 0o600))

	cfg, err := LoadTetris(path)
	require.NoError(t, err)

	assert.Equal(t, 800, cfg.Gravity.BaseIntervalMs)
	assert.Equal(t, 50, cfg.Gravity.StepMs, "unset keys keep defaults")
	assert.Equal(t, 100, cfg.Scoring.LinePoints)
	assert.Equal(t, BackendSQLite, cfg.Save.Backend)
	assert.Equal(t, DefaultSQLitePath, cfg.Save.ResolvedPath())
}

func TestLoadTetrisMissingCustomPath(t *testing.T) {
	cfg, err := LoadTetris(filepath.Join(t.TempDir(), "missing.yaml"))
	require.Error(t, err)
	assert.Equal(t, DefaultTetrisConfig(), cfg)
}

func TestLoadTetrisBadYAML(t *testing.T) {
	path := filepath.Join(t.TempDir(), "bad.yaml")
	require.NoError(t, os.WriteFile(path, []byte("gravity: [1, 2"), 0o600))

	cfg, err := LoadTetris(path)
	require.Error(t, err)
	assert.Equal(t, DefaultTetrisConfig(), cfg)
}

func TestNormalize(t *testing.T) {
	cfg := TetrisConfig{
		Gravity: GravityConfig{BaseIntervalMs: 200, StepMs: -5, MinIntervalMs: 300},
		Scoring: ScoringConfig{LinePoints: 0, LinesPerLevel: -1},
	}

	got := Normalize(cfg)

	assert.Equal(t, 200, got.Gravity.BaseIntervalMs)
	assert.Equal(t, 50, got.Gravity.StepMs)
	assert.Equal(t, 200, got.Gravity.MinIntervalMs, "floor cannot exceed base interval")
	assert.Equal(t, 100, got.Scoring.LinePoints)
	assert.Equal(t, 10, got.Scoring.LinesPerLevel)
	assert.Equal(t, BackendFile, got.Save.Backend)
}

func TestSaveConfigResolvedPath(t *testing.T) {
	tests := []struct {
		name string
		cfg  SaveConfig
		want string
	}{
		{"file default", SaveConfig{Backend: BackendFile}, DefaultSavePath},
		{"sqlite default", SaveConfig{Backend: BackendSQLite}, DefaultSQLitePath},
		{"explicit", SaveConfig{Backend: BackendSQLite, Path: "/tmp/x.db"}, "/tmp/x.db"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, tt.cfg.ResolvedPath())
		})
	}
}

func TestMarshalRoundTrip(t *testing.T) {
	data, err := Marshal(DefaultTetrisConfig())
	require.NoError(t, err)
	assert.Contains(t, string(data), "base_interval_ms: 500")
	assert.Contains(t, string(data), "backend: file")
}

func TestExpandHome(t *testing.T) {
	home, err := os.UserHomeDir()
	require.NoError(t, err)

	assert.Equal(t, filepath.Join(home, ".tetriscube", "save.db"), ExpandHome("~/.tetriscube/save.db"))
	assert.Equal(t, "/abs/path", ExpandHome("/abs/path"))
	assert.Equal(t, "", ExpandHome(""))
}
