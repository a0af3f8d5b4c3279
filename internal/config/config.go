// Package config provides YAML-based game configuration loading and
// the gravity/level curve for Tetris Cube.
package config

// TetrisConfig contains all configuration for the game.
type TetrisConfig struct {
	Gravity GravityConfig `yaml:"gravity"`
	Scoring ScoringConfig `yaml:"scoring"`
	Display DisplayConfig `yaml:"display"`
	Save    SaveConfig    `yaml:"save"`
}

// GravityConfig defines how fast pieces fall at each level.
type GravityConfig struct {
	BaseIntervalMs int `yaml:"base_interval_ms"` // Interval at level 1
	StepMs         int `yaml:"step_ms"`          // Reduction per level
	MinIntervalMs  int `yaml:"min_interval_ms"`  // Floor
}

// ScoringConfig defines points and level progression.
type ScoringConfig struct {
	LinePoints    int `yaml:"line_points"`     // Points per cleared row, multiplied by level
	LinesPerLevel int `yaml:"lines_per_level"` // Cleared rows needed per level
}

// DisplayConfig defines presentation options.
type DisplayConfig struct {
	Fullscreen bool   `yaml:"fullscreen"`
	Background string `yaml:"background"` // Optional pattern file tiled behind the board
}

// SaveBackend names a snapshot storage implementation.
type SaveBackend string

const (
	BackendFile   SaveBackend = "file"
	BackendSQLite SaveBackend = "sqlite"
)

// SaveConfig selects where the in-progress game is kept between runs.
type SaveConfig struct {
	Backend SaveBackend `yaml:"backend"`
	Path    string      `yaml:"path"` // Empty means the backend's default path
}

// Default snapshot locations per backend.
const (
	DefaultSavePath   = "~/.tetriscube/savegame.json"
	DefaultSQLitePath = "~/.tetriscube/save.db"
)

// ResolvedPath returns the configured path, or the backend default.
func (s SaveConfig) ResolvedPath() string {
	if s.Path != "" {
		return s.Path
	}
	if s.Backend == BackendSQLite {
		return DefaultSQLitePath
	}
	return DefaultSavePath
}

// Valid reports whether the backend name is known.
func (b SaveBackend) Valid() bool {
	return b == BackendFile || b == BackendSQLite
}
