package config

import (
	_ "embed"
)

//go:embed defaults/tetris.yaml
var defaultTetrisYAML []byte

// DefaultTetrisConfig returns the default configuration.
func DefaultTetrisConfig() TetrisConfig {
	return TetrisConfig{
		Gravity: GravityConfig{
			BaseIntervalMs: 500,
			StepMs:         50,
			MinIntervalMs:  100,
		},
		Scoring: ScoringConfig{
			LinePoints:    100,
			LinesPerLevel: 10,
		},
		Display: DisplayConfig{
			Fullscreen: true,
		},
		Save: SaveConfig{
			Backend: BackendFile,
		},
	}
}

// GetDefaultYAML returns the embedded default YAML.
func GetDefaultYAML() []byte {
	return defaultTetrisYAML
}
