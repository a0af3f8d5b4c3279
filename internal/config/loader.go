package config

import (
	"fmt"
	"os"
	"path/filepath"

	"gopkg.in/yaml.v3"
)

// LoadTetris loads the game configuration.
// Search order: customPath -> ~/.tetriscube/configs/tetris.yaml -> ./configs/tetris.yaml -> embedded default
//
// Files are decoded over the defaults, so a partial file only overrides the
// keys it names. The result is normalized before it is returned.
func LoadTetris(customPath string) (TetrisConfig, error) {
	cfg := DefaultTetrisConfig()

	// Try custom path first
	if customPath != "" {
		data, err := os.ReadFile(ExpandHome(customPath))
		if err != nil {
			return cfg, fmt.Errorf("failed to read config %s: %w", customPath, err)
		}
		if err := yaml.Unmarshal(data, &cfg); err != nil {
			return DefaultTetrisConfig(), fmt.Errorf("failed to parse config %s: %w", customPath, err)
		}
		return Normalize(cfg), nil
	}

	// Try user config directory
	if userCfgPath := userConfigPath("tetris.yaml"); userCfgPath != "" {
		if data, err := os.ReadFile(userCfgPath); err == nil {
			if err := yaml.Unmarshal(data, &cfg); err == nil {
				return Normalize(cfg), nil
			}
			cfg = DefaultTetrisConfig()
		}
	}

	// Try local configs directory
	if data, err := os.ReadFile("configs/tetris.yaml"); err == nil {
		if err := yaml.Unmarshal(data, &cfg); err == nil {
			return Normalize(cfg), nil
		}
		cfg = DefaultTetrisConfig()
	}

	// Use embedded default YAML
	if err := yaml.Unmarshal(defaultTetrisYAML, &cfg); err != nil {
		return DefaultTetrisConfig(), nil // Fallback to hardcoded if embed fails
	}
	return Normalize(cfg), nil
}

// Normalize replaces out-of-range values with their defaults.
func Normalize(cfg TetrisConfig) TetrisConfig {
	def := DefaultTetrisConfig()

	if cfg.Gravity.BaseIntervalMs <= 0 {
		cfg.Gravity.BaseIntervalMs = def.Gravity.BaseIntervalMs
	}
	if cfg.Gravity.StepMs < 0 {
		cfg.Gravity.StepMs = def.Gravity.StepMs
	}
	if cfg.Gravity.MinIntervalMs <= 0 {
		cfg.Gravity.MinIntervalMs = def.Gravity.MinIntervalMs
	}
	if cfg.Gravity.MinIntervalMs > cfg.Gravity.BaseIntervalMs {
		cfg.Gravity.MinIntervalMs = cfg.Gravity.BaseIntervalMs
	}
	if cfg.Scoring.LinePoints <= 0 {
		cfg.Scoring.LinePoints = def.Scoring.LinePoints
	}
	if cfg.Scoring.LinesPerLevel <= 0 {
		cfg.Scoring.LinesPerLevel = def.Scoring.LinesPerLevel
	}
	if cfg.Save.Backend == "" {
		cfg.Save.Backend = def.Save.Backend
	}
	return cfg
}

// Marshal renders a configuration as YAML.
func Marshal(cfg TetrisConfig) ([]byte, error) {
	data, err := yaml.Marshal(cfg)
	if err != nil {
		return nil, fmt.Errorf("failed to encode config: %w", err)
	}
	return data, nil
}

// ExpandHome replaces a leading "~" with the user's home directory.
// The path is returned unchanged if home cannot be determined.
func ExpandHome(path string) string {
	if path == "" || path[0] != '~' {
		return path
	}
	home, err := os.UserHomeDir()
	if err != nil {
		return path
	}
	return filepath.Join(home, path[1:])
}

// userConfigPath returns the path to user config file, or empty if home is unavailable.
func userConfigPath(filename string) string {
	home, err := os.UserHomeDir()
	if err != nil {
		return ""
	}
	return filepath.Join(home, ".tetriscube", "configs", filename)
}
