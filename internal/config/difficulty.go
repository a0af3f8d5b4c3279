package config

import "time"

// DifficultyManager derives the level and gravity interval from lines cleared.
type DifficultyManager struct {
	gravity GravityConfig
	scoring ScoringConfig
}

// NewDifficultyManager creates a new difficulty manager.
func NewDifficultyManager(cfg TetrisConfig) *DifficultyManager {
	cfg = Normalize(cfg)
	return &DifficultyManager{
		gravity: cfg.Gravity,
		scoring: cfg.Scoring,
	}
}

// Level returns the level reached after clearing the given number of lines.
// Level 1 covers the first LinesPerLevel lines.
func (d *DifficultyManager) Level(lines int) int {
	if lines < 0 {
		lines = 0
	}
	return lines/d.scoring.LinesPerLevel + 1
}

// TickInterval returns the gravity period for a level. Each level above 1
// shortens it by StepMs until MinIntervalMs is reached.
func (d *DifficultyManager) TickInterval(level int) time.Duration {
	if level < 1 {
		level = 1
	}
	ms := d.gravity.BaseIntervalMs - (level-1)*d.gravity.StepMs
	ms = max(ms, d.gravity.MinIntervalMs)
	return time.Duration(ms) * time.Millisecond
}

// LineScore returns points awarded for clearing rows at a level.
// No multi-row bonus: the award is linear in both arguments.
func (d *DifficultyManager) LineScore(rows, level int) int {
	return rows * d.scoring.LinePoints * level
}
