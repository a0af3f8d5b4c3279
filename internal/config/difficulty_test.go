package config

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
)

func TestDifficultyLevel(t *testing.T) {
	d := NewDifficultyManager(DefaultTetrisConfig())

	tests := []struct {
		lines int
		want  int
	}{
		{0, 1},
		{9, 1},
		{10, 2},
		{29, 3},
		{-4, 1},
	}

	for _, tt := range tests {
		assert.Equal(t, tt.want, d.Level(tt.lines), "Level(%d)", tt.lines)
	}
}

func TestDifficultyTickInterval(t *testing.T) {
	d := NewDifficultyManager(DefaultTetrisConfig())

	tests := []struct {
		level int
		want  time.Duration
	}{
		{1, 500 * time.Millisecond},
		{2, 450 * time.Millisecond},
		{9, 100 * time.Millisecond},
		{50, 100 * time.Millisecond},
		{0, 500 * time.Millisecond},
	}

	for _, tt := range tests {
		assert.Equal(t, tt.want, d.TickInterval(tt.level), "TickInterval(%d)", tt.level)
	}
}

func TestDifficultyTickIntervalMonotonic(t *testing.T) {
	d := NewDifficultyManager(DefaultTetrisConfig())

	prev := d.TickInterval(1)
	for level := 2; level <= 30; level++ {
		cur := d.TickInterval(level)
		assert.LessOrEqual(t, cur, prev, "level %d", level)
		prev = cur
	}
}

func TestDifficultyLineScore(t *testing.T) {
	d := NewDifficultyManager(DefaultTetrisConfig())

	assert.Equal(t, 100, d.LineScore(1, 1))
	assert.Equal(t, 2*d.LineScore(1, 1), d.LineScore(2, 1))
	assert.Equal(t, 2*d.LineScore(1, 1), d.LineScore(1, 2))
	assert.Equal(t, 4*d.LineScore(1, 3), d.LineScore(4, 3))
	assert.Equal(t, 0, d.LineScore(0, 5))
}

func TestDifficultyCustomCurve(t *testing.T) {
	cfg := DefaultTetrisConfig()
	cfg.Gravity = GravityConfig{BaseIntervalMs: 1000, StepMs: 200, MinIntervalMs: 250}
	cfg.Scoring.LinesPerLevel = 5
	d := NewDifficultyManager(cfg)

	assert.Equal(t, 3, d.Level(10))
	assert.Equal(t, 600*time.Millisecond, d.TickInterval(3))
	assert.Equal(t, 250*time.Millisecond, d.TickInterval(5))
}
