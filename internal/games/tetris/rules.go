package tetris

import (
	"time"

	"github.com/vovakirdan/tetris-cube/internal/config"
)

// IsBlocked reports whether moving p by (dx, dy) would put any filled cell
// outside the board columns, at or below the bottom row, or onto an
// occupied cell. Cells above the top row are allowed.
func IsBlocked(p Piece, b *Board, dx, dy int) bool {
	for _, c := range p.Cells() {
		x, y := c.X+dx, c.Y+dy
		if x < 0 || x >= Cols || y >= Rows {
			return true
		}
		if b.Occupied(x, y) {
			return true
		}
	}
	return false
}

// Lock writes the piece's color into every board cell it covers.
// Cells above the board are dropped.
func Lock(p Piece, b *Board) {
	for _, c := range p.Cells() {
		if InBounds(c.X, c.Y) {
			b[c.Y][c.X] = p.Color
		}
	}
}

// TryRotate rotates p clockwise in place. If the rotated shape is blocked,
// the previous shape is restored and false is returned.
func TryRotate(p *Piece, b *Board) bool {
	prev := p.Shape
	p.Shape = prev.Rotate()
	if IsBlocked(*p, b, 0, 0) {
		p.Shape = prev
		return false
	}
	return true
}

// TryMove shifts p by (dx, dy) if the destination is free.
func TryMove(p *Piece, b *Board, dx, dy int) bool {
	if IsBlocked(*p, b, dx, dy) {
		return false
	}
	p.X += dx
	p.Y += dy
	return true
}

// Rules holds the scoring and gravity curve for a session.
type Rules struct {
	difficulty *config.DifficultyManager
}

// NewRules builds rules from a configuration.
func NewRules(cfg config.TetrisConfig) Rules {
	return Rules{difficulty: config.NewDifficultyManager(cfg)}
}

// DefaultRules uses the built-in curve: 100 points per row times level,
// a level every 10 rows, gravity from 500ms down to 100ms in 50ms steps.
func DefaultRules() Rules {
	return NewRules(config.DefaultTetrisConfig())
}

// ScoreDelta returns the points for clearing rows at level.
func (r Rules) ScoreDelta(rows, level int) int {
	return r.difficulty.LineScore(rows, level)
}

// NextLevel returns the level for a running total of cleared rows.
func (r Rules) NextLevel(totalLines int) int {
	return r.difficulty.Level(totalLines)
}

// TickInterval returns the gravity period at level.
func (r Rules) TickInterval(level int) time.Duration {
	return r.difficulty.TickInterval(level)
}

var defaultRules = DefaultRules()

// ScoreDelta returns rows*100*level.
func ScoreDelta(rows, level int) int {
	return defaultRules.ScoreDelta(rows, level)
}

// NextLevel returns totalLines/10 + 1.
func NextLevel(totalLines int) int {
	return defaultRules.NextLevel(totalLines)
}

// TickInterval returns max(100, 500-(level-1)*50) milliseconds.
func TickInterval(level int) time.Duration {
	return defaultRules.TickInterval(level)
}
