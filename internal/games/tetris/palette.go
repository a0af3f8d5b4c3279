package tetris

import "github.com/vovakirdan/tetris-cube/internal/core"

// PaletteSize is the number of piece colors. Board cells store 1..PaletteSize.
const PaletteSize = 7

var palette = [PaletteSize]core.Color{
	core.RGB(0, 160, 255),  // sky
	core.RGB(255, 210, 10), // yellow
	core.RGB(50, 230, 50),  // green
	core.RGB(255, 30, 60),  // red
	core.RGB(220, 0, 255),  // violet
	core.RGB(255, 120, 0),  // orange
	core.RGB(0, 80, 255),   // blue
}

// ValidColor reports whether idx is a palette index usable on the board.
func ValidColor(idx int) bool {
	return idx >= 1 && idx <= PaletteSize
}

// PaletteColor returns the RGB color for a palette index.
// Out-of-range indices map to the board background.
func PaletteColor(idx int) core.Color {
	if !ValidColor(idx) {
		return boardBase
	}
	return palette[idx-1]
}

// Bevel shades. Pieces use strong highlight/shadow; empty board cells a faint one.
const (
	pieceHighlight = 80
	pieceShadow    = 60

	emptyFace      = 5
	emptyHighlight = 15
	emptyShadow    = 10

	frameLight = 50
	frameDark  = 80
)

var (
	boardBase       = core.RGB(20, 20, 22)
	frameBase       = core.RGB(30, 30, 30)
	solidBackground = core.RGB(10, 10, 15)
	patternInk      = core.RGB(38, 38, 52)
	panelText       = core.RGB(220, 220, 230)
	pauseButton     = core.RGB(255, 170, 0)
	playButton      = core.RGB(50, 200, 80)
	restartButton   = core.RGB(255, 30, 60)
	newGameButton   = core.RGB(0, 160, 255)
	continueButton  = core.RGB(50, 200, 80)
	controlButton   = core.RGB(70, 70, 80)
)
