package tetris

import "github.com/vovakirdan/tetris-cube/internal/core"

// Screen geometry. A board cell is two terminal columns wide.
const (
	cellW    = 2
	frameW   = Cols*cellW + 2
	frameH   = Rows + 2
	panelW   = 18
	panelGap = 2
	topBarH  = 1

	// MinWidth and MinHeight are the smallest screen that fits the board and panel.
	MinWidth  = frameW + panelGap + panelW
	MinHeight = topBarH + frameH

	controlW    = 3
	pauseW      = 12
	pauseH      = 3
	overlayW    = 18
	overlayH    = 9
	menuButtonW = 14
	previewCols = 4
	previewRows = 4
)

// layout holds every screen rectangle used for drawing and hit-testing.
// It depends only on screen size and fullscreen mode.
type layout struct {
	tooSmall bool
	origin   core.Point

	frame core.Rect // Board including its border
	panel core.Rect
	next  core.Rect // Preview area inside the panel
	pause core.Rect

	minimize core.Rect // "_" fullscreen toggle
	close    core.Rect // "X"

	overlay   core.Rect // Menu / game-over box centered on the board
	primary   core.Rect // CONTINUE or RESTART
	secondary core.Rect // NEW GAME
}

// computeLayout centers the board and panel on a fullscreen terminal, or
// packs them at the top-left when windowed. Control buttons sit at the
// top-right of the screen (fullscreen) or of the packed area (windowed).
func computeLayout(w, h int, fullscreen bool) layout {
	var l layout

	right := MinWidth
	if fullscreen || w < MinWidth {
		right = w
	}
	l.close = core.NewRect(right-controlW, 0, controlW, 1)
	l.minimize = core.NewRect(right-2*controlW-1, 0, controlW, 1)

	if w < MinWidth || h < MinHeight {
		l.tooSmall = true
		return l
	}

	ox, oy := 0, 0
	if fullscreen {
		ox = (w - MinWidth) / 2
		oy = (h - MinHeight) / 2
	}
	l.origin = core.Point{X: ox, Y: oy}

	l.frame = core.NewRect(ox, oy+topBarH, frameW, frameH)
	l.panel = core.NewRect(l.frame.Right()+panelGap, l.frame.Y, panelW, frameH)
	l.next = core.NewRect(l.panel.X+(panelW-previewCols*cellW)/2, l.panel.Y+3, previewCols*cellW, previewRows)
	l.pause = core.NewRect(l.panel.X+(panelW-pauseW)/2, l.panel.Y+17, pauseW, pauseH)

	cx, cy := l.frame.Center()
	l.overlay = core.CenteredRect(cx, cy, overlayW, overlayH)
	l.primary = core.NewRect(cx-menuButtonW/2, l.overlay.Y+5, menuButtonW, 1)
	l.secondary = core.NewRect(cx-menuButtonW/2, l.overlay.Y+7, menuButtonW, 1)

	return l
}

// cellOrigin returns the screen position of the left half of board cell (col, row).
func (l layout) cellOrigin(col, row int) (int, int) {
	return l.frame.X + 1 + col*cellW, l.frame.Y + 1 + row
}
