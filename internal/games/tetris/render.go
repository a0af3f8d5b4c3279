package tetris

import (
	"fmt"

	"github.com/vovakirdan/tetris-cube/internal/core"
)

// Render draws the game to the screen.
func (g *Game) Render(dst *core.Screen) {
	g.drawBackground(dst)

	l := g.layout
	if l.tooSmall {
		g.drawTooSmall(dst)
		g.drawControls(dst)
		return
	}

	dst.DrawTextStyled(l.origin.X, l.origin.Y, "TETRIS CUBE", core.Style{Fg: core.ColorGold, Bold: true})
	g.drawControls(dst)
	g.drawBoard(dst)
	g.drawPanel(dst)

	switch g.session.Mode {
	case ModeMenu:
		g.drawMenu(dst)
	case ModeGameOver:
		g.drawGameOver(dst)
	case ModePaused:
		cx, cy := l.frame.Center()
		dst.DrawTextCentered(cx, cy, " PAUSED ", core.Style{Fg: core.ColorWhite, Bg: frameBase, Bold: true})
	}
}

// drawBackground tiles the background pattern, or fills a solid color.
func (g *Game) drawBackground(dst *core.Screen) {
	if len(g.bg) == 0 {
		dst.Fill(' ', core.Style{Bg: solidBackground})
		return
	}

	st := core.Style{Fg: patternInk, Bg: solidBackground}
	for y := range dst.Height() {
		line := g.bg[y%len(g.bg)]
		for x := range dst.Width() {
			r := ' '
			if len(line) > 0 {
				r = line[x%len(line)]
			}
			dst.SetStyled(x, y, r, st)
		}
	}
}

// drawCube draws one beveled block: a highlight edge on the left half and
// a shadow edge on the right half, both over the face color.
func drawCube(dst *core.Screen, x, y int, face core.Color, highlight, shadow int) {
	dst.SetStyled(x, y, '▔', core.Style{Fg: face.Lighten(highlight), Bg: face})
	dst.SetStyled(x+1, y, '▁', core.Style{Fg: face.Darken(shadow), Bg: face})
}

func drawPieceCube(dst *core.Screen, x, y, color int) {
	drawCube(dst, x, y, PaletteColor(color), pieceHighlight, pieceShadow)
}

// drawFrame draws a 3D border: light top/left, dark bottom/right.
func drawFrame(dst *core.Screen, r core.Rect) {
	light := core.Style{Fg: frameBase.Lighten(frameLight), Bg: frameBase}
	dark := core.Style{Fg: frameBase.Darken(frameDark), Bg: frameBase}
	dst.DrawBox(r, light, dark)
}

func drawButton(dst *core.Screen, r core.Rect, label string, bg core.Color) {
	dst.FillRect(r, ' ', core.Style{Bg: bg})
	cx, cy := r.Center()
	dst.DrawTextCentered(cx, cy, label, core.Style{Fg: core.ColorBlack, Bg: bg, Bold: true})
}

func (g *Game) drawControls(dst *core.Screen) {
	drawButton(dst, g.layout.minimize, "_", controlButton)
	drawButton(dst, g.layout.close, "X", restartButton)
}

func (g *Game) drawBoard(dst *core.Screen) {
	l := g.layout
	s := g.session

	drawFrame(dst, l.frame)

	emptyFaceColor := boardBase.Lighten(emptyFace)
	for row := range Rows {
		for col := range Cols {
			x, y := l.cellOrigin(col, row)
			if v := s.Board[row][col]; v != Empty {
				drawPieceCube(dst, x, y, v)
			} else {
				drawCube(dst, x, y, emptyFaceColor, emptyHighlight, emptyShadow)
			}
		}
	}

	if s.Mode != ModePlaying && s.Mode != ModePaused {
		return
	}
	for _, c := range s.Active.Cells() {
		if InBounds(c.X, c.Y) {
			x, y := l.cellOrigin(c.X, c.Y)
			drawPieceCube(dst, x, y, s.Active.Color)
		}
	}
}

func (g *Game) drawPanel(dst *core.Screen) {
	l := g.layout
	s := g.session

	dst.FillRect(l.panel, ' ', core.Style{Bg: boardBase})
	drawFrame(dst, l.panel)

	label := core.Style{Fg: core.ColorGold, Bold: true}
	value := core.Style{Fg: panelText}
	cx := l.panel.X + l.panel.W/2

	dst.DrawTextCentered(cx, l.panel.Y+1, "NEXT", label)
	if s.Mode != ModeMenu {
		g.drawPreview(dst, s.Next)
	}

	dst.DrawTextCentered(cx, l.panel.Y+8, "LEVEL", label)
	dst.DrawTextCentered(cx, l.panel.Y+9, fmt.Sprintf("%d", s.Level), value)
	dst.DrawTextCentered(cx, l.panel.Y+11, "SCORE", label)
	dst.DrawTextCentered(cx, l.panel.Y+12, fmt.Sprintf("%d", s.Score), value)
	dst.DrawTextCentered(cx, l.panel.Y+14, "LINES", label)
	dst.DrawTextCentered(cx, l.panel.Y+15, fmt.Sprintf("%d", s.Lines), value)

	switch s.Mode {
	case ModePlaying:
		drawButton(dst, l.pause, "PAUSE", pauseButton)
	case ModePaused:
		drawButton(dst, l.pause, "PLAY", playButton)
	}
}

// drawPreview centers the next piece's spawn shape in the preview area.
func (g *Game) drawPreview(dst *core.Screen, p Piece) {
	area := g.layout.next
	px := area.X + (area.W-p.Shape.Width()*cellW)/2
	py := area.Y + (area.H-p.Shape.Height())/2

	for r, row := range p.Shape {
		for c, filled := range row {
			if filled {
				drawPieceCube(dst, px+c*cellW, py+r, p.Color)
			}
		}
	}
}

func (g *Game) drawOverlayBox(dst *core.Screen) {
	dst.FillRect(g.layout.overlay, ' ', core.Style{Bg: frameBase})
	drawFrame(dst, g.layout.overlay)
}

func (g *Game) drawMenu(dst *core.Screen) {
	l := g.layout
	cx := l.overlay.X + l.overlay.W/2

	g.drawOverlayBox(dst)
	dst.DrawTextCentered(cx, l.overlay.Y+1, "TETRIS CUBE", core.Style{Fg: core.ColorCyan, Bold: true})
	if g.menuSave != nil {
		summary := fmt.Sprintf("LV %d  %d", g.menuSave.Level, g.menuSave.Score)
		dst.DrawTextCentered(cx, l.overlay.Y+3, summary, core.Style{Fg: panelText})
	}
	drawButton(dst, l.primary, "CONTINUE", continueButton)
	drawButton(dst, l.secondary, "NEW GAME", newGameButton)
}

func (g *Game) drawGameOver(dst *core.Screen) {
	l := g.layout
	cx := l.overlay.X + l.overlay.W/2

	g.drawOverlayBox(dst)
	dst.DrawTextCentered(cx, l.overlay.Y+1, "GAME OVER", core.Style{Fg: core.ColorRed, Bold: true})
	dst.DrawTextCentered(cx, l.overlay.Y+3, fmt.Sprintf("SCORE %d", g.session.Score), core.Style{Fg: panelText})
	drawButton(dst, l.primary, "RESTART", restartButton)
}

func (g *Game) drawTooSmall(dst *core.Screen) {
	cx, cy := dst.Width()/2, dst.Height()/2
	st := core.Style{Fg: core.ColorWhite}
	dst.DrawTextCentered(cx, cy-1, "Terminal too small", st)
	dst.DrawTextCentered(cx, cy+1, fmt.Sprintf("Need %dx%d", MinWidth, MinHeight), st)
}
