package core

import (
	"strings"
)

// Cell is a single character position on the screen with its style.
type Cell struct {
	Rune  rune
	Style Style
}

var blankCell = Cell{Rune: ' '}

// Screen is a 2D styled character buffer for rendering game graphics.
// It decouples game rendering from the terminal, allowing games to draw
// using simple rune operations while the platform handles actual display.
type Screen struct {
	width  int
	height int
	cells  [][]Cell
}

// NewScreen creates a new screen buffer with the given dimensions.
func NewScreen(width, height int) *Screen {
	s := &Screen{
		width:  max(0, width),
		height: max(0, height),
	}
	s.allocate()
	s.Clear()
	return s
}

// allocate creates the underlying cell storage.
func (s *Screen) allocate() {
	s.cells = make([][]Cell, s.height)
	for y := range s.cells {
		s.cells[y] = make([]Cell, s.width)
	}
}

// Width returns the screen width in characters.
func (s *Screen) Width() int {
	return s.width
}

// Height returns the screen height in characters.
func (s *Screen) Height() int {
	return s.height
}

// Resize changes the screen dimensions, preserving content where possible.
func (s *Screen) Resize(width, height int) {
	width, height = max(0, width), max(0, height)
	if width == s.width && height == s.height {
		return
	}

	oldCells := s.cells
	oldW, oldH := s.width, s.height

	s.width = width
	s.height = height
	s.allocate()
	s.Clear()

	copyW := min(oldW, width)
	copyH := min(oldH, height)
	for y := 0; y < copyH; y++ {
		copy(s.cells[y][:copyW], oldCells[y][:copyW])
	}
}

// Clear fills the entire screen with unstyled spaces.
func (s *Screen) Clear() {
	for y := range s.cells {
		for x := range s.cells[y] {
			s.cells[y][x] = blankCell
		}
	}
}

// Fill fills the entire screen with the given rune and style.
func (s *Screen) Fill(r rune, st Style) {
	for y := range s.cells {
		for x := range s.cells[y] {
			s.cells[y][x] = Cell{Rune: r, Style: st}
		}
	}
}

// SetStyled places a rune with a style at the given position.
// Out-of-bounds coordinates are silently ignored.
func (s *Screen) SetStyled(x, y int, r rune, st Style) {
	if x < 0 || x >= s.width || y < 0 || y >= s.height {
		return
	}
	s.cells[y][x] = Cell{Rune: r, Style: st}
}

// GetCell returns the cell at the given position.
// Returns a blank cell for out-of-bounds coordinates.
func (s *Screen) GetCell(x, y int) Cell {
	if x < 0 || x >= s.width || y < 0 || y >= s.height {
		return blankCell
	}
	return s.cells[y][x]
}

// DrawTextStyled writes a styled string horizontally starting at (x, y).
// A default background keeps whatever background is already in the cell.
func (s *Screen) DrawTextStyled(x, y int, text string, st Style) {
	i := 0
	for _, r := range text {
		cellStyle := st
		if st.Bg.IsDefault() {
			cellStyle.Bg = s.GetCell(x+i, y).Style.Bg
		}
		s.SetStyled(x+i, y, r, cellStyle)
		i++
	}
}

// DrawTextCentered draws text centered horizontally on cx.
func (s *Screen) DrawTextCentered(cx, y int, text string, st Style) {
	x := cx - len([]rune(text))/2
	s.DrawTextStyled(x, y, text, st)
}

// FillRect fills a rectangular area with the given rune and style.
func (s *Screen) FillRect(r Rect, fill rune, st Style) {
	for y := r.Y; y < r.Bottom(); y++ {
		for x := r.X; x < r.Right(); x++ {
			s.SetStyled(x, y, fill, st)
		}
	}
}

// DrawBox draws a box outline using box-drawing characters.
// The top and left edges use light, the bottom and right edges use dark.
func (s *Screen) DrawBox(r Rect, light, dark Style) {
	if r.W < 2 || r.H < 2 {
		return
	}

	// Corners
	s.SetStyled(r.X, r.Y, '┌', light)
	s.SetStyled(r.Right()-1, r.Y, '┐', dark)
	s.SetStyled(r.X, r.Bottom()-1, '└', light)
	s.SetStyled(r.Right()-1, r.Bottom()-1, '┘', dark)

	// Horizontal edges
	for x := r.X + 1; x < r.Right()-1; x++ {
		s.SetStyled(x, r.Y, '─', light)
		s.SetStyled(x, r.Bottom()-1, '─', dark)
	}

	// Vertical edges
	for y := r.Y + 1; y < r.Bottom()-1; y++ {
		s.SetStyled(r.X, y, '│', light)
		s.SetStyled(r.Right()-1, y, '│', dark)
	}
}

// String converts the screen buffer to plain text without styles.
// Each row is joined with newlines.
func (s *Screen) String() string {
	rows := make([]string, s.height)
	for y := range rows {
		rows[y] = s.Row(y)
	}
	return strings.Join(rows, "\n")
}

// Row returns the runes of the specified row as a string.
func (s *Screen) Row(y int) string {
	if y < 0 || y >= s.height {
		return strings.Repeat(" ", s.width)
	}
	var sb strings.Builder
	for _, c := range s.cells[y] {
		sb.WriteRune(c.Rune)
	}
	return sb.String()
}
