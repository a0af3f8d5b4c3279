package tetris

import "github.com/vovakirdan/tetris-cube/internal/core"

// Shape is a small filled/empty matrix, indexed [row][col].
type Shape [][]bool

// ShapeID indexes the fixed template table. Save files store it as next_peca.
type ShapeID int

// Template identifiers, in save-file order.
const (
	ShapeI ShapeID = iota
	ShapeT
	ShapeS
	ShapeZ
	ShapeO
	ShapeL
	ShapeJ
)

// ShapeCount is the number of templates.
const ShapeCount = 7

var shapeNames = [ShapeCount]string{"I", "T", "S", "Z", "O", "L", "J"}

// String returns the tetromino letter.
func (id ShapeID) String() string {
	if !id.Valid() {
		return "?"
	}
	return shapeNames[id]
}

// Valid reports whether id names a template.
func (id ShapeID) Valid() bool {
	return id >= 0 && id < ShapeCount
}

var templates = [ShapeCount][][]int{
	ShapeI: {{1, 1, 1, 1}},
	ShapeT: {{1, 1, 1}, {0, 1, 0}},
	ShapeS: {{1, 1, 0}, {0, 1, 1}},
	ShapeZ: {{0, 1, 1}, {1, 1, 0}},
	ShapeO: {{1, 1}, {1, 1}},
	ShapeL: {{1, 1, 1}, {1, 0, 0}},
	ShapeJ: {{1, 1, 1}, {0, 0, 1}},
}

// Template returns a fresh copy of the spawn orientation for id.
func Template(id ShapeID) Shape {
	rows := templates[id]
	s := make(Shape, len(rows))
	for r, row := range rows {
		s[r] = make([]bool, len(row))
		for c, v := range row {
			s[r][c] = v == 1
		}
	}
	return s
}

// Width returns the number of columns in the shape.
func (s Shape) Width() int {
	if len(s) == 0 {
		return 0
	}
	return len(s[0])
}

// Height returns the number of rows in the shape.
func (s Shape) Height() int {
	return len(s)
}

// Rotate returns the shape turned 90 degrees clockwise around its own
// bounding box: the transpose with each row reversed. s is not modified.
func (s Shape) Rotate() Shape {
	h, w := s.Height(), s.Width()
	out := make(Shape, w)
	for c := range w {
		out[c] = make([]bool, h)
		for r := range h {
			out[c][h-1-r] = s[r][c]
		}
	}
	return out
}

// Equal reports whether two shapes have the same dimensions and cells.
func (s Shape) Equal(o Shape) bool {
	if s.Height() != o.Height() || s.Width() != o.Width() {
		return false
	}
	for r := range s {
		for c := range s[r] {
			if s[r][c] != o[r][c] {
				return false
			}
		}
	}
	return true
}

// Piece is a shape anchored on the board with an assigned color.
// Color is a palette index drawn independently of the shape.
type Piece struct {
	ID    ShapeID
	Shape Shape
	X, Y  int // Anchor column and row of the shape's top-left cell
	Color int // Palette index, 1..PaletteSize
}

// NewPiece creates a piece from the template id with the given color,
// anchored at the spawn position.
func NewPiece(id ShapeID, color int) Piece {
	x, y := SpawnPosition()
	return Piece{
		ID:    id,
		Shape: Template(id),
		X:     x,
		Y:     y,
		Color: color,
	}
}

// SpawnPosition is the top-center anchor used for every new active piece.
func SpawnPosition() (col, row int) {
	return Cols/2 - 1, 0
}

// Cells returns the absolute board coordinates covered by the piece's filled cells.
func (p Piece) Cells() []core.Point {
	cells := make([]core.Point, 0, 4)
	for r, row := range p.Shape {
		for c, filled := range row {
			if filled {
				cells = append(cells, core.Point{X: p.X + c, Y: p.Y + r})
			}
		}
	}
	return cells
}

// Rotated returns a copy of the piece with its shape rotated clockwise.
// Legality is the caller's concern.
func (p Piece) Rotated() Piece {
	p.Shape = p.Shape.Rotate()
	return p
}
