package tetris

// Board dimensions.
const (
	Cols = 10
	Rows = 20
)

// Empty marks an unoccupied board cell. Occupied cells hold a palette
// index in 1..PaletteSize.
const Empty = 0

// Board is the grid of settled cells, indexed [row][col] with row 0 at the top.
type Board [Rows][Cols]int

// NewBoard returns a board with every cell empty.
func NewBoard() Board {
	return Board{}
}

// InBounds reports whether (col, row) lies on the board.
func InBounds(col, row int) bool {
	return col >= 0 && col < Cols && row >= 0 && row < Rows
}

// Occupied reports whether the cell at (col, row) holds a locked block.
// Rows above the board are never occupied.
func (b *Board) Occupied(col, row int) bool {
	if row < 0 {
		return false
	}
	return b[row][col] != Empty
}

// RowFull reports whether a row has no empty cells.
func (b *Board) RowFull(row int) bool {
	for _, v := range b[row] {
		if v == Empty {
			return false
		}
	}
	return true
}

// ClearCompletedRows removes every full row, shifting the rows above it down
// and inserting empty rows at the top. Returns the number of rows removed.
func (b *Board) ClearCompletedRows() int {
	write := Rows - 1
	for read := Rows - 1; read >= 0; read-- {
		if b.RowFull(read) {
			continue
		}
		if write != read {
			b[write] = b[read]
		}
		write--
	}

	cleared := write + 1
	for row := 0; row <= write; row++ {
		b[row] = [Cols]int{}
	}
	return cleared
}

// ClearCompletedRows is the value form of Board.ClearCompletedRows:
// it returns the cleared board and the row count, leaving b untouched.
func ClearCompletedRows(b Board) (Board, int) {
	n := b.ClearCompletedRows()
	return b, n
}

// Grid returns the board as nested slices, the layout used by save files.
func (b *Board) Grid() [][]int {
	grid := make([][]int, Rows)
	for row := range grid {
		grid[row] = make([]int, Cols)
		copy(grid[row], b[row][:])
	}
	return grid
}
