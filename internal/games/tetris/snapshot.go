package tetris

import (
	"errors"
	"fmt"
)

var (
	// ErrNoSave is returned by a SaveStore when no snapshot exists.
	ErrNoSave = errors.New("tetris: no saved game")
	// ErrInvalidSave marks a snapshot that cannot be restored.
	ErrInvalidSave = errors.New("tetris: invalid saved game")
)

// SaveState is the persisted snapshot of an in-progress game.
// Field names match the save file format.
type SaveState struct {
	Grid      [][]int `json:"grid"`
	Score     int     `json:"score"`
	Level     int     `json:"level"`
	Lines     int     `json:"lines"`
	NextPiece int     `json:"next_peca"`
}

// SaveStore keeps at most one snapshot. Save overwrites, Delete of a
// missing snapshot is not an error, Load returns ErrNoSave when empty.
type SaveStore interface {
	Load() (SaveState, error)
	Save(st SaveState) error
	Delete() error
}

// Validate checks dimensions, cell colors, counters and the next shape.
func (st SaveState) Validate() error {
	if len(st.Grid) != Rows {
		return fmt.Errorf("%w: grid has %d rows, want %d", ErrInvalidSave, len(st.Grid), Rows)
	}
	for r, row := range st.Grid {
		if len(row) != Cols {
			return fmt.Errorf("%w: row %d has %d cells, want %d", ErrInvalidSave, r, len(row), Cols)
		}
		for c, v := range row {
			if v != Empty && !ValidColor(v) {
				return fmt.Errorf("%w: cell (%d,%d) holds color %d", ErrInvalidSave, c, r, v)
			}
		}
	}
	if st.Score < 0 {
		return fmt.Errorf("%w: negative score %d", ErrInvalidSave, st.Score)
	}
	if st.Lines < 0 {
		return fmt.Errorf("%w: negative lines %d", ErrInvalidSave, st.Lines)
	}
	if st.Level < 1 {
		return fmt.Errorf("%w: level %d", ErrInvalidSave, st.Level)
	}
	if !ShapeID(st.NextPiece).Valid() {
		return fmt.Errorf("%w: next piece %d", ErrInvalidSave, st.NextPiece)
	}
	return nil
}

// Board returns the snapshot grid as a Board after validating the snapshot.
func (st SaveState) Board() (Board, error) {
	var b Board
	if err := st.Validate(); err != nil {
		return b, err
	}
	for r := range Rows {
		copy(b[r][:], st.Grid[r])
	}
	return b, nil
}

// LoadValid loads from store and validates the result. Any failure is
// reported as an error; callers treat it as "no snapshot".
func LoadValid(store SaveStore) (SaveState, error) {
	if store == nil {
		return SaveState{}, ErrNoSave
	}
	st, err := store.Load()
	if err != nil {
		return SaveState{}, err
	}
	if err := st.Validate(); err != nil {
		return SaveState{}, err
	}
	return st, nil
}

func isNoSave(err error) bool {
	return errors.Is(err, ErrNoSave)
}
