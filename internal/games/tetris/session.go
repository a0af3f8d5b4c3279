package tetris

import (
	"math/rand"
)

// Mode is the top-level state of a session.
type Mode int

const (
	ModeMenu Mode = iota
	ModePlaying
	ModePaused
	ModeGameOver
)

// String returns a human-readable name for the mode.
func (m Mode) String() string {
	switch m {
	case ModeMenu:
		return "menu"
	case ModePlaying:
		return "playing"
	case ModePaused:
		return "paused"
	case ModeGameOver:
		return "game_over"
	default:
		return "unknown"
	}
}

// Outcome describes what a gravity tick did.
type Outcome struct {
	Locked   bool // The active piece could not fall and was locked
	Cleared  int  // Rows removed by the lock
	Points   int  // Score awarded for the cleared rows
	LevelUp  bool // Level increased
	GameOver bool // The next piece spawned blocked
}

// Session is the complete state of one game: board, pieces, counters and mode.
// It is owned by a single goroutine.
type Session struct {
	Board  Board
	Active Piece
	Next   Piece
	Score  int
	Level  int
	Lines  int
	Mode   Mode

	rules Rules
	rng   *rand.Rand
}

// NewSession creates a session in the menu. Call Start or Restore to play.
func NewSession(rules Rules, rng *rand.Rand) *Session {
	return &Session{
		Board: NewBoard(),
		Level: 1,
		Mode:  ModeMenu,
		rules: rules,
		rng:   rng,
	}
}

// Rules returns the scoring and gravity rules in effect.
func (s *Session) Rules() Rules {
	return s.rules
}

// Start begins a fresh game: empty board, zero score, level 1.
func (s *Session) Start() {
	s.Board = NewBoard()
	s.Score = 0
	s.Level = 1
	s.Lines = 0
	s.Next = s.randomPiece()
	s.Mode = ModePlaying
	s.spawn()
}

// Restore resumes a saved game. The active piece is a fresh random piece;
// the saved next shape is kept with a new color. Returns ErrInvalidSave
// (wrapped) and leaves the session untouched if st is malformed. The
// returned outcome reports GameOver if the spawn is already blocked.
func (s *Session) Restore(st SaveState) (Outcome, error) {
	board, err := st.Board()
	if err != nil {
		return Outcome{}, err
	}

	s.Board = board
	s.Score = st.Score
	s.Level = st.Level
	s.Lines = st.Lines
	s.Next = NewPiece(ShapeID(st.NextPiece), s.randomColor())
	s.Active = s.randomPiece()
	s.Mode = ModePlaying

	if IsBlocked(s.Active, &s.Board, 0, 0) {
		s.Mode = ModeGameOver
		return Outcome{GameOver: true}, nil
	}
	return Outcome{}, nil
}

// SaveState captures the persistent part of the session.
func (s *Session) SaveState() SaveState {
	return SaveState{
		Grid:      s.Board.Grid(),
		Score:     s.Score,
		Level:     s.Level,
		Lines:     s.Lines,
		NextPiece: int(s.Next.ID),
	}
}

// TogglePause switches between Playing and Paused. Other modes are unaffected.
func (s *Session) TogglePause() bool {
	switch s.Mode {
	case ModePlaying:
		s.Mode = ModePaused
	case ModePaused:
		s.Mode = ModePlaying
	default:
		return false
	}
	return true
}

// Move shifts the active piece one column. dx is -1 or +1.
func (s *Session) Move(dx int) bool {
	if s.Mode != ModePlaying {
		return false
	}
	return TryMove(&s.Active, &s.Board, dx, 0)
}

// SoftDrop moves the active piece down one row if free. It never locks.
func (s *Session) SoftDrop() bool {
	if s.Mode != ModePlaying {
		return false
	}
	return TryMove(&s.Active, &s.Board, 0, 1)
}

// Rotate turns the active piece clockwise if the result fits.
func (s *Session) Rotate() bool {
	if s.Mode != ModePlaying {
		return false
	}
	return TryRotate(&s.Active, &s.Board)
}

// Tick applies one gravity step: fall one row, or lock, clear rows, score,
// promote the next piece and check it for a blocked spawn.
func (s *Session) Tick() Outcome {
	if s.Mode != ModePlaying {
		return Outcome{}
	}
	if TryMove(&s.Active, &s.Board, 0, 1) {
		return Outcome{}
	}

	out := Outcome{Locked: true}
	Lock(s.Active, &s.Board)

	out.Cleared = s.Board.ClearCompletedRows()
	if out.Cleared > 0 {
		out.Points = s.rules.ScoreDelta(out.Cleared, s.Level)
		s.Score += out.Points
		s.Lines += out.Cleared
		if lvl := s.rules.NextLevel(s.Lines); lvl > s.Level {
			s.Level = lvl
			out.LevelUp = true
		}
	}

	out.GameOver = s.spawn()
	return out
}

// spawn promotes the next piece to the spawn position, draws a new next
// piece and enters GameOver if the spawn is blocked.
func (s *Session) spawn() bool {
	s.Active = NewPiece(s.Next.ID, s.Next.Color)
	s.Next = s.randomPiece()

	if IsBlocked(s.Active, &s.Board, 0, 0) {
		s.Mode = ModeGameOver
		return true
	}
	return false
}

func (s *Session) randomPiece() Piece {
	return NewPiece(ShapeID(s.rng.Intn(ShapeCount)), s.randomColor())
}

// randomColor draws a palette index independently of the shape.
func (s *Session) randomColor() int {
	return s.rng.Intn(PaletteSize) + 1
}
