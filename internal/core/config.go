package core

// RuntimeConfig contains configuration passed to games at initialization.
// Games use this to adapt to screen size and for deterministic simulation.
type RuntimeConfig struct {
	ScreenW    int   // Screen width in characters
	ScreenH    int   // Screen height in characters
	TickRate   int   // Simulation ticks per second (default 60)
	Seed       int64 // RNG seed for deterministic gameplay
	Fullscreen bool  // Centered layout on the alternate screen; compact inline layout otherwise
}

// DefaultConfig returns a RuntimeConfig with sensible defaults.
func DefaultConfig() RuntimeConfig {
	return RuntimeConfig{
		ScreenW:    80,
		ScreenH:    24,
		TickRate:   60,
		Seed:       0, // 0 means use current time in platform layer
		Fullscreen: true,
	}
}

// GameState represents the current state of a game.
// Returned by Game.State() to communicate status to the platform.
type GameState struct {
	Score    int  // Current score
	GameOver bool // Whether the game has ended
	Paused   bool // Whether the game is paused
	InMenu   bool // Whether the start menu is showing
}

// EventType identifies something notable that happened during a tick.
type EventType int

const (
	EventPieceLocked EventType = iota
	EventLinesCleared
	EventLevelUp
	EventGameOver
	EventSaveDeleted
	EventSaveFailed
)

// String returns a human-readable name for the event type.
func (e EventType) String() string {
	switch e {
	case EventPieceLocked:
		return "piece locked"
	case EventLinesCleared:
		return "lines cleared"
	case EventLevelUp:
		return "level up"
	case EventGameOver:
		return "game over"
	case EventSaveDeleted:
		return "snapshot deleted"
	case EventSaveFailed:
		return "snapshot error"
	default:
		return "unknown"
	}
}

// Event is a single notable occurrence reported by Game.Step.
type Event struct {
	Type  EventType
	Value int   // Event-specific payload (rows cleared, new level, final score)
	Err   error // Set for EventSaveFailed
}

// StepResult is returned by Game.Step() after each simulation tick.
// Contains the updated game state and any events that occurred.
type StepResult struct {
	State  GameState
	Events []Event
}
