package core

// Action represents a semantic game action, abstracted from physical key presses.
// This allows games to work with high-level intents rather than raw input.
type Action int

const (
	ActionNone             Action = iota
	ActionLeft                    // Left arrow, A, H - move piece one column left
	ActionRight                   // Right arrow, D, L - move piece one column right
	ActionSoftDrop                // Down arrow, S, J - move piece one row down
	ActionRotate                  // Up arrow, W, K, X - rotate piece clockwise
	ActionPause                   // P, Space - pause/unpause game
	ActionRestart                 // R - restart after game over
	ActionNewGame                 // N - start a fresh game from the menu
	ActionContinue                // C, Enter - resume the saved game from the menu
	ActionToggleFullscreen        // F - switch between fullscreen and windowed layout
	ActionQuit                    // Q, Ctrl+C - exit
)

// String returns a human-readable name for the action.
func (a Action) String() string {
	switch a {
	case ActionNone:
		return "None"
	case ActionLeft:
		return "Left"
	case ActionRight:
		return "Right"
	case ActionSoftDrop:
		return "SoftDrop"
	case ActionRotate:
		return "Rotate"
	case ActionPause:
		return "Pause"
	case ActionRestart:
		return "Restart"
	case ActionNewGame:
		return "NewGame"
	case ActionContinue:
		return "Continue"
	case ActionToggleFullscreen:
		return "ToggleFullscreen"
	case ActionQuit:
		return "Quit"
	default:
		return "Unknown"
	}
}

// InputFrame holds the actions triggered since the previous simulation tick,
// in the order they arrived. Repeated presses are kept.
type InputFrame struct {
	Actions []Action
}

// NewInputFrame creates an empty input frame.
func NewInputFrame() InputFrame {
	return InputFrame{}
}

// Set appends an action to this frame.
func (f *InputFrame) Set(a Action) {
	f.Actions = append(f.Actions, a)
}

// Has returns true if the given action was triggered at least once this frame.
func (f InputFrame) Has(a Action) bool {
	for _, got := range f.Actions {
		if got == a {
			return true
		}
	}
	return false
}

// Clear drops all actions for the next frame. The backing array is not
// reused, so frames handed to a game stay intact.
func (f *InputFrame) Clear() {
	f.Actions = nil
}
