package tui

import (
	"github.com/charmbracelet/bubbles/key"
	tea "github.com/charmbracelet/bubbletea"

	"github.com/vovakirdan/tetris-cube/internal/core"
)

// KeyMap defines the key bindings for the game.
type KeyMap struct {
	Left       key.Binding
	Right      key.Binding
	Down       key.Binding
	Rotate     key.Binding
	Pause      key.Binding
	Restart    key.Binding
	NewGame    key.Binding
	Continue   key.Binding
	Fullscreen key.Binding
	Screenshot key.Binding
	Quit       key.Binding
}

// DefaultKeyMap returns the default key bindings.
func DefaultKeyMap() KeyMap {
	return KeyMap{
		Left: key.NewBinding(
			key.WithKeys("left", "h", "a"),
			key.WithHelp("←/h", "left"),
		),
		Right: key.NewBinding(
			key.WithKeys("right", "l", "d"),
			key.WithHelp("→/l", "right"),
		),
		Down: key.NewBinding(
			key.WithKeys("down", "j", "s"),
			key.WithHelp("↓/j", "drop"),
		),
		Rotate: key.NewBinding(
			key.WithKeys("up", "k", "w", "x"),
			key.WithHelp("↑/k", "rotate"),
		),
		Pause: key.NewBinding(
			key.WithKeys("p", " "),
			key.WithHelp("p", "pause"),
		),
		Restart: key.NewBinding(
			key.WithKeys("r"),
			key.WithHelp("r", "restart"),
		),
		NewGame: key.NewBinding(
			key.WithKeys("n"),
			key.WithHelp("n", "new game"),
		),
		Continue: key.NewBinding(
			key.WithKeys("c", "enter"),
			key.WithHelp("c/enter", "continue"),
		),
		Fullscreen: key.NewBinding(
			key.WithKeys("f"),
			key.WithHelp("f", "fullscreen"),
		),
		Screenshot: key.NewBinding(
			key.WithKeys("ctrl+s"),
			key.WithHelp("ctrl+s", "screenshot"),
		),
		Quit: key.NewBinding(
			key.WithKeys("q", "ctrl+c"),
			key.WithHelp("q", "quit"),
		),
	}
}

// ShortHelp returns every binding. Use ForState for a mode-specific list.
func (k KeyMap) ShortHelp() []key.Binding {
	return []key.Binding{k.Left, k.Right, k.Down, k.Rotate, k.Pause, k.Fullscreen, k.Quit}
}

// FullHelp returns keybindings for the expanded help view.
func (k KeyMap) FullHelp() [][]key.Binding {
	return [][]key.Binding{
		{k.Left, k.Right, k.Down, k.Rotate},
		{k.Pause, k.Restart, k.NewGame, k.Continue},
		{k.Fullscreen, k.Screenshot, k.Quit},
	}
}

// ForState returns a help.KeyMap listing only the bindings usable in the
// given game state.
func (k KeyMap) ForState(st core.GameState) StateHelp {
	return StateHelp{keys: k, state: st}
}

// StateHelp adapts KeyMap to the current game state for the help footer.
type StateHelp struct {
	keys  KeyMap
	state core.GameState
}

func (h StateHelp) ShortHelp() []key.Binding {
	k := h.keys
	switch {
	case h.state.InMenu:
		return []key.Binding{k.Continue, k.NewGame, k.Fullscreen, k.Quit}
	case h.state.GameOver:
		return []key.Binding{k.Restart, k.Fullscreen, k.Quit}
	case h.state.Paused:
		return []key.Binding{k.Pause, k.Fullscreen, k.Quit}
	default:
		return k.ShortHelp()
	}
}

func (h StateHelp) FullHelp() [][]key.Binding {
	return [][]key.Binding{h.ShortHelp()}
}

// KeyMapper translates Bubble Tea key messages to game actions.
// This centralizes key bindings and makes them testable.
type KeyMapper struct {
	keys KeyMap
}

// NewKeyMapper creates a new key mapper with default bindings.
func NewKeyMapper() *KeyMapper {
	return &KeyMapper{keys: DefaultKeyMap()}
}

// Keys returns the bindings in use.
func (km *KeyMapper) Keys() KeyMap {
	return km.keys
}

// MapKey translates a key message to an action.
// Returns the action (may be ActionNone) and whether it's a quit request.
func (km *KeyMapper) MapKey(msg tea.KeyMsg) (action core.Action, isQuit bool) {
	k := km.keys

	switch {
	case key.Matches(msg, k.Quit):
		return core.ActionQuit, true
	case key.Matches(msg, k.Left):
		return core.ActionLeft, false
	case key.Matches(msg, k.Right):
		return core.ActionRight, false
	case key.Matches(msg, k.Down):
		return core.ActionSoftDrop, false
	case key.Matches(msg, k.Rotate):
		return core.ActionRotate, false
	case key.Matches(msg, k.Pause):
		return core.ActionPause, false
	case key.Matches(msg, k.Restart):
		return core.ActionRestart, false
	case key.Matches(msg, k.NewGame):
		return core.ActionNewGame, false
	case key.Matches(msg, k.Continue):
		return core.ActionContinue, false
	case key.Matches(msg, k.Fullscreen):
		return core.ActionToggleFullscreen, false
	}

	return core.ActionNone, false
}
