package tui

import (
	"testing"

	tea "github.com/charmbracelet/bubbletea"

	"github.com/vovakirdan/tetris-cube/internal/core"
)

func runeKey(r rune) tea.KeyMsg {
	return tea.KeyMsg{Type: tea.KeyRunes, Runes: []rune{r}}
}

func TestMapKey(t *testing.T) {
	km := NewKeyMapper()

	tests := []struct {
		name   string
		msg    tea.KeyMsg
		action core.Action
		quit   bool
	}{
		{"left arrow", tea.KeyMsg{Type: tea.KeyLeft}, core.ActionLeft, false},
		{"h", runeKey('h'), core.ActionLeft, false},
		{"a", runeKey('a'), core.ActionLeft, false},
		{"right arrow", tea.KeyMsg{Type: tea.KeyRight}, core.ActionRight, false},
		{"l", runeKey('l'), core.ActionRight, false},
		{"down arrow", tea.KeyMsg{Type: tea.KeyDown}, core.ActionSoftDrop, false},
		{"j", runeKey('j'), core.ActionSoftDrop, false},
		{"up arrow", tea.KeyMsg{Type: tea.KeyUp}, core.ActionRotate, false},
		{"x", runeKey('x'), core.ActionRotate, false},
		{"p", runeKey('p'), core.ActionPause, false},
		{"space", tea.KeyMsg{Type: tea.KeySpace, Runes: []rune{' '}}, core.ActionPause, false},
		{"r", runeKey('r'), core.ActionRestart, false},
		{"n", runeKey('n'), core.ActionNewGame, false},
		{"c", runeKey('c'), core.ActionContinue, false},
		{"enter", tea.KeyMsg{Type: tea.KeyEnter}, core.ActionContinue, false},
		{"f", runeKey('f'), core.ActionToggleFullscreen, false},
		{"q", runeKey('q'), core.ActionQuit, true},
		{"ctrl+c", tea.KeyMsg{Type: tea.KeyCtrlC}, core.ActionQuit, true},
		{"unbound", runeKey('z'), core.ActionNone, false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			action, quit := km.MapKey(tt.msg)
			if action != tt.action {
				t.Errorf("MapKey(%q) action = %v, expected %v", tt.msg.String(), action, tt.action)
			}
			if quit != tt.quit {
				t.Errorf("MapKey(%q) quit = %v, expected %v", tt.msg.String(), quit, tt.quit)
			}
		})
	}
}

func TestStateHelp(t *testing.T) {
	keys := DefaultKeyMap()

	tests := []struct {
		name  string
		state core.GameState
		want  int
	}{
		{"menu", core.GameState{InMenu: true}, 4},
		{"game over", core.GameState{GameOver: true}, 3},
		{"paused", core.GameState{Paused: true}, 3},
		{"playing", core.GameState{}, len(keys.ShortHelp())},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := keys.ForState(tt.state).ShortHelp()
			if len(got) != tt.want {
				t.Errorf("ShortHelp() has %d bindings, expected %d", len(got), tt.want)
			}
		})
	}
}
