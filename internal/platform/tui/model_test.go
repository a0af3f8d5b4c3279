package tui

import (
	"strings"
	"testing"

	tea "github.com/charmbracelet/bubbletea"

	"github.com/vovakirdan/tetris-cube/internal/core"
	"github.com/vovakirdan/tetris-cube/internal/games/tetris"
)

// fakeGame records what the platform asks of it.
type fakeGame struct {
	resets    int
	steps     []core.InputFrame
	resized   []core.RuntimeConfig
	suspended int
	clickAt   core.Action
	state     core.GameState
	events    []core.Event
}

func (g *fakeGame) ID() string { return "fake" }
func (g *fakeGame) Title() string { return "Fake" }
func (g *fakeGame) Reset(core.RuntimeConfig) { g.resets++ }
func (g *fakeGame) State() core.GameState { return g.state }
func (g *fakeGame) Resize(c core.RuntimeConfig) { g.resized = append(g.resized, c) }
func (g *fakeGame) ActionAt(x, y int) core.Action {
	if x == 3 && y == 4 {
		return g.clickAt
	}
	return core.ActionNone
}
func (g *fakeGame) Suspend() error { g.suspended++; return nil }

func (g *fakeGame) Step(in core.InputFrame) core.StepResult {
	g.steps = append(g.steps, in)
	return core.StepResult{State: g.state, Events: g.events}
}

func (g *fakeGame) Render(dst *core.Screen) {
	dst.DrawTextStyled(0, 0, "fake game", core.Style{})
}

func newTestModel(g *fakeGame) Model {
	return NewModel(g, core.RuntimeConfig{ScreenW: 80, ScreenH: 24, TickRate: 60, Seed: 1, Fullscreen: true}, nil)
}

func update(t *testing.T, m Model, msg tea.Msg) (Model, tea.Cmd) {
	t.Helper()
	next, cmd := m.Update(msg)
	nm, ok := next.(Model)
	if !ok {
		t.Fatalf("Update returned %T, expected Model", next)
	}
	return nm, cmd
}

func TestModelReservesFooterRow(t *testing.T) {
	m := newTestModel(&fakeGame{})

	if m.screen.Height() != 23 {
		t.Errorf("screen height = %d, expected 23", m.screen.Height())
	}
}

func TestModelKeyReachesGameOnTick(t *testing.T) {
	g := &fakeGame{}
	m := newTestModel(g)

	m, _ = update(t, m, runeKey('p'))
	m, cmd := update(t, m, TickMsg{})

	if cmd == nil {
		t.Error("tick should schedule the next tick")
	}
	if len(g.steps) != 1 || !g.steps[0].Has(core.ActionPause) {
		t.Fatalf("expected one step with ActionPause, got %+v", g.steps)
	}

	// Input is cleared after each tick
	update(t, m, TickMsg{})
	if g.steps[1].Has(core.ActionPause) {
		t.Error("input frame should be cleared between ticks")
	}
}

func TestModelKeepsEveryPressInOrder(t *testing.T) {
	g := &fakeGame{}
	m := newTestModel(g)

	m, _ = update(t, m, tea.KeyMsg{Type: tea.KeyLeft})
	m, _ = update(t, m, tea.KeyMsg{Type: tea.KeyLeft})
	m, _ = update(t, m, tea.KeyMsg{Type: tea.KeyUp})
	update(t, m, TickMsg{})

	want := []core.Action{core.ActionLeft, core.ActionLeft, core.ActionRotate}
	got := g.steps[0].Actions
	if len(got) != len(want) {
		t.Fatalf("step got actions %v, expected %v", got, want)
	}
	for i := range want {
		if got[i] != want[i] {
			t.Errorf("action %d = %v, expected %v", i, got[i], want[i])
		}
	}
}

func TestModelTwoPressesMoveTwoColumns(t *testing.T) {
	tetris.SetSaveStore(nil)
	game := tetris.New()
	m := NewModel(game, core.RuntimeConfig{ScreenW: 80, ScreenH: 24, TickRate: 60, Seed: 7, Fullscreen: true}, nil)
	m.Init()

	s := game.Session()
	if s.Mode != tetris.ModePlaying {
		t.Fatalf("mode = %v, expected playing", s.Mode)
	}
	startX := s.Active.X

	m, _ = update(t, m, tea.KeyMsg{Type: tea.KeyLeft})
	m, _ = update(t, m, tea.KeyMsg{Type: tea.KeyLeft})
	update(t, m, TickMsg{})

	if got := game.Session().Active.X; got != startX-2 {
		t.Errorf("X = %d after two left presses, expected %d", got, startX-2)
	}
}

func TestModelMouseClick(t *testing.T) {
	g := &fakeGame{clickAt: core.ActionRestart}
	m := newTestModel(g)

	m, _ = update(t, m, tea.MouseMsg{X: 3, Y: 4, Action: tea.MouseActionPress, Button: tea.MouseButtonLeft})
	update(t, m, TickMsg{})

	if !g.steps[0].Has(core.ActionRestart) {
		t.Error("click on a button should queue its action")
	}
}

func TestModelMouseReleaseIgnored(t *testing.T) {
	g := &fakeGame{clickAt: core.ActionRestart}
	m := newTestModel(g)

	m, _ = update(t, m, tea.MouseMsg{X: 3, Y: 4, Action: tea.MouseActionRelease, Button: tea.MouseButtonLeft})
	update(t, m, TickMsg{})

	if g.steps[0].Has(core.ActionRestart) {
		t.Error("release should not trigger a button")
	}
}

func TestModelQuitSuspends(t *testing.T) {
	g := &fakeGame{}
	m := newTestModel(g)

	m, cmd := update(t, m, runeKey('q'))

	if g.suspended != 1 {
		t.Errorf("Suspend called %d times, expected 1", g.suspended)
	}
	if cmd == nil {
		t.Fatal("quit should return a command")
	}
	if _, ok := cmd().(tea.QuitMsg); !ok {
		t.Error("quit command should produce tea.QuitMsg")
	}
	if m.View() != "" {
		t.Error("View should be empty after quitting")
	}
}

func TestModelCloseButtonQuits(t *testing.T) {
	g := &fakeGame{clickAt: core.ActionQuit}
	m := newTestModel(g)

	_, cmd := update(t, m, tea.MouseMsg{X: 3, Y: 4, Action: tea.MouseActionPress, Button: tea.MouseButtonLeft})

	if g.suspended != 1 || cmd == nil {
		t.Error("close button should save and quit")
	}
}

func TestModelResize(t *testing.T) {
	g := &fakeGame{}
	m := newTestModel(g)

	m, _ = update(t, m, tea.WindowSizeMsg{Width: 100, Height: 40})

	if g.resets != 0 {
		t.Error("a Resizer should not be reset on resize")
	}
	if len(g.resized) != 1 {
		t.Fatalf("Resize called %d times, expected 1", len(g.resized))
	}
	if got := g.resized[0]; got.ScreenW != 100 || got.ScreenH != 39 {
		t.Errorf("Resize got %dx%d, expected 100x39", got.ScreenW, got.ScreenH)
	}
	if m.screen.Width() != 100 || m.screen.Height() != 39 {
		t.Errorf("screen is %dx%d, expected 100x39", m.screen.Width(), m.screen.Height())
	}
}

func TestModelToggleFullscreen(t *testing.T) {
	g := &fakeGame{}
	m := newTestModel(g)

	m, cmd := update(t, m, runeKey('f'))

	if m.config.Fullscreen {
		t.Error("f should leave fullscreen")
	}
	if cmd == nil {
		t.Error("toggle should return an alt-screen command")
	}
	if len(g.resized) != 1 || g.resized[0].Fullscreen {
		t.Errorf("game should be re-laid out windowed, got %+v", g.resized)
	}
	if len(g.steps) != 0 {
		t.Error("fullscreen toggle must not reach the game as input")
	}
}

func TestModelView(t *testing.T) {
	// No tick yet: the footer must already follow the game's mode
	m := newTestModel(&fakeGame{state: core.GameState{InMenu: true}})

	view := m.View()

	if !strings.Contains(view, "fake game") {
		t.Error("View should contain the rendered game")
	}
	if !strings.Contains(view, "new game") {
		t.Error("menu help should list the new game key")
	}
}
