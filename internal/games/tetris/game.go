// Package tetris implements Tetris Cube: a ten-by-twenty falling-block game
// with beveled cube rendering, a side panel, a start menu over a saved game,
// and a single save-on-exit snapshot.
package tetris

import (
	"fmt"
	"math/rand"
	"time"

	"github.com/vovakirdan/tetris-cube/internal/config"
	"github.com/vovakirdan/tetris-cube/internal/core"
	"github.com/vovakirdan/tetris-cube/internal/registry"
)

// Package-level wiring set by the CLI before the game is created.
var (
	configPath string
	saveStore  SaveStore
	background []string
)

// SetConfigPath sets the custom config path for loading.
func SetConfigPath(path string) {
	configPath = path
}

// SetSaveStore sets where the in-progress game is kept between runs.
// A nil store disables saving.
func SetSaveStore(store SaveStore) {
	saveStore = store
}

// SetBackground sets the pattern tiled behind the board. Nil means a solid fill.
func SetBackground(lines []string) {
	background = lines
}

// Game implements the Tetris Cube game.
type Game struct {
	session *Session
	store   SaveStore
	cfg     config.TetrisConfig
	bg      [][]rune

	runtime core.RuntimeConfig
	layout  layout
	tick    uint64

	stepDur time.Duration // Wall time per Step
	gravity time.Duration // Accumulated time toward the next gravity tick

	menuSave *SaveState // Snapshot offered by the start menu
}

// New creates a new Tetris Cube game.
func New() *Game {
	return &Game{}
}

func init() {
	registry.Register("tetris", func() registry.Game {
		return New()
	})
}

// ID returns the game identifier.
func (g *Game) ID() string {
	return "tetris"
}

// Title returns the display name.
func (g *Game) Title() string {
	return "Tetris Cube"
}

// Reset loads configuration and starts over: the menu if a valid snapshot
// exists, otherwise a fresh game.
func (g *Game) Reset(cfg core.RuntimeConfig) {
	gameCfg, err := config.LoadTetris(configPath)
	if err != nil {
		gameCfg = config.DefaultTetrisConfig()
	}
	g.cfg = gameCfg
	g.store = saveStore
	g.setBackground(background)
	g.begin(cfg)
}

// begin initializes the session with the already-set config and store.
func (g *Game) begin(cfg core.RuntimeConfig) {
	g.runtime = cfg
	g.tick = 0

	seed := cfg.Seed
	if seed == 0 {
		seed = time.Now().UnixNano()
	}
	g.session = NewSession(NewRules(g.cfg), rand.New(rand.NewSource(seed)))

	tickRate := cfg.TickRate
	if tickRate <= 0 {
		tickRate = core.DefaultConfig().TickRate
	}
	g.stepDur = time.Second / time.Duration(tickRate)
	g.gravity = 0

	g.layout = computeLayout(cfg.ScreenW, cfg.ScreenH, cfg.Fullscreen)

	if st, err := LoadValid(g.store); err == nil {
		g.menuSave = &st
		return
	}
	g.menuSave = nil
	g.session.Start()
}

func (g *Game) setBackground(lines []string) {
	g.bg = nil
	for _, line := range lines {
		g.bg = append(g.bg, []rune(line))
	}
}

// Resize re-lays out the screen. Game state is untouched.
func (g *Game) Resize(cfg core.RuntimeConfig) {
	g.runtime.ScreenW = cfg.ScreenW
	g.runtime.ScreenH = cfg.ScreenH
	g.runtime.Fullscreen = cfg.Fullscreen
	g.layout = computeLayout(cfg.ScreenW, cfg.ScreenH, cfg.Fullscreen)
}

// Step advances the game by one tick.
func (g *Game) Step(input core.InputFrame) core.StepResult {
	g.tick++
	s := g.session

	var events []core.Event
	switch s.Mode {
	case ModeMenu:
		switch {
		case input.Has(core.ActionContinue):
			events = g.continueGame(events)
		case input.Has(core.ActionNewGame):
			events = g.newGame(events)
		}

	case ModeGameOver:
		if input.Has(core.ActionRestart) {
			events = g.newGame(events)
		}

	case ModePaused:
		if input.Has(core.ActionPause) {
			s.TogglePause()
			g.gravity = 0
		}

	case ModePlaying:
		if input.Has(core.ActionPause) {
			s.TogglePause()
			break
		}
		// Hold the simulation while nothing can be seen
		if g.layout.tooSmall {
			break
		}
		events = g.play(input, events)
	}

	return core.StepResult{State: g.State(), Events: events}
}

// play applies movement input and gravity for one tick in Playing mode.
func (g *Game) play(input core.InputFrame, events []core.Event) []core.Event {
	s := g.session

	// Each press counts, in the order it arrived
	for _, a := range input.Actions {
		switch a {
		case core.ActionLeft:
			s.Move(-1)
		case core.ActionRight:
			s.Move(1)
		case core.ActionRotate:
			s.Rotate()
		case core.ActionSoftDrop:
			s.SoftDrop()
		}
	}

	g.gravity += g.stepDur
	interval := s.Rules().TickInterval(s.Level)
	if g.gravity < interval {
		return events
	}
	g.gravity -= interval

	return g.record(s.Tick(), events)
}

// record converts a tick outcome to events and handles game over.
func (g *Game) record(out Outcome, events []core.Event) []core.Event {
	if out.Locked {
		events = append(events, core.Event{Type: core.EventPieceLocked})
	}
	if out.Cleared > 0 {
		events = append(events, core.Event{Type: core.EventLinesCleared, Value: out.Cleared})
	}
	if out.LevelUp {
		events = append(events, core.Event{Type: core.EventLevelUp, Value: g.session.Level})
	}
	if out.GameOver {
		events = append(events, core.Event{Type: core.EventGameOver, Value: g.session.Score})
		events = g.deleteSave(events)
	}
	return events
}

// newGame discards any snapshot and starts fresh.
func (g *Game) newGame(events []core.Event) []core.Event {
	events = g.deleteSave(events)
	g.menuSave = nil
	g.gravity = 0
	g.session.Start()
	return events
}

// continueGame restores the snapshot. An unreadable snapshot starts a new game.
func (g *Game) continueGame(events []core.Event) []core.Event {
	st, err := LoadValid(g.store)
	if err != nil {
		if !isNoSave(err) {
			events = append(events, core.Event{Type: core.EventSaveFailed, Err: err})
		}
		return g.newGame(events)
	}

	out, err := g.session.Restore(st)
	if err != nil {
		events = append(events, core.Event{Type: core.EventSaveFailed, Err: err})
		return g.newGame(events)
	}

	g.menuSave = nil
	g.gravity = 0
	return g.record(out, events)
}

func (g *Game) deleteSave(events []core.Event) []core.Event {
	if g.store == nil {
		return events
	}
	if err := g.store.Delete(); err != nil {
		return append(events, core.Event{Type: core.EventSaveFailed, Err: err})
	}
	return append(events, core.Event{Type: core.EventSaveDeleted})
}

// Suspend writes the snapshot when quitting mid-game. Nothing is saved from
// the menu or after game over.
func (g *Game) Suspend() error {
	if g.store == nil || g.session == nil {
		return nil
	}
	switch g.session.Mode {
	case ModePlaying, ModePaused:
	default:
		return nil
	}
	if err := g.store.Save(g.session.SaveState()); err != nil {
		return fmt.Errorf("tetris: save on exit: %w", err)
	}
	return nil
}

// ActionAt returns the action of the button under (x, y).
func (g *Game) ActionAt(x, y int) core.Action {
	l := g.layout
	switch {
	case l.close.Contains(x, y):
		return core.ActionQuit
	case l.minimize.Contains(x, y):
		return core.ActionToggleFullscreen
	}
	if l.tooSmall || g.session == nil {
		return core.ActionNone
	}

	switch g.session.Mode {
	case ModeMenu:
		if l.primary.Contains(x, y) {
			return core.ActionContinue
		}
		if l.secondary.Contains(x, y) {
			return core.ActionNewGame
		}
	case ModeGameOver:
		if l.primary.Contains(x, y) {
			return core.ActionRestart
		}
	case ModePlaying, ModePaused:
		if l.pause.Contains(x, y) {
			return core.ActionPause
		}
	}
	return core.ActionNone
}

// State returns the current game state.
func (g *Game) State() core.GameState {
	if g.session == nil {
		return core.GameState{}
	}
	return core.GameState{
		Score:    g.session.Score,
		GameOver: g.session.Mode == ModeGameOver,
		Paused:   g.session.Mode == ModePaused,
		InMenu:   g.session.Mode == ModeMenu,
	}
}

// Session exposes the underlying session for inspection.
func (g *Game) Session() *Session {
	return g.session
}

// Config returns the configuration loaded by the last Reset.
func (g *Game) Config() config.TetrisConfig {
	return g.cfg
}
