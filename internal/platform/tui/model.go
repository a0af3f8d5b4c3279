package tui

import (
	"fmt"
	"io"
	"os"
	"path/filepath"
	"time"

	"github.com/charmbracelet/bubbles/help"
	"github.com/charmbracelet/bubbles/key"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"
	"github.com/charmbracelet/log"

	"github.com/vovakirdan/tetris-cube/internal/core"
	"github.com/vovakirdan/tetris-cube/internal/registry"
)

// footerH is the number of rows reserved below the game for the help line.
const footerH = 1

var helpStyle = lipgloss.NewStyle().Foreground(lipgloss.Color("241"))

// Model is the Bubble Tea model for running the game.
type Model struct {
	game       registry.Game
	screen     *core.Screen
	config     core.RuntimeConfig // ScreenH is the full terminal height
	keys       *KeyMapper
	help       help.Model
	logger     *log.Logger
	inputFrame core.InputFrame
	gameState  core.GameState
	quitting   bool
}

// NewModel creates a new Bubble Tea model for the given game.
// A nil logger discards log output.
func NewModel(game registry.Game, cfg core.RuntimeConfig, logger *log.Logger) Model {
	// Use time-based seed if not specified
	if cfg.Seed == 0 {
		cfg.Seed = time.Now().UnixNano()
	}
	if logger == nil {
		logger = log.New(io.Discard)
	}

	h := help.New()
	h.Width = cfg.ScreenW

	m := Model{
		game:       game,
		config:     cfg,
		keys:       NewKeyMapper(),
		help:       h,
		logger:     logger,
		inputFrame: core.NewInputFrame(),
	}
	gc := m.gameConfig()
	m.screen = core.NewScreen(gc.ScreenW, gc.ScreenH)
	return m
}

// gameConfig returns the runtime config seen by the game: the terminal
// minus the help footer.
func (m Model) gameConfig() core.RuntimeConfig {
	cfg := m.config
	cfg.ScreenH = max(0, cfg.ScreenH-footerH)
	return cfg
}

// Init initializes the model and starts the game.
func (m Model) Init() tea.Cmd {
	m.game.Reset(m.gameConfig())

	m.logger.Info("game started", "game", m.game.ID(), "fps", m.config.TickRate, "fullscreen", m.config.Fullscreen)

	// Start the tick loop
	return tickCmd(m.config.TickRate)
}

// Update handles messages and updates the model state.
func (m Model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.KeyMsg:
		return m.handleKey(msg)

	case tea.MouseMsg:
		return m.handleMouse(msg)

	case tea.WindowSizeMsg:
		return m.handleResize(msg)

	case TickMsg:
		return m.handleTick()
	}

	return m, nil
}

// handleKey processes keyboard input.
func (m Model) handleKey(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	if key.Matches(msg, m.keys.Keys().Screenshot) {
		m.saveScreenshot()
		return m, nil
	}

	action, _ := m.keys.MapKey(msg)
	return m.dispatch(action)
}

// handleMouse maps left clicks on game buttons to actions.
func (m Model) handleMouse(msg tea.MouseMsg) (tea.Model, tea.Cmd) {
	if msg.Action != tea.MouseActionPress || msg.Button != tea.MouseButtonLeft {
		return m, nil
	}
	c, ok := m.game.(registry.Clickable)
	if !ok {
		return m, nil
	}
	return m.dispatch(c.ActionAt(msg.X, msg.Y))
}

// dispatch handles platform-level actions and queues the rest for the next tick.
func (m Model) dispatch(action core.Action) (tea.Model, tea.Cmd) {
	switch action {
	case core.ActionNone:
		return m, nil
	case core.ActionQuit:
		return m.quit()
	case core.ActionToggleFullscreen:
		return m.toggleFullscreen()
	}

	m.inputFrame.Set(action)
	return m, nil
}

// quit saves an in-progress game and stops the program.
func (m Model) quit() (tea.Model, tea.Cmd) {
	m.suspend()
	m.quitting = true
	return m, tea.Quit
}

// suspend gives the game a chance to persist itself.
func (m Model) suspend() {
	s, ok := m.game.(registry.Suspender)
	if !ok {
		return
	}
	if err := s.Suspend(); err != nil {
		m.logger.Error("save on exit failed", "err", err)
		return
	}
	m.logger.Debug("snapshot saved", "score", m.game.State().Score)
}

// toggleFullscreen switches between the alternate screen with a centered
// layout and inline rendering with a compact layout.
func (m Model) toggleFullscreen() (tea.Model, tea.Cmd) {
	m.config.Fullscreen = !m.config.Fullscreen
	m.relayout()
	m.logger.Debug("display mode", "fullscreen", m.config.Fullscreen)

	if m.config.Fullscreen {
		return m, tea.EnterAltScreen
	}
	return m, tea.ExitAltScreen
}

// handleResize processes window resize events.
func (m Model) handleResize(msg tea.WindowSizeMsg) (tea.Model, tea.Cmd) {
	m.config.ScreenW = msg.Width
	m.config.ScreenH = msg.Height
	m.help.Width = msg.Width
	m.relayout()
	return m, nil
}

// relayout resizes the screen buffer and tells the game about the new size.
// Games that cannot re-layout in place are reset.
func (m *Model) relayout() {
	gc := m.gameConfig()
	m.screen.Resize(gc.ScreenW, gc.ScreenH)

	if r, ok := m.game.(registry.Resizer); ok {
		r.Resize(gc)
		return
	}
	if !m.gameState.GameOver {
		m.game.Reset(gc)
	}
}

// handleTick processes simulation ticks.
func (m Model) handleTick() (tea.Model, tea.Cmd) {
	// Run game simulation
	result := m.game.Step(m.inputFrame)
	m.gameState = result.State
	m.logEvents(result.Events)

	// Clear input for next frame
	m.inputFrame.Clear()

	// Continue ticking
	return m, tickCmd(m.config.TickRate)
}

func (m Model) logEvents(events []core.Event) {
	for _, e := range events {
		switch e.Type {
		case core.EventSaveFailed:
			m.logger.Warn(e.Type.String(), "err", e.Err)
		case core.EventPieceLocked:
			// Too frequent to be useful
		case core.EventGameOver:
			m.logger.Info(e.Type.String(), "score", e.Value)
		default:
			m.logger.Debug(e.Type.String(), "value", e.Value, "score", m.gameState.Score)
		}
	}
}

// saveScreenshot saves the current screen as plain text.
func (m *Model) saveScreenshot() {
	// Render current state
	m.game.Render(m.screen)

	home, err := os.UserHomeDir()
	if err != nil {
		m.logger.Warn("screenshot skipped", "err", err)
		return
	}
	dir := filepath.Join(home, ".tetriscube", "screenshots")
	if err := os.MkdirAll(dir, 0o755); err != nil {
		m.logger.Warn("screenshot skipped", "err", err)
		return
	}

	// Generate filename with timestamp
	timestamp := time.Now().Format("20060102_150405")
	path := filepath.Join(dir, fmt.Sprintf("%s_%s.txt", m.game.ID(), timestamp))

	if err := os.WriteFile(path, []byte(m.screen.String()), 0o600); err != nil {
		m.logger.Warn("screenshot failed", "err", err)
		return
	}
	m.logger.Info("screenshot saved", "path", path)
}

// View renders the current state to a string for display.
func (m Model) View() string {
	if m.quitting {
		return ""
	}

	// Render game to screen buffer
	m.screen.Clear()
	m.game.Render(m.screen)

	// Read the game directly so the footer is right before the first tick
	footer := helpStyle.Render(m.help.View(m.keys.Keys().ForState(m.game.State())))
	return RenderScreen(m.screen) + "\n" + footer
}

// Run starts the Bubble Tea program with the given game. If the program
// ends without a quit request (for example on SIGTERM), the game is still
// given a chance to save.
func Run(game registry.Game, cfg core.RuntimeConfig, logger *log.Logger) error {
	model := NewModel(game, cfg, logger)

	opts := []tea.ProgramOption{
		tea.WithMouseCellMotion(), // Clickable buttons
	}
	if cfg.Fullscreen {
		opts = append(opts, tea.WithAltScreen()) // Use alternate screen buffer
	}

	final, err := tea.NewProgram(model, opts...).Run()
	if fm, ok := final.(Model); ok && !fm.quitting {
		fm.suspend()
	}
	return err
}
