package main

import (
	"fmt"
	"io"
	"os"
	"time"

	"github.com/charmbracelet/log"
	"github.com/spf13/cobra"
	"golang.org/x/term"

	"github.com/vovakirdan/tetris-cube/internal/config"
	"github.com/vovakirdan/tetris-cube/internal/core"
	"github.com/vovakirdan/tetris-cube/internal/games/tetris"
	"github.com/vovakirdan/tetris-cube/internal/platform/tui"
	"github.com/vovakirdan/tetris-cube/internal/registry"
	"github.com/vovakirdan/tetris-cube/internal/storage"
)

var (
	flagFPS      int
	flagSeed     int64
	flagWindowed bool
)

var playCmd = &cobra.Command{
	Use:   "play",
	Short: "Play Tetris Cube",
	Long: `Start the game. If a saved game exists, a menu offers to continue it.

Controls:
  Left/Right, H/L   - Move
  Down/J            - Soft drop
  Up/K/X            - Rotate
  P/Space           - Pause
  R                 - Restart (after game over)
  C/Enter, N        - Continue / new game (start menu)
  F                 - Toggle fullscreen
  Q/Ctrl+C          - Save and quit

The PAUSE, CONTINUE, NEW GAME, RESTART, "_" and "X" buttons can also be
clicked with the mouse.

Examples:
  tetriscube play
  tetriscube play --windowed
  tetriscube play --seed 42 --config ./my-tetris.yaml`,
	SilenceUsage: true,
	RunE:         runPlay,
}

func init() {
	addPlayFlags(playCmd)
}

// addPlayFlags registers the gameplay flags on cmd. The root command and
// "play" share them so either form works.
func addPlayFlags(cmd *cobra.Command) {
	cmd.Flags().IntVar(&flagFPS, "fps", 60, "Tick rate (frames per second)")
	cmd.Flags().Int64Var(&flagSeed, "seed", 0, "RNG seed (0 = random based on time)")
	cmd.Flags().BoolVar(&flagWindowed, "windowed", false, "Start inline instead of fullscreen")
}

// loadConfig loads the YAML config and applies the save flags. Read errors
// are reported and the defaults used.
func loadConfig(logger *log.Logger) (config.TetrisConfig, error) {
	cfg, err := config.LoadTetris(flagConfig)
	if err != nil {
		logger.Warn("using default config", "err", err)
	}

	if flagSaveBackend != "" {
		backend := config.SaveBackend(flagSaveBackend)
		if !backend.Valid() {
			return cfg, fmt.Errorf("invalid --save-backend %q (want %q or %q)", flagSaveBackend, config.BackendFile, config.BackendSQLite)
		}
		if backend != cfg.Save.Backend {
			cfg.Save.Path = ""
		}
		cfg.Save.Backend = backend
	}
	if flagSavePath != "" {
		cfg.Save.Path = flagSavePath
	}
	return cfg, nil
}

// stderrLogger reports problems before the TUI takes over the terminal.
func stderrLogger() *log.Logger {
	return log.NewWithOptions(os.Stderr, log.Options{Prefix: "tetriscube"})
}

// gameLogger writes to --log-file, or discards when none is set.
func gameLogger() (*log.Logger, io.Closer, error) {
	if flagLogFile == "" {
		return log.New(io.Discard), nopCloser{}, nil
	}

	f, err := os.OpenFile(config.ExpandHome(flagLogFile), os.O_CREATE|os.O_WRONLY|os.O_APPEND, 0o644)
	if err != nil {
		return nil, nil, fmt.Errorf("open log file: %w", err)
	}

	logger := log.NewWithOptions(f, log.Options{
		Prefix:          "tetriscube",
		ReportTimestamp: true,
		TimeFormat:      time.TimeOnly,
		Level:           log.DebugLevel,
	})
	return logger, f, nil
}

func runPlay(cmd *cobra.Command, args []string) error {
	warn := stderrLogger()

	if flagFPS <= 0 {
		return fmt.Errorf("invalid --fps %d", flagFPS)
	}

	cfg, err := loadConfig(warn)
	if err != nil {
		return err
	}

	logger, logCloser, err := gameLogger()
	if err != nil {
		return err
	}
	defer logCloser.Close()

	// Open snapshot storage
	store, closer, err := storage.Open(cfg.Save)
	if err != nil {
		warn.Warn("saving disabled", "err", err)
		// Continue without storage - game still works
		tetris.SetSaveStore(nil)
	} else {
		tetris.SetSaveStore(store)
	}
	defer closer.Close()

	// Background pattern is optional
	bg, err := config.LoadBackground(cfg.Display.Background)
	if err != nil {
		warn.Warn("background not loaded", "err", err)
	}
	tetris.SetBackground(bg)
	tetris.SetConfigPath(flagConfig)

	width, height := 80, 24 // Defaults
	if w, h, termErr := term.GetSize(int(os.Stdout.Fd())); termErr == nil {
		width = w
		height = h
	}

	rt := core.RuntimeConfig{
		ScreenW:    width,
		ScreenH:    height,
		TickRate:   flagFPS,
		Seed:       flagSeed,
		Fullscreen: cfg.Display.Fullscreen && !flagWindowed,
	}

	game, err := registry.Create("tetris")
	if err != nil {
		return fmt.Errorf("creating game: %w", err)
	}

	if err := tui.Run(game, rt, logger); err != nil {
		return fmt.Errorf("running game: %w", err)
	}
	return nil
}

type nopCloser struct{}

func (nopCloser) Close() error { return nil }
