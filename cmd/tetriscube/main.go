// tetriscube is a falling-block puzzle game for the terminal.
//
// Usage:
//
//	tetriscube                - Play (same as "tetriscube play")
//	tetriscube play           - Play, offering to continue a saved game
//	tetriscube save show      - Describe the saved game, if any
//	tetriscube save clear     - Delete the saved game
//	tetriscube config         - Print the effective configuration
//
// Global flags:
//
//	--config <path>         - Custom YAML config
//	--save <path>           - Snapshot location (default depends on backend)
//	--save-backend <name>   - Snapshot backend: file or sqlite
//	--log-file <path>       - Write logs to a file while playing
package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"

	// Import the game to register it
	_ "github.com/vovakirdan/tetris-cube/internal/games/tetris"
)

var (
	// Global flags
	flagConfig      string
	flagSavePath    string
	flagSaveBackend string
	flagLogFile     string
)

func main() {
	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}

var rootCmd = &cobra.Command{
	Use:   "tetriscube",
	Short: "Tetris Cube - falling blocks in your terminal",
	Long: `Tetris Cube is a ten-by-twenty falling-block game drawn with
beveled truecolor cubes.

Quitting mid-game saves it; the next start offers to continue.

Available commands:
  play     - Play the game (default)
  save     - Inspect or clear the saved game
  config   - Print the effective configuration

Examples:
  tetriscube
  tetriscube --windowed --fps 30
  tetriscube --save-backend sqlite
  tetriscube save show`,
	SilenceUsage: true,
	RunE:         runPlay,
}

func init() {
	// Global persistent flags
	rootCmd.PersistentFlags().StringVar(&flagConfig, "config", "", "Path to custom config YAML")
	rootCmd.PersistentFlags().StringVar(&flagSavePath, "save", "", "Path to the saved game (default from config)")
	rootCmd.PersistentFlags().StringVar(&flagSaveBackend, "save-backend", "", "Save backend: file, sqlite (default from config)")
	rootCmd.PersistentFlags().StringVar(&flagLogFile, "log-file", "", "Write logs to this file while playing")

	addPlayFlags(rootCmd)

	// Add subcommands
	rootCmd.AddCommand(playCmd)
	rootCmd.AddCommand(saveCmd)
	rootCmd.AddCommand(configCmd)
}
