package main

import (
	"errors"
	"fmt"

	"github.com/charmbracelet/lipgloss"
	"github.com/spf13/cobra"

	"github.com/vovakirdan/tetris-cube/internal/games/tetris"
	"github.com/vovakirdan/tetris-cube/internal/storage"
)

var (
	titleStyle = lipgloss.NewStyle().Bold(true).Foreground(lipgloss.Color("220"))
	labelStyle = lipgloss.NewStyle().Foreground(lipgloss.Color("241")).Width(9)
	valueStyle = lipgloss.NewStyle().Foreground(lipgloss.Color("252"))
)

var saveCmd = &cobra.Command{
	Use:   "save",
	Short: "Inspect or clear the saved game",
	Long: `Manage the single saved game written when quitting mid-game.

Examples:
  tetriscube save show
  tetriscube save clear
  tetriscube save show --save-backend sqlite`,
}

var saveShowCmd = &cobra.Command{
	Use:          "show",
	Short:        "Describe the saved game",
	Args:         cobra.NoArgs,
	SilenceUsage: true,
	RunE:         runSaveShow,
}

var saveClearCmd = &cobra.Command{
	Use:          "clear",
	Short:        "Delete the saved game",
	Args:         cobra.NoArgs,
	SilenceUsage: true,
	RunE:         runSaveClear,
}

func init() {
	saveCmd.AddCommand(saveShowCmd)
	saveCmd.AddCommand(saveClearCmd)
}

func openStore() (storage.Store, func(), error) {
	cfg, err := loadConfig(stderrLogger())
	if err != nil {
		return nil, nil, err
	}
	store, closer, err := storage.Open(cfg.Save)
	if err != nil {
		return nil, nil, err
	}
	return store, func() { closer.Close() }, nil
}

func runSaveShow(cmd *cobra.Command, args []string) error {
	store, done, err := openStore()
	if err != nil {
		return err
	}
	defer done()

	info, err := store.Info()
	switch {
	case errors.Is(err, tetris.ErrNoSave):
		fmt.Println("No saved game.")
		return nil
	case errors.Is(err, tetris.ErrInvalidSave):
		fmt.Printf("Saved game is unreadable and will be ignored: %v\n", err)
		return nil
	case err != nil:
		return err
	}

	if err := info.State.Validate(); err != nil {
		fmt.Printf("Saved game is unreadable and will be ignored: %v\n", err)
		return nil
	}

	st := info.State
	row := func(label string, value any) {
		fmt.Println(labelStyle.Render(label) + valueStyle.Render(fmt.Sprint(value)))
	}

	fmt.Println(titleStyle.Render("Saved game"))
	fmt.Println()
	row("Score", st.Score)
	row("Level", st.Level)
	row("Lines", st.Lines)
	row("Next", tetris.ShapeID(st.NextPiece))
	row("Filled", fmt.Sprintf("%d cells", filledCells(st)))
	if !info.UpdatedAt.IsZero() {
		row("Saved", info.UpdatedAt.Local().Format("2006-01-02 15:04"))
	}
	return nil
}

func filledCells(st tetris.SaveState) int {
	n := 0
	for _, row := range st.Grid {
		for _, v := range row {
			if v != tetris.Empty {
				n++
			}
		}
	}
	return n
}

func runSaveClear(cmd *cobra.Command, args []string) error {
	store, done, err := openStore()
	if err != nil {
		return err
	}
	defer done()

	if err := store.Delete(); err != nil {
		return err
	}
	fmt.Println("Saved game cleared.")
	return nil
}
