package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/vovakirdan/tetris-cube/internal/config"
)

var configCmd = &cobra.Command{
	Use:   "config",
	Short: "Print the effective configuration",
	Long: `Print the configuration the game would run with, as YAML.

The output can be saved to ~/.tetriscube/configs/tetris.yaml and edited.

Examples:
  tetriscube config
  tetriscube config --config ./my-tetris.yaml`,
	Args:         cobra.NoArgs,
	SilenceUsage: true,
	RunE:         runConfig,
}

func runConfig(cmd *cobra.Command, args []string) error {
	cfg, err := loadConfig(stderrLogger())
	if err != nil {
		return err
	}

	data, err := config.Marshal(cfg)
	if err != nil {
		return err
	}
	_, err = fmt.Fprint(os.Stdout, string(data))
	return err
}
