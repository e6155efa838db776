package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/vovakirdan/canvas-runner/internal/config"
)

var flagCheck string

var configCmd = &cobra.Command{
	Use:   "config",
	Short: "Print or check the runner configuration",
	Long: `Print the built-in default configuration as YAML, or validate a
config file with --check.

Examples:
  runner config > ~/.runner/configs/runner.yaml
  runner config --check ./my-runner.yaml`,
	Args: cobra.NoArgs,
	RunE: runConfig,
}

func init() {
	configCmd.Flags().StringVar(&flagCheck, "check", "", "Validate this config file instead of printing defaults")
}

func runConfig(_ *cobra.Command, _ []string) error {
	if flagCheck == "" {
		_, err := os.Stdout.Write(config.DefaultYAML())
		return err
	}

	cfg, _, err := config.Load(flagCheck)
	if err != nil {
		return err
	}
	fmt.Printf("%s: ok (canvas %dx%d, %d obstacles, %d stones)\n",
		flagCheck, cfg.Canvas.Width, cfg.Canvas.Height, cfg.Obstacles.MaxCount, cfg.Stones.MaxCount)
	return nil
}
