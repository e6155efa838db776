package main

import (
	"fmt"
	"io"
	"os"

	"github.com/spf13/cobra"
	"golang.org/x/term"

	"github.com/vovakirdan/canvas-runner/internal/config"
	"github.com/vovakirdan/canvas-runner/internal/core"
	"github.com/vovakirdan/canvas-runner/internal/platform/tui"
)

var flagConfig string

var playCmd = &cobra.Command{
	Use:   "play",
	Short: "Play in the current terminal",
	Long: `Start a runner session in the current terminal.

Controls:
  Space      - Jump / restart after game over
  P          - Pause
  Ctrl+S     - Save a text screenshot to ~/.runner/screenshots
  Q/Ctrl+C   - Quit

Config search order:
  --config path, ~/.runner/configs/runner.yaml, ./configs/runner.yaml,
  then the built-in defaults.

Examples:
  runner play
  runner play --fps 30
  runner play --seed 7 --log-file runner.log
  runner play --config ./my-runner.yaml`,
	Args: cobra.NoArgs,
	RunE: runPlay,
}

func init() {
	playCmd.Flags().StringVar(&flagConfig, "config", "", "Path to custom runner config YAML")
}

func runPlay(_ *cobra.Command, _ []string) error {
	// The terminal belongs to the game, so logs are dropped unless --log-file is set.
	logger, closeLog, err := newLogger("runner", io.Discard)
	if err != nil {
		return err
	}
	defer closeLog()

	cfg, source, err := config.Load(flagConfig)
	if err != nil {
		return fmt.Errorf("load config: %w", err)
	}
	logger.Info("config loaded", "source", source)

	width, height := 80, 24 // Defaults
	if w, h, termErr := term.GetSize(int(os.Stdout.Fd())); termErr == nil {
		width = w
		height = h
	}

	rt := core.DefaultConfig()
	rt.TickRate = flagFPS
	rt.Seed = flagSeed

	logger.Info("starting session", "cols", width, "rows", height, "fps", rt.TickRate, "seed", rt.Seed)
	return tui.Run(tui.Options{
		Config:  cfg,
		Runtime: rt,
		Logger:  logger,
	}, width, height)
}
