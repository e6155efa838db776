// runner-window plays the runner in a desktop window. Built with
// GOOS=js GOARCH=wasm it draws into a browser canvas instead.
//
// Usage:
//
//	runner-window [--config path] [--fps rate] [--seed value] [--log-level level]
package main

import (
	"fmt"
	"os"
	"time"

	"github.com/charmbracelet/log"
	"github.com/spf13/cobra"

	"github.com/vovakirdan/canvas-runner/internal/config"
	"github.com/vovakirdan/canvas-runner/internal/core"
	"github.com/vovakirdan/canvas-runner/internal/platform/window"
)

var (
	flagConfig   string
	flagFPS      int
	flagSeed     int64
	flagLogLevel string
)

func main() {
	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}
}

var rootCmd = &cobra.Command{
	Use:   "runner-window",
	Short: "Play the runner in a window",
	Long: `Open a window with a runner session on the configured canvas.

Controls:
  Space / click / tap  - Jump, restart after game over
  Esc                  - Quit`,
	Args:          cobra.NoArgs,
	SilenceUsage:  true,
	SilenceErrors: true,
	RunE:          run,
}

func init() {
	rootCmd.Flags().StringVar(&flagConfig, "config", "", "Path to custom runner config YAML")
	rootCmd.Flags().IntVar(&flagFPS, "fps", 60, "Tick rate (frames per second)")
	rootCmd.Flags().Int64Var(&flagSeed, "seed", 0, "RNG seed (0 = random based on time)")
	rootCmd.Flags().StringVar(&flagLogLevel, "log-level", "info", "Log level: debug, info, warn, error")
}

func run(_ *cobra.Command, _ []string) error {
	level, err := log.ParseLevel(flagLogLevel)
	if err != nil {
		return fmt.Errorf("invalid --log-level: %w", err)
	}
	logger := log.NewWithOptions(os.Stderr, log.Options{
		ReportTimestamp: true,
		Prefix:          "runner-window",
		Level:           level,
	})

	cfg, source, err := config.Load(flagConfig)
	if err != nil {
		return fmt.Errorf("load config: %w", err)
	}
	logger.Debug("config loaded", "source", source)

	rt := core.DefaultConfig()
	rt.CanvasW = float64(cfg.Canvas.Width)
	rt.CanvasH = float64(cfg.Canvas.Height)
	rt.TickRate = flagFPS
	rt.Seed = flagSeed
	if rt.Seed == 0 {
		rt.Seed = time.Now().UnixNano()
	}

	return window.Run(cfg, rt, logger)
}
