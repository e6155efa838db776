package config

import (
	_ "embed"
)

//go:embed defaults/runner.yaml
var defaultRunnerYAML []byte

// DefaultRunnerConfig returns the default runner configuration.
func DefaultRunnerConfig() RunnerConfig {
	return RunnerConfig{
		Canvas: CanvasConfig{
			Width:       800,
			Height:      600,
			GroundRatio: 0.8,
		},
		Runner: PlayerConfig{
			XRatio:       0.1,
			Width:        50,
			Height:       100,
			JumpVelocity: -25,
			JumpAccel:    1,
		},
		Obstacles: ObstacleConfig{
			MaxCount:      2,
			Width:         50,
			Height:        50,
			Speed:         5,
			SpawnInterval: 1.0,
		},
		Stones: StoneConfig{
			MaxCount:   30,
			MinWidth:   5,
			WidthRange: 15,
			Height:     2,
			Speed:      5,
			MinDepth:   10,
			DepthRange: 20,
		},
		Scoring: ScoringConfig{
			PassPoints: 10,
			Digits:     5,
		},
		Colors: ColorConfig{
			Background: "#333333",
			Foreground: "#f5f5f5",
		},
		Text: TextConfig{
			ScoreX:      100,
			ScoreY:      75,
			GameOverBox: 350,
		},
		Terminal: TerminalConfig{
			CellWidth:  10,
			CellHeight: 24,
		},
	}
}

// DefaultYAML returns the embedded default YAML.
func DefaultYAML() []byte {
	return defaultRunnerYAML
}
