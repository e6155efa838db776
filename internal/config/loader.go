package config

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"

	colorful "github.com/lucasb-eyer/go-colorful"
	"gopkg.in/yaml.v3"
)

// Source names where a configuration was loaded from.
type Source string

const (
	SourceCustom   Source = "custom"
	SourceUser     Source = "user"
	SourceLocal    Source = "local"
	SourceEmbedded Source = "embedded"
	SourceBuiltin  Source = "builtin"
)

// Load loads the runner configuration.
// Search order: customPath -> ~/.runner/configs/runner.yaml -> ./configs/runner.yaml -> embedded default.
// A custom path that cannot be read or parsed is an error; the other locations
// are skipped silently when missing or invalid.
func Load(customPath string) (RunnerConfig, Source, error) {
	if customPath != "" {
		cfg, err := loadFile(customPath)
		if err != nil {
			return RunnerConfig{}, SourceCustom, err
		}
		return cfg, SourceCustom, nil
	}

	if userCfgPath := userConfigPath("runner.yaml"); userCfgPath != "" {
		if cfg, err := loadFile(userCfgPath); err == nil {
			return cfg, SourceUser, nil
		}
	}

	if cfg, err := loadFile(filepath.Join("configs", "runner.yaml")); err == nil {
		return cfg, SourceLocal, nil
	}

	cfg, err := Parse(defaultRunnerYAML)
	if err != nil {
		return DefaultRunnerConfig(), SourceBuiltin, nil // Fallback to hardcoded if embed fails
	}
	return cfg, SourceEmbedded, nil
}

// Parse decodes YAML on top of the defaults, so a partial document only
// overrides the keys it names, and validates the result.
func Parse(data []byte) (RunnerConfig, error) {
	cfg := DefaultRunnerConfig()
	if err := yaml.Unmarshal(data, &cfg); err != nil {
		return RunnerConfig{}, fmt.Errorf("failed to parse config: %w", err)
	}
	if err := cfg.Validate(); err != nil {
		return RunnerConfig{}, err
	}
	return cfg, nil
}

func loadFile(path string) (RunnerConfig, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return RunnerConfig{}, fmt.Errorf("failed to read config %s: %w", path, err)
	}
	cfg, err := Parse(data)
	if err != nil {
		return RunnerConfig{}, fmt.Errorf("config %s: %w", path, err)
	}
	return cfg, nil
}

// userConfigPath returns the path to user config file, or empty if home is unavailable.
func userConfigPath(filename string) string {
	home, err := os.UserHomeDir()
	if err != nil {
		return ""
	}
	return filepath.Join(home, ".runner", "configs", filename)
}

// Validate reports every invalid field at once.
func (c RunnerConfig) Validate() error {
	var errs []error

	positive := func(name string, v float64) {
		if v <= 0 {
			errs = append(errs, fmt.Errorf("%s must be positive, got %v", name, v))
		}
	}

	positive("canvas.width", float64(c.Canvas.Width))
	positive("canvas.height", float64(c.Canvas.Height))
	if c.Canvas.GroundRatio <= 0 || c.Canvas.GroundRatio > 1 {
		errs = append(errs, fmt.Errorf("canvas.ground_ratio must be in (0, 1], got %v", c.Canvas.GroundRatio))
	}
	positive("runner.width", c.Runner.Width)
	positive("runner.height", c.Runner.Height)
	if c.Runner.JumpVelocity >= 0 {
		errs = append(errs, fmt.Errorf("runner.jump_velocity must be negative, got %v", c.Runner.JumpVelocity))
	}
	positive("runner.jump_accel", c.Runner.JumpAccel)
	positive("obstacles.max_count", float64(c.Obstacles.MaxCount))
	positive("obstacles.width", c.Obstacles.Width)
	positive("obstacles.height", c.Obstacles.Height)
	positive("obstacles.speed", c.Obstacles.Speed)
	if c.Obstacles.SpawnInterval < 0 {
		errs = append(errs, fmt.Errorf("obstacles.spawn_interval must not be negative, got %v", c.Obstacles.SpawnInterval))
	}
	if c.Stones.MaxCount < 0 {
		errs = append(errs, fmt.Errorf("stones.max_count must not be negative, got %d", c.Stones.MaxCount))
	}
	positive("stones.min_width", float64(c.Stones.MinWidth))
	positive("stones.width_range", float64(c.Stones.WidthRange))
	positive("stones.speed", c.Stones.Speed)
	positive("scoring.digits", float64(c.Scoring.Digits))
	positive("terminal.cell_width", c.Terminal.CellWidth)
	positive("terminal.cell_height", c.Terminal.CellHeight)

	colors := []struct{ name, hex string }{
		{"colors.background", c.Colors.Background},
		{"colors.foreground", c.Colors.Foreground},
	}
	for _, col := range colors {
		if _, err := colorful.Hex(col.hex); err != nil {
			errs = append(errs, fmt.Errorf("%s: invalid color %q", col.name, col.hex))
		}
	}

	return errors.Join(errs...)
}
