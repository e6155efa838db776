// Package config provides YAML-based configuration loading for the runner.
package config

// RunnerConfig contains all tunables of the endless runner.
type RunnerConfig struct {
	Canvas    CanvasConfig   `yaml:"canvas"`
	Runner    PlayerConfig   `yaml:"runner"`
	Obstacles ObstacleConfig `yaml:"obstacles"`
	Stones    StoneConfig    `yaml:"stones"`
	Scoring   ScoringConfig  `yaml:"scoring"`
	Colors    ColorConfig    `yaml:"colors"`
	Text      TextConfig     `yaml:"text"`
	Terminal  TerminalConfig `yaml:"terminal"`
}

// CanvasConfig defines the logical canvas used by windowed front ends.
type CanvasConfig struct {
	Width       int     `yaml:"width"`
	Height      int     `yaml:"height"`
	GroundRatio float64 `yaml:"ground_ratio"` // Ground line as a fraction of canvas height
}

// PlayerConfig defines the runner's box and jump integrator.
type PlayerConfig struct {
	XRatio       float64 `yaml:"x_ratio"` // Horizontal position as a fraction of canvas width
	Width        float64 `yaml:"width"`
	Height       float64 `yaml:"height"`
	JumpVelocity float64 `yaml:"jump_velocity"` // Pixels per frame at takeoff (negative = up)
	JumpAccel    float64 `yaml:"jump_accel"`    // Added to velocity every frame
}

// ObstacleConfig defines the obstacle pool.
type ObstacleConfig struct {
	MaxCount      int     `yaml:"max_count"`
	Width         float64 `yaml:"width"`
	Height        float64 `yaml:"height"`
	Speed         float64 `yaml:"speed"`
	SpawnInterval float64 `yaml:"spawn_interval"` // Seconds between spawns
}

// StoneConfig defines the decorative ground stones.
type StoneConfig struct {
	MaxCount   int     `yaml:"max_count"`
	MinWidth   int     `yaml:"min_width"`
	WidthRange int     `yaml:"width_range"` // Width is MinWidth + [0, WidthRange)
	Height     float64 `yaml:"height"`
	Speed      float64 `yaml:"speed"`
	MinDepth   float64 `yaml:"min_depth"`   // Offset below the ground line
	DepthRange float64 `yaml:"depth_range"` // Random extra offset below MinDepth
}

// ScoringConfig defines point values and the score display.
type ScoringConfig struct {
	PassPoints int `yaml:"pass_points"`
	Digits     int `yaml:"digits"`
}

// ColorConfig holds hex colors.
type ColorConfig struct {
	Background string `yaml:"background"`
	Foreground string `yaml:"foreground"`
}

// TextConfig positions the HUD text.
type TextConfig struct {
	ScoreX      float64 `yaml:"score_x"`
	ScoreY      float64 `yaml:"score_y"`
	GameOverBox float64 `yaml:"game_over_box"` // Max width of the game over banner
}

// TerminalConfig maps canvas pixels onto terminal cells.
type TerminalConfig struct {
	CellWidth  float64 `yaml:"cell_width"`
	CellHeight float64 `yaml:"cell_height"`
}
