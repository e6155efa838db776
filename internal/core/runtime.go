package core

// RuntimeConfig contains configuration passed to the game at initialization.
// Front ends fill it in from the window or terminal they run in.
type RuntimeConfig struct {
	CanvasW  float64 // Logical canvas width in pixels
	CanvasH  float64 // Logical canvas height in pixels
	TickRate int     // Host frames per second (default 60)
	Seed     int64   // RNG seed for stone placement
}

// DefaultConfig returns a RuntimeConfig with sensible defaults.
func DefaultConfig() RuntimeConfig {
	return RuntimeConfig{
		CanvasW:  800,
		CanvasH:  600,
		TickRate: 60,
		Seed:     0, // 0 means use current time in platform layer
	}
}
