package runner

import (
	"time"

	"github.com/vovakirdan/canvas-runner/internal/config"
	"github.com/vovakirdan/canvas-runner/internal/core"
)

// fakeClock is a manually advanced clock for scene timing.
type fakeClock struct {
	t time.Time
}

func newFakeClock() *fakeClock {
	return &fakeClock{t: time.Date(2024, 1, 1, 0, 0, 0, 0, time.UTC)}
}

func (c *fakeClock) Now() time.Time { return c.t }

func (c *fakeClock) Advance(d time.Duration) { c.t = c.t.Add(d) }

func testRuntime() core.RuntimeConfig {
	return core.RuntimeConfig{CanvasW: 800, CanvasH: 600, TickRate: 60, Seed: 42}
}

func newTestGame(clock *fakeClock) *Game {
	return New(config.DefaultRunnerConfig(), testRuntime(), WithClock(clock.Now))
}

func newDrawList() *core.DrawList {
	return core.NewDrawList(800, 600, 6)
}
