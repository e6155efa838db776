// Package runner implements a canvas endless runner: a box jumps over
// obstacles scrolling in from the right and scores while they stay behind it.
//
// The game is driven by a host that calls Tick once per display frame with a
// core.Renderer to draw into. Tick updates and draws in one pass, in a fixed
// order, and never blocks.
package runner

import (
	"fmt"
	"math/rand"
	"time"

	"github.com/vovakirdan/canvas-runner/internal/config"
	"github.com/vovakirdan/canvas-runner/internal/core"
)

const gameOverText = "GAME OVER"

// SessionState is the mutable state shared by the runner and the scenes.
// It is owned by the Game and only touched from Tick and OnJumpPressed.
type SessionState struct {
	Score            int
	RestartRequested bool
}

// World is everything a scene handler may act on during a frame.
type World struct {
	CanvasW   float64
	CanvasH   float64
	Ground    *Ground
	Stones    []*GroundStone
	Runner    *Runner
	Obstacles *ObstaclePool
	State     *SessionState

	// Renderer is the surface of the frame in progress; nil between ticks.
	Renderer core.Renderer

	cfg config.RunnerConfig
}

// State is a snapshot of the game for the host.
type State struct {
	Score    int
	GameOver bool
	Scene    Scene
	Frames   int
}

// Game is one play session.
type Game struct {
	world   *World
	scenes  *SceneManager
	runtime core.RuntimeConfig
	now     func() time.Time
	frames  int
}

// Option configures a Game.
type Option func(*Game)

// WithClock replaces the wall clock used for scene timing.
func WithClock(now func() time.Time) Option {
	return func(g *Game) {
		g.now = now
	}
}

// New builds a session for the given canvas, laid out the way the canvas
// game is: ground at a fixed fraction of the height, stones scattered under
// it, the runner near the left edge and the obstacle pool parked at the right.
func New(cfg config.RunnerConfig, rt core.RuntimeConfig, opts ...Option) *Game {
	g := &Game{
		runtime: rt,
		now:     time.Now,
	}
	for _, opt := range opts {
		opt(g)
	}

	rng := rand.New(rand.NewSource(rt.Seed))
	fg := core.Color(cfg.Colors.Foreground)
	w, h := rt.CanvasW, rt.CanvasH
	groundY := h * cfg.Canvas.GroundRatio

	world := &World{
		CanvasW: w,
		CanvasH: h,
		Ground:  NewGround(groundY, w, fg),
		State:   &SessionState{},
		cfg:     cfg,
	}

	world.Stones = make([]*GroundStone, cfg.Stones.MaxCount)
	for i := range world.Stones {
		x := rng.Float64() * w
		y := groundY + rng.Float64()*cfg.Stones.DepthRange + cfg.Stones.MinDepth
		width := float64(cfg.Stones.MinWidth + rng.Intn(cfg.Stones.WidthRange))
		world.Stones[i] = NewGroundStone(x, y, width, cfg.Stones.Height, cfg.Stones.Speed, w, fg)
	}

	world.Runner = NewRunner(RunnerParams{
		X:            w * cfg.Runner.XRatio,
		Y:            groundY - cfg.Runner.Height,
		Width:        cfg.Runner.Width,
		Height:       cfg.Runner.Height,
		GroundY:      groundY,
		JumpVelocity: cfg.Runner.JumpVelocity,
		JumpAccel:    cfg.Runner.JumpAccel,
		PassPoints:   cfg.Scoring.PassPoints,
		Color:        fg,
	})

	ob := cfg.Obstacles
	world.Obstacles = NewObstaclePool(ob.MaxCount, func() *Obstacle {
		return NewObstacle(groundY-ob.Height, ob.Width, ob.Height, ob.Speed, w, fg)
	})
	world.Runner.SetTargets(world.Obstacles.Items())

	g.world = world
	g.scenes = NewSceneManager(func() time.Time { return g.now() })
	g.scenes.Register(SceneSpawnObstacles, spawnObstacles)
	g.scenes.Register(SceneGameOver, gameOver)
	// Both scenes are registered above, so activation cannot fail.
	_ = g.scenes.Activate(SceneSpawnObstacles)

	return g
}

// Tick advances the game by one frame and draws it into r.
// Order: reset opacity, background, score, game over check, scene, ground,
// stones, runner, obstacles.
// A death detected during this frame switches to the game over scene at the
// start of the next one.
func (g *Game) Tick(r core.Renderer) error {
	w := g.world
	w.Renderer = r
	defer func() { w.Renderer = nil }()

	r.SetAlpha(1)
	r.ClearAndFill(core.Color(w.cfg.Colors.Background))
	r.DrawText(g.ScoreText(), w.cfg.Text.ScoreX, w.cfg.Text.ScoreY, core.Color(w.cfg.Colors.Foreground), 0)

	if !w.Runner.Alive() {
		if err := g.scenes.Activate(SceneGameOver); err != nil {
			return err
		}
	}

	if err := g.scenes.Update(w); err != nil {
		return fmt.Errorf("scene %s: %w", g.scenes.Active(), err)
	}

	w.Ground.Update(r)
	for _, s := range w.Stones {
		s.Update(r)
	}
	w.Runner.Update(w.State, r)
	w.Obstacles.Update(r)

	g.frames++
	return nil
}

// OnJumpPressed handles the jump key. While the runner is dead the same key
// asks the game over scene to restart.
func (g *Game) OnJumpPressed() {
	w := g.world
	w.Runner.Jump()
	if !w.Runner.Alive() {
		w.State.RestartRequested = true
	}
}

// ScoreText returns the score zero-padded to the configured width.
func (g *Game) ScoreText() string {
	return fmt.Sprintf("%0*d", g.world.cfg.Scoring.Digits, g.world.State.Score)
}

// State returns a snapshot for the host.
func (g *Game) State() State {
	return State{
		Score:    g.world.State.Score,
		GameOver: !g.world.Runner.Alive(),
		Scene:    g.scenes.Active(),
		Frames:   g.frames,
	}
}

// World exposes the entities of the session.
func (g *Game) World() *World {
	return g.world
}

// Scenes exposes the scene manager.
func (g *Game) Scenes() *SceneManager {
	return g.scenes
}

// Runtime returns the runtime config the game was built with.
func (g *Game) Runtime() core.RuntimeConfig {
	return g.runtime
}

// spawnObstacles revives one parked obstacle per interval and restarts its
// own timer each time it does.
func spawnObstacles(w *World, elapsed float64) Transition {
	if elapsed <= w.cfg.Obstacles.SpawnInterval {
		return Stay()
	}
	if _, ok := w.Obstacles.Reactivate(); ok {
		return GoTo(SceneSpawnObstacles)
	}
	return Stay()
}

// gameOver shows the banner and restarts the session once requested.
func gameOver(w *World, elapsed float64) Transition {
	box := w.cfg.Text.GameOverBox
	textW := min(w.Renderer.MeasureText(gameOverText), box)
	x := w.CanvasW/2 - textW/2
	y := w.CanvasH/2 - 50
	w.Renderer.DrawText(gameOverText, x, y, core.Color(w.cfg.Colors.Foreground), box)

	if !w.State.RestartRequested {
		return Stay()
	}
	w.State.RestartRequested = false
	w.Runner.Reset()
	w.State.Score = 0
	return GoTo(SceneSpawnObstacles)
}
