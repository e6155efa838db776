package runner

import "github.com/vovakirdan/canvas-runner/internal/core"

// Runner is the player character.
// It is either grounded or jumping, and alive (Life 1) or dead (Life 0).
// The jump uses a fixed per-frame integrator, so the arc is tied to the frame
// rate rather than to wall-clock time.
type Runner struct {
	Position   core.Vec2
	Width      float64
	Height     float64
	Life       int
	GroundY    float64 // Height of the ground line
	BaselineY  float64 // Resting y; also where a landing snaps to
	Jumping    bool
	Velocity   float64
	Accel      float64
	PassPoints int
	Color      core.Color

	takeoff float64
	targets []*Obstacle
}

// RunnerParams holds the construction parameters of a Runner.
type RunnerParams struct {
	X, Y          float64
	Width, Height float64
	GroundY       float64
	JumpVelocity  float64
	JumpAccel     float64
	PassPoints    int
	Color         core.Color
}

// NewRunner creates a live, grounded runner.
func NewRunner(p RunnerParams) *Runner {
	return &Runner{
		Position:   core.NewVec2(p.X, p.Y),
		Width:      p.Width,
		Height:     p.Height,
		Life:       1,
		GroundY:    p.GroundY,
		BaselineY:  p.Y,
		Velocity:   p.JumpVelocity,
		Accel:      p.JumpAccel,
		PassPoints: p.PassPoints,
		Color:      p.Color,
		takeoff:    p.JumpVelocity,
	}
}

// SetTargets sets the obstacles the runner collides with.
// The runner does not own them.
func (r *Runner) SetTargets(targets []*Obstacle) {
	r.targets = targets
}

// Alive reports whether the runner has life left.
func (r *Runner) Alive() bool {
	return r.Life > 0
}

// Rect returns the runner's bounding box.
func (r *Runner) Rect() core.Rect {
	return core.NewRect(r.Position.X, r.Position.Y, r.Width, r.Height)
}

// Jump starts a jump. It does nothing while dead or already in the air,
// so a second press mid-jump never resets the velocity.
func (r *Runner) Jump() {
	if !r.Alive() || r.Jumping {
		return
	}
	r.Jumping = true
}

// Die sets the runner's life to zero.
func (r *Runner) Die() {
	r.Life = 0
}

// Reset revives the runner on the baseline with a fresh jump.
func (r *Runner) Reset() {
	r.Life = 1
	r.Position.Y = r.BaselineY
	r.Jumping = false
	r.Velocity = r.takeoff
}

// Update advances the jump, scores passed obstacles, checks collisions and
// draws the runner. A dead runner is frozen but still drawn.
func (r *Runner) Update(state *SessionState, dst core.Renderer) {
	if r.Alive() {
		r.step()
		r.checkTargets(state)
	}
	dst.FillRect(r.Position.X, r.Position.Y, r.Width, r.Height, r.Color)
}

func (r *Runner) step() {
	if !r.Jumping {
		return
	}
	r.Position.Y += r.Velocity
	r.Velocity += r.Accel
	if r.Position.Y >= r.GroundY-r.Height {
		r.Position.Y = r.BaselineY
		r.Velocity = r.takeoff
		r.Jumping = false
	}
}

// checkTargets awards points for every live obstacle already behind the runner
// and kills the runner on overlap.
// A passed obstacle keeps scoring on every frame for as long as it stays alive.
func (r *Runner) checkTargets(state *SessionState) {
	self := r.Rect()
	for _, t := range r.targets {
		if !t.Alive() {
			continue
		}
		if t.Position.X+t.Width < r.Position.X {
			state.Score += r.PassPoints
		}
		if self.Overlaps(t.Rect()) {
			r.Die()
		}
	}
}
