package runner

import (
	"testing"

	"github.com/vovakirdan/canvas-runner/internal/core"
)

// newTestRunner places a 50x100 runner on a ground line at y=480.
func newTestRunner() *Runner {
	return NewRunner(RunnerParams{
		X:            80,
		Y:            380,
		Width:        50,
		Height:       100,
		GroundY:      480,
		JumpVelocity: -25,
		JumpAccel:    1,
		PassPoints:   10,
		Color:        "#fff",
	})
}

func TestRunnerJumpArcReturnsToBaseline(t *testing.T) {
	r := newTestRunner()
	state := &SessionState{}
	dl := newDrawList()

	r.Jump()
	if !r.Jumping {
		t.Fatal("Jump() should start a jump")
	}

	for i := 0; i < 25; i++ {
		r.Update(state, dl)
	}
	if r.Velocity != 0 {
		t.Errorf("velocity after 25 steps = %f, expected 0", r.Velocity)
	}
	if !r.Jumping {
		t.Error("runner should still be airborne at the apex")
	}
	// Apex: 25+24+...+1 = 325 pixels above the baseline
	if r.Position.Y != 380-325 {
		t.Errorf("apex y = %f, expected %f", r.Position.Y, 380.0-325)
	}

	for i := 25; i < 50; i++ {
		r.Update(state, dl)
	}
	if !r.Jumping {
		t.Fatal("runner should still be airborne after 50 steps")
	}

	r.Update(state, dl)
	if r.Jumping {
		t.Error("runner should land on step 51")
	}
	if r.Position.Y != r.BaselineY {
		t.Errorf("landed y = %f, expected baseline %f", r.Position.Y, r.BaselineY)
	}
	if r.Velocity != -25 {
		t.Errorf("velocity after landing = %f, expected -25", r.Velocity)
	}
}

func TestRunnerJumpIgnoredWhileAirborne(t *testing.T) {
	r := newTestRunner()
	state := &SessionState{}
	dl := newDrawList()

	r.Jump()
	for i := 0; i < 10; i++ {
		r.Update(state, dl)
	}
	v := r.Velocity
	r.Jump()
	if r.Velocity != v || !r.Jumping {
		t.Errorf("second Jump() changed velocity from %f to %f", v, r.Velocity)
	}
}

func TestRunnerDeadIsFrozenButDrawn(t *testing.T) {
	r := newTestRunner()
	r.Jump()
	r.Update(&SessionState{}, newDrawList())
	r.Die()

	passed := NewObstacle(430, 50, 50, 5, 800, "#fff")
	passed.Set()
	passed.Position.X = 0
	r.SetTargets([]*Obstacle{passed})

	state := &SessionState{}
	dl := newDrawList()
	pos := r.Position
	r.Jump()
	for i := 0; i < 5; i++ {
		r.Update(state, dl)
	}

	if r.Position != pos {
		t.Errorf("dead runner moved from %+v to %+v", pos, r.Position)
	}
	if state.Score != 0 {
		t.Errorf("dead runner scored %d", state.Score)
	}
	if n := dl.Count(core.OpFillRect); n != 5 {
		t.Errorf("dead runner should still draw every frame, got %d draws", n)
	}
}

func TestRunnerScoresPassedObstacleEveryFrame(t *testing.T) {
	r := newTestRunner()
	passed := NewObstacle(430, 50, 50, 5, 800, "#fff")
	passed.Set()
	passed.Position.X = 0 // right edge 50 < runner x 80
	r.SetTargets([]*Obstacle{passed})

	state := &SessionState{}
	dl := newDrawList()
	for i := 0; i < 5; i++ {
		r.Update(state, dl)
	}

	if state.Score != 50 {
		t.Errorf("score = %d, expected 50", state.Score)
	}
	if !r.Alive() {
		t.Error("a passed obstacle must not kill the runner")
	}
}

func TestRunnerIgnoresParkedTargets(t *testing.T) {
	r := newTestRunner()
	parked := NewObstacle(430, 50, 50, 5, 800, "#fff")
	parked.Position.X = 0
	under := NewObstacle(430, 50, 50, 5, 800, "#fff")
	under.Position.X = 90 // overlapping, but parked
	r.SetTargets([]*Obstacle{parked, under})

	state := &SessionState{}
	r.Update(state, newDrawList())

	if state.Score != 0 || !r.Alive() {
		t.Errorf("parked targets must be ignored, score=%d life=%d", state.Score, r.Life)
	}
}

func TestRunnerDiesOnOverlap(t *testing.T) {
	tests := []struct {
		name     string
		x        float64
		jumpFor  int
		wantLife int
	}{
		{"head on", 100, 0, 0},
		{"just touching right edge", 130, 0, 1},
		{"overlapping by half a pixel", 129.5, 0, 0},
		{"cleared by jumping", 100, 20, 1},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			r := newTestRunner()
			state := &SessionState{}
			dl := newDrawList()
			if tc.jumpFor > 0 {
				r.Jump()
				for i := 0; i < tc.jumpFor; i++ {
					r.Update(state, dl)
				}
			}

			o := NewObstacle(430, 50, 50, 5, 800, "#fff")
			o.Set()
			o.Position.X = tc.x
			r.SetTargets([]*Obstacle{o})
			r.Update(state, dl)

			if r.Life != tc.wantLife {
				t.Errorf("life = %d, expected %d", r.Life, tc.wantLife)
			}
		})
	}
}

func TestRunnerReset(t *testing.T) {
	r := newTestRunner()
	r.Jump()
	for i := 0; i < 7; i++ {
		r.Update(&SessionState{}, newDrawList())
	}
	r.Die()

	r.Reset()
	if !r.Alive() || r.Jumping || r.Position.Y != r.BaselineY || r.Velocity != -25 {
		t.Errorf("Reset() left runner at %+v", r)
	}
}
