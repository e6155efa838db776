package runner

import (
	"errors"
	"testing"
	"time"
)

func TestSceneNames(t *testing.T) {
	for _, s := range []Scene{SceneSpawnObstacles, SceneGameOver} {
		parsed, err := ParseScene(s.String())
		if err != nil || parsed != s {
			t.Errorf("ParseScene(%q) = %v, %v", s.String(), parsed, err)
		}
	}

	_, err := ParseScene("normal_object")
	if !errors.Is(err, ErrUnknownScene) {
		t.Errorf("ParseScene(unknown) error = %v, expected ErrUnknownScene", err)
	}
}

func TestSceneManagerActivateUnknown(t *testing.T) {
	m := NewSceneManager(nil)
	if err := m.Activate(SceneGameOver); !errors.Is(err, ErrUnknownScene) {
		t.Errorf("Activate(unregistered) error = %v, expected ErrUnknownScene", err)
	}
	if err := m.Update(&World{}); !errors.Is(err, ErrUnknownScene) {
		t.Errorf("Update() with nothing active error = %v, expected ErrUnknownScene", err)
	}
	if err := m.ActivateByName("gameover"); !errors.Is(err, ErrUnknownScene) {
		t.Errorf("ActivateByName(typo) error = %v, expected ErrUnknownScene", err)
	}
}

func TestSceneManagerFrameCounterAndElapsed(t *testing.T) {
	clock := newFakeClock()
	m := NewSceneManager(clock.Now)

	var seen []float64
	m.Register(SceneGameOver, func(_ *World, elapsed float64) Transition {
		seen = append(seen, elapsed)
		return Stay()
	})

	// Re-registering replaces the handler silently
	m.Register(SceneGameOver, func(_ *World, elapsed float64) Transition {
		seen = append(seen, elapsed*10)
		return Stay()
	})

	if err := m.ActivateByName("game_over"); err != nil {
		t.Fatalf("ActivateByName() failed: %v", err)
	}
	if m.Frame() != -1 {
		t.Errorf("Frame() after activation = %d, expected -1", m.Frame())
	}

	clock.Advance(500 * time.Millisecond)
	_ = m.Update(nil)
	clock.Advance(500 * time.Millisecond)
	_ = m.Update(nil)

	if m.Frame() != 1 {
		t.Errorf("Frame() after two updates = %d, expected 1", m.Frame())
	}
	if len(seen) != 2 || seen[0] != 5 || seen[1] != 10 {
		t.Errorf("handler saw %v, expected [5 10] from the replacement handler", seen)
	}

	// Activating the active scene again re-arms it
	if err := m.Activate(SceneGameOver); err != nil {
		t.Fatal(err)
	}
	if m.Frame() != -1 || !m.ActivatedAt().Equal(clock.Now()) {
		t.Errorf("re-activation should reset frame and timestamp, frame=%d", m.Frame())
	}
}

func TestTransitionAppliesOnNextUpdate(t *testing.T) {
	clock := newFakeClock()
	m := NewSceneManager(clock.Now)

	var calls []Scene
	m.Register(SceneSpawnObstacles, func(_ *World, _ float64) Transition {
		calls = append(calls, SceneSpawnObstacles)
		return GoTo(SceneGameOver)
	})
	m.Register(SceneGameOver, func(_ *World, _ float64) Transition {
		calls = append(calls, SceneGameOver)
		return Stay()
	})

	_ = m.Activate(SceneSpawnObstacles)
	_ = m.Update(nil)

	if len(calls) != 1 || m.Active() != SceneGameOver {
		t.Fatalf("calls=%v active=%s, expected one spawn call and game_over active", calls, m.Active())
	}
	if m.Frame() != 0 {
		t.Errorf("Frame() = %d, expected 0 after activating within Update", m.Frame())
	}

	_ = m.Update(nil)
	if len(calls) != 2 || calls[1] != SceneGameOver {
		t.Errorf("calls = %v, expected game_over to run on the next update", calls)
	}
}

func TestSpawnSceneRevivesOnePerIntervalAndRearms(t *testing.T) {
	clock := newFakeClock()
	g := newTestGame(clock)
	w := g.World()
	w.Renderer = newDrawList()
	m := g.Scenes()
	start := m.ActivatedAt()

	clock.Advance(500 * time.Millisecond)
	_ = m.Update(w)
	if n := w.Obstacles.AliveCount(); n != 0 {
		t.Fatalf("spawned %d obstacles before the interval elapsed", n)
	}

	clock.Advance(600 * time.Millisecond)
	_ = m.Update(w)
	if n := w.Obstacles.AliveCount(); n != 1 {
		t.Fatalf("expected one obstacle after 1.1s, got %d", n)
	}
	if !w.Obstacles.Items()[0].Alive() {
		t.Error("the first parked slot should be revived first")
	}
	rearmed := m.ActivatedAt()
	if !rearmed.After(start) || !rearmed.Equal(clock.Now()) {
		t.Errorf("spawn should restart its own timer, activatedAt=%v", rearmed)
	}

	// Exactly one interval is not enough: elapsed must exceed it
	clock.Advance(time.Second)
	_ = m.Update(w)
	if n := w.Obstacles.AliveCount(); n != 1 {
		t.Fatalf("expected still one obstacle at exactly 1.0s, got %d", n)
	}

	clock.Advance(10 * time.Millisecond)
	_ = m.Update(w)
	if n := w.Obstacles.AliveCount(); n != 2 {
		t.Fatalf("expected two obstacles, got %d", n)
	}

	// Pool exhausted: nothing revived, timer left alone
	full := m.ActivatedAt()
	clock.Advance(5 * time.Second)
	_ = m.Update(w)
	if !m.ActivatedAt().Equal(full) {
		t.Error("timer should not re-arm when no slot was revived")
	}
	if m.Active() != SceneSpawnObstacles {
		t.Errorf("active = %s, expected spawn_obstacles", m.Active())
	}
}

func TestGameOverSceneRestart(t *testing.T) {
	clock := newFakeClock()
	g := newTestGame(clock)
	w := g.World()
	dl := newDrawList()
	w.Renderer = dl
	m := g.Scenes()

	w.Runner.Die()
	w.State.Score = 120
	_ = m.Activate(SceneGameOver)

	// Without a request the banner just stays up
	_ = m.Update(w)
	if m.Active() != SceneGameOver || w.State.Score != 120 {
		t.Fatalf("game over without restart changed state: scene=%s score=%d", m.Active(), w.State.Score)
	}
	if ops := dl.Ops(); len(ops) != 1 || ops[0].Text != "GAME OVER" {
		t.Fatalf("expected the banner to be drawn, got %+v", ops)
	}

	w.State.RestartRequested = true
	_ = m.Update(w)

	if w.State.Score != 0 {
		t.Errorf("score = %d, expected 0", w.State.Score)
	}
	if w.Runner.Life != 1 || w.Runner.Position.Y != w.Runner.BaselineY {
		t.Errorf("runner not reset: %+v", w.Runner)
	}
	if m.Active() != SceneSpawnObstacles {
		t.Errorf("active = %s, expected spawn_obstacles", m.Active())
	}
	if w.State.RestartRequested {
		t.Error("restart flag should be cleared")
	}
}
