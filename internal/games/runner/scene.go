package runner

import (
	"errors"
	"fmt"
	"time"
)

// ErrUnknownScene is returned when activating a scene that has no handler.
var ErrUnknownScene = errors.New("unknown scene")

// Scene identifies a phase of the game.
type Scene int

const (
	SceneSpawnObstacles Scene = iota // Normal play: revive an obstacle every interval
	SceneGameOver                    // Banner shown until a restart is requested
)

// String returns the scene's name.
func (s Scene) String() string {
	switch s {
	case SceneSpawnObstacles:
		return "spawn_obstacles"
	case SceneGameOver:
		return "game_over"
	default:
		return fmt.Sprintf("Scene(%d)", int(s))
	}
}

// ParseScene looks a scene up by name.
func ParseScene(name string) (Scene, error) {
	switch name {
	case "spawn_obstacles":
		return SceneSpawnObstacles, nil
	case "game_over":
		return SceneGameOver, nil
	default:
		return 0, fmt.Errorf("%w: %q", ErrUnknownScene, name)
	}
}

// Transition is what a scene handler asks the manager to do after it runs.
// The zero value keeps the current scene running.
type Transition struct {
	Next     Scene
	Activate bool
}

// Stay keeps the current scene and its timer.
func Stay() Transition {
	return Transition{}
}

// GoTo activates next, re-arming its timer even if it is already active.
func GoTo(next Scene) Transition {
	return Transition{Next: next, Activate: true}
}

// SceneHandler runs once per frame while its scene is active.
// elapsed is the number of seconds since the scene was activated.
type SceneHandler func(w *World, elapsed float64) Transition

// SceneManager runs exactly one active scene per frame.
type SceneManager struct {
	handlers    map[Scene]SceneHandler
	active      Scene
	hasActive   bool
	activatedAt time.Time
	frame       int
	now         func() time.Time
}

// NewSceneManager creates a manager that reads time from now.
func NewSceneManager(now func() time.Time) *SceneManager {
	if now == nil {
		now = time.Now
	}
	return &SceneManager{
		handlers: make(map[Scene]SceneHandler),
		frame:    -1,
		now:      now,
	}
}

// Register stores the handler for a scene, replacing any previous one.
func (m *SceneManager) Register(s Scene, h SceneHandler) {
	m.handlers[s] = h
}

// Activate makes s the active scene, records the activation time and resets
// the frame counter to -1 ("not yet run").
// Activation is unconditional: activating the active scene restarts its timer.
func (m *SceneManager) Activate(s Scene) error {
	if _, ok := m.handlers[s]; !ok {
		return fmt.Errorf("%w: %s", ErrUnknownScene, s)
	}
	m.active = s
	m.hasActive = true
	m.activatedAt = m.now()
	m.frame = -1
	return nil
}

// ActivateByName activates the scene with the given name.
func (m *SceneManager) ActivateByName(name string) error {
	s, err := ParseScene(name)
	if err != nil {
		return err
	}
	return m.Activate(s)
}

// Update runs the active scene with the seconds elapsed since its activation,
// applies the returned transition and then counts the frame.
// A scene activated here first runs on the next call.
func (m *SceneManager) Update(w *World) error {
	if !m.hasActive {
		return fmt.Errorf("%w: no scene active", ErrUnknownScene)
	}

	elapsed := m.now().Sub(m.activatedAt).Seconds()
	tr := m.handlers[m.active](w, elapsed)
	if tr.Activate {
		if err := m.Activate(tr.Next); err != nil {
			return err
		}
	}

	m.frame++
	return nil
}

// Active returns the active scene.
func (m *SceneManager) Active() Scene {
	return m.active
}

// ActivatedAt returns when the active scene was last activated.
func (m *SceneManager) ActivatedAt() time.Time {
	return m.activatedAt
}

// Frame returns the active scene's frame counter: -1 until its first update,
// then 0, 1, 2...
func (m *SceneManager) Frame() int {
	return m.frame
}
