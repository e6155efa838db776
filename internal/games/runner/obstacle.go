package runner

import "github.com/vovakirdan/canvas-runner/internal/core"

// Obstacle is a box scrolling in from the right that kills the runner on contact.
// Obstacles are pooled: a dead one is parked until the spawn scene revives it.
type Obstacle struct {
	Position core.Vec2
	Width    float64
	Height   float64
	Life     int // 1 while on screen, 0 while parked
	Speed    float64
	Color    core.Color
	canvasW  float64
}

// NewObstacle creates a parked obstacle at the right edge of the canvas.
func NewObstacle(y, width, height, speed, canvasW float64, c core.Color) *Obstacle {
	return &Obstacle{
		Position: core.NewVec2(canvasW, y),
		Width:    width,
		Height:   height,
		Speed:    speed,
		Color:    c,
		canvasW:  canvasW,
	}
}

// Set brings the obstacle back to life at the right edge of the canvas.
// Its y and size never change.
func (o *Obstacle) Set() {
	o.Life = 1
	o.Position.X = o.canvasW
}

// Alive reports whether the obstacle is on screen.
func (o *Obstacle) Alive() bool {
	return o.Life > 0
}

// Rect returns the obstacle's bounding box.
func (o *Obstacle) Rect() core.Rect {
	return core.NewRect(o.Position.X, o.Position.Y, o.Width, o.Height)
}

// Update scrolls the obstacle left and parks it once it has fully left the canvas.
func (o *Obstacle) Update(r core.Renderer) {
	if !o.Alive() {
		return
	}
	o.Position.X -= o.Speed
	if o.Position.X+o.Width < 0 {
		o.Life = 0
		return
	}
	r.FillRect(o.Position.X, o.Position.Y, o.Width, o.Height, o.Color)
}

// ObstaclePool is the fixed set of obstacles for a session.
// Slots are never added or removed, only revived and parked.
type ObstaclePool struct {
	items []*Obstacle
}

// NewObstaclePool allocates count parked obstacles using newFn.
func NewObstaclePool(count int, newFn func() *Obstacle) *ObstaclePool {
	p := &ObstaclePool{items: make([]*Obstacle, count)}
	for i := range p.items {
		p.items[i] = newFn()
	}
	return p
}

// Reactivate revives the first parked obstacle.
// Returns false when every slot is already on screen.
func (p *ObstaclePool) Reactivate() (*Obstacle, bool) {
	for _, o := range p.items {
		if !o.Alive() {
			o.Set()
			return o, true
		}
	}
	return nil, false
}

// Items returns every slot, alive or parked, in pool order.
func (p *ObstaclePool) Items() []*Obstacle {
	return p.items
}

// Len returns the fixed pool size.
func (p *ObstaclePool) Len() int {
	return len(p.items)
}

// AliveCount returns how many obstacles are on screen.
func (p *ObstaclePool) AliveCount() int {
	n := 0
	for _, o := range p.items {
		if o.Alive() {
			n++
		}
	}
	return n
}

// Update advances every obstacle in pool order.
func (p *ObstaclePool) Update(r core.Renderer) {
	for _, o := range p.items {
		o.Update(r)
	}
}
