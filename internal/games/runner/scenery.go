package runner

import "github.com/vovakirdan/canvas-runner/internal/core"

// Ground is the horizontal line the runner stands on.
// It has no state beyond its construction parameters.
type Ground struct {
	Y         float64
	Width     float64
	LineWidth float64
	Color     core.Color
}

// NewGround creates a ground line at height y spanning width pixels.
func NewGround(y, width float64, c core.Color) *Ground {
	return &Ground{Y: y, Width: width, LineWidth: 2, Color: c}
}

// Update redraws the line. The ground never moves.
func (g *Ground) Update(r core.Renderer) {
	r.StrokeLine([]core.Vec2{{X: 0, Y: g.Y}, {X: g.Width, Y: g.Y}}, g.Color, g.LineWidth)
}

// GroundStone is a small dash below the ground that scrolls left to suggest motion.
// Width and speed are fixed for the stone's lifetime; only x changes.
type GroundStone struct {
	Position core.Vec2
	Width    float64
	Height   float64
	Speed    float64
	Color    core.Color
	canvasW  float64
}

// NewGroundStone creates a stone at (x, y) that wraps at canvasW.
func NewGroundStone(x, y, width, height, speed, canvasW float64, c core.Color) *GroundStone {
	return &GroundStone{
		Position: core.NewVec2(x, y),
		Width:    width,
		Height:   height,
		Speed:    speed,
		Color:    c,
		canvasW:  canvasW,
	}
}

// Update scrolls the stone and draws it.
// Once the stone's right edge is past the left border it jumps back to the
// right edge of the canvas, keeping its width.
func (s *GroundStone) Update(r core.Renderer) {
	if s.Position.X+s.Width < 0 {
		s.Position.X = s.canvasW
	}
	s.Position.X -= s.Speed
	r.FillRect(s.Position.X, s.Position.Y, s.Width, s.Height, s.Color)
}
