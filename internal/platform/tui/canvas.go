package tui

import (
	"math"

	"github.com/vovakirdan/canvas-runner/internal/core"
)

// Runes used to rasterize canvas primitives.
const (
	BlockChar  = '█' // Rects at least half a cell tall
	PebbleChar = '·' // Thinner rects, e.g. ground stones
	HLineChar  = '═'
	VLineChar  = '║'
	DotChar    = '•'
)

// CellCanvas implements core.Renderer on top of a terminal cell buffer.
// Each cell covers cellW x cellH canvas pixels.
type CellCanvas struct {
	screen     *core.Screen
	cellW      float64
	cellH      float64
	alpha      float64
	background core.Color
}

// NewCellCanvas creates a canvas of cols x rows cells.
func NewCellCanvas(cols, rows int, cellW, cellH float64) *CellCanvas {
	return &CellCanvas{
		screen: core.NewScreen(cols, rows),
		cellW:  cellW,
		cellH:  cellH,
		alpha:  1,
	}
}

// Screen returns the underlying cell buffer.
func (c *CellCanvas) Screen() *core.Screen {
	return c.screen
}

// Background returns the color of the last ClearAndFill.
func (c *CellCanvas) Background() core.Color {
	return c.background
}

func (c *CellCanvas) CanvasWidth() float64 {
	return float64(c.screen.Width()) * c.cellW
}

func (c *CellCanvas) CanvasHeight() float64 {
	return float64(c.screen.Height()) * c.cellH
}

// SetAlpha stores the opacity. Cells cannot blend, so anything above zero
// draws normally and zero suppresses drawing.
func (c *CellCanvas) SetAlpha(a float64) {
	c.alpha = a
}

func (c *CellCanvas) ClearAndFill(col core.Color) {
	c.background = col
	c.screen.Clear()
}

func (c *CellCanvas) FillRect(x, y, w, h float64, col core.Color) {
	if c.alpha <= 0 || w <= 0 || h <= 0 {
		return
	}
	x0, x1 := c.span(x, w, c.cellW)
	y0, y1 := c.span(y, h, c.cellH)

	r := BlockChar
	if h < c.cellH/2 {
		r = PebbleChar
	}
	c.screen.FillArea(x0, y0, x1-x0, y1-y0, r, col)
}

// span converts a pixel interval to a half-open cell interval covering at
// least one cell.
func (c *CellCanvas) span(pos, size, cell float64) (int, int) {
	start := int(math.Floor(pos / cell))
	end := int(math.Ceil((pos + size) / cell))
	if end <= start {
		end = start + 1
	}
	return start, end
}

func (c *CellCanvas) StrokeLine(points []core.Vec2, col core.Color, _ float64) {
	if c.alpha <= 0 {
		return
	}
	for i := 1; i < len(points); i++ {
		c.segment(points[i-1], points[i], col)
	}
}

func (c *CellCanvas) segment(a, b core.Vec2, col core.Color) {
	ax, ay := c.cell(a)
	bx, by := c.cell(b)

	if ay == by {
		c.screen.DrawHLine(min(ax, bx), ay, abs(bx-ax)+1, HLineChar, col)
		return
	}

	r := DotChar
	if ax == bx {
		r = VLineChar
	}

	steps := max(abs(bx-ax), abs(by-ay))
	if steps == 0 {
		c.screen.Set(ax, ay, r, col)
		return
	}
	for i := 0; i <= steps; i++ {
		t := float64(i) / float64(steps)
		x := ax + int(math.Round(t*float64(bx-ax)))
		y := ay + int(math.Round(t*float64(by-ay)))
		c.screen.Set(x, y, r, col)
	}
}

// cell maps a canvas point to the cell containing it. Points on the right or
// bottom border map into the last column or row.
func (c *CellCanvas) cell(p core.Vec2) (int, int) {
	x := int(math.Floor(p.X / c.cellW))
	y := int(math.Floor(p.Y / c.cellH))
	return min(x, c.screen.Width()-1), min(y, c.screen.Height()-1)
}

// DrawText places text on the row containing the baseline y.
func (c *CellCanvas) DrawText(text string, x, y float64, col core.Color, maxWidth float64) {
	if c.alpha <= 0 {
		return
	}
	runes := []rune(text)
	if maxWidth > 0 {
		runes = runes[:core.Clamp(int(maxWidth/c.cellW), 0, len(runes))]
	}
	cx := int(math.Round(x / c.cellW))
	cy := int(math.Floor(y / c.cellH))
	c.screen.DrawText(cx, cy, string(runes), col)
}

func (c *CellCanvas) MeasureText(text string) float64 {
	return float64(len([]rune(text))) * c.cellW
}

func abs(v int) int {
	if v < 0 {
		return -v
	}
	return v
}
