// Package window runs the runner in a desktop window or a browser canvas
// (GOOS=js GOARCH=wasm) using ebiten.
package window

import (
	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/ebitenutil"
	"github.com/hajimehoshi/ebiten/v2/vector"

	"github.com/vovakirdan/canvas-runner/internal/core"
)

// Metrics of ebitenutil's debug font.
const (
	glyphWidth  = 6
	glyphHeight = 16
)

// ImageRenderer implements core.Renderer on an ebiten image.
// The debug font only draws in white, so text color is ignored.
type ImageRenderer struct {
	dst   *ebiten.Image
	alpha float64
}

// NewImageRenderer wraps dst.
func NewImageRenderer(dst *ebiten.Image) *ImageRenderer {
	return &ImageRenderer{dst: dst, alpha: 1}
}

func (r *ImageRenderer) CanvasWidth() float64 {
	return float64(r.dst.Bounds().Dx())
}

func (r *ImageRenderer) CanvasHeight() float64 {
	return float64(r.dst.Bounds().Dy())
}

func (r *ImageRenderer) SetAlpha(a float64) {
	r.alpha = a
}

func (r *ImageRenderer) ClearAndFill(c core.Color) {
	r.dst.Fill(toColor(c, 1))
}

func (r *ImageRenderer) FillRect(x, y, w, h float64, c core.Color) {
	vector.DrawFilledRect(r.dst, float32(x), float32(y), float32(w), float32(h), toColor(c, r.alpha), false)
}

func (r *ImageRenderer) StrokeLine(points []core.Vec2, c core.Color, width float64) {
	clr := toColor(c, r.alpha)
	for i := 1; i < len(points); i++ {
		a, b := points[i-1], points[i]
		vector.StrokeLine(r.dst, float32(a.X), float32(a.Y), float32(b.X), float32(b.Y), float32(width), clr, false)
	}
}

// DrawText treats y as the baseline, so the glyph box starts one line above it.
func (r *ImageRenderer) DrawText(text string, x, y float64, _ core.Color, maxWidth float64) {
	ebitenutil.DebugPrintAt(r.dst, truncate(text, maxWidth, glyphWidth), int(x), int(y)-glyphHeight)
}

func (r *ImageRenderer) MeasureText(text string) float64 {
	return float64(len([]rune(text))) * glyphWidth
}
