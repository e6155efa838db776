package core

// Renderer is the 2D drawing surface the simulation draws into every frame.
// Coordinates are canvas pixels with the origin in the top-left corner.
type Renderer interface {
	CanvasWidth() float64
	CanvasHeight() float64

	// SetAlpha sets the opacity applied to subsequent draws (0..1).
	SetAlpha(a float64)
	// ClearAndFill paints the whole canvas with c.
	ClearAndFill(c Color)
	FillRect(x, y, w, h float64, c Color)
	// StrokeLine draws a polyline through points.
	StrokeLine(points []Vec2, c Color, width float64)
	// DrawText draws text with its left edge at x and its baseline at y.
	// A maxWidth of zero means unbounded.
	DrawText(text string, x, y float64, c Color, maxWidth float64)
	// MeasureText returns the width text would occupy when drawn.
	MeasureText(text string) float64
}
