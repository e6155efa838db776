package core

// OpKind identifies a recorded draw operation.
type OpKind int

const (
	OpAlpha OpKind = iota
	OpClear
	OpFillRect
	OpStrokeLine
	OpText
)

// String returns a human-readable name for the operation.
func (k OpKind) String() string {
	switch k {
	case OpAlpha:
		return "Alpha"
	case OpClear:
		return "Clear"
	case OpFillRect:
		return "FillRect"
	case OpStrokeLine:
		return "StrokeLine"
	case OpText:
		return "Text"
	default:
		return "Unknown"
	}
}

// DrawOp is a single recorded Renderer call.
type DrawOp struct {
	Kind     OpKind
	Rect     Rect    // FillRect bounds; X/Y also hold the text position
	Points   []Vec2  // StrokeLine
	Width    float64 // StrokeLine width
	Text     string
	MaxWidth float64
	Alpha    float64
	Color    Color
}

// DrawList is a Renderer that records draw calls for later replay.
// Hosts that separate update from draw (ebiten) tick into a DrawList and
// replay it during their draw pass; tests use it to inspect what was drawn.
type DrawList struct {
	width, height float64
	charWidth     float64
	ops           []DrawOp
}

// NewDrawList creates an empty list for a canvas of the given size.
// charWidth is the advance used by MeasureText.
func NewDrawList(width, height, charWidth float64) *DrawList {
	return &DrawList{
		width:     width,
		height:    height,
		charWidth: charWidth,
		ops:       make([]DrawOp, 0, 64),
	}
}

func (d *DrawList) CanvasWidth() float64  { return d.width }
func (d *DrawList) CanvasHeight() float64 { return d.height }

func (d *DrawList) SetAlpha(a float64) {
	d.ops = append(d.ops, DrawOp{Kind: OpAlpha, Alpha: a})
}

func (d *DrawList) ClearAndFill(c Color) {
	d.ops = append(d.ops, DrawOp{Kind: OpClear, Color: c})
}

func (d *DrawList) FillRect(x, y, w, h float64, c Color) {
	d.ops = append(d.ops, DrawOp{Kind: OpFillRect, Rect: NewRect(x, y, w, h), Color: c})
}

func (d *DrawList) StrokeLine(points []Vec2, c Color, width float64) {
	pts := make([]Vec2, len(points))
	copy(pts, points)
	d.ops = append(d.ops, DrawOp{Kind: OpStrokeLine, Points: pts, Color: c, Width: width})
}

func (d *DrawList) DrawText(text string, x, y float64, c Color, maxWidth float64) {
	d.ops = append(d.ops, DrawOp{Kind: OpText, Text: text, Rect: Rect{X: x, Y: y}, Color: c, MaxWidth: maxWidth})
}

func (d *DrawList) MeasureText(text string) float64 {
	return float64(len([]rune(text))) * d.charWidth
}

// Ops returns the recorded operations in call order.
func (d *DrawList) Ops() []DrawOp {
	return d.ops
}

// Reset drops all recorded operations, keeping the allocation.
func (d *DrawList) Reset() {
	d.ops = d.ops[:0]
}

// Replay issues every recorded operation against dst in order.
func (d *DrawList) Replay(dst Renderer) {
	for _, op := range d.ops {
		switch op.Kind {
		case OpAlpha:
			dst.SetAlpha(op.Alpha)
		case OpClear:
			dst.ClearAndFill(op.Color)
		case OpFillRect:
			dst.FillRect(op.Rect.X, op.Rect.Y, op.Rect.W, op.Rect.H, op.Color)
		case OpStrokeLine:
			dst.StrokeLine(op.Points, op.Color, op.Width)
		case OpText:
			dst.DrawText(op.Text, op.Rect.X, op.Rect.Y, op.Color, op.MaxWidth)
		}
	}
}

// Count returns how many recorded operations have the given kind.
func (d *DrawList) Count(kind OpKind) int {
	n := 0
	for _, op := range d.ops {
		if op.Kind == kind {
			n++
		}
	}
	return n
}
