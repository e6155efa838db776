package core

import (
	"math"
	"testing"
)

func TestVec2SetPartial(t *testing.T) {
	zero := 0.0
	seven := 7.0

	tests := []struct {
		name     string
		x, y     *float64
		expected Vec2
	}{
		{"both nil leaves point untouched", nil, nil, Vec2{3, 4}},
		{"only x", &seven, nil, Vec2{7, 4}},
		{"only y", nil, &seven, Vec2{3, 7}},
		{"zero is a value, not absence", &zero, &zero, Vec2{0, 0}},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			v := NewVec2(3, 4)
			v.Set(tc.x, tc.y)
			if v != tc.expected {
				t.Errorf("Set() = %+v, expected %+v", v, tc.expected)
			}
		})
	}
}

func TestVec2DistanceTo(t *testing.T) {
	a := NewVec2(0, 0)
	b := NewVec2(3, 4)

	if d := a.DistanceTo(b); d != 5 {
		t.Errorf("DistanceTo() = %f, expected 5", d)
	}
	if d := b.DistanceTo(a); d != 5 {
		t.Errorf("DistanceTo() reversed = %f, expected 5", d)
	}
	if d := b.DistanceTo(b); d != 0 {
		t.Errorf("DistanceTo(self) = %f, expected 0", d)
	}
	if a != NewVec2(0, 0) {
		t.Error("DistanceTo should not modify the receiver")
	}
}

func TestRectOverlaps(t *testing.T) {
	tests := []struct {
		name     string
		a, b     Rect
		expected bool
	}{
		{
			name:     "overlapping rects",
			a:        NewRect(0, 0, 10, 10),
			b:        NewRect(5, 5, 10, 10),
			expected: true,
		},
		{
			name:     "non-overlapping horizontal",
			a:        NewRect(0, 0, 10, 10),
			b:        NewRect(15, 0, 10, 10),
			expected: false,
		},
		{
			name:     "non-overlapping vertical",
			a:        NewRect(0, 0, 10, 10),
			b:        NewRect(0, 15, 10, 10),
			expected: false,
		},
		{
			name:     "touching edge does not overlap",
			a:        NewRect(0, 0, 10, 10),
			b:        NewRect(10, 0, 10, 10),
			expected: false,
		},
		{
			name:     "contained rect",
			a:        NewRect(0, 0, 20, 20),
			b:        NewRect(5, 5, 5, 5),
			expected: true,
		},
		{
			name:     "runner on ground vs obstacle under it",
			a:        NewRect(80, 380, 50, 100),
			b:        NewRect(100, 430, 50, 50),
			expected: true,
		},
		{
			name:     "runner mid-jump clears obstacle",
			a:        NewRect(80, 200, 50, 100),
			b:        NewRect(100, 430, 50, 50),
			expected: false,
		},
		{
			name:     "fractional overlap",
			a:        NewRect(0, 0, 10, 10),
			b:        NewRect(9.5, 9.5, 10, 10),
			expected: true,
		},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			if got := tc.a.Overlaps(tc.b); got != tc.expected {
				t.Errorf("Overlaps() = %v, expected %v", got, tc.expected)
			}
			if got := tc.b.Overlaps(tc.a); got != tc.expected {
				t.Errorf("Overlaps() (reversed) = %v, expected %v", got, tc.expected)
			}
		})
	}
}

func TestRectEdges(t *testing.T) {
	r := NewRect(5, 10, 20, 15)

	if r.Right() != 25 {
		t.Errorf("Right() = %f, expected 25", r.Right())
	}
	if r.Bottom() != 25 {
		t.Errorf("Bottom() = %f, expected 25", r.Bottom())
	}
	if c := r.Center(); c != NewVec2(15, 17.5) {
		t.Errorf("Center() = %+v, expected (15, 17.5)", c)
	}
	if !r.Contains(5, 10) || r.Contains(25, 25) {
		t.Error("Contains() should include the top-left corner and exclude the bottom-right")
	}
}

func TestClamp(t *testing.T) {
	tests := []struct {
		val, min, max, expected int
	}{
		{5, 0, 10, 5},   // within range
		{-5, 0, 10, 0},  // below min
		{15, 0, 10, 10}, // above max
		{0, 0, 10, 0},   // at min
		{10, 0, 10, 10}, // at max
	}

	for _, tc := range tests {
		result := Clamp(tc.val, tc.min, tc.max)
		if result != tc.expected {
			t.Errorf("Clamp(%d, %d, %d) = %d, expected %d", tc.val, tc.min, tc.max, result, tc.expected)
		}
	}
}

func TestDrawListRecordAndReplay(t *testing.T) {
	src := NewDrawList(800, 600, 6)
	src.SetAlpha(1)
	src.ClearAndFill(ColorBackground)
	pts := []Vec2{{0, 480}, {800, 480}}
	src.StrokeLine(pts, ColorForeground, 2)
	src.FillRect(1, 2, 3, 4, ColorForeground)
	src.DrawText("00010", 100, 75, ColorForeground, 0)

	// Recorded points must not alias the caller's slice
	pts[0].X = 99

	if n := len(src.Ops()); n != 5 {
		t.Fatalf("recorded %d ops, expected 5", n)
	}
	if src.Ops()[2].Points[0].X != 0 {
		t.Error("StrokeLine should copy its points")
	}
	if w := src.MeasureText("GAME OVER"); math.Abs(w-54) > 1e-9 {
		t.Errorf("MeasureText() = %f, expected 54", w)
	}

	dst := NewDrawList(800, 600, 6)
	src.Replay(dst)

	for i, op := range src.Ops() {
		got := dst.Ops()[i]
		if got.Kind != op.Kind || got.Color != op.Color || got.Rect != op.Rect || got.Text != op.Text {
			t.Errorf("op %d replayed as %+v, expected %+v", i, got, op)
		}
	}

	src.Reset()
	if len(src.Ops()) != 0 {
		t.Error("Reset() should drop recorded ops")
	}
	if dst.Count(OpFillRect) != 1 || dst.Count(OpText) != 1 {
		t.Errorf("Count() mismatch: rects=%d texts=%d", dst.Count(OpFillRect), dst.Count(OpText))
	}
}
