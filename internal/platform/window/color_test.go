package window

import (
	"image/color"
	"testing"

	"github.com/vovakirdan/canvas-runner/internal/core"
)

func TestToColor(t *testing.T) {
	tests := []struct {
		name     string
		hex      string
		alpha    float64
		expected color.NRGBA
	}{
		{"foreground", "#f5f5f5", 1, color.NRGBA{R: 245, G: 245, B: 245, A: 255}},
		{"background", "#333333", 1, color.NRGBA{R: 51, G: 51, B: 51, A: 255}},
		{"half alpha", "#ff0000", 0.5, color.NRGBA{R: 255, A: 128}},
		{"alpha clamped", "#00ff00", 3, color.NRGBA{G: 255, A: 255}},
		{"malformed", "white", 1, color.NRGBA{R: 255, B: 255, A: 255}},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			if got := toColor(core.Color(tc.hex), tc.alpha); got != tc.expected {
				t.Errorf("toColor(%q, %v) = %+v, expected %+v", tc.hex, tc.alpha, got, tc.expected)
			}
		})
	}
}

func TestTruncate(t *testing.T) {
	if got := truncate("GAME OVER", 0, 6); got != "GAME OVER" {
		t.Errorf("unbounded truncate = %q", got)
	}
	if got := truncate("GAME OVER", 30, 6); got != "GAME " {
		t.Errorf("truncate to 5 glyphs = %q", got)
	}
	if got := truncate("GAME OVER", 350, 6); got != "GAME OVER" {
		t.Errorf("wide box truncate = %q", got)
	}
}
