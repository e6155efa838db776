package window

import (
	"image/color"
	"sync"

	colorful "github.com/lucasb-eyer/go-colorful"

	"github.com/vovakirdan/canvas-runner/internal/core"
)

var (
	paletteMu sync.Mutex
	palette   = map[core.Color]colorful.Color{}
)

// toColor converts a hex color to an NRGBA with the given opacity.
// Malformed colors fall back to magenta so they stand out.
func toColor(c core.Color, alpha float64) color.NRGBA {
	paletteMu.Lock()
	cc, ok := palette[c]
	if !ok {
		parsed, err := colorful.Hex(string(c))
		if err != nil {
			parsed = colorful.Color{R: 1, G: 0, B: 1}
		}
		palette[c] = parsed
		cc = parsed
	}
	paletteMu.Unlock()

	r, g, b := cc.RGB255()
	a := min(max(alpha, 0), 1)
	return color.NRGBA{R: r, G: g, B: b, A: uint8(a*255 + 0.5)}
}

// truncate cuts text to at most maxWidth pixels of glyphs glyphW wide.
func truncate(text string, maxWidth, glyphW float64) string {
	if maxWidth <= 0 {
		return text
	}
	runes := []rune(text)
	limit := int(maxWidth / glyphW)
	if limit >= len(runes) {
		return text
	}
	return string(runes[:max(limit, 0)])
}
