package countdown

import (
	"fmt"
	"image/color"
	"image/draw"

	"github.com/gogpu/countdown/text"
)

// FontBackend measures and paints strings. *text.FontSource implements it;
// tests substitute backends with fixed metrics.
type FontBackend interface {
	// Bounds returns the ink box of s at size points, rotated by angle
	// degrees counter-clockwise.
	Bounds(s string, size, angle float64) (text.Box, error)

	// DrawString paints s with its baseline origin at (x, y).
	DrawString(dst draw.Image, s string, size, angle float64, x, y int, col color.Color) error
}

// GlyphMetrics is the measured ink size of one character.
type GlyphMetrics struct {
	Width  int
	Height int
}

// MeasureGlyph returns the metrics of ch. For a rotated glyph the width is
// the x run of its rotated baseline edge and the height the y run of its
// rotated left edge (see text.Box.Spans), not the axis-aligned extent.
// Backend failures are wrapped in ErrFont; there is no fallback font.
func MeasureGlyph(f FontBackend, ch rune, size, angle float64) (GlyphMetrics, error) {
	b, err := f.Bounds(string(ch), size, 0)
	if err != nil {
		return GlyphMetrics{}, fmt.Errorf("%w: measure %q: %w", ErrFont, ch, err)
	}
	w, h := b.Spans(angle)
	return GlyphMetrics{Width: w, Height: h}, nil
}
