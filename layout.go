package countdown

import (
	"fmt"
	"strings"
)

// digits are the characters every digit slot may hold.
const digits = "0123456789"

// Layout holds the per-render character metrics: the fixed slot width
// shared by all digits, the centering offset of each character within its
// slot and the heights used to size and center the text block.
// A Layout is immutable once built.
type Layout struct {
	// FixedWidth is the widest ink width among '0' to '9'.
	FixedWidth int

	offsets   map[rune]float64
	separator rune

	spacing           int
	separatorSpacing  int
	paddingHorizontal int

	textHeight   int
	canvasHeight int
}

// NewLayout measures the ten digits and the separator of cfg once.
func NewLayout(f FontBackend, cfg Config) (*Layout, error) {
	sep, err := cfg.SeparatorRune()
	if err != nil {
		return nil, err
	}

	l := &Layout{
		offsets:           make(map[rune]float64, len(digits)+1),
		separator:         sep,
		spacing:           cfg.Spacing,
		separatorSpacing:  cfg.SeparatorSpacing,
		paddingHorizontal: cfg.PaddingHorizontal,
	}

	metrics := make(map[rune]GlyphMetrics, len(digits)+1)
	for _, ch := range digits + string(sep) {
		m, err := MeasureGlyph(f, ch, cfg.FontSize, cfg.FontAngle)
		if err != nil {
			return nil, err
		}
		metrics[ch] = m
	}

	for _, d := range digits {
		l.FixedWidth = max(l.FixedWidth, metrics[d].Width)
	}
	for ch, m := range metrics {
		l.offsets[ch] = float64(l.FixedWidth-m.Width) / 2
	}

	if l.textHeight, err = blockHeight(f, cfg, sep, 0); err != nil {
		return nil, err
	}
	if l.canvasHeight, err = blockHeight(f, cfg, sep, cfg.PaddingVertical); err != nil {
		return nil, err
	}

	return l, nil
}

// blockHeight measures every digit plus the separator as one string at
// FontSize + 2*padding, so vertical padding scales the font query itself.
// Rotated text is measured along its left edge, like MeasureGlyph.
func blockHeight(f FontBackend, cfg Config, sep rune, padding int) (int, error) {
	size := cfg.FontSize + 2*float64(padding)
	b, err := f.Bounds(digits+string(sep), size, 0)
	if err != nil {
		return 0, fmt.Errorf("%w: measure text block: %w", ErrFont, err)
	}
	_, h := b.Spans(cfg.FontAngle)
	return h, nil
}

// Offset returns the horizontal shift that centers ch in a digit slot.
// Characters that were not measured are not shifted.
func (l *Layout) Offset(ch rune) float64 {
	return l.offsets[ch]
}

// Separator returns the separator character.
func (l *Layout) Separator() rune {
	return l.separator
}

// TextHeight is the height of the unpadded text block.
func (l *Layout) TextHeight() int {
	return l.textHeight
}

// CanvasHeight is the height of a computed canvas, padding included.
func (l *Layout) CanvasHeight() int {
	return l.canvasHeight
}

// CanvasWidth returns the width of a computed canvas for text: one slot
// plus spacing per character, widened by the separator spacing on both
// sides of every separator, plus horizontal padding on each side.
func (l *Layout) CanvasWidth(text string) int {
	n := 0
	for range text {
		n++
	}
	slots := 2 * strings.Count(text, string(l.separator))
	return (l.FixedWidth+l.spacing)*n +
		(l.separatorSpacing-l.spacing)*slots +
		2*l.paddingHorizontal
}

// Advance returns how far the pen moves after runes[i]: one slot plus the
// separator spacing when runes[i] or the following rune is the separator,
// the normal spacing otherwise.
func (l *Layout) Advance(runes []rune, i int) int {
	if runes[i] == l.separator || (i+1 < len(runes) && runes[i+1] == l.separator) {
		return l.FixedWidth + l.separatorSpacing
	}
	return l.FixedWidth + l.spacing
}
