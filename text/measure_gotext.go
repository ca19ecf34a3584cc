package text

import (
	"bytes"
	"fmt"

	"github.com/go-text/typesetting/di"
	"github.com/go-text/typesetting/font"
	"github.com/go-text/typesetting/language"
	"github.com/go-text/typesetting/shaping"
	"golang.org/x/image/math/fixed"
)

// goTextMeasurer derives bounds from the glyph extents reported by
// go-text/typesetting's HarfBuzz shaper. Unlike ximage it applies kerning
// and contextual substitutions before measuring.
type goTextMeasurer struct {
	font   *font.Font
	shaper shaping.HarfbuzzShaper
}

func newGoTextMeasurer(src *FontSource) (Measurer, error) {
	face, err := font.ParseTTF(bytes.NewReader(src.data))
	if err != nil {
		return nil, fmt.Errorf("text: gotext failed to parse font: %w", err)
	}
	return &goTextMeasurer{font: face.Font}, nil
}

// Bounds implements Measurer.
func (m *goTextMeasurer) Bounds(s string, size float64) (Box, error) {
	runes := []rune(s)
	if len(runes) == 0 {
		return Box{}, nil
	}

	input := shaping.Input{
		Text:      runes,
		RunStart:  0,
		RunEnd:    len(runes),
		Direction: di.DirectionLTR,
		Face:      font.NewFace(m.font),
		Size:      fixed.Int26_6(size * 64),
		Script:    detectScript(runes),
		Language:  language.NewLanguage("en"),
	}
	out := m.shaper.Shape(input)

	// Glyph extents are Y-up with Height negative below YBearing.
	var (
		pen    fixed.Int26_6
		bounds fixed.Rectangle26_6
		inked  bool
	)
	for _, g := range out.Glyphs {
		if g.Width != 0 && g.Height != 0 {
			x0 := pen + g.XOffset + g.XBearing
			y0 := -(g.YOffset + g.YBearing)
			r := fixed.Rectangle26_6{
				Min: fixed.Point26_6{X: x0, Y: y0},
				Max: fixed.Point26_6{X: x0 + g.Width, Y: y0 - g.Height},
			}
			if inked {
				bounds = bounds.Union(r)
			} else {
				bounds, inked = r, true
			}
		}
		pen += g.Advance
	}
	if !inked {
		return Box{}, nil
	}
	return boxFromFixed(bounds), nil
}

// detectScript returns the script of the first non-space rune.
func detectScript(runes []rune) language.Script {
	for _, r := range runes {
		if r == ' ' || r == '\t' {
			continue
		}
		return language.LookupScript(r)
	}
	return language.Latin
}
