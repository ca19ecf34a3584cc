package countdown

import (
	"errors"
	"image"
	"image/color"
	"image/draw"
	"io"
	"unicode/utf8"

	"github.com/gogpu/countdown/text"
)

// fakeFont has fixed metrics: '1' is 4 wide, '|' is 2 wide, every other
// character is 10 wide. Every string is int(size) tall and sits on the
// baseline.
type fakeFont struct {
	draws   []fakeDraw
	failOn  rune
	measure int
}

type fakeDraw struct {
	ch   string
	x, y int
}

var errFakeFont = errors.New("fake font failure")

func glyphWidth(r rune) int {
	switch r {
	case '1':
		return 4
	case '|':
		return 2
	default:
		return 10
	}
}

func (f *fakeFont) Bounds(s string, size, angle float64) (text.Box, error) {
	f.measure++
	w := 0
	for _, r := range s {
		if r == f.failOn {
			return text.Box{}, errFakeFont
		}
		w += glyphWidth(r)
	}
	return text.Box{MinX: 0, MinY: -int(size), MaxX: w, MaxY: 0}, nil
}

func (f *fakeFont) DrawString(dst draw.Image, s string, size, angle float64, x, y int, col color.Color) error {
	r, _ := utf8.DecodeRuneInString(s)
	if r == f.failOn {
		return errFakeFont
	}
	f.draws = append(f.draws, fakeDraw{ch: s, x: x, y: y})
	if image.Pt(x, y).In(dst.Bounds()) {
		dst.Set(x, y, col)
	}
	return nil
}

// recordingEncoder captures what reaches the encoder.
type recordingEncoder struct {
	calls  int
	frames int
	delays []int
	loop   Loop
}

func (e *recordingEncoder) Encode(w io.Writer, frames []*image.Paletted, delays []int, loop Loop) error {
	e.calls++
	e.frames = len(frames)
	e.delays = delays
	e.loop = loop
	_, err := w.Write([]byte("GIF89a"))
	return err
}
