package text

import (
	"image"
	"image/color"
	"image/draw"
	"math"

	xdraw "golang.org/x/image/draw"
	"golang.org/x/image/font"
	"golang.org/x/image/math/f64"
	"golang.org/x/image/math/fixed"
)

// DrawString paints str onto dst with its baseline origin at (x, y),
// rotated counter-clockwise by angle degrees about that origin.
func (s *FontSource) DrawString(dst draw.Image, str string, size, angle float64, x, y int, col color.Color) error {
	s.copyCheck()
	if str == "" {
		return nil
	}
	if err := checkSize(size); err != nil {
		return err
	}

	s.mu.Lock()
	defer s.mu.Unlock()

	face, err := s.faceLocked(size)
	if err != nil {
		return err
	}

	if angle == 0 {
		d := &font.Drawer{
			Dst:  dst,
			Src:  image.NewUniform(col),
			Face: face,
			Dot:  fixed.P(x, y),
		}
		d.DrawString(str)
		return nil
	}

	drawRotated(dst, face, str, angle, x, y, col)
	return nil
}

// drawRotated rasterises str on a transparent layer whose coordinates are
// relative to the baseline origin, then maps the layer onto dst through a
// rotation about (x, y).
func drawRotated(dst draw.Image, face font.Face, str string, angle float64, x, y int, col color.Color) {
	r, _ := font.BoundString(face, str)
	box := boxFromFixed(r)
	if box.Empty() {
		return
	}

	layer := image.NewRGBA(image.Rect(box.MinX, box.MinY, box.MaxX, box.MaxY))
	d := &font.Drawer{
		Dst:  layer,
		Src:  image.NewUniform(col),
		Face: face,
	}
	d.DrawString(str)

	sin, cos := math.Sincos(angle * math.Pi / 180)
	m := f64.Aff3{
		cos, sin, float64(x),
		-sin, cos, float64(y),
	}
	xdraw.BiLinear.Transform(dst, m, layer, layer.Bounds(), xdraw.Over, nil)
}
