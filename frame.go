package countdown

import (
	"fmt"
	"image"
	"image/color"
	"math"

	"github.com/gogpu/countdown/anim"
	"github.com/gogpu/countdown/internal/canvas"
)

// FrameRenderer paints countdown text onto a canvas and returns it as a
// paletted frame. It does not modify the Config or the Layout, so one
// renderer serves every frame of a render.
type FrameRenderer struct {
	font       FontBackend
	layout     *Layout
	background image.Image
	pool       *CanvasPool

	size      float64
	angle     float64
	paddingH  int
	fontColor color.RGBA
	fill      color.RGBA
}

// NewFrameRenderer returns a renderer for cfg. A non-nil background is
// copied into every frame and fixes the frame size; otherwise the canvas is
// sized by layout and filled with cfg.BackgroundColor. pool may be nil.
func NewFrameRenderer(f FontBackend, layout *Layout, cfg Config, background image.Image, pool *CanvasPool) *FrameRenderer {
	if pool == nil {
		pool = canvas.NewPool(1)
	}
	return &FrameRenderer{
		font:       f,
		layout:     layout,
		background: background,
		pool:       pool,
		size:       cfg.FontSize,
		angle:      cfg.FontAngle,
		paddingH:   cfg.PaddingHorizontal,
		fontColor:  cfg.FontColor.Color(),
		fill:       cfg.BackgroundColor.Color(),
	}
}

// Render paints text on a fresh canvas and quantises it.
func (r *FrameRenderer) Render(text string) (*image.Paletted, error) {
	dst, err := r.canvasFor(text)
	if err != nil {
		return nil, err
	}
	defer r.pool.Put(dst)

	if err := r.Paint(dst, text); err != nil {
		return nil, err
	}
	return anim.Quantize(dst), nil
}

// canvasFor returns a scratch canvas holding the background image or the
// fill colour.
func (r *FrameRenderer) canvasFor(text string) (*image.RGBA, error) {
	if r.background != nil {
		b := r.background.Bounds()
		dst, err := r.pool.Get(b.Dx(), b.Dy())
		if err != nil {
			return nil, fmt.Errorf("%w: %w", ErrCanvas, err)
		}
		canvas.CopyFrom(dst, r.background)
		return dst, nil
	}

	dst, err := r.pool.Get(r.layout.CanvasWidth(text), r.layout.CanvasHeight())
	if err != nil {
		return nil, fmt.Errorf("%w: %w", ErrCanvas, err)
	}
	canvas.Fill(dst, r.fill)
	return dst, nil
}

// Paint draws text onto dst one character at a time. Each character sits
// in a slot of Layout.FixedWidth, shifted right by its centering offset;
// the pen then advances by the slot plus the spacing that applies around
// separators. The block is centered vertically on dst.
func (r *FrameRenderer) Paint(dst *image.RGBA, text string) error {
	h := dst.Bounds().Dy()
	y := int(math.Round(float64(h)/2+float64(r.layout.TextHeight())/2)) - 1

	x := float64(r.paddingH)
	runes := []rune(text)
	for i, ch := range runes {
		gx := int(x + r.layout.Offset(ch))
		if err := r.font.DrawString(dst, string(ch), r.size, r.angle, gx, y, r.fontColor); err != nil {
			return fmt.Errorf("%w: draw %q: %w", ErrFont, ch, err)
		}
		x += float64(r.layout.Advance(runes, i))
	}
	return nil
}
