package anim

import (
	"image"
	"image/color"
	"image/color/palette"
	"image/draw"
)

// maxColors is the size of a GIF colour table.
const maxColors = 256

// Quantize converts img to a paletted image. Exact colours are kept when
// img holds at most 256 of them; otherwise the image is dithered onto the
// Plan 9 palette with Floyd-Steinberg error diffusion.
func Quantize(img image.Image) *image.Paletted {
	if pm, ok := exactPaletted(img); ok {
		return pm
	}
	b := img.Bounds()
	pm := image.NewPaletted(b, palette.Plan9)
	draw.FloydSteinberg.Draw(pm, b, img, b.Min)
	return pm
}

// exactPaletted builds a palette from the distinct colours of img in
// first-seen order. It gives up once a 257th colour appears.
func exactPaletted(img image.Image) (*image.Paletted, bool) {
	b := img.Bounds()
	pm := image.NewPaletted(b, nil)
	index := make(map[color.RGBA]uint8, 16)

	rgba, fast := img.(*image.RGBA)
	for y := b.Min.Y; y < b.Max.Y; y++ {
		row := pm.Pix[(y-b.Min.Y)*pm.Stride:]
		for x := b.Min.X; x < b.Max.X; x++ {
			var c color.RGBA
			if fast {
				c = rgba.RGBAAt(x, y)
			} else {
				c = color.RGBAModel.Convert(img.At(x, y)).(color.RGBA)
			}
			i, ok := index[c]
			if !ok {
				if len(pm.Palette) == maxColors {
					return nil, false
				}
				i = uint8(len(pm.Palette)) //nolint:gosec // bounded by maxColors
				index[c] = i
				pm.Palette = append(pm.Palette, c)
			}
			row[x-b.Min.X] = i
		}
	}
	if len(pm.Palette) == 0 {
		pm.Palette = color.Palette{color.Transparent}
	}
	return pm, true
}
