// Package canvas allocates, loads and recycles the RGBA canvases that
// countdown frames are painted on.
package canvas

import (
	"errors"
	"fmt"
	"image"
	"image/color"
	"image/draw"
	_ "image/gif" // register GIF decoder for background images
	_ "image/jpeg"
	_ "image/png"
	"io"
	"os"
	"path/filepath"

	_ "golang.org/x/image/bmp"
	_ "golang.org/x/image/tiff"
	_ "golang.org/x/image/webp"
)

// MaxDimension is the largest width or height a canvas may have.
// GIF stores dimensions as 16-bit values.
const MaxDimension = 65535

// Errors.
var (
	// ErrInvalidSize is returned for canvases with a non-positive or
	// oversized dimension.
	ErrInvalidSize = errors.New("canvas: invalid size")

	// ErrEmptyImage is returned when a decoded background has no pixels.
	ErrEmptyImage = errors.New("canvas: empty image")
)

// New allocates a width x height canvas filled with col.
func New(width, height int, col color.Color) (*image.RGBA, error) {
	if err := checkSize(width, height); err != nil {
		return nil, err
	}
	img := image.NewRGBA(image.Rect(0, 0, width, height))
	Fill(img, col)
	return img, nil
}

// Fill paints every pixel of img with col.
func Fill(img draw.Image, col color.Color) {
	draw.Draw(img, img.Bounds(), image.NewUniform(col), image.Point{}, draw.Src)
}

// CopyFrom replaces the pixels of dst with src, aligning the top-left
// corners. src must not be smaller than dst.
func CopyFrom(dst draw.Image, src image.Image) {
	draw.Draw(dst, dst.Bounds(), src, src.Bounds().Min, draw.Src)
}

// Load decodes the image at path. PNG, JPEG, GIF, BMP, TIFF and WebP are
// recognised by content.
func Load(path string) (image.Image, error) {
	f, err := os.Open(filepath.Clean(path))
	if err != nil {
		return nil, fmt.Errorf("canvas: open file: %w", err)
	}
	defer func() { _ = f.Close() }()

	return Decode(f)
}

// Decode decodes an image from r, auto-detecting the format.
func Decode(r io.Reader) (image.Image, error) {
	img, _, err := image.Decode(r)
	if err != nil {
		return nil, fmt.Errorf("canvas: decode: %w", err)
	}
	b := img.Bounds()
	if b.Empty() {
		return nil, ErrEmptyImage
	}
	if err := checkSize(b.Dx(), b.Dy()); err != nil {
		return nil, err
	}
	return img, nil
}

func checkSize(width, height int) error {
	if width <= 0 || height <= 0 || width > MaxDimension || height > MaxDimension {
		return fmt.Errorf("%w: %dx%d", ErrInvalidSize, width, height)
	}
	return nil
}
