package anim

import (
	"bytes"
	"errors"
	"image"
	"image/color"
	"image/gif"
	"testing"
)

func solid(w, h int, c color.RGBA) *image.RGBA {
	img := image.NewRGBA(image.Rect(0, 0, w, h))
	for i := 0; i < len(img.Pix); i += 4 {
		img.Pix[i], img.Pix[i+1], img.Pix[i+2], img.Pix[i+3] = c.R, c.G, c.B, c.A
	}
	return img
}

func TestQuantizeExact(t *testing.T) {
	bg := color.RGBA{200, 255, 255, 255}
	fg := color.RGBA{120, 0, 0, 255}
	img := solid(10, 10, bg)
	img.SetRGBA(3, 4, fg)

	pm := Quantize(img)
	if len(pm.Palette) != 2 {
		t.Fatalf("palette has %d colours, want 2", len(pm.Palette))
	}
	if got := pm.At(3, 4); got != fg {
		t.Errorf("pixel (3,4) = %v, want %v", got, fg)
	}
	if got := pm.At(0, 0); got != bg {
		t.Errorf("pixel (0,0) = %v, want %v", got, bg)
	}
}

func TestQuantizeManyColoursDithers(t *testing.T) {
	img := image.NewRGBA(image.Rect(0, 0, 32, 32))
	for y := 0; y < 32; y++ {
		for x := 0; x < 32; x++ {
			img.SetRGBA(x, y, color.RGBA{uint8(x * 8), uint8(y * 8), uint8(x ^ y), 255})
		}
	}

	pm := Quantize(img)
	if len(pm.Palette) != 256 {
		t.Errorf("palette has %d colours, want the 256-colour Plan 9 palette", len(pm.Palette))
	}
	if pm.Bounds() != img.Bounds() {
		t.Errorf("Bounds() = %v, want %v", pm.Bounds(), img.Bounds())
	}
}

func TestQuantizeNonRGBA(t *testing.T) {
	img := image.NewGray(image.Rect(0, 0, 4, 4))
	img.SetGray(1, 1, color.Gray{Y: 255})

	pm := Quantize(img)
	if len(pm.Palette) != 2 {
		t.Errorf("palette has %d colours, want 2", len(pm.Palette))
	}
}

func TestEncodeLoopFlag(t *testing.T) {
	frames := []*image.Paletted{
		Quantize(solid(6, 4, color.RGBA{0, 0, 0, 255})),
		Quantize(solid(6, 4, color.RGBA{255, 255, 255, 255})),
	}
	delays := []int{100, 100}

	tests := []struct {
		loop      Loop
		wantCount int
	}{
		{LoopForever, 0},
		{PlayOnce, -1},
	}
	for _, tt := range tests {
		t.Run(tt.loop.String(), func(t *testing.T) {
			var buf bytes.Buffer
			if err := Encode(&buf, frames, delays, tt.loop); err != nil {
				t.Fatalf("Encode: %v", err)
			}

			g, err := gif.DecodeAll(&buf)
			if err != nil {
				t.Fatalf("DecodeAll: %v", err)
			}
			if len(g.Image) != 2 {
				t.Errorf("decoded %d frames, want 2", len(g.Image))
			}
			if g.LoopCount != tt.wantCount {
				t.Errorf("LoopCount = %d, want %d", g.LoopCount, tt.wantCount)
			}
			for i, d := range g.Delay {
				if d != 100 {
					t.Errorf("Delay[%d] = %d, want 100", i, d)
				}
			}
		})
	}
}

func TestEncodeScreenFitsLargestFrame(t *testing.T) {
	frames := []*image.Paletted{
		Quantize(solid(12, 5, color.RGBA{0, 0, 0, 255})),
		Quantize(solid(9, 5, color.RGBA{0, 0, 0, 255})),
	}
	var buf bytes.Buffer
	if err := Encode(&buf, frames, []int{10, 10}, LoopForever); err != nil {
		t.Fatalf("Encode: %v", err)
	}
	cfg, err := gif.DecodeConfig(&buf)
	if err != nil {
		t.Fatal(err)
	}
	if cfg.Width != 12 || cfg.Height != 5 {
		t.Errorf("screen %dx%d, want 12x5", cfg.Width, cfg.Height)
	}
}

func TestEncodeErrors(t *testing.T) {
	frame := Quantize(solid(2, 2, color.RGBA{0, 0, 0, 255}))

	tests := []struct {
		name   string
		frames []*image.Paletted
		delays []int
		loop   Loop
		want   error
	}{
		{"no frames", nil, nil, LoopForever, ErrNoFrames},
		{"length mismatch", []*image.Paletted{frame}, []int{1, 2}, LoopForever, ErrLengthMismatch},
		{"bad loop", []*image.Paletted{frame}, []int{1}, Loop(7), ErrInvalidLoop},
		{"negative delay", []*image.Paletted{frame}, []int{-1}, PlayOnce, ErrInvalidDelay},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			var buf bytes.Buffer
			err := Encode(&buf, tt.frames, tt.delays, tt.loop)
			if !errors.Is(err, tt.want) {
				t.Errorf("Encode error = %v, want %v", err, tt.want)
			}
			if buf.Len() != 0 {
				t.Error("Encode wrote output despite failing validation")
			}
		})
	}
}
