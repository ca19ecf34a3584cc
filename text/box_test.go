package text

import (
	"testing"

	"golang.org/x/image/math/fixed"
)

func TestBoxWidthHeight(t *testing.T) {
	b := Box{MinX: 1, MinY: -12, MaxX: 9, MaxY: 2}
	if b.Width() != 8 {
		t.Errorf("Width() = %d, want 8", b.Width())
	}
	if b.Height() != 14 {
		t.Errorf("Height() = %d, want 14", b.Height())
	}
	if b.Empty() {
		t.Error("Empty() = true for a box with area")
	}
	if !(Box{}).Empty() {
		t.Error("zero Box should be empty")
	}
}

func TestBoxUnion(t *testing.T) {
	tests := []struct {
		name string
		a, b Box
		want Box
	}{
		{"disjoint", Box{0, -10, 5, 0}, Box{8, -12, 12, 2}, Box{0, -12, 12, 2}},
		{"contained", Box{0, -10, 10, 0}, Box{2, -5, 4, -1}, Box{0, -10, 10, 0}},
		{"empty left", Box{}, Box{1, -2, 3, 0}, Box{1, -2, 3, 0}},
		{"empty right", Box{1, -2, 3, 0}, Box{}, Box{1, -2, 3, 0}},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := tt.a.Union(tt.b); got != tt.want {
				t.Errorf("Union = %+v, want %+v", got, tt.want)
			}
		})
	}
}

func TestBoxRotate(t *testing.T) {
	b := Box{MinX: 0, MinY: -10, MaxX: 20, MaxY: 0}

	tests := []struct {
		angle float64
		want  Box
	}{
		{0, b},
		{90, Box{MinX: -10, MinY: -20, MaxX: 0, MaxY: 0}},
		{180, Box{MinX: -20, MinY: 0, MaxX: 0, MaxY: 10}},
		{-90, Box{MinX: 0, MinY: 0, MaxX: 10, MaxY: 20}},
	}
	for _, tt := range tests {
		if got := b.Rotate(tt.angle); got != tt.want {
			t.Errorf("Rotate(%v) = %+v, want %+v", tt.angle, got, tt.want)
		}
	}
}

func TestBoxRotatePreservesAreaBound(t *testing.T) {
	b := Box{MinX: 0, MinY: -10, MaxX: 20, MaxY: 0}
	r := b.Rotate(45)
	// The rotated extents always contain at least the original area.
	if r.Width()*r.Height() < b.Width()*b.Height() {
		t.Errorf("Rotate(45) = %+v shrank below the source area", r)
	}
}

func TestBoxSpans(t *testing.T) {
	b := Box{MinX: 1, MinY: -20, MaxX: 11, MaxY: 0}
	tests := []struct {
		angle float64
		wantW int
		wantH int
	}{
		{0, 10, 20},
		{45, 7, 14},
		{60, 5, 10},
		{90, 0, 0},
		{180, -10, -20},
		{-60, 5, 10},
	}
	for _, tt := range tests {
		w, h := b.Spans(tt.angle)
		if w != tt.wantW || h != tt.wantH {
			t.Errorf("Spans(%v) = %d, %d; want %d, %d", tt.angle, w, h, tt.wantW, tt.wantH)
		}
	}

	// The axis-aligned extent of a rotated box is wider than its baseline run.
	if r, w := b.Rotate(45), 7; r.Width() <= w {
		t.Errorf("Rotate(45).Width() = %d, want more than %d", r.Width(), w)
	}
}

func TestBoxFromFixed(t *testing.T) {
	r := fixed.Rectangle26_6{
		Min: fixed.Point26_6{X: fixed.I(1) + 32, Y: -fixed.I(10) - 16},
		Max: fixed.Point26_6{X: fixed.I(9) + 1, Y: fixed.I(2)},
	}
	want := Box{MinX: 1, MinY: -11, MaxX: 10, MaxY: 2}
	if got := boxFromFixed(r); got != want {
		t.Errorf("boxFromFixed = %+v, want %+v", got, want)
	}
}
