package text

import "golang.org/x/image/font"

// ximageMeasurer measures with font.BoundString on the source's cached
// opentype faces.
type ximageMeasurer struct {
	src *FontSource
}

func newXImageMeasurer(src *FontSource) (Measurer, error) {
	return &ximageMeasurer{src: src}, nil
}

// Bounds implements Measurer. The source lock is already held.
func (m *ximageMeasurer) Bounds(s string, size float64) (Box, error) {
	face, err := m.src.faceLocked(size)
	if err != nil {
		return Box{}, err
	}
	r, _ := font.BoundString(face, s)
	return boxFromFixed(r), nil
}
