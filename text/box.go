package text

import (
	"math"

	"golang.org/x/image/math/fixed"
)

// Box is the ink bounding box of a string in whole pixels, relative to the
// baseline origin. MinY is negative for ink above the baseline.
type Box struct {
	MinX, MinY, MaxX, MaxY int
}

// Width returns MaxX - MinX.
func (b Box) Width() int { return b.MaxX - b.MinX }

// Height returns MaxY - MinY.
func (b Box) Height() int { return b.MaxY - b.MinY }

// Empty reports whether the box has no area.
func (b Box) Empty() bool { return b.MinX >= b.MaxX || b.MinY >= b.MaxY }

// Union returns the smallest box containing both b and o.
// An empty operand is ignored.
func (b Box) Union(o Box) Box {
	if b.Empty() {
		return o
	}
	if o.Empty() {
		return b
	}
	return Box{
		MinX: min(b.MinX, o.MinX),
		MinY: min(b.MinY, o.MinY),
		MaxX: max(b.MaxX, o.MaxX),
		MaxY: max(b.MaxY, o.MaxY),
	}
}

// Rotate returns the extents of b after rotating it counter-clockwise by
// angle degrees about the baseline origin.
func (b Box) Rotate(angle float64) Box {
	if angle == 0 || b.Empty() {
		return b
	}
	sin, cos := math.Sincos(angle * math.Pi / 180)

	corners := [4][2]float64{
		{float64(b.MinX), float64(b.MinY)},
		{float64(b.MaxX), float64(b.MinY)},
		{float64(b.MaxX), float64(b.MaxY)},
		{float64(b.MinX), float64(b.MaxY)},
	}
	minX, minY := math.Inf(1), math.Inf(1)
	maxX, maxY := math.Inf(-1), math.Inf(-1)
	for _, c := range corners {
		x, y := rotatePoint(c[0], c[1], sin, cos)
		minX, maxX = math.Min(minX, x), math.Max(maxX, x)
		minY, maxY = math.Min(minY, y), math.Max(maxY, y)
	}
	return Box{
		MinX: int(math.Floor(minX + 1e-9)),
		MinY: int(math.Floor(minY + 1e-9)),
		MaxX: int(math.Ceil(maxX - 1e-9)),
		MaxY: int(math.Ceil(maxY - 1e-9)),
	}
}

// Spans rotates b counter-clockwise by angle degrees about the baseline
// origin and returns the x distance from the lower-left to the lower-right
// corner and the y distance from the upper-left to the lower-left corner.
// Both equal Width and Height at angle 0 and shrink with the cosine of the
// angle, turning negative past 90 degrees.
func (b Box) Spans(angle float64) (width, height int) {
	if angle == 0 {
		return b.Width(), b.Height()
	}
	sin, cos := math.Sincos(angle * math.Pi / 180)

	llx, lly := rotatePoint(float64(b.MinX), float64(b.MaxY), sin, cos)
	lrx, _ := rotatePoint(float64(b.MaxX), float64(b.MaxY), sin, cos)
	_, uly := rotatePoint(float64(b.MinX), float64(b.MinY), sin, cos)
	return int(math.Round(lrx - llx)), int(math.Round(lly - uly))
}

// rotatePoint rotates (x, y) counter-clockwise on screen. Y grows down, so
// the usual matrix is mirrored in its sine terms.
func rotatePoint(x, y, sin, cos float64) (float64, float64) {
	return x*cos + y*sin, -x*sin + y*cos
}

// boxFromFixed converts a 26.6 rectangle to pixel bounds, rounding outward.
func boxFromFixed(r fixed.Rectangle26_6) Box {
	return Box{
		MinX: r.Min.X.Floor(),
		MinY: r.Min.Y.Floor(),
		MaxX: r.Max.X.Ceil(),
		MaxY: r.Max.Y.Ceil(),
	}
}
