// Package text is the font backend of the countdown renderer.
//
// The pipeline follows a separation of concerns:
//
//   - FontSource: heavyweight font resource, parses a TTF/OTF file once
//   - Measurer: pluggable bounding box engine (default: golang.org/x/image)
//   - Box: integer ink bounds of a string relative to its baseline origin
//
// # Example usage
//
//	source, err := text.NewFontSourceFromFile("Verdana.ttf")
//	if err != nil {
//	    log.Fatal(err)
//	}
//	defer source.Close()
//
//	box, err := source.Bounds("0", 20, 0)
//	// box.Width(), box.Height()
//
//	err = source.DrawString(img, "0", 20, 0, x, y, color.Black)
//
// # Coordinates
//
// Boxes use image coordinates: X grows right, Y grows down, and the origin
// is the left end of the baseline. Angles are in degrees and rotate text
// counter-clockwise about that origin.
//
// # Pluggable Measurer Backend
//
// Two measurers are registered:
//
//   - "ximage": golang.org/x/image/font.BoundString over an opentype face
//   - "gotext": glyph extents from go-text/typesetting's HarfBuzz shaper
//
// Select one with WithMeasurer, or register another with RegisterMeasurer.
// Painting always goes through golang.org/x/image/font.Drawer.
package text
