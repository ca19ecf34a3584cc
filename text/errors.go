package text

import "errors"

// Sentinel errors for text package.
var (
	// ErrEmptyFontData is returned when font data is empty.
	ErrEmptyFontData = errors.New("text: empty font data")

	// ErrUnknownMeasurer is returned when WithMeasurer names a measurer
	// that was never registered.
	ErrUnknownMeasurer = errors.New("text: unknown measurer")

	// ErrClosed is returned when a FontSource is used after Close.
	ErrClosed = errors.New("text: font source closed")

	// ErrInvalidSize is returned for non-positive or non-finite font sizes.
	ErrInvalidSize = errors.New("text: invalid font size")
)
