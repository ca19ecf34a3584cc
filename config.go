package countdown

import (
	"errors"
	"fmt"
	"image/color"
	"math"
	"time"
	"unicode"
	"unicode/utf8"

	"golang.org/x/text/unicode/norm"
)

// RGB is a red, green, blue triple.
type RGB [3]uint8

// Color returns c as an opaque color.RGBA.
func (c RGB) Color() color.RGBA {
	return color.RGBA{R: c[0], G: c[1], B: c[2], A: 0xff}
}

// Config describes one countdown clock. It is read-only for the renderer.
//
// When BackgroundImageFilePath is set the image is the canvas of every
// frame and BackgroundColor is ignored; otherwise the canvas is sized to
// fit the text and filled with BackgroundColor.
type Config struct {
	// AmountOfSeconds caps the animation at AmountOfSeconds+1 frames.
	AmountOfSeconds int

	// Deadline is the instant the clock counts down to.
	Deadline time.Time

	// Timezone is an IANA zone name such as "Europe/London".
	// Empty means UTC.
	Timezone string

	// Separator is the single character placed between fields.
	Separator string

	// SeparatorSpacing is the gap on either side of a separator.
	SeparatorSpacing int

	// DaysLen is the zero-padded width of the day field; 0 omits it.
	// At most MaxDaysLen.
	DaysLen int

	// Spacing is the gap between neighbouring digits.
	Spacing int

	FontFilePath string
	FontSize     float64
	// FontAngle rotates every glyph counter-clockwise, in degrees.
	FontAngle float64

	PaddingHorizontal int
	PaddingVertical   int

	FontColor RGB

	// BackgroundImageFilePath, when set, replaces the computed canvas.
	BackgroundImageFilePath string

	// BackgroundColor fills the computed canvas.
	BackgroundColor RGB
}

// MaxDaysLen is the widest day field Validate accepts. A time.Duration
// spans fewer than a million days, so wider fields are only zeros.
const MaxDaysLen = 9

// DefaultConfig returns a one-minute clock with a two digit day field.
// FontFilePath and Deadline are left for the caller.
func DefaultConfig() Config {
	return Config{
		AmountOfSeconds:   60,
		Timezone:          "Europe/London",
		Separator:         "|",
		SeparatorSpacing:  8,
		DaysLen:           2,
		Spacing:           2,
		FontSize:          20,
		PaddingHorizontal: 25,
		PaddingVertical:   25,
		FontColor:         RGB{120, 0, 0},
		BackgroundColor:   RGB{200, 255, 255},
	}
}

// Validate reports every invalid field, joined into one error.
// Each problem is a *ConfigError.
func (c Config) Validate() error {
	var errs []error
	add := func(field, format string, args ...any) {
		errs = append(errs, &ConfigError{Field: field, Reason: fmt.Sprintf(format, args...)})
	}

	if c.AmountOfSeconds < 0 {
		add("AmountOfSeconds", "must not be negative, got %d", c.AmountOfSeconds)
	}
	if c.Deadline.IsZero() {
		add("Deadline", "must be set")
	}
	if _, err := c.Location(); err != nil {
		errs = append(errs, err)
	}
	if _, err := c.SeparatorRune(); err != nil {
		errs = append(errs, err)
	}
	if c.DaysLen < 0 || c.DaysLen > MaxDaysLen {
		add("DaysLen", "must be between 0 and %d, got %d", MaxDaysLen, c.DaysLen)
	}
	if c.FontSize <= 0 || math.IsNaN(c.FontSize) || math.IsInf(c.FontSize, 0) {
		add("FontSize", "must be positive, got %v", c.FontSize)
	}
	if math.IsNaN(c.FontAngle) || math.IsInf(c.FontAngle, 0) {
		add("FontAngle", "must be finite, got %v", c.FontAngle)
	}
	if c.PaddingHorizontal < 0 {
		add("PaddingHorizontal", "must not be negative, got %d", c.PaddingHorizontal)
	}
	if c.PaddingVertical < 0 {
		add("PaddingVertical", "must not be negative, got %d", c.PaddingVertical)
	}

	return errors.Join(errs...)
}

// Location resolves Timezone.
func (c Config) Location() (*time.Location, error) {
	loc, err := time.LoadLocation(c.Timezone)
	if err != nil {
		return nil, &ConfigError{
			Field:  "Timezone",
			Reason: fmt.Sprintf("unknown zone %q", c.Timezone),
			Err:    errors.Join(ErrTimezone, err),
		}
	}
	return loc, nil
}

// SeparatorRune returns Separator as a single rune. The separator is NFC
// normalised first, so a letter followed by a combining mark counts as one
// character. Digits are rejected because they would collide with the
// digit slots.
func (c Config) SeparatorRune() (rune, error) {
	s := norm.NFC.String(c.Separator)
	if utf8.RuneCountInString(s) != 1 {
		return 0, &ConfigError{
			Field:  "Separator",
			Reason: fmt.Sprintf("must be exactly one character, got %q", c.Separator),
		}
	}
	r, _ := utf8.DecodeRuneInString(s)
	if r == utf8.RuneError || unicode.IsDigit(r) {
		return 0, &ConfigError{
			Field:  "Separator",
			Reason: fmt.Sprintf("%q cannot separate digits", c.Separator),
		}
	}
	return r, nil
}

// fields returns the number of separator-delimited fields.
func (c Config) fields() int {
	if c.DaysLen > 0 {
		return 4
	}
	return 3
}
