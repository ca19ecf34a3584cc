package countdown

import (
	"errors"
	"fmt"
)

// Sentinel errors. Every error returned by Render and Generate matches one
// of these with errors.Is, except context cancellation.
var (
	// ErrInvalidConfig matches every *ConfigError.
	ErrInvalidConfig = errors.New("countdown: invalid config")

	// ErrTimezone is returned when Config.Timezone cannot be loaded.
	ErrTimezone = errors.New("countdown: invalid timezone")

	// ErrFont is returned when the font cannot be loaded, measured or painted.
	ErrFont = errors.New("countdown: font error")

	// ErrBackground is returned when the background image cannot be read.
	ErrBackground = errors.New("countdown: background image error")

	// ErrCanvas is returned when a frame canvas cannot be allocated.
	ErrCanvas = errors.New("countdown: canvas error")

	// ErrEncode is returned when the animation encoder fails.
	ErrEncode = errors.New("countdown: encode error")
)

// ConfigError describes one invalid Config field.
type ConfigError struct {
	Field  string
	Reason string
	// Err is the underlying cause, if any.
	Err error
}

func (e *ConfigError) Error() string {
	return fmt.Sprintf("countdown: config %s: %s", e.Field, e.Reason)
}

// Is reports ErrInvalidConfig so callers can test the whole class.
func (e *ConfigError) Is(target error) bool {
	return target == ErrInvalidConfig
}

func (e *ConfigError) Unwrap() error {
	return e.Err
}
