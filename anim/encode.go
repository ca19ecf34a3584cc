package anim

import (
	"errors"
	"fmt"
	"image"
	"image/gif"
	"io"
)

// Loop tells the decoder whether to replay the animation.
type Loop int

const (
	// LoopForever replays the animation indefinitely.
	LoopForever Loop = 0
	// PlayOnce stops on the last frame.
	PlayOnce Loop = 1
)

func (l Loop) String() string {
	switch l {
	case LoopForever:
		return "loop-forever"
	case PlayOnce:
		return "play-once"
	default:
		return fmt.Sprintf("Loop(%d)", int(l))
	}
}

// Errors.
var (
	// ErrNoFrames is returned when Encode is called without frames.
	ErrNoFrames = errors.New("anim: no frames")

	// ErrLengthMismatch is returned when frames and delays differ in length.
	ErrLengthMismatch = errors.New("anim: frames and delays differ in length")

	// ErrInvalidLoop is returned for a Loop other than LoopForever or PlayOnce.
	ErrInvalidLoop = errors.New("anim: invalid loop flag")

	// ErrInvalidDelay is returned for negative delays.
	ErrInvalidDelay = errors.New("anim: negative frame delay")
)

// Encode writes frames as one animated GIF. delays[i] is the display time
// of frames[i] in hundredths of a second. The logical screen is the
// smallest rectangle at the origin that holds every frame.
func Encode(w io.Writer, frames []*image.Paletted, delays []int, loop Loop) error {
	if len(frames) == 0 {
		return ErrNoFrames
	}
	if len(frames) != len(delays) {
		return fmt.Errorf("%w: %d frames, %d delays", ErrLengthMismatch, len(frames), len(delays))
	}
	if loop != LoopForever && loop != PlayOnce {
		return fmt.Errorf("%w: %d", ErrInvalidLoop, int(loop))
	}

	var screen image.Point
	for i, f := range frames {
		if f == nil {
			return fmt.Errorf("anim: frame %d is nil", i)
		}
		if delays[i] < 0 {
			return fmt.Errorf("%w: frame %d has delay %d", ErrInvalidDelay, i, delays[i])
		}
		screen.X = max(screen.X, f.Bounds().Max.X)
		screen.Y = max(screen.Y, f.Bounds().Max.Y)
	}

	g := &gif.GIF{
		Image:     frames,
		Delay:     delays,
		LoopCount: loopCount(loop),
		Config: image.Config{
			Width:  screen.X,
			Height: screen.Y,
		},
	}
	if err := gif.EncodeAll(w, g); err != nil {
		return fmt.Errorf("anim: encode gif: %w", err)
	}
	return nil
}

// loopCount maps a Loop to image/gif's LoopCount, where 0 loops forever
// and -1 omits the loop extension so the animation plays once.
func loopCount(l Loop) int {
	if l == PlayOnce {
		return -1
	}
	return 0
}
