package countdown

import (
	"image"
	"io"

	"github.com/gogpu/countdown/anim"
)

// Loop tells the decoder whether to replay the animation.
type Loop = anim.Loop

// Loop flags.
const (
	LoopForever = anim.LoopForever
	PlayOnce    = anim.PlayOnce
)

// Encoder multiplexes frames into one animation. frames and delays always
// have the same, non-zero length.
type Encoder interface {
	Encode(w io.Writer, frames []*image.Paletted, delays []int, loop Loop) error
}

// EncoderFunc adapts a function to Encoder.
type EncoderFunc func(w io.Writer, frames []*image.Paletted, delays []int, loop Loop) error

// Encode implements Encoder.
func (f EncoderFunc) Encode(w io.Writer, frames []*image.Paletted, delays []int, loop Loop) error {
	return f(w, frames, delays, loop)
}

func encodeGIF(w io.Writer, frames []*image.Paletted, delays []int, loop Loop) error {
	return anim.Encode(w, frames, delays, loop)
}
