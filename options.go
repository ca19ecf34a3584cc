package countdown

import (
	"image"
	"time"

	"github.com/gogpu/countdown/internal/canvas"
	"github.com/gogpu/countdown/text"
)

// DefaultFrameDelay is the display time of each frame in hundredths of a
// second.
const DefaultFrameDelay = 100

// Option configures a render.
//
// Example:
//
//	gif, err := countdown.Render(ctx, cfg,
//	    countdown.WithNow(func() time.Time { return start }),
//	    countdown.WithMaxFrames(120),
//	)
type Option func(*options)

type options struct {
	now        func() time.Time
	frameDelay int
	maxFrames  int
	measurer   string
	font       FontBackend
	background image.Image
	encoder    Encoder
	pool       *CanvasPool
}

func defaultOptions() options {
	return options{
		now:        time.Now,
		frameDelay: DefaultFrameDelay,
		measurer:   text.DefaultMeasurer,
		encoder:    EncoderFunc(encodeGIF),
	}
}

// WithNow replaces the wall clock used for the first frame.
func WithNow(now func() time.Time) Option {
	return func(o *options) {
		if now != nil {
			o.now = now
		}
	}
}

// WithFrameDelay sets the delay of every frame in hundredths of a second.
func WithFrameDelay(delay int) Option {
	return func(o *options) {
		o.frameDelay = delay
	}
}

// WithMaxFrames bounds the number of frames below Config.AmountOfSeconds+1.
// Values below 1 leave the bound at AmountOfSeconds+1.
func WithMaxFrames(n int) Option {
	return func(o *options) {
		o.maxFrames = n
	}
}

// WithMeasurer selects the text measurer used when the font is loaded from
// Config.FontFilePath. See text.Measurers.
func WithMeasurer(name string) Option {
	return func(o *options) {
		o.measurer = name
	}
}

// WithFontBackend supplies an already loaded font instead of reading
// Config.FontFilePath. The caller keeps ownership and closes it.
func WithFontBackend(f FontBackend) Option {
	return func(o *options) {
		o.font = f
	}
}

// WithBackground supplies an already decoded background image instead of
// reading Config.BackgroundImageFilePath.
func WithBackground(img image.Image) Option {
	return func(o *options) {
		o.background = img
	}
}

// WithEncoder replaces the GIF encoder.
func WithEncoder(e Encoder) Option {
	return func(o *options) {
		if e != nil {
			o.encoder = e
		}
	}
}

// CanvasPool recycles scratch canvases between frames and renders.
type CanvasPool = canvas.Pool

// NewCanvasPool returns a pool keeping at most maxPerSize canvases of each
// size. Share one pool between renders with WithCanvasPool.
func NewCanvasPool(maxPerSize int) *CanvasPool {
	return canvas.NewPool(maxPerSize)
}

// WithCanvasPool shares a scratch canvas pool between renders.
func WithCanvasPool(p *CanvasPool) Option {
	return func(o *options) {
		o.pool = p
	}
}
