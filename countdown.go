package countdown

import (
	"bytes"
	"context"
	"fmt"
	"image"
	"time"

	"github.com/gogpu/countdown/internal/canvas"
	"github.com/gogpu/countdown/text"
)

// Frame is one rendered second of the countdown.
type Frame struct {
	Image *image.Paletted
	// Delay is the display time in hundredths of a second.
	Delay int
	// Text is the string painted on the frame.
	Text string
	// At is the simulated instant the frame shows.
	At time.Time
	// Expired is set on the all-zero frame at or past the deadline.
	Expired bool
}

// Sequence is the finished animation: frames in display order plus the
// loop flag. Loop is PlayOnce when the last frame is expired and
// LoopForever when the frame budget ran out first.
type Sequence struct {
	Frames []Frame
	Loop   Loop
}

// Images returns the frame rasters in order.
func (s *Sequence) Images() []*image.Paletted {
	images := make([]*image.Paletted, len(s.Frames))
	for i, f := range s.Frames {
		images[i] = f.Image
	}
	return images
}

// Delays returns the frame delays in order.
func (s *Sequence) Delays() []int {
	delays := make([]int, len(s.Frames))
	for i, f := range s.Frames {
		delays[i] = f.Delay
	}
	return delays
}

// Render generates the countdown for cfg and encodes it. Nothing is
// encoded unless every frame rendered.
func Render(ctx context.Context, cfg Config, opts ...Option) ([]byte, error) {
	o := defaultOptions()
	for _, opt := range opts {
		opt(&o)
	}

	seq, err := generate(ctx, cfg, o)
	if err != nil {
		return nil, err
	}

	var buf bytes.Buffer
	if err := o.encoder.Encode(&buf, seq.Images(), seq.Delays(), seq.Loop); err != nil {
		return nil, fmt.Errorf("%w: %w", ErrEncode, err)
	}

	Logger().Info("countdown: rendered",
		"frames", len(seq.Frames),
		"loop", seq.Loop.String(),
		"bytes", buf.Len())
	return buf.Bytes(), nil
}

// Generate renders the frames for cfg without encoding them.
//
// Frame i shows the time left at now+i seconds, where now is the current
// second in cfg's timezone. The loop stops after the first expired frame
// or after AmountOfSeconds+1 frames, whichever comes first.
func Generate(ctx context.Context, cfg Config, opts ...Option) (*Sequence, error) {
	o := defaultOptions()
	for _, opt := range opts {
		opt(&o)
	}
	return generate(ctx, cfg, o)
}

func generate(ctx context.Context, cfg Config, o options) (*Sequence, error) {
	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	loc, err := cfg.Location()
	if err != nil {
		return nil, err
	}
	if o.frameDelay < 0 {
		return nil, &ConfigError{Field: "FrameDelay", Reason: fmt.Sprintf("must not be negative, got %d", o.frameDelay)}
	}

	font := o.font
	if font == nil {
		if cfg.FontFilePath == "" {
			return nil, &ConfigError{Field: "FontFilePath", Reason: "must be set"}
		}
		src, err := text.NewFontSourceFromFile(cfg.FontFilePath, text.WithMeasurer(o.measurer))
		if err != nil {
			return nil, fmt.Errorf("%w: %w", ErrFont, err)
		}
		defer func() { _ = src.Close() }()
		font = src
	}

	background := o.background
	if background == nil && cfg.BackgroundImageFilePath != "" {
		background, err = canvas.Load(cfg.BackgroundImageFilePath)
		if err != nil {
			return nil, fmt.Errorf("%w: %w", ErrBackground, err)
		}
	}

	layout, err := NewLayout(font, cfg)
	if err != nil {
		return nil, err
	}
	Logger().Debug("countdown: layout",
		"fixed_width", layout.FixedWidth,
		"text_height", layout.TextHeight(),
		"canvas_height", layout.CanvasHeight(),
		"background", background != nil)

	renderer := NewFrameRenderer(font, layout, cfg, background, o.pool)

	start := o.now().In(loc).Truncate(time.Second)
	deadline := cfg.Deadline.In(loc).Truncate(time.Second)

	last := cfg.AmountOfSeconds
	if o.maxFrames > 0 && o.maxFrames-1 < last {
		last = o.maxFrames - 1
	}

	capacity := expectedFrames(start, deadline)
	if last < capacity-1 {
		capacity = last + 1
	}
	seq := &Sequence{
		Frames: make([]Frame, 0, capacity),
		Loop:   LoopForever,
	}
	for i := 0; i <= last; i++ {
		if err := ctx.Err(); err != nil {
			return nil, err
		}

		now := start.Add(time.Duration(i) * time.Second)
		txt, expired := Format(deadline, now, cfg.DaysLen, string(layout.Separator()))

		img, err := renderer.Render(txt)
		if err != nil {
			return nil, err
		}
		seq.Frames = append(seq.Frames, Frame{
			Image:   img,
			Delay:   o.frameDelay,
			Text:    txt,
			At:      now,
			Expired: expired,
		})
		Logger().Debug("countdown: frame", "index", i, "text", txt, "expired", expired)

		if expired {
			seq.Loop = PlayOnce
			break
		}
	}

	if seq.Loop == LoopForever && last < cfg.AmountOfSeconds {
		Logger().Warn("countdown: frame limit reached before the deadline",
			"frames", len(seq.Frames),
			"amount_of_seconds", cfg.AmountOfSeconds)
	}
	return seq, nil
}

// maxPreallocFrames bounds the frame slice reserved up front; longer
// renders grow it with append.
const maxPreallocFrames = 4096

// expectedFrames is the number of frames up to and including the expired
// one, capped at maxPreallocFrames.
func expectedFrames(start, deadline time.Time) int {
	if !start.Before(deadline) {
		return 1
	}
	n := deadline.Sub(start) / time.Second
	if n >= maxPreallocFrames {
		return maxPreallocFrames
	}
	return int(n) + 1
}
