// Command countdown renders a countdown clock GIF to a file or stdout.
//
// Usage:
//
//	countdown --deadline=2030-01-01T00:00:00 --timezone=UTC -o clock.gif
package main

import (
	"context"
	"fmt"
	"io"
	"os"
	"os/signal"
	_ "time/tzdata"

	"github.com/alecthomas/kong"

	"github.com/gogpu/countdown"
	"github.com/gogpu/countdown/internal/clockflags"
)

type cli struct {
	clockflags.Flags `embed:""`

	Output    string `short:"o" help:"Output file, - for stdout." default:"-"`
	MaxFrames int    `help:"Upper bound on the number of frames, 0 for no bound." default:"0"`
	Delay     int    `help:"Frame delay in hundredths of a second." default:"100"`
}

func main() {
	var c cli
	kctx := kong.Parse(&c,
		kong.Name("countdown"),
		kong.Description("Render a countdown clock as an animated GIF."),
		kong.UsageOnError())

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt)
	defer stop()

	kctx.FatalIfErrorf(c.run(ctx, os.Stdout))
}

func (c *cli) run(ctx context.Context, stdout io.Writer) error {
	log := clockflags.SetupLogger(c.LogLevel)

	cfg, err := c.Config()
	if err != nil {
		return err
	}
	font, err := clockflags.LoadFont(c.Font, c.Measurer)
	if err != nil {
		return err
	}
	defer func() { _ = font.Close() }()

	data, err := countdown.Render(ctx, cfg,
		countdown.WithFontBackend(font),
		countdown.WithFrameDelay(c.Delay),
		countdown.WithMaxFrames(c.MaxFrames))
	if err != nil {
		return err
	}

	if c.Output == "-" {
		_, err = stdout.Write(data)
		return err
	}
	if err := os.WriteFile(c.Output, data, 0o644); err != nil {
		return fmt.Errorf("countdown: write output: %w", err)
	}
	log.Info("countdown: wrote", "path", c.Output, "bytes", len(data))
	return nil
}
