// Command countdownd serves countdown clock GIFs over HTTP.
//
// Every request renders the clock for the current second. The deadline,
// timezone, separator, day width and builtin font can be overridden with
// the deadline, tz, sep, days and font query parameters.
package main

import (
	"context"
	"errors"
	"log/slog"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"
	_ "time/tzdata"

	"github.com/alecthomas/kong"

	"github.com/gogpu/countdown/internal/clockflags"
	"github.com/gogpu/countdown/internal/server"
)

type cli struct {
	clockflags.Flags `embed:""`

	Listen     string        `help:"Address to listen on." default:":8080"`
	MaxFrames  int           `help:"Upper bound on frames per response." default:"3600"`
	CacheLimit int           `help:"Fonts and backgrounds kept loaded." default:"16"`
	Shutdown   time.Duration `help:"Grace period for in-flight requests." default:"10s"`
}

func main() {
	var c cli
	kctx := kong.Parse(&c,
		kong.Name("countdownd"),
		kong.Description("Serve countdown clock GIFs over HTTP."),
		kong.UsageOnError())

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	kctx.FatalIfErrorf(c.run(ctx))
}

func (c *cli) newServer(log *slog.Logger) (*server.Server, error) {
	cfg, err := c.Config()
	if err != nil {
		return nil, err
	}
	// Fail at startup rather than on the first request.
	font, err := clockflags.LoadFont(c.Font, c.Measurer)
	if err != nil {
		return nil, err
	}
	_ = font.Close()

	return server.New(cfg,
		server.WithFont(c.Font, c.Measurer),
		server.WithMaxFrames(c.MaxFrames),
		server.WithCacheLimit(c.CacheLimit),
		server.WithLogger(log)), nil
}

func (c *cli) run(ctx context.Context) error {
	log := clockflags.SetupLogger(c.LogLevel)
	s, err := c.newServer(log)
	if err != nil {
		return err
	}

	srv := &http.Server{
		Addr:              c.Listen,
		Handler:           s.Handler(),
		ReadHeaderTimeout: 5 * time.Second,
	}

	errc := make(chan error, 1)
	go func() {
		log.Info("countdown: listening", "addr", c.Listen)
		errc <- srv.ListenAndServe()
	}()

	select {
	case err := <-errc:
		return err
	case <-ctx.Done():
	}

	shutdownCtx, cancel := context.WithTimeout(context.Background(), c.Shutdown)
	defer cancel()
	if err := srv.Shutdown(shutdownCtx); err != nil && !errors.Is(err, http.ErrServerClosed) {
		return err
	}
	return nil
}
