// Package server serves countdown clocks over HTTP. Every request renders
// a fresh GIF for the current second, so responses are marked uncacheable.
package server

import (
	"context"
	"errors"
	"fmt"
	"image"
	"log/slog"
	"net/http"
	"net/url"
	"strconv"
	"strings"
	"time"

	"github.com/gogpu/countdown"
	"github.com/gogpu/countdown/internal/cache"
	"github.com/gogpu/countdown/internal/canvas"
	"github.com/gogpu/countdown/internal/clockflags"
	"github.com/gogpu/countdown/text"
)

// Query parameters that override the base configuration.
const (
	ParamDeadline  = "deadline"
	ParamTimezone  = "tz"
	ParamSeparator = "sep"
	ParamDays      = "days"
	ParamFont      = "font"
)

// Last-Modified is stamped with the render time; Expires points far into
// the past.
const expiresInPast = "Sat, 26 Jul 1997 05:00:00 GMT"

// Server renders a countdown per request.
type Server struct {
	base        countdown.Config
	font        string
	measurer    string
	maxFrames   int
	now         func() time.Time
	log         *slog.Logger
	fonts       *cache.Cache[string, *text.FontSource]
	backgrounds *cache.Cache[string, image.Image]
	pool        *countdown.CanvasPool
}

// Option configures a Server.
type Option func(*Server)

// WithFont selects the font served when the request names none.
// font is a file path or a clockflags builtin name.
func WithFont(font, measurer string) Option {
	return func(s *Server) {
		s.font = font
		if measurer != "" {
			s.measurer = measurer
		}
	}
}

// WithMaxFrames bounds the frames of every response.
func WithMaxFrames(n int) Option {
	return func(s *Server) {
		s.maxFrames = n
	}
}

// WithNow replaces the wall clock.
func WithNow(now func() time.Time) Option {
	return func(s *Server) {
		if now != nil {
			s.now = now
		}
	}
}

// WithLogger sets the request logger.
func WithLogger(l *slog.Logger) Option {
	return func(s *Server) {
		if l != nil {
			s.log = l
		}
	}
}

// WithCacheLimit sets how many fonts and backgrounds are kept loaded.
func WithCacheLimit(n int) Option {
	return func(s *Server) {
		s.fonts = cache.New[string, *text.FontSource](n)
		s.backgrounds = cache.New[string, image.Image](n)
	}
}

// New returns a server rendering base, adjusted per request by the query
// string.
func New(base countdown.Config, opts ...Option) *Server {
	s := &Server{
		base:      base,
		font:      clockflags.BuiltinPrefix + "goregular",
		measurer:  text.DefaultMeasurer,
		maxFrames: 3600,
		now:       time.Now,
		log:       slog.Default(),
		pool:      countdown.NewCanvasPool(4),
	}
	WithCacheLimit(16)(s)
	for _, opt := range opts {
		opt(s)
	}
	return s
}

// Handler returns the HTTP routes: the clock at / and /countdown.gif.
func (s *Server) Handler() http.Handler {
	mux := http.NewServeMux()
	mux.Handle("GET /{$}", s)
	mux.Handle("GET /countdown.gif", s)
	return mux
}

// ServeHTTP renders one clock.
func (s *Server) ServeHTTP(w http.ResponseWriter, r *http.Request) {
	now := s.now()

	cfg, fontSpec, err := s.configFor(r.URL.Query())
	if err != nil {
		s.fail(w, r, http.StatusBadRequest, err)
		return
	}

	font, err := s.loadFont(fontSpec)
	if err != nil {
		status := http.StatusInternalServerError
		if errors.Is(err, clockflags.ErrUnknownBuiltin) {
			status = http.StatusBadRequest
		}
		s.fail(w, r, status, err)
		return
	}

	opts := []countdown.Option{
		countdown.WithFontBackend(font),
		countdown.WithCanvasPool(s.pool),
		countdown.WithMaxFrames(s.maxFrames),
		countdown.WithNow(func() time.Time { return now }),
	}
	if path := cfg.BackgroundImageFilePath; path != "" {
		bg, err := s.backgrounds.GetOrLoad(path, func() (image.Image, error) {
			return canvas.Load(path)
		})
		if err != nil {
			s.fail(w, r, http.StatusInternalServerError, fmt.Errorf("%w: %w", countdown.ErrBackground, err))
			return
		}
		opts = append(opts, countdown.WithBackground(bg))
	}

	data, err := countdown.Render(r.Context(), cfg, opts...)
	switch {
	case errors.Is(err, context.Canceled), errors.Is(err, context.DeadlineExceeded):
		s.log.Debug("countdown: request abandoned", "path", r.URL.Path, "err", err)
		return
	case errors.Is(err, countdown.ErrInvalidConfig):
		s.fail(w, r, http.StatusBadRequest, err)
		return
	case err != nil:
		s.fail(w, r, http.StatusInternalServerError, err)
		return
	}

	h := w.Header()
	h.Set("Expires", expiresInPast)
	h.Set("Last-Modified", now.UTC().Format(http.TimeFormat))
	h.Set("Cache-Control", "no-store, no-cache, must-revalidate, post-check=0, pre-check=0")
	h.Set("Pragma", "no-cache")
	h.Set("Content-Type", "image/gif")
	h.Set("Content-Length", strconv.Itoa(len(data)))
	w.WriteHeader(http.StatusOK)
	if r.Method != http.MethodHead {
		_, _ = w.Write(data)
	}

	s.log.Debug("countdown: served", "path", r.URL.Path, "bytes", len(data), "elapsed", time.Since(now))
}

func (s *Server) configFor(q url.Values) (countdown.Config, string, error) {
	cfg := s.base
	fontSpec := s.font

	if tz := q.Get(ParamTimezone); tz != "" {
		cfg.Timezone = tz
	}
	loc, err := cfg.Location()
	if err != nil {
		return cfg, "", err
	}
	if d := q.Get(ParamDeadline); d != "" {
		deadline, err := parseDeadline(d, loc)
		if err != nil {
			return cfg, "", &countdown.ConfigError{Field: "Deadline", Reason: "unparseable", Err: err}
		}
		cfg.Deadline = deadline
	}
	if q.Has(ParamSeparator) {
		cfg.Separator = q.Get(ParamSeparator)
	}
	if d := q.Get(ParamDays); d != "" {
		n, err := strconv.Atoi(d)
		if err != nil {
			return cfg, "", &countdown.ConfigError{Field: "DaysLen", Reason: "not an integer", Err: err}
		}
		cfg.DaysLen = n
	}
	// Only builtin fonts may be picked from the query; paths stay
	// server-side.
	if f := q.Get(ParamFont); f != "" {
		fontSpec = clockflags.BuiltinPrefix + strings.TrimPrefix(f, clockflags.BuiltinPrefix)
	}

	return cfg, fontSpec, cfg.Validate()
}

// parseDeadline accepts RFC 3339 or the CLI layout read in loc.
func parseDeadline(s string, loc *time.Location) (time.Time, error) {
	if t, err := time.Parse(time.RFC3339, s); err == nil {
		return t, nil
	}
	return time.ParseInLocation(clockflags.DeadlineLayout, s, loc)
}

func (s *Server) loadFont(spec string) (*text.FontSource, error) {
	return s.fonts.GetOrLoad(spec+"\x00"+s.measurer, func() (*text.FontSource, error) {
		return clockflags.LoadFont(spec, s.measurer)
	})
}

func (s *Server) fail(w http.ResponseWriter, r *http.Request, status int, err error) {
	if status >= http.StatusInternalServerError {
		s.log.Error("countdown: render failed", "path", r.URL.Path, "err", err)
	} else {
		s.log.Info("countdown: bad request", "path", r.URL.Path, "err", err)
	}
	http.Error(w, err.Error(), status)
}
