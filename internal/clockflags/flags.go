// Package clockflags holds the command-line surface shared by the
// countdown commands: clock flags, colour parsing, font loading and
// logger setup.
package clockflags

import (
	"errors"
	"fmt"
	"log/slog"
	"os"
	"strconv"
	"strings"
	"time"

	"golang.org/x/image/font/gofont/gobold"
	"golang.org/x/image/font/gofont/gomono"
	"golang.org/x/image/font/gofont/goregular"

	"github.com/gogpu/countdown"
	"github.com/gogpu/countdown/text"
)

// DeadlineLayout is the accepted --deadline format, read in --timezone.
const DeadlineLayout = "2006-01-02T15:04:05"

// BuiltinPrefix selects a font compiled into the binary, e.g.
// "builtin:gomono".
const BuiltinPrefix = "builtin:"

var builtinFonts = map[string][]byte{
	"goregular": goregular.TTF,
	"gobold":    gobold.TTF,
	"gomono":    gomono.TTF,
}

// ErrUnknownBuiltin is returned for a builtin font name that does not exist.
var ErrUnknownBuiltin = errors.New("clockflags: unknown builtin font")

// Flags mirrors countdown.Config. Embed it in a kong CLI struct.
type Flags struct {
	Deadline         string  `help:"Deadline as YYYY-MM-DDTHH:MM:SS in --timezone." required:""`
	Timezone         string  `help:"IANA timezone of the clock." default:"Europe/London"`
	Seconds          int     `help:"Maximum number of seconds to animate." default:"60"`
	Separator        string  `help:"Character between fields." default:"|"`
	SeparatorSpacing int     `help:"Spacing on both sides of a separator." default:"8"`
	DaysLen          int     `help:"Zero-padded width of the day field, 0 to omit it." default:"2"`
	Spacing          int     `help:"Spacing between digits." default:"2"`
	Font             string  `help:"TTF/OTF font file, or builtin:goregular|gobold|gomono." default:"builtin:goregular"`
	FontSize         float64 `help:"Font size in points." default:"20"`
	FontAngle        float64 `help:"Counter-clockwise text rotation in degrees." default:"0"`
	PaddingH         int     `name:"padding-h" help:"Horizontal padding." default:"25"`
	PaddingV         int     `name:"padding-v" help:"Vertical padding." default:"25"`
	FontColor        RGB     `help:"Text colour as r,g,b or #rrggbb." default:"120,0,0"`
	Background       string  `help:"Background image; overrides --background-color and the canvas size."`
	BackgroundColor  RGB     `help:"Canvas colour as r,g,b or #rrggbb." default:"200,255,255"`
	Measurer         string  `help:"Text measurer (ximage or gotext)." enum:"ximage,gotext" default:"ximage"`
	LogLevel         string  `help:"Log level." enum:"debug,info,warn,error" default:"warn"`
}

// Config converts the flags into a countdown.Config.
func (f *Flags) Config() (countdown.Config, error) {
	loc, err := time.LoadLocation(f.Timezone)
	if err != nil {
		return countdown.Config{}, fmt.Errorf("clockflags: timezone %q: %w", f.Timezone, err)
	}
	deadline, err := time.ParseInLocation(DeadlineLayout, f.Deadline, loc)
	if err != nil {
		return countdown.Config{}, fmt.Errorf("clockflags: deadline: %w", err)
	}

	cfg := countdown.Config{
		AmountOfSeconds:         f.Seconds,
		Deadline:                deadline,
		Timezone:                f.Timezone,
		Separator:               f.Separator,
		SeparatorSpacing:        f.SeparatorSpacing,
		DaysLen:                 f.DaysLen,
		Spacing:                 f.Spacing,
		FontSize:                f.FontSize,
		FontAngle:               f.FontAngle,
		PaddingHorizontal:       f.PaddingH,
		PaddingVertical:         f.PaddingV,
		FontColor:               countdown.RGB(f.FontColor),
		BackgroundImageFilePath: f.Background,
		BackgroundColor:         countdown.RGB(f.BackgroundColor),
	}
	if !strings.HasPrefix(f.Font, BuiltinPrefix) {
		cfg.FontFilePath = f.Font
	}
	return cfg, cfg.Validate()
}

// LoadFont opens the --font value, builtin or file.
func LoadFont(font, measurer string) (*text.FontSource, error) {
	if name, ok := strings.CutPrefix(font, BuiltinPrefix); ok {
		data, ok := builtinFonts[name]
		if !ok {
			return nil, fmt.Errorf("%w: %q", ErrUnknownBuiltin, name)
		}
		return text.NewFontSource(data, text.WithMeasurer(measurer))
	}
	return text.NewFontSourceFromFile(font, text.WithMeasurer(measurer))
}

// SetupLogger installs a text logger on stderr for the countdown package
// and returns it.
func SetupLogger(level string) *slog.Logger {
	var lvl slog.Level
	if err := lvl.UnmarshalText([]byte(level)); err != nil {
		lvl = slog.LevelWarn
	}
	l := slog.New(slog.NewTextHandler(os.Stderr, &slog.HandlerOptions{Level: lvl}))
	countdown.SetLogger(l)
	return l
}

// RGB is a colour flag accepting "r,g,b" or "#rrggbb".
type RGB countdown.RGB

// UnmarshalText implements encoding.TextUnmarshaler.
func (c *RGB) UnmarshalText(b []byte) error {
	s := strings.TrimSpace(string(b))
	if hex, ok := strings.CutPrefix(s, "#"); ok {
		if len(hex) != 6 {
			return fmt.Errorf("clockflags: colour %q: want #rrggbb", s)
		}
		v, err := strconv.ParseUint(hex, 16, 32)
		if err != nil {
			return fmt.Errorf("clockflags: colour %q: %w", s, err)
		}
		*c = RGB{uint8(v >> 16), uint8(v >> 8), uint8(v)}
		return nil
	}

	parts := strings.Split(s, ",")
	if len(parts) != 3 {
		return fmt.Errorf("clockflags: colour %q: want r,g,b", s)
	}
	var out RGB
	for i, p := range parts {
		v, err := strconv.ParseUint(strings.TrimSpace(p), 10, 8)
		if err != nil {
			return fmt.Errorf("clockflags: colour %q: %w", s, err)
		}
		out[i] = uint8(v)
	}
	*c = out
	return nil
}

// String formats c as r,g,b.
func (c RGB) String() string {
	return fmt.Sprintf("%d,%d,%d", c[0], c[1], c[2])
}
