package text

import (
	"fmt"
	"math"
	"os"
	"sync"

	"golang.org/x/image/font"
	"golang.org/x/image/font/opentype"
	"golang.org/x/image/font/sfnt"

	"github.com/gogpu/countdown/internal/cache"
)

// FontSource represents a loaded font file.
// It measures and paints strings at any size and angle.
//
// FontSource is safe for concurrent use; calls are serialized because the
// underlying faces and shapers keep scratch buffers.
// FontSource must not be copied after creation (enforced by copyCheck).
type FontSource struct {
	// addr is used for copy protection.
	// It must point to the FontSource itself.
	addr *FontSource

	data []byte
	font *opentype.Font
	name string

	mu       sync.Mutex
	closed   bool
	faces    map[float64]font.Face
	measurer Measurer
	bounds   *cache.Cache[boundsKey, Box]

	config sourceConfig
}

type boundsKey struct {
	s     string
	size  float64
	angle float64
}

// NewFontSource creates a FontSource from font data (TTF or OTF).
// The data slice is copied internally and can be reused after this call.
func NewFontSource(data []byte, opts ...SourceOption) (*FontSource, error) {
	if len(data) == 0 {
		return nil, ErrEmptyFontData
	}

	config := defaultSourceConfig()
	for _, opt := range opts {
		opt(&config)
	}

	factory, err := lookupMeasurer(config.measurerName)
	if err != nil {
		return nil, err
	}

	dataCopy := make([]byte, len(data))
	copy(dataCopy, data)

	f, err := opentype.Parse(dataCopy)
	if err != nil {
		return nil, fmt.Errorf("text: failed to parse font: %w", err)
	}

	s := &FontSource{
		data:   dataCopy,
		font:   f,
		faces:  make(map[float64]font.Face),
		bounds: cache.New[boundsKey, Box](config.cacheLimit),
		config: config,
	}
	s.addr = s
	s.name = extractFontName(f)

	m, err := factory(s)
	if err != nil {
		return nil, err
	}
	s.measurer = m

	return s, nil
}

// NewFontSourceFromFile loads a FontSource from a font file path.
func NewFontSourceFromFile(path string, opts ...SourceOption) (*FontSource, error) {
	// #nosec G304 -- Font file path is provided by the caller
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("text: failed to read font file: %w", err)
	}

	return NewFontSource(data, opts...)
}

// Name returns the font family name.
func (s *FontSource) Name() string {
	s.copyCheck()
	return s.name
}

// Font returns the parsed opentype font.
func (s *FontSource) Font() *opentype.Font {
	s.copyCheck()
	return s.font
}

// MeasurerName returns the name of the bounding box engine in use.
func (s *FontSource) MeasurerName() string {
	return s.config.measurerName
}

// Bounds returns the ink bounding box of str at size points, rotated by
// angle degrees. Results are cached per (str, size, angle).
func (s *FontSource) Bounds(str string, size, angle float64) (Box, error) {
	s.copyCheck()
	if err := checkSize(size); err != nil {
		return Box{}, err
	}

	key := boundsKey{s: str, size: size, angle: angle}
	return s.bounds.GetOrLoad(key, func() (Box, error) {
		s.mu.Lock()
		defer s.mu.Unlock()

		if s.closed {
			return Box{}, ErrClosed
		}
		b, err := s.measurer.Bounds(str, size)
		if err != nil {
			return Box{}, err
		}
		return b.Rotate(angle), nil
	})
}

// Close releases the faces held by the source.
// The source cannot be used after Close.
func (s *FontSource) Close() error {
	s.copyCheck()

	s.mu.Lock()
	if s.closed {
		s.mu.Unlock()
		return nil
	}
	s.closed = true

	var firstErr error
	for size, f := range s.faces {
		if err := f.Close(); err != nil && firstErr == nil {
			firstErr = fmt.Errorf("text: close face %v: %w", size, err)
		}
	}
	s.faces = nil
	s.mu.Unlock()

	// Bounds takes the cache lock before s.mu, so clear outside s.mu.
	s.bounds.Clear()

	return firstErr
}

// faceLocked returns the opentype face for size, creating it on first use.
// Caller must hold s.mu.
func (s *FontSource) faceLocked(size float64) (font.Face, error) {
	if s.closed {
		return nil, ErrClosed
	}
	if f, ok := s.faces[size]; ok {
		return f, nil
	}
	f, err := opentype.NewFace(s.font, &opentype.FaceOptions{
		Size:    size,
		DPI:     72,
		Hinting: font.HintingFull,
	})
	if err != nil {
		return nil, fmt.Errorf("text: failed to create face: %w", err)
	}
	s.faces[size] = f
	return f, nil
}

// copyCheck panics if FontSource was copied by value.
func (s *FontSource) copyCheck() {
	if s.addr != s {
		panic("text: FontSource must not be copied by value")
	}
}

func checkSize(size float64) error {
	if size <= 0 || math.IsNaN(size) || math.IsInf(size, 0) {
		return fmt.Errorf("%w: %v", ErrInvalidSize, size)
	}
	return nil
}

// extractFontName returns the family name, the full name, or a placeholder.
func extractFontName(f *opentype.Font) string {
	if name, err := f.Name(nil, sfnt.NameIDFamily); err == nil && name != "" {
		return name
	}
	if name, err := f.Name(nil, sfnt.NameIDFull); err == nil && name != "" {
		return name
	}
	return "Unknown Font"
}
