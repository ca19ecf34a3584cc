package text

import "fmt"

// Measurer computes the unrotated ink bounding box of a string at a size
// in points. Implementations need not be safe for concurrent use; the
// owning FontSource serializes calls.
type Measurer interface {
	Bounds(s string, size float64) (Box, error)
}

// MeasurerFactory builds a Measurer for a parsed FontSource.
// Factories run once per FontSource, inside NewFontSource.
type MeasurerFactory func(src *FontSource) (Measurer, error)

// DefaultMeasurer is the name of the measurer used when none is selected.
const DefaultMeasurer = "ximage"

// measurerRegistry holds registered measurers.
var measurerRegistry = map[string]MeasurerFactory{
	"ximage": newXImageMeasurer,
	"gotext": newGoTextMeasurer,
}

// RegisterMeasurer registers a custom bounding box engine.
// It is meant to be called from init functions.
func RegisterMeasurer(name string, factory MeasurerFactory) {
	measurerRegistry[name] = factory
}

// Measurers returns the registered measurer names.
func Measurers() []string {
	names := make([]string, 0, len(measurerRegistry))
	for name := range measurerRegistry {
		names = append(names, name)
	}
	return names
}

func lookupMeasurer(name string) (MeasurerFactory, error) {
	if name == "" {
		name = DefaultMeasurer
	}
	f, ok := measurerRegistry[name]
	if !ok {
		return nil, fmt.Errorf("%w: %q", ErrUnknownMeasurer, name)
	}
	return f, nil
}
