package text

// SourceOption configures FontSource creation.
type SourceOption func(*sourceConfig)

// sourceConfig holds configuration for FontSource.
type sourceConfig struct {
	cacheLimit   int
	measurerName string
}

// defaultSourceConfig returns the default source configuration.
func defaultSourceConfig() sourceConfig {
	return sourceConfig{
		cacheLimit:   256,
		measurerName: DefaultMeasurer,
	}
}

// WithCacheLimit sets the maximum number of cached bounding boxes.
// A value of 0 disables the cache limit.
func WithCacheLimit(n int) SourceOption {
	return func(c *sourceConfig) {
		c.cacheLimit = n
	}
}

// WithMeasurer selects the bounding box engine by registered name.
// The default is "ximage".
func WithMeasurer(name string) SourceOption {
	return func(c *sourceConfig) {
		c.measurerName = name
	}
}
