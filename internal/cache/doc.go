// Package cache provides a generic LRU cache with a soft size limit.
//
// It backs the glyph bounding box cache of a text.FontSource and the
// font and background image caches of the countdownd server.
//
//	c := cache.New[string, int](100)
//	c.Set("key", 42)
//	value, ok := c.Get("key")
//
// Values that can fail to build are loaded with GetOrLoad; a failed load
// is not cached so the next call retries it.
//
// Cache is safe for concurrent use and must not be copied after creation.
package cache
