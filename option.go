package arc

// Option configures a [Cache] during [New].
type Option[Key comparable, Value any] func(*Cache[Key, Value])

// WithEvictCallback registers onEvict to be called with the key and value
// of every page replaced out of the cache.
// It is not called for [Cache.Remove], [Cache.Clear], or updates.
// onEvict must not call back into the cache.
func WithEvictCallback[Key comparable, Value any](onEvict func(Key, Value)) Option[Key, Value] {
	return func(c *Cache[Key, Value]) {
		c.onEvict = onEvict
	}
}
