package arc

// Policy is the contract shared by every replacement policy in this module:
// [Cache], and the recency-only and frequency-only caches of the
// lru and lfu packages.
type Policy[Key comparable, Value any] interface {
	// Get returns the value for key and records the access,
	// or reports false without side effects.
	Get(Key) (Value, bool)
	// Put inserts or overwrites the value for key.
	Put(Key, Value)
	// Len returns the number of resident entries.
	Len() int
	// Clear empties all internal state.
	Clear()
}

var _ Policy[string, any] = (*Cache[string, any])(nil)
