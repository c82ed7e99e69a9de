package collections

// Enumerable is the interface satisfied by [Collection].
//
// Accept Enumerable in your own functions and interfaces so that consumers
// can substitute alternative implementations without depending on the
// concrete *Collection type.
type Enumerable interface {
	// All returns a copy of every entry in insertion order.
	All() []Entry

	// Count returns the number of entries.
	Count() int

	// Each calls fn(value, key) for every entry in insertion order.
	Each(fn func(value, key any))

	// Filter returns a new collection containing only entries for which
	// fn returns true, preserving their keys.
	Filter(fn func(value, key any) bool) *Collection

	// Get retrieves the value stored under key, or def[0] (nil by
	// default) when it cannot be resolved.
	Get(key any, def ...any) any

	// Has reports whether key exists, counting present-but-nil values.
	Has(key any) bool

	// First returns the first value in insertion order, with a presence
	// flag.
	First() (any, bool)

	// Last returns the last value in insertion order, with a presence
	// flag.
	Last() (any, bool)

	// IsEmpty reports whether the collection contains no entries.
	IsEmpty() bool

	// IsNotEmpty reports whether the collection has at least one entry.
	IsNotEmpty() bool

	// Keys returns the keys in insertion order.
	Keys() []any

	// Values returns the values in insertion order.
	Values() []any
}

var _ Enumerable = (*Collection)(nil)
