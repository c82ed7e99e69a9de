// Package collections provides an ordered key-value Collection with a
// fluent, chainable API, inspired by Laravel's Illuminate/Collections.
//
// # Overview
//
// The central type is [Collection], a wrapper around an ordered mapping of
// string or int keys to arbitrary values. Iteration order is insertion
// order, and keys stay attached to their values through every transform:
//
//	result := collections.New(5, 3, 1, 4, 2).
//	    Filter(func(value, _ any) bool { return value.(int) > 1 }).
//	    Sort().
//	    Reverse()
//
// # Transformations vs. mutators
//
// Filter, Map, Merge, Slice, Chunk, Pluck, GroupBy, Sort, and Reverse
// return a new Collection and never alter the receiver. Add, Set, Remove,
// and Clear edit the receiver in place and return it for chaining:
//
//	c := collections.Empty().Set("name", "Desk").Set("price", 200)
//	c.Remove("price")
//
// Transformation copies are shallow at the top level; nested maps and
// slices stored as values are shared between the source and the result.
//
// # Dotted access
//
// Get and Has delegate string keys to the arr package, so nested values
// resolve with dot notation and a literal key containing dots wins over
// traversal:
//
//	c.Get("address.street")
//	c.Has("user.profile.email")
//
// # Serialization
//
// ToJSON renders indented, human-readable JSON: dense integer keys become
// a JSON array, anything else an ordered object. Forward slashes and HTML
// characters are left unescaped.
//
// # Macros (runtime extension)
//
// Register named functions at runtime via [RegisterMacro] and call them
// through [Collection.Macro].
package collections
