// Package arr provides standalone, framework-agnostic helpers for nested
// containers and dot-notation path access, inspired by Laravel's Arr facade.
//
// # Dot-notation access
//
// [Get], [Has], [Exists], [Forget], [Dot], and friends resolve dot-separated
// paths against nested structures:
//
//	m := map[string]any{
//	    "user": map[string]any{
//	        "name": "Alice",
//	        "address": map[string]any{"city": "London"},
//	    },
//	}
//	arr.Get(m, "user.address.city")          // → "London"
//	arr.Has(m, "user.name")                  // → true
//	arr.Forget(m, "user.address.city")
//	flat := arr.Dot(m)                       // → {"user.name": "Alice", …}
//
// Containers are matched by capability rather than concrete type: resolution
// works uniformly over map[string]any, []any (numeric segments such as
// "posts.0.id"), any string-keyed map, structs with exported fields, and
// custom types implementing the [Keyed] interface.
//
// # Presence vs. nil
//
// All resolution is key-presence based. A key that exists with a nil value
// is "present": Get returns the nil rather than the caller's default, and
// Has reports true. Defaults apply only when a path cannot be resolved.
//
// # Sequence helpers
//
// [First], [Last], [Flatten], [Wrap], and [Pluck] operate on []any
// sequences:
//
//	arr.Flatten([]any{1, []any{2, []any{3, 4}}, 5}, 1) // → [1 2 [3 4] 5]
//	arr.Wrap(nil)                                      // → []
//	arr.Pluck(products, "price")                       // → [200 100 <nil>]
package arr
