package arr

import (
	"fmt"
	"strconv"
	"strings"
)

// ─────────────────────────────────────────────────────────────────────────────
// Dot-notation access over nested containers
//
// These functions read, test, and remove values in nested structures using
// dot-separated key paths, mirroring Laravel's Arr::get, Arr::has,
// Arr::forget, Arr::dot, etc. Containers may be map[string]any, []any
// (numeric segments), any string-keyed map, structs with exported fields,
// or custom types implementing [Keyed].
//
// Example:
//
//	m := map[string]any{
//	    "user": map[string]any{
//	        "name": "Alice",
//	        "address": map[string]any{"city": "London"},
//	    },
//	}
//
//	Get(m, "user.address.city")  → "London"
//	Has(m, "user.name")          → true
//	Forget(m, "user.address")
// ─────────────────────────────────────────────────────────────────────────────

// Get retrieves a value from container using a dot-notation path.
// Returns def[0] (or nil) when the path cannot be resolved.
//
// An empty path returns the container itself. A literal top-level key that
// contains dots takes precedence over nested traversal. A stored nil value
// is returned as nil — the default applies only when a key is absent.
//
//	Get(m, "user.address.city")        // "London"
//	Get(m, "user.missing", "default")  // "default"
//	Get(m, "posts.0.title")            // first post's title
func Get(container any, path string, def ...any) any {
	if path == "" {
		return container
	}
	if v, ok := Lookup(container, path); ok {
		return v
	}
	if !strings.Contains(path, ".") {
		return fallback(def)
	}
	current := container
	for _, seg := range strings.Split(path, ".") {
		v, ok := Lookup(current, seg)
		if !ok {
			return fallback(def)
		}
		current = v
	}
	return current
}

// GetPath joins segments with "." and resolves them as a single path.
// The segments are NOT alternative candidate keys: ["address", "street"]
// resolves exactly like "address.street".
func GetPath(container any, segments []string, def ...any) any {
	return Get(container, strings.Join(segments, "."), def...)
}

// Has reports whether every given path exists in container, using
// key-presence semantics: a present key holding nil counts as existing.
// Returns false when container is nil or no paths are given.
//
// Unlike [GetPath], each argument here is an independent path.
func Has(container any, paths ...string) bool {
	if container == nil || len(paths) == 0 {
		return false
	}
	for _, path := range paths {
		if !hasPath(container, path) {
			return false
		}
	}
	return true
}

// HasAny reports whether at least one of the given paths exists in container.
func HasAny(container any, paths ...string) bool {
	for _, path := range paths {
		if hasPath(container, path) {
			return true
		}
	}
	return false
}

func hasPath(container any, path string) bool {
	if path == "" {
		return false
	}
	if _, ok := Lookup(container, path); ok {
		return true
	}
	if !strings.Contains(path, ".") {
		return false
	}
	current := container
	for _, seg := range strings.Split(path, ".") {
		v, ok := Lookup(current, seg)
		if !ok {
			return false
		}
		current = v
	}
	return true
}

// Exists reports whether key is present in container as a single segment.
// No dot splitting is performed: Exists(m, "a.b") tests the literal key
// "a.b". Scalars never contain keys.
func Exists(container any, key string) bool {
	_, ok := Lookup(container, key)
	return ok
}

// Set writes value into m at the dot-notation key, creating intermediate
// maps as needed.
//
//	Set(m, "user.address.postcode", "EC1")
func Set(m map[string]any, key string, value any) {
	segments := strings.SplitN(key, ".", 2)
	if len(segments) == 1 {
		m[key] = value
		return
	}
	seg, rest := segments[0], segments[1]
	nested, ok := m[seg].(map[string]any)
	if !ok {
		nested = make(map[string]any)
		m[seg] = nested
	}
	Set(nested, rest, value)
}

// Forget removes the given dot-notation keys from m in place.
//
// A literal top-level key (dots included) is removed directly. Otherwise the
// path is walked through intermediate map levels only; if any intermediate
// segment is missing or not a map, that key's removal is silently skipped.
// Removing a non-existent path is a no-op. Intermediate maps left empty are
// not cleaned up.
func Forget(m map[string]any, keys ...string) {
	for _, key := range keys {
		if _, ok := m[key]; ok {
			delete(m, key)
			continue
		}
		segments := strings.Split(key, ".")
		if len(segments) == 1 {
			continue
		}
		current := m
		reached := true
		for _, seg := range segments[:len(segments)-1] {
			nested, ok := current[seg].(map[string]any)
			if !ok {
				reached = false
				break
			}
			current = nested
		}
		if reached {
			delete(current, segments[len(segments)-1])
		}
	}
}

// Only returns a new map containing exactly the requested top-level keys
// that exist in m. Missing keys are silently dropped.
func Only(m map[string]any, keys ...string) map[string]any {
	out := make(map[string]any, len(keys))
	for _, k := range keys {
		if v, ok := m[k]; ok {
			out[k] = v
		}
	}
	return out
}

// Except returns a copy of m with the given keys removed using the same
// multi-segment semantics as [Forget]. Nested maps and slices along the way
// are copied, so m itself is never modified.
func Except(m map[string]any, keys ...string) map[string]any {
	out := copyMap(m)
	Forget(out, keys...)
	return out
}

func copyMap(m map[string]any) map[string]any {
	out := make(map[string]any, len(m))
	for k, v := range m {
		out[k] = copyValue(v)
	}
	return out
}

func copyValue(v any) any {
	switch val := v.(type) {
	case map[string]any:
		return copyMap(val)
	case []any:
		out := make([]any, len(val))
		for i, e := range val {
			out[i] = copyValue(e)
		}
		return out
	}
	return v
}

// Dot flattens a nested map into a single-level map whose keys are
// dot-joined paths. Slice elements are flattened using their integer index
// as a path segment. A key holding an empty map or empty slice is not
// recursed into; it is emitted as-is under its original key.
//
//	Dot(map[string]any{"a": map[string]any{"b": 1}})
//	// → map[string]any{"a.b": 1}
//
//	Dot(map[string]any{"posts": []any{map[string]any{"id": 7}}})
//	// → map[string]any{"posts.0.id": 7}
func Dot(m map[string]any) map[string]any {
	out := make(map[string]any)
	dotFlatten("", m, out)
	return out
}

func dotFlatten(prefix string, m map[string]any, out map[string]any) {
	for k, v := range m {
		key := k
		if prefix != "" {
			key = prefix + "." + k
		}
		dotEmit(key, v, out)
	}
}

func dotFlattenSlice(prefix string, s []any, out map[string]any) {
	for i, v := range s {
		dotEmit(prefix+"."+strconv.Itoa(i), v, out)
	}
}

func dotEmit(key string, v any, out map[string]any) {
	switch nested := v.(type) {
	case map[string]any:
		if len(nested) == 0 {
			out[key] = nested
			return
		}
		dotFlatten(key, nested, out)
	case []any:
		if len(nested) == 0 {
			out[key] = nested
			return
		}
		dotFlattenSlice(key, nested, out)
	default:
		out[key] = v
	}
}

// Undot expands a flat dot-notation map into a nested map[string]any.
//
//	Undot(map[string]any{"a.b": 1, "a.c": 2})
//	// → map[string]any{"a": map[string]any{"b": 1, "c": 2}}
func Undot(m map[string]any) map[string]any {
	out := make(map[string]any)
	for key, val := range m {
		Set(out, key, val)
	}
	return out
}

// Pluck resolves valuePath against every element of items and returns the
// values positionally. Unresolvable paths yield nil.
//
//	Pluck(products, "price")       // → [200, 100, nil]
//	Pluck(users, "address.city")   // → ["London", "Paris"]
func Pluck(items []any, valuePath string) []any {
	out := make([]any, len(items))
	for i, item := range items {
		out[i] = Get(item, valuePath)
	}
	return out
}

// PluckWithKeys is like [Pluck] but keys each value by the element's value
// at keyPath, stringified. Later duplicate keys overwrite earlier ones.
func PluckWithKeys(items []any, valuePath, keyPath string) map[string]any {
	out := make(map[string]any, len(items))
	for _, item := range items {
		out[keyString(Get(item, keyPath))] = Get(item, valuePath)
	}
	return out
}

// keyString renders a plucked key as a map key, honouring fmt.Stringer for
// object-like keys.
func keyString(v any) string {
	switch k := v.(type) {
	case string:
		return k
	case fmt.Stringer:
		return k.String()
	}
	return fmt.Sprintf("%v", v)
}

func fallback(def []any) any {
	if len(def) > 0 {
		return def[0]
	}
	return nil
}
