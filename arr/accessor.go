package arr

import (
	"reflect"
	"strconv"
)

// Keyed is the capability interface for container types that expose values
// by string key. Implement it to make a custom type resolvable by [Get],
// [Has], and the other dot-notation functions in this package.
//
// A present key holding nil must report HasKey → true; the functions in this
// package distinguish "key absent" from "value is nil".
type Keyed interface {
	// HasKey reports whether key is present in the container.
	HasKey(key string) bool

	// GetKey returns the value stored under key.
	// The result for an absent key is unspecified; call HasKey first.
	GetKey(key string) any
}

// Lookup resolves a single key segment against any supported container:
// map[string]any, [Keyed] implementations, []any (numeric segments), other
// string-keyed maps, slices, arrays, and exported struct fields (via
// reflection). No dot splitting is performed; the key is matched literally.
//
// The boolean reports key presence, so a stored nil value yields (nil, true).
func Lookup(container any, key string) (any, bool) {
	switch c := container.(type) {
	case nil:
		return nil, false
	case map[string]any:
		v, ok := c[key]
		return v, ok
	case Keyed:
		if !c.HasKey(key) {
			return nil, false
		}
		return c.GetKey(key), true
	case []any:
		i, err := strconv.Atoi(key)
		if err != nil || i < 0 || i >= len(c) {
			return nil, false
		}
		return c[i], true
	}
	return reflectLookup(container, key)
}

// reflectLookup handles the long tail of container shapes: typed maps with
// string keys, typed slices/arrays, and struct fields.
func reflectLookup(container any, key string) (any, bool) {
	rv := reflect.ValueOf(container)
	for rv.Kind() == reflect.Pointer || rv.Kind() == reflect.Interface {
		if rv.IsNil() {
			return nil, false
		}
		rv = rv.Elem()
	}
	switch rv.Kind() {
	case reflect.Map:
		if rv.Type().Key().Kind() != reflect.String {
			return nil, false
		}
		mv := rv.MapIndex(reflect.ValueOf(key).Convert(rv.Type().Key()))
		if !mv.IsValid() {
			return nil, false
		}
		return mv.Interface(), true
	case reflect.Slice, reflect.Array:
		i, err := strconv.Atoi(key)
		if err != nil || i < 0 || i >= rv.Len() {
			return nil, false
		}
		return rv.Index(i).Interface(), true
	case reflect.Struct:
		f := rv.FieldByName(key)
		if !f.IsValid() || !f.CanInterface() {
			return nil, false
		}
		return f.Interface(), true
	}
	return nil, false
}

// asSequence converts any slice or array value to []any.
// A []any is returned unchanged. Strings are not sequences.
func asSequence(value any) ([]any, bool) {
	if s, ok := value.([]any); ok {
		return s, true
	}
	rv := reflect.ValueOf(value)
	if !rv.IsValid() || (rv.Kind() != reflect.Slice && rv.Kind() != reflect.Array) {
		return nil, false
	}
	out := make([]any, rv.Len())
	for i := range out {
		out[i] = rv.Index(i).Interface()
	}
	return out, true
}
