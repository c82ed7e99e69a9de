package collections

import "fmt"

// Entry is a single key-value pair of a [Collection].
//
// Keys are strings or ints; other key types are stringified on insertion so
// that every key in a collection is comparable.
type Entry struct {
	Key   any
	Value any
}

// String returns a human-readable representation: "key: value".
func (e Entry) String() string {
	return fmt.Sprintf("%v: %v", e.Key, e.Value)
}

// normalizeKey collapses keys to the canonical comparable forms used
// internally: string, int, or nil. Any other type is stringified.
func normalizeKey(key any) any {
	switch k := key.(type) {
	case nil:
		return nil
	case string:
		return k
	case int:
		return k
	case int8:
		return int(k)
	case int16:
		return int(k)
	case int32:
		return int(k)
	case int64:
		return int(k)
	case uint:
		return int(k)
	case uint8:
		return int(k)
	case uint16:
		return int(k)
	case uint32:
		return int(k)
	case uint64:
		return int(k)
	}
	return fmt.Sprintf("%v", key)
}

// stringKey renders a normalized key for string-keyed output such as
// [Collection.ToMap] and JSON objects.
func stringKey(key any) string {
	if s, ok := key.(string); ok {
		return s
	}
	return fmt.Sprintf("%v", key)
}
