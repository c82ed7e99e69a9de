package collections

import (
	"fmt"
	"sort"
	"strconv"

	"github.com/hasbyte1/go-support/arr"
)

// Collection wraps an ordered key-value mapping. Keys are strings or ints,
// iteration order is insertion order, and keys within a collection are
// unique.
//
// Methods split into two families:
//
//   - Transformations (Filter, Map, Merge, Slice, Chunk, Pluck, GroupBy,
//     Sort, Reverse, …) return a *new* Collection and never touch the
//     receiver.
//   - Mutators (Add, Set, Remove, Clear) edit the receiver in place and
//     return it for fluent chaining.
//
// Copies made by transformations are shallow at the top level: nested maps
// and slices stored as values are shared by reference with the source.
//
// # Creating a collection
//
//	c := collections.New(1, 2, 3)                        // dense int keys
//	c := collections.FromMap(map[string]any{"a": 1})     // keys sorted
//	c := collections.Empty()
//
// # Dotted access
//
// Get and Has delegate to the arr package, so nested values resolve with
// the same dot-notation semantics as [arr.Get]:
//
//	c.Get("address.street")
type Collection struct {
	entries []Entry
}

// ─────────────────────────────────────────────────────────────────────────────
// Constructors
// ─────────────────────────────────────────────────────────────────────────────

// New creates a Collection from values, keyed 0 … len(values)-1.
func New(values ...any) *Collection {
	entries := make([]Entry, len(values))
	for i, v := range values {
		entries[i] = Entry{Key: i, Value: v}
	}
	return &Collection{entries: entries}
}

// FromSlice creates a Collection from a slice, keyed by position.
func FromSlice(values []any) *Collection {
	return New(values...)
}

// FromMap creates a Collection from a string-keyed map. Go maps have no
// iteration order, so keys are inserted in sorted order for determinism.
func FromMap(m map[string]any) *Collection {
	keys := make([]string, 0, len(m))
	for k := range m {
		keys = append(keys, k)
	}
	sort.Strings(keys)
	entries := make([]Entry, len(keys))
	for i, k := range keys {
		entries[i] = Entry{Key: k, Value: m[k]}
	}
	return &Collection{entries: entries}
}

// FromEntries creates a Collection from explicit entries, preserving their
// order. Keys are normalized; a duplicate key overwrites the earlier value
// in place.
func FromEntries(entries []Entry) *Collection {
	c := Empty()
	for _, e := range entries {
		c.Set(e.Key, e.Value)
	}
	return c
}

// Empty creates an empty Collection.
func Empty() *Collection {
	return &Collection{entries: []Entry{}}
}

// ─────────────────────────────────────────────────────────────────────────────
// Accessors
// ─────────────────────────────────────────────────────────────────────────────

// Count returns the number of entries.
func (c *Collection) Count() int { return len(c.entries) }

// IsEmpty reports whether the collection contains no entries.
func (c *Collection) IsEmpty() bool { return len(c.entries) == 0 }

// IsNotEmpty reports whether the collection has at least one entry.
func (c *Collection) IsNotEmpty() bool { return len(c.entries) > 0 }

// All returns a copy of the underlying entries in insertion order.
func (c *Collection) All() []Entry {
	out := make([]Entry, len(c.entries))
	copy(out, c.entries)
	return out
}

// ToMap returns the collection as a plain map with stringified keys.
// Insertion order is necessarily lost; use [Collection.All] to keep it.
func (c *Collection) ToMap() map[string]any {
	out := make(map[string]any, len(c.entries))
	for _, e := range c.entries {
		out[stringKey(e.Key)] = e.Value
	}
	return out
}

// Keys returns the keys in insertion order.
func (c *Collection) Keys() []any {
	keys := make([]any, len(c.entries))
	for i, e := range c.entries {
		keys[i] = e.Key
	}
	return keys
}

// Values returns the values in insertion order.
func (c *Collection) Values() []any {
	values := make([]any, len(c.entries))
	for i, e := range c.entries {
		values[i] = e.Value
	}
	return values
}

// Get retrieves the value stored under key. String keys resolve with the
// full dot-notation semantics of [arr.Get]: an exact key match (dots
// included) wins, otherwise the path descends into nested values. Returns
// def[0] (or nil) when the key cannot be resolved; a stored nil is returned
// as nil.
func (c *Collection) Get(key any, def ...any) any {
	if s, ok := key.(string); ok {
		return arr.Get(c, s, def...)
	}
	if i := c.find(normalizeKey(key)); i >= 0 {
		return c.entries[i].Value
	}
	if len(def) > 0 {
		return def[0]
	}
	return nil
}

// GetOrFail is like [Collection.Get] but returns [ErrKeyNotFound] instead
// of a default when the key cannot be resolved.
func (c *Collection) GetOrFail(key any) (any, error) {
	if !c.Has(key) {
		return nil, fmt.Errorf("%w: %v", ErrKeyNotFound, key)
	}
	return c.Get(key), nil
}

// Has reports whether key exists, using key-presence semantics: an entry
// holding nil counts as existing. String keys accept dot-notation paths.
func (c *Collection) Has(key any) bool {
	if s, ok := key.(string); ok {
		return arr.Has(c, s)
	}
	return c.find(normalizeKey(key)) >= 0
}

// First returns the first value in insertion order.
// Returns nil and false when the collection is empty.
func (c *Collection) First() (any, bool) {
	if len(c.entries) == 0 {
		return nil, false
	}
	return c.entries[0].Value, true
}

// Last returns the last value in insertion order.
// Returns nil and false when the collection is empty.
func (c *Collection) Last() (any, bool) {
	if len(c.entries) == 0 {
		return nil, false
	}
	return c.entries[len(c.entries)-1].Value, true
}

// Each calls fn(value, key) for every entry in insertion order.
func (c *Collection) Each(fn func(value, key any)) {
	for _, e := range c.entries {
		fn(e.Value, e.Key)
	}
}

// HasKey implements [arr.Keyed]. Numeric strings also match int keys, so
// dotted paths such as "items.0" resolve against integer-keyed entries.
func (c *Collection) HasKey(key string) bool {
	_, ok := c.lookupString(key)
	return ok
}

// GetKey implements [arr.Keyed].
func (c *Collection) GetKey(key string) any {
	v, _ := c.lookupString(key)
	return v
}

// ─────────────────────────────────────────────────────────────────────────────
// Transformations (return a new Collection)
// ─────────────────────────────────────────────────────────────────────────────

// Filter returns a new collection with only the entries for which
// fn(value, key) returns true. Original keys are preserved; entries are not
// re-indexed.
func (c *Collection) Filter(fn func(value, key any) bool) *Collection {
	out := make([]Entry, 0, len(c.entries))
	for _, e := range c.entries {
		if fn(e.Value, e.Key) {
			out = append(out, e)
		}
	}
	return &Collection{entries: out}
}

// Reject returns a new collection with entries for which fn returns true
// removed. It is the complement of [Collection.Filter].
func (c *Collection) Reject(fn func(value, key any) bool) *Collection {
	return c.Filter(func(value, key any) bool { return !fn(value, key) })
}

// Map returns a new collection with each value transformed by
// fn(value, key). The input's key is preserved at each position.
func (c *Collection) Map(fn func(value, key any) any) *Collection {
	out := make([]Entry, len(c.entries))
	for i, e := range c.entries {
		out[i] = Entry{Key: e.Key, Value: fn(e.Value, e.Key)}
	}
	return &Collection{entries: out}
}

// Reduce folds the values left to right in insertion order.
func (c *Collection) Reduce(fn func(carry, value any) any, initial any) any {
	result := initial
	for _, e := range c.entries {
		result = fn(result, e.Value)
	}
	return result
}

// Merge returns a new collection combining c with other. String keys from
// other overwrite the receiver's value in place on conflict; integer-keyed
// entries from other are appended with fresh indices, mirroring PHP's
// array_merge.
func (c *Collection) Merge(other *Collection) *Collection {
	out := &Collection{entries: c.All()}
	for _, e := range other.entries {
		if _, isInt := e.Key.(int); isInt {
			out.entries = append(out.entries, Entry{Key: out.nextIntKey(), Value: e.Value})
			continue
		}
		if i := out.find(e.Key); i >= 0 {
			out.entries[i].Value = e.Value
		} else {
			out.entries = append(out.entries, e)
		}
	}
	return out
}

// Slice returns a new collection over the sub-range starting at offset with
// at most length[0] entries (to the end when omitted). A negative offset
// counts from the end. Original keys are preserved.
func (c *Collection) Slice(offset int, length ...int) *Collection {
	total := len(c.entries)
	if offset < 0 {
		offset = total + offset
	}
	if offset < 0 {
		offset = 0
	}
	if offset >= total {
		return Empty()
	}
	end := total
	if len(length) > 0 && length[0] >= 0 {
		if e := offset + length[0]; e < end {
			end = e
		}
	}
	out := make([]Entry, end-offset)
	copy(out, c.entries[offset:end])
	return &Collection{entries: out}
}

// Chunk splits the collection into consecutive groups of size, each group
// preserving its entries' original keys. The last chunk may be shorter.
// Returns no chunks when size <= 0.
func (c *Collection) Chunk(size int) []*Collection {
	if size <= 0 || len(c.entries) == 0 {
		return []*Collection{}
	}
	chunks := make([]*Collection, 0, (len(c.entries)+size-1)/size)
	for i := 0; i < len(c.entries); i += size {
		end := i + size
		if end > len(c.entries) {
			end = len(c.entries)
		}
		group := make([]Entry, end-i)
		copy(group, c.entries[i:end])
		chunks = append(chunks, &Collection{entries: group})
	}
	return chunks
}

// Pluck returns a new collection extracting the value stored under key from
// each entry's value. The key is a single segment (no dot splitting);
// entries whose value has no such key yield nil. Original keys are
// preserved.
func (c *Collection) Pluck(key string) *Collection {
	return c.Map(func(value, _ any) any {
		v, _ := arr.Lookup(value, key)
		return v
	})
}

// GroupBy buckets entries by the value stored under key in each entry's
// value (single segment). Bucket order follows first-seen-group order, and
// entries keep their original keys inside each bucket. Entries whose value
// has no such key are grouped under a literal nil bucket key; non-string,
// non-int group values are stringified.
func (c *Collection) GroupBy(key string) *Collection {
	groups := Empty()
	for _, e := range c.entries {
		var bucketKey any
		if v, ok := arr.Lookup(e.Value, key); ok {
			bucketKey = normalizeKey(v)
		}
		i := groups.find(bucketKey)
		if i < 0 {
			groups.entries = append(groups.entries, Entry{Key: bucketKey, Value: Empty()})
			i = len(groups.entries) - 1
		}
		bucket := groups.entries[i].Value.(*Collection)
		bucket.entries = append(bucket.entries, e)
	}
	return groups
}

// Sort returns a new collection sorted by less[0], or in ascending value
// order when no comparator is given. The sort is stable and keeps each key
// attached to its value (an associative sort, not a re-index).
func (c *Collection) Sort(less ...func(a, b Entry) bool) *Collection {
	cmp := func(a, b Entry) bool { return compareValues(a.Value, b.Value) < 0 }
	if len(less) > 0 && less[0] != nil {
		cmp = less[0]
	}
	out := c.All()
	sort.SliceStable(out, func(i, j int) bool { return cmp(out[i], out[j]) })
	return &Collection{entries: out}
}

// Reverse returns a new collection with iteration order reversed,
// preserving key associations.
func (c *Collection) Reverse() *Collection {
	n := len(c.entries)
	out := make([]Entry, n)
	for i, e := range c.entries {
		out[n-1-i] = e
	}
	return &Collection{entries: out}
}

// ─────────────────────────────────────────────────────────────────────────────
// Mutators (edit the receiver, return it for chaining)
// ─────────────────────────────────────────────────────────────────────────────

// Add appends value under the next free integer key, never colliding with
// existing integer keys.
func (c *Collection) Add(value any) *Collection {
	c.entries = append(c.entries, Entry{Key: c.nextIntKey(), Value: value})
	return c
}

// Set stores value under key, overwriting an existing entry in place or
// appending a new one.
func (c *Collection) Set(key, value any) *Collection {
	k := normalizeKey(key)
	if i := c.find(k); i >= 0 {
		c.entries[i].Value = value
		return c
	}
	c.entries = append(c.entries, Entry{Key: k, Value: value})
	return c
}

// Remove deletes the entry stored under the exact key. Removing an absent
// key is a no-op.
func (c *Collection) Remove(key any) *Collection {
	if i := c.find(normalizeKey(key)); i >= 0 {
		c.entries = append(c.entries[:i], c.entries[i+1:]...)
	}
	return c
}

// Clear removes every entry in place.
func (c *Collection) Clear() *Collection {
	c.entries = c.entries[:0]
	return c
}

// ─────────────────────────────────────────────────────────────────────────────
// Internals
// ─────────────────────────────────────────────────────────────────────────────

// find returns the position of the entry whose key equals the normalized
// key, or -1.
func (c *Collection) find(key any) int {
	for i, e := range c.entries {
		if e.Key == key {
			return i
		}
	}
	return -1
}

// lookupString resolves a string key against both string and int keys;
// numeric strings match integer-keyed entries.
func (c *Collection) lookupString(key string) (any, bool) {
	if i := c.find(key); i >= 0 {
		return c.entries[i].Value, true
	}
	if n, err := strconv.Atoi(key); err == nil {
		if i := c.find(n); i >= 0 {
			return c.entries[i].Value, true
		}
	}
	return nil, false
}

// nextIntKey returns the smallest integer key strictly greater than every
// existing integer key, starting at 0.
func (c *Collection) nextIntKey() int {
	next := 0
	for _, e := range c.entries {
		if k, ok := e.Key.(int); ok && k >= next {
			next = k + 1
		}
	}
	return next
}

// compareValues orders two values for the default sort: numbers before
// anything numeric-comparable, then strings, then bools, with everything
// else compared by its string form.
func compareValues(a, b any) int {
	an, aIsNum := toFloat(a)
	bn, bIsNum := toFloat(b)
	if aIsNum && bIsNum {
		switch {
		case an < bn:
			return -1
		case an > bn:
			return 1
		}
		return 0
	}
	as, aIsStr := a.(string)
	bs, bIsStr := b.(string)
	if aIsStr && bIsStr {
		switch {
		case as < bs:
			return -1
		case as > bs:
			return 1
		}
		return 0
	}
	af, bf := fmt.Sprintf("%v", a), fmt.Sprintf("%v", b)
	switch {
	case af < bf:
		return -1
	case af > bf:
		return 1
	}
	return 0
}

func toFloat(v any) (float64, bool) {
	switch n := v.(type) {
	case int:
		return float64(n), true
	case int8:
		return float64(n), true
	case int16:
		return float64(n), true
	case int32:
		return float64(n), true
	case int64:
		return float64(n), true
	case uint:
		return float64(n), true
	case uint8:
		return float64(n), true
	case uint16:
		return float64(n), true
	case uint32:
		return float64(n), true
	case uint64:
		return float64(n), true
	case float32:
		return float64(n), true
	case float64:
		return n, true
	}
	return 0, false
}
