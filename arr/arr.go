package arr

// ─────────────────────────────────────────────────────────────────────────────
// Sequence helpers
// ─────────────────────────────────────────────────────────────────────────────

// First returns the first element of items, or the first element for which
// fn(value, index) returns true when fn is non-nil. Returns def[0] (or nil)
// when items is empty or no element matches.
func First(items []any, fn func(value any, index int) bool, def ...any) any {
	if fn == nil {
		if len(items) == 0 {
			return fallback(def)
		}
		return items[0]
	}
	for i, item := range items {
		if fn(item, i) {
			return item
		}
	}
	return fallback(def)
}

// Last is [First] applied to the reversed sequence: without fn it returns
// the final element; with fn it returns the last matching element. The
// predicate receives positions in the reversed order.
func Last(items []any, fn func(value any, index int) bool, def ...any) any {
	reversed := make([]any, len(items))
	for i, item := range items {
		reversed[len(items)-1-i] = item
	}
	return First(reversed, fn, def...)
}

// Wrap wraps value in a []any. A nil value yields an empty slice, a []any
// is returned unchanged, other slices and arrays are converted element-wise,
// and anything else becomes a single-element slice.
func Wrap(value any) []any {
	if value == nil {
		return []any{}
	}
	if seq, ok := asSequence(value); ok {
		return seq
	}
	return []any{value}
}

// Flatten flattens a sequence of values into a single []any, descending into
// nested sequences. With no depth argument the flattening is unlimited.
//
// A depth of 1 (or less) splices exactly one level: immediate child
// sequences contribute their elements, and deeper sequences are kept intact.
//
//	Flatten([]any{1, []any{2, []any{3, 4}}, 5})     // → [1 2 3 4 5]
//	Flatten([]any{1, []any{2, []any{3, 4}}, 5}, 1)  // → [1 2 [3 4] 5]
func Flatten(items []any, depth ...int) []any {
	d := 0 // unlimited
	if len(depth) > 0 {
		d = depth[0]
		if d < 1 {
			d = 1
		}
	}
	return flattenTo(make([]any, 0, len(items)), items, d)
}

// flattenTo appends items to out, splicing nested sequences. depth == 0
// means unlimited; depth == 1 splices children without recursing.
func flattenTo(out, items []any, depth int) []any {
	for _, item := range items {
		seq, ok := asSequence(item)
		if !ok {
			out = append(out, item)
			continue
		}
		if depth == 1 {
			out = append(out, seq...)
			continue
		}
		next := depth
		if next > 0 {
			next--
		}
		out = flattenTo(out, seq, next)
	}
	return out
}
