package collections_test

import (
	"strings"
	"testing"

	"github.com/hasbyte1/go-support/collections"
)

func assertValues(t *testing.T, c *collections.Collection, want []any) {
	t.Helper()
	got := c.Values()
	if len(got) != len(want) {
		t.Fatalf("values length: got %d want %d  (got=%v want=%v)", len(got), len(want), got, want)
	}
	for i := range got {
		if got[i] != want[i] {
			t.Fatalf("value %d: got %v want %v", i, got[i], want[i])
		}
	}
}

func assertKeys(t *testing.T, c *collections.Collection, want []any) {
	t.Helper()
	got := c.Keys()
	if len(got) != len(want) {
		t.Fatalf("keys length: got %d want %d  (got=%v want=%v)", len(got), len(want), got, want)
	}
	for i := range got {
		if got[i] != want[i] {
			t.Fatalf("key %d: got %v want %v", i, got[i], want[i])
		}
	}
}

// ─── Constructors & accessors ────────────────────────────────────────────────

func TestNewAssignsDenseIntKeys(t *testing.T) {
	c := collections.New("a", "b", "c")
	assertKeys(t, c, []any{0, 1, 2})
	assertValues(t, c, []any{"a", "b", "c"})
}

func TestFromMapIsDeterministic(t *testing.T) {
	m := map[string]any{"b": 2, "a": 1, "c": 3}
	c := collections.FromMap(m)
	assertKeys(t, c, []any{"a", "b", "c"})
}

func TestCountAndEmptiness(t *testing.T) {
	if n := collections.New(1, 2, 3).Count(); n != 3 {
		t.Fatalf("Count = %d; want 3", n)
	}
	if !collections.Empty().IsEmpty() {
		t.Fatal("Empty() should be empty")
	}
	if !collections.New(1).IsNotEmpty() {
		t.Fatal("New(1) should not be empty")
	}
}

func TestGet(t *testing.T) {
	c := collections.Empty().Set("name", "Desk").Set("price", 200)
	if v := c.Get("name"); v != "Desk" {
		t.Fatalf("Get name = %v; want Desk", v)
	}
	if v := c.Get("missing", "fallback"); v != "fallback" {
		t.Fatalf("Get missing = %v; want fallback", v)
	}
}

func TestGetPresentNilIsNotDefaulted(t *testing.T) {
	c := collections.Empty().Set("null_value", nil)
	if v := c.Get("null_value", "default"); v != nil {
		t.Fatalf("Get null_value = %v; want nil", v)
	}
	if !c.Has("null_value") {
		t.Fatal("Has should count a present nil value")
	}
}

func TestGetDottedPath(t *testing.T) {
	c := collections.Empty().Set("address", map[string]any{"street": "123 Main St"})
	if v := c.Get("address.street"); v != "123 Main St" {
		t.Fatalf("Get address.street = %v; want 123 Main St", v)
	}
	if !c.Has("address.street") {
		t.Fatal("Has address.street should be true")
	}
}

func TestGetLiteralDottedKeyWins(t *testing.T) {
	c := collections.Empty().
		Set("a.b", "literal").
		Set("a", map[string]any{"b": "nested"})
	if v := c.Get("a.b"); v != "literal" {
		t.Fatalf("Get a.b = %v; want literal", v)
	}
}

func TestGetIntKeyViaDottedPath(t *testing.T) {
	c := collections.Empty().Set("items", collections.New("x", "y"))
	if v := c.Get("items.1"); v != "y" {
		t.Fatalf("Get items.1 = %v; want y", v)
	}
}

func TestGetOrFail(t *testing.T) {
	c := collections.New(1)
	if _, err := c.GetOrFail("missing"); err == nil {
		t.Fatal("GetOrFail should fail for a missing key")
	}
	v, err := c.GetOrFail(0)
	if err != nil || v != 1 {
		t.Fatalf("GetOrFail(0) = %v, %v", v, err)
	}
}

func TestFirstLast(t *testing.T) {
	c := collections.New("a", "b", "c")
	if v, ok := c.First(); !ok || v != "a" {
		t.Fatalf("First = %v, %v", v, ok)
	}
	if v, ok := c.Last(); !ok || v != "c" {
		t.Fatalf("Last = %v, %v", v, ok)
	}
	if _, ok := collections.Empty().First(); ok {
		t.Fatal("First on empty should report false")
	}
}

// ─── Transformations ─────────────────────────────────────────────────────────

func TestFilterPreservesKeys(t *testing.T) {
	c := collections.New(1, 2, 3, 4)
	even := c.Filter(func(value, _ any) bool { return value.(int)%2 == 0 })
	assertKeys(t, even, []any{1, 3})
	assertValues(t, even, []any{2, 4})
}

func TestMapPreservesKeys(t *testing.T) {
	c := collections.Empty().Set("a", 1).Set("b", 2)
	doubled := c.Map(func(value, _ any) any { return value.(int) * 2 })
	assertKeys(t, doubled, []any{"a", "b"})
	assertValues(t, doubled, []any{2, 4})
}

func TestReduce(t *testing.T) {
	sum := collections.New(1, 2, 3, 4, 5).Reduce(func(carry, value any) any {
		return carry.(int) + value.(int)
	}, 0)
	if sum != 15 {
		t.Fatalf("Reduce = %v; want 15", sum)
	}
}

func TestMergeStringKeysLaterWins(t *testing.T) {
	a := collections.Empty().Set("name", "Desk").Set("price", 100)
	b := collections.Empty().Set("price", 200).Set("discount", false)
	merged := a.Merge(b)
	assertKeys(t, merged, []any{"name", "price", "discount"})
	if v := merged.Get("price"); v != 200 {
		t.Fatalf("merged price = %v; want 200", v)
	}
}

func TestMergeIntKeysReindex(t *testing.T) {
	a := collections.New("a", "b")
	b := collections.New("c")
	merged := a.Merge(b)
	assertKeys(t, merged, []any{0, 1, 2})
	assertValues(t, merged, []any{"a", "b", "c"})
}

func TestSlicePreservesKeys(t *testing.T) {
	c := collections.New("a", "b", "c", "d", "e")
	s := c.Slice(1, 3)
	assertKeys(t, s, []any{1, 2, 3})
	assertValues(t, s, []any{"b", "c", "d"})

	tail := c.Slice(-2)
	assertValues(t, tail, []any{"d", "e"})

	if !c.Slice(10).IsEmpty() {
		t.Fatal("Slice past the end should be empty")
	}
}

func TestChunk(t *testing.T) {
	chunks := collections.New(1, 2, 3, 4, 5).Chunk(2)
	if len(chunks) != 3 {
		t.Fatalf("Chunk count = %d; want 3", len(chunks))
	}
	assertValues(t, chunks[0], []any{1, 2})
	assertKeys(t, chunks[1], []any{2, 3}) // original keys kept
	assertValues(t, chunks[2], []any{5})

	if n := len(collections.New(1).Chunk(0)); n != 0 {
		t.Fatalf("Chunk(0) = %d chunks; want 0", n)
	}
}

func TestPluck(t *testing.T) {
	c := collections.New(
		map[string]any{"product": "Desk", "price": 200},
		map[string]any{"product": "Chair", "price": 100},
		map[string]any{"product": "Bookcase"},
	)
	assertValues(t, c.Pluck("price"), []any{200, 100, nil})
}

func TestGroupBy(t *testing.T) {
	c := collections.New(
		map[string]any{"name": "Desk", "type": "furniture"},
		map[string]any{"name": "Chair", "type": "furniture"},
		map[string]any{"name": "Lamp", "type": "lighting"},
		map[string]any{"name": "Mystery"},
	)
	groups := c.GroupBy("type")
	assertKeys(t, groups, []any{"furniture", "lighting", nil})

	furniture := groups.Get("furniture").(*collections.Collection)
	if furniture.Count() != 2 {
		t.Fatalf("furniture count = %d; want 2", furniture.Count())
	}
	unknown := groups.Get(nil).(*collections.Collection)
	if unknown.Count() != 1 {
		t.Fatalf("nil bucket count = %d; want 1", unknown.Count())
	}
}

func TestSortDefaultAscending(t *testing.T) {
	c := collections.New(5, 3, 1, 4, 2)
	assertValues(t, c.Sort(), []any{1, 2, 3, 4, 5})
}

func TestSortKeepsKeysAttached(t *testing.T) {
	c := collections.New(5, 3, 1)
	sorted := c.Sort()
	assertKeys(t, sorted, []any{2, 1, 0})
	assertValues(t, sorted, []any{1, 3, 5})
}

func TestSortWithComparator(t *testing.T) {
	c := collections.New("bb", "a", "ccc")
	byLen := c.Sort(func(a, b collections.Entry) bool {
		return len(a.Value.(string)) > len(b.Value.(string))
	})
	assertValues(t, byLen, []any{"ccc", "bb", "a"})
}

func TestReverse(t *testing.T) {
	c := collections.Empty().Set("a", 1).Set("b", 2).Set("c", 3)
	r := c.Reverse()
	assertKeys(t, r, []any{"c", "b", "a"})
	assertValues(t, r, []any{3, 2, 1})
}

// ─── Mutators ────────────────────────────────────────────────────────────────

func TestAddUsesNextFreeIntKey(t *testing.T) {
	c := collections.Empty().Set(5, "five").Set("name", "Desk")
	c.Add("next")
	assertKeys(t, c, []any{5, "name", 6})
}

func TestSetUpsert(t *testing.T) {
	c := collections.Empty().Set("a", 1)
	c.Set("a", 2).Set("b", 3)
	assertKeys(t, c, []any{"a", "b"})
	assertValues(t, c, []any{2, 3})
}

func TestRemove(t *testing.T) {
	c := collections.New("a", "b", "c")
	c.Remove(1)
	assertValues(t, c, []any{"a", "c"})
	c.Remove(99) // no-op
	if c.Count() != 2 {
		t.Fatal("Remove of absent key must be a no-op")
	}
}

func TestAddThenRemoveRestoresState(t *testing.T) {
	c := collections.New(1, 2, 3)
	before := c.All()
	c.Add(99)
	c.Remove(3) // the auto-assigned key
	after := c.All()
	if len(before) != len(after) {
		t.Fatalf("length changed: %d → %d", len(before), len(after))
	}
	for i := range before {
		if before[i] != after[i] {
			t.Fatalf("entry %d changed: %v → %v", i, before[i], after[i])
		}
	}
}

func TestClear(t *testing.T) {
	c := collections.New(1, 2, 3)
	if !c.Clear().IsEmpty() {
		t.Fatal("Clear should empty the collection in place")
	}
}

// ─── Immutability of transformations ─────────────────────────────────────────

func TestTransformationsDoNotMutateReceiver(t *testing.T) {
	c := collections.New(3, 1, 2)
	snapshot := c.String()

	c.Filter(func(value, _ any) bool { return value.(int) > 1 })
	c.Map(func(value, _ any) any { return 0 })
	c.Slice(1)
	c.Chunk(2)
	c.Merge(collections.New(9))
	c.Sort()
	c.Reverse()
	c.Pluck("x")
	c.GroupBy("x")

	if c.String() != snapshot {
		t.Fatalf("receiver mutated by a transformation:\nbefore %s\nafter  %s", snapshot, c.String())
	}
}

// ─── Serialization ───────────────────────────────────────────────────────────

func TestToJSONListForm(t *testing.T) {
	b, err := collections.New(1, 2, 3).ToJSON()
	if err != nil {
		t.Fatalf("ToJSON: %v", err)
	}
	want := "[\n  1,\n  2,\n  3\n]"
	if string(b) != want {
		t.Fatalf("ToJSON = %q; want %q", b, want)
	}
}

func TestToJSONObjectFormKeepsOrder(t *testing.T) {
	c := collections.Empty().Set("z", 1).Set("a", 2)
	b, err := c.ToJSON()
	if err != nil {
		t.Fatalf("ToJSON: %v", err)
	}
	s := string(b)
	if strings.Index(s, `"z"`) > strings.Index(s, `"a"`) {
		t.Fatalf("insertion order lost: %s", s)
	}
}

func TestToJSONLeavesSlashesUnescaped(t *testing.T) {
	c := collections.Empty().Set("url", "https://example.com/a/b")
	b, err := c.ToJSON()
	if err != nil {
		t.Fatalf("ToJSON: %v", err)
	}
	if strings.Contains(string(b), `\/`) {
		t.Fatalf("slashes escaped: %s", b)
	}
	if !strings.Contains(string(b), "https://example.com/a/b") {
		t.Fatalf("url mangled: %s", b)
	}
}

func TestToJSONNestedCollection(t *testing.T) {
	inner := collections.New("x", "y")
	c := collections.Empty().Set("items", inner)
	b, err := c.ToJSON()
	if err != nil {
		t.Fatalf("ToJSON: %v", err)
	}
	if !strings.Contains(string(b), "[") {
		t.Fatalf("nested collection not rendered as array: %s", b)
	}
}

// ─── Macros ──────────────────────────────────────────────────────────────────

func TestMacro(t *testing.T) {
	defer collections.FlushMacros()
	collections.RegisterMacro("evens", func(c *collections.Collection, _ ...any) any {
		return c.Filter(func(value, _ any) bool {
			n, ok := value.(int)
			return ok && n%2 == 0
		})
	})
	if !collections.HasMacro("evens") {
		t.Fatal("macro should be registered")
	}
	out, err := collections.New(1, 2, 3, 4).Macro("evens")
	if err != nil {
		t.Fatalf("Macro: %v", err)
	}
	assertValues(t, out.(*collections.Collection), []any{2, 4})
}

func TestMacroNotFound(t *testing.T) {
	collections.FlushMacros()
	if _, err := collections.New(1).Macro("nope"); err == nil {
		t.Fatal("unregistered macro should fail")
	}
}
