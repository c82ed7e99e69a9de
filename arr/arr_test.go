package arr_test

import (
	"testing"

	"github.com/hasbyte1/go-support/arr"
)

func assertAnySlice(t *testing.T, got, want []any) {
	t.Helper()
	if len(got) != len(want) {
		t.Fatalf("slice length: got %d want %d  (got=%v want=%v)", len(got), len(want), got, want)
	}
	for i := range got {
		if got[i] != want[i] {
			t.Fatalf("index %d: got %v want %v", i, got[i], want[i])
		}
	}
}

// ─── First / Last ─────────────────────────────────────────────────────────────

func TestFirst(t *testing.T) {
	if v := arr.First([]any{10, 20, 30}, nil); v != 10 {
		t.Fatalf("First = %v; want 10", v)
	}
	if v := arr.First([]any{}, nil, "empty"); v != "empty" {
		t.Fatalf("First on empty = %v; want default", v)
	}
	if v := arr.First([]any{}, nil); v != nil {
		t.Fatalf("First on empty without default = %v; want nil", v)
	}
}

func TestFirstWithPredicate(t *testing.T) {
	items := []any{1, 2, 3, 4}
	v := arr.First(items, func(value any, _ int) bool { return value.(int) > 2 })
	if v != 3 {
		t.Fatalf("First predicate = %v; want 3", v)
	}
	v = arr.First(items, func(value any, _ int) bool { return value.(int) > 10 }, -1)
	if v != -1 {
		t.Fatalf("First no match = %v; want -1", v)
	}
}

func TestLast(t *testing.T) {
	if v := arr.Last([]any{10, 20, 30}, nil); v != 30 {
		t.Fatalf("Last = %v; want 30", v)
	}
	if v := arr.Last([]any{}, nil, "empty"); v != "empty" {
		t.Fatalf("Last on empty = %v; want default", v)
	}
}

func TestLastWithPredicate(t *testing.T) {
	items := []any{1, 2, 3, 4}
	v := arr.Last(items, func(value any, _ int) bool { return value.(int) < 3 })
	if v != 2 {
		t.Fatalf("Last predicate = %v; want 2", v)
	}
}

// ─── Wrap ─────────────────────────────────────────────────────────────────────

func TestWrap(t *testing.T) {
	if got := arr.Wrap(nil); len(got) != 0 {
		t.Fatalf("Wrap(nil) = %v; want []", got)
	}
	assertAnySlice(t, arr.Wrap("hello"), []any{"hello"})

	seq := []any{1, 2}
	got := arr.Wrap(seq)
	assertAnySlice(t, got, []any{1, 2})

	// Typed slices are converted element-wise rather than nested.
	assertAnySlice(t, arr.Wrap([]int{1, 2, 3}), []any{1, 2, 3})
}

// ─── Flatten ──────────────────────────────────────────────────────────────────

func TestFlattenUnlimited(t *testing.T) {
	nested := []any{1, []any{2, []any{3, []any{4}}}, 5}
	assertAnySlice(t, arr.Flatten(nested), []any{1, 2, 3, 4, 5})
}

func TestFlattenDepthOne(t *testing.T) {
	nested := []any{1, []any{2, []any{3, 4}}, 5}
	got := arr.Flatten(nested, 1)
	if len(got) != 4 {
		t.Fatalf("Flatten depth 1 length = %d; want 4  (got=%v)", len(got), got)
	}
	if got[0] != 1 || got[1] != 2 || got[3] != 5 {
		t.Fatalf("Flatten depth 1 = %v", got)
	}
	inner, ok := got[2].([]any)
	if !ok {
		t.Fatalf("element 2 = %T; want the intact inner sequence", got[2])
	}
	assertAnySlice(t, inner, []any{3, 4})
}

func TestFlattenDepthBelowOneSplicesOneLevel(t *testing.T) {
	nested := []any{1, []any{2, []any{3}}}
	zero := arr.Flatten(nested, 0)
	one := arr.Flatten(nested, 1)
	if len(zero) != len(one) {
		t.Fatalf("depth 0 and depth 1 should behave alike: %v vs %v", zero, one)
	}
}

func TestFlattenDepthTwo(t *testing.T) {
	nested := []any{[]any{[]any{[]any{"deep"}}}}
	got := arr.Flatten(nested, 2)
	if len(got) != 1 {
		t.Fatalf("Flatten depth 2 = %v", got)
	}
	inner, ok := got[0].([]any)
	if !ok || inner[0] != "deep" {
		t.Fatalf("Flatten depth 2 inner = %v", got[0])
	}
}
