package vtree

import (
	"errors"
	"testing"
)

func keyedList(t *testing.T, keys ...string) *Node {
	t.Helper()
	items := make([]*Node, len(keys))
	for i, k := range keys {
		items[i] = mustElement(t, "li", Pair("key", k), k)
	}
	return mustElement(t, "ul", items)
}

func countOps(patches []Patch) map[Op]int {
	m := make(map[Op]int)
	for _, p := range patches {
		m[p.Op]++
	}
	return m
}

func TestKeyedNoChange(t *testing.T) {
	patches := Diff(keyedList(t, "a", "b", "c"), keyedList(t, "a", "b", "c"))
	if len(patches) != 0 {
		t.Errorf("Expected 0 patches, got %v", patches)
	}
}

// Rotating [a b c] to [c a b] is a single move; nothing is re-created.
func TestKeyedRotation(t *testing.T) {
	patches := Diff(keyedList(t, "a", "b", "c"), keyedList(t, "c", "a", "b"))

	if len(patches) != 1 {
		t.Fatalf("Expected 1 patch, got %d: %v", len(patches), patches)
	}
	p := patches[0]
	if p.Op != OpMoveChild || p.From != 2 || p.To != 0 {
		t.Errorf("patch = %v, want MoveChild 2->0", p)
	}
}

func TestKeyedSwap(t *testing.T) {
	patches := Diff(keyedList(t, "a", "b"), keyedList(t, "b", "a"))

	if len(patches) != 1 {
		t.Fatalf("Expected 1 patch, got %d: %v", len(patches), patches)
	}
	if patches[0].Op != OpMoveChild {
		t.Errorf("Op = %v, want MoveChild", patches[0].Op)
	}
}

// A shuffle of n matched children needs n minus the longest stable run
// moves and never any insert or remove.
func TestKeyedShuffleMovesOnly(t *testing.T) {
	patches := Diff(keyedList(t, "a", "b", "c", "d"), keyedList(t, "b", "d", "a", "c"))

	ops := countOps(patches)
	if ops[OpInsertChild] != 0 || ops[OpRemoveChild] != 0 || ops[OpReplace] != 0 {
		t.Fatalf("shuffle produced non-move structure ops: %v", patches)
	}
	// Longest stable run among old ranks [1 3 0 2] has length 2.
	if ops[OpMoveChild] != 2 {
		t.Errorf("MoveChild count = %d, want 2: %v", ops[OpMoveChild], patches)
	}
}

func TestKeyedReversal(t *testing.T) {
	patches := Diff(keyedList(t, "a", "b", "c", "d", "e"), keyedList(t, "e", "d", "c", "b", "a"))

	ops := countOps(patches)
	if ops[OpMoveChild] != 4 {
		t.Errorf("MoveChild count = %d, want 4: %v", ops[OpMoveChild], patches)
	}
	if len(patches) != 4 {
		t.Errorf("Expected moves only, got %v", patches)
	}
}

func TestKeyedInsertMiddle(t *testing.T) {
	patches := Diff(keyedList(t, "a", "c"), keyedList(t, "a", "b", "c"))

	if len(patches) != 1 {
		t.Fatalf("Expected 1 patch, got %d: %v", len(patches), patches)
	}
	p := patches[0]
	if p.Op != OpInsertChild || p.Index != 1 {
		t.Errorf("patch = %v, want InsertChild @1", p)
	}
	if p.Node == nil || p.Node.Key != "b" {
		t.Errorf("inserted node = %v, want key b", p.Node)
	}
}

func TestKeyedRemoveMiddle(t *testing.T) {
	patches := Diff(keyedList(t, "a", "b", "c"), keyedList(t, "a", "c"))

	if len(patches) != 1 {
		t.Fatalf("Expected 1 patch, got %d: %v", len(patches), patches)
	}
	if patches[0].Op != OpRemoveChild || patches[0].Index != 1 {
		t.Errorf("patch = %v, want RemoveChild @1", patches[0])
	}
}

// Removals are emitted back to front so each index is valid against
// the surface state left by the previous patch.
func TestKeyedRemovalOrder(t *testing.T) {
	patches := Diff(keyedList(t, "a", "b", "c", "d"), keyedList(t, "b", "d"))

	if len(patches) != 2 {
		t.Fatalf("Expected 2 patches, got %d: %v", len(patches), patches)
	}
	if patches[0].Op != OpRemoveChild || patches[0].Index != 2 {
		t.Errorf("patches[0] = %v, want RemoveChild @2", patches[0])
	}
	if patches[1].Op != OpRemoveChild || patches[1].Index != 0 {
		t.Errorf("patches[1] = %v, want RemoveChild @0", patches[1])
	}
}

// Content changes on moved children land at the child's new path.
func TestKeyedRecursionAtNewPath(t *testing.T) {
	prev := mustElement(t, "ul",
		mustElement(t, "li", Pair("key", "a"), "old"),
		mustElement(t, "li", Pair("key", "b"), "keep"),
	)
	next := mustElement(t, "ul",
		mustElement(t, "li", Pair("key", "b"), "keep"),
		mustElement(t, "li", Pair("key", "a"), "new"),
	)

	patches := Diff(prev, next)

	if len(patches) != 2 {
		t.Fatalf("Expected 2 patches, got %d: %v", len(patches), patches)
	}
	if patches[0].Op != OpMoveChild {
		t.Errorf("patches[0] = %v, want MoveChild", patches[0])
	}
	if patches[1].Op != OpSetText || patches[1].Path.String() != "/1/0" {
		t.Errorf("patches[1] = %v, want SetText at /1/0", patches[1])
	}
	if patches[1].Text != "new" {
		t.Errorf("Text = %q, want new", patches[1].Text)
	}
}

// Children without a key never match across versions in keyed mode.
func TestKeyedUnkeyedSiblingsReplaced(t *testing.T) {
	prev := mustElement(t, "ul",
		mustElement(t, "li", Pair("key", "a"), "a"),
		mustElement(t, "li", "loose"),
	)
	next := mustElement(t, "ul",
		mustElement(t, "li", Pair("key", "a"), "a"),
		mustElement(t, "li", "loose"),
	)

	patches := Diff(prev, next)

	ops := countOps(patches)
	if ops[OpRemoveChild] != 1 || ops[OpInsertChild] != 1 {
		t.Errorf("unkeyed sibling not recreated: %v", patches)
	}
}

func TestKeyedDuplicateLenient(t *testing.T) {
	prev := mustElement(t, "ul",
		mustElement(t, "li", Pair("key", "a"), "first"),
		mustElement(t, "li", Pair("key", "a"), "second"),
	)
	next := mustElement(t, "ul",
		mustElement(t, "li", Pair("key", "a"), "first"),
	)

	// First occurrence wins; the second duplicate is removed.
	patches := Diff(prev, next)

	if len(patches) != 1 || patches[0].Op != OpRemoveChild || patches[0].Index != 1 {
		t.Errorf("patches = %v, want single RemoveChild @1", patches)
	}
}

func TestKeyedDuplicateStrict(t *testing.T) {
	prev := mustElement(t, "ul",
		mustElement(t, "li", Pair("key", "a")),
		mustElement(t, "li", Pair("key", "a")),
	)
	next := mustElement(t, "ul", mustElement(t, "li", Pair("key", "a")))

	_, err := DiffWithOptions(prev, next, Options{StrictKeys: true})
	if err == nil {
		t.Fatal("expected duplicate key error")
	}
	if !errors.Is(err, ErrDuplicateKey) {
		t.Errorf("error %v does not unwrap to ErrDuplicateKey", err)
	}
}

func TestKeyedDuplicateStrictInNext(t *testing.T) {
	prev := mustElement(t, "ul", mustElement(t, "li", Pair("key", "a")))
	next := mustElement(t, "ul",
		mustElement(t, "li", Pair("key", "a")),
		mustElement(t, "li", Pair("key", "a")),
	)

	if _, err := DiffWithOptions(prev, next, Options{StrictKeys: true}); err == nil {
		t.Fatal("expected duplicate key error for next-side duplicates")
	}
}

func TestMatchByID(t *testing.T) {
	idA, idB := NewID(), NewID()
	prev := mustElement(t, "div",
		mustElement(t, "section", Pair("id", idA), "a"),
		mustElement(t, "section", Pair("id", idB), "b"),
	)
	next := mustElement(t, "div",
		mustElement(t, "section", Pair("id", idB), "b"),
		mustElement(t, "section", Pair("id", idA), "a"),
	)

	patches, err := DiffWithOptions(prev, next, Options{MatchByID: true})
	if err != nil {
		t.Fatalf("DiffWithOptions failed: %v", err)
	}
	if len(patches) != 1 || patches[0].Op != OpMoveChild {
		t.Errorf("patches = %v, want single MoveChild", patches)
	}
}

func TestLIS(t *testing.T) {
	cases := []struct {
		seq     []int
		wantLen int
	}{
		{nil, 0},
		{[]int{5}, 1},
		{[]int{0, 1, 2, 3}, 4},
		{[]int{3, 2, 1, 0}, 1},
		{[]int{1, 3, 0, 2}, 2},
		{[]int{2, 0, 1}, 2},
	}
	for _, c := range cases {
		got := lis(c.seq)
		if len(got) != c.wantLen {
			t.Errorf("lis(%v) = %v, want length %d", c.seq, got, c.wantLen)
			continue
		}
		for i := 1; i < len(got); i++ {
			if got[i] <= got[i-1] || c.seq[got[i]] <= c.seq[got[i-1]] {
				t.Errorf("lis(%v) = %v is not strictly increasing", c.seq, got)
			}
		}
	}
}
