package vtree

import "testing"

func TestPathChildDoesNotAlias(t *testing.T) {
	root := Path{1}
	a := root.Child(0)
	b := root.Child(2)

	if len(a) != 2 || a[1] != 0 {
		t.Errorf("Child(0) = %v, want [1 0]", a)
	}
	if b[1] != 2 {
		t.Errorf("Child(2) = %v after Child(0), want [1 2]", b)
	}
	if root[0] != 1 || len(root) != 1 {
		t.Errorf("receiver mutated: %v", root)
	}
}

func TestPathString(t *testing.T) {
	cases := []struct {
		path Path
		want string
	}{
		{nil, "/"},
		{Path{}, "/"},
		{Path{0}, "/0"},
		{Path{0, 2, 13}, "/0/2/13"},
	}
	for _, c := range cases {
		if got := c.path.String(); got != c.want {
			t.Errorf("Path(%v).String() = %q, want %q", []int(c.path), got, c.want)
		}
	}
}

func TestOpString(t *testing.T) {
	cases := map[Op]string{
		OpReplace:      "Replace",
		OpSetText:      "SetText",
		OpUpdateAttrs:  "UpdateAttrs",
		OpUpdateStyles: "UpdateStyles",
		OpInsertChild:  "InsertChild",
		OpRemoveChild:  "RemoveChild",
		OpMoveChild:    "MoveChild",
		Op(0xEE):       "Unknown",
	}
	for op, want := range cases {
		if got := op.String(); got != want {
			t.Errorf("Op(%d).String() = %q, want %q", op, got, want)
		}
	}
}

func TestPatchString(t *testing.T) {
	move := Patch{Op: OpMoveChild, Path: Path{0}, From: 2, To: 0}
	if got := move.String(); got != "MoveChild /0 2->0" {
		t.Errorf("move.String() = %q", got)
	}
	text := Patch{Op: OpSetText, Path: Path{0, 1}, Text: "hi"}
	if got := text.String(); got != `SetText /0/1 "hi"` {
		t.Errorf("text.String() = %q", got)
	}
}
