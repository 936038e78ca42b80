package vtree

import (
	"strconv"
	"strings"
)

// Op is the type of patch operation.
type Op uint8

const (
	OpReplace      Op = 0x01 // Replace the node at Path (nil Node clears the surface)
	OpSetText      Op = 0x02 // Update text/comment content at Path
	OpUpdateAttrs  Op = 0x03 // Apply an attribute delta at Path
	OpUpdateStyles Op = 0x04 // Apply a style rule delta at Path
	OpInsertChild  Op = 0x05 // Insert Node under Path at Index
	OpRemoveChild  Op = 0x06 // Remove the child of Path at Index
	OpMoveChild    Op = 0x07 // Move a child of Path from From to To (keyed reorders only)
)

// String returns the string representation of the Op.
func (op Op) String() string {
	switch op {
	case OpReplace:
		return "Replace"
	case OpSetText:
		return "SetText"
	case OpUpdateAttrs:
		return "UpdateAttrs"
	case OpUpdateStyles:
		return "UpdateStyles"
	case OpInsertChild:
		return "InsertChild"
	case OpRemoveChild:
		return "RemoveChild"
	case OpMoveChild:
		return "MoveChild"
	default:
		return "Unknown"
	}
}

// Path addresses a node as the sequence of child indices from the tree
// root. The empty path addresses the root itself.
type Path []int

// Child returns a new path extended by one index. The receiver is not
// modified and the result does not alias it.
func (p Path) Child(i int) Path {
	out := make(Path, len(p)+1)
	copy(out, p)
	out[len(p)] = i
	return out
}

// String renders the path as "/" for the root or "/0/2" style indices.
func (p Path) String() string {
	if len(p) == 0 {
		return "/"
	}
	var b strings.Builder
	for _, i := range p {
		b.WriteByte('/')
		b.WriteString(strconv.Itoa(i))
	}
	return b.String()
}

// Patch is a single surface mutation. Patch lists are ordered: later
// patches may rely on indices established by earlier ones, so they must
// be applied exactly in sequence.
//
// Path addresses the target node for Replace, SetText, UpdateAttrs and
// UpdateStyles, and the parent element for the child operations.
type Patch struct {
	Op   Op
	Path Path

	Node *Node  // Replace, InsertChild
	Text string // SetText

	Index int // InsertChild, RemoveChild
	From  int // MoveChild
	To    int // MoveChild

	Added   map[string]string // UpdateAttrs, UpdateStyles
	Updated map[string]string // UpdateAttrs, UpdateStyles
	Removed []string          // UpdateAttrs, UpdateStyles (sorted)
}

// String renders a short human-readable form, used by the CLI and in
// test failures.
func (p Patch) String() string {
	var b strings.Builder
	b.WriteString(p.Op.String())
	b.WriteByte(' ')
	b.WriteString(p.Path.String())
	switch p.Op {
	case OpSetText:
		b.WriteString(" \"" + p.Text + "\"")
	case OpInsertChild, OpRemoveChild:
		b.WriteString(" @" + strconv.Itoa(p.Index))
	case OpMoveChild:
		b.WriteString(" " + strconv.Itoa(p.From) + "->" + strconv.Itoa(p.To))
	case OpUpdateAttrs, OpUpdateStyles:
		b.WriteString(" +" + strconv.Itoa(len(p.Added)) +
			" ~" + strconv.Itoa(len(p.Updated)) +
			" -" + strconv.Itoa(len(p.Removed)))
	}
	return b.String()
}
