// Package apply replays patch lists produced by vtree.Diff against a
// rendering surface.
//
// The Surface is the capability boundary to the live rendering target
// (a browser DOM binding, a remote client, or the in-memory reference
// surface in this package). Application is strictly ordered and
// fail-fast: a surface error aborts the remainder of the list, since
// later patches may rely on structure established by earlier ones. A
// surface is single-writer; confine application to one goroutine per
// surface.
package apply

import (
	"fmt"

	"github.com/viewtree-dev/viewtree/pkg/vtree"
)

// Surface is the capability set a rendering target must expose. Each
// call must complete, or report failure, before the next is issued.
//
// Node-addressed calls receive the path of the target node; the child
// calls receive the path of the parent element.
type Surface interface {
	// Replace replaces the node at path with a fresh rendering of node.
	// An empty path with a nil node clears the surface; an empty path
	// with a non-nil node is a full mount.
	Replace(path vtree.Path, node *vtree.Node) error

	// SetText updates the content of the text or comment node at path.
	SetText(path vtree.Path, text string) error

	// UpdateAttrs applies an attribute delta to the element at path.
	UpdateAttrs(path vtree.Path, added, updated map[string]string, removed []string) error

	// UpdateStyles applies a style rule delta to the element at path.
	// Keys are css.Style keys ("prop" or "pseudo:prop").
	UpdateStyles(path vtree.Path, added, updated map[string]string, removed []string) error

	// InsertChild inserts a fresh rendering of node under parent at
	// index, shifting subsequent children right.
	InsertChild(parent vtree.Path, index int, node *vtree.Node) error

	// RemoveChild removes the child of parent at index.
	RemoveChild(parent vtree.Path, index int) error

	// MoveChild detaches the child of parent at from and reinserts it
	// at to (an index into the list after the detach).
	MoveChild(parent vtree.Path, from, to int) error
}

// SurfaceError reports a failed patch application. Patches after Index
// were not applied; the surface may be in an intermediate state and the
// host should either retry from a known tree or force a full remount.
type SurfaceError struct {
	Index int         // position of the failed patch in the list
	Patch vtree.Patch // the failed patch
	Err   error       // the surface's failure
}

func (e *SurfaceError) Error() string {
	return fmt.Sprintf("apply: patch %d (%s): %v", e.Index, e.Patch, e.Err)
}

func (e *SurfaceError) Unwrap() error { return e.Err }
