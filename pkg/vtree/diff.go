package vtree

import "sort"

// Options controls diffing behavior.
type Options struct {
	// StrictKeys makes the differ fail with a DuplicateKeyError when
	// sibling elements share a reconciliation key. The default lenient
	// mode resolves duplicates first-match-wins.
	StrictKeys bool

	// MatchByID matches children by Node.ID (falling back to Key when a
	// node has no ID) instead of by Key alone. Intended for trees whose
	// builder assigns stable UUIDs.
	MatchByID bool
}

// Diff compares two trees and returns the ordered patch list that
// transforms a surface reflecting prev into one reflecting next.
//
// A nil prev means first render: the result is a single Replace patch
// mounting the whole tree at the root. A nil next clears the surface.
// Duplicate sibling keys are resolved first-match-wins; use
// DiffWithOptions for strict failure.
func Diff(prev, next *Node) []Patch {
	patches, _ := DiffWithOptions(prev, next, Options{})
	return patches
}

// DiffWithOptions is Diff with explicit Options. It returns an error
// only in strict-keys mode, on the first duplicate sibling key; the
// partial patch list is discarded in that case.
func DiffWithOptions(prev, next *Node, opts Options) ([]Patch, error) {
	d := &differ{opts: opts}
	d.diff(prev, next, nil)
	if d.err != nil {
		return nil, d.err
	}
	return d.patches, nil
}

type differ struct {
	opts    Options
	patches []Patch
	err     error
}

func (d *differ) emit(p Patch) {
	d.patches = append(d.patches, p)
}

func (d *differ) diff(prev, next *Node, path Path) {
	if d.err != nil {
		return
	}
	if prev == nil && next == nil {
		return
	}

	// First render: mount the whole tree.
	if prev == nil {
		d.emit(Patch{Op: OpReplace, Path: path, Node: next})
		return
	}

	// Unmount.
	if next == nil {
		d.emit(Patch{Op: OpReplace, Path: path})
		return
	}

	// Incompatible shapes replace wholesale; no finer-grained diff is
	// attempted, which bounds worst-case patch size.
	if prev.Kind != next.Kind {
		d.emit(Patch{Op: OpReplace, Path: path, Node: next})
		return
	}

	switch prev.Kind {
	case KindText, KindComment:
		if prev.Text != next.Text {
			d.emit(Patch{Op: OpSetText, Path: path, Text: next.Text})
		}
	case KindElement:
		d.diffElement(prev, next, path)
	}
}

func (d *differ) diffElement(prev, next *Node, path Path) {
	if prev.Tag != next.Tag {
		d.emit(Patch{Op: OpReplace, Path: path, Node: next})
		return
	}

	if added, updated, removed := mapDelta(prev.AttrMap(), next.AttrMap()); added != nil || updated != nil || removed != nil {
		d.emit(Patch{Op: OpUpdateAttrs, Path: path, Added: added, Updated: updated, Removed: removed})
	}
	if added, updated, removed := mapDelta(prev.StyleMap(), next.StyleMap()); added != nil || updated != nil || removed != nil {
		d.emit(Patch{Op: OpUpdateStyles, Path: path, Added: added, Updated: updated, Removed: removed})
	}

	if hasIdentity(prev.Children, d.opts) || hasIdentity(next.Children, d.opts) {
		d.diffKeyedChildren(prev.Children, next.Children, path)
	} else {
		d.diffPositionalChildren(prev.Children, next.Children, path)
	}
}

// diffPositionalChildren matches index i of prev to index i of next.
// Trailing length differences become trailing inserts/removes. This is
// O(n) but a head insertion degrades to per-position rewrites; keyed
// mode exists precisely to avoid that.
func (d *differ) diffPositionalChildren(prev, next []*Node, path Path) {
	n := len(prev)
	if len(next) < n {
		n = len(next)
	}

	for i := 0; i < n; i++ {
		d.diff(prev[i], next[i], path.Child(i))
	}

	// Removals run back to front so earlier indices stay valid while
	// the list shrinks.
	for i := len(prev) - 1; i >= len(next); i-- {
		d.emit(Patch{Op: OpRemoveChild, Path: path, Index: i})
	}
	for i := len(prev); i < len(next); i++ {
		d.emit(Patch{Op: OpInsertChild, Path: path, Index: i, Node: next[i]})
	}
}

// mapDelta computes the added/updated/removed delta between two
// effective mappings. Removed keys are sorted for determinism. All
// three results are nil when the maps agree.
func mapDelta(prev, next map[string]string) (added, updated map[string]string, removed []string) {
	for k, nv := range next {
		pv, ok := prev[k]
		switch {
		case !ok:
			if added == nil {
				added = make(map[string]string)
			}
			added[k] = nv
		case pv != nv:
			if updated == nil {
				updated = make(map[string]string)
			}
			updated[k] = nv
		}
	}
	for k := range prev {
		if _, ok := next[k]; !ok {
			removed = append(removed, k)
		}
	}
	sort.Strings(removed)
	return added, updated, removed
}
