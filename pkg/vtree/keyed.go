package vtree

import "sort"

// identity returns the reconciliation identity of a child: its Key, or
// its ID when diffing with MatchByID. Empty means no identity; such
// children never match across versions in keyed mode.
func identity(n *Node, opts Options) string {
	if n == nil {
		return ""
	}
	if opts.MatchByID && n.ID != "" {
		return n.ID
	}
	return n.Key
}

func hasIdentity(children []*Node, opts Options) bool {
	for _, c := range children {
		if identity(c, opts) != "" {
			return true
		}
	}
	return false
}

// matchPair links an old child to the new child with the same identity.
type matchPair struct {
	oldIdx int
	newIdx int
}

// diffKeyedChildren reconciles children by identity. Emission order per
// parent is removals (back to front), moves, inserts (front to back),
// then recursion into matched pairs at their new-index paths; every
// index in every patch is exact against the surface state produced by
// the preceding patches.
func (d *differ) diffKeyedChildren(prev, next []*Node, path Path) {
	oldIndex := make(map[string]int, len(prev))
	for i, c := range prev {
		k := identity(c, d.opts)
		if k == "" {
			continue
		}
		if _, dup := oldIndex[k]; dup {
			if d.opts.StrictKeys {
				d.err = &DuplicateKeyError{Key: k}
				return
			}
			continue // first-match-wins
		}
		oldIndex[k] = i
	}
	if d.opts.StrictKeys {
		seen := make(map[string]bool, len(next))
		for _, c := range next {
			k := identity(c, d.opts)
			if k == "" {
				continue
			}
			if seen[k] {
				d.err = &DuplicateKeyError{Key: k}
				return
			}
			seen[k] = true
		}
	}

	var pairs []matchPair // in new order
	matchedOld := make(map[int]bool, len(prev))
	matchedNew := make([]bool, len(next))
	for j, c := range next {
		k := identity(c, d.opts)
		if k == "" {
			continue
		}
		if o, ok := oldIndex[k]; ok {
			pairs = append(pairs, matchPair{oldIdx: o, newIdx: j})
			matchedOld[o] = true
			matchedNew[j] = true
			delete(oldIndex, k)
		}
	}

	// Unmatched old children go first, back to front so indices stay
	// valid while the list shrinks.
	for i := len(prev) - 1; i >= 0; i-- {
		if !matchedOld[i] {
			d.emit(Patch{Op: OpRemoveChild, Path: path, Index: i})
		}
	}

	// After the removals the surface holds exactly the matched children
	// in old relative order. Reorder them with moves.
	d.emitMoves(pairs, path)

	// Unmatched new children slot in at their absolute new indices,
	// front to back.
	for j, c := range next {
		if !matchedNew[j] {
			d.emit(Patch{Op: OpInsertChild, Path: path, Index: j, Node: c})
		}
	}

	// Descend into matched pairs at their settled positions.
	for _, p := range pairs {
		d.diff(prev[p.oldIdx], next[p.newIdx], path.Child(p.newIdx))
	}
}

// emitMoves transforms the matched children from old relative order to
// new relative order. pairs must be in new order.
//
// Moves are minimized with a longest-increasing-subsequence over the
// matched children's old ranks: subsequence members stay put, so the
// move count is len(pairs) minus the subsequence length. The remaining
// children are processed back to front, each moved directly before its
// successor in the new order; the child array is simulated so From/To
// are exact at apply time.
func (d *differ) emitMoves(pairs []matchPair, path Path) {
	m := len(pairs)
	if m < 2 {
		return
	}

	// Rank matched old indices so ranks are dense.
	olds := make([]int, m)
	for t, p := range pairs {
		olds[t] = p.oldIdx
	}
	sort.Ints(olds)
	oldRank := make(map[int]int, m)
	for r, o := range olds {
		oldRank[o] = r
	}

	// arr simulates the surface's child array: positions hold t-indices
	// (positions in the new order), initially laid out in old order.
	ranks := make([]int, m) // ranks[t] = old rank of pair t
	arr := make([]int, m)
	for t, p := range pairs {
		r := oldRank[p.oldIdx]
		ranks[t] = r
		arr[r] = t
	}

	keep := make([]bool, m)
	for _, t := range lis(ranks) {
		keep[t] = true
	}

	pos := make([]int, m) // pos[t] = current index of pair t in arr
	for i, t := range arr {
		pos[t] = i
	}

	for t := m - 1; t >= 0; t-- {
		if keep[t] {
			continue
		}
		from := pos[t]
		arr = append(arr[:from], arr[from+1:]...)
		to := len(arr) // no successor: move to the end
		if t != m-1 {
			for i, x := range arr {
				if x == t+1 {
					to = i
					break
				}
			}
		}
		arr = append(arr, 0)
		copy(arr[to+1:], arr[to:])
		arr[to] = t
		for i, x := range arr {
			pos[x] = i
		}
		if to != from {
			d.emit(Patch{Op: OpMoveChild, Path: path, From: from, To: to})
		}
	}
}

// lis returns the indices of one longest strictly increasing
// subsequence of seq. seq values are distinct.
func lis(seq []int) []int {
	if len(seq) == 0 {
		return nil
	}
	tails := make([]int, 0, len(seq)) // indices into seq
	back := make([]int, len(seq))
	for i, v := range seq {
		j := sort.Search(len(tails), func(k int) bool { return seq[tails[k]] >= v })
		if j > 0 {
			back[i] = tails[j-1]
		} else {
			back[i] = -1
		}
		if j == len(tails) {
			tails = append(tails, i)
		} else {
			tails[j] = i
		}
	}
	out := make([]int, len(tails))
	k := tails[len(tails)-1]
	for i := len(tails) - 1; i >= 0; i-- {
		out[i] = k
		k = back[k]
	}
	return out
}
