// Package vtree is the reconciliation core of viewtree: an immutable
// virtual view-tree, a differ, and the patch model connecting them.
//
// # Core Types
//
// Node is the fundamental value, representing an element, text, or
// comment. Nodes are immutable once constructed; trees derived from
// existing trees share unchanged subtrees by pointer. Patch is one unit
// of surface mutation, addressed by a Path of child indices from the
// root.
//
// # Diffing
//
// Diff compares two trees and returns the ordered patch list that
// brings a surface reflecting the old tree into agreement with the new
// one. Children carrying keys (or UUIDs, with Options.MatchByID) are
// reconciled by identity, with moves minimized via a longest-increasing-
// subsequence; unkeyed children match positionally.
//
// Diffing is pure and synchronous. Render cycles are serialized by the
// caller: the produced patch list is consumed exactly once, in order,
// by the applier in package apply.
package vtree
