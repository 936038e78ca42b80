// Package wire is the binary and JSON serialization layer for viewtree
// trees and patch frames.
//
// The binary form is a compact varint-based encoding used by the patch
// stream; the JSON form is a human-editable snapshot format used by the
// vtreectl tooling. Event handlers are not serializable and are dropped
// by both forms.
//
// Decoding enforces allocation, collection and depth limits so a
// malicious or corrupt stream cannot force pathological allocations or
// unbounded recursion.
package wire

import "errors"

// Decoding limits.
const (
	// MaxAllocation caps any single length-prefixed allocation.
	MaxAllocation = 4 * 1024 * 1024

	// MaxCollectionCount caps item counts for attrs, styles, children
	// and patch lists.
	MaxCollectionCount = 100_000

	// MaxNodeDepth caps tree nesting on decode.
	MaxNodeDepth = 256
)

// Decoding errors.
var (
	ErrShortBuffer        = errors.New("wire: buffer too short")
	ErrVarintOverflow     = errors.New("wire: varint overflow")
	ErrInvalidBool        = errors.New("wire: invalid boolean value")
	ErrAllocationTooLarge = errors.New("wire: allocation size exceeds limit")
	ErrCollectionTooLarge = errors.New("wire: collection count exceeds limit")
	ErrMaxDepthExceeded   = errors.New("wire: node depth exceeds limit")
	ErrUnknownKind        = errors.New("wire: unknown node kind")
)
