package vtree

import "errors"

// Sentinel errors for use with errors.Is. The typed errors below unwrap
// to these.
var (
	ErrInvalidNode  = errors.New("vtree: invalid node")
	ErrDuplicateKey = errors.New("vtree: duplicate sibling key")
)

// InvalidNodeError reports malformed tree construction input. It is
// fatal to the construction call only; the caller may retry with
// corrected input.
type InvalidNodeError struct {
	Reason string
}

func (e *InvalidNodeError) Error() string {
	return "vtree: invalid node: " + e.Reason
}

func (e *InvalidNodeError) Unwrap() error { return ErrInvalidNode }

// DuplicateKeyError reports sibling elements sharing a reconciliation
// key. It is returned by Validate and by diffing in strict mode; the
// lenient differ resolves duplicates first-match-wins instead.
type DuplicateKeyError struct {
	Key string
}

func (e *DuplicateKeyError) Error() string {
	return "vtree: duplicate sibling key \"" + e.Key + "\""
}

func (e *DuplicateKeyError) Unwrap() error { return ErrDuplicateKey }
