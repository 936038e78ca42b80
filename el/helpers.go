package el

import (
	"fmt"

	"github.com/viewtree-dev/viewtree/pkg/vtree"
)

// Text creates a text node.
func Text(content string) *vtree.Node {
	return vtree.NewText(content)
}

// Textf creates a formatted text node.
func Textf(format string, args ...any) *vtree.Node {
	return vtree.NewText(fmt.Sprintf(format, args...))
}

// Comment creates a comment node.
func Comment(content string) *vtree.Node {
	return vtree.NewComment(content)
}

// If returns the node if condition is true, nil otherwise. Element
// factories drop nil children, so this composes directly.
func If(condition bool, node *vtree.Node) *vtree.Node {
	if condition {
		return node
	}
	return nil
}

// IfElse returns the first node if condition is true, the second
// otherwise.
func IfElse(condition bool, ifTrue, ifFalse *vtree.Node) *vtree.Node {
	if condition {
		return ifTrue
	}
	return ifFalse
}

// When is like If with lazy evaluation; fn runs only when condition
// holds.
func When(condition bool, fn func() *vtree.Node) *vtree.Node {
	if condition {
		return fn()
	}
	return nil
}

// Range maps a slice to nodes, dropping nils.
func Range[T any](items []T, fn func(item T, index int) *vtree.Node) []*vtree.Node {
	result := make([]*vtree.Node, 0, len(items))
	for i, item := range items {
		if node := fn(item, i); node != nil {
			result = append(result, node)
		}
	}
	return result
}

// Repeat creates n nodes using the given function, dropping nils.
func Repeat(n int, fn func(i int) *vtree.Node) []*vtree.Node {
	if n <= 0 {
		return nil
	}
	result := make([]*vtree.Node, 0, n)
	for i := 0; i < n; i++ {
		if node := fn(i); node != nil {
			result = append(result, node)
		}
	}
	return result
}
