package vtree

import (
	"strings"

	"github.com/google/uuid"

	"github.com/viewtree-dev/viewtree/pkg/css"
)

// Kind is the node type discriminator.
type Kind uint8

const (
	KindElement Kind = iota // <div>, <button>, etc.
	KindText                // Plain text node
	KindComment             // Diagnostic/placeholder comment
)

// String returns the string representation of the Kind.
func (k Kind) String() string {
	switch k {
	case KindElement:
		return "Element"
	case KindText:
		return "Text"
	case KindComment:
		return "Comment"
	default:
		return "Unknown"
	}
}

// Attr is a single attribute in source order. A toggle attribute carries
// presence rather than a value: it renders as a bare name when On is
// true and is dropped entirely when On is false.
type Attr struct {
	Key    string
	Value  string
	Toggle bool
	On     bool
}

// Pair creates a key="value" attribute.
func Pair(key, value string) Attr {
	return Attr{Key: key, Value: value}
}

// Toggle creates a presence-only attribute such as disabled or checked.
func Toggle(key string, on bool) Attr {
	return Attr{Key: key, Toggle: true, On: on}
}

// Event is an opaque handler binding. The core never invokes or compares
// handlers; two nodes differing only in handlers are structurally equal.
type Event struct {
	Name    string
	Handler any
}

// On creates an event binding.
func On(name string, handler any) Event {
	return Event{Name: name, Handler: handler}
}

// Node is one immutable node of a virtual view tree.
//
// A Node must not be mutated after construction. Constructors copy the
// slices they are given; trees derived from existing trees share
// unchanged subtrees by pointer rather than copying them. Sharing makes
// concurrent reads of the same subtree from multiple diffs safe.
type Node struct {
	Kind     Kind
	Tag      string      // Element tag name (e.g., "div")
	ID       string      // Optional stable identity (UUID), also the rendered HTML id
	Key      string      // Reconciliation key
	Attrs    []Attr      // Ordered attributes; last write wins on duplicate keys
	Styles   []css.Style // Ordered style rule set
	Events   []Event     // Opaque event bindings
	Children []*Node
	Text     string // For KindText and KindComment
}

// NewText creates a text node.
func NewText(content string) *Node {
	return &Node{Kind: KindText, Text: content}
}

// NewComment creates a comment node.
func NewComment(content string) *Node {
	return &Node{Kind: KindComment, Text: content}
}

// NewElement creates an element node. Arguments are classified by type:
// Attr, []Attr, css.Style, []css.Style, Event, *Node, []*Node, and
// string (a text child). Nil arguments and nil child nodes are ignored,
// which permits conditional construction. The reserved attribute keys
// "key" and "id" populate Node.Key and Node.ID instead of the attribute
// list.
//
// The tag must be a non-empty name without whitespace or markup
// characters; otherwise an InvalidNodeError is returned.
func NewElement(tag string, args ...any) (*Node, error) {
	if err := validTag(tag); err != nil {
		return nil, err
	}

	node := &Node{Kind: KindElement, Tag: tag}
	for _, arg := range args {
		switch v := arg.(type) {
		case nil:
			continue
		case Attr:
			node.addAttr(v)
		case []Attr:
			for _, a := range v {
				node.addAttr(a)
			}
		case css.Style:
			node.Styles = append(node.Styles, v)
		case []css.Style:
			node.Styles = append(node.Styles, v...)
		case Event:
			node.Events = append(node.Events, v)
		case *Node:
			if v != nil {
				node.Children = append(node.Children, v)
			}
		case []*Node:
			for _, c := range v {
				if c != nil {
					node.Children = append(node.Children, c)
				}
			}
		case string:
			node.Children = append(node.Children, NewText(v))
		default:
			return nil, &InvalidNodeError{Reason: "unsupported argument type for element " + tag}
		}
	}
	return node, nil
}

func (n *Node) addAttr(a Attr) {
	switch a.Key {
	case "":
		// Empty attrs allow conditional attribute helpers.
	case "key":
		n.Key = a.Value
	case "id":
		n.ID = a.Value
	default:
		n.Attrs = append(n.Attrs, a)
	}
}

// NewID returns a fresh UUID suitable for Node.ID. Assigning IDs is
// opt-in; they matter only for rendered style selectors and for diffing
// with Options.MatchByID.
func NewID() string {
	return uuid.NewString()
}

// IsElement reports whether the node is an element.
func (n *Node) IsElement() bool { return n != nil && n.Kind == KindElement }

// Attr returns the effective value of an attribute and whether it is
// present, resolving duplicates last-write-wins and honoring toggles.
func (n *Node) Attr(key string) (string, bool) {
	if n == nil {
		return "", false
	}
	value, present := "", false
	for _, a := range n.Attrs {
		if a.Key != key {
			continue
		}
		if a.Toggle {
			value, present = "", a.On
		} else {
			value, present = a.Value, true
		}
	}
	return value, present
}

// AttrMap returns the effective attribute mapping: duplicates resolved
// last-write-wins, toggled-off attributes absent, toggled-on attributes
// mapped to the empty string.
func (n *Node) AttrMap() map[string]string {
	if n == nil || len(n.Attrs) == 0 {
		return nil
	}
	m := make(map[string]string, len(n.Attrs))
	for _, a := range n.Attrs {
		if a.Toggle {
			if a.On {
				m[a.Key] = ""
			} else {
				delete(m, a.Key)
			}
			continue
		}
		m[a.Key] = a.Value
	}
	return m
}

// StyleMap returns the effective style mapping keyed by css.Style.Key,
// duplicates resolved last-write-wins.
func (n *Node) StyleMap() map[string]string {
	if n == nil || len(n.Styles) == 0 {
		return nil
	}
	m := make(map[string]string, len(n.Styles))
	for _, s := range n.Styles {
		m[s.Key()] = s.Value
	}
	return m
}

func validTag(tag string) error {
	if tag == "" {
		return &InvalidNodeError{Reason: "empty tag name"}
	}
	if strings.ContainsAny(tag, " \t\n\r\"'<>/=") {
		return &InvalidNodeError{Reason: "malformed tag name \"" + tag + "\""}
	}
	return nil
}
