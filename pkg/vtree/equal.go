package vtree

// Equal reports deep structural equality of two trees. Comparison is by
// value over kind, tag, key, text, effective attributes, effective
// styles, and children. Transient identity (Node.ID) and event handlers
// are ignored: handlers are opaque to the core and never comparable.
func Equal(a, b *Node) bool {
	if a == nil || b == nil {
		return a == b
	}
	if a.Kind != b.Kind {
		return false
	}

	switch a.Kind {
	case KindText, KindComment:
		return a.Text == b.Text
	case KindElement:
		if a.Tag != b.Tag || a.Key != b.Key {
			return false
		}
		if !mapsEqual(a.AttrMap(), b.AttrMap()) {
			return false
		}
		if !mapsEqual(a.StyleMap(), b.StyleMap()) {
			return false
		}
		if len(a.Children) != len(b.Children) {
			return false
		}
		for i := range a.Children {
			if !Equal(a.Children[i], b.Children[i]) {
				return false
			}
		}
		return true
	default:
		return false
	}
}

func mapsEqual(a, b map[string]string) bool {
	if len(a) != len(b) {
		return false
	}
	for k, va := range a {
		if vb, ok := b[k]; !ok || va != vb {
			return false
		}
	}
	return true
}

// Validate walks the tree and reports the first structural defect:
// an element with a malformed tag (InvalidNodeError) or sibling
// elements sharing a key (DuplicateKeyError). The differ assumes input
// accepted by the constructors; Validate exists for callers that build
// Node values directly.
func Validate(n *Node) error {
	if n == nil {
		return nil
	}
	if n.Kind != KindElement {
		return nil
	}
	if err := validTag(n.Tag); err != nil {
		return err
	}
	seen := make(map[string]bool, len(n.Children))
	for _, child := range n.Children {
		if child == nil {
			continue
		}
		if child.Key != "" {
			if seen[child.Key] {
				return &DuplicateKeyError{Key: child.Key}
			}
			seen[child.Key] = true
		}
		if err := Validate(child); err != nil {
			return err
		}
	}
	return nil
}
