package apply

import (
	"fmt"
	"sort"
	"strings"

	"github.com/viewtree-dev/viewtree/pkg/css"
	"github.com/viewtree-dev/viewtree/pkg/vtree"
)

// Memory is an in-memory reference surface: it owns a mutable mirror
// tree and applies patches to it. It backs the round-trip tests
// (Apply(Diff(A,B)) over A must yield B) and serves hosts that want a
// surface-shaped model without a real rendering target.
//
// Memory is not safe for concurrent use; like any surface it is
// single-writer.
type Memory struct {
	root *memNode
}

// NewMemory creates a surface initialized from tree. A nil tree means
// an empty surface awaiting a mount.
func NewMemory(tree *vtree.Node) *Memory {
	return &Memory{root: fromNode(tree)}
}

// Tree returns an immutable snapshot of the surface's current state,
// or nil when the surface is empty. Attribute and style order follows
// sorted effective keys; structural equality is unaffected.
func (m *Memory) Tree() *vtree.Node {
	return m.root.toNode()
}

// memNode is the mutable mirror of a vtree.Node.
type memNode struct {
	kind     vtree.Kind
	tag      string
	id       string
	key      string
	text     string
	attrs    map[string]string
	styles   map[string]string
	children []*memNode
}

func fromNode(n *vtree.Node) *memNode {
	if n == nil {
		return nil
	}
	mn := &memNode{
		kind: n.Kind,
		tag:  n.Tag,
		id:   n.ID,
		key:  n.Key,
		text: n.Text,
	}
	if n.Kind == vtree.KindElement {
		mn.attrs = n.AttrMap()
		if mn.attrs == nil {
			mn.attrs = map[string]string{}
		}
		mn.styles = n.StyleMap()
		if mn.styles == nil {
			mn.styles = map[string]string{}
		}
		for _, c := range n.Children {
			mn.children = append(mn.children, fromNode(c))
		}
	}
	return mn
}

func (mn *memNode) toNode() *vtree.Node {
	if mn == nil {
		return nil
	}
	n := &vtree.Node{
		Kind: mn.kind,
		Tag:  mn.tag,
		ID:   mn.id,
		Key:  mn.key,
		Text: mn.text,
	}
	if mn.kind != vtree.KindElement {
		return n
	}
	for _, k := range sortedKeys(mn.attrs) {
		n.Attrs = append(n.Attrs, vtree.Pair(k, mn.attrs[k]))
	}
	for _, k := range sortedKeys(mn.styles) {
		n.Styles = append(n.Styles, styleFromKey(k, mn.styles[k]))
	}
	for _, c := range mn.children {
		n.Children = append(n.Children, c.toNode())
	}
	return n
}

func sortedKeys(m map[string]string) []string {
	keys := make([]string, 0, len(m))
	for k := range m {
		keys = append(keys, k)
	}
	sort.Strings(keys)
	return keys
}

// styleFromKey inverts css.Style.Key: "pseudo:prop" or "prop".
func styleFromKey(key, value string) css.Style {
	if i := strings.Index(key, ":"); i >= 0 {
		return css.Style{Pseudo: key[:i], Property: key[i+1:], Value: value}
	}
	return css.Style{Property: key, Value: value}
}

// resolve walks the mirror to the node at path.
func (m *Memory) resolve(path vtree.Path) (*memNode, error) {
	node := m.root
	for depth, i := range path {
		if node == nil {
			return nil, fmt.Errorf("memory: path %s runs past an empty surface", path)
		}
		if node.kind != vtree.KindElement {
			return nil, fmt.Errorf("memory: path %s descends into a leaf at depth %d", path, depth)
		}
		if i < 0 || i >= len(node.children) {
			return nil, fmt.Errorf("memory: path %s index %d out of range at depth %d (have %d children)",
				path, i, depth, len(node.children))
		}
		node = node.children[i]
	}
	if node == nil {
		return nil, fmt.Errorf("memory: path %s addresses an empty surface", path)
	}
	return node, nil
}

func (m *Memory) resolveElement(path vtree.Path) (*memNode, error) {
	node, err := m.resolve(path)
	if err != nil {
		return nil, err
	}
	if node.kind != vtree.KindElement {
		return nil, fmt.Errorf("memory: path %s is not an element", path)
	}
	return node, nil
}

// Replace implements Surface.
func (m *Memory) Replace(path vtree.Path, node *vtree.Node) error {
	if len(path) == 0 {
		m.root = fromNode(node)
		return nil
	}
	if node == nil {
		return fmt.Errorf("memory: nil replacement below the root at %s", path)
	}
	parent, err := m.resolveElement(path[:len(path)-1])
	if err != nil {
		return err
	}
	i := path[len(path)-1]
	if i < 0 || i >= len(parent.children) {
		return fmt.Errorf("memory: replace index %d out of range at %s", i, path)
	}
	parent.children[i] = fromNode(node)
	return nil
}

// SetText implements Surface.
func (m *Memory) SetText(path vtree.Path, text string) error {
	node, err := m.resolve(path)
	if err != nil {
		return err
	}
	if node.kind != vtree.KindText && node.kind != vtree.KindComment {
		return fmt.Errorf("memory: SetText on %s node at %s", node.kind, path)
	}
	node.text = text
	return nil
}

// UpdateAttrs implements Surface.
func (m *Memory) UpdateAttrs(path vtree.Path, added, updated map[string]string, removed []string) error {
	node, err := m.resolveElement(path)
	if err != nil {
		return err
	}
	applyDelta(node.attrs, added, updated, removed)
	return nil
}

// UpdateStyles implements Surface.
func (m *Memory) UpdateStyles(path vtree.Path, added, updated map[string]string, removed []string) error {
	node, err := m.resolveElement(path)
	if err != nil {
		return err
	}
	applyDelta(node.styles, added, updated, removed)
	return nil
}

func applyDelta(m map[string]string, added, updated map[string]string, removed []string) {
	for k, v := range added {
		m[k] = v
	}
	for k, v := range updated {
		m[k] = v
	}
	for _, k := range removed {
		delete(m, k)
	}
}

// InsertChild implements Surface.
func (m *Memory) InsertChild(parent vtree.Path, index int, node *vtree.Node) error {
	p, err := m.resolveElement(parent)
	if err != nil {
		return err
	}
	if node == nil {
		return fmt.Errorf("memory: nil insert under %s", parent)
	}
	if index < 0 || index > len(p.children) {
		return fmt.Errorf("memory: insert index %d out of range under %s (have %d children)",
			index, parent, len(p.children))
	}
	p.children = append(p.children, nil)
	copy(p.children[index+1:], p.children[index:])
	p.children[index] = fromNode(node)
	return nil
}

// RemoveChild implements Surface.
func (m *Memory) RemoveChild(parent vtree.Path, index int) error {
	p, err := m.resolveElement(parent)
	if err != nil {
		return err
	}
	if index < 0 || index >= len(p.children) {
		return fmt.Errorf("memory: remove index %d out of range under %s (have %d children)",
			index, parent, len(p.children))
	}
	p.children = append(p.children[:index], p.children[index+1:]...)
	return nil
}

// MoveChild implements Surface.
func (m *Memory) MoveChild(parent vtree.Path, from, to int) error {
	p, err := m.resolveElement(parent)
	if err != nil {
		return err
	}
	if from < 0 || from >= len(p.children) {
		return fmt.Errorf("memory: move source %d out of range under %s (have %d children)",
			from, parent, len(p.children))
	}
	child := p.children[from]
	rest := append(p.children[:from], p.children[from+1:]...)
	if to < 0 || to > len(rest) {
		return fmt.Errorf("memory: move target %d out of range under %s (have %d children)",
			to, parent, len(rest))
	}
	rest = append(rest, nil)
	copy(rest[to+1:], rest[to:])
	rest[to] = child
	p.children = rest
	return nil
}
