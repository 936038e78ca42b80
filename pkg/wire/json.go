package wire

import (
	"encoding/json"
	"fmt"
	"sort"

	"github.com/viewtree-dev/viewtree/pkg/css"
	"github.com/viewtree-dev/viewtree/pkg/vtree"
)

// jsonNode is the human-editable snapshot form used by vtreectl. Kind
// defaults to "element"; attributes are this form's effective mapping
// (toggled-on attributes map to ""), so toggle structure is not
// preserved across a round trip — equality is.
type jsonNode struct {
	Kind     string            `json:"kind,omitempty"`
	Tag      string            `json:"tag,omitempty"`
	ID       string            `json:"id,omitempty"`
	Key      string            `json:"key,omitempty"`
	Attrs    map[string]string `json:"attrs,omitempty"`
	Styles   []jsonStyle       `json:"styles,omitempty"`
	Children []*jsonNode       `json:"children,omitempty"`
	Text     string            `json:"text,omitempty"`
}

type jsonStyle struct {
	Property string `json:"property"`
	Value    string `json:"value"`
	Pseudo   string `json:"pseudo,omitempty"`
}

// MarshalNode renders a tree as indented JSON.
func MarshalNode(n *vtree.Node) ([]byte, error) {
	return json.MarshalIndent(toJSONNode(n), "", "  ")
}

// UnmarshalNode parses a JSON snapshot into a tree.
func UnmarshalNode(data []byte) (*vtree.Node, error) {
	var jn jsonNode
	if err := json.Unmarshal(data, &jn); err != nil {
		return nil, fmt.Errorf("wire: parse snapshot: %w", err)
	}
	return fromJSONNode(&jn)
}

func toJSONNode(n *vtree.Node) *jsonNode {
	if n == nil {
		return nil
	}
	jn := &jsonNode{
		Tag:  n.Tag,
		ID:   n.ID,
		Key:  n.Key,
		Text: n.Text,
	}
	switch n.Kind {
	case vtree.KindText:
		jn.Kind = "text"
	case vtree.KindComment:
		jn.Kind = "comment"
	default:
		jn.Attrs = n.AttrMap()
		for _, s := range n.Styles {
			jn.Styles = append(jn.Styles, jsonStyle{Property: s.Property, Value: s.Value, Pseudo: s.Pseudo})
		}
		for _, c := range n.Children {
			jn.Children = append(jn.Children, toJSONNode(c))
		}
	}
	return jn
}

func fromJSONNode(jn *jsonNode) (*vtree.Node, error) {
	if jn == nil {
		return nil, nil
	}
	switch jn.Kind {
	case "text":
		return vtree.NewText(jn.Text), nil
	case "comment":
		return vtree.NewComment(jn.Text), nil
	case "", "element":
		var args []any
		if jn.ID != "" {
			args = append(args, vtree.Pair("id", jn.ID))
		}
		if jn.Key != "" {
			args = append(args, vtree.Pair("key", jn.Key))
		}
		for _, k := range sortedMapKeys(jn.Attrs) {
			args = append(args, vtree.Pair(k, jn.Attrs[k]))
		}
		for _, s := range jn.Styles {
			args = append(args, css.Style{Property: s.Property, Value: s.Value, Pseudo: s.Pseudo})
		}
		for _, jc := range jn.Children {
			c, err := fromJSONNode(jc)
			if err != nil {
				return nil, err
			}
			args = append(args, c)
		}
		return vtree.NewElement(jn.Tag, args...)
	default:
		return nil, fmt.Errorf("wire: unknown node kind %q", jn.Kind)
	}
}

func sortedMapKeys(m map[string]string) []string {
	if len(m) == 0 {
		return nil
	}
	keys := make([]string, 0, len(m))
	for k := range m {
		keys = append(keys, k)
	}
	// Deterministic attribute order keeps snapshots diff-friendly.
	sort.Strings(keys)
	return keys
}
