// Package render serializes view trees to HTML text.
//
// Rendering is an optional collaborator of the reconciliation core:
// hosts use it for initial markup, snapshots, and debugging. Style
// rules carried by elements are collected into a stylesheet addressed
// by element id; elements that carry rules but no ID are assigned a
// synthetic one during rendering.
package render

import (
	"bytes"
	"fmt"
	"io"
	"sort"
	"strings"

	"github.com/viewtree-dev/viewtree/el"
	"github.com/viewtree-dev/viewtree/pkg/css"
	"github.com/viewtree-dev/viewtree/pkg/vtree"
)

// Config configures the renderer.
type Config struct {
	// Pretty enables indented multi-line output. Development use only;
	// it changes text node whitespace.
	Pretty bool

	// Indent is the string per indentation level in pretty mode.
	// Defaults to two spaces.
	Indent string
}

// Renderer renders trees to HTML and collects their style rules. A
// Renderer is reusable but not safe for concurrent use.
type Renderer struct {
	config    Config
	idCounter int
	rules     []string
}

// New creates a Renderer.
func New(config Config) *Renderer {
	if config.Indent == "" {
		config.Indent = "  "
	}
	return &Renderer{config: config}
}

// RenderToString renders a tree to HTML. Style rules collected from the
// tree are available from Stylesheet until the next render.
func (r *Renderer) RenderToString(node *vtree.Node) (string, error) {
	var buf bytes.Buffer
	if err := r.RenderToWriter(&buf, node); err != nil {
		return "", err
	}
	return buf.String(), nil
}

// RenderToWriter streams a tree to w.
func (r *Renderer) RenderToWriter(w io.Writer, node *vtree.Node) error {
	r.rules = r.rules[:0]
	r.idCounter = 0
	return r.renderNode(w, node, 0)
}

// Stylesheet returns the CSS rules collected by the last render, one
// rule per line.
func (r *Renderer) Stylesheet() string {
	return strings.Join(r.rules, "\n")
}

// Document renders a complete standalone HTML page: collected style
// rules in a head <style> element and the tree in the body.
func (r *Renderer) Document(title string, node *vtree.Node) (string, error) {
	markup, err := r.RenderToString(node)
	if err != nil {
		return "", err
	}
	var b strings.Builder
	b.WriteString("<!doctype html>\n<html>\n<head>\n<meta charset=\"utf-8\">\n<title>")
	b.WriteString(escapeHTML(title))
	b.WriteString("</title>\n")
	if sheet := r.Stylesheet(); sheet != "" {
		b.WriteString("<style>\n")
		b.WriteString(sheet)
		b.WriteString("\n</style>\n")
	}
	b.WriteString("</head>\n<body>\n")
	b.WriteString(markup)
	b.WriteString("\n</body>\n</html>\n")
	return b.String(), nil
}

func (r *Renderer) renderNode(w io.Writer, node *vtree.Node, depth int) error {
	if node == nil {
		return nil
	}
	switch node.Kind {
	case vtree.KindElement:
		return r.renderElement(w, node, depth)
	case vtree.KindText:
		return r.writeIndented(w, escapeHTML(node.Text), depth)
	case vtree.KindComment:
		return r.writeIndented(w, "<!--"+escapeComment(node.Text)+"-->", depth)
	default:
		return fmt.Errorf("render: unknown node kind %d", node.Kind)
	}
}

func (r *Renderer) renderElement(w io.Writer, node *vtree.Node, depth int) error {
	id := node.ID
	if id == "" && len(node.Styles) > 0 {
		r.idCounter++
		id = fmt.Sprintf("v%d", r.idCounter)
	}
	if len(node.Styles) > 0 {
		r.rules = append(r.rules, css.RenderRules(id, node.Styles)...)
	}

	var tag strings.Builder
	tag.WriteByte('<')
	tag.WriteString(node.Tag)
	if id != "" {
		tag.WriteString(` id="` + escapeAttr(id) + `"`)
	}
	attrs := node.AttrMap()
	for _, k := range sortedKeys(attrs) {
		if v := attrs[k]; v == "" {
			tag.WriteString(" " + k)
		} else {
			tag.WriteString(" " + k + `="` + escapeAttr(v) + `"`)
		}
	}
	tag.WriteByte('>')

	if el.IsVoidElement(node.Tag) {
		return r.writeIndented(w, tag.String(), depth)
	}

	if len(node.Children) == 0 {
		return r.writeIndented(w, tag.String()+"</"+node.Tag+">", depth)
	}

	// Single text child renders inline regardless of pretty mode.
	if len(node.Children) == 1 && node.Children[0] != nil && node.Children[0].Kind == vtree.KindText {
		return r.writeIndented(w, tag.String()+escapeHTML(node.Children[0].Text)+"</"+node.Tag+">", depth)
	}

	if err := r.writeIndented(w, tag.String(), depth); err != nil {
		return err
	}
	for _, c := range node.Children {
		if err := r.renderNode(w, c, depth+1); err != nil {
			return err
		}
	}
	return r.writeIndented(w, "</"+node.Tag+">", depth)
}

func (r *Renderer) writeIndented(w io.Writer, s string, depth int) error {
	if r.config.Pretty {
		s = strings.Repeat(r.config.Indent, depth) + s + "\n"
	}
	_, err := io.WriteString(w, s)
	return err
}

func sortedKeys(m map[string]string) []string {
	if len(m) == 0 {
		return nil
	}
	keys := make([]string, 0, len(m))
	for k := range m {
		keys = append(keys, k)
	}
	sort.Strings(keys)
	return keys
}
