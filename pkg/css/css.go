// Package css models the inline style rules a view-tree element can carry.
//
// A Style is a single declaration, optionally scoped to a pseudo-class of
// the owning element. Rules are rendered against the element's id
// selector, so a styled element must have an id by the time its rules are
// emitted (the renderer assigns one when missing).
package css

import (
	"fmt"
	"strings"
)

// Style is one style declaration. Pseudo is empty for a declaration that
// applies to the element itself, or a pseudo-class name ("hover",
// "focus", ...) for a declaration scoped to that state.
type Style struct {
	Property string
	Value    string
	Pseudo   string
}

// Prop creates a declaration for the element itself. Underscores in the
// property name are normalized to hyphens, so Prop("justify_content", v)
// and Prop("justify-content", v) are the same declaration.
func Prop(property, value string) Style {
	return Style{Property: normalize(property), Value: value}
}

// PseudoProp creates a declaration scoped to the given pseudo-class.
func PseudoProp(pseudo, property, value string) Style {
	return Style{Property: normalize(property), Value: value, Pseudo: pseudo}
}

// Pseudo scopes a set of declarations to a pseudo-class.
func Pseudo(name string, decls ...Style) []Style {
	out := make([]Style, 0, len(decls))
	for _, d := range decls {
		d.Pseudo = name
		out = append(out, d)
	}
	return out
}

// Hover scopes declarations to the :hover pseudo-class.
func Hover(decls ...Style) []Style { return Pseudo("hover", decls...) }

// Focus scopes declarations to the :focus pseudo-class.
func Focus(decls ...Style) []Style { return Pseudo("focus", decls...) }

// Active scopes declarations to the :active pseudo-class.
func Active(decls ...Style) []Style { return Pseudo("active", decls...) }

// Key returns the identity of the declaration within an element's rule
// set: the property name, prefixed with "pseudo:" when scoped.
func (s Style) Key() string {
	if s.Pseudo == "" {
		return s.Property
	}
	return s.Pseudo + ":" + s.Property
}

// Decl renders the declaration as "property: value;".
func (s Style) Decl() string {
	return s.Property + ": " + s.Value + ";"
}

// Rgb formats an rgb() color value.
func Rgb(r, g, b uint32) string {
	return fmt.Sprintf("rgb(%d,%d,%d)", r, g, b)
}

// Hex returns a hex color value unchanged. It exists so color literals
// read uniformly next to Rgb.
func Hex(s string) string { return s }

// RenderRules renders the CSS rule strings for an element with the given
// id: one "#id { ... }" rule for unscoped declarations, then one
// "#id:pseudo { ... }" rule per pseudo-class, in first-appearance order.
// Elements with no declarations produce no rules.
func RenderRules(id string, styles []Style) []string {
	if len(styles) == 0 {
		return nil
	}

	var plain []Style
	var pseudoOrder []string
	byPseudo := make(map[string][]Style)

	for _, s := range styles {
		if s.Pseudo == "" {
			plain = append(plain, s)
			continue
		}
		if _, seen := byPseudo[s.Pseudo]; !seen {
			pseudoOrder = append(pseudoOrder, s.Pseudo)
		}
		byPseudo[s.Pseudo] = append(byPseudo[s.Pseudo], s)
	}

	var rules []string
	if len(plain) > 0 {
		rules = append(rules, renderRule("#"+id, plain))
	}
	for _, name := range pseudoOrder {
		rules = append(rules, renderRule("#"+id+":"+name, byPseudo[name]))
	}
	return rules
}

func renderRule(selector string, decls []Style) string {
	parts := make([]string, 0, len(decls))
	for _, d := range decls {
		parts = append(parts, d.Decl())
	}
	return selector + " { " + strings.Join(parts, " ") + " }"
}

func normalize(property string) string {
	return strings.ReplaceAll(property, "_", "-")
}
