// Package el is the construction DSL for viewtree.
//
// It provides variadic element factories, attribute helpers, and
// conditional utilities that build immutable vtree.Node values:
//
//	el.Div(el.Class("card"), el.Key("c1"),
//	    css.Prop("color", css.Hex("#333")),
//	    el.H1("Title"),
//	    el.P("Content"),
//	)
//
// Factories never mutate existing trees; composing an old subtree into
// a new element shares it by pointer.
package el
