package el

import (
	"fmt"
	"strconv"
	"strings"

	"github.com/viewtree-dev/viewtree/pkg/vtree"
)

// Identity attributes

// ID sets the node's stable identity, which doubles as the rendered
// HTML id.
func ID(id string) vtree.Attr { return vtree.Pair("id", id) }

// Key sets the reconciliation key. Non-string keys are formatted with
// fmt.Sprintf.
func Key(key any) vtree.Attr {
	if s, ok := key.(string); ok {
		return vtree.Pair("key", s)
	}
	return vtree.Pair("key", fmt.Sprintf("%v", key))
}

// Class sets the class attribute, joining multiple classes with spaces.
func Class(classes ...string) vtree.Attr {
	return vtree.Pair("class", strings.Join(classes, " "))
}

// Attr creates an arbitrary key="value" attribute.
func Attr(key, value string) vtree.Attr { return vtree.Pair(key, value) }

// Data creates a data-* attribute.
func Data(key, value string) vtree.Attr { return vtree.Pair("data-"+key, value) }

// Common attributes

func Href(url string) vtree.Attr        { return vtree.Pair("href", url) }
func Src(url string) vtree.Attr         { return vtree.Pair("src", url) }
func Alt(text string) vtree.Attr        { return vtree.Pair("alt", text) }
func Name(name string) vtree.Attr       { return vtree.Pair("name", name) }
func Type(t string) vtree.Attr          { return vtree.Pair("type", t) }
func Value(v string) vtree.Attr         { return vtree.Pair("value", v) }
func Placeholder(p string) vtree.Attr   { return vtree.Pair("placeholder", p) }
func TitleAttr(title string) vtree.Attr { return vtree.Pair("title", title) }
func Lang(lang string) vtree.Attr       { return vtree.Pair("lang", lang) }
func Role(role string) vtree.Attr       { return vtree.Pair("role", role) }
func TabIndex(i int) vtree.Attr         { return vtree.Pair("tabindex", strconv.Itoa(i)) }

// Accessibility attributes

func AriaLabel(label string) vtree.Attr { return vtree.Pair("aria-label", label) }
func AriaHidden(hidden bool) vtree.Attr {
	return vtree.Pair("aria-hidden", strconv.FormatBool(hidden))
}

// Toggle attributes. These render as bare names when on and are absent
// otherwise.

func Disabled(on bool) vtree.Attr { return vtree.Toggle("disabled", on) }
func Checked(on bool) vtree.Attr  { return vtree.Toggle("checked", on) }
func Selected(on bool) vtree.Attr { return vtree.Toggle("selected", on) }
func Required(on bool) vtree.Attr { return vtree.Toggle("required", on) }
func Readonly(on bool) vtree.Attr { return vtree.Toggle("readonly", on) }
func Hidden(on bool) vtree.Attr   { return vtree.Toggle("hidden", on) }
func Open(on bool) vtree.Attr     { return vtree.Toggle("open", on) }

// Events

// On binds an event handler. Handlers are opaque to the core: they are
// carried on the node for a host binding layer and never affect
// diffing or equality.
func On(event string, handler any) vtree.Event { return vtree.On(event, handler) }

func OnClick(handler any) vtree.Event  { return vtree.On("click", handler) }
func OnInput(handler any) vtree.Event  { return vtree.On("input", handler) }
func OnChange(handler any) vtree.Event { return vtree.On("change", handler) }
func OnSubmit(handler any) vtree.Event { return vtree.On("submit", handler) }
