package render

import (
	"strings"
	"testing"

	"github.com/viewtree-dev/viewtree/el"
	"github.com/viewtree-dev/viewtree/pkg/css"
	"github.com/viewtree-dev/viewtree/pkg/vtree"
)

func renderString(t *testing.T, node *vtree.Node) string {
	t.Helper()
	out, err := New(Config{}).RenderToString(node)
	if err != nil {
		t.Fatalf("RenderToString failed: %v", err)
	}
	return out
}

func TestRenderSimple(t *testing.T) {
	got := renderString(t, el.Div(el.Class("box"), "hello"))
	if got != `<div class="box">hello</div>` {
		t.Errorf("got %q", got)
	}
}

func TestRenderNil(t *testing.T) {
	if got := renderString(t, nil); got != "" {
		t.Errorf("got %q, want empty", got)
	}
}

func TestRenderVoidElement(t *testing.T) {
	got := renderString(t, el.Div(el.Img(el.Src("/x.png"), el.Alt("x")), el.Br()))
	if got != `<div><img alt="x" src="/x.png"><br></div>` {
		t.Errorf("got %q", got)
	}
}

func TestRenderEmptyElement(t *testing.T) {
	if got := renderString(t, el.Div()); got != "<div></div>" {
		t.Errorf("got %q", got)
	}
}

func TestRenderToggleAttr(t *testing.T) {
	got := renderString(t, el.Input(el.Type("checkbox"), el.Checked(true)))
	if got != `<input checked type="checkbox">` {
		t.Errorf("got %q", got)
	}
}

func TestRenderEscaping(t *testing.T) {
	got := renderString(t, el.Div(el.TitleAttr(`a"b`), "<script>&"))
	if !strings.Contains(got, `title="a&quot;b"`) {
		t.Errorf("attribute not escaped: %q", got)
	}
	if !strings.Contains(got, "&lt;script&gt;&amp;") {
		t.Errorf("text not escaped: %q", got)
	}
}

func TestRenderComment(t *testing.T) {
	got := renderString(t, el.Div(el.Comment("section -- break")))
	if got != "<div><!--section - - break--></div>" {
		t.Errorf("got %q", got)
	}
}

func TestRenderStylesUseExistingID(t *testing.T) {
	r := New(Config{})
	node := el.Div(el.ID("hero"), css.Prop("color", "red"))

	got, err := r.RenderToString(node)
	if err != nil {
		t.Fatalf("render failed: %v", err)
	}
	if got != `<div id="hero"></div>` {
		t.Errorf("got %q", got)
	}
	if sheet := r.Stylesheet(); sheet != "#hero { color: red; }" {
		t.Errorf("Stylesheet() = %q", sheet)
	}
}

func TestRenderStylesAssignSyntheticID(t *testing.T) {
	r := New(Config{})
	node := el.Div(
		el.Span(css.Prop("color", "red")),
		el.Span(css.Prop("color", "blue")),
	)

	got, err := r.RenderToString(node)
	if err != nil {
		t.Fatalf("render failed: %v", err)
	}
	if !strings.Contains(got, `<span id="v1">`) || !strings.Contains(got, `<span id="v2">`) {
		t.Errorf("synthetic ids missing: %q", got)
	}
	sheet := r.Stylesheet()
	if !strings.Contains(sheet, "#v1 { color: red; }") || !strings.Contains(sheet, "#v2 { color: blue; }") {
		t.Errorf("Stylesheet() = %q", sheet)
	}
}

func TestRenderPseudoRules(t *testing.T) {
	r := New(Config{})
	node := el.Button(el.ID("go"),
		css.Prop("color", "white"),
		css.Hover(css.Prop("color", "gray")),
		"Go",
	)

	if _, err := r.RenderToString(node); err != nil {
		t.Fatalf("render failed: %v", err)
	}
	sheet := r.Stylesheet()
	want := "#go { color: white; }\n#go:hover { color: gray; }"
	if sheet != want {
		t.Errorf("Stylesheet() = %q, want %q", sheet, want)
	}
}

func TestRenderResetsBetweenRenders(t *testing.T) {
	r := New(Config{})
	if _, err := r.RenderToString(el.Div(css.Prop("color", "red"))); err != nil {
		t.Fatal(err)
	}
	if _, err := r.RenderToString(el.Div()); err != nil {
		t.Fatal(err)
	}
	if sheet := r.Stylesheet(); sheet != "" {
		t.Errorf("rules leaked across renders: %q", sheet)
	}
}

func TestRenderPretty(t *testing.T) {
	r := New(Config{Pretty: true})
	got, err := r.RenderToString(el.Ul(el.Li("a"), el.Li("b")))
	if err != nil {
		t.Fatalf("render failed: %v", err)
	}
	want := "<ul>\n  <li>a</li>\n  <li>b</li>\n</ul>\n"
	if got != want {
		t.Errorf("got %q, want %q", got, want)
	}
}

func TestDocument(t *testing.T) {
	r := New(Config{})
	got, err := r.Document("My <Page>", el.Div(el.ID("app"), css.Prop("margin", "0"), "hi"))
	if err != nil {
		t.Fatalf("Document failed: %v", err)
	}
	for _, part := range []string{
		"<!doctype html>",
		"<title>My &lt;Page&gt;</title>",
		"<style>\n#app { margin: 0; }\n</style>",
		`<div id="app">hi</div>`,
	} {
		if !strings.Contains(got, part) {
			t.Errorf("document missing %q:\n%s", part, got)
		}
	}
}

func TestDocumentNoStyles(t *testing.T) {
	r := New(Config{})
	got, err := r.Document("t", el.Div("x"))
	if err != nil {
		t.Fatalf("Document failed: %v", err)
	}
	if strings.Contains(got, "<style>") {
		t.Errorf("empty stylesheet rendered a style element:\n%s", got)
	}
}
