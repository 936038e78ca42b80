package el

import "github.com/viewtree-dev/viewtree/pkg/vtree"

// voidElements are elements that cannot have children.
var voidElements = map[string]bool{
	"area":   true,
	"base":   true,
	"br":     true,
	"col":    true,
	"embed":  true,
	"hr":     true,
	"img":    true,
	"input":  true,
	"link":   true,
	"meta":   true,
	"param":  true,
	"source": true,
	"track":  true,
	"wbr":    true,
}

// IsVoidElement returns true if the tag is a void element.
func IsVoidElement(tag string) bool {
	return voidElements[tag]
}

// newElement builds an element with a tag known to be well formed, so
// the only error vtree.NewElement can return is an unsupported argument
// type; those arguments are dropped to keep the DSL composable.
func newElement(tag string, args []any) *vtree.Node {
	node, err := vtree.NewElement(tag, args...)
	if err != nil {
		node, _ = vtree.NewElement(tag)
	}
	return node
}

// Custom creates an element with a caller-supplied tag name, validating
// it the way vtree.NewElement does.
func Custom(tag string, args ...any) (*vtree.Node, error) {
	return vtree.NewElement(tag, args...)
}

// Document structure elements

func Html(args ...any) *vtree.Node  { return newElement("html", args) }
func Head(args ...any) *vtree.Node  { return newElement("head", args) }
func Body(args ...any) *vtree.Node  { return newElement("body", args) }
func Title(args ...any) *vtree.Node { return newElement("title", args) }
func Meta(args ...any) *vtree.Node  { return newElement("meta", args) }
func LinkEl(args ...any) *vtree.Node { return newElement("link", args) }

// Content sectioning elements

func Header(args ...any) *vtree.Node  { return newElement("header", args) }
func Footer(args ...any) *vtree.Node  { return newElement("footer", args) }
func Main(args ...any) *vtree.Node    { return newElement("main", args) }
func Nav(args ...any) *vtree.Node     { return newElement("nav", args) }
func Section(args ...any) *vtree.Node { return newElement("section", args) }
func Article(args ...any) *vtree.Node { return newElement("article", args) }
func Aside(args ...any) *vtree.Node   { return newElement("aside", args) }
func H1(args ...any) *vtree.Node      { return newElement("h1", args) }
func H2(args ...any) *vtree.Node      { return newElement("h2", args) }
func H3(args ...any) *vtree.Node      { return newElement("h3", args) }
func H4(args ...any) *vtree.Node      { return newElement("h4", args) }
func H5(args ...any) *vtree.Node      { return newElement("h5", args) }
func H6(args ...any) *vtree.Node      { return newElement("h6", args) }

// Text content elements

func Div(args ...any) *vtree.Node        { return newElement("div", args) }
func P(args ...any) *vtree.Node          { return newElement("p", args) }
func Span(args ...any) *vtree.Node       { return newElement("span", args) }
func Pre(args ...any) *vtree.Node        { return newElement("pre", args) }
func Blockquote(args ...any) *vtree.Node { return newElement("blockquote", args) }
func Ul(args ...any) *vtree.Node         { return newElement("ul", args) }
func Ol(args ...any) *vtree.Node         { return newElement("ol", args) }
func Li(args ...any) *vtree.Node         { return newElement("li", args) }
func Dl(args ...any) *vtree.Node         { return newElement("dl", args) }
func Dt(args ...any) *vtree.Node         { return newElement("dt", args) }
func Dd(args ...any) *vtree.Node         { return newElement("dd", args) }
func Hr(args ...any) *vtree.Node         { return newElement("hr", args) }
func Figure(args ...any) *vtree.Node     { return newElement("figure", args) }
func Figcaption(args ...any) *vtree.Node { return newElement("figcaption", args) }

// Inline text semantics

func A(args ...any) *vtree.Node      { return newElement("a", args) }
func Strong(args ...any) *vtree.Node { return newElement("strong", args) }
func Em(args ...any) *vtree.Node     { return newElement("em", args) }
func B(args ...any) *vtree.Node      { return newElement("b", args) }
func I(args ...any) *vtree.Node      { return newElement("i", args) }
func U(args ...any) *vtree.Node      { return newElement("u", args) }
func Small(args ...any) *vtree.Node  { return newElement("small", args) }
func Mark(args ...any) *vtree.Node   { return newElement("mark", args) }
func Sub(args ...any) *vtree.Node    { return newElement("sub", args) }
func Sup(args ...any) *vtree.Node    { return newElement("sup", args) }
func Code(args ...any) *vtree.Node   { return newElement("code", args) }
func Kbd(args ...any) *vtree.Node    { return newElement("kbd", args) }
func Samp(args ...any) *vtree.Node   { return newElement("samp", args) }
func Abbr(args ...any) *vtree.Node   { return newElement("abbr", args) }
func Time_(args ...any) *vtree.Node  { return newElement("time", args) }
func Cite(args ...any) *vtree.Node   { return newElement("cite", args) }
func Q(args ...any) *vtree.Node      { return newElement("q", args) }
func Br(args ...any) *vtree.Node     { return newElement("br", args) }

// Form elements

func Form(args ...any) *vtree.Node     { return newElement("form", args) }
func Input(args ...any) *vtree.Node    { return newElement("input", args) }
func Textarea(args ...any) *vtree.Node { return newElement("textarea", args) }
func Select(args ...any) *vtree.Node   { return newElement("select", args) }
func Option(args ...any) *vtree.Node   { return newElement("option", args) }
func Button(args ...any) *vtree.Node   { return newElement("button", args) }
func Label(args ...any) *vtree.Node    { return newElement("label", args) }
func Fieldset(args ...any) *vtree.Node { return newElement("fieldset", args) }
func Legend(args ...any) *vtree.Node   { return newElement("legend", args) }
func Output(args ...any) *vtree.Node   { return newElement("output", args) }
func Progress(args ...any) *vtree.Node { return newElement("progress", args) }

// Table elements

func Table(args ...any) *vtree.Node    { return newElement("table", args) }
func Thead(args ...any) *vtree.Node    { return newElement("thead", args) }
func Tbody(args ...any) *vtree.Node    { return newElement("tbody", args) }
func Tfoot(args ...any) *vtree.Node    { return newElement("tfoot", args) }
func Tr(args ...any) *vtree.Node       { return newElement("tr", args) }
func Th(args ...any) *vtree.Node       { return newElement("th", args) }
func Td(args ...any) *vtree.Node       { return newElement("td", args) }
func Caption(args ...any) *vtree.Node  { return newElement("caption", args) }
func Colgroup(args ...any) *vtree.Node { return newElement("colgroup", args) }
func Col(args ...any) *vtree.Node      { return newElement("col", args) }

// Media and embedded elements

func Img(args ...any) *vtree.Node    { return newElement("img", args) }
func Video(args ...any) *vtree.Node  { return newElement("video", args) }
func Audio(args ...any) *vtree.Node  { return newElement("audio", args) }
func Source(args ...any) *vtree.Node { return newElement("source", args) }
func Iframe(args ...any) *vtree.Node { return newElement("iframe", args) }
func Canvas(args ...any) *vtree.Node { return newElement("canvas", args) }
func Svg(args ...any) *vtree.Node    { return newElement("svg", args) }

// Interactive elements

func Details(args ...any) *vtree.Node { return newElement("details", args) }
func Summary(args ...any) *vtree.Node { return newElement("summary", args) }
func Dialog(args ...any) *vtree.Node  { return newElement("dialog", args) }
func Menu(args ...any) *vtree.Node    { return newElement("menu", args) }
