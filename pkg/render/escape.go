package render

import "strings"

var htmlEscaper = strings.NewReplacer(
	"&", "&amp;",
	"<", "&lt;",
	">", "&gt;",
	`"`, "&quot;",
	"'", "&#39;",
)

var attrEscaper = strings.NewReplacer(
	"&", "&amp;",
	"<", "&lt;",
	">", "&gt;",
	`"`, "&quot;",
	"'", "&#39;",
	"\n", "&#10;",
	"\r", "&#13;",
	"\t", "&#9;",
)

// escapeHTML escapes text content.
func escapeHTML(s string) string {
	return htmlEscaper.Replace(s)
}

// escapeAttr escapes attribute values, including whitespace characters
// that could break attribute parsing.
func escapeAttr(s string) string {
	return attrEscaper.Replace(s)
}

// escapeComment keeps comment content from terminating the comment
// early. HTML comments have no entity escaping; the delimiter is broken
// up instead.
func escapeComment(s string) string {
	return strings.ReplaceAll(s, "--", "- -")
}
