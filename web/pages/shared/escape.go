package shared

import "html"

// Esc escapes catalog text before it reaches the builder, which writes text verbatim
func Esc(s string) string {
	return html.EscapeString(s)
}
