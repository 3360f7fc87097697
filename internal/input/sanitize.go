// Package input sanitizes free text and validates the product form.
package input

import (
	"fmt"
	"strings"
)

var htmlEscaper = strings.NewReplacer(
	"&", "&amp;",
	"<", "&lt;",
	">", "&gt;",
	`"`, "&quot;",
	"'", "&#39;",
)

// Sanitize stringifies v and escapes the five HTML-significant characters.
// nil becomes "". It is not idempotent: "&amp;" becomes "&amp;amp;".
func Sanitize(v any) string {
	if v == nil {
		return ""
	}
	var s string
	switch typed := v.(type) {
	case string:
		s = typed
	case fmt.Stringer:
		s = typed.String()
	default:
		s = fmt.Sprint(v)
	}
	return htmlEscaper.Replace(s)
}
