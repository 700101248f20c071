// Package jsonptr renders RFC 6901 JSON Pointers for error paths.
package jsonptr

import "strings"

var tokenEscaper = strings.NewReplacer("~", "~0", "/", "~1")

// Escape escapes a single reference token ("~" -> "~0", "/" -> "~1").
func Escape(token string) string { return tokenEscaper.Replace(token) }

// Join appends one reference token to a base pointer.
func Join(base, token string) string {
	return base + "/" + Escape(token)
}

// FromSegments renders a pointer from unescaped path segments. No segments
// means the document root, rendered "/" so issue paths are never empty.
func FromSegments(segs []string) string {
	if len(segs) == 0 {
		return "/"
	}
	var b strings.Builder
	for _, s := range segs {
		b.WriteByte('/')
		b.WriteString(Escape(s))
	}
	return b.String()
}
