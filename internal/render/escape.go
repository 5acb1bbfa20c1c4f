package render

import "html"

// Escape makes arbitrary text safe for literal embedding in markup.
// The five characters `&`, `<`, `>`, `"` and `'` are replaced with their
// escapes; everything else passes through. Absent (empty) input yields an
// empty string. html.EscapeString covers exactly this character set.
func Escape(s string) string {
	if s == "" {
		return ""
	}
	return html.EscapeString(s)
}
