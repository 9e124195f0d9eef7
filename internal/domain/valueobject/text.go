package valueobject

import "unicode/utf8"

// TruncateText shortens s to at most max bytes without splitting a UTF-8
// sequence.
func TruncateText(s string, max int) string {
	if max <= 0 {
		return ""
	}
	if len(s) <= max {
		return s
	}
	n := max
	for n > 0 && !utf8.RuneStart(s[n]) {
		n--
	}
	return s[:n]
}
