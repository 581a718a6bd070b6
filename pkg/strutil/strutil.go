package strutil

import "unicode/utf8"

// Truncate returns the first max characters of s. A non-positive max yields "".
func Truncate(s string, max int) string {
	if max <= 0 {
		return ""
	}
	if utf8.RuneCountInString(s) <= max {
		return s
	}
	return string([]rune(s)[:max])
}

// Ellipsis truncates s to max characters, ending with "…" when something was cut.
func Ellipsis(s string, max int) string {
	if utf8.RuneCountInString(s) <= max {
		return s
	}
	if max <= 1 {
		return Truncate("…", max)
	}
	return Truncate(s, max-1) + "…"
}
