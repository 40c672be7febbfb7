package repair

import (
	"strings"
	"unicode/utf8"
)

const ellipsis = "..."

// truncateChars cuts s to at most max characters
func truncateChars(s string, max int) string {
	if max <= 0 {
		return ""
	}
	if utf8.RuneCountInString(s) <= max {
		return s
	}
	return string([]rune(s)[:max])
}

// truncateWithEllipsis hard-cuts s so that s plus "..." fits in max characters
func truncateWithEllipsis(s string, max int) string {
	if utf8.RuneCountInString(s) <= max {
		return s
	}
	if max <= len(ellipsis) {
		return truncateChars(s, max)
	}
	return strings.TrimRight(truncateChars(s, max-len(ellipsis)), " ") + ellipsis
}

// truncateAtWord shortens s to at most max characters, cutting at the last word boundary.
// A single word longer than max is hard-cut.
func truncateAtWord(s string, max int) string {
	s = strings.TrimSpace(s)
	if utf8.RuneCountInString(s) <= max {
		return s
	}
	cut := truncateChars(s, max)
	if idx := strings.LastIndexAny(cut, " \t\n"); idx > 0 {
		cut = cut[:idx]
	}
	return strings.TrimRight(cut, " ,;:-")
}
