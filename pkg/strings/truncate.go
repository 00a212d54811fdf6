package strings

// DisplayMaxLen is the widest a value may render in the argument echo and
// other single-line console output before it is shortened. The value matches
// the column layout of the fixed-width displays in pkg/display.
const DisplayMaxLen = 45

// MinTruncateLen is the smallest accepted maximum for TruncateTo. Anything
// smaller would not leave room for one character plus the ellipsis.
const MinTruncateLen = 4

const ellipsis = "..."

// Truncate shortens a string to DisplayMaxLen runes for display. When the
// string fits it is returned unchanged. Otherwise the least informative end
// is replaced with "...": by default the tail is dropped, with keepEnd the
// head is dropped so the distinguishing suffix (a file name, a session
// label) stays visible.
func Truncate(s string, keepEnd bool) string {
	return TruncateTo(s, DisplayMaxLen, keepEnd)
}

// TruncateTo shortens a string to at most maxLen runes, ellipsis included.
// It operates on runes rather than bytes so multi-byte characters are never
// split. A maxLen below MinTruncateLen is clamped to MinTruncateLen.
func TruncateTo(s string, maxLen int, keepEnd bool) string {
	if maxLen < MinTruncateLen {
		maxLen = MinTruncateLen
	}

	runes := []rune(s)
	if len(runes) <= maxLen {
		return s
	}

	keep := maxLen - len(ellipsis)
	if keepEnd {
		return ellipsis + string(runes[len(runes)-keep:])
	}
	return string(runes[:keep]) + ellipsis
}
