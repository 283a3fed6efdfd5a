// Package text provides utilities for text processing. The functions
// operate on runes rather than bytes so Cyrillic and other multi-byte
// text is handled correctly.
package text

// CountRunes counts the number of Unicode characters in the text.
func CountRunes(text string) int {
	return len([]rune(text))
}

// Truncate shortens text to at most limit runes, appending an ellipsis
// when something was cut. Text at or under the limit is returned as is.
func Truncate(text string, limit int) string {
	if limit <= 0 {
		return ""
	}
	runes := []rune(text)
	if len(runes) <= limit {
		return text
	}
	return string(runes[:limit]) + "…"
}
