// Package moderation implements the blocklist check applied to submitted
// comment text. The check is a pure function over (text, blocklist) so it
// can be unit-tested without any HTTP or storage machinery.
package moderation

import "strings"

// BadWords is the default blocklist. Matching is case-sensitive, exact
// substring, not tokenized: a forbidden word inside a longer word still
// rejects the text.
var BadWords = []string{"редиска", "негодяй"}

// Warning is the message attached to a rejected comment. A text containing
// several forbidden words still produces this single warning.
const Warning = "Watch your language! The comment was not accepted."

// FirstMatch returns the first blocklisted entry found in text, or "" when
// the text is clean. Blocklist order decides which match wins.
func FirstMatch(text string, blocklist []string) string {
	for _, word := range blocklist {
		if word == "" {
			continue
		}
		if strings.Contains(text, word) {
			return word
		}
	}
	return ""
}

// Allowed reports whether text passes the blocklist check.
func Allowed(text string, blocklist []string) bool {
	return FirstMatch(text, blocklist) == ""
}
