package response

import (
	"regexp"
	"strings"
)

var (
	listMarkerRX = regexp.MustCompile(`(?m)^\s*(?:[-*•]+|\d+[.)])\s+`)
	headerRX     = regexp.MustCompile(`(?m)^\s*#{1,6}\s+`)
	spaceRX      = regexp.MustCompile(`\s+`)
)

// Sanitize strips markdown artifacts the completion model tends to emit
// despite instructions: emphasis markers, bullets, numbered-list prefixes,
// headers, and embedded newlines. It is idempotent and never grows the
// text.
func Sanitize(s string) string {
	// Removing one marker can expose another that an earlier rule already
	// ran over ("*1. hello" leaves "1. hello" after the emphasis pass), so
	// passes repeat until the text is stable. Every rule only deletes or
	// normalizes whitespace, so the loop terminates.
	for {
		clean := sanitizePass(s)
		if clean == s {
			return clean
		}
		s = clean
	}
}

func sanitizePass(s string) string {
	s = strings.ReplaceAll(s, "\r\n", "\n")

	// Line-anchored markers first, while line structure still exists.
	s = headerRX.ReplaceAllString(s, "")
	s = listMarkerRX.ReplaceAllString(s, "")

	// Emphasis markers anywhere.
	s = strings.ReplaceAll(s, "**", "")
	s = strings.ReplaceAll(s, "__", "")
	s = strings.ReplaceAll(s, "_", "")
	s = strings.ReplaceAll(s, "*", "")
	s = strings.ReplaceAll(s, "•", "")

	// Collapse newlines and whitespace runs into single spaces.
	s = spaceRX.ReplaceAllString(s, " ")

	// A malformed opening can leave stray punctuation at the front.
	s = strings.TrimLeft(s, " \t.,:;-—")

	return strings.TrimSpace(s)
}

// WordCount counts whitespace-split tokens.
func WordCount(s string) int {
	return len(strings.Fields(s))
}
