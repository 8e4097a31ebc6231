package domain

import (
	"strings"
	"unicode"
)

// Slugify normalizes a display name (or an explicitly requested slug) into
// its URL-safe form:
//   - trims leading/trailing whitespace
//   - converts to lowercase
//   - collapses every whitespace run into a single hyphen
//
// It performs no uniqueness check; an empty input yields an empty slug.
func Slugify(text string) string {
	text = strings.TrimSpace(text)
	if text == "" {
		return ""
	}
	text = strings.ToLower(text)

	var b strings.Builder
	b.Grow(len(text))
	inSpace := false
	for _, r := range text {
		if unicode.IsSpace(r) {
			if inSpace {
				continue
			}
			inSpace = true
			b.WriteRune('-')
			continue
		}
		inSpace = false
		b.WriteRune(r)
	}
	return b.String()
}
