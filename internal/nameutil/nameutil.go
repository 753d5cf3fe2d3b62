// Package nameutil cleans up search input before it reaches the filter or
// the API.
package nameutil

import (
	"fmt"
	"strings"
	"unicode"
	"unicode/utf8"
)

// MaxIdentifierLen bounds terms sent to the API.
const MaxIdentifierLen = 64

// SanitizeQuery drops control and zero-width characters (common in pasted
// text) and trims surrounding whitespace.
func SanitizeQuery(q string) string {
	if q == "" {
		return q
	}
	var b strings.Builder
	b.Grow(len(q))
	for _, r := range q {
		if unicode.IsControl(r) {
			continue
		}
		switch r {
		case '\u200B', '\u200C', '\u200D', '\uFEFF':
			continue
		}
		b.WriteRune(r)
	}
	return strings.TrimSpace(b.String())
}

// ValidateIdentifier checks that term can be used as a single path segment
// of a lookup URL.
func ValidateIdentifier(term string) error {
	term = strings.TrimSpace(term)
	if term == "" {
		return fmt.Errorf("invalid identifier: empty")
	}
	if !utf8.ValidString(term) {
		return fmt.Errorf("invalid identifier: contains invalid encoding")
	}
	if utf8.RuneCountInString(term) > MaxIdentifierLen {
		return fmt.Errorf("invalid identifier: longer than %d characters", MaxIdentifierLen)
	}
	for _, r := range term {
		if unicode.IsControl(r) {
			return fmt.Errorf("invalid identifier: contains control character U+%04X (%q)", r, r)
		}
		switch r {
		case '/', '\\', '?', '#':
			return fmt.Errorf("invalid identifier: contains %q", r)
		}
	}
	return nil
}
