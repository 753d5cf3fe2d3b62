// Package sanitize cleans remote text before it reaches the terminal. API
// payloads are untrusted: escape sequences could move the cursor, switch
// screens or recolour the UI, so they are removed outright.
package sanitize

import (
	"regexp"
	"strings"
	"unicode"
)

var (
	oscRe = regexp.MustCompile(`\x1b\][^\x07\x1b]*(\x07|\x1b\\)?`)
	csiRe = regexp.MustCompile(`\x1b\[[0-9;?]*[ -/]*[@-~]`)
)

// Display removes escape sequences and control characters from s. Form
// feeds, tabs and carriage returns become spaces; newlines are kept.
func Display(s string) string {
	out := strings.ReplaceAll(s, "\r\n", "\n")
	out = oscRe.ReplaceAllString(out, "")
	out = csiRe.ReplaceAllString(out, "")
	return strings.Map(func(r rune) rune {
		switch {
		case r == '\n':
			return r
		case r == '\f' || r == '\t' || r == '\r' || r == '\v':
			return ' '
		case unicode.IsControl(r):
			return -1
		}
		return r
	}, out)
}

// Line is Display flattened to a single line with runs of whitespace
// collapsed.
func Line(s string) string {
	return strings.Join(strings.Fields(Display(s)), " ")
}
