// Package text canonicalizes raw resume text for downstream matching.
package text

import (
	"regexp"
	"strings"
)

var (
	// Everything outside letters, digits, whitespace, period, hyphen, comma is dropped.
	disallowed = regexp.MustCompile(`[^a-zA-Z0-9\s.\-,]`)
	whitespace = regexp.MustCompile(`\s+`)
)

// Normalize strips disallowed characters, collapses every whitespace run
// to a single space, and trims the result.
// Total over any input and idempotent: the output contains only
// [A-Za-z0-9 .,-] and never two consecutive spaces.
func Normalize(raw string) string {
	s := disallowed.ReplaceAllString(raw, "")
	s = whitespace.ReplaceAllString(s, " ")
	return strings.TrimSpace(s)
}
