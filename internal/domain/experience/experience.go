// Package experience extracts date-range expressions from normalized resume text.
package experience

import (
	"fmt"
	"regexp"
	"strings"
)

// DefaultMonths is the stock calendar-month vocabulary. Tokens are
// three-letter prefixes; longer month names still match because the
// grammar permits trailing letters after a token.
func DefaultMonths() []string {
	return []string{"Jan", "Feb", "Mar", "Apr", "May", "Jun", "Jul", "Aug", "Sep", "Oct", "Nov", "Dec"}
}

// Matcher recognizes date ranges of the form
// "<month> <year> - <month> <year>" or "<month> <year> - present",
// case-insensitively, with space, hyphen, or en-dash separators.
type Matcher struct {
	re *regexp.Regexp
}

// NewMatcher compiles a Matcher for the given month vocabulary.
func NewMatcher(months []string) (*Matcher, error) {
	if len(months) == 0 {
		return nil, fmt.Errorf("month vocabulary is required")
	}
	for i, m := range months {
		if m == "" {
			return nil, fmt.Errorf("month token %d is empty", i)
		}
	}

	quoted := make([]string, len(months))
	for i, m := range months {
		quoted[i] = regexp.QuoteMeta(m)
	}
	alt := strings.Join(quoted, "|")
	point := `(?:` + alt + `)[a-z\s\-,]*\d{4}`
	expr := `(?i)(` + point + `)[\s–\-]+(present|` + point + `)`

	re, err := regexp.Compile(expr)
	if err != nil {
		return nil, fmt.Errorf("compile date-range pattern: %w", err)
	}
	return &Matcher{re: re}, nil
}

// Extract returns every non-overlapping date-range match as a trimmed
// substring, left to right. Duplicates are kept: the same range written
// twice yields two entries. Zero matches returns an empty sequence.
func (m *Matcher) Extract(text string) []string {
	matches := m.re.FindAllString(text, -1)
	out := make([]string, 0, len(matches))
	for _, s := range matches {
		out = append(out, strings.TrimSpace(s))
	}
	return out
}

var defaultMatcher = mustMatcher(DefaultMonths())

// Extract applies the default month vocabulary.
func Extract(text string) []string {
	return defaultMatcher.Extract(text)
}

func mustMatcher(months []string) *Matcher {
	m, err := NewMatcher(months)
	if err != nil {
		panic(err)
	}
	return m
}
