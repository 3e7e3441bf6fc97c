package entity

import (
	"fmt"
	"strings"
)

// Pattern binds a literal phrase to a label. Matching is case-sensitive.
type Pattern struct {
	Label  Label
	Phrase string
}

// DefaultPatterns returns the stock degree and skill phrase table.
func DefaultPatterns() []Pattern {
	return []Pattern{
		{Label: Degree, Phrase: "BS"},
		{Label: Degree, Phrase: "B.Sc"},
		{Label: Degree, Phrase: "Bachelors"},
		{Label: Degree, Phrase: "Masters"},
		{Label: Degree, Phrase: "PhD"},
		{Label: Skill, Phrase: "Python"},
		{Label: Skill, Phrase: "Machine Learning"},
		{Label: Skill, Phrase: "SQL"},
	}
}

// Ruleset applies an ordered pattern table over normalized text.
// Registration order matters: when two patterns match the same surface
// text with different labels, the later-registered pattern's label wins.
type Ruleset struct {
	patterns []Pattern
}

// NewRuleset validates the pattern table and creates a Ruleset.
func NewRuleset(patterns []Pattern) (*Ruleset, error) {
	if len(patterns) == 0 {
		return nil, fmt.Errorf("at least one pattern is required")
	}
	cloned := make([]Pattern, len(patterns))
	for i, p := range patterns {
		if p.Phrase == "" {
			return nil, fmt.Errorf("pattern %d: phrase is required", i)
		}
		if !p.Label.Valid() {
			return nil, fmt.Errorf("pattern %d (%q): unknown label %q", i, p.Phrase, p.Label)
		}
		cloned[i] = p
	}
	return &Ruleset{patterns: cloned}, nil
}

// Patterns returns the registered pattern table in registration order.
func (r *Ruleset) Patterns() []Pattern {
	out := make([]Pattern, len(r.patterns))
	copy(out, r.patterns)
	return out
}

// Tag finds every literal occurrence of each registered phrase in text
// and returns one Entity per unique matched surface text. A surface text
// matched by several patterns carries the label of the last-registered
// one. Result order follows first discovery; callers must not rely on it.
func (r *Ruleset) Tag(text string) []Entity {
	labels := make(map[string]Label, len(r.patterns))
	order := make([]string, 0, len(r.patterns))

	for _, p := range r.patterns {
		if !strings.Contains(text, p.Phrase) {
			continue
		}
		if _, seen := labels[p.Phrase]; !seen {
			order = append(order, p.Phrase)
		}
		labels[p.Phrase] = p.Label
	}

	out := make([]Entity, 0, len(order))
	for _, surface := range order {
		out = append(out, Entity{text: surface, label: labels[surface]})
	}
	return out
}
