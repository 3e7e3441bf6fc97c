// Package entity provides labeled-span tagging over normalized resume text.
package entity

import "fmt"

// Label classifies a tagged span.
type Label string

// Known entity labels.
const (
	Skill  Label = "SKILL"
	Degree Label = "DEGREE"
)

// Valid reports whether the label is one of the known labels.
func (l Label) Valid() bool {
	return l == Skill || l == Degree
}

// Entity is a labeled span of recognized text (immutable value object).
type Entity struct {
	text  string
	label Label
}

// New validates and creates an Entity.
func New(text string, label Label) (Entity, error) {
	if text == "" {
		return Entity{}, fmt.Errorf("entity text is required")
	}
	if !label.Valid() {
		return Entity{}, fmt.Errorf("unknown entity label %q", label)
	}
	return Entity{text: text, label: label}, nil
}

// Text returns the matched surface text.
func (e Entity) Text() string { return e.text }

// Label returns the entity label.
func (e Entity) Label() Label { return e.label }
