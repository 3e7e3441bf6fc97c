package entity

import "testing"

func TestNew_Valid(t *testing.T) {
	e, err := New("Python", Skill)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if e.Text() != "Python" || e.Label() != Skill {
		t.Errorf("got (%q, %q)", e.Text(), e.Label())
	}
}

func TestNew_EmptyText(t *testing.T) {
	if _, err := New("", Skill); err == nil {
		t.Error("expected error for empty text")
	}
}

func TestNew_UnknownLabel(t *testing.T) {
	if _, err := New("Python", Label("LANGUAGE")); err == nil {
		t.Error("expected error for unknown label")
	}
}

func TestLabel_Valid(t *testing.T) {
	cases := []struct {
		label Label
		want  bool
	}{
		{Skill, true},
		{Degree, true},
		{Label(""), false},
		{Label("skill"), false},
	}
	for _, c := range cases {
		if got := c.label.Valid(); got != c.want {
			t.Errorf("Valid(%q) = %v, want %v", c.label, got, c.want)
		}
	}
}
