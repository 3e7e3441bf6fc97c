package entity

import "testing"

func makeRuleset(t *testing.T, patterns []Pattern) *Ruleset {
	t.Helper()
	r, err := NewRuleset(patterns)
	if err != nil {
		t.Fatalf("NewRuleset: %v", err)
	}
	return r
}

func findEntity(entities []Entity, text string) (Entity, bool) {
	for _, e := range entities {
		if e.Text() == text {
			return e, true
		}
	}
	return Entity{}, false
}

func TestNewRuleset_RejectsEmptyTable(t *testing.T) {
	if _, err := NewRuleset(nil); err == nil {
		t.Error("expected error for empty pattern table")
	}
}

func TestNewRuleset_RejectsEmptyPhrase(t *testing.T) {
	if _, err := NewRuleset([]Pattern{{Label: Skill, Phrase: ""}}); err == nil {
		t.Error("expected error for empty phrase")
	}
}

func TestNewRuleset_RejectsUnknownLabel(t *testing.T) {
	if _, err := NewRuleset([]Pattern{{Label: "OTHER", Phrase: "X"}}); err == nil {
		t.Error("expected error for unknown label")
	}
}

func TestTag_DefaultPatterns(t *testing.T) {
	r := makeRuleset(t, DefaultPatterns())
	entities := r.Tag("Masters in CS. Skills Python, SQL, Machine Learning.")

	want := map[string]Label{
		"Masters":          Degree,
		"Python":           Skill,
		"SQL":              Skill,
		"Machine Learning": Skill,
	}
	if len(entities) != len(want) {
		t.Fatalf("got %d entities, want %d: %v", len(entities), len(want), entities)
	}
	for surface, label := range want {
		e, ok := findEntity(entities, surface)
		if !ok {
			t.Errorf("missing entity %q", surface)
			continue
		}
		if e.Label() != label {
			t.Errorf("entity %q: got label %q, want %q", surface, e.Label(), label)
		}
	}
}

func TestTag_DeduplicatesRepeatedMatches(t *testing.T) {
	r := makeRuleset(t, DefaultPatterns())
	entities := r.Tag("Python Python Python")
	if len(entities) != 1 {
		t.Fatalf("got %d entities, want 1: %v", len(entities), entities)
	}
	if entities[0].Text() != "Python" || entities[0].Label() != Skill {
		t.Errorf("got (%q, %q)", entities[0].Text(), entities[0].Label())
	}
}

func TestTag_ConflictLastRegisteredWins(t *testing.T) {
	r := makeRuleset(t, []Pattern{
		{Label: Skill, Phrase: "X"},
		{Label: Degree, Phrase: "X"},
	})
	entities := r.Tag("X")
	if len(entities) != 1 {
		t.Fatalf("got %d entities, want 1: %v", len(entities), entities)
	}
	if entities[0].Label() != Degree {
		t.Errorf("got label %q, want %q (later registration wins)", entities[0].Label(), Degree)
	}
}

func TestTag_CaseSensitive(t *testing.T) {
	r := makeRuleset(t, DefaultPatterns())
	if entities := r.Tag("python sql"); len(entities) != 0 {
		t.Errorf("lowercase text should not match case-sensitive phrases, got %v", entities)
	}
}

func TestTag_NoMatches(t *testing.T) {
	r := makeRuleset(t, DefaultPatterns())
	if entities := r.Tag("nothing relevant here"); len(entities) != 0 {
		t.Errorf("got %v, want no entities", entities)
	}
}

func TestTag_EmptyText(t *testing.T) {
	r := makeRuleset(t, DefaultPatterns())
	if entities := r.Tag(""); len(entities) != 0 {
		t.Errorf("got %v, want no entities", entities)
	}
}
