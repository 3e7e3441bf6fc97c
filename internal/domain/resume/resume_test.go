package resume

import (
	"strings"
	"testing"
)

func TestNew_Valid(t *testing.T) {
	rec, err := New("alice", []string{"Python", "SQL"}, []string{"PhD"}, []string{"Jan 2019 - Present"}, "raw")
	if err != nil {
		t.Fatalf("New: %v", err)
	}
	if rec.Name() != "alice" {
		t.Errorf("name = %q, want alice", rec.Name())
	}
	if len(rec.Skills()) != 2 {
		t.Errorf("skills = %v, want 2 items", rec.Skills())
	}
	if rec.RawText() != "raw" {
		t.Errorf("rawText = %q", rec.RawText())
	}
}

func TestNew_EmptyName(t *testing.T) {
	if _, err := New("", nil, nil, nil, ""); err == nil {
		t.Fatal("expected error for empty name")
	}
}

func TestNew_NameTooLong(t *testing.T) {
	name := strings.Repeat("a", MaxNameLen+1)
	if _, err := New(name, nil, nil, nil, ""); err == nil {
		t.Fatal("expected error for name over limit")
	}
	ok := strings.Repeat("a", MaxNameLen)
	if _, err := New(ok, nil, nil, nil, ""); err != nil {
		t.Fatalf("name at limit: %v", err)
	}
}

func TestNew_DeduplicatesSkillsKeepingFirstOccurrence(t *testing.T) {
	rec, err := New("bob", []string{"SQL", "Python", "SQL", "Python"}, nil, nil, "")
	if err != nil {
		t.Fatalf("New: %v", err)
	}
	got := rec.Skills()
	want := []string{"SQL", "Python"}
	if len(got) != len(want) {
		t.Fatalf("skills = %v, want %v", got, want)
	}
	for i := range want {
		if got[i] != want[i] {
			t.Errorf("skills[%d] = %q, want %q", i, got[i], want[i])
		}
	}
}

func TestNew_DeduplicatesEducation(t *testing.T) {
	rec, err := New("bob", nil, []string{"Masters", "PhD", "Masters"}, nil, "")
	if err != nil {
		t.Fatalf("New: %v", err)
	}
	if len(rec.Education()) != 2 {
		t.Errorf("education = %v, want 2 items", rec.Education())
	}
}

func TestNew_ExperienceKeepsDuplicatesAndOrder(t *testing.T) {
	spans := []string{"Jan 2019 - Present", "Jan 2019 - Present", "Mar 2020 - Apr 2021"}
	rec, err := New("carol", nil, nil, spans, "")
	if err != nil {
		t.Fatalf("New: %v", err)
	}
	got := rec.Experience()
	if len(got) != 3 {
		t.Fatalf("experience = %v, want 3 items", got)
	}
	for i := range spans {
		if got[i] != spans[i] {
			t.Errorf("experience[%d] = %q, want %q", i, got[i], spans[i])
		}
	}
}

func TestReconstruct_SkipsValidation(t *testing.T) {
	rec := Reconstruct("", []string{"dup", "dup"}, nil, nil, "")
	if rec.Name() != "" {
		t.Errorf("name = %q, want empty", rec.Name())
	}
	if len(rec.Skills()) != 2 {
		t.Errorf("skills = %v, want stored as-is", rec.Skills())
	}
}
