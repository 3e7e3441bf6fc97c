// Package resume defines the analyzed resume aggregate.
package resume

import "fmt"

// MaxNameLen is the maximum length of a caller-supplied record name.
const MaxNameLen = 256

// Record aggregates the extraction outputs for one resume
// (immutable value object).
type Record struct {
	name       string
	skills     []string
	education  []string
	experience []string
	rawText    string
}

// New validates and creates a Record.
// Name is the caller-supplied identifier; uniqueness is not checked here.
// Skills and education carry set semantics: duplicates collapse, first
// occurrence wins the position. Experience keeps order and duplicates.
func New(name string, skills, education, experience []string, rawText string) (Record, error) {
	if name == "" {
		return Record{}, fmt.Errorf("record name is required")
	}
	if len(name) > MaxNameLen {
		return Record{}, fmt.Errorf("record name too long (max %d)", MaxNameLen)
	}

	return Record{
		name:       name,
		skills:     dedupe(skills),
		education:  dedupe(education),
		experience: cloneSlice(experience),
		rawText:    rawText,
	}, nil
}

// Reconstruct creates a Record without validation (storage hydration).
func Reconstruct(name string, skills, education, experience []string, rawText string) Record {
	return Record{
		name:       name,
		skills:     skills,
		education:  education,
		experience: experience,
		rawText:    rawText,
	}
}

// Name returns the caller-supplied identifier.
func (r Record) Name() string { return r.name }

// Skills returns the deduplicated skill surface texts.
func (r Record) Skills() []string { return r.skills }

// Education returns the deduplicated degree surface texts.
func (r Record) Education() []string { return r.education }

// Experience returns the date-range spans in order of appearance.
func (r Record) Experience() []string { return r.experience }

// RawText returns the normalized resume text.
func (r Record) RawText() string { return r.rawText }

func dedupe(items []string) []string {
	if items == nil {
		return nil
	}
	seen := make(map[string]bool, len(items))
	out := make([]string, 0, len(items))
	for _, s := range items {
		if seen[s] {
			continue
		}
		seen[s] = true
		out = append(out, s)
	}
	return out
}

func cloneSlice(items []string) []string {
	if items == nil {
		return nil
	}
	c := make([]string, len(items))
	copy(c, items)
	return c
}
