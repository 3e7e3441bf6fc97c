package resumedex

import (
	"github.com/talentgrid/resumedex/internal/domain/batch"
	"github.com/talentgrid/resumedex/internal/domain/entity"
	domrank "github.com/talentgrid/resumedex/internal/domain/rank"
	domres "github.com/talentgrid/resumedex/internal/domain/resume"
)

// EntityLabel classifies a tagged phrase.
type EntityLabel string

// Entity label constants.
const (
	LabelSkill  EntityLabel = "SKILL"
	LabelDegree EntityLabel = "DEGREE"
)

// Pattern binds a literal phrase to a label for the tagger.
// Matching is case-sensitive; later patterns win label conflicts.
type Pattern struct {
	Label  EntityLabel
	Phrase string
}

// Resume is a structured resume record.
type Resume struct {
	Name       string
	Skills     []string
	Education  []string
	Experience []string
	RawText    string
}

// RankedResume pairs a resume with its relevance score in [0, 1].
type RankedResume struct {
	Resume Resume
	Score  float64
}

// BatchItem is one resume submitted for batch analysis.
type BatchItem struct {
	Name string
	Text string
}

// BatchResult is the outcome of one item in a batch operation.
type BatchResult struct {
	Name string
	OK   bool
	Err  error
}

// ListResult is a paginated list of resumes.
type ListResult struct {
	Resumes    []Resume
	NextCursor string
}

func toInternalPatterns(patterns []Pattern) []entity.Pattern {
	out := make([]entity.Pattern, len(patterns))
	for i, p := range patterns {
		out[i] = entity.Pattern{Label: entity.Label(p.Label), Phrase: p.Phrase}
	}
	return out
}

func fromInternalResume(r domres.Record) Resume {
	return Resume{
		Name:       r.Name(),
		Skills:     r.Skills(),
		Education:  r.Education(),
		Experience: r.Experience(),
		RawText:    r.RawText(),
	}
}

func fromInternalRanked(ranked []domrank.Ranked) []RankedResume {
	out := make([]RankedResume, len(ranked))
	for i, r := range ranked {
		out[i] = RankedResume{
			Resume: fromInternalResume(r.Record()),
			Score:  r.Score(),
		}
	}
	return out
}

func fromBatchResults(results []batch.Result) []BatchResult {
	out := make([]BatchResult, len(results))
	for i, r := range results {
		out[i] = BatchResult{
			Name: r.Name(),
			OK:   r.Status() == batch.StatusOK,
			Err:  r.Err(),
		}
	}
	return out
}
