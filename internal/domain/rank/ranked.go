// Package rank defines ranking result value objects.
package rank

import "github.com/talentgrid/resumedex/internal/domain/resume"

// Ranked is a single ranked resume.
type Ranked struct {
	record resume.Record
	score  float64
}

// NewRanked creates a ranked entry.
func NewRanked(record resume.Record, score float64) Ranked {
	return Ranked{record: record, score: score}
}

// Record returns the ranked resume.
func (r Ranked) Record() resume.Record { return r.record }

// Score returns the similarity score in [0, 1].
func (r Ranked) Score() float64 { return r.score }
