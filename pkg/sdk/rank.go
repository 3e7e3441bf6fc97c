package resumedex

import (
	"context"
	"fmt"
	"time"
)

// RankService scores stored resumes against a job description.
type RankService struct {
	svc rankUseCase
	obs *observer
}

// Stored ranks stored resumes by TF-IDF cosine similarity to the job
// description, best match first. With no names given, every stored
// resume participates; otherwise only the named ones do, and a missing
// name fails the whole call with ErrResumeNotFound.
func (s *RankService) Stored(ctx context.Context, jobDescription string, names ...string) (_ []RankedResume, err error) {
	start := time.Now()
	defer func() { s.obs.observe("rank", start, err) }()

	ranked, err := s.svc.RankStored(ctx, names, jobDescription)
	if err != nil {
		return nil, fmt.Errorf("rank: %w", err)
	}
	return fromInternalRanked(ranked), nil
}
