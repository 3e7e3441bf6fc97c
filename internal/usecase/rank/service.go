// Package rank scores resumes against a job description with TF-IDF cosine similarity.
package rank

import (
	"context"
	"fmt"
	"sort"
	"strings"

	"github.com/talentgrid/resumedex/internal/domain"
	domrank "github.com/talentgrid/resumedex/internal/domain/rank"
	domres "github.com/talentgrid/resumedex/internal/domain/resume"
	"github.com/talentgrid/resumedex/internal/metrics"
)

// Service handles resume ranking.
type Service struct {
	records RecordReader
}

// New creates a ranking service.
func New(records RecordReader) *Service {
	return &Service{records: records}
}

// Rank scores the given records against the job description and returns them
// in descending score order. Ties keep input order. The vectorizer is fitted
// on the job description alone, so resume terms absent from it do not
// contribute to the score.
func (s *Service) Rank(records []domres.Record, jobDescription string) ([]domrank.Ranked, error) {
	if strings.TrimSpace(jobDescription) == "" {
		return nil, fmt.Errorf("job description is empty: %w", domain.ErrEmptyJobDescription)
	}

	metrics.RankRequestsTotal.Inc()
	metrics.RankBatchSize.Observe(float64(len(records)))

	v := fitVectorizer([]string{jobDescription})
	jdVec := v.transform(jobDescription)

	ranked := make([]domrank.Ranked, len(records))
	for i, rec := range records {
		score := cosine(jdVec, v.transform(rec.RawText()))
		ranked[i] = domrank.NewRanked(rec, score)
	}

	sort.SliceStable(ranked, func(i, j int) bool {
		return ranked[i].Score() > ranked[j].Score()
	})

	return ranked, nil
}

// RankStored loads records by name and ranks them. An empty names slice
// ranks every stored record.
func (s *Service) RankStored(ctx context.Context, names []string, jobDescription string) ([]domrank.Ranked, error) {
	if strings.TrimSpace(jobDescription) == "" {
		return nil, fmt.Errorf("job description is empty: %w", domain.ErrEmptyJobDescription)
	}

	var records []domres.Record
	if len(names) == 0 {
		all, err := s.records.All(ctx)
		if err != nil {
			return nil, fmt.Errorf("load records: %w", err)
		}
		records = all
	} else {
		records = make([]domres.Record, 0, len(names))
		for _, name := range names {
			rec, err := s.records.Get(ctx, name)
			if err != nil {
				return nil, fmt.Errorf("load record %s: %w", name, err)
			}
			records = append(records, rec)
		}
	}

	return s.Rank(records, jobDescription)
}
