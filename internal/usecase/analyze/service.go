// Package analyze runs the resume extraction pipeline and manages stored records.
package analyze

import (
	"context"
	"fmt"
	"sync"

	"github.com/talentgrid/resumedex/internal/domain"
	dombatch "github.com/talentgrid/resumedex/internal/domain/batch"
	"github.com/talentgrid/resumedex/internal/domain/entity"
	"github.com/talentgrid/resumedex/internal/domain/experience"
	domres "github.com/talentgrid/resumedex/internal/domain/resume"
	"github.com/talentgrid/resumedex/internal/domain/text"
	"github.com/talentgrid/resumedex/internal/metrics"
)

// MaxBatchSize is the maximum number of items per batch request.
const MaxBatchSize = 100

// Item is one resume in a batch analyze request.
type Item struct {
	Name string
	Text string
}

// Service handles resume analysis and record lifecycle.
type Service struct {
	repo         Repository
	extractor    Extractor
	ruleset      *entity.Ruleset
	matcher      *experience.Matcher
	workers      int
	maxBatchSize int
}

// New creates an analyze service.
func New(repo Repository, extractor Extractor, ruleset *entity.Ruleset, matcher *experience.Matcher, workers int) *Service {
	if workers < 1 {
		workers = 1
	}
	return &Service{
		repo:         repo,
		extractor:    extractor,
		ruleset:      ruleset,
		matcher:      matcher,
		workers:      workers,
		maxBatchSize: MaxBatchSize,
	}
}

// WithMaxBatchSize configures the maximum batch size.
func (s *Service) WithMaxBatchSize(size int) *Service {
	if size > 0 {
		s.maxBatchSize = size
	}
	return s
}

// AnalyzeText runs the pipeline on plain text and persists the record.
func (s *Service) AnalyzeText(ctx context.Context, name, rawText string) (domres.Record, error) {
	rec, err := s.buildRecord(name, rawText)
	if err != nil {
		metrics.ResumesAnalyzedTotal.WithLabelValues("error").Inc()
		return domres.Record{}, err
	}

	if _, err := s.repo.Save(ctx, rec); err != nil {
		metrics.ResumesAnalyzedTotal.WithLabelValues("error").Inc()
		return domres.Record{}, fmt.Errorf("save record: %w", err)
	}

	metrics.ResumesAnalyzedTotal.WithLabelValues("success").Inc()
	return rec, nil
}

// AnalyzeDocument extracts text from a raw document and runs the pipeline.
func (s *Service) AnalyzeDocument(ctx context.Context, name string, data []byte) (domres.Record, error) {
	extracted, err := s.extractor.ExtractText(ctx, data)
	if err != nil {
		metrics.ResumesAnalyzedTotal.WithLabelValues("error").Inc()
		return domres.Record{}, fmt.Errorf("extract document: %w", err)
	}
	return s.AnalyzeText(ctx, name, extracted)
}

// AnalyzeBatch runs the pipeline over multiple resumes concurrently with
// per-item error reporting. Results keep the input order.
func (s *Service) AnalyzeBatch(ctx context.Context, items []Item) []dombatch.Result {
	results := make([]dombatch.Result, len(items))

	if len(items) > s.maxBatchSize {
		for i, item := range items {
			results[i] = dombatch.NewError(
				item.Name,
				fmt.Errorf("batch size exceeds %d: %w", s.maxBatchSize, domain.ErrInvalidInput),
			)
		}
		return results
	}

	sem := make(chan struct{}, s.workers)
	var wg sync.WaitGroup

	for i, item := range items {
		wg.Add(1)
		go func(i int, item Item) {
			defer wg.Done()
			sem <- struct{}{}
			defer func() { <-sem }()

			if _, err := s.AnalyzeText(ctx, item.Name, item.Text); err != nil {
				results[i] = dombatch.NewError(item.Name, err)
				return
			}
			results[i] = dombatch.NewOK(item.Name)
		}(i, item)
	}
	wg.Wait()

	return results
}

// Get returns a stored record by name.
func (s *Service) Get(ctx context.Context, name string) (domres.Record, error) {
	rec, err := s.repo.Get(ctx, name)
	if err != nil {
		return domres.Record{}, fmt.Errorf("get record: %w", err)
	}
	return rec, nil
}

// List returns stored records with cursor-based pagination.
func (s *Service) List(ctx context.Context, cursor string, limit int) ([]domres.Record, string, error) {
	records, next, err := s.repo.List(ctx, cursor, limit)
	if err != nil {
		return nil, "", fmt.Errorf("list records: %w", err)
	}
	return records, next, nil
}

// Delete removes a stored record.
func (s *Service) Delete(ctx context.Context, name string) error {
	if err := s.repo.Delete(ctx, name); err != nil {
		return fmt.Errorf("delete record: %w", err)
	}
	return nil
}

// Count returns the number of stored records.
func (s *Service) Count(ctx context.Context) (int, error) {
	n, err := s.repo.Count(ctx)
	if err != nil {
		return 0, fmt.Errorf("count records: %w", err)
	}
	return n, nil
}

func (s *Service) buildRecord(name, rawText string) (domres.Record, error) {
	normalized := text.Normalize(rawText)

	var skills, education []string
	for _, e := range s.ruleset.Tag(normalized) {
		switch e.Label() {
		case entity.Skill:
			skills = append(skills, e.Text())
		case entity.Degree:
			education = append(education, e.Text())
		}
	}

	spans := s.matcher.Extract(normalized)

	rec, err := domres.New(name, skills, education, spans, normalized)
	if err != nil {
		return domres.Record{}, fmt.Errorf("%w: %w", domain.ErrInvalidInput, err)
	}
	return rec, nil
}
