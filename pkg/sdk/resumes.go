package resumedex

import (
	"context"
	"fmt"
	"time"

	analyzeuc "github.com/talentgrid/resumedex/internal/usecase/analyze"
)

// ResumeService analyzes and stores resumes.
type ResumeService struct {
	svc analyzeUseCase
	obs *observer
}

// Analyze runs the extraction pipeline over raw text and stores the
// resulting record under the given name. Re-analyzing an existing name
// overwrites the stored record.
func (s *ResumeService) Analyze(ctx context.Context, name, text string) (_ Resume, err error) {
	start := time.Now()
	defer func() { s.obs.observe("analyze", start, err) }()

	rec, err := s.svc.AnalyzeText(ctx, name, text)
	if err != nil {
		return Resume{}, fmt.Errorf("analyze: %w", err)
	}
	return fromInternalResume(rec), nil
}

// AnalyzeDocument extracts plain text from a binary document and then
// runs the analysis pipeline. Requires a configured extractor.
func (s *ResumeService) AnalyzeDocument(ctx context.Context, name string, data []byte) (_ Resume, err error) {
	start := time.Now()
	defer func() { s.obs.observe("analyze_document", start, err) }()

	rec, err := s.svc.AnalyzeDocument(ctx, name, data)
	if err != nil {
		return Resume{}, fmt.Errorf("analyze document: %w", err)
	}
	return fromInternalResume(rec), nil
}

// AnalyzeBatch analyzes multiple resumes concurrently. The result slice
// is positionally aligned with the input; per-item failures do not
// abort the batch.
func (s *ResumeService) AnalyzeBatch(ctx context.Context, items []BatchItem) []BatchResult {
	start := time.Now()
	defer func() { s.obs.observe("analyze_batch", start, nil) }()

	internal := make([]analyzeuc.Item, len(items))
	for i, it := range items {
		internal[i] = analyzeuc.Item{Name: it.Name, Text: it.Text}
	}
	return fromBatchResults(s.svc.AnalyzeBatch(ctx, internal))
}

// Get retrieves a stored resume by name.
func (s *ResumeService) Get(ctx context.Context, name string) (_ Resume, err error) {
	start := time.Now()
	defer func() { s.obs.observe("get", start, err) }()

	rec, err := s.svc.Get(ctx, name)
	if err != nil {
		return Resume{}, fmt.Errorf("get resume: %w", err)
	}
	return fromInternalResume(rec), nil
}

// List returns a paginated list of stored resumes ordered by name.
// Pass an empty cursor for the first page.
func (s *ResumeService) List(ctx context.Context, cursor string, limit int) (_ ListResult, err error) {
	start := time.Now()
	defer func() { s.obs.observe("list", start, err) }()

	recs, next, err := s.svc.List(ctx, cursor, limit)
	if err != nil {
		return ListResult{}, fmt.Errorf("list resumes: %w", err)
	}
	out := make([]Resume, len(recs))
	for i, r := range recs {
		out[i] = fromInternalResume(r)
	}
	return ListResult{Resumes: out, NextCursor: next}, nil
}

// Delete removes a stored resume by name.
func (s *ResumeService) Delete(ctx context.Context, name string) (err error) {
	start := time.Now()
	defer func() { s.obs.observe("delete", start, err) }()

	if err = s.svc.Delete(ctx, name); err != nil {
		return fmt.Errorf("delete resume: %w", err)
	}
	return nil
}

// Count returns the number of stored resumes.
func (s *ResumeService) Count(ctx context.Context) (_ int, err error) {
	start := time.Now()
	defer func() { s.obs.observe("count", start, err) }()

	n, err := s.svc.Count(ctx)
	if err != nil {
		return 0, fmt.Errorf("count: %w", err)
	}
	return n, nil
}
