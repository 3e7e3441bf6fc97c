package resumedex

import (
	"context"

	dombatch "github.com/talentgrid/resumedex/internal/domain/batch"
	domrank "github.com/talentgrid/resumedex/internal/domain/rank"
	domres "github.com/talentgrid/resumedex/internal/domain/resume"
	analyzeuc "github.com/talentgrid/resumedex/internal/usecase/analyze"
	healthuc "github.com/talentgrid/resumedex/internal/usecase/health"
)

// --- analyzeUseCase mock ---

type mockAnalyzeUC struct {
	analyzeTextFn     func(ctx context.Context, name, rawText string) (domres.Record, error)
	analyzeDocumentFn func(ctx context.Context, name string, data []byte) (domres.Record, error)
	analyzeBatchFn    func(ctx context.Context, items []analyzeuc.Item) []dombatch.Result
	getFn             func(ctx context.Context, name string) (domres.Record, error)
	listFn            func(ctx context.Context, cursor string, limit int) ([]domres.Record, string, error)
	deleteFn          func(ctx context.Context, name string) error
	countFn           func(ctx context.Context) (int, error)
}

func (m *mockAnalyzeUC) AnalyzeText(ctx context.Context, name, rawText string) (domres.Record, error) {
	return m.analyzeTextFn(ctx, name, rawText)
}

func (m *mockAnalyzeUC) AnalyzeDocument(ctx context.Context, name string, data []byte) (domres.Record, error) {
	return m.analyzeDocumentFn(ctx, name, data)
}

func (m *mockAnalyzeUC) AnalyzeBatch(ctx context.Context, items []analyzeuc.Item) []dombatch.Result {
	return m.analyzeBatchFn(ctx, items)
}

func (m *mockAnalyzeUC) Get(ctx context.Context, name string) (domres.Record, error) {
	return m.getFn(ctx, name)
}

func (m *mockAnalyzeUC) List(
	ctx context.Context, cursor string, limit int,
) ([]domres.Record, string, error) {
	return m.listFn(ctx, cursor, limit)
}

func (m *mockAnalyzeUC) Delete(ctx context.Context, name string) error {
	return m.deleteFn(ctx, name)
}

func (m *mockAnalyzeUC) Count(ctx context.Context) (int, error) {
	return m.countFn(ctx)
}

// --- rankUseCase mock ---

type mockRankUC struct {
	rankStoredFn func(ctx context.Context, names []string, jobDescription string) ([]domrank.Ranked, error)
}

func (m *mockRankUC) RankStored(
	ctx context.Context, names []string, jobDescription string,
) ([]domrank.Ranked, error) {
	return m.rankStoredFn(ctx, names, jobDescription)
}

// --- healthUseCase mock ---

type mockHealthUC struct {
	checkFn func(ctx context.Context) healthuc.Report
}

func (m *mockHealthUC) Check(ctx context.Context) healthuc.Report {
	return m.checkFn(ctx)
}

// --- Extractor mock ---

type mockExtractor struct {
	fn func(ctx context.Context, data []byte) (string, error)
}

func (m *mockExtractor) ExtractText(ctx context.Context, data []byte) (string, error) {
	return m.fn(ctx, data)
}
