package rank

import (
	"context"
	"errors"
	"testing"

	"github.com/talentgrid/resumedex/internal/domain"
	domres "github.com/talentgrid/resumedex/internal/domain/resume"
)

type mockReader struct {
	getFn func(ctx context.Context, name string) (domres.Record, error)
	allFn func(ctx context.Context) ([]domres.Record, error)
}

func (m *mockReader) Get(ctx context.Context, name string) (domres.Record, error) {
	if m.getFn != nil {
		return m.getFn(ctx, name)
	}
	return domres.Record{}, domain.ErrResumeNotFound
}

func (m *mockReader) All(ctx context.Context) ([]domres.Record, error) {
	if m.allFn != nil {
		return m.allFn(ctx)
	}
	return nil, nil
}

func record(t *testing.T, name, rawText string) domres.Record {
	t.Helper()
	rec, err := domres.New(name, nil, nil, nil, rawText)
	if err != nil {
		t.Fatalf("record: %v", err)
	}
	return rec
}

func TestRank_OrdersByDescendingScore(t *testing.T) {
	svc := New(&mockReader{})
	jd := "senior python developer with sql and machine learning experience"

	records := []domres.Record{
		record(t, "weak", "java developer"),
		record(t, "strong", "python developer with sql and machine learning background"),
		record(t, "none", "pastry chef"),
	}

	ranked, err := svc.Rank(records, jd)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if len(ranked) != 3 {
		t.Fatalf("expected 3 results, got %d", len(ranked))
	}
	if ranked[0].Record().Name() != "strong" {
		t.Errorf("top result = %s, want strong", ranked[0].Record().Name())
	}
	for i := 1; i < len(ranked); i++ {
		if ranked[i].Score() > ranked[i-1].Score() {
			t.Errorf("scores not descending at %d: %f > %f", i, ranked[i].Score(), ranked[i-1].Score())
		}
	}
}

func TestRank_ScoresWithinUnitInterval(t *testing.T) {
	svc := New(&mockReader{})

	ranked, err := svc.Rank([]domres.Record{
		record(t, "a", "python sql"),
		record(t, "b", "unrelated text entirely"),
	}, "python sql")
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	for _, r := range ranked {
		if r.Score() < 0 || r.Score() > 1 {
			t.Errorf("score %f outside [0, 1]", r.Score())
		}
	}
}

func TestRank_ZeroOverlapScoresZero(t *testing.T) {
	svc := New(&mockReader{})

	ranked, err := svc.Rank([]domres.Record{record(t, "chef", "pastry chef")}, "python developer")
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if ranked[0].Score() != 0 {
		t.Errorf("score = %f, want 0", ranked[0].Score())
	}
}

func TestRank_Deterministic(t *testing.T) {
	svc := New(&mockReader{})
	records := []domres.Record{
		record(t, "a", "python sql developer"),
		record(t, "b", "machine learning engineer python"),
	}
	jd := "python machine learning"

	first, err := svc.Rank(records, jd)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	second, err := svc.Rank(records, jd)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	for i := range first {
		if first[i].Record().Name() != second[i].Record().Name() || first[i].Score() != second[i].Score() {
			t.Errorf("run mismatch at %d: %s/%f vs %s/%f", i,
				first[i].Record().Name(), first[i].Score(),
				second[i].Record().Name(), second[i].Score())
		}
	}
}

func TestRank_TiesKeepInputOrder(t *testing.T) {
	svc := New(&mockReader{})
	records := []domres.Record{
		record(t, "first", "python"),
		record(t, "second", "python"),
	}

	ranked, err := svc.Rank(records, "python")
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if ranked[0].Record().Name() != "first" || ranked[1].Record().Name() != "second" {
		t.Errorf("tie order = %s, %s", ranked[0].Record().Name(), ranked[1].Record().Name())
	}
}

func TestRank_EmptyJobDescription(t *testing.T) {
	svc := New(&mockReader{})

	for _, jd := range []string{"", "   ", "\t\n"} {
		_, err := svc.Rank([]domres.Record{record(t, "a", "python")}, jd)
		if !errors.Is(err, domain.ErrEmptyJobDescription) {
			t.Errorf("jd %q: expected ErrEmptyJobDescription, got %v", jd, err)
		}
	}
}

func TestRank_EmptyRecordList(t *testing.T) {
	svc := New(&mockReader{})

	ranked, err := svc.Rank(nil, "python developer")
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if len(ranked) != 0 {
		t.Errorf("expected empty result, got %d", len(ranked))
	}
}

func TestRankStored_ByNames(t *testing.T) {
	reader := &mockReader{
		getFn: func(_ context.Context, name string) (domres.Record, error) {
			switch name {
			case "alice":
				return domres.Reconstruct("alice", nil, nil, nil, "python developer"), nil
			case "bob":
				return domres.Reconstruct("bob", nil, nil, nil, "chef"), nil
			}
			return domres.Record{}, domain.ErrResumeNotFound
		},
	}
	svc := New(reader)

	ranked, err := svc.RankStored(context.Background(), []string{"bob", "alice"}, "python developer")
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if len(ranked) != 2 || ranked[0].Record().Name() != "alice" {
		t.Errorf("unexpected ranking: %v", ranked)
	}
}

func TestRankStored_UnknownName(t *testing.T) {
	svc := New(&mockReader{})

	_, err := svc.RankStored(context.Background(), []string{"ghost"}, "python")
	if !errors.Is(err, domain.ErrResumeNotFound) {
		t.Errorf("expected ErrResumeNotFound, got %v", err)
	}
}

func TestRankStored_AllWhenNamesOmitted(t *testing.T) {
	reader := &mockReader{
		allFn: func(_ context.Context) ([]domres.Record, error) {
			return []domres.Record{
				domres.Reconstruct("alice", nil, nil, nil, "python developer"),
			}, nil
		},
	}
	svc := New(reader)

	ranked, err := svc.RankStored(context.Background(), nil, "python developer")
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if len(ranked) != 1 || ranked[0].Record().Name() != "alice" {
		t.Errorf("unexpected ranking: %v", ranked)
	}
}

func TestRankStored_EmptyJobDescriptionBeforeLoad(t *testing.T) {
	called := false
	reader := &mockReader{
		allFn: func(_ context.Context) ([]domres.Record, error) {
			called = true
			return nil, nil
		},
	}
	svc := New(reader)

	_, err := svc.RankStored(context.Background(), nil, " ")
	if !errors.Is(err, domain.ErrEmptyJobDescription) {
		t.Errorf("expected ErrEmptyJobDescription, got %v", err)
	}
	if called {
		t.Error("should not load records for empty job description")
	}
}
