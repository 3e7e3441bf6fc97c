package resume

import (
	"context"
	"testing"

	domres "github.com/talentgrid/resumedex/internal/domain/resume"
)

// mockStore implements the consumer interface for tests.
type mockStore struct {
	jsonSetFn func(ctx context.Context, key, path string, data []byte) error
	jsonGetFn func(ctx context.Context, key string, paths ...string) ([]byte, error)
	delFn     func(ctx context.Context, key string) error
	existsFn  func(ctx context.Context, key string) (bool, error)
	scanFn    func(ctx context.Context, pattern string) ([]string, error)
}

func (m *mockStore) JSONSet(ctx context.Context, key, path string, data []byte) error {
	if m.jsonSetFn != nil {
		return m.jsonSetFn(ctx, key, path, data)
	}
	return nil
}

func (m *mockStore) JSONGet(ctx context.Context, key string, paths ...string) ([]byte, error) {
	if m.jsonGetFn != nil {
		return m.jsonGetFn(ctx, key, paths...)
	}
	return []byte("[{}]"), nil
}

func (m *mockStore) Del(ctx context.Context, key string) error {
	if m.delFn != nil {
		return m.delFn(ctx, key)
	}
	return nil
}

func (m *mockStore) Exists(ctx context.Context, key string) (bool, error) {
	if m.existsFn != nil {
		return m.existsFn(ctx, key)
	}
	return false, nil
}

func (m *mockStore) Scan(ctx context.Context, pattern string) ([]string, error) {
	if m.scanFn != nil {
		return m.scanFn(ctx, pattern)
	}
	return nil, nil
}

func newTestRepo(t *testing.T) (*Repo, *mockStore) {
	t.Helper()
	ms := &mockStore{}
	repo := New(ms)
	return repo, ms
}

func testRecord(t *testing.T, name string) domres.Record {
	t.Helper()
	rec, err := domres.New(name,
		[]string{"Python", "SQL"},
		[]string{"Masters"},
		[]string{"Jan 2019 - Present"},
		"Python developer with Masters, Jan 2019 - Present",
	)
	if err != nil {
		t.Fatalf("testRecord: %v", err)
	}
	return rec
}
