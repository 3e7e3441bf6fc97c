package redis

import (
	"context"

	"github.com/redis/rueidis"

	"github.com/talentgrid/resumedex/internal/db"
)

// JSONSet writes a document with JSON.SET. The resume repository
// always writes whole documents at the root path "$".
func (s *Store) JSONSet(ctx context.Context, key, path string, data []byte) error {
	cmd := s.b().Arbitrary("JSON.SET").Keys(key).Args(path, string(data)).Build()
	if err := s.do(ctx, cmd).Error(); err != nil {
		return &db.Error{Op: db.OpJSONSet, Err: err}
	}
	return nil
}

// JSONGet reads a document with JSON.GET. Note that a "$" path query
// answers with a single-element array around the document; callers
// unwrap it. A missing key or an empty reply maps to ErrKeyNotFound.
func (s *Store) JSONGet(ctx context.Context, key string, paths ...string) ([]byte, error) {
	args := make([]string, len(paths))
	copy(args, paths)

	cmd := s.b().Arbitrary("JSON.GET").Keys(key).Args(args...).Build()
	raw, err := s.do(ctx, cmd).ToString()
	if err != nil {
		if rueidis.IsRedisNil(err) {
			return nil, db.ErrKeyNotFound
		}
		return nil, &db.Error{Op: db.OpJSONGet, Err: err}
	}
	if raw == "" {
		return nil, db.ErrKeyNotFound
	}
	return []byte(raw), nil
}
