// Package resume persists analyzed resume records in Redis as JSON documents.
package resume

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"sort"
	"strconv"
	"strings"

	"github.com/talentgrid/resumedex/internal/db"
	"github.com/talentgrid/resumedex/internal/domain"
	domres "github.com/talentgrid/resumedex/internal/domain/resume"
)

// store is the consumer interface for resume records (ISP).
type store interface {
	JSONSet(ctx context.Context, key, path string, data []byte) error
	JSONGet(ctx context.Context, key string, paths ...string) ([]byte, error)
	Del(ctx context.Context, key string) error
	Exists(ctx context.Context, key string) (bool, error)
	Scan(ctx context.Context, pattern string) ([]string, error)
}

// Repo implements usecase analyze/rank repositories.
type Repo struct {
	store store
}

// New creates a resume repository.
func New(s store) *Repo {
	return &Repo{store: s}
}

// Save creates or updates a record. Returns true if created.
func (r *Repo) Save(ctx context.Context, rec domres.Record) (bool, error) {
	key := recordKey(rec.Name())
	data, err := json.Marshal(toJSONDoc(rec))
	if err != nil {
		return false, fmt.Errorf("marshal record: %w", err)
	}

	exists, err := r.store.Exists(ctx, key)
	if err != nil {
		return false, fmt.Errorf("check exists %s: %w", key, err)
	}

	if err := r.store.JSONSet(ctx, key, "$", data); err != nil {
		return false, fmt.Errorf("json.set %s: %w", key, err)
	}

	return !exists, nil
}

// Get returns a record by name.
func (r *Repo) Get(ctx context.Context, name string) (domres.Record, error) {
	key := recordKey(name)
	raw, err := r.store.JSONGet(ctx, key, "$")
	if err != nil {
		if errors.Is(err, db.ErrKeyNotFound) {
			return domres.Record{}, domain.ErrResumeNotFound
		}
		return domres.Record{}, fmt.Errorf("json.get %s: %w", key, err)
	}
	return parseJSONGetResult(name, raw)
}

// List returns records with cursor-based pagination, ordered by name.
func (r *Repo) List(ctx context.Context, cursor string, limit int) ([]domres.Record, string, error) {
	if limit <= 0 {
		limit = 20
	}

	offset := 0
	if cursor != "" {
		parsed, err := strconv.Atoi(cursor)
		if err != nil || parsed < 0 {
			return nil, "", fmt.Errorf("invalid cursor %q: %w", cursor, domain.ErrInvalidInput)
		}
		offset = parsed
	}

	names, err := r.names(ctx)
	if err != nil {
		return nil, "", err
	}
	if offset >= len(names) {
		return nil, "", nil
	}

	end := offset + limit
	if end > len(names) {
		end = len(names)
	}

	records := make([]domres.Record, 0, end-offset)
	for _, name := range names[offset:end] {
		rec, err := r.Get(ctx, name)
		if err != nil {
			if errors.Is(err, domain.ErrResumeNotFound) {
				continue // deleted between scan and fetch
			}
			return nil, "", err
		}
		records = append(records, rec)
	}

	var nextCursor string
	if end < len(names) {
		nextCursor = strconv.Itoa(end)
	}

	return records, nextCursor, nil
}

// All returns every stored record, ordered by name.
func (r *Repo) All(ctx context.Context) ([]domres.Record, error) {
	names, err := r.names(ctx)
	if err != nil {
		return nil, err
	}

	records := make([]domres.Record, 0, len(names))
	for _, name := range names {
		rec, err := r.Get(ctx, name)
		if err != nil {
			if errors.Is(err, domain.ErrResumeNotFound) {
				continue
			}
			return nil, err
		}
		records = append(records, rec)
	}
	return records, nil
}

// Count returns the number of stored records.
func (r *Repo) Count(ctx context.Context) (int, error) {
	names, err := r.names(ctx)
	if err != nil {
		return 0, err
	}
	return len(names), nil
}

// Delete removes a record.
func (r *Repo) Delete(ctx context.Context, name string) error {
	key := recordKey(name)

	exists, err := r.store.Exists(ctx, key)
	if err != nil {
		return fmt.Errorf("check exists %s: %w", key, err)
	}
	if !exists {
		return domain.ErrResumeNotFound
	}

	if err := r.store.Del(ctx, key); err != nil {
		return fmt.Errorf("del %s: %w", key, err)
	}
	return nil
}

func (r *Repo) names(ctx context.Context) ([]string, error) {
	keys, err := r.store.Scan(ctx, keyPrefix()+"*")
	if err != nil {
		return nil, fmt.Errorf("scan records: %w", err)
	}

	names := make([]string, 0, len(keys))
	for _, key := range keys {
		names = append(names, strings.TrimPrefix(key, keyPrefix()))
	}
	sort.Strings(names)
	return names, nil
}

func recordKey(name string) string {
	return keyPrefix() + name
}

func keyPrefix() string {
	return domain.KeyPrefix + "resume:"
}
