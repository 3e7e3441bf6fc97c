// Package extcache caches extracted document text in a key-value store.
package extcache

import (
	"context"
	"crypto/sha256"
	"encoding/hex"
	"errors"
	"fmt"
	"time"

	"github.com/prometheus/client_golang/prometheus"
	"go.uber.org/zap"

	"github.com/talentgrid/resumedex/internal/db"
	"github.com/talentgrid/resumedex/internal/domain"
)

var cacheKeyPrefix = domain.KeyPrefix + "extract_cache:"

// store is the consumer interface for the extraction cache (ISP).
type store interface {
	Get(ctx context.Context, key string) ([]byte, error)
	SetWithTTL(ctx context.Context, key string, value []byte, ttl time.Duration) error
}

// CachedExtractor caches extracted text keyed by document digest.
type CachedExtractor struct {
	inner      domain.TextExtractor
	store      store
	ttl        time.Duration
	cacheTotal *prometheus.CounterVec
	logger     *zap.Logger
}

// New creates a caching decorator.
// cacheTotal is a counter vec with label "result" ("hit"/"miss"), passed explicitly.
func New(
	inner domain.TextExtractor,
	s store,
	ttl time.Duration,
	cacheTotal *prometheus.CounterVec,
	logger *zap.Logger,
) *CachedExtractor {
	return &CachedExtractor{
		inner:      inner,
		store:      s,
		ttl:        ttl,
		cacheTotal: cacheTotal,
		logger:     logger,
	}
}

// ExtractText returns cached text or calls the inner extractor.
func (c *CachedExtractor) ExtractText(ctx context.Context, data []byte) (string, error) {
	key := c.cacheKey(data)

	if text, ok := c.getFromCache(ctx, key); ok {
		c.incCache("hit")
		return text, nil
	}

	c.incCache("miss")

	text, err := c.inner.ExtractText(ctx, data)
	if err != nil {
		return "", fmt.Errorf("extract text: %w", err)
	}

	c.putToCache(ctx, key, text)
	return text, nil
}

func (c *CachedExtractor) incCache(result string) {
	if c.cacheTotal != nil {
		c.cacheTotal.WithLabelValues(result).Inc()
	}
}

func (c *CachedExtractor) cacheKey(data []byte) string {
	h := sha256.Sum256(data)
	return cacheKeyPrefix + hex.EncodeToString(h[:])
}

func (c *CachedExtractor) getFromCache(ctx context.Context, key string) (string, bool) {
	data, err := c.store.Get(ctx, key)
	if err != nil {
		if !errors.Is(err, db.ErrKeyNotFound) {
			c.logger.Warn("Failed to get cached extraction", zap.String("key", key), zap.Error(err))
		}
		return "", false
	}
	if len(data) == 0 {
		return "", false
	}
	return string(data), true
}

func (c *CachedExtractor) putToCache(ctx context.Context, key, text string) {
	if err := c.store.SetWithTTL(ctx, key, []byte(text), c.ttl); err != nil {
		c.logger.Warn("Failed to cache extraction", zap.String("key", key), zap.Error(err))
	}
}
