package resumedex

import (
	"log/slog"
	"time"

	"github.com/prometheus/client_golang/prometheus"
)

// Option configures the Client.
type Option interface {
	apply(*clientConfig)
}

// optionFunc adapts a function to the Option interface.
type optionFunc func(*clientConfig)

func (f optionFunc) apply(c *clientConfig) { f(c) }

type clientConfig struct {
	addrs    []string
	password string
	database int

	extractor   Extractor
	tikaURL     string
	tikaTimeout time.Duration
	cacheTTL    time.Duration

	patterns     []Pattern
	months       []string
	workers      int
	maxBatchSize int

	logger     *slog.Logger
	metricsReg prometheus.Registerer
}

// WithRedis configures the client to connect to a Redis instance.
func WithRedis(addr, password string) Option {
	return optionFunc(func(c *clientConfig) {
		c.addrs = []string{addr}
		c.password = password
	})
}

// WithDatabase selects a logical Redis database. Default: 0.
func WithDatabase(db int) Option {
	return optionFunc(func(c *clientConfig) {
		c.database = db
	})
}

// WithTika points the client at an Apache Tika server for document
// text extraction. Without an extractor, AnalyzeDocument fails.
func WithTika(baseURL string) Option {
	return optionFunc(func(c *clientConfig) {
		c.tikaURL = baseURL
	})
}

// WithTikaTimeout sets the per-request extraction timeout. Default: 60s.
func WithTikaTimeout(d time.Duration) Option {
	return optionFunc(func(c *clientConfig) {
		c.tikaTimeout = d
	})
}

// WithExtractionCache caches extracted text in Redis keyed by document
// digest. Only applies when WithTika is set. Pass 0 to disable (default).
func WithExtractionCache(ttl time.Duration) Option {
	return optionFunc(func(c *clientConfig) {
		c.cacheTTL = ttl
	})
}

// WithExtractor sets a custom text extraction provider.
// Takes precedence over WithTika.
func WithExtractor(e Extractor) Option {
	return optionFunc(func(c *clientConfig) {
		c.extractor = e
	})
}

// WithPatterns replaces the stock skill and degree phrase table.
func WithPatterns(patterns []Pattern) Option {
	return optionFunc(func(c *clientConfig) {
		c.patterns = patterns
	})
}

// WithMonths replaces the month vocabulary used for experience span
// extraction. Defaults to English month names and abbreviations.
func WithMonths(months []string) Option {
	return optionFunc(func(c *clientConfig) {
		c.months = months
	})
}

// WithWorkers sets the batch analysis concurrency. Default: NumCPU.
func WithWorkers(n int) Option {
	return optionFunc(func(c *clientConfig) {
		c.workers = n
	})
}

// WithMaxBatchSize sets the maximum number of items per batch operation.
// Default: 100.
func WithMaxBatchSize(size int) Option {
	return optionFunc(func(c *clientConfig) {
		c.maxBatchSize = size
	})
}

// WithLogger enables structured logging for SDK operations.
// Pass nil to disable (default). Uses standard library slog.
func WithLogger(l *slog.Logger) Option {
	return optionFunc(func(c *clientConfig) {
		c.logger = l
	})
}

// WithPrometheus registers SDK metrics (operation counts and durations)
// on the given registerer. Pass nil to disable (default).
func WithPrometheus(reg prometheus.Registerer) Option {
	return optionFunc(func(c *clientConfig) {
		c.metricsReg = reg
	})
}
