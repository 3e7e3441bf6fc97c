package resumedex

import (
	"context"
	"errors"
	"fmt"
	"runtime"
	"time"

	"go.uber.org/zap"

	"github.com/talentgrid/resumedex/internal/db"
	dbRedis "github.com/talentgrid/resumedex/internal/db/redis"
	"github.com/talentgrid/resumedex/internal/domain"
	dombatch "github.com/talentgrid/resumedex/internal/domain/batch"
	"github.com/talentgrid/resumedex/internal/domain/entity"
	"github.com/talentgrid/resumedex/internal/domain/experience"
	domrank "github.com/talentgrid/resumedex/internal/domain/rank"
	domres "github.com/talentgrid/resumedex/internal/domain/resume"
	"github.com/talentgrid/resumedex/internal/metrics"
	"github.com/talentgrid/resumedex/internal/repository/extcache"
	resumerepo "github.com/talentgrid/resumedex/internal/repository/resume"
	"github.com/talentgrid/resumedex/internal/transport/tika"
	analyzeuc "github.com/talentgrid/resumedex/internal/usecase/analyze"
	healthuc "github.com/talentgrid/resumedex/internal/usecase/health"
	rankuc "github.com/talentgrid/resumedex/internal/usecase/rank"
)

const defaultReadinessTimeout = 10 * time.Second

// Internal interfaces so tests can substitute the usecases.
type analyzeUseCase interface {
	AnalyzeText(ctx context.Context, name, rawText string) (domres.Record, error)
	AnalyzeDocument(ctx context.Context, name string, data []byte) (domres.Record, error)
	AnalyzeBatch(ctx context.Context, items []analyzeuc.Item) []dombatch.Result
	Get(ctx context.Context, name string) (domres.Record, error)
	List(ctx context.Context, cursor string, limit int) ([]domres.Record, string, error)
	Delete(ctx context.Context, name string) error
	Count(ctx context.Context) (int, error)
}

type rankUseCase interface {
	RankStored(ctx context.Context, names []string, jobDescription string) ([]domrank.Ranked, error)
}

// Client is the resumedex SDK entry point.
type Client struct {
	store      db.Store
	analyzeSvc analyzeUseCase
	rankSvc    rankUseCase
	healthSvc  healthUseCase
	obs        *observer
}

// New creates a resumedex Client and connects to the database.
// The provided context is used for the initial readiness check.
func New(ctx context.Context, opts ...Option) (*Client, error) {
	cfg := &clientConfig{}
	for _, o := range opts {
		o.apply(cfg)
	}

	if len(cfg.addrs) == 0 {
		return nil, errors.New("resumedex: database address required (use WithRedis)")
	}

	store, err := dbRedis.NewStore(dbRedis.Config{
		Addrs:    cfg.addrs,
		Password: cfg.password,
		DB:       cfg.database,
	})
	if err != nil {
		return nil, fmt.Errorf("resumedex: create redis store: %w", err)
	}

	if err := store.WaitForReady(ctx, defaultReadinessTimeout); err != nil {
		store.Close()
		return nil, fmt.Errorf("resumedex: database not ready: %w", err)
	}

	obs, err := newObserver(cfg.logger, cfg.metricsReg)
	if err != nil {
		store.Close()
		return nil, err
	}
	return wireClient(store, cfg, obs)
}

func wireClient(store db.Store, cfg *clientConfig, obs *observer) (*Client, error) {
	repo := resumerepo.New(store)

	var domExt domain.TextExtractor = &noopExtractor{}
	var checker healthuc.ExtractionChecker
	switch {
	case cfg.extractor != nil:
		domExt = &extractorAdapter{inner: cfg.extractor}
	case cfg.tikaURL != "":
		tc := tika.NewClient(&tika.Config{
			BaseURL: cfg.tikaURL,
			Timeout: cfg.tikaTimeout,
			Logger:  zap.NewNop(),
		})
		domExt = tc
		checker = tc
		if cfg.cacheTTL > 0 {
			domExt = extcache.New(tc, store, cfg.cacheTTL, metrics.ExtractionCacheTotal, zap.NewNop())
		}
	}

	patterns := entity.DefaultPatterns()
	if len(cfg.patterns) > 0 {
		patterns = toInternalPatterns(cfg.patterns)
	}
	ruleset, err := entity.NewRuleset(patterns)
	if err != nil {
		store.Close()
		return nil, fmt.Errorf("resumedex: invalid pattern table: %w", err)
	}

	months := experience.DefaultMonths()
	if len(cfg.months) > 0 {
		months = cfg.months
	}
	matcher, err := experience.NewMatcher(months)
	if err != nil {
		store.Close()
		return nil, fmt.Errorf("resumedex: invalid month vocabulary: %w", err)
	}

	workers := cfg.workers
	if workers <= 0 {
		workers = runtime.NumCPU()
	}

	analyzeSvc := analyzeuc.New(repo, domExt, ruleset, matcher, workers)
	if cfg.maxBatchSize > 0 {
		analyzeSvc = analyzeSvc.WithMaxBatchSize(cfg.maxBatchSize)
	}
	rankSvc := rankuc.New(repo)
	healthSvc := healthuc.New(store, checker)

	return &Client{
		store:      store,
		analyzeSvc: analyzeSvc,
		rankSvc:    rankSvc,
		healthSvc:  healthSvc,
		obs:        obs,
	}, nil
}

// Close releases all resources.
func (c *Client) Close() {
	if c.store != nil {
		c.store.Close()
	}
}

// Ping checks database connectivity.
func (c *Client) Ping(ctx context.Context) (err error) {
	start := time.Now()
	defer func() { c.obs.observe("ping", start, err) }()

	if err = c.store.Ping(ctx); err != nil {
		return fmt.Errorf("ping: %w", err)
	}
	return nil
}

// Resumes returns the resume analysis and storage service.
func (c *Client) Resumes() *ResumeService {
	return &ResumeService{svc: c.analyzeSvc, obs: c.obs}
}

// Rank returns the ranking service.
func (c *Client) Rank() *RankService {
	return &RankService{svc: c.rankSvc, obs: c.obs}
}

// extractorAdapter wraps public Extractor to satisfy internal domain.TextExtractor.
type extractorAdapter struct {
	inner Extractor
}

func (a *extractorAdapter) ExtractText(ctx context.Context, data []byte) (string, error) {
	text, err := a.inner.ExtractText(ctx, data)
	if err != nil {
		if errors.Is(err, domain.ErrDocumentUnreadable) {
			return "", err
		}
		return "", fmt.Errorf("extract text: %s: %w", err.Error(), domain.ErrDocumentUnreadable)
	}
	return text, nil
}

// noopExtractor rejects document analysis when no extractor is configured.
type noopExtractor struct{}

func (noopExtractor) ExtractText(context.Context, []byte) (string, error) {
	return "", fmt.Errorf("no extractor configured (use WithTika or WithExtractor): %w", domain.ErrDocumentUnreadable)
}
