package main

import (
	"context"
	"encoding/json"
	"fmt"
	"net/http"
	"os"
	"os/signal"
	"runtime"
	"syscall"
	"time"

	"github.com/go-chi/chi/v5"
	chiMiddleware "github.com/go-chi/chi/v5/middleware"
	"github.com/joho/godotenv"
	"github.com/prometheus/client_golang/prometheus/promhttp"
	"go.uber.org/zap"

	"github.com/talentgrid/resumedex/internal/config"
	dbRedis "github.com/talentgrid/resumedex/internal/db/redis"
	"github.com/talentgrid/resumedex/internal/domain"
	"github.com/talentgrid/resumedex/internal/domain/entity"
	"github.com/talentgrid/resumedex/internal/domain/experience"
	logpkg "github.com/talentgrid/resumedex/internal/logger"
	"github.com/talentgrid/resumedex/internal/metrics"
	"github.com/talentgrid/resumedex/internal/repository/extcache"
	resumerepo "github.com/talentgrid/resumedex/internal/repository/resume"
	chiTransport "github.com/talentgrid/resumedex/internal/transport/chi"
	"github.com/talentgrid/resumedex/internal/transport/tika"
	analyzeuc "github.com/talentgrid/resumedex/internal/usecase/analyze"
	healthuc "github.com/talentgrid/resumedex/internal/usecase/health"
	rankuc "github.com/talentgrid/resumedex/internal/usecase/rank"
	"github.com/talentgrid/resumedex/internal/version"
)

func main() {
	_ = godotenv.Load()

	// Load configuration based on ENV
	env := config.GetEnv()

	cfg, err := config.Load(env)
	if err != nil {
		panic("failed to load config: " + err.Error())
	}

	logger, err := logpkg.NewLogger(env, cfg.Logging.Level)
	if err != nil {
		panic("failed to create logger: " + err.Error())
	}
	defer func() { _ = logger.Sync() }()

	logger.Info("Starting resumedex API server",
		zap.String("version", version.Version),
		zap.String("commit", version.Commit),
		zap.String("env", env),
		zap.Int("http_port", cfg.HTTP.Port),
		zap.Strings("db_addrs", cfg.Database.Addrs),
	)

	store, err := dbRedis.NewStore(dbRedis.Config{
		Addrs:    cfg.Database.Addrs,
		Password: cfg.Database.Password,
	})
	if err != nil {
		logger.Fatal("Failed to create database store", zap.Error(err))
	}
	defer store.Close()

	// Wait for database to be ready
	ctx := context.Background()
	if err := store.WaitForReady(ctx, time.Duration(cfg.Database.ReadinessTimeout)*time.Second); err != nil {
		logger.Fatal("Database not ready", zap.Error(err))
	}
	logger.Info("Connected to database")

	// Register pipeline metrics explicitly (no init())
	metrics.RegisterPipelineMetrics()

	// Build extractor chain — composition root
	var extractor domain.TextExtractor
	var extractionChecker healthuc.ExtractionChecker
	if cfg.Extraction.BaseURL != "" {
		tikaClient := tika.NewClient(&tika.Config{
			BaseURL: cfg.Extraction.BaseURL,
			Timeout: time.Duration(cfg.Extraction.TimeoutSec) * time.Second,
			Logger:  logger,
		})
		extractor = extcache.New(
			tikaClient, store,
			time.Duration(cfg.Extraction.CacheTTLSec)*time.Second,
			metrics.ExtractionCacheTotal, logger,
		)
		extractionChecker = tikaClient
		logger.Info("Extraction client created", zap.String("base_url", cfg.Extraction.BaseURL))
	} else {
		extractor = unavailableExtractor{}
		logger.Warn("Extraction service not configured, document uploads disabled")
	}

	ruleset, err := entity.NewRuleset(patternsFromConfig(cfg.Pipeline.Patterns))
	if err != nil {
		logger.Fatal("Invalid tagging patterns", zap.Error(err))
	}

	months := cfg.Pipeline.Months
	if len(months) == 0 {
		months = experience.DefaultMonths()
	}
	matcher, err := experience.NewMatcher(months)
	if err != nil {
		logger.Fatal("Invalid month vocabulary", zap.Error(err))
	}

	workers := cfg.Pipeline.Workers
	if workers <= 0 {
		workers = runtime.NumCPU()
	}

	// Create repositories and use case services
	repo := resumerepo.New(store)

	analyzeSvc := analyzeuc.New(repo, extractor, ruleset, matcher, workers).
		WithMaxBatchSize(cfg.Pipeline.MaxBatchSize)
	rankSvc := rankuc.New(repo)
	healthSvc := healthuc.New(store, extractionChecker)

	// Create chi server
	server := chiTransport.NewServer(analyzeSvc, rankSvc, healthSvc, logger)

	r := chi.NewRouter()
	r.Use(jsonRecoverer(logger))
	r.Use(chiMiddleware.RequestID)
	r.Use(wideEventMiddleware(logger))
	r.Use(chiTransport.BearerAuthMiddleware(cfg.Auth.APIKeys))
	r.Use(metrics.Middleware())
	server.Routes(r)
	r.Handle("/metrics", promhttp.Handler())

	addr := fmt.Sprintf(":%d", cfg.HTTP.Port)
	srv := &http.Server{
		Addr:         addr,
		Handler:      r,
		ReadTimeout:  time.Duration(cfg.HTTP.ReadTimeoutSec) * time.Second,
		WriteTimeout: time.Duration(cfg.HTTP.WriteTimeoutSec) * time.Second,
	}

	// Graceful shutdown
	quit := make(chan os.Signal, 1)
	signal.Notify(quit, os.Interrupt, syscall.SIGTERM)

	go func() {
		logger.Info("Starting HTTP server", zap.String("addr", addr))
		if err := srv.ListenAndServe(); err != nil && err != http.ErrServerClosed {
			logger.Fatal("HTTP server error", zap.Error(err))
		}
	}()

	<-quit
	logger.Info("Received shutdown signal")

	shutdownCtx, cancel := context.WithTimeout(context.Background(), time.Duration(cfg.HTTP.ShutdownSec)*time.Second)
	defer cancel()

	if err := srv.Shutdown(shutdownCtx); err != nil {
		logger.Error("Error during shutdown", zap.Error(err))
	}

	logger.Info("Server stopped gracefully")
}

// patternsFromConfig maps config patterns to domain patterns, falling back to defaults.
func patternsFromConfig(pats []config.PatternConfig) []entity.Pattern {
	if len(pats) == 0 {
		return entity.DefaultPatterns()
	}
	out := make([]entity.Pattern, len(pats))
	for i, p := range pats {
		out[i] = entity.Pattern{Label: entity.Label(p.Label), Phrase: p.Phrase}
	}
	return out
}

// unavailableExtractor rejects document uploads when no extraction service is configured.
type unavailableExtractor struct{}

func (unavailableExtractor) ExtractText(context.Context, []byte) (string, error) {
	return "", fmt.Errorf("extraction service not configured: %w", domain.ErrDocumentUnreadable)
}

// jsonRecoverer is a recovery middleware that returns JSON instead of a plain text stacktrace.
func jsonRecoverer(logger *zap.Logger) func(next http.Handler) http.Handler {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			defer func() {
				if rvr := recover(); rvr != nil {
					logger.Error("panic recovered",
						zap.Any("panic", rvr),
						zap.Stack("stacktrace"),
					)
					w.Header().Set("Content-Type", "application/json")
					w.WriteHeader(http.StatusInternalServerError)
					_ = json.NewEncoder(w).Encode(map[string]string{
						"code":    "internal_error",
						"message": "internal error",
					})
				}
			}()
			next.ServeHTTP(w, r)
		})
	}
}

// wideEventMiddleware emits a canonical log line per request and propagates X-Request-ID.
func wideEventMiddleware(logger *zap.Logger) func(next http.Handler) http.Handler {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			start := time.Now()

			// chi.middleware.RequestID already placed request_id in context
			requestID := chiMiddleware.GetReqID(r.Context())

			if requestID != "" {
				w.Header().Set("X-Request-ID", requestID)
			}

			// Per-request logger with request_id
			reqLogger := logger.With(zap.String("request_id", requestID))
			ctx := logpkg.ContextWithLogger(r.Context(), reqLogger)

			ww := chiMiddleware.NewWrapResponseWriter(w, r.ProtoMajor)
			next.ServeHTTP(ww, r.WithContext(ctx))

			// Canonical log line — one line per request
			reqLogger.Info("http_request",
				zap.String("method", r.Method),
				zap.String("path", r.URL.Path),
				zap.Int("status", ww.Status()),
				zap.Duration("latency", time.Since(start)),
				zap.String("ip", r.RemoteAddr),
				zap.Int64("content_length", r.ContentLength),
				zap.String("user_agent", r.UserAgent()),
				zap.Int("response_bytes", ww.BytesWritten()),
			)
		})
	}
}
