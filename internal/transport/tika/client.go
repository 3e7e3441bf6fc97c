// Package tika is a plain-text extraction client for an Apache Tika server.
package tika

import (
	"bytes"
	"context"
	"fmt"
	"io"
	"net/http"
	"time"

	"go.uber.org/zap"

	"github.com/talentgrid/resumedex/internal/domain"
	"github.com/talentgrid/resumedex/internal/metrics"
)

// Compile-time check: Client implements domain.TextExtractor.
var _ domain.TextExtractor = (*Client)(nil)

// maxResponseBytes caps the extracted text size (16 MiB).
const maxResponseBytes = 16 << 20

// Config holds the extraction service settings.
type Config struct {
	BaseURL string
	Timeout time.Duration
	Logger  *zap.Logger
}

// Client extracts plain text from documents via the Tika REST API.
type Client struct {
	baseURL string
	http    *http.Client
	logger  *zap.Logger
}

// NewClient creates a Tika extraction client.
func NewClient(cfg *Config) *Client {
	timeout := cfg.Timeout
	if timeout <= 0 {
		timeout = 60 * time.Second
	}
	return &Client{
		baseURL: cfg.BaseURL,
		http:    &http.Client{Timeout: timeout},
		logger:  cfg.Logger,
	}
}

// ExtractText implements domain.TextExtractor. Sends the raw document via
// PUT /tika and returns the plain-text body.
// All errors are wrapped with domain.ErrDocumentUnreadable for correct 422 mapping.
func (c *Client) ExtractText(ctx context.Context, data []byte) (string, error) {
	if len(data) == 0 {
		return "", fmt.Errorf("empty document: %w", domain.ErrDocumentUnreadable)
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodPut, c.baseURL+"/tika", bytes.NewReader(data))
	if err != nil {
		return "", fmt.Errorf("build extraction request: %w", err)
	}
	req.Header.Set("Accept", "text/plain")

	start := time.Now()

	resp, err := c.http.Do(req)

	duration := time.Since(start)

	if err != nil {
		metrics.ExtractionRequestsTotal.WithLabelValues("error").Inc()
		c.logger.Warn("Extraction request failed", zap.Error(err))
		return "", fmt.Errorf("extraction request: %w: %w", domain.ErrDocumentUnreadable, err)
	}
	defer func() { _ = resp.Body.Close() }()

	if resp.StatusCode != http.StatusOK {
		metrics.ExtractionRequestsTotal.WithLabelValues("error").Inc()
		body, _ := io.ReadAll(io.LimitReader(resp.Body, 512))
		c.logger.Warn("Extraction service returned non-200",
			zap.Int("status", resp.StatusCode),
			zap.ByteString("body", body),
		)
		return "", fmt.Errorf("extraction service status %d: %w", resp.StatusCode, domain.ErrDocumentUnreadable)
	}

	text, err := io.ReadAll(io.LimitReader(resp.Body, maxResponseBytes))
	if err != nil {
		metrics.ExtractionRequestsTotal.WithLabelValues("error").Inc()
		return "", fmt.Errorf("read extraction response: %w: %w", domain.ErrDocumentUnreadable, err)
	}

	metrics.ExtractionRequestsTotal.WithLabelValues("success").Inc()
	metrics.ExtractionRequestDuration.Observe(duration.Seconds())

	return string(text), nil
}

// HealthCheck verifies service availability via GET /version.
func (c *Client) HealthCheck(ctx context.Context) error {
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, c.baseURL+"/version", http.NoBody)
	if err != nil {
		return fmt.Errorf("build version request: %w", err)
	}

	resp, err := c.http.Do(req)
	if err != nil {
		return fmt.Errorf("version request: %w", err)
	}
	defer func() { _ = resp.Body.Close() }()

	if resp.StatusCode != http.StatusOK {
		return fmt.Errorf("extraction service status %d", resp.StatusCode)
	}
	return nil
}
