package tika

import (
	"context"
	"errors"
	"io"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"go.uber.org/zap"

	"github.com/talentgrid/resumedex/internal/domain"
)

func newTestClient(t *testing.T, handler http.HandlerFunc) *Client {
	t.Helper()
	srv := httptest.NewServer(handler)
	t.Cleanup(srv.Close)
	return NewClient(&Config{BaseURL: srv.URL, Timeout: time.Second, Logger: zap.NewNop()})
}

func TestExtractText_Success(t *testing.T) {
	c := newTestClient(t, func(w http.ResponseWriter, r *http.Request) {
		if r.Method != http.MethodPut {
			t.Errorf("method = %s, want PUT", r.Method)
		}
		if r.URL.Path != "/tika" {
			t.Errorf("path = %s, want /tika", r.URL.Path)
		}
		if got := r.Header.Get("Accept"); got != "text/plain" {
			t.Errorf("Accept = %q, want text/plain", got)
		}
		body, _ := io.ReadAll(r.Body)
		if string(body) != "%PDF-1.4 fake" {
			t.Errorf("body = %q", body)
		}
		_, _ = w.Write([]byte("Jane Doe\nPython developer"))
	})

	text, err := c.ExtractText(context.Background(), []byte("%PDF-1.4 fake"))
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if text != "Jane Doe\nPython developer" {
		t.Errorf("text = %q", text)
	}
}

func TestExtractText_EmptyDocument(t *testing.T) {
	c := NewClient(&Config{BaseURL: "http://unused", Logger: zap.NewNop()})

	_, err := c.ExtractText(context.Background(), nil)
	if !errors.Is(err, domain.ErrDocumentUnreadable) {
		t.Errorf("expected ErrDocumentUnreadable, got %v", err)
	}
}

func TestExtractText_ServerError(t *testing.T) {
	c := newTestClient(t, func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusUnprocessableEntity)
		_, _ = w.Write([]byte("cannot parse"))
	})

	_, err := c.ExtractText(context.Background(), []byte("garbage"))
	if !errors.Is(err, domain.ErrDocumentUnreadable) {
		t.Errorf("expected ErrDocumentUnreadable, got %v", err)
	}
}

func TestExtractText_ConnectionError(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(http.ResponseWriter, *http.Request) {}))
	srv.Close() // refuse connections

	c := NewClient(&Config{BaseURL: srv.URL, Timeout: time.Second, Logger: zap.NewNop()})
	_, err := c.ExtractText(context.Background(), []byte("doc"))
	if !errors.Is(err, domain.ErrDocumentUnreadable) {
		t.Errorf("expected ErrDocumentUnreadable, got %v", err)
	}
}

func TestHealthCheck_OK(t *testing.T) {
	c := newTestClient(t, func(w http.ResponseWriter, r *http.Request) {
		if r.URL.Path != "/version" {
			t.Errorf("path = %s, want /version", r.URL.Path)
		}
		_, _ = w.Write([]byte("Apache Tika 2.9.0"))
	})

	if err := c.HealthCheck(context.Background()); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
}

func TestHealthCheck_Down(t *testing.T) {
	c := newTestClient(t, func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusServiceUnavailable)
	})

	if err := c.HealthCheck(context.Background()); err == nil {
		t.Fatal("expected error")
	}
}
