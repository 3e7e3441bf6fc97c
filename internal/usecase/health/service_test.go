package health

import (
	"context"
	"errors"
	"testing"
)

// --- Mocks ---

type mockDBPinger struct {
	err error
}

func (m *mockDBPinger) Ping(_ context.Context) error { return m.err }

type mockExtractionChecker struct {
	err error
}

func (m *mockExtractionChecker) HealthCheck(_ context.Context) error { return m.err }

// --- Tests ---

func TestCheck_AllHealthy(t *testing.T) {
	svc := New(&mockDBPinger{}, &mockExtractionChecker{})
	r := svc.Check(context.Background())

	if r.Status != Healthy {
		t.Errorf("expected %q, got %q", Healthy, r.Status)
	}
	if r.Checks["database"] != CheckOK {
		t.Errorf("expected database %q, got %q", CheckOK, r.Checks["database"])
	}
	if r.Checks["extraction"] != CheckOK {
		t.Errorf("expected extraction %q, got %q", CheckOK, r.Checks["extraction"])
	}
}

func TestCheck_DBError(t *testing.T) {
	svc := New(&mockDBPinger{err: errors.New("conn refused")}, &mockExtractionChecker{})
	r := svc.Check(context.Background())

	if r.Status != Degraded {
		t.Errorf("expected %q, got %q", Degraded, r.Status)
	}
	if r.Checks["database"] != CheckError {
		t.Errorf("expected database %q, got %q", CheckError, r.Checks["database"])
	}
	if r.Checks["extraction"] != CheckOK {
		t.Errorf("expected extraction %q, got %q", CheckOK, r.Checks["extraction"])
	}
}

func TestCheck_ExtractionError(t *testing.T) {
	svc := New(&mockDBPinger{}, &mockExtractionChecker{err: errors.New("timeout")})
	r := svc.Check(context.Background())

	if r.Status != Degraded {
		t.Errorf("expected %q, got %q", Degraded, r.Status)
	}
	if r.Checks["database"] != CheckOK {
		t.Errorf("expected database %q, got %q", CheckOK, r.Checks["database"])
	}
	if r.Checks["extraction"] != CheckError {
		t.Errorf("expected extraction %q, got %q", CheckError, r.Checks["extraction"])
	}
}

func TestCheck_BothFail(t *testing.T) {
	svc := New(
		&mockDBPinger{err: errors.New("db down")},
		&mockExtractionChecker{err: errors.New("tika down")},
	)
	r := svc.Check(context.Background())

	if r.Status != Degraded {
		t.Errorf("expected %q, got %q", Degraded, r.Status)
	}
	if r.Checks["database"] != CheckError {
		t.Error("expected database error")
	}
	if r.Checks["extraction"] != CheckError {
		t.Error("expected extraction error")
	}
}

func TestCheck_NoExtraction(t *testing.T) {
	svc := New(&mockDBPinger{}, nil)
	r := svc.Check(context.Background())

	if r.Status != Healthy {
		t.Errorf("expected %q, got %q", Healthy, r.Status)
	}
	if r.Checks["database"] != CheckOK {
		t.Errorf("expected database %q, got %q", CheckOK, r.Checks["database"])
	}
	if _, ok := r.Checks["extraction"]; ok {
		t.Error("extraction check should be absent when extraction is nil")
	}
}
