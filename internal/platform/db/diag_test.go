package db

import (
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/labstack/echo/v4"
)

func TestDiagnosticHandler_NotConfigured(t *testing.T) {
	e := echo.New()
	req := httptest.NewRequest(http.MethodGet, "/test", nil)
	rec := httptest.NewRecorder()
	c := e.NewContext(req, rec)

	h := DiagnosticHandler(nil, false, true)
	if err := h(c); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	if rec.Code != http.StatusOK {
		t.Errorf("expected status 200, got %d", rec.Code)
	}

	var report DiagnosticReport
	if err := json.Unmarshal(rec.Body.Bytes(), &report); err != nil {
		t.Fatalf("failed to parse response: %v", err)
	}

	if report.Backend != "running" {
		t.Errorf("expected backend 'running', got %q", report.Backend)
	}
	if report.Database != "not available" {
		t.Errorf("expected database 'not available', got %q", report.Database)
	}
	if report.DatabaseURL != "not set" {
		t.Errorf("expected database_url 'not set', got %q", report.DatabaseURL)
	}
	if report.DatabaseName != "set" {
		t.Errorf("expected database_name 'set', got %q", report.DatabaseName)
	}
	if report.ConnectionStatus != "not connected" {
		t.Errorf("expected connection_status 'not connected', got %q", report.ConnectionStatus)
	}
	if report.Collections == nil || len(report.Collections) != 0 {
		t.Errorf("expected empty collections list, got %v", report.Collections)
	}
}

func TestPresence(t *testing.T) {
	if got := presence(true); got != "set" {
		t.Errorf("expected 'set', got %q", got)
	}
	if got := presence(false); got != "not set" {
		t.Errorf("expected 'not set', got %q", got)
	}
}

func TestTruncate(t *testing.T) {
	if got := truncate("short", 50); got != "short" {
		t.Errorf("expected 'short', got %q", got)
	}

	long := make([]byte, 100)
	for i := range long {
		long[i] = 'x'
	}
	if got := truncate(string(long), 50); len(got) != 50 {
		t.Errorf("expected 50 chars, got %d", len(got))
	}
}
