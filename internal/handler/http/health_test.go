package http

import (
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"
)

type fakeSummarizerStatus struct {
	provider  string
	model     string
	available bool
}

func (f *fakeSummarizerStatus) Provider() string { return f.provider }
func (f *fakeSummarizerStatus) Model() string    { return f.model }
func (f *fakeSummarizerStatus) Available() bool  { return f.available }

func decodeHealth(t *testing.T, rec *httptest.ResponseRecorder) HealthResponse {
	t.Helper()
	var resp HealthResponse
	if err := json.Unmarshal(rec.Body.Bytes(), &resp); err != nil {
		t.Fatalf("invalid JSON: %v", err)
	}
	return resp
}

func TestHealthHandler_Healthy(t *testing.T) {
	h := &HealthHandler{
		Version:    "1.2.3",
		Summarizer: &fakeSummarizerStatus{provider: "openai", model: "gpt-4o-mini", available: true},
	}

	rec := httptest.NewRecorder()
	h.ServeHTTP(rec, httptest.NewRequest(http.MethodGet, "/health", nil))

	if rec.Code != http.StatusOK {
		t.Fatalf("status = %d", rec.Code)
	}
	resp := decodeHealth(t, rec)
	if resp.Status != "healthy" {
		t.Errorf("status = %q", resp.Status)
	}
	if resp.Version != "1.2.3" {
		t.Errorf("version = %q", resp.Version)
	}
	if resp.Checks["summarizer"].Status != "healthy" {
		t.Errorf("summarizer check = %+v", resp.Checks["summarizer"])
	}
}

func TestHealthHandler_DegradedButStill200(t *testing.T) {
	h := &HealthHandler{
		Version:    "dev",
		Summarizer: &fakeSummarizerStatus{provider: "none", available: false},
	}

	rec := httptest.NewRecorder()
	h.ServeHTTP(rec, httptest.NewRequest(http.MethodGet, "/health", nil))

	if rec.Code != http.StatusOK {
		t.Fatalf("degraded must still answer 200, got %d", rec.Code)
	}
	resp := decodeHealth(t, rec)
	if resp.Status != "degraded" {
		t.Errorf("status = %q", resp.Status)
	}
}

func TestHealthHandler_NilSummarizer(t *testing.T) {
	h := &HealthHandler{Version: "dev"}

	rec := httptest.NewRecorder()
	h.ServeHTTP(rec, httptest.NewRequest(http.MethodGet, "/health", nil))

	resp := decodeHealth(t, rec)
	if resp.Status != "degraded" {
		t.Errorf("status = %q", resp.Status)
	}
}

func TestReadyHandler(t *testing.T) {
	rec := httptest.NewRecorder()
	(&ReadyHandler{}).ServeHTTP(rec, httptest.NewRequest(http.MethodGet, "/ready", nil))

	if rec.Code != http.StatusOK {
		t.Errorf("status = %d", rec.Code)
	}
	if rec.Body.String() != "ready" {
		t.Errorf("body = %q", rec.Body.String())
	}
}

func TestLiveHandler(t *testing.T) {
	rec := httptest.NewRecorder()
	(&LiveHandler{}).ServeHTTP(rec, httptest.NewRequest(http.MethodGet, "/live", nil))

	if rec.Code != http.StatusOK {
		t.Errorf("status = %d", rec.Code)
	}
	if rec.Body.String() != "alive" {
		t.Errorf("body = %q", rec.Body.String())
	}
}
