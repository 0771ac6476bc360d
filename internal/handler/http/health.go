// Package http provides the HTTP handlers and middleware for the clause
// scanner API: the analysis endpoint, health and probe endpoints, metrics,
// and the middleware chain (CORS, request IDs, rate limiting, recovery,
// logging, body limits).
package http

import (
	"encoding/json"
	"log"
	"net/http"
	"time"
)

// SummarizerStatus reports the state of the summarization capability for
// health checks, without forcing provider initialization.
type SummarizerStatus interface {
	// Provider returns the configured provider name ("openai", "claude",
	// "none").
	Provider() string
	// Model returns the configured model identifier, or "" when no
	// provider is configured.
	Model() string
	// Available reports whether the provider is usable: configured and
	// not known to have failed initialization.
	Available() bool
}

// HealthResponse is the JSON body for the health endpoint.
type HealthResponse struct {
	Status    string                 `json:"status"`    // "healthy" or "degraded"
	Timestamp string                 `json:"timestamp"` // ISO 8601
	Checks    map[string]CheckStatus `json:"checks"`
	Version   string                 `json:"version"`
}

// CheckStatus is the status of a single health check item.
type CheckStatus struct {
	Status  string                 `json:"status"`
	Message string                 `json:"message,omitempty"`
	Details map[string]interface{} `json:"details,omitempty"`
}

// HealthHandler reports process health and which summarization model is
// configured. A missing or failed summarizer is "degraded", never
// "unhealthy": the pipeline falls back to truncation and keeps serving.
type HealthHandler struct {
	Version    string
	Summarizer SummarizerStatus
}

// ServeHTTP answers the health check. Always 200: degraded summarization
// is an operational state, not an outage.
func (h *HealthHandler) ServeHTTP(w http.ResponseWriter, r *http.Request) {
	checks := map[string]CheckStatus{
		"summarizer": h.checkSummarizer(),
	}

	status := "healthy"
	if checks["summarizer"].Status == "degraded" {
		status = "degraded"
	}

	response := HealthResponse{
		Status:    status,
		Timestamp: time.Now().UTC().Format(time.RFC3339),
		Checks:    checks,
		Version:   h.Version,
	}

	w.Header().Set("Content-Type", "application/json")
	w.Header().Set("Cache-Control", "no-cache, no-store, must-revalidate")
	w.WriteHeader(http.StatusOK)
	if err := json.NewEncoder(w).Encode(response); err != nil {
		log.Printf("health: failed to encode response: %v", err)
	}
}

func (h *HealthHandler) checkSummarizer() CheckStatus {
	if h.Summarizer == nil {
		return CheckStatus{
			Status:  "degraded",
			Message: "summarizer not configured, truncation fallback active",
		}
	}

	details := map[string]interface{}{
		"provider": h.Summarizer.Provider(),
		"model":    h.Summarizer.Model(),
	}

	if !h.Summarizer.Available() {
		return CheckStatus{
			Status:  "degraded",
			Message: "summarization model unavailable, truncation fallback active",
			Details: details,
		}
	}

	return CheckStatus{
		Status:  "healthy",
		Details: details,
	}
}

// ReadyHandler answers Kubernetes readiness probes. The service has no
// hard dependencies (AI providers are optional), so it is ready as soon as
// it serves HTTP.
type ReadyHandler struct{}

// ServeHTTP reports readiness.
func (h *ReadyHandler) ServeHTTP(w http.ResponseWriter, r *http.Request) {
	w.Header().Set("Content-Type", "text/plain")
	w.WriteHeader(http.StatusOK)
	if _, err := w.Write([]byte("ready")); err != nil {
		log.Printf("ready: failed to write response: %v", err)
	}
}

// LiveHandler answers Kubernetes liveness probes.
type LiveHandler struct{}

// ServeHTTP reports liveness.
func (h *LiveHandler) ServeHTTP(w http.ResponseWriter, r *http.Request) {
	w.Header().Set("Content-Type", "text/plain")
	w.WriteHeader(http.StatusOK)
	if _, err := w.Write([]byte("alive")); err != nil {
		log.Printf("alive: failed to write response: %v", err)
	}
}
