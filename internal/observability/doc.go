// Package observability groups the operational concerns of the service:
// structured logging (logging), Prometheus metrics (metrics), and
// OpenTelemetry tracing (tracing).
package observability
