// Package tracing provides OpenTelemetry instrumentation for the HTTP
// surface. The middleware opens one server span per request; pipeline
// stages create child spans through GetTracer.
package tracing
