// Package metrics defines the Prometheus business metrics for the analysis
// pipeline. HTTP-level metrics live in internal/handler/http; provider
// metrics live in internal/infra/summarizer.
package metrics
