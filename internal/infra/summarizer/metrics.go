package summarizer

import (
	"sync"
	"time"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

// MetricsRecorder records summarization API call outcomes. The providers
// take the interface so tests can pass a stub without touching the global
// Prometheus registry.
type MetricsRecorder interface {
	RecordCall(provider, model, status string, duration time.Duration)
	RecordInputTruncated(provider string)
}

type prometheusRecorder struct {
	calls     *prometheus.CounterVec
	duration  *prometheus.HistogramVec
	truncated *prometheus.CounterVec
}

var (
	recorderOnce sync.Once
	recorder     *prometheusRecorder
)

// NewMetricsRecorder returns the process-wide Prometheus recorder.
// promauto panics on duplicate registration, so the collectors are
// created exactly once regardless of how many providers are built.
func NewMetricsRecorder() MetricsRecorder {
	recorderOnce.Do(func() {
		recorder = &prometheusRecorder{
			calls: promauto.NewCounterVec(
				prometheus.CounterOpts{
					Name: "clausescan_summarizer_calls_total",
					Help: "Summarization API calls by provider, model, and outcome status.",
				},
				[]string{"provider", "model", "status"},
			),
			duration: promauto.NewHistogramVec(
				prometheus.HistogramOpts{
					Name:    "clausescan_summarizer_call_duration_seconds",
					Help:    "Summarization API call latency in seconds.",
					Buckets: []float64{0.25, 0.5, 1, 2.5, 5, 10, 30, 60, 120},
				},
				[]string{"provider", "model"},
			),
			truncated: promauto.NewCounterVec(
				prometheus.CounterOpts{
					Name: "clausescan_summarizer_input_truncated_total",
					Help: "Chunks whose text was truncated before being sent to the provider.",
				},
				[]string{"provider"},
			),
		}
	})
	return recorder
}

func (r *prometheusRecorder) RecordCall(provider, model, status string, duration time.Duration) {
	r.calls.WithLabelValues(provider, model, status).Inc()
	r.duration.WithLabelValues(provider, model).Observe(duration.Seconds())
}

func (r *prometheusRecorder) RecordInputTruncated(provider string) {
	r.truncated.WithLabelValues(provider).Inc()
}

// nopMetrics discards all observations. Used by tests and the NoOp provider.
type nopMetrics struct{}

func (nopMetrics) RecordCall(string, string, string, time.Duration) {}
func (nopMetrics) RecordInputTruncated(string)                      {}
