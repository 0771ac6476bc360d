package metrics

import (
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

// Analysis pipeline metrics. Registered on the default registry via
// promauto so the /metrics endpoint picks them up without extra wiring.
var (
	// DocumentsAnalyzedTotal counts completed analyses by input channel
	// and resulting risk level.
	DocumentsAnalyzedTotal = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Name: "clausescan_documents_analyzed_total",
			Help: "Total number of documents analyzed",
		},
		[]string{"source_kind", "risk_level"},
	)

	// AnalysisDuration tracks end-to-end pipeline latency per document.
	AnalysisDuration = promauto.NewHistogram(
		prometheus.HistogramOpts{
			Name:    "clausescan_analysis_duration_seconds",
			Help:    "Time taken to analyze a document end to end",
			Buckets: prometheus.ExponentialBuckets(0.05, 2, 12),
		},
	)

	// DocumentChunks tracks how many chunks documents are split into.
	DocumentChunks = promauto.NewHistogram(
		prometheus.HistogramOpts{
			Name:    "clausescan_document_chunks",
			Help:    "Number of chunks per analyzed document",
			Buckets: []float64{1, 2, 4, 8, 16, 32, 64},
		},
	)

	// DocumentWords tracks analyzed document sizes in words.
	DocumentWords = promauto.NewHistogram(
		prometheus.HistogramOpts{
			Name:    "clausescan_document_words",
			Help:    "Word count per analyzed document",
			Buckets: prometheus.ExponentialBuckets(100, 2, 12),
		},
	)

	// SummaryFallbacksTotal counts chunk summaries produced by the
	// truncation fallback instead of the AI provider.
	SummaryFallbacksTotal = promauto.NewCounter(
		prometheus.CounterOpts{
			Name: "clausescan_summary_fallbacks_total",
			Help: "Total number of chunk summaries served by the truncation fallback",
		},
	)

	// ExtractionFailuresTotal counts extraction attempts that degraded to
	// empty text, by input channel.
	ExtractionFailuresTotal = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Name: "clausescan_extraction_failures_total",
			Help: "Total number of extraction attempts that produced no text",
		},
		[]string{"source_kind"},
	)
)
