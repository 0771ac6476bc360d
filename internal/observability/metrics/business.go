package metrics

import (
	"time"
)

// RecordDocumentAnalyzed records one completed analysis: which channel the
// document arrived through, the derived risk level, pipeline latency, and
// the document's chunk and word counts.
func RecordDocumentAnalyzed(sourceKind, riskLevel string, duration time.Duration, chunks, words int) {
	DocumentsAnalyzedTotal.WithLabelValues(sourceKind, riskLevel).Inc()
	AnalysisDuration.Observe(duration.Seconds())
	DocumentChunks.Observe(float64(chunks))
	DocumentWords.Observe(float64(words))
}

// RecordSummaryFallback records a chunk summary served by truncation
// because the AI provider was unavailable or failed.
func RecordSummaryFallback() {
	SummaryFallbacksTotal.Inc()
}

// RecordExtractionFailure records an extraction attempt that degraded to
// empty text (bad file, unreachable URL, empty page).
func RecordExtractionFailure(sourceKind string) {
	ExtractionFailuresTotal.WithLabelValues(sourceKind).Inc()
}
