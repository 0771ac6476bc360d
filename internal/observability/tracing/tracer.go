package tracing

import (
	"go.opentelemetry.io/otel"
	"go.opentelemetry.io/otel/trace"
)

// tracer is the global tracer for the clausescan service.
var tracer = otel.Tracer("clausescan")

// GetTracer returns the tracer used to create spans.
//
//	ctx, span := tracing.GetTracer().Start(ctx, "analyze.document")
//	defer span.End()
func GetTracer() trace.Tracer {
	return tracer
}
