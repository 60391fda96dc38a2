package pipeline

import (
	"context"

	"go.opentelemetry.io/otel"
	"go.opentelemetry.io/otel/attribute"
	"go.opentelemetry.io/otel/trace"
)

const (
	// TracerName is the name of the tracer for digest operations.
	TracerName = "digest"
)

// Span attribute keys
const (
	AttrRunID        = "run_id"
	AttrLanguage     = "language"
	AttrASRSegments  = "asr_segments"
	AttrDiarSegments = "diar_segments"
	AttrTurns        = "turns"
	AttrSentences    = "sentences"
	AttrIterations   = "iterations"
	AttrConverged    = "converged"
)

// Span names
const (
	SpanRun           = "digest.run"
	SpanStageValidate = "digest.stage.validate"
	SpanStageAlign    = "digest.stage.align"
	SpanStageMerge    = "digest.stage.merge"
	SpanStageSegment  = "digest.stage.segment"
	SpanStageSentRank = "digest.stage.sentence_rank"
	SpanStageKeywords = "digest.stage.keyword_rank"
)

// Tracer provides tracing for pipeline invocations. Without an SDK exporter
// installed the spans are no-ops, so the instrumentation costs nothing in
// the plain CLI path.
type Tracer struct {
	tracer trace.Tracer
}

// NewTracer creates a new pipeline tracer.
func NewTracer() *Tracer {
	return &Tracer{tracer: otel.Tracer(TracerName)}
}

// StartRunSpan starts the root span for one invocation.
func (t *Tracer) StartRunSpan(ctx context.Context, runID string, asrCount, diarCount int) (context.Context, trace.Span) {
	return t.tracer.Start(ctx, SpanRun,
		trace.WithAttributes(
			attribute.String(AttrRunID, runID),
			attribute.Int(AttrASRSegments, asrCount),
			attribute.Int(AttrDiarSegments, diarCount),
		),
	)
}

// StartStageSpan starts a span for a pipeline stage.
func (t *Tracer) StartStageSpan(ctx context.Context, name string) (context.Context, trace.Span) {
	return t.tracer.Start(ctx, name)
}
