package operations

import (
	"context"
	"fmt"
	"time"

	"go.opentelemetry.io/otel/attribute"
	"go.opentelemetry.io/otel/codes"
	"go.opentelemetry.io/otel/trace"
	"go.opentelemetry.io/otel/trace/noop"

	"github.com/IhorStoiko/Projekt/internal/infrastructure"
)

// OperationTracer provides OpenTelemetry instrumentation for pipeline runs.
// A tracer built from nil providers traces nothing and records no metrics.
type OperationTracer struct {
	tracer  trace.Tracer
	metrics *infrastructure.PipelineMetrics
	system  *infrastructure.SystemMetrics
}

// NewOperationTracer creates a tracer using the providers' tracer and meter
func NewOperationTracer(providers *infrastructure.OTelProviders) (*OperationTracer, error) {
	if providers == nil {
		return &OperationTracer{tracer: noop.NewTracerProvider().Tracer(infrastructure.MeterName)}, nil
	}

	metrics, err := infrastructure.CreatePipelineMetrics(providers.Meter)
	if err != nil {
		return nil, fmt.Errorf("failed to create pipeline metrics: %w", err)
	}

	system, err := infrastructure.NewSystemMetrics(providers.Meter)
	if err != nil {
		return nil, fmt.Errorf("failed to create system metrics: %w", err)
	}

	return &OperationTracer{
		tracer:  providers.Tracer,
		metrics: metrics,
		system:  system,
	}, nil
}

// Metrics returns the pipeline instruments, nil when metrics are off
func (pt *OperationTracer) Metrics() *infrastructure.PipelineMetrics {
	if pt == nil {
		return nil
	}
	return pt.metrics
}

// TraceOperationExecution creates a span for the entire run
func (pt *OperationTracer) TraceOperationExecution(ctx context.Context, operationID string, stepCount int) (context.Context, trace.Span) {
	return pt.tracer.Start(ctx, "operation.execute",
		trace.WithSpanKind(trace.SpanKindInternal),
		trace.WithAttributes(
			attribute.String("operation.id", operationID),
			attribute.Int("operation.step_count", stepCount),
		),
	)
}

// TraceStepExecution creates a span for one step
func (pt *OperationTracer) TraceStepExecution(ctx context.Context, operationID, stepID string) (context.Context, trace.Span) {
	spanName := fmt.Sprintf("operation.step.%s", stepID)
	return pt.tracer.Start(ctx, spanName,
		trace.WithSpanKind(trace.SpanKindInternal),
		trace.WithAttributes(
			attribute.String("operation.id", operationID),
			attribute.String("step.id", stepID),
		),
	)
}

// RecordStepCompletion closes out a step span and records its metrics
func (pt *OperationTracer) RecordStepCompletion(ctx context.Context, span trace.Span, stepID string, duration time.Duration, err error) {
	span.SetAttributes(attribute.Float64("step.duration_seconds", duration.Seconds()))
	pt.metrics.RecordStep(ctx, stepID, duration, err == nil)

	if err != nil {
		infrastructure.RecordError(ctx, err)
		return
	}

	infrastructure.AddSpanEvent(ctx, "step.completed",
		attribute.String("step.id", stepID),
		attribute.Float64("duration", duration.Seconds()))
	span.SetStatus(codes.Ok, "step completed successfully")
}

// RecordOperationCompletion closes out the run span, records the run metrics
// and takes a runtime snapshot
func (pt *OperationTracer) RecordOperationCompletion(ctx context.Context, span trace.Span, state *OperationState) *infrastructure.SystemStats {
	duration := state.Duration()
	success := state.Status == OperationStatusCompleted

	span.SetAttributes(
		attribute.String("operation.status", string(state.Status)),
		attribute.Float64("operation.duration_seconds", duration.Seconds()),
	)
	pt.metrics.RecordRun(ctx, duration, success)

	if success {
		span.SetStatus(codes.Ok, "operation completed successfully")
	} else {
		infrastructure.RecordError(ctx, state.Error)
	}

	return pt.system.Collect(ctx, state.StartTime)
}
