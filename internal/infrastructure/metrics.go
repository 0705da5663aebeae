package infrastructure

import (
	"context"
	"time"

	"go.opentelemetry.io/otel/attribute"
	"go.opentelemetry.io/otel/metric"
)

// PipelineMetrics holds the instruments recorded during a pipeline run.
// A nil *PipelineMetrics is valid and records nothing.
type PipelineMetrics struct {
	RunsTotal         metric.Int64Counter
	RunDuration       metric.Float64Histogram
	StepsTotal        metric.Int64Counter
	StepDuration      metric.Float64Histogram
	AlgorithmDuration metric.Float64Histogram
	Records           metric.Int64Gauge
}

// CreatePipelineMetrics registers the pipeline instruments on meter
func CreatePipelineMetrics(meter metric.Meter) (*PipelineMetrics, error) {
	runsTotal, err := meter.Int64Counter(
		"pipeline_runs_total",
		metric.WithDescription("Total number of pipeline runs"),
	)
	if err != nil {
		return nil, err
	}

	runDuration, err := meter.Float64Histogram(
		"pipeline_run_duration_seconds",
		metric.WithDescription("Pipeline run duration in seconds"),
		metric.WithUnit("s"),
	)
	if err != nil {
		return nil, err
	}

	stepsTotal, err := meter.Int64Counter(
		"pipeline_steps_total",
		metric.WithDescription("Total number of pipeline steps executed"),
	)
	if err != nil {
		return nil, err
	}

	stepDuration, err := meter.Float64Histogram(
		"pipeline_step_duration_seconds",
		metric.WithDescription("Pipeline step duration in seconds"),
		metric.WithUnit("s"),
	)
	if err != nil {
		return nil, err
	}

	algorithmDuration, err := meter.Float64Histogram(
		"algorithm_duration_seconds",
		metric.WithDescription("Measured sort and search durations in seconds"),
		metric.WithUnit("s"),
		metric.WithExplicitBucketBoundaries(1e-7, 1e-6, 1e-5, 1e-4, 1e-3, 1e-2, 0.1, 1, 10),
	)
	if err != nil {
		return nil, err
	}

	records, err := meter.Int64Gauge(
		"pipeline_records",
		metric.WithDescription("Number of order records per pipeline stage"),
	)
	if err != nil {
		return nil, err
	}

	return &PipelineMetrics{
		RunsTotal:         runsTotal,
		RunDuration:       runDuration,
		StepsTotal:        stepsTotal,
		StepDuration:      stepDuration,
		AlgorithmDuration: algorithmDuration,
		Records:           records,
	}, nil
}

// statusLabel maps a success flag onto the status attribute
func statusLabel(success bool) attribute.KeyValue {
	if success {
		return attribute.String("status", "success")
	}
	return attribute.String("status", "failure")
}

// RecordRun records one finished pipeline run
func (m *PipelineMetrics) RecordRun(ctx context.Context, duration time.Duration, success bool) {
	if m == nil {
		return
	}
	attrs := metric.WithAttributes(statusLabel(success))
	m.RunsTotal.Add(ctx, 1, attrs)
	m.RunDuration.Record(ctx, duration.Seconds(), attrs)
}

// RecordStep records one executed pipeline step
func (m *PipelineMetrics) RecordStep(ctx context.Context, stepID string, duration time.Duration, success bool) {
	if m == nil {
		return
	}
	attrs := metric.WithAttributes(
		attribute.String("step.id", stepID),
		statusLabel(success),
	)
	m.StepsTotal.Add(ctx, 1, attrs)
	m.StepDuration.Record(ctx, duration.Seconds(), attrs)
}

// RecordAlgorithm records a measured sort or search timing
func (m *PipelineMetrics) RecordAlgorithm(ctx context.Context, group, name string, seconds float64) {
	if m == nil {
		return
	}
	m.AlgorithmDuration.Record(ctx, seconds, metric.WithAttributes(
		attribute.String("group", group),
		attribute.String("algorithm", name),
	))
}

// RecordRecords sets the record count observed at a stage (raw, clean, dropped, undated)
func (m *PipelineMetrics) RecordRecords(ctx context.Context, stage string, n int) {
	if m == nil {
		return
	}
	m.Records.Record(ctx, int64(n), metric.WithAttributes(attribute.String("stage", stage)))
}
