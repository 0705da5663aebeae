package infrastructure

import (
	"bytes"
	"context"
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.opentelemetry.io/otel/attribute"

	"github.com/IhorStoiko/Projekt/internal/config"
)

func TestOTelInitializationDefaults(t *testing.T) {
	providers, err := InitializeOTel(nil, NewLogger(&bytes.Buffer{}, "debug"))
	require.NoError(t, err)
	require.NotNil(t, providers)

	// tracing off, metrics on
	assert.Nil(t, providers.TracerProvider)
	assert.NotNil(t, providers.Tracer)
	assert.NotNil(t, providers.MeterProvider)
	assert.NotNil(t, providers.Registry)

	ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()
	assert.NoError(t, providers.Shutdown(ctx))
}

func TestOTelConfigFrom(t *testing.T) {
	cfg := OTelConfigFrom(config.TelemetryConfig{TraceExporter: "stdout", Metrics: false}, "/tmp/t.json")

	assert.Equal(t, ServiceName, cfg.ServiceName)
	assert.Equal(t, "stdout", cfg.TraceExporter)
	assert.Equal(t, "/tmp/t.json", cfg.TraceFile)
	assert.False(t, cfg.EnableMetrics)
}

func TestOTelUnsupportedExporter(t *testing.T) {
	cfg := DefaultOTelConfig()
	cfg.TraceExporter = "zipkin"

	_, err := InitializeOTel(cfg, NewLogger(&bytes.Buffer{}, "info"))
	assert.Error(t, err)
}

func TestTraceFileExport(t *testing.T) {
	traceFile := filepath.Join(t.TempDir(), "out", "traces.json")
	cfg := DefaultOTelConfig()
	cfg.TraceExporter = "stdout"
	cfg.TraceFile = traceFile
	cfg.EnableMetrics = false

	providers, err := InitializeOTel(cfg, NewLogger(&bytes.Buffer{}, "info"))
	require.NoError(t, err)
	require.NotNil(t, providers.TracerProvider)
	assert.Nil(t, providers.Registry)

	ctx, span := providers.Tracer.Start(context.Background(), "pipeline.test")
	assert.NotEmpty(t, TraceIDFromContext(ctx))
	AddSpanEvent(ctx, "rows.loaded", attribute.Int("count", 3))
	RecordError(ctx, assert.AnError)
	span.End()

	require.NoError(t, providers.Shutdown(context.Background()))

	content, err := os.ReadFile(traceFile)
	require.NoError(t, err)
	assert.Contains(t, string(content), "pipeline.test")
	assert.Contains(t, string(content), "rows.loaded")
}

func TestTraceIDFromContextWithoutSpan(t *testing.T) {
	assert.Empty(t, TraceIDFromContext(context.Background()))
	// no-op span helpers must not panic
	AddSpanEvent(context.Background(), "ignored")
	RecordError(context.Background(), assert.AnError)
}

func TestPipelineMetricsWriteTextfile(t *testing.T) {
	providers, err := InitializeOTel(DefaultOTelConfig(), NewLogger(&bytes.Buffer{}, "info"))
	require.NoError(t, err)
	defer providers.Shutdown(context.Background())

	metrics, err := CreatePipelineMetrics(providers.Meter)
	require.NoError(t, err)

	ctx := context.Background()
	metrics.RecordRun(ctx, 2*time.Second, true)
	metrics.RecordStep(ctx, "load", 10*time.Millisecond, true)
	metrics.RecordStep(ctx, "clean", 5*time.Millisecond, false)
	metrics.RecordAlgorithm(ctx, "sorting", "bubble_sort", 0.002)
	metrics.RecordRecords(ctx, "clean", 42)

	system, err := NewSystemMetrics(providers.Meter)
	require.NoError(t, err)
	stats := system.Collect(ctx, time.Now().Add(-time.Second))
	assert.Positive(t, stats.GoRoutines)
	assert.GreaterOrEqual(t, stats.ProcessUptime, time.Second)

	path := filepath.Join(t.TempDir(), "output", "metrics.prom")
	require.NoError(t, providers.WriteMetrics(path))

	content, err := os.ReadFile(path)
	require.NoError(t, err)
	text := string(content)
	assert.Contains(t, text, "algorithm_duration_seconds")
	assert.Contains(t, text, "pipeline_steps_total")
	assert.Contains(t, text, "pipeline_step_duration_seconds")
	assert.Contains(t, text, "pipeline_records")
	assert.Contains(t, text, "system_goroutines")
	assert.Contains(t, text, `algorithm="bubble_sort"`)
}

func TestNilPipelineMetrics(t *testing.T) {
	var metrics *PipelineMetrics
	ctx := context.Background()

	assert.NotPanics(t, func() {
		metrics.RecordRun(ctx, time.Second, true)
		metrics.RecordStep(ctx, "load", time.Second, true)
		metrics.RecordAlgorithm(ctx, "search", "linear_search", 0.1)
		metrics.RecordRecords(ctx, "raw", 1)
	})

	var providers *OTelProviders
	assert.NoError(t, providers.WriteMetrics(filepath.Join(t.TempDir(), "m.prom")))
}

func TestSystemStatsLogValue(t *testing.T) {
	var buf bytes.Buffer
	logger := NewLogger(&buf, "info")

	var system *SystemMetrics
	stats := system.Collect(context.Background(), time.Now())
	logger.Info("runtime", "stats", stats)

	assert.Contains(t, buf.String(), "goroutines")
}

func BenchmarkRecordAlgorithm(b *testing.B) {
	providers, err := InitializeOTel(DefaultOTelConfig(), NewLogger(&bytes.Buffer{}, "error"))
	require.NoError(b, err)
	defer providers.Shutdown(context.Background())

	metrics, err := CreatePipelineMetrics(providers.Meter)
	require.NoError(b, err)
	ctx := context.Background()

	b.ReportAllocs()
	b.ResetTimer()
	for i := 0; i < b.N; i++ {
		metrics.RecordAlgorithm(ctx, "search", "binary_search", 1e-6)
	}
}
