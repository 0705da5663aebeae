package infrastructure

import (
	"context"
	"log/slog"
	"runtime"
	"time"

	"go.opentelemetry.io/otel/metric"
)

// SystemMetrics records a Go runtime snapshot at the end of a run
type SystemMetrics struct {
	goRoutines      metric.Int64Gauge
	memoryUsage     metric.Int64Gauge
	memoryAllocated metric.Int64Gauge
	gcCount         metric.Int64Gauge
	processUptime   metric.Float64Gauge
}

// NewSystemMetrics creates the runtime gauges on meter
func NewSystemMetrics(meter metric.Meter) (*SystemMetrics, error) {
	goRoutines, err := meter.Int64Gauge(
		"system_goroutines",
		metric.WithDescription("Number of active goroutines"),
	)
	if err != nil {
		return nil, err
	}

	memoryUsage, err := meter.Int64Gauge(
		"system_memory_usage_bytes",
		metric.WithDescription("Heap bytes in use"),
		metric.WithUnit("By"),
	)
	if err != nil {
		return nil, err
	}

	memoryAllocated, err := meter.Int64Gauge(
		"system_memory_allocated_bytes",
		metric.WithDescription("Cumulative bytes allocated by the Go runtime"),
		metric.WithUnit("By"),
	)
	if err != nil {
		return nil, err
	}

	gcCount, err := meter.Int64Gauge(
		"system_gc_count",
		metric.WithDescription("Completed garbage collection cycles"),
	)
	if err != nil {
		return nil, err
	}

	processUptime, err := meter.Float64Gauge(
		"system_process_uptime_seconds",
		metric.WithDescription("Process uptime in seconds"),
		metric.WithUnit("s"),
	)
	if err != nil {
		return nil, err
	}

	return &SystemMetrics{
		goRoutines:      goRoutines,
		memoryUsage:     memoryUsage,
		memoryAllocated: memoryAllocated,
		gcCount:         gcCount,
		processUptime:   processUptime,
	}, nil
}

// SystemStats holds a runtime snapshot
type SystemStats struct {
	GoRoutines      int64
	MemoryUsage     int64
	MemoryAllocated int64
	GCCount         uint32
	ProcessUptime   time.Duration
	Timestamp       time.Time
}

// Collect reads the runtime statistics and records them
func (sm *SystemMetrics) Collect(ctx context.Context, startTime time.Time) *SystemStats {
	var memStats runtime.MemStats
	runtime.ReadMemStats(&memStats)

	stats := &SystemStats{
		GoRoutines:      int64(runtime.NumGoroutine()),
		MemoryUsage:     int64(memStats.Alloc),
		MemoryAllocated: int64(memStats.TotalAlloc),
		GCCount:         memStats.NumGC,
		ProcessUptime:   time.Since(startTime),
		Timestamp:       time.Now(),
	}

	if sm != nil {
		sm.goRoutines.Record(ctx, stats.GoRoutines)
		sm.memoryUsage.Record(ctx, stats.MemoryUsage)
		sm.memoryAllocated.Record(ctx, stats.MemoryAllocated)
		sm.gcCount.Record(ctx, int64(stats.GCCount))
		sm.processUptime.Record(ctx, stats.ProcessUptime.Seconds())
	}

	return stats
}

// LogValue renders the snapshot as a structured log group
func (stats *SystemStats) LogValue() slog.Value {
	return slog.GroupValue(
		slog.Int64("goroutines", stats.GoRoutines),
		slog.Int64("memory_usage_mb", stats.MemoryUsage/1024/1024),
		slog.Int64("memory_alloc_mb", stats.MemoryAllocated/1024/1024),
		slog.Uint64("gc_count", uint64(stats.GCCount)),
		slog.Float64("uptime_seconds", stats.ProcessUptime.Seconds()),
	)
}
