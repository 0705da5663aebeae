package config

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNewPaths(t *testing.T) {
	base := t.TempDir()
	cfg := Default().Paths
	cfg.BaseDir = base

	paths := NewPaths(cfg)

	assert.Equal(t, base, paths.BaseDir)
	assert.Equal(t, filepath.Join(base, "data", "sales_data.csv"), paths.RawData)
	assert.Equal(t, filepath.Join(base, "data", "sales_clean.csv"), paths.CleanData)
	assert.Equal(t, filepath.Join(base, "data"), paths.DataDir)
	assert.Equal(t, filepath.Join(base, "output", "top_customers.csv"), paths.TopCustomersCSV)
	assert.Equal(t, filepath.Join(base, "output", "average_order_by_category.csv"), paths.CategoryAverageCSV)
	assert.Equal(t, filepath.Join(base, "output", "summary_report.txt"), paths.SummaryReport)
	assert.Equal(t, filepath.Join(base, "output", "sales_report.xlsx"), paths.Workbook)
	assert.Equal(t, filepath.Join(base, "output", "metrics.prom"), paths.MetricsFile)
	assert.Equal(t, filepath.Join(base, "figures", "revenue_by_category.png"), paths.RevenueByCategoryChart)
	assert.Equal(t, filepath.Join(base, "figures", "monthly_revenue_trend.png"), paths.MonthlyTrendChart)
	assert.Equal(t, filepath.Join(base, "figures", "order_value_distribution.png"), paths.OrderValueHistogram)
}

func TestNewPathsKeepsAbsolute(t *testing.T) {
	cfg := Default().Paths
	cfg.BaseDir = "/base"
	cfg.RawData = "/elsewhere/input.csv"

	paths := NewPaths(cfg)
	assert.Equal(t, "/elsewhere/input.csv", paths.RawData)
	assert.Equal(t, filepath.Join("/base", "output"), paths.OutputDir)
}

func TestNewPathsEmptyBase(t *testing.T) {
	cfg := Default().Paths
	cfg.BaseDir = ""

	paths := NewPaths(cfg)
	assert.Equal(t, ".", paths.BaseDir)
	assert.Equal(t, filepath.Join("data", "sales_data.csv"), paths.RawData)
}

func TestEnsureDirectories(t *testing.T) {
	base := t.TempDir()
	cfg := Default().Paths
	cfg.BaseDir = base
	paths := NewPaths(cfg)

	require.NoError(t, paths.EnsureDirectories())
	for _, dir := range []string{paths.DataDir, paths.OutputDir, paths.FiguresDir, paths.LogsDir} {
		info, err := os.Stat(dir)
		require.NoError(t, err, dir)
		assert.True(t, info.IsDir(), dir)
	}

	// second call is a no-op
	require.NoError(t, paths.EnsureDirectories())
}

func TestEnsureDirectoriesBlockedByFile(t *testing.T) {
	base := t.TempDir()
	require.NoError(t, os.WriteFile(filepath.Join(base, "output"), []byte("x"), 0644))

	cfg := Default().Paths
	cfg.BaseDir = base
	err := NewPaths(cfg).EnsureDirectories()
	require.Error(t, err)
	assert.Contains(t, err.Error(), "failed to create directory")
}

func TestPathHelperMethods(t *testing.T) {
	paths := NewPaths(PathsConfig{
		BaseDir:    "/r",
		RawData:    "in/raw.csv",
		CleanData:  "in/clean.csv",
		OutputDir:  "out",
		FiguresDir: "fig",
		LogsDir:    "log",
	})

	assert.Equal(t, filepath.Join("/r", "out", "a.csv"), paths.GetOutputPath("a.csv"))
	assert.Equal(t, filepath.Join("/r", "fig", "b.png"), paths.GetFigurePath("b.png"))
	assert.Equal(t, filepath.Join("/r", "in", "c.csv"), paths.GetDataPath("c.csv"))
	assert.Equal(t, filepath.Join("/r", "log", "d.log"), paths.GetLogPath("d.log"))
	assert.Equal(t, filepath.Join("/r", "out", "m.prom"), paths.resolveOutput("m.prom"))
	assert.Equal(t, filepath.Join("sub", "m.prom"), paths.resolveOutput(filepath.Join("sub", "m.prom")))
}

func TestFileExists(t *testing.T) {
	dir := t.TempDir()
	file := filepath.Join(dir, "present.csv")
	require.NoError(t, os.WriteFile(file, []byte("a"), 0644))

	assert.True(t, FileExists(file))
	assert.False(t, FileExists(filepath.Join(dir, "absent.csv")))
}

func TestValidateRequiredFiles(t *testing.T) {
	base := t.TempDir()
	cfg := Default().Paths
	cfg.BaseDir = base
	paths := NewPaths(cfg)

	err := paths.ValidateRequiredFiles()
	require.Error(t, err)
	assert.Contains(t, err.Error(), "Raw data")

	require.NoError(t, paths.EnsureDirectories())
	require.NoError(t, os.WriteFile(paths.RawData, []byte("order_date\n"), 0644))
	assert.NoError(t, paths.ValidateRequiredFiles())
}

func TestLogPathResolution(t *testing.T) {
	paths := NewPaths(Default().Paths)
	assert.NotPanics(t, func() { paths.LogPathResolution(nil) })
}

func BenchmarkNewPaths(b *testing.B) {
	cfg := Default().Paths
	b.ReportAllocs()
	for i := 0; i < b.N; i++ {
		_ = NewPaths(cfg)
	}
}
