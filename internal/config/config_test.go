package config

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// writeConfigFile writes a YAML config into a temp dir and returns its path
func writeConfigFile(t *testing.T, content string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), "salesreport.yaml")
	require.NoError(t, os.WriteFile(path, []byte(content), 0644))
	return path
}

func TestDefault(t *testing.T) {
	cfg := Default()

	assert.Equal(t, "info", cfg.Logging.Level)
	assert.Equal(t, "json", cfg.Logging.Format)
	assert.Equal(t, "console", cfg.Logging.Output)

	assert.Equal(t, ".", cfg.Paths.BaseDir)
	assert.Equal(t, filepath.Join("data", "sales_data.csv"), cfg.Paths.RawData)
	assert.Equal(t, filepath.Join("data", "sales_clean.csv"), cfg.Paths.CleanData)
	assert.Equal(t, "output", cfg.Paths.OutputDir)
	assert.Equal(t, "figures", cfg.Paths.FiguresDir)

	assert.Equal(t, 10, cfg.Analysis.TopN)
	assert.Equal(t, 20, cfg.Analysis.HistogramBins)
	assert.True(t, cfg.Benchmark.Enabled)
	assert.Equal(t, 1000, cfg.Benchmark.SearchRuns)
	assert.Equal(t, 1, cfg.Benchmark.SortRuns)

	assert.True(t, cfg.Output.Charts)
	assert.True(t, cfg.Output.Workbook)
	assert.Equal(t, "none", cfg.Telemetry.TraceExporter)
	assert.True(t, cfg.Telemetry.Metrics)

	require.NoError(t, cfg.Validate())
}

func TestLoad(t *testing.T) {
	tests := []struct {
		name        string
		env         map[string]string
		file        string
		wantErr     bool
		validateCfg func(*testing.T, *Config)
	}{
		{
			name: "defaults only",
			validateCfg: func(t *testing.T, cfg *Config) {
				assert.Equal(t, 10, cfg.Analysis.TopN)
				assert.Equal(t, "info", cfg.Logging.Level)
			},
		},
		{
			name: "yaml overrides defaults",
			file: `
analysis:
  top_n: 5
  histogram_bins: 30
benchmark:
  enabled: false
  search_runs: 50
  sort_runs: 2
logging:
  level: debug
`,
			validateCfg: func(t *testing.T, cfg *Config) {
				assert.Equal(t, 5, cfg.Analysis.TopN)
				assert.Equal(t, 30, cfg.Analysis.HistogramBins)
				assert.False(t, cfg.Benchmark.Enabled)
				assert.Equal(t, 50, cfg.Benchmark.SearchRuns)
				assert.Equal(t, "debug", cfg.Logging.Level)
				// untouched sections keep their defaults
				assert.Equal(t, "output", cfg.Paths.OutputDir)
			},
		},
		{
			name: "env wins over yaml",
			file: `
analysis:
  top_n: 5
`,
			env: map[string]string{
				"SALES_ANALYSIS_TOP_N":           "3",
				"SALES_LOGGING_LEVEL":            "WARN",
				"SALES_PATHS_BASE_DIR":           "/srv/sales",
				"SALES_OUTPUT_CHARTS":            "false",
				"SALES_TELEMETRY_TRACE_EXPORTER": "stdout",
			},
			validateCfg: func(t *testing.T, cfg *Config) {
				assert.Equal(t, 3, cfg.Analysis.TopN)
				assert.Equal(t, "warn", cfg.Logging.Level)
				assert.Equal(t, "/srv/sales", cfg.Paths.BaseDir)
				assert.False(t, cfg.Output.Charts)
				assert.Equal(t, "stdout", cfg.Telemetry.TraceExporter)
			},
		},
		{
			name:    "malformed yaml",
			file:    "analysis: [unclosed",
			wantErr: true,
		},
		{
			name:    "invalid env value",
			env:     map[string]string{"SALES_ANALYSIS_TOP_N": "many"},
			wantErr: true,
		},
		{
			name:    "validation failure",
			env:     map[string]string{"SALES_BENCHMARK_SEARCH_RUNS": "0"},
			wantErr: true,
		},
		{
			name:    "unknown trace exporter",
			file:    "telemetry:\n  trace_exporter: jaeger\n",
			wantErr: true,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			for k, v := range tt.env {
				t.Setenv(k, v)
			}
			path := ""
			if tt.file != "" {
				path = writeConfigFile(t, tt.file)
			}

			cfg, err := Load(path)
			if tt.wantErr {
				assert.Error(t, err)
				return
			}
			require.NoError(t, err)
			require.NotNil(t, cfg)
			if tt.validateCfg != nil {
				tt.validateCfg(t, cfg)
			}
		})
	}
}

func TestLoadMissingFile(t *testing.T) {
	_, err := Load(filepath.Join(t.TempDir(), "missing.yaml"))
	require.Error(t, err)
	assert.Contains(t, err.Error(), "failed to load config from file")
}

func TestValidate(t *testing.T) {
	tests := []struct {
		name    string
		mutate  func(*Config)
		wantErr string
	}{
		{name: "valid", mutate: func(*Config) {}},
		{name: "bad log level", mutate: func(c *Config) { c.Logging.Level = "loud" }, wantErr: "Level"},
		{name: "bad log output", mutate: func(c *Config) { c.Logging.Output = "syslog" }, wantErr: "Output"},
		{name: "empty raw path", mutate: func(c *Config) { c.Paths.RawData = "" }, wantErr: "RawData"},
		{name: "zero top n", mutate: func(c *Config) { c.Analysis.TopN = 0 }, wantErr: "TopN"},
		{name: "zero bins", mutate: func(c *Config) { c.Analysis.HistogramBins = 0 }, wantErr: "HistogramBins"},
		{name: "zero sort runs", mutate: func(c *Config) { c.Benchmark.SortRuns = 0 }, wantErr: "SortRuns"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			cfg := Default()
			tt.mutate(cfg)
			err := cfg.Validate()
			if tt.wantErr == "" {
				assert.NoError(t, err)
				return
			}
			require.Error(t, err)
			assert.Contains(t, err.Error(), tt.wantErr)
		})
	}
}

func TestResolvedPaths(t *testing.T) {
	cfg := Default()
	cfg.Paths.BaseDir = "/tmp/sales"
	cfg.Output.MetricsFile = "pipeline.prom"
	cfg.Telemetry.TraceFile = "/var/trace/run.json"

	paths := cfg.ResolvedPaths()
	assert.Equal(t, filepath.Join("/tmp/sales", "output", "pipeline.prom"), paths.MetricsFile)
	assert.Equal(t, "/var/trace/run.json", paths.TraceFile)
	assert.Equal(t, filepath.Join("/tmp/sales", "data", "sales_data.csv"), paths.RawData)
}

func TestLogFilePath(t *testing.T) {
	cfg := Default()
	cfg.Paths.BaseDir = "/tmp/sales"
	assert.Equal(t, filepath.Join("/tmp/sales", "logs", LogFileName), cfg.LogFilePath())

	cfg.Logging.FilePath = "/var/log/sales.log"
	assert.Equal(t, "/var/log/sales.log", cfg.LogFilePath())
}

func TestNormalizeFillsBlanks(t *testing.T) {
	cfg := Default()
	cfg.Logging.Level = "DEBUG"
	cfg.Logging.Format = ""
	cfg.Logging.FilePath = ""
	cfg.Telemetry.TraceExporter = ""

	cfg.normalize()

	assert.Equal(t, "debug", cfg.Logging.Level)
	assert.Equal(t, "json", cfg.Logging.Format)
	assert.Equal(t, filepath.Join(cfg.Paths.LogsDir, LogFileName), cfg.Logging.FilePath)
	assert.Equal(t, "none", cfg.Telemetry.TraceExporter)
}
