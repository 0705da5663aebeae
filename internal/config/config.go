package config

import (
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/go-playground/validator/v10"
	"github.com/kelseyhightower/envconfig"
	"gopkg.in/yaml.v2"
)

// Config represents the complete application configuration
type Config struct {
	Logging   LoggingConfig   `yaml:"logging" envconfig:"LOGGING"`
	Paths     PathsConfig     `yaml:"paths" envconfig:"PATHS"`
	Analysis  AnalysisConfig  `yaml:"analysis" envconfig:"ANALYSIS"`
	Benchmark BenchmarkConfig `yaml:"benchmark" envconfig:"BENCHMARK"`
	Output    OutputConfig    `yaml:"output" envconfig:"OUTPUT"`
	Telemetry TelemetryConfig `yaml:"telemetry" envconfig:"TELEMETRY"`
}

// LoggingConfig contains logging configuration
type LoggingConfig struct {
	Level       string `yaml:"level" envconfig:"LEVEL" validate:"oneof=debug info warn warning error"`
	Format      string `yaml:"format" envconfig:"FORMAT" validate:"oneof=json"`
	Output      string `yaml:"output" envconfig:"OUTPUT" validate:"oneof=console file both"`
	FilePath    string `yaml:"file_path" envconfig:"FILE_PATH"`
	Development bool   `yaml:"development" envconfig:"DEVELOPMENT"`
}

// PathsConfig contains file system paths configuration.
// Relative entries are resolved against BaseDir.
type PathsConfig struct {
	BaseDir    string `yaml:"base_dir" envconfig:"BASE_DIR" validate:"required"`
	RawData    string `yaml:"raw_data" envconfig:"RAW_DATA" validate:"required"`
	CleanData  string `yaml:"clean_data" envconfig:"CLEAN_DATA" validate:"required"`
	OutputDir  string `yaml:"output_dir" envconfig:"OUTPUT_DIR" validate:"required"`
	FiguresDir string `yaml:"figures_dir" envconfig:"FIGURES_DIR" validate:"required"`
	LogsDir    string `yaml:"logs_dir" envconfig:"LOGS_DIR" validate:"required"`
}

// AnalysisConfig tunes the metric aggregation
type AnalysisConfig struct {
	TopN          int `yaml:"top_n" envconfig:"TOP_N" validate:"min=1"`
	HistogramBins int `yaml:"histogram_bins" envconfig:"HISTOGRAM_BINS" validate:"min=1"`
}

// BenchmarkConfig controls the sort/search timing comparison
type BenchmarkConfig struct {
	Enabled    bool `yaml:"enabled" envconfig:"ENABLED"`
	SortRuns   int  `yaml:"sort_runs" envconfig:"SORT_RUNS" validate:"min=1"`
	SearchRuns int  `yaml:"search_runs" envconfig:"SEARCH_RUNS" validate:"min=1"`
}

// OutputConfig selects optional artifacts
type OutputConfig struct {
	Charts      bool   `yaml:"charts" envconfig:"CHARTS"`
	Workbook    bool   `yaml:"workbook" envconfig:"WORKBOOK"`
	MetricsFile string `yaml:"metrics_file" envconfig:"METRICS_FILE"`
}

// TelemetryConfig contains tracing and metrics configuration
type TelemetryConfig struct {
	TraceExporter string `yaml:"trace_exporter" envconfig:"TRACE_EXPORTER" validate:"oneof=stdout none"`
	TraceFile     string `yaml:"trace_file" envconfig:"TRACE_FILE"`
	Metrics       bool   `yaml:"metrics" envconfig:"METRICS"`
}

// Load builds the configuration from defaults, an optional YAML file and the
// environment, in increasing order of precedence. An empty configFile means
// the well-known locations are searched.
func Load(configFile string) (*Config, error) {
	cfg := Default()

	if configFile == "" {
		configFile = getConfigFilePath()
	}
	if configFile != "" {
		if err := loadFromFile(configFile, cfg); err != nil {
			return nil, fmt.Errorf("failed to load config from file: %w", err)
		}
	}

	// Fields without a matching variable are left as they are
	if err := envconfig.Process(EnvPrefix, cfg); err != nil {
		return nil, fmt.Errorf("failed to load config from env: %w", err)
	}

	cfg.normalize()

	if err := cfg.Validate(); err != nil {
		return nil, fmt.Errorf("config validation failed: %w", err)
	}

	return cfg, nil
}

// loadFromFile overlays the YAML file onto cfg
func loadFromFile(filePath string, cfg *Config) error {
	data, err := os.ReadFile(filePath)
	if err != nil {
		return err
	}
	return yaml.Unmarshal(data, cfg)
}

// normalize fills values that must never be empty
func (c *Config) normalize() {
	c.Logging.Level = strings.ToLower(c.Logging.Level)
	if c.Logging.Format == "" {
		c.Logging.Format = "json"
	}
	if c.Logging.FilePath == "" {
		c.Logging.FilePath = filepath.Join(c.Paths.LogsDir, LogFileName)
	}
	if c.Telemetry.TraceExporter == "" {
		c.Telemetry.TraceExporter = "none"
	}
}

// Validate checks the configuration against its struct constraints
func (c *Config) Validate() error {
	v := validator.New(validator.WithRequiredStructEnabled())
	if err := v.Struct(c); err != nil {
		if verrs, ok := err.(validator.ValidationErrors); ok {
			msgs := make([]string, 0, len(verrs))
			for _, fe := range verrs {
				msgs = append(msgs, fmt.Sprintf("%s: failed %q (value %v)", fe.Namespace(), fe.Tag(), fe.Value()))
			}
			return fmt.Errorf("invalid configuration: %s", strings.Join(msgs, "; "))
		}
		return err
	}
	return nil
}

// ResolvedPaths returns the path layout for this configuration, including
// the metrics and trace file overrides
func (c *Config) ResolvedPaths() *Paths {
	p := NewPaths(c.Paths)
	if c.Output.MetricsFile != "" {
		p.MetricsFile = p.resolveOutput(c.Output.MetricsFile)
	}
	if c.Telemetry.TraceFile != "" {
		p.TraceFile = p.resolveOutput(c.Telemetry.TraceFile)
	}
	return p
}

// LogFilePath returns the log file path resolved against the base directory
func (c *Config) LogFilePath() string {
	if filepath.IsAbs(c.Logging.FilePath) {
		return c.Logging.FilePath
	}
	return filepath.Join(c.Paths.BaseDir, c.Logging.FilePath)
}

// getConfigFilePath returns the path to the config file
func getConfigFilePath() string {
	locations := []string{
		"salesreport.yaml",
		"config.yaml",
		"configs/config.yaml",
	}

	for _, location := range locations {
		if _, err := os.Stat(location); err == nil {
			return location
		}
	}

	return "" // No config file found, use env vars only
}

// Default returns default configuration
func Default() *Config {
	return &Config{
		Logging: LoggingConfig{
			Level:    "info",
			Format:   "json",
			Output:   "console",
			FilePath: filepath.Join(DefaultLogsDir, LogFileName),
		},
		Paths: PathsConfig{
			BaseDir:    ".",
			RawData:    filepath.Join(DefaultDataDir, RawDataFileName),
			CleanData:  filepath.Join(DefaultDataDir, CleanDataFileName),
			OutputDir:  DefaultOutputDir,
			FiguresDir: DefaultFiguresDir,
			LogsDir:    DefaultLogsDir,
		},
		Analysis: AnalysisConfig{
			TopN:          DefaultTopN,
			HistogramBins: DefaultHistogramBins,
		},
		Benchmark: BenchmarkConfig{
			Enabled:    true,
			SortRuns:   DefaultSortRuns,
			SearchRuns: DefaultSearchRuns,
		},
		Output: OutputConfig{
			Charts:      true,
			Workbook:    true,
			MetricsFile: MetricsFileName,
		},
		Telemetry: TelemetryConfig{
			TraceExporter: "none",
			TraceFile:     TraceFileName,
			Metrics:       true,
		},
	}
}
