package config

import (
	"fmt"
	"log/slog"
	"os"
	"path/filepath"
	"strings"
)

// Paths contains all the application paths
// This is the single source of truth for every file the pipeline reads or writes
type Paths struct {
	BaseDir    string
	DataDir    string
	OutputDir  string
	FiguresDir string
	LogsDir    string

	// Input and cleaned data
	RawData   string
	CleanData string

	// Well-known report files
	TopCustomersCSV    string
	CategoryAverageCSV string
	SummaryReport      string
	Workbook           string
	MetricsFile        string
	TraceFile          string

	// Charts
	RevenueByCategoryChart string
	MonthlyTrendChart      string
	OrderValueHistogram    string
}

// NewPaths resolves the configured layout against BaseDir.
// Absolute entries are kept as they are.
func NewPaths(cfg PathsConfig) *Paths {
	base := cfg.BaseDir
	if base == "" {
		base = "."
	}
	resolve := func(p string) string {
		if p == "" || filepath.IsAbs(p) {
			return p
		}
		return filepath.Join(base, p)
	}

	outputDir := resolve(cfg.OutputDir)
	figuresDir := resolve(cfg.FiguresDir)
	cleanData := resolve(cfg.CleanData)

	return &Paths{
		BaseDir:    base,
		DataDir:    filepath.Dir(cleanData),
		OutputDir:  outputDir,
		FiguresDir: figuresDir,
		LogsDir:    resolve(cfg.LogsDir),

		RawData:   resolve(cfg.RawData),
		CleanData: cleanData,

		TopCustomersCSV:    filepath.Join(outputDir, TopCustomersFileName),
		CategoryAverageCSV: filepath.Join(outputDir, CategoryAverageFileName),
		SummaryReport:      filepath.Join(outputDir, SummaryReportFileName),
		Workbook:           filepath.Join(outputDir, WorkbookFileName),
		MetricsFile:        filepath.Join(outputDir, MetricsFileName),
		TraceFile:          filepath.Join(outputDir, TraceFileName),

		RevenueByCategoryChart: filepath.Join(figuresDir, RevenueByCategoryChart),
		MonthlyTrendChart:      filepath.Join(figuresDir, MonthlyRevenueChart),
		OrderValueHistogram:    filepath.Join(figuresDir, OrderDistributionChart),
	}
}

// EnsureDirectories creates all required directories if they don't exist
func (p *Paths) EnsureDirectories() error {
	directories := []string{
		p.DataDir,
		p.OutputDir,
		p.FiguresDir,
		p.LogsDir,
	}

	logger := slog.Default()

	for _, dir := range directories {
		if dir == "" {
			continue
		}
		if err := os.MkdirAll(dir, 0755); err != nil {
			return fmt.Errorf("failed to create directory %s: %w", dir, err)
		}
		logger.Debug("Ensured directory exists", slog.String("directory", dir))
	}

	return nil
}

// GetOutputPath returns the path for a file in the output directory
func (p *Paths) GetOutputPath(filename string) string {
	return filepath.Join(p.OutputDir, filename)
}

// resolveOutput places bare file names in the output directory
func (p *Paths) resolveOutput(name string) string {
	if filepath.IsAbs(name) || filepath.Dir(name) != "." {
		return name
	}
	return filepath.Join(p.OutputDir, name)
}

// GetFigurePath returns the path for a chart image
func (p *Paths) GetFigurePath(filename string) string {
	return filepath.Join(p.FiguresDir, filename)
}

// GetDataPath returns the path for a file in the data directory
func (p *Paths) GetDataPath(filename string) string {
	return filepath.Join(p.DataDir, filename)
}

// GetLogPath returns the path for a log file
func (p *Paths) GetLogPath(filename string) string {
	return filepath.Join(p.LogsDir, filename)
}

// FileExists checks if a file exists
func FileExists(path string) bool {
	_, err := os.Stat(path)
	return !os.IsNotExist(err)
}

// LogPathResolution logs the resolved layout for debugging
func (p *Paths) LogPathResolution(logger *slog.Logger) {
	if logger == nil {
		logger = slog.Default()
	}

	logger.Debug("Path resolution summary",
		slog.Group("directories",
			slog.String("base", p.BaseDir),
			slog.String("data", p.DataDir),
			slog.String("output", p.OutputDir),
			slog.String("figures", p.FiguresDir),
			slog.String("logs", p.LogsDir),
		),
		slog.Group("files",
			slog.String("raw_data", p.RawData),
			slog.String("clean_data", p.CleanData),
			slog.String("summary_report", p.SummaryReport),
			slog.String("workbook", p.Workbook),
		))
}

// ValidateRequiredFiles checks that the pipeline input exists
func (p *Paths) ValidateRequiredFiles() error {
	requiredFiles := map[string]string{
		"Raw data": p.RawData,
	}

	var missingFiles []string
	for name, path := range requiredFiles {
		if !FileExists(path) {
			missingFiles = append(missingFiles, fmt.Sprintf("%s (%s)", name, path))
		}
	}

	if len(missingFiles) > 0 {
		return fmt.Errorf("required files missing: %s", strings.Join(missingFiles, ", "))
	}

	return nil
}
