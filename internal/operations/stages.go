package operations

import (
	"context"
	"fmt"
	"log/slog"

	"github.com/IhorStoiko/Projekt/internal/benchmark"
	"github.com/IhorStoiko/Projekt/internal/charts"
	"github.com/IhorStoiko/Projekt/internal/config"
	"github.com/IhorStoiko/Projekt/internal/dataprocessing"
	"github.com/IhorStoiko/Projekt/internal/exporter"
	"github.com/IhorStoiko/Projekt/internal/infrastructure"
	"github.com/IhorStoiko/Projekt/internal/validation"
	"github.com/IhorStoiko/Projekt/pkg/contracts/domain"
)

// Services bundles the collaborators shared by the sales steps
type Services struct {
	Config  *config.Config
	Paths   *config.Paths
	Logger  *slog.Logger
	Metrics *infrastructure.PipelineMetrics
}

func (s *Services) component(name string) *slog.Logger {
	return infrastructure.WithComponent(s.Logger, name)
}

// NewSalesSteps builds the sales pipeline steps in execution order
func NewSalesSteps(svc *Services) []Step {
	figures := NewChartsStep(svc)
	figures.SetEnabled(svc.Config.Output.Charts)

	bench := NewBenchmarkStep(svc)
	bench.SetEnabled(svc.Config.Benchmark.Enabled)

	workbook := NewWorkbookStep(svc)
	workbook.SetEnabled(svc.Config.Output.Workbook)

	return []Step{
		NewLoadStep(svc),
		NewCleanStep(svc),
		NewExportCleanStep(svc),
		NewMetricsStep(svc),
		NewExportAggregatesStep(svc),
		figures,
		bench,
		NewReportStep(svc),
		workbook,
	}
}

// NewSalesManager creates a manager with every sales step registered
func NewSalesManager(cfg *config.Config, paths *config.Paths, logger *slog.Logger, providers *infrastructure.OTelProviders) (*Manager, error) {
	tracer, err := NewOperationTracer(providers)
	if err != nil {
		return nil, err
	}

	svc := &Services{
		Config:  cfg,
		Paths:   paths,
		Logger:  logger,
		Metrics: tracer.Metrics(),
	}

	manager := NewManager(NewRegistry(), tracer, logger)
	for _, step := range NewSalesSteps(svc) {
		if err := manager.RegisterStep(step); err != nil {
			return nil, err
		}
	}
	return manager, nil
}

// requireContext fails validation when a previous step's output is missing
func requireContext(state *OperationState, keys ...string) error {
	for _, key := range keys {
		if _, ok := state.GetContext(key); !ok {
			return fmt.Errorf("%s not available, run the producing step first", key)
		}
	}
	return nil
}

// LoadStep validates the file layout and reads the raw CSV
type LoadStep struct {
	BaseStep
	svc       *Services
	validator *validation.FileValidator
}

// NewLoadStep creates the load step
func NewLoadStep(svc *Services) *LoadStep {
	return &LoadStep{
		BaseStep:  NewBaseStep(StepIDLoad, StepNameLoad),
		svc:       svc,
		validator: validation.NewFileValidator(svc.component("validation")),
	}
}

// Execute reads the raw table into the run state
func (s *LoadStep) Execute(ctx context.Context, state *OperationState) error {
	if err := s.validator.ValidateLayout(s.svc.Paths); err != nil {
		return err
	}

	table, err := dataprocessing.LoadCSV(s.svc.Paths.RawData)
	if err != nil {
		return err
	}

	state.SetContext(ContextKeyTable, table)
	state.GetStep(s.ID()).SetMetadata("rows", table.Len())
	s.svc.Metrics.RecordRecords(ctx, "raw", table.Len())

	s.svc.Logger.InfoContext(ctx, "sales data loaded",
		slog.String("path", s.svc.Paths.RawData),
		slog.Int("rows", table.Len()),
		slog.Any("columns", table.Header))
	return nil
}

// CleanStep turns the raw table into orders
type CleanStep struct {
	BaseStep
	svc     *Services
	cleaner *dataprocessing.Cleaner
}

// NewCleanStep creates the clean step
func NewCleanStep(svc *Services) *CleanStep {
	return &CleanStep{
		BaseStep: NewBaseStep(StepIDClean, StepNameClean),
		svc:      svc,
		cleaner:  dataprocessing.NewCleaner(svc.component("cleaner")),
	}
}

// Validate requires the loaded table
func (s *CleanStep) Validate(state *OperationState) error {
	return requireContext(state, ContextKeyTable)
}

// Execute cleans the table and stores the orders and counts
func (s *CleanStep) Execute(ctx context.Context, state *OperationState) error {
	table, err := ContextValue[*dataprocessing.Table](state, ContextKeyTable)
	if err != nil {
		return err
	}

	orders, stats, err := s.cleaner.Clean(ctx, table)
	if err != nil {
		return err
	}

	state.SetContext(ContextKeyOrders, orders)
	state.SetContext(ContextKeyCleanStats, stats)

	stepState := state.GetStep(s.ID())
	stepState.SetMetadata("clean_rows", stats.CleanRows)
	stepState.SetMetadata("duplicates", stats.Duplicates)

	s.svc.Metrics.RecordRecords(ctx, "clean", stats.CleanRows)
	s.svc.Metrics.RecordRecords(ctx, "dropped", stats.Duplicates+stats.Invalid)
	s.svc.Metrics.RecordRecords(ctx, "undated", stats.Undated)
	return nil
}

// ExportCleanStep writes the cleaned table
type ExportCleanStep struct {
	BaseStep
	svc     *Services
	writer *exporter.CSVWriter
}

// NewExportCleanStep creates the export-clean step
func NewExportCleanStep(svc *Services) *ExportCleanStep {
	return &ExportCleanStep{
		BaseStep: NewBaseStep(StepIDExportClean, StepNameExportClean),
		svc:      svc,
		writer:   exporter.NewCSVWriter(svc.Paths, svc.component("exporter")),
	}
}

// Validate requires the cleaned orders
func (s *ExportCleanStep) Validate(state *OperationState) error {
	return requireContext(state, ContextKeyOrders)
}

// Execute writes the clean CSV
func (s *ExportCleanStep) Execute(ctx context.Context, state *OperationState) error {
	orders, err := ContextValue[[]domain.Order](state, ContextKeyOrders)
	if err != nil {
		return err
	}
	if err := ctx.Err(); err != nil {
		return err
	}
	return s.writer.WriteOrders(s.svc.Paths.CleanData, orders)
}

// MetricsStep computes the sales summary
type MetricsStep struct {
	BaseStep
	svc *Services
}

// NewMetricsStep creates the metrics step
func NewMetricsStep(svc *Services) *MetricsStep {
	return &MetricsStep{
		BaseStep: NewBaseStep(StepIDMetrics, StepNameMetrics),
		svc:      svc,
	}
}

// Validate requires the cleaned orders
func (s *MetricsStep) Validate(state *OperationState) error {
	return requireContext(state, ContextKeyOrders)
}

// Execute stores the summary in the run state
func (s *MetricsStep) Execute(ctx context.Context, state *OperationState) error {
	orders, err := ContextValue[[]domain.Order](state, ContextKeyOrders)
	if err != nil {
		return err
	}

	analyzer := dataprocessing.NewSalesAnalyzer(orders, s.svc.component("analyzer"))
	summary := analyzer.Summary(ctx, s.svc.Config.Analysis.TopN)

	state.SetContext(ContextKeySummary, summary)
	state.GetStep(s.ID()).SetMetadata("total_revenue", summary.Metrics.TotalRevenue)
	return nil
}

// ExportAggregatesStep writes the top customers and category average tables
type ExportAggregatesStep struct {
	BaseStep
	svc    *Services
	writer *exporter.CSVWriter
}

// NewExportAggregatesStep creates the export-aggregates step
func NewExportAggregatesStep(svc *Services) *ExportAggregatesStep {
	return &ExportAggregatesStep{
		BaseStep: NewBaseStep(StepIDExportAggregates, StepNameExportAggregates),
		svc:      svc,
		writer:   exporter.NewCSVWriter(svc.Paths, svc.component("exporter")),
	}
}

// Validate requires the summary
func (s *ExportAggregatesStep) Validate(state *OperationState) error {
	return requireContext(state, ContextKeySummary)
}

// Execute writes both aggregate tables
func (s *ExportAggregatesStep) Execute(ctx context.Context, state *OperationState) error {
	summary, err := ContextValue[domain.SalesSummary](state, ContextKeySummary)
	if err != nil {
		return err
	}
	return s.writer.WriteAggregates(summary)
}

// ChartsStep renders the PNG figures
type ChartsStep struct {
	BaseStep
	svc       *Services
	renderer  *charts.Renderer
	validator *validation.FileValidator
}

// NewChartsStep creates the charts step
func NewChartsStep(svc *Services) *ChartsStep {
	return &ChartsStep{
		BaseStep:  NewBaseStep(StepIDCharts, StepNameCharts),
		svc:       svc,
		renderer:  charts.NewRenderer(svc.component("charts"), svc.Config.Analysis.HistogramBins),
		validator: validation.NewFileValidator(svc.component("validation")),
	}
}

// Validate requires the summary and the orders
func (s *ChartsStep) Validate(state *OperationState) error {
	return requireContext(state, ContextKeySummary, ContextKeyOrders)
}

// Execute draws the figures and records what was written
func (s *ChartsStep) Execute(ctx context.Context, state *OperationState) error {
	summary, err := ContextValue[domain.SalesSummary](state, ContextKeySummary)
	if err != nil {
		return err
	}
	orders, err := ContextValue[[]domain.Order](state, ContextKeyOrders)
	if err != nil {
		return err
	}

	written, err := s.renderer.RenderAll(summary, dataprocessing.Amounts(orders), s.svc.Paths)
	if err != nil {
		return err
	}
	state.SetContext(ContextKeyFigures, written)

	count, err := s.validator.CountFiles(s.svc.Paths.FiguresDir, "*.png")
	if err != nil {
		return err
	}
	state.GetStep(s.ID()).SetMetadata("figures", count)
	return nil
}

// BenchmarkStep times the custom algorithms on the order amounts
type BenchmarkStep struct {
	BaseStep
	svc *Services
}

// NewBenchmarkStep creates the benchmark step
func NewBenchmarkStep(svc *Services) *BenchmarkStep {
	return &BenchmarkStep{
		BaseStep: NewBaseStep(StepIDBenchmark, StepNameBenchmark),
		svc:      svc,
	}
}

// Validate requires the cleaned orders
func (s *BenchmarkStep) Validate(state *OperationState) error {
	return requireContext(state, ContextKeyOrders)
}

// Execute runs the sort and search comparison
func (s *BenchmarkStep) Execute(ctx context.Context, state *OperationState) error {
	orders, err := ContextValue[[]domain.Order](state, ContextKeyOrders)
	if err != nil {
		return err
	}

	suite := benchmark.NewSuite(s.svc.Logger, s.svc.Metrics, benchmark.Options{
		SortRuns:   s.svc.Config.Benchmark.SortRuns,
		SearchRuns: s.svc.Config.Benchmark.SearchRuns,
	})
	results := suite.Run(ctx, dataprocessing.Amounts(orders))

	state.SetContext(ContextKeyBenchmarks, results)
	state.GetStep(s.ID()).SetMetadata("results", len(results))
	return nil
}

// reportData gathers what the report and workbook render. Benchmarks and
// clean counts are optional.
func reportData(state *OperationState, topN int) (exporter.ReportData, error) {
	summary, err := ContextValue[domain.SalesSummary](state, ContextKeySummary)
	if err != nil {
		return exporter.ReportData{}, err
	}

	data := exporter.ReportData{Summary: summary, TopN: topN}
	if results, err := ContextValue[benchmark.Results](state, ContextKeyBenchmarks); err == nil {
		data.Benchmarks = results
	}
	if stats, err := ContextValue[domain.CleanStats](state, ContextKeyCleanStats); err == nil {
		data.Quality = &stats
	}
	return data, nil
}

// ReportStep writes the plain-text summary report
type ReportStep struct {
	BaseStep
	svc    *Services
	report *exporter.SummaryReport
}

// NewReportStep creates the report step
func NewReportStep(svc *Services) *ReportStep {
	return &ReportStep{
		BaseStep: NewBaseStep(StepIDReport, StepNameReport),
		svc:      svc,
		report:   exporter.NewSummaryReport(svc.component("report")),
	}
}

// Validate requires the summary
func (s *ReportStep) Validate(state *OperationState) error {
	return requireContext(state, ContextKeySummary)
}

// Execute writes summary_report.txt
func (s *ReportStep) Execute(ctx context.Context, state *OperationState) error {
	data, err := reportData(state, s.svc.Config.Analysis.TopN)
	if err != nil {
		return err
	}
	return s.report.Write(s.svc.Paths.SummaryReport, data)
}

// WorkbookStep writes the Excel workbook
type WorkbookStep struct {
	BaseStep
	svc      *Services
	workbook *exporter.WorkbookExporter
}

// NewWorkbookStep creates the workbook step
func NewWorkbookStep(svc *Services) *WorkbookStep {
	return &WorkbookStep{
		BaseStep: NewBaseStep(StepIDWorkbook, StepNameWorkbook),
		svc:      svc,
		workbook: exporter.NewWorkbookExporter(svc.component("workbook")),
	}
}

// Validate requires the summary
func (s *WorkbookStep) Validate(state *OperationState) error {
	return requireContext(state, ContextKeySummary)
}

// Execute writes sales_report.xlsx
func (s *WorkbookStep) Execute(ctx context.Context, state *OperationState) error {
	data, err := reportData(state, s.svc.Config.Analysis.TopN)
	if err != nil {
		return err
	}
	return s.workbook.Export(s.svc.Paths.Workbook, data)
}
