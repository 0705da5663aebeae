package exporter

import (
	"fmt"
	"log/slog"
	"os"
	"path/filepath"

	"github.com/shopspring/decimal"
	"github.com/xuri/excelize/v2"

	"github.com/IhorStoiko/Projekt/internal/errors"
	"github.com/IhorStoiko/Projekt/pkg/contracts/domain"
)

// Workbook sheet names
const (
	SheetMetrics    = "Metrics"
	SheetCustomers  = "TopCustomers"
	SheetProfiles   = "Customers"
	SheetCategories = "Categories"
	SheetMonthly    = "Monthly"
	SheetBenchmarks = "Benchmarks"
)

// WorkbookExporter writes the analysis into an .xlsx workbook
type WorkbookExporter struct {
	logger *slog.Logger
}

// NewWorkbookExporter creates a workbook exporter
func NewWorkbookExporter(logger *slog.Logger) *WorkbookExporter {
	if logger == nil {
		logger = slog.Default()
	}
	return &WorkbookExporter{logger: logger}
}

// Export writes one sheet per section plus a column chart of category revenue
func (e *WorkbookExporter) Export(path string, data ReportData) error {
	f := excelize.NewFile()
	defer f.Close()

	if err := f.SetSheetName("Sheet1", SheetMetrics); err != nil {
		return errors.NewStorageError("failed to name metrics sheet", err)
	}
	for _, name := range []string{SheetCustomers, SheetProfiles, SheetCategories, SheetMonthly, SheetBenchmarks} {
		if _, err := f.NewSheet(name); err != nil {
			return errors.NewStorageError("failed to create sheet", err).WithContext("sheet", name)
		}
	}

	headerStyle, err := f.NewStyle(&excelize.Style{Font: &excelize.Font{Bold: true}})
	if err != nil {
		return errors.NewStorageError("failed to create header style", err)
	}

	steps := []func(*excelize.File, ReportData, int) error{
		writeMetricsSheet,
		writeCustomersSheet,
		writeProfilesSheet,
		writeCategoriesSheet,
		writeMonthlySheet,
		writeBenchmarksSheet,
	}
	for _, step := range steps {
		if err := step(f, data, headerStyle); err != nil {
			return err
		}
	}

	if len(data.Summary.CategoryRevenue) > 0 {
		if err := addCategoryChart(f, len(data.Summary.CategoryRevenue)); err != nil {
			return errors.NewRenderError("failed to add category chart", err)
		}
	}

	if err := os.MkdirAll(filepath.Dir(path), 0755); err != nil {
		return errors.NewStorageError("failed to create workbook directory", err).WithContext("path", path)
	}
	if err := f.SaveAs(path); err != nil {
		return errors.NewStorageError("failed to save workbook", err).WithContext("path", path)
	}

	e.logger.Info("Workbook written",
		slog.String("path", path),
		slog.Int("categories", len(data.Summary.CategoryRevenue)),
		slog.Int("benchmarks", len(data.Benchmarks)))
	return nil
}

// writeRows writes a header row and data rows starting at A1
func writeRows(f *excelize.File, sheet string, headerStyle int, headers []interface{}, rows [][]interface{}) error {
	if err := f.SetSheetRow(sheet, "A1", &headers); err != nil {
		return errors.NewStorageError("failed to write header row", err).WithContext("sheet", sheet)
	}
	last, _ := excelize.CoordinatesToCellName(len(headers), 1)
	if err := f.SetCellStyle(sheet, "A1", last, headerStyle); err != nil {
		return errors.NewStorageError("failed to style header row", err).WithContext("sheet", sheet)
	}

	for i := range rows {
		cell, err := excelize.CoordinatesToCellName(1, i+2)
		if err != nil {
			return errors.NewStorageError("invalid cell reference", err)
		}
		if err := f.SetSheetRow(sheet, cell, &rows[i]); err != nil {
			return errors.NewStorageError("failed to write row", err).WithContext("sheet", sheet).WithContext("row", i+2)
		}
	}

	lastCol, _ := excelize.ColumnNumberToName(len(headers))
	if err := f.SetColWidth(sheet, "A", lastCol, 24); err != nil {
		return errors.NewStorageError("failed to set column width", err).WithContext("sheet", sheet)
	}
	return nil
}

func writeMetricsSheet(f *excelize.File, data ReportData, style int) error {
	m := data.Summary.Metrics
	rows := [][]interface{}{
		{"Total revenue", round2(m.TotalRevenue)},
		{"Average order value", round2(m.AverageOrderValue)},
		{"Median order value", round2(m.MedianOrderValue)},
		{"Number of orders", m.OrderCount},
		{"Number of customers", m.CustomerCount},
		{"Repeat customer rate (%)", round2(m.RepeatCustomerRate)},
		{"Cancellation rate (%)", round2(m.CancellationRate)},
	}
	if q := data.Quality; q != nil {
		rows = append(rows,
			[]interface{}{"Rows loaded", q.RawRows},
			[]interface{}{"Duplicates removed", q.Duplicates},
			[]interface{}{"Rows after cleaning", q.CleanRows},
		)
	}
	return writeRows(f, SheetMetrics, style, []interface{}{"metric", "value"}, rows)
}

func writeCustomersSheet(f *excelize.File, data ReportData, style int) error {
	rows := make([][]interface{}, 0, len(data.Summary.TopCustomers))
	for _, c := range data.Summary.TopCustomers {
		rows = append(rows, []interface{}{c.CustomerID, round2(c.Revenue)})
	}
	return writeRows(f, SheetCustomers, style, []interface{}{"customer_id", "order_amount"}, rows)
}

// writeProfilesSheet lists every customer, highest lifetime value first
func writeProfilesSheet(f *excelize.File, data ReportData, style int) error {
	rows := make([][]interface{}, 0, len(data.Summary.Customers))
	for _, c := range data.Summary.Customers {
		rows = append(rows, []interface{}{c.ID, c.OrderCount, round2(c.LifetimeValue), c.String()})
	}
	return writeRows(f, SheetProfiles, style, []interface{}{"customer_id", "orders", "lifetime_value", "profile"}, rows)
}

// writeCategoriesSheet joins averages and revenue on category; column C feeds the chart
func writeCategoriesSheet(f *excelize.File, data ReportData, style int) error {
	averages := make(map[string]float64, len(data.Summary.CategoryAverage))
	for _, c := range data.Summary.CategoryAverage {
		averages[c.Category] = c.AverageAmount
	}

	rows := make([][]interface{}, 0, len(data.Summary.CategoryRevenue))
	for _, c := range data.Summary.CategoryRevenue {
		rows = append(rows, []interface{}{c.Category, round2(averages[c.Category]), round2(c.Revenue)})
	}
	return writeRows(f, SheetCategories, style, []interface{}{"product_category", "average_order_amount", "revenue"}, rows)
}

func writeMonthlySheet(f *excelize.File, data ReportData, style int) error {
	rows := make([][]interface{}, 0, len(data.Summary.MonthlyRevenue))
	for _, m := range data.Summary.MonthlyRevenue {
		rows = append(rows, []interface{}{m.Month, round2(m.Revenue)})
	}
	return writeRows(f, SheetMonthly, style, []interface{}{"month", "revenue"}, rows)
}

func writeBenchmarksSheet(f *excelize.File, data ReportData, style int) error {
	rows := make([][]interface{}, 0, len(data.Benchmarks))
	for _, r := range data.Benchmarks {
		rows = append(rows, []interface{}{r.Group, r.Label, r.Runs, r.Seconds})
	}
	return writeRows(f, SheetBenchmarks, style, []interface{}{"group", "algorithm", "runs", "seconds"}, rows)
}

func addCategoryChart(f *excelize.File, n int) error {
	categories := fmt.Sprintf("%s!$A$2:$A$%d", SheetCategories, n+1)
	values := fmt.Sprintf("%s!$C$2:$C$%d", SheetCategories, n+1)

	return f.AddChart(SheetCategories, "E2", &excelize.Chart{
		Type: excelize.Col,
		Series: []excelize.ChartSeries{
			{
				Name:       fmt.Sprintf("%s!$C$1", SheetCategories),
				Categories: categories,
				Values:     values,
			},
		},
		Title:  []excelize.RichTextRun{{Text: "Revenue by Category"}},
		Legend: excelize.ChartLegend{Position: "none"},
	})
}

// round2 rounds half away from zero to cents
func round2(v float64) float64 {
	return decimal.NewFromFloat(v).Round(2).InexactFloat64()
}
