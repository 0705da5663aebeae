package exporter

import (
	"archive/zip"
	"bytes"
	"path/filepath"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/xuri/excelize/v2"

	"github.com/IhorStoiko/Projekt/internal/infrastructure"
)

func TestWorkbookExport(t *testing.T) {
	path := filepath.Join(t.TempDir(), "output", "sales_report.xlsx")
	exporter := NewWorkbookExporter(infrastructure.NewLogger(&bytes.Buffer{}, "info"))

	require.NoError(t, exporter.Export(path, sampleReportData()))

	f, err := excelize.OpenFile(path)
	require.NoError(t, err)
	defer f.Close()

	assert.Equal(t, []string{SheetMetrics, SheetCustomers, SheetProfiles, SheetCategories, SheetMonthly, SheetBenchmarks}, f.GetSheetList())

	metrics, err := f.GetRows(SheetMetrics)
	require.NoError(t, err)
	assert.Equal(t, []string{"metric", "value"}, metrics[0])
	assert.Equal(t, []string{"Total revenue", "1500.5"}, metrics[1])

	customers, err := f.GetRows(SheetCustomers)
	require.NoError(t, err)
	require.Len(t, customers, 3)
	assert.Equal(t, []string{"C2", "900"}, customers[1])

	profiles, err := f.GetRows(SheetProfiles)
	require.NoError(t, err)
	require.Len(t, profiles, 4)
	assert.Equal(t, []string{"customer_id", "orders", "lifetime_value", "profile"}, profiles[0])
	assert.Equal(t, []string{"C1", "2", "500.5", "C1 ($500.50)"}, profiles[2])

	categories, err := f.GetRows(SheetCategories)
	require.NoError(t, err)
	assert.Equal(t, []string{"product_category", "average_order_amount", "revenue"}, categories[0])
	assert.Equal(t, []string{"Toys", "433.5", "1300.5"}, categories[2])

	monthly, err := f.GetRows(SheetMonthly)
	require.NoError(t, err)
	assert.Equal(t, []string{"2024-02", "800.5"}, monthly[2])

	benchmarks, err := f.GetRows(SheetBenchmarks)
	require.NoError(t, err)
	require.Len(t, benchmarks, 4)
	assert.Equal(t, "Custom bubble sort", benchmarks[1][1])

	assertHasChart(t, path)
}

func TestWorkbookExportWithoutCategories(t *testing.T) {
	data := sampleReportData()
	data.Summary.CategoryRevenue = nil
	data.Summary.CategoryAverage = nil

	path := filepath.Join(t.TempDir(), "empty.xlsx")
	require.NoError(t, NewWorkbookExporter(nil).Export(path, data))

	f, err := excelize.OpenFile(path)
	require.NoError(t, err)
	defer f.Close()

	rows, err := f.GetRows(SheetCategories)
	require.NoError(t, err)
	assert.Len(t, rows, 1)
}

func TestRound2(t *testing.T) {
	assert.Equal(t, 66.67, round2(66.666666))
	assert.Equal(t, 0.13, round2(0.125))
	assert.Equal(t, -1.01, round2(-1.005))
}

// assertHasChart checks the package contains a chart part
func assertHasChart(t *testing.T, path string) {
	t.Helper()
	zr, err := zip.OpenReader(path)
	require.NoError(t, err)
	defer zr.Close()

	for _, file := range zr.File {
		if strings.HasPrefix(file.Name, "xl/charts/chart") {
			return
		}
	}
	t.Fatalf("no chart part found in %s", path)
}
