package exporter

import (
	"bytes"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/IhorStoiko/Projekt/internal/benchmark"
	"github.com/IhorStoiko/Projekt/internal/infrastructure"
	"github.com/IhorStoiko/Projekt/pkg/contracts/domain"
)

func sampleReportData() ReportData {
	return ReportData{
		Summary: domain.SalesSummary{
			Metrics: domain.KeyMetrics{
				TotalRevenue:       1500.5,
				AverageOrderValue:  300.1,
				MedianOrderValue:   250,
				CustomerCount:      3,
				OrderCount:         5,
				RepeatCustomerRate: 66.666666,
				CancellationRate:   20,
			},
			TopCustomers: []domain.CustomerTotal{
				{CustomerID: "C2", Revenue: 900},
				{CustomerID: "C1", Revenue: 500.5},
			},
			Customers: []domain.Customer{
				{ID: "C2", LifetimeValue: 900, OrderCount: 2},
				{ID: "C1", LifetimeValue: 500.5, OrderCount: 2},
				{ID: "C3", LifetimeValue: 100, OrderCount: 1},
			},
			CategoryAverage: []domain.CategoryAverage{
				{Category: "Books", AverageAmount: 100},
				{Category: "Toys", AverageAmount: 433.5},
			},
			CategoryRevenue: []domain.CategoryRevenue{
				{Category: "Books", Revenue: 200},
				{Category: "Toys", Revenue: 1300.5},
			},
			MonthlyRevenue: []domain.MonthlyRevenue{
				{Month: "2024-01", Revenue: 700},
				{Month: "2024-02", Revenue: 800.5},
			},
		},
		Quality: &domain.CleanStats{RawRows: 6, Duplicates: 1, Undated: 1, DefaultedStatus: 2, CleanRows: 5},
		Benchmarks: benchmark.Results{
			{Group: benchmark.GroupSorting, Name: benchmark.BubbleSort, Label: "Custom bubble sort", Runs: 1, Seconds: 0.0012346},
			{Group: benchmark.GroupSorting, Name: benchmark.SlicesSort, Label: "Go slices.Sort", Runs: 1, Seconds: 0.000002},
			{Group: benchmark.GroupSearch, Name: benchmark.LinearSearch, Label: "Custom linear search", Runs: 1000, Seconds: 0.01},
		},
		TopN: 10,
	}
}

func TestSummaryReportRender(t *testing.T) {
	var buf bytes.Buffer
	report := NewSummaryReport(infrastructure.NewLogger(&bytes.Buffer{}, "info"))

	require.NoError(t, report.Render(&buf, sampleReportData()))
	text := buf.String()

	assert.True(t, strings.HasPrefix(text, "Key Metrics:\n"))
	for _, line := range []string{
		"Total revenue: $1500.50\n",
		"Average order value: $300.10\n",
		"Median order value: $250.00\n",
		"Number of orders: 5\n",
		"Number of customers: 3\n",
		"Repeat customer rate: 66.67%\n",
		"Cancellation rate: 20.00%\n",
		"Top 10 customers by order amount:\n",
		"customer_id    order_amount\n",
		"C2             900.00\n",
		"Customer lifetime value:\n",
		"customer        orders\n",
		"C2 ($900.00)    2\n",
		"C1 ($500.50)    2\n",
		"C3 ($100.00)    1\n",
		"Average order value by product category:\n",
		"product_category    order_amount\n",
		"Toys                433.50\n",
		"Rows loaded: 6\n",
		"Duplicates removed: 1\n",
		"Sorting performance (seconds):\nCustom bubble sort: 0.001235\nGo slices.Sort: 0.000002\n",
		"Search performance (seconds, 1000 runs):\nCustom linear search: 0.010000\n",
	} {
		assert.Contains(t, text, line)
	}

	// sections appear in order
	assert.Less(t, strings.Index(text, "Top 10"), strings.Index(text, "Customer lifetime value"))
	assert.Less(t, strings.Index(text, "Customer lifetime value"), strings.Index(text, "Average order value by"))
	assert.Less(t, strings.Index(text, "Average order value by"), strings.Index(text, "Sorting performance"))
	assert.Less(t, strings.Index(text, "Sorting performance"), strings.Index(text, "Search performance"))
}

func TestSummaryReportWithoutBenchmarks(t *testing.T) {
	data := sampleReportData()
	data.Benchmarks = nil
	data.Quality = nil
	data.TopN = 0

	var buf bytes.Buffer
	require.NoError(t, NewSummaryReport(nil).Render(&buf, data))

	text := buf.String()
	assert.Contains(t, text, "Top 2 customers by order amount:")
	assert.NotContains(t, text, "Sorting performance")
	assert.NotContains(t, text, "Search performance")
	assert.NotContains(t, text, "Data quality")
}

func TestSummaryReportLimitsCustomerProfiles(t *testing.T) {
	data := sampleReportData()
	data.TopN = 1

	var buf bytes.Buffer
	require.NoError(t, NewSummaryReport(nil).Render(&buf, data))

	text := buf.String()
	assert.Contains(t, text, "C2 ($900.00)    2\n")
	assert.NotContains(t, text, "C1 ($500.50)")
	assert.NotContains(t, text, "C3 ($100.00)")
}

func TestSummaryReportWithoutCustomerProfiles(t *testing.T) {
	data := sampleReportData()
	data.Summary.Customers = nil

	var buf bytes.Buffer
	require.NoError(t, NewSummaryReport(nil).Render(&buf, data))
	assert.NotContains(t, buf.String(), "Customer lifetime value")
}

func TestSummaryReportWrite(t *testing.T) {
	path := filepath.Join(t.TempDir(), "output", "summary_report.txt")
	report := NewSummaryReport(infrastructure.NewLogger(&bytes.Buffer{}, "info"))

	require.NoError(t, report.Write(path, sampleReportData()))

	content, err := os.ReadFile(path)
	require.NoError(t, err)
	assert.Contains(t, string(content), "Key Metrics:")
}

type failingWriter struct{}

func (failingWriter) Write([]byte) (int, error) { return 0, os.ErrClosed }

func TestSummaryReportRenderError(t *testing.T) {
	err := NewSummaryReport(nil).Render(failingWriter{}, sampleReportData())
	require.Error(t, err)
	assert.ErrorIs(t, err, os.ErrClosed)
}
