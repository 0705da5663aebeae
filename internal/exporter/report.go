package exporter

import (
	"bytes"
	"fmt"
	"io"
	"log/slog"
	"os"
	"path/filepath"
	"text/tabwriter"

	"github.com/IhorStoiko/Projekt/internal/benchmark"
	"github.com/IhorStoiko/Projekt/internal/errors"
	"github.com/IhorStoiko/Projekt/pkg/contracts/domain"
)

// ReportData is everything the summary report renders
type ReportData struct {
	Summary    domain.SalesSummary
	Quality    *domain.CleanStats
	Benchmarks benchmark.Results
	TopN       int
}

// SummaryReport writes the plain-text summary report
type SummaryReport struct {
	logger *slog.Logger
}

// NewSummaryReport creates a summary report writer
func NewSummaryReport(logger *slog.Logger) *SummaryReport {
	if logger == nil {
		logger = slog.Default()
	}
	return &SummaryReport{logger: logger}
}

// Write renders the report into path, replacing any previous file
func (r *SummaryReport) Write(path string, data ReportData) error {
	var buf bytes.Buffer
	if err := r.Render(&buf, data); err != nil {
		return err
	}

	if err := os.MkdirAll(filepath.Dir(path), 0755); err != nil {
		return errors.NewStorageError("failed to create report directory", err).WithContext("path", path)
	}
	if err := os.WriteFile(path, buf.Bytes(), 0644); err != nil {
		return errors.NewStorageError("failed to write summary report", err).WithContext("path", path)
	}

	r.logger.Info("Summary report written",
		slog.String("path", path),
		slog.Int("bytes", buf.Len()))
	return nil
}

// Render writes the report text to w
func (r *SummaryReport) Render(w io.Writer, data ReportData) error {
	m := data.Summary.Metrics
	ew := &errWriter{w: w}

	ew.printf("Key Metrics:\n")
	ew.printf("Total revenue: %s\n", FormatCurrency(m.TotalRevenue))
	ew.printf("Average order value: %s\n", FormatCurrency(m.AverageOrderValue))
	ew.printf("Median order value: %s\n", FormatCurrency(m.MedianOrderValue))
	ew.printf("Number of orders: %d\n", m.OrderCount)
	ew.printf("Number of customers: %d\n", m.CustomerCount)
	ew.printf("Repeat customer rate: %s\n", FormatPercent(m.RepeatCustomerRate))
	ew.printf("Cancellation rate: %s\n\n", FormatPercent(m.CancellationRate))

	topN := data.TopN
	if topN <= 0 {
		topN = len(data.Summary.TopCustomers)
	}
	ew.printf("Top %d customers by order amount:\n", topN)
	rows := make([][]string, 0, len(data.Summary.TopCustomers))
	for _, c := range data.Summary.TopCustomers {
		rows = append(rows, []string{c.CustomerID, formatFloat(c.Revenue)})
	}
	ew.table([]string{"customer_id", "order_amount"}, rows)

	if profiles := data.Summary.Customers; len(profiles) > 0 {
		if data.TopN > 0 && len(profiles) > data.TopN {
			profiles = profiles[:data.TopN]
		}
		ew.printf("\nCustomer lifetime value:\n")
		rows = rows[:0]
		for _, c := range profiles {
			rows = append(rows, []string{c.String(), fmt.Sprintf("%d", c.OrderCount)})
		}
		ew.table([]string{"customer", "orders"}, rows)
	}

	ew.printf("\nAverage order value by product category:\n")
	rows = rows[:0]
	for _, c := range data.Summary.CategoryAverage {
		rows = append(rows, []string{c.Category, formatFloat(c.AverageAmount)})
	}
	ew.table([]string{"product_category", "order_amount"}, rows)

	if q := data.Quality; q != nil {
		ew.printf("\nData quality:\n")
		ew.printf("Rows loaded: %d\n", q.RawRows)
		ew.printf("Duplicates removed: %d\n", q.Duplicates)
		ew.printf("Invalid rows dropped: %d\n", q.Invalid)
		ew.printf("Rows without a valid date: %d\n", q.Undated)
		ew.printf("Statuses defaulted to pending: %d\n", q.DefaultedStatus)
		ew.printf("Rows after cleaning: %d\n", q.CleanRows)
	}

	if sorting := data.Benchmarks.Sorting(); len(sorting) > 0 {
		ew.printf("\nSorting performance (seconds):\n")
		for _, res := range sorting {
			ew.printf("%s: %s\n", res.Label, FormatSeconds(res.Seconds))
		}
	}

	if search := data.Benchmarks.Search(); len(search) > 0 {
		ew.printf("\nSearch performance (seconds, %d runs):\n", data.Benchmarks.SearchRuns())
		for _, res := range search {
			ew.printf("%s: %s\n", res.Label, FormatSeconds(res.Seconds))
		}
	}

	if ew.err != nil {
		return errors.NewStorageError("failed to render summary report", ew.err)
	}
	return nil
}

// errWriter keeps the first write error so rendering reads straight through
type errWriter struct {
	w   io.Writer
	err error
}

func (e *errWriter) printf(format string, args ...any) {
	if e.err != nil {
		return
	}
	_, e.err = fmt.Fprintf(e.w, format, args...)
}

// table writes an aligned two-column block
func (e *errWriter) table(headers []string, rows [][]string) {
	if e.err != nil {
		return
	}
	tw := tabwriter.NewWriter(e.w, 0, 0, 4, ' ', 0)
	fmt.Fprintf(tw, "%s\t%s\n", headers[0], headers[1])
	for _, row := range rows {
		fmt.Fprintf(tw, "%s\t%s\n", row[0], row[1])
	}
	e.err = tw.Flush()
}
