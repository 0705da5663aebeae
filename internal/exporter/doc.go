// Package exporter writes the sales analysis to disk.
//
// This package contains three main components:
//
// CSVWriter: Core CSV writing, whole-file or streamed. Bare file names land
// in the output directory. WriteOrders streams the cleaned orders table.
//
// SummaryReport: The plain-text report with key metrics, the top customers,
// customer lifetime value and category tables, data quality counts and
// benchmark timings.
//
// WorkbookExporter: An .xlsx workbook with one sheet per section, including
// every customer profile, and a native column chart of revenue by category.
//
// Example usage:
//
//	writer := exporter.NewCSVWriter(paths, logger)
//	err := writer.WriteSimpleCSV("top_customers.csv", []string{"customer_id", "order_amount"}, rows)
//
//	report := exporter.NewSummaryReport(logger)
//	err = report.Write(paths.SummaryReport, exporter.ReportData{Summary: summary, Benchmarks: results})
package exporter
