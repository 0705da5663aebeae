package exporter

import (
	"log/slog"

	"github.com/IhorStoiko/Projekt/pkg/contracts/domain"
)

// Aggregate table headers
var (
	TopCustomersHeaders    = []string{"customer_id", "order_amount"}
	CategoryAverageHeaders = []string{"product_category", "order_amount"}
)

// TopCustomerRecords converts the top customers into CSV rows
func TopCustomerRecords(totals []domain.CustomerTotal) [][]string {
	records := make([][]string, 0, len(totals))
	for _, c := range totals {
		records = append(records, []string{c.CustomerID, formatFloat(c.Revenue)})
	}
	return records
}

// CategoryAverageRecords converts the category averages into CSV rows
func CategoryAverageRecords(averages []domain.CategoryAverage) [][]string {
	records := make([][]string, 0, len(averages))
	for _, c := range averages {
		records = append(records, []string{c.Category, formatFloat(c.AverageAmount)})
	}
	return records
}

// WriteAggregates writes the top customers and category average tables to
// their well-known files
func (w *CSVWriter) WriteAggregates(summary domain.SalesSummary) error {
	if err := w.WriteSimpleCSV(w.paths.TopCustomersCSV, TopCustomersHeaders, TopCustomerRecords(summary.TopCustomers)); err != nil {
		return err
	}
	if err := w.WriteSimpleCSV(w.paths.CategoryAverageCSV, CategoryAverageHeaders, CategoryAverageRecords(summary.CategoryAverage)); err != nil {
		return err
	}

	w.logger.Info("Aggregate tables written",
		slog.String("top_customers", w.paths.TopCustomersCSV),
		slog.Int("customers", len(summary.TopCustomers)),
		slog.String("category_average", w.paths.CategoryAverageCSV),
		slog.Int("categories", len(summary.CategoryAverage)))
	return nil
}
