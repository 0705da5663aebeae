package dataprocessing

import (
	"context"
	"log/slog"
	"sort"

	"github.com/montanaflynn/stats"

	"github.com/IhorStoiko/Projekt/pkg/contracts/domain"
)

// SalesAnalyzer computes business metrics over cleaned orders.
// Every method is a pure function of the orders it was created with.
type SalesAnalyzer struct {
	orders []domain.Order
	logger *slog.Logger
}

// NewSalesAnalyzer creates an analyzer over orders
func NewSalesAnalyzer(orders []domain.Order, logger *slog.Logger) *SalesAnalyzer {
	if logger == nil {
		logger = slog.Default()
	}
	return &SalesAnalyzer{orders: orders, logger: logger}
}

// Orders returns the analyzed orders
func (a *SalesAnalyzer) Orders() []domain.Order {
	return a.orders
}

// sum and mean treat empty input as zero
func sum(values []float64) float64 {
	s, err := stats.Sum(values)
	if err != nil {
		return 0
	}
	return s
}

func mean(values []float64) float64 {
	m, err := stats.Mean(values)
	if err != nil {
		return 0
	}
	return m
}

// TotalRevenue sums every order amount
func (a *SalesAnalyzer) TotalRevenue() float64 {
	return sum(Amounts(a.orders))
}

// AverageOrderValue is the mean order amount, 0 without orders
func (a *SalesAnalyzer) AverageOrderValue() float64 {
	return mean(Amounts(a.orders))
}

// MedianOrderValue is the median order amount, 0 without orders
func (a *SalesAnalyzer) MedianOrderValue() float64 {
	m, err := stats.Median(Amounts(a.orders))
	if err != nil {
		return 0
	}
	return m
}

// orderCounts returns the number of orders per customer. Orders without a
// customer id belong to no customer.
func (a *SalesAnalyzer) orderCounts() map[string]int {
	counts := make(map[string]int)
	for _, o := range a.orders {
		if o.CustomerID == "" {
			continue
		}
		counts[o.CustomerID]++
	}
	return counts
}

// CustomerCount is the number of distinct customers
func (a *SalesAnalyzer) CustomerCount() int {
	return len(a.orderCounts())
}

// RepeatCustomerRate is the percentage of customers with more than one order
func (a *SalesAnalyzer) RepeatCustomerRate() float64 {
	counts := a.orderCounts()
	if len(counts) == 0 {
		return 0
	}
	repeat := 0
	for _, n := range counts {
		if n > 1 {
			repeat++
		}
	}
	return float64(repeat) / float64(len(counts)) * 100
}

// CancellationRate is the percentage of orders with status cancelled
func (a *SalesAnalyzer) CancellationRate() float64 {
	if len(a.orders) == 0 {
		return 0
	}
	cancelled := 0
	for _, o := range a.orders {
		if o.IsCancelled() {
			cancelled++
		}
	}
	return float64(cancelled) / float64(len(a.orders)) * 100
}

// groupAmounts collects amounts per key, skipping empty keys
func (a *SalesAnalyzer) groupAmounts(key func(domain.Order) string) (map[string][]float64, []string) {
	groups := make(map[string][]float64)
	for _, o := range a.orders {
		k := key(o)
		if k == "" {
			continue
		}
		groups[k] = append(groups[k], o.Amount)
	}
	keys := make([]string, 0, len(groups))
	for k := range groups {
		keys = append(keys, k)
	}
	sort.Strings(keys)
	return groups, keys
}

// TopCustomers returns the n customers with the highest revenue, ties broken
// by ascending customer id. n <= 0 yields an empty list.
func (a *SalesAnalyzer) TopCustomers(n int) []domain.CustomerTotal {
	if n <= 0 {
		return []domain.CustomerTotal{}
	}
	groups, keys := a.groupAmounts(func(o domain.Order) string { return o.CustomerID })

	totals := make([]domain.CustomerTotal, 0, len(keys))
	for _, id := range keys {
		totals = append(totals, domain.CustomerTotal{CustomerID: id, Revenue: sum(groups[id])})
	}
	sort.SliceStable(totals, func(i, j int) bool {
		return totals[i].Revenue > totals[j].Revenue
	})

	if len(totals) > n {
		totals = totals[:n]
	}
	return totals
}

// AverageOrderByCategory returns the mean amount per category, sorted by category
func (a *SalesAnalyzer) AverageOrderByCategory() []domain.CategoryAverage {
	groups, keys := a.groupAmounts(func(o domain.Order) string { return o.ProductCategory })

	out := make([]domain.CategoryAverage, 0, len(keys))
	for _, k := range keys {
		out = append(out, domain.CategoryAverage{Category: k, AverageAmount: mean(groups[k])})
	}
	return out
}

// RevenueByCategory returns the summed amount per category, sorted by category
func (a *SalesAnalyzer) RevenueByCategory() []domain.CategoryRevenue {
	groups, keys := a.groupAmounts(func(o domain.Order) string { return o.ProductCategory })

	out := make([]domain.CategoryRevenue, 0, len(keys))
	for _, k := range keys {
		out = append(out, domain.CategoryRevenue{Category: k, Revenue: sum(groups[k])})
	}
	return out
}

// MonthlyRevenue returns revenue per calendar month in ascending order.
// Undated orders are left out.
func (a *SalesAnalyzer) MonthlyRevenue() []domain.MonthlyRevenue {
	groups, keys := a.groupAmounts(domain.Order.Month)

	out := make([]domain.MonthlyRevenue, 0, len(keys))
	for _, k := range keys {
		out = append(out, domain.MonthlyRevenue{Month: k, Revenue: sum(groups[k])})
	}
	return out
}

// CustomerProfiles returns every customer with lifetime value and order
// count, highest value first
func (a *SalesAnalyzer) CustomerProfiles() []domain.Customer {
	groups, keys := a.groupAmounts(func(o domain.Order) string { return o.CustomerID })

	out := make([]domain.Customer, 0, len(keys))
	for _, id := range keys {
		out = append(out, domain.Customer{
			ID:            id,
			LifetimeValue: sum(groups[id]),
			OrderCount:    len(groups[id]),
		})
	}
	sort.SliceStable(out, func(i, j int) bool {
		return out[i].LifetimeValue > out[j].LifetimeValue
	})
	return out
}

// KeyMetrics bundles the headline numbers
func (a *SalesAnalyzer) KeyMetrics() domain.KeyMetrics {
	return domain.KeyMetrics{
		TotalRevenue:       a.TotalRevenue(),
		AverageOrderValue:  a.AverageOrderValue(),
		MedianOrderValue:   a.MedianOrderValue(),
		CustomerCount:      a.CustomerCount(),
		OrderCount:         len(a.orders),
		RepeatCustomerRate: a.RepeatCustomerRate(),
		CancellationRate:   a.CancellationRate(),
	}
}

// Summary computes the full analysis handed to the exporters
func (a *SalesAnalyzer) Summary(ctx context.Context, topN int) domain.SalesSummary {
	summary := domain.SalesSummary{
		Metrics:         a.KeyMetrics(),
		TopCustomers:    a.TopCustomers(topN),
		CategoryAverage: a.AverageOrderByCategory(),
		CategoryRevenue: a.RevenueByCategory(),
		MonthlyRevenue:  a.MonthlyRevenue(),
		Customers:       a.CustomerProfiles(),
	}

	a.logger.InfoContext(ctx, "sales metrics computed",
		slog.Float64("total_revenue", summary.Metrics.TotalRevenue),
		slog.Float64("average_order_value", summary.Metrics.AverageOrderValue),
		slog.Int("customers", summary.Metrics.CustomerCount),
		slog.Int("orders", summary.Metrics.OrderCount),
		slog.Float64("repeat_customer_rate", summary.Metrics.RepeatCustomerRate),
		slog.Float64("cancellation_rate", summary.Metrics.CancellationRate),
		slog.Int("categories", len(summary.CategoryRevenue)),
		slog.Int("months", len(summary.MonthlyRevenue)))

	return summary
}
