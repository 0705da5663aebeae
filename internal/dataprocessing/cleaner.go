package dataprocessing

import (
	"context"
	stderrors "errors"
	"fmt"
	"log/slog"
	"math"
	"strconv"
	"strings"
	"time"

	"github.com/go-playground/validator/v10"

	"github.com/IhorStoiko/Projekt/internal/config"
	"github.com/IhorStoiko/Projekt/internal/errors"
	"github.com/IhorStoiko/Projekt/pkg/contracts/domain"
)

// errMissingAmount marks a row with neither an amount nor quantity and unit price
var errMissingAmount = stderrors.New("order amount is empty")

// Cleaner turns a raw table into typed orders
type Cleaner struct {
	logger   *slog.Logger
	validate *validator.Validate
	layouts  []string
}

// NewCleaner creates a cleaner accepting the default date layouts
func NewCleaner(logger *slog.Logger) *Cleaner {
	if logger == nil {
		logger = slog.Default()
	}
	return &Cleaner{
		logger:   logger,
		validate: validator.New(),
		layouts:  config.DateLayouts,
	}
}

// ParseDate parses an order date with the accepted layouts, tried in order.
// The second result is false when no layout matches.
func ParseDate(raw string) (time.Time, bool) {
	return parseDate(raw, config.DateLayouts)
}

func parseDate(raw string, layouts []string) (time.Time, bool) {
	raw = strings.TrimSpace(raw)
	if raw == "" {
		return time.Time{}, false
	}
	for _, layout := range layouts {
		if t, err := time.Parse(layout, raw); err == nil {
			return t, true
		}
	}
	return time.Time{}, false
}

// ParseAmount parses a monetary cell. Thousands separators are accepted;
// non-finite values are rejected.
func ParseAmount(raw string) (float64, error) {
	s := strings.ReplaceAll(strings.TrimSpace(raw), ",", "")
	v, err := strconv.ParseFloat(s, 64)
	if err != nil {
		return 0, err
	}
	if math.IsNaN(v) || math.IsInf(v, 0) {
		return 0, fmt.Errorf("non-finite amount %q", raw)
	}
	return v, nil
}

// Clean drops exact duplicate rows (first occurrence wins), parses dates and
// amounts, and defaults blank statuses to pending.
//
// An unparseable date leaves the order undated. An unparseable amount fails
// the whole pass with a parsing error carrying the 1-based data row number.
// Rows with no amount at all are dropped and counted as invalid. Rows without
// a customer id are kept.
func (c *Cleaner) Clean(ctx context.Context, table *Table) ([]domain.Order, domain.CleanStats, error) {
	stats := domain.CleanStats{RawRows: table.Len()}

	c.logger.InfoContext(ctx, "cleaning sales data", slog.Int("raw_rows", stats.RawRows))

	seen := make(map[string]struct{}, table.Len())
	orders := make([]domain.Order, 0, table.Len())

	for i, row := range table.Rows {
		rowNum := i + 1

		key := strings.Join(row, "\x1f")
		if _, dup := seen[key]; dup {
			stats.Duplicates++
			continue
		}
		seen[key] = struct{}{}

		amount, computed, err := c.rowAmount(table, row)
		if stderrors.Is(err, errMissingAmount) {
			stats.Invalid++
			c.logger.WarnContext(ctx, "dropping order without amount", slog.Int("row", rowNum))
			continue
		}
		if err != nil {
			return nil, stats, errors.NewParsingError("invalid order amount", err).
				WithContext("row", rowNum).
				WithContext("value", table.Value(row, ColOrderAmount))
		}
		if computed {
			stats.ComputedAmounts++
		}

		order := domain.Order{
			OrderID:         table.Value(row, ColOrderID),
			CustomerID:      table.Value(row, ColCustomerID),
			ProductCategory: table.Value(row, ColProductCategory),
			Amount:          amount,
			Status:          domain.ParseOrderStatus(table.Value(row, ColStatus)),
		}

		if table.Value(row, ColStatus) == "" {
			stats.DefaultedStatus++
		}

		order.OrderDate, order.HasDate = parseDate(table.Value(row, ColOrderDate), c.layouts)
		if !order.HasDate {
			stats.Undated++
			c.logger.DebugContext(ctx, "order date not parseable",
				slog.Int("row", rowNum),
				slog.String("value", table.Value(row, ColOrderDate)))
		}

		if err := c.validate.Struct(order); err != nil {
			stats.Invalid++
			c.logger.WarnContext(ctx, "dropping invalid order",
				slog.Int("row", rowNum),
				slog.String("error", err.Error()))
			continue
		}

		orders = append(orders, order)
	}

	stats.CleanRows = len(orders)

	c.logger.InfoContext(ctx, "sales data cleaned",
		slog.Int("clean_rows", stats.CleanRows),
		slog.Int("duplicates", stats.Duplicates),
		slog.Int("invalid", stats.Invalid),
		slog.Int("undated", stats.Undated),
		slog.Int("defaulted_status", stats.DefaultedStatus))

	return orders, stats, nil
}

// rowAmount reads order_amount, falling back to quantity * unit_price when
// the amount cell is empty and both columns are present
func (c *Cleaner) rowAmount(table *Table, row []string) (float64, bool, error) {
	raw := table.Value(row, ColOrderAmount)
	if raw != "" {
		v, err := ParseAmount(raw)
		return v, false, err
	}

	qtyRaw, priceRaw := table.Value(row, ColQuantity), table.Value(row, ColUnitPrice)
	if qtyRaw == "" || priceRaw == "" {
		return 0, false, errMissingAmount
	}
	qty, err := strconv.Atoi(qtyRaw)
	if err != nil {
		return 0, false, fmt.Errorf("invalid quantity %q: %w", qtyRaw, err)
	}
	price, err := ParseAmount(priceRaw)
	if err != nil {
		return 0, false, fmt.Errorf("invalid unit price %q: %w", priceRaw, err)
	}
	return domain.LineAmount(qty, price), true, nil
}

// Amounts returns the order amounts in table order
func Amounts(orders []domain.Order) []float64 {
	out := make([]float64, len(orders))
	for i, o := range orders {
		out[i] = o.Amount
	}
	return out
}
