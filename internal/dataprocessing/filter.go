package dataprocessing

import (
	"fmt"
	"strings"

	"github.com/IhorStoiko/Projekt/internal/config"
	"github.com/IhorStoiko/Projekt/internal/errors"
	"github.com/IhorStoiko/Projekt/pkg/contracts/domain"
)

// FilterByColumn returns the orders whose named column equals value.
// order_amount is compared numerically and order_date as an ISO date; other
// columns compare as exact strings. The result is never nil.
func FilterByColumn(orders []domain.Order, column, value string) ([]domain.Order, error) {
	match, err := columnMatcher(strings.ToLower(strings.TrimSpace(column)), value)
	if err != nil {
		return nil, err
	}

	out := []domain.Order{}
	for _, o := range orders {
		if match(o) {
			out = append(out, o)
		}
	}
	return out, nil
}

func columnMatcher(column, value string) (func(domain.Order) bool, error) {
	switch column {
	case ColOrderID:
		return func(o domain.Order) bool { return o.OrderID == value }, nil
	case ColCustomerID:
		return func(o domain.Order) bool { return o.CustomerID == value }, nil
	case ColProductCategory:
		return func(o domain.Order) bool { return o.ProductCategory == value }, nil
	case ColStatus:
		status := domain.ParseOrderStatus(value)
		return func(o domain.Order) bool { return o.Status == status }, nil
	case ColOrderAmount:
		amount, err := ParseAmount(value)
		if err != nil {
			return nil, errors.NewParsingError("invalid amount filter", err).WithContext("value", value)
		}
		return func(o domain.Order) bool { return o.Amount == amount }, nil
	case ColOrderDate:
		date, ok := ParseDate(value)
		if !ok {
			return nil, errors.NewParsingError(fmt.Sprintf("invalid date filter %q", value), nil)
		}
		day := date.Format(config.DateLayoutISO)
		return func(o domain.Order) bool {
			return o.HasDate && o.OrderDate.Format(config.DateLayoutISO) == day
		}, nil
	}
	return nil, errors.NewValidationError(fmt.Sprintf("unknown column %q", column))
}
