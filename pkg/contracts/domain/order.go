package domain

import (
	"strings"
	"time"
)

// OrderStatus is the lifecycle state recorded for an order
type OrderStatus string

const (
	OrderStatusPending   OrderStatus = "pending"
	OrderStatusCompleted OrderStatus = "completed"
	OrderStatusShipped   OrderStatus = "shipped"
	OrderStatusCancelled OrderStatus = "cancelled"
)

// DefaultOrderStatus is assigned when the source row carries no status
const DefaultOrderStatus = OrderStatusPending

// ParseOrderStatus normalizes a raw status cell. Blank cells map to the default
// status; unknown values are kept verbatim so that nothing is silently rewritten.
func ParseOrderStatus(raw string) OrderStatus {
	s := strings.TrimSpace(raw)
	if s == "" {
		return DefaultOrderStatus
	}
	switch OrderStatus(strings.ToLower(s)) {
	case OrderStatusPending, OrderStatusCompleted, OrderStatusShipped, OrderStatusCancelled:
		return OrderStatus(strings.ToLower(s))
	}
	return OrderStatus(s)
}

// Order is one cleaned row of the sales table.
//
// OrderDate is only meaningful when HasDate is true; rows whose date could not
// be parsed keep HasDate=false instead of failing the load. CustomerID may be
// empty; such orders count toward the totals but belong to no customer.
type Order struct {
	OrderID         string      `json:"order_id" csv:"order_id"`
	CustomerID      string      `json:"customer_id" csv:"customer_id"`
	ProductCategory string      `json:"product_category" csv:"product_category"`
	Amount          float64     `json:"order_amount" csv:"order_amount"`
	OrderDate       time.Time   `json:"order_date" csv:"order_date"`
	HasDate         bool        `json:"has_date" csv:"-"`
	Status          OrderStatus `json:"status" csv:"status" validate:"required"`
}

// Month returns the order month as "YYYY-MM", or "" when the date is absent
func (o Order) Month() string {
	if !o.HasDate {
		return ""
	}
	return o.OrderDate.Format("2006-01")
}

// IsCancelled reports whether the order was cancelled
func (o Order) IsCancelled() bool {
	return o.Status == OrderStatusCancelled
}

// LineAmount computes an order total from quantity and unit price
func LineAmount(quantity int, unitPrice float64) float64 {
	return float64(quantity) * unitPrice
}
