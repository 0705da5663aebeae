package domain

// CustomerTotal is the revenue attributed to a single customer
type CustomerTotal struct {
	CustomerID string  `json:"customer_id" csv:"customer_id"`
	Revenue    float64 `json:"order_amount" csv:"order_amount"`
}

// CategoryAverage is the mean order amount within a product category
type CategoryAverage struct {
	Category      string  `json:"product_category" csv:"product_category"`
	AverageAmount float64 `json:"order_amount" csv:"order_amount"`
}

// CategoryRevenue is the summed order amount within a product category
type CategoryRevenue struct {
	Category string  `json:"product_category"`
	Revenue  float64 `json:"revenue"`
}

// MonthlyRevenue is the summed order amount for a calendar month ("YYYY-MM")
type MonthlyRevenue struct {
	Month   string  `json:"month"`
	Revenue float64 `json:"revenue"`
}

// KeyMetrics bundles the headline numbers of a sales table
type KeyMetrics struct {
	TotalRevenue       float64 `json:"total_revenue"`
	AverageOrderValue  float64 `json:"average_order_value"`
	MedianOrderValue   float64 `json:"median_order_value"`
	CustomerCount      int     `json:"customer_count"`
	OrderCount         int     `json:"order_count"`
	RepeatCustomerRate float64 `json:"repeat_customer_rate"`
	CancellationRate   float64 `json:"cancellation_rate"`
}

// SalesSummary is the full analysis result handed to exporters
type SalesSummary struct {
	Metrics         KeyMetrics        `json:"metrics"`
	TopCustomers    []CustomerTotal   `json:"top_customers"`
	CategoryAverage []CategoryAverage `json:"average_order_by_category"`
	CategoryRevenue []CategoryRevenue `json:"revenue_by_category"`
	MonthlyRevenue  []MonthlyRevenue  `json:"monthly_revenue"`
	Customers       []Customer        `json:"customers"`
}

// CleanStats counts what the cleaning pass did to the raw table
type CleanStats struct {
	RawRows         int `json:"raw_rows"`
	Duplicates      int `json:"duplicates"`
	Invalid         int `json:"invalid"`
	Undated         int `json:"undated"`
	DefaultedStatus int `json:"defaulted_status"`
	ComputedAmounts int `json:"computed_amounts"`
	CleanRows       int `json:"clean_rows"`
}
