package exporter

import (
	"fmt"
	"strconv"

	"github.com/shopspring/decimal"
)

// formatFloat formats a float64 value for CSV output with exactly 2 decimal places
func formatFloat(f float64) string {
	return fmt.Sprintf("%.2f", f)
}

// formatInt formats an int value for CSV output
func formatInt(i int) string {
	return strconv.Itoa(i)
}

// FormatCurrency renders an amount as "$123.45", rounding half away from zero
func FormatCurrency(amount float64) string {
	d := decimal.NewFromFloat(amount).Round(2)
	if d.IsNegative() {
		return "-$" + d.Neg().StringFixed(2)
	}
	return "$" + d.StringFixed(2)
}

// FormatPercent renders a percentage as "12.34%"
func FormatPercent(rate float64) string {
	return fmt.Sprintf("%.2f%%", rate)
}

// FormatSeconds renders a duration in seconds with microsecond precision
func FormatSeconds(seconds float64) string {
	return fmt.Sprintf("%.6f", seconds)
}
