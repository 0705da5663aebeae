package exporter

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestFormatFloat(t *testing.T) {
	tests := []struct {
		name     string
		input    float64
		expected string
	}{
		{"zero value", 0, "0.00"},
		{"integer", 123, "123.00"},
		{"one decimal", 13.4, "13.40"},
		{"rounds", 99.999, "100.00"},
		{"negative", -7.25, "-7.25"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.expected, formatFloat(tt.input))
		})
	}
}

func TestFormatCurrency(t *testing.T) {
	tests := []struct {
		name     string
		input    float64
		expected string
	}{
		{"zero", 0, "$0.00"},
		{"whole", 1234, "$1234.00"},
		{"cents", 1234.5, "$1234.50"},
		{"half cent rounds away from zero", 0.125, "$0.13"},
		{"negative", -12.3, "-$12.30"},
		{"large", 1e9, "$1000000000.00"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.expected, FormatCurrency(tt.input))
		})
	}
}

func TestFormatPercentAndSeconds(t *testing.T) {
	assert.Equal(t, "33.33%", FormatPercent(100.0/3))
	assert.Equal(t, "0.00%", FormatPercent(0))
	assert.Equal(t, "0.000123", FormatSeconds(0.0001234))
	assert.Equal(t, "1.500000", FormatSeconds(1.5))
	assert.Equal(t, "42", formatInt(42))
}
