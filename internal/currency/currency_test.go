package currency_test

import (
	"testing"

	"github.com/print24/print24/internal/currency"
	"github.com/stretchr/testify/assert"
)

func Test_FormatINR(t *testing.T) {
	tests := []struct {
		name   string
		amount float64
		want   string
	}{
		{"whole rupees", 118, "₹118.00"},
		{"thousands", 5900, "₹5,900.00"},
		{"paise preserved", 324.5, "₹324.50"},
		{"lakh grouping", 1234567.5, "₹12,34,567.50"},
		{"zero", 0, "₹0.00"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, currency.FormatINR(tt.amount))
		})
	}
}
