package pricing_test

import (
	"testing"

	"github.com/print24/print24/internal/pricing"
	"github.com/stretchr/testify/assert"
)

// Range resolution is only observable through Compute, so these tests read
// the multiplier back off RawBaseTotal with a base price of 1 and gst 0.
func rangeBreakdown(cfg *pricing.Config, quantity int) pricing.Breakdown {
	cfg.BasePrice = 1
	cfg.GSTPercentage = f(0)
	return pricing.Compute(cfg, pricing.Selection{Quantity: quantity})
}

func Test_RangeResolver_FirstMatchingBand(t *testing.T) {
	cfg := &pricing.Config{
		PricingType: pricing.PricingTypeRangeWise,
		RangeWiseQuantities: []pricing.QuantityRange{
			{Min: 1, Max: i(99), PriceMultiplier: 1.5},
			{Min: 100, Max: i(999), PriceMultiplier: 1.2},
			{Min: 1000, PriceMultiplier: 1.0},
		},
	}

	tests := []struct {
		name       string
		quantity   int
		multiplier float64
	}{
		{"lowest band lower edge", 1, 1.5},
		{"lowest band upper edge", 99, 1.5},
		{"middle band", 100, 1.2},
		{"open-ended band", 100000, 1.0},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			b := rangeBreakdown(cfg, tt.quantity)
			assert.InDelta(t, tt.multiplier*float64(tt.quantity), b.RawBaseTotal, 1e-9)
		})
	}
}

func Test_RangeResolver_NeutralDefaults(t *testing.T) {
	tests := []struct {
		name string
		cfg  *pricing.Config
		qty  int
	}{
		{
			"no bands configured",
			&pricing.Config{PricingType: pricing.PricingTypeRangeWise},
			50,
		},
		{
			"pricing type not range-wise",
			&pricing.Config{
				PricingType:         "flat",
				RangeWiseQuantities: []pricing.QuantityRange{{Min: 1, PriceMultiplier: 2}},
			},
			50,
		},
		{
			"quantity below every band",
			&pricing.Config{
				PricingType:         pricing.PricingTypeRangeWise,
				RangeWiseQuantities: []pricing.QuantityRange{{Min: 100, PriceMultiplier: 2}},
			},
			50,
		},
		{
			"gap between bands",
			&pricing.Config{
				PricingType: pricing.PricingTypeRangeWise,
				RangeWiseQuantities: []pricing.QuantityRange{
					{Min: 1, Max: i(10), PriceMultiplier: 2},
					{Min: 100, Max: i(200), PriceMultiplier: 3},
				},
			},
			50,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			b := rangeBreakdown(tt.cfg, tt.qty)
			assert.Equal(t, float64(tt.qty), b.RawBaseTotal, "unmatched quantity must price at the neutral multiplier")
		})
	}
}

// Overlapping bands are a misconfiguration, but resolution stays
// deterministic: the earlier band wins.
func Test_RangeResolver_OverlapResolvesToEarlierBand(t *testing.T) {
	cfg := &pricing.Config{
		PricingType: pricing.PricingTypeRangeWise,
		RangeWiseQuantities: []pricing.QuantityRange{
			{Min: 1, Max: i(100), PriceMultiplier: 1.4},
			{Min: 50, Max: i(200), PriceMultiplier: 0.7},
		},
	}

	b := rangeBreakdown(cfg, 75)

	assert.InDelta(t, 1.4*75, b.RawBaseTotal, 1e-9)
}
