package pricing

// rangeMultiplier selects the quantity-dependent base-price multiplier.
//
// Bands are scanned in configured order and the first match wins, even if a
// later band would also match; misconfigured overlaps therefore resolve to
// the earlier band. An unmatched quantity, an empty list, or a non
// range-wise pricing type all yield the neutral 1.0 so that absent
// configuration never blocks a quote.
func (c *Config) rangeMultiplier(quantity int) float64 {
	if c.PricingType != PricingTypeRangeWise || len(c.RangeWiseQuantities) == 0 {
		return 1.0
	}
	for _, band := range c.RangeWiseQuantities {
		if quantity >= band.Min && (band.Max == nil || quantity <= *band.Max) {
			return band.PriceMultiplier
		}
	}
	return 1.0
}
