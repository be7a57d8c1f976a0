package pricing

// Compute derives the full price breakdown for a selection against a
// pricing snapshot. Pure and deterministic: identical inputs always yield
// an identical breakdown, so callers simply recompute on every change.
//
// Stage order is fixed and observable in the output: the range-wise
// multiplier adjusts the unit price, option charges accumulate on top of
// the raw base total, the quantity discount applies to the combined
// subtotal (options are not exempt), and GST applies strictly after the
// discount.
func Compute(cfg *Config, sel Selection) Breakdown {
	qty := float64(sel.Quantity)

	rangeMult := cfg.rangeMultiplier(sel.Quantity)
	rawBaseTotal := cfg.BasePrice * rangeMult * qty

	charges, optionsTotal := aggregateOptionCharges(cfg, sel)

	subtotal := rawBaseTotal + optionsTotal
	discount := PolicyFor(cfg).Resolve(sel.Quantity)
	discounted := subtotal * discount.Multiplier

	gstPct := cfg.gst()
	gstAmount := discounted * gstPct / 100

	return Breakdown{
		RawBaseTotal:           rawBaseTotal,
		DiscountedBaseTotal:    rawBaseTotal * discount.Multiplier,
		DiscountPercentage:     discount.Percentage,
		OptionBreakdowns:       charges,
		SubtotalBeforeDiscount: subtotal,
		SubtotalAfterDiscount:  discounted,
		GSTPercentage:          gstPct,
		GSTAmount:              gstAmount,
		FinalTotal:             discounted + gstAmount,
	}
}
