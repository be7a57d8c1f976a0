package pricing

import (
	"fmt"
	"math"
)

// The engine performs no input sanitation of its own, so malformed numbers
// must be rejected here before Compute runs.

func finite(v float64) bool {
	return !math.IsNaN(v) && !math.IsInf(v, 0)
}

// ValidateSelection rejects selections the engine must never see:
// non-positive quantities and non-finite numeric modifiers.
func ValidateSelection(sel Selection) error {
	if sel.Quantity <= 0 {
		return invalid(fmt.Sprintf("quantity must be positive, got %d", sel.Quantity))
	}
	for _, opt := range sel.SelectedOptions {
		if !finite(opt.PriceAdd) {
			return invalid(fmt.Sprintf("option %q has a non-finite priceAdd", opt.Name))
		}
	}
	for _, attr := range sel.DynamicAttributes {
		if attr.PriceMultiplier != nil && !finite(*attr.PriceMultiplier) {
			return invalid(fmt.Sprintf("attribute %q has a non-finite priceMultiplier", attr.AttributeName))
		}
		if attr.PriceAdd != nil && !finite(*attr.PriceAdd) {
			return invalid(fmt.Sprintf("attribute %q has a non-finite priceAdd", attr.AttributeName))
		}
	}
	return nil
}

// ValidateConfig guards new pricing snapshots before they are saved. Bands
// must be ordered by their minimum and non-overlapping; the engine's
// first-match scan is only well defined under that layout. Existing stored
// configs are not re-validated at quote time: the engine tolerates anything
// and quoting must never block on configuration.
func ValidateConfig(cfg *Config) error {
	if !finite(cfg.BasePrice) || cfg.BasePrice < 0 {
		return invalid("basePrice must be a non-negative number")
	}
	if cfg.GSTPercentage != nil && (!finite(*cfg.GSTPercentage) || *cfg.GSTPercentage < 0) {
		return invalid("gstPercentage must be a non-negative number")
	}

	prevMax := math.Inf(-1)
	for i, band := range cfg.RangeWiseQuantities {
		if band.Max != nil && *band.Max < band.Min {
			return invalid(fmt.Sprintf("range band %d: max %d below min %d", i, *band.Max, band.Min))
		}
		if float64(band.Min) <= prevMax {
			return invalid(fmt.Sprintf("range band %d overlaps or is out of order", i))
		}
		if !finite(band.PriceMultiplier) || band.PriceMultiplier < 0 {
			return invalid(fmt.Sprintf("range band %d: priceMultiplier must be non-negative", i))
		}
		if band.Max == nil {
			if i != len(cfg.RangeWiseQuantities)-1 {
				return invalid(fmt.Sprintf("range band %d is open-ended but not last", i))
			}
			break
		}
		prevMax = float64(*band.Max)
	}

	prevMax = math.Inf(-1)
	for i, tier := range cfg.QuantityDiscounts {
		if tier.MaxQuantity != nil && *tier.MaxQuantity < tier.MinQuantity {
			return invalid(fmt.Sprintf("discount tier %d: maxQuantity below minQuantity", i))
		}
		if float64(tier.MinQuantity) <= prevMax {
			return invalid(fmt.Sprintf("discount tier %d overlaps or is out of order", i))
		}
		if tier.PriceMultiplier != nil && (!finite(*tier.PriceMultiplier) || *tier.PriceMultiplier < 0) {
			return invalid(fmt.Sprintf("discount tier %d: priceMultiplier must be non-negative", i))
		}
		if tier.DiscountPercentage != nil && (!finite(*tier.DiscountPercentage) || *tier.DiscountPercentage < 0 || *tier.DiscountPercentage > 100) {
			return invalid(fmt.Sprintf("discount tier %d: discountPercentage must be within 0-100", i))
		}
		if tier.MaxQuantity == nil {
			if i != len(cfg.QuantityDiscounts)-1 {
				return invalid(fmt.Sprintf("discount tier %d is open-ended but not last", i))
			}
			break
		}
		prevMax = float64(*tier.MaxQuantity)
	}

	return nil
}
