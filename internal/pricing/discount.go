package pricing

// DiscountPolicy resolves a quantity into the discount applied to the
// combined base+options subtotal. Two implementations exist: a configured
// tier table, and the fixed ladder used when a product carries no table.
// Keeping them behind one interface lets each be tested in isolation.
type DiscountPolicy interface {
	Resolve(quantity int) Discount
}

// Discount is a resolved quantity discount. Multiplier scales the subtotal;
// Percentage is the equivalent percentage off, surfaced for display.
type Discount struct {
	Multiplier float64
	Percentage float64
}

// NoDiscount is the neutral resolution for quantities no band covers.
var NoDiscount = Discount{Multiplier: 1.0}

// PolicyFor selects the discount policy for a pricing snapshot: the
// configured tier table when present, the fallback ladder otherwise.
func PolicyFor(cfg *Config) DiscountPolicy {
	if len(cfg.QuantityDiscounts) > 0 {
		return &TierTablePolicy{tiers: cfg.QuantityDiscounts}
	}
	return LadderPolicy{}
}

// TierTablePolicy resolves discounts from a configured tier table.
type TierTablePolicy struct {
	tiers []DiscountTier
}

// NewTierTablePolicy wraps an ordered tier table in a policy.
func NewTierTablePolicy(tiers []DiscountTier) *TierTablePolicy {
	return &TierTablePolicy{tiers: tiers}
}

// Resolve scans tiers in configured order and stops at the first band
// containing the quantity. A tier's explicit multiplier wins over its
// percentage; a tier with neither is neutral. First-match is load-bearing:
// existing orders priced under overlapping bands must keep resolving to
// the earlier band.
func (p *TierTablePolicy) Resolve(quantity int) Discount {
	for _, tier := range p.tiers {
		if quantity < tier.MinQuantity {
			continue
		}
		if tier.MaxQuantity != nil && quantity > *tier.MaxQuantity {
			continue
		}
		if tier.PriceMultiplier != nil {
			m := *tier.PriceMultiplier
			return Discount{Multiplier: m, Percentage: (1 - m) * 100}
		}
		if tier.DiscountPercentage != nil {
			pct := *tier.DiscountPercentage
			return Discount{Multiplier: (100 - pct) / 100, Percentage: pct}
		}
		return NoDiscount
	}
	return NoDiscount
}

// LadderPolicy is the hardcoded quantity discount ladder applied when a
// product has no configured tier table. The steps are frozen for backward
// compatibility with orders priced before tier tables existed.
type LadderPolicy struct{}

// Resolve returns 70% off at 10000+, 50% at 1000+, 10% at 500+.
func (LadderPolicy) Resolve(quantity int) Discount {
	switch {
	case quantity >= 10000:
		return Discount{Multiplier: 0.3, Percentage: 70}
	case quantity >= 1000:
		return Discount{Multiplier: 0.5, Percentage: 50}
	case quantity >= 500:
		return Discount{Multiplier: 0.9, Percentage: 10}
	default:
		return NoDiscount
	}
}
