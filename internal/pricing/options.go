package pricing

// perUnitRateCeiling is the threshold below which a checkbox option's
// priceAdd is read as a per-unit rate rather than a flat fee. Inherited
// from the legacy calculator; existing product configs depend on it.
// TODO: replace with an explicit perUnit flag on Option once the catalog
// records carry one, then delete this constant.
const perUnitRateCeiling = 10.0

// isPerUnitRate classifies a checkbox option charge as per-unit or flat.
// Kept as the single place the magnitude heuristic lives so the rest of
// the pipeline never branches on the raw threshold.
func isPerUnitRate(priceAdd float64) bool {
	return priceAdd < perUnitRateCeiling
}

// findOption looks a name up in a price table. Returns nil on a miss.
func findOption(table []Option, name string) *Option {
	for i := range table {
		if table[i].Name == name {
			return &table[i]
		}
	}
	return nil
}

// aggregateOptionCharges walks every selected option source and converts
// each into a monetary contribution. The charge list is accumulated
// internally and returned as a frozen slice; callers must not append to it.
//
// Sources, in order: checkbox options, finish, delivery speed, dynamic
// attributes. Multiplicative attributes charge their marginal impact on the
// original base price, deliberately ignoring any range-wise adjustment so
// that multiplier semantics stay independent of quantity scaling.
func aggregateOptionCharges(cfg *Config, sel Selection) ([]OptionCharge, float64) {
	qty := float64(sel.Quantity)
	var charges []OptionCharge
	var total float64

	add := func(c OptionCharge) {
		charges = append(charges, c)
		total += c.Cost
	}

	// Checkbox add-ons. A plain option name arrives with priceAdd 0 and
	// contributes nothing.
	for _, opt := range sel.SelectedOptions {
		if opt.PriceAdd == 0 {
			continue
		}
		perUnit := isPerUnitRate(opt.PriceAdd)
		cost := opt.PriceAdd
		if perUnit {
			cost = opt.PriceAdd * qty
		}
		add(OptionCharge{Name: opt.Name, PriceAdd: opt.PriceAdd, Cost: cost, PerUnit: perUnit})
	}

	// Finish and delivery speed are priced per thousand units. A missing
	// lookup or a zero rate is skipped entirely.
	for _, lookup := range []struct {
		key   string
		table []Option
	}{
		{sel.Finish, cfg.PrintingOptionPrices},
		{sel.DeliverySpeed, cfg.DeliverySpeedPrices},
	} {
		if lookup.key == "" {
			continue
		}
		opt := findOption(lookup.table, lookup.key)
		if opt == nil || opt.PriceAdd == 0 {
			continue
		}
		add(OptionCharge{
			Name:     opt.Name,
			PriceAdd: opt.PriceAdd,
			Cost:     opt.PriceAdd / 1000 * qty,
			PerUnit:  true,
		})
	}

	// Dynamic attributes: multiplier takes priority over an additive charge
	// when a record somehow carries both.
	for _, attr := range sel.DynamicAttributes {
		name := attr.AttributeName
		if attr.Label != "" {
			name = attr.AttributeName + ": " + attr.Label
		}
		switch {
		case attr.PriceMultiplier != nil && *attr.PriceMultiplier != 1:
			impact := cfg.BasePrice * (*attr.PriceMultiplier - 1)
			add(OptionCharge{Name: name, PriceAdd: impact, Cost: impact * qty, PerUnit: true})
		case attr.PriceAdd != nil && *attr.PriceAdd > 0:
			add(OptionCharge{Name: name, PriceAdd: *attr.PriceAdd, Cost: *attr.PriceAdd * qty, PerUnit: true})
		}
	}

	return charges, total
}
