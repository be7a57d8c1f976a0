// Package pricing implements the order pricing and discount engine.
//
// A quote is a single forward pass over six stages: range-wise unit price
// adjustment, base total, option charge aggregation, quantity discount,
// GST, and breakdown assembly. The engine is a pure function of its inputs
// and holds no state; concurrent calls need no coordination.
//
// Missing or empty configuration never fails a quote. Every stage degrades
// to a neutral default (multiplier 1.0, charge 0) so that an unconfigured
// product still prices as basePrice * quantity plus GST. Input validation
// is the caller's job; see Validate.
package pricing

// DefaultGSTPercentage applies when a pricing snapshot carries no explicit
// GST rate.
const DefaultGSTPercentage = 18.0

// PricingTypeRangeWise marks configs whose unit price scales with quantity
// bands. Any other pricing type leaves the unit price untouched.
const PricingTypeRangeWise = "rangewise"

// Option is a named add-on charge. For checkbox options PriceAdd is either
// a per-unit rate or a flat fee (see isPerUnitRate); for printing and
// delivery-speed options it is a rate per 1000 units.
type Option struct {
	Name     string  `json:"name"`
	PriceAdd float64 `json:"priceAdd"`
}

// QuantityRange is a quantity band that scales the base unit price itself.
// Max is nil for an open-ended band.
type QuantityRange struct {
	Min             int      `json:"min"`
	Max             *int     `json:"max,omitempty"`
	PriceMultiplier float64  `json:"priceMultiplier"`
}

// DiscountTier is a quantity band applied to the combined base+options
// subtotal. Exactly one of PriceMultiplier or DiscountPercentage is
// expected; PriceMultiplier wins when both are set.
type DiscountTier struct {
	MinQuantity        int      `json:"minQuantity"`
	MaxQuantity        *int     `json:"maxQuantity,omitempty"`
	DiscountPercentage *float64 `json:"discountPercentage,omitempty"`
	PriceMultiplier    *float64 `json:"priceMultiplier,omitempty"`
}

// Config is an immutable snapshot of a product's pricing rules at quote
// time. Bands in RangeWiseQuantities and QuantityDiscounts must be ordered
// by their minimum and non-overlapping; the engine takes the first matching
// band and stops.
type Config struct {
	BasePrice            float64         `json:"basePrice"`
	GSTPercentage        *float64        `json:"gstPercentage,omitempty"`
	PricingType          string          `json:"pricingType,omitempty"`
	CheckboxOptions      []Option        `json:"checkboxOptions,omitempty"`
	PrintingOptionPrices []Option        `json:"printingOptionPrices,omitempty"`
	DeliverySpeedPrices  []Option        `json:"deliverySpeedPrices,omitempty"`
	RangeWiseQuantities  []QuantityRange `json:"rangeWiseQuantities,omitempty"`
	QuantityDiscounts    []DiscountTier  `json:"quantityDiscounts,omitempty"`
}

// gst returns the effective GST rate. An explicit zero is honored; only an
// absent rate falls back to the default.
func (c *Config) gst() float64 {
	if c.GSTPercentage == nil {
		return DefaultGSTPercentage
	}
	return *c.GSTPercentage
}

// DynamicAttribute is a customer-selected product variant carrying its own
// price modifier. A single attribute is either multiplicative (scales the
// base unit price) or additive (per-unit add-on); the multiplier wins if
// both are present.
type DynamicAttribute struct {
	AttributeName   string   `json:"attributeName"`
	Label           string   `json:"label,omitempty"`
	PriceMultiplier *float64 `json:"priceMultiplier,omitempty"`
	PriceAdd        *float64 `json:"priceAdd,omitempty"`
}

// Selection is the customer's chosen configuration for one order line.
// Finish and DeliverySpeed are keys into the config's printing and
// delivery-speed price tables; empty means not selected.
type Selection struct {
	Quantity          int                `json:"quantity"`
	SelectedOptions   []Option           `json:"selectedOptions,omitempty"`
	Finish            string             `json:"finish,omitempty"`
	DeliverySpeed     string             `json:"deliverySpeed,omitempty"`
	DynamicAttributes []DynamicAttribute `json:"selectedDynamicAttributes,omitempty"`
}

// OptionCharge is one option's monetary contribution to a quote.
type OptionCharge struct {
	Name     string  `json:"name"`
	PriceAdd float64 `json:"priceAdd"`
	Cost     float64 `json:"cost"`
	PerUnit  bool    `json:"isPerUnit"`
}

// Breakdown reports every intermediate value of a quote. It is assembled
// once and never mutated; a fresh quote replaces it wholesale. FinalTotal
// is the only field the payment boundary may consume.
type Breakdown struct {
	RawBaseTotal           float64        `json:"rawBaseTotal"`
	DiscountedBaseTotal    float64        `json:"discountedBaseTotal"`
	DiscountPercentage     float64        `json:"discountPercentage"`
	OptionBreakdowns       []OptionCharge `json:"optionBreakdowns"`
	SubtotalBeforeDiscount float64        `json:"subtotalBeforeDiscount"`
	SubtotalAfterDiscount  float64        `json:"subtotalAfterDiscount"`
	GSTPercentage          float64        `json:"gstPercentage"`
	GSTAmount              float64        `json:"gstAmount"`
	FinalTotal             float64        `json:"finalTotal"`
}
