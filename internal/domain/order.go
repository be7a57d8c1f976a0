package domain

// Order lifecycle statuses. An order is created pending, becomes paid once
// the gateway payment is verified, and then moves through fulfillment.
const (
	OrderStatusPending      = "pending"
	OrderStatusPaid         = "paid"
	OrderStatusInProduction = "in_production"
	OrderStatusShipped      = "shipped"
	OrderStatusDelivered    = "delivered"
	OrderStatusCancelled    = "cancelled"
)

// orderTransitions maps each status to the statuses an agent may move it
// to. Payment confirmation is the only way into paid; it does not go
// through this table.
var orderTransitions = map[string][]string{
	OrderStatusPending:      {OrderStatusCancelled},
	OrderStatusPaid:         {OrderStatusInProduction, OrderStatusCancelled},
	OrderStatusInProduction: {OrderStatusShipped, OrderStatusCancelled},
	OrderStatusShipped:      {OrderStatusDelivered},
}

// ValidOrderStatus reports whether s is a known order status.
func ValidOrderStatus(s string) bool {
	switch s {
	case OrderStatusPending, OrderStatusPaid, OrderStatusInProduction,
		OrderStatusShipped, OrderStatusDelivered, OrderStatusCancelled:
		return true
	}
	return false
}

// CanTransitionOrder reports whether an agent may move an order from one
// status to another.
func CanTransitionOrder(from, to string) bool {
	for _, next := range orderTransitions[from] {
		if next == to {
			return true
		}
	}
	return false
}
