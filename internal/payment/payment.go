// Package payment is the gateway boundary. The only value it may consume
// from a price breakdown is the final total; every intermediate figure
// stays inside the quote engine.
package payment

import (
	"context"
	"errors"
	"math"
)

var (
	// ErrGatewayUnavailable is returned when the gateway cannot be reached
	// or responds with a server error.
	ErrGatewayUnavailable = errors.New("payment gateway unavailable")

	// ErrGatewayRejected is returned when the gateway refuses the request.
	ErrGatewayRejected = errors.New("payment gateway rejected the request")
)

// Provider defines the interface for payment gateway operations.
// Implementations: RazorpayProvider, MockProvider.
type Provider interface {
	// CreateGatewayOrder registers an order with the gateway and returns
	// the gateway's order reference for client-side capture.
	CreateGatewayOrder(ctx context.Context, params CreateGatewayOrderParams) (*GatewayOrder, error)

	// VerifyPaymentSignature checks the signature the gateway attached to
	// a completed payment against our shared secret.
	VerifyPaymentSignature(gatewayOrderID, gatewayPaymentID, signature string) bool
}

// CreateGatewayOrderParams describes the order to register.
type CreateGatewayOrderParams struct {
	AmountPaise int64  // smallest currency unit
	Currency    string // e.g. "INR"
	Receipt     string // our order number, for reconciliation
}

// GatewayOrder is the gateway's view of a registered order.
type GatewayOrder struct {
	ID          string
	AmountPaise int64
	Currency    string
	Status      string
}

// ToPaise converts a rupee amount to integer paise, rounding to the
// nearest. The float pipeline keeps fractional paise; the gateway does not.
func ToPaise(rupees float64) int64 {
	return int64(math.Round(rupees * 100))
}
