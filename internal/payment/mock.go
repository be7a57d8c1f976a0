package payment

import "context"

// MockProvider is a test implementation of Provider.
type MockProvider struct {
	CreateGatewayOrderFunc    func(ctx context.Context, params CreateGatewayOrderParams) (*GatewayOrder, error)
	VerifyPaymentSignatureFunc func(gatewayOrderID, gatewayPaymentID, signature string) bool
}

// CreateGatewayOrder delegates to the configured function or echoes the
// request back as a created order.
func (m *MockProvider) CreateGatewayOrder(ctx context.Context, params CreateGatewayOrderParams) (*GatewayOrder, error) {
	if m.CreateGatewayOrderFunc != nil {
		return m.CreateGatewayOrderFunc(ctx, params)
	}
	return &GatewayOrder{
		ID:          "order_mock",
		AmountPaise: params.AmountPaise,
		Currency:    params.Currency,
		Status:      "created",
	}, nil
}

// VerifyPaymentSignature delegates to the configured function or accepts.
func (m *MockProvider) VerifyPaymentSignature(gatewayOrderID, gatewayPaymentID, signature string) bool {
	if m.VerifyPaymentSignatureFunc != nil {
		return m.VerifyPaymentSignatureFunc(gatewayOrderID, gatewayPaymentID, signature)
	}
	return true
}
