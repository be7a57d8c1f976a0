package service

import (
	"context"

	"github.com/print24/print24/internal/domain"
	"github.com/print24/print24/internal/pricing"
)

// Mock implementations of the service interfaces for handler tests.
// Unset functions return ENOTFOUND so handlers exercise their error path.

type MockProductService struct {
	ListProductsFunc  func(ctx context.Context) ([]ProductSummary, error)
	GetProductFunc    func(ctx context.Context, slug string) (*ProductDetail, error)
	UpdatePricingFunc func(ctx context.Context, slug string, cfg pricing.Config) (*ProductDetail, error)
}

var _ ProductService = (*MockProductService)(nil)

func (m *MockProductService) ListProducts(ctx context.Context) ([]ProductSummary, error) {
	if m.ListProductsFunc != nil {
		return m.ListProductsFunc(ctx)
	}
	return nil, nil
}

func (m *MockProductService) GetProduct(ctx context.Context, slug string) (*ProductDetail, error) {
	if m.GetProductFunc != nil {
		return m.GetProductFunc(ctx, slug)
	}
	return nil, domain.Errorf(domain.ENOTFOUND, "mock", "product %q not found", slug)
}

func (m *MockProductService) UpdatePricing(ctx context.Context, slug string, cfg pricing.Config) (*ProductDetail, error) {
	if m.UpdatePricingFunc != nil {
		return m.UpdatePricingFunc(ctx, slug, cfg)
	}
	return nil, domain.Errorf(domain.ENOTFOUND, "mock", "product %q not found", slug)
}

type MockQuoteService struct {
	QuoteFunc func(ctx context.Context, productSlug string, sel pricing.Selection) (*Quote, error)
}

var _ QuoteService = (*MockQuoteService)(nil)

func (m *MockQuoteService) Quote(ctx context.Context, productSlug string, sel pricing.Selection) (*Quote, error) {
	if m.QuoteFunc != nil {
		return m.QuoteFunc(ctx, productSlug, sel)
	}
	return nil, domain.Errorf(domain.ENOTFOUND, "mock", "product %q not found", productSlug)
}

type MockOrderService struct {
	CreateOrderFunc      func(ctx context.Context, params CreateOrderParams) (*OrderDetail, error)
	GetOrderByNumberFunc func(ctx context.Context, orderNumber string) (*OrderDetail, error)
	ConfirmPaymentFunc   func(ctx context.Context, params ConfirmPaymentParams) (*OrderDetail, error)
	UpdateStatusFunc     func(ctx context.Context, orderNumber, newStatus string) (*OrderDetail, error)
}

var _ OrderService = (*MockOrderService)(nil)

func (m *MockOrderService) CreateOrder(ctx context.Context, params CreateOrderParams) (*OrderDetail, error) {
	if m.CreateOrderFunc != nil {
		return m.CreateOrderFunc(ctx, params)
	}
	return nil, domain.Errorf(domain.ENOTFOUND, "mock", "product %q not found", params.ProductSlug)
}

func (m *MockOrderService) GetOrderByNumber(ctx context.Context, orderNumber string) (*OrderDetail, error) {
	if m.GetOrderByNumberFunc != nil {
		return m.GetOrderByNumberFunc(ctx, orderNumber)
	}
	return nil, domain.Errorf(domain.ENOTFOUND, "mock", "order %q not found", orderNumber)
}

func (m *MockOrderService) ConfirmPayment(ctx context.Context, params ConfirmPaymentParams) (*OrderDetail, error) {
	if m.ConfirmPaymentFunc != nil {
		return m.ConfirmPaymentFunc(ctx, params)
	}
	return nil, domain.Errorf(domain.ENOTFOUND, "mock", "order %q not found", params.OrderNumber)
}

func (m *MockOrderService) UpdateStatus(ctx context.Context, orderNumber, newStatus string) (*OrderDetail, error) {
	if m.UpdateStatusFunc != nil {
		return m.UpdateStatusFunc(ctx, orderNumber, newStatus)
	}
	return nil, domain.Errorf(domain.ENOTFOUND, "mock", "order %q not found", orderNumber)
}
