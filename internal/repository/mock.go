package repository

import (
	"context"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgtype"
)

// MockQuerier is a test implementation of Querier. Unset functions behave
// like an empty database: reads return pgx.ErrNoRows, writes echo input.
type MockQuerier struct {
	ListActiveProductsFunc   func(ctx context.Context) ([]Product, error)
	GetProductBySlugFunc     func(ctx context.Context, slug string) (Product, error)
	GetProductFunc           func(ctx context.Context, id pgtype.UUID) (Product, error)
	UpdateProductPricingFunc func(ctx context.Context, arg UpdateProductPricingParams) (Product, error)

	CreateOrderFunc          func(ctx context.Context, arg CreateOrderParams) (Order, error)
	GetOrderByNumberFunc     func(ctx context.Context, orderNumber string) (Order, error)
	SetOrderGatewayOrderFunc func(ctx context.Context, arg SetOrderGatewayOrderParams) error
	MarkOrderPaidFunc        func(ctx context.Context, arg MarkOrderPaidParams) (Order, error)
	UpdateOrderStatusFunc    func(ctx context.Context, arg UpdateOrderStatusParams) (Order, error)
}

var _ Querier = (*MockQuerier)(nil)

func (m *MockQuerier) ListActiveProducts(ctx context.Context) ([]Product, error) {
	if m.ListActiveProductsFunc != nil {
		return m.ListActiveProductsFunc(ctx)
	}
	return nil, nil
}

func (m *MockQuerier) GetProductBySlug(ctx context.Context, slug string) (Product, error) {
	if m.GetProductBySlugFunc != nil {
		return m.GetProductBySlugFunc(ctx, slug)
	}
	return Product{}, pgx.ErrNoRows
}

func (m *MockQuerier) GetProduct(ctx context.Context, id pgtype.UUID) (Product, error) {
	if m.GetProductFunc != nil {
		return m.GetProductFunc(ctx, id)
	}
	return Product{}, pgx.ErrNoRows
}

func (m *MockQuerier) UpdateProductPricing(ctx context.Context, arg UpdateProductPricingParams) (Product, error) {
	if m.UpdateProductPricingFunc != nil {
		return m.UpdateProductPricingFunc(ctx, arg)
	}
	return Product{}, pgx.ErrNoRows
}

func (m *MockQuerier) CreateOrder(ctx context.Context, arg CreateOrderParams) (Order, error) {
	if m.CreateOrderFunc != nil {
		return m.CreateOrderFunc(ctx, arg)
	}
	return Order{
		OrderNumber:  arg.OrderNumber,
		ProductID:    arg.ProductID,
		Quantity:     arg.Quantity,
		Selection:    arg.Selection,
		Breakdown:    arg.Breakdown,
		FinalTotal:   arg.FinalTotal,
		Currency:     arg.Currency,
		Status:       "pending",
		NeedDesigner: arg.NeedDesigner,
		ArtworkURL:   arg.ArtworkURL,
	}, nil
}

func (m *MockQuerier) GetOrderByNumber(ctx context.Context, orderNumber string) (Order, error) {
	if m.GetOrderByNumberFunc != nil {
		return m.GetOrderByNumberFunc(ctx, orderNumber)
	}
	return Order{}, pgx.ErrNoRows
}

func (m *MockQuerier) SetOrderGatewayOrder(ctx context.Context, arg SetOrderGatewayOrderParams) error {
	if m.SetOrderGatewayOrderFunc != nil {
		return m.SetOrderGatewayOrderFunc(ctx, arg)
	}
	return nil
}

func (m *MockQuerier) MarkOrderPaid(ctx context.Context, arg MarkOrderPaidParams) (Order, error) {
	if m.MarkOrderPaidFunc != nil {
		return m.MarkOrderPaidFunc(ctx, arg)
	}
	return Order{}, pgx.ErrNoRows
}

func (m *MockQuerier) UpdateOrderStatus(ctx context.Context, arg UpdateOrderStatusParams) (Order, error) {
	if m.UpdateOrderStatusFunc != nil {
		return m.UpdateOrderStatusFunc(ctx, arg)
	}
	return Order{}, pgx.ErrNoRows
}
