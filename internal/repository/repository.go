// Package repository provides PostgreSQL persistence for the catalog and
// order book. Queries are hand-written against pgx; the Querier interface
// is what services depend on so tests can substitute an in-memory fake.
package repository

import (
	"context"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgconn"
	"github.com/jackc/pgx/v5/pgtype"
)

// DBTX is the subset of pgx a query needs; satisfied by *pgxpool.Pool and
// pgx.Tx alike.
type DBTX interface {
	Exec(ctx context.Context, sql string, args ...any) (pgconn.CommandTag, error)
	Query(ctx context.Context, sql string, args ...any) (pgx.Rows, error)
	QueryRow(ctx context.Context, sql string, args ...any) pgx.Row
}

// Querier is the persistence surface the service layer depends on.
type Querier interface {
	ListActiveProducts(ctx context.Context) ([]Product, error)
	GetProductBySlug(ctx context.Context, slug string) (Product, error)
	GetProduct(ctx context.Context, id pgtype.UUID) (Product, error)
	UpdateProductPricing(ctx context.Context, arg UpdateProductPricingParams) (Product, error)

	CreateOrder(ctx context.Context, arg CreateOrderParams) (Order, error)
	GetOrderByNumber(ctx context.Context, orderNumber string) (Order, error)
	SetOrderGatewayOrder(ctx context.Context, arg SetOrderGatewayOrderParams) error
	MarkOrderPaid(ctx context.Context, arg MarkOrderPaidParams) (Order, error)
	UpdateOrderStatus(ctx context.Context, arg UpdateOrderStatusParams) (Order, error)
}

// Queries implements Querier over a DBTX.
type Queries struct {
	db DBTX
}

var _ Querier = (*Queries)(nil)

// New creates a Queries bound to the given connection or transaction.
func New(db DBTX) *Queries {
	return &Queries{db: db}
}
