package repository

import (
	"context"

	"github.com/jackc/pgx/v5/pgtype"
)

const orderColumns = `id, order_number, product_id, quantity, selection, breakdown,
	final_total, currency, status, gateway_order_id, gateway_payment_id,
	need_designer, artwork_url, created_at, updated_at`

func scanOrder(row interface{ Scan(dest ...any) error }) (Order, error) {
	var o Order
	err := row.Scan(
		&o.ID,
		&o.OrderNumber,
		&o.ProductID,
		&o.Quantity,
		&o.Selection,
		&o.Breakdown,
		&o.FinalTotal,
		&o.Currency,
		&o.Status,
		&o.GatewayOrderID,
		&o.GatewayPaymentID,
		&o.NeedDesigner,
		&o.ArtworkURL,
		&o.CreatedAt,
		&o.UpdatedAt,
	)
	return o, err
}

// CreateOrderParams carries everything persisted at order creation. The
// breakdown is the server-computed one; client figures never reach here.
type CreateOrderParams struct {
	OrderNumber  string
	ProductID    pgtype.UUID
	Quantity     int32
	Selection    []byte
	Breakdown    []byte
	FinalTotal   float64
	Currency     string
	NeedDesigner bool
	ArtworkURL   pgtype.Text
}

// CreateOrder inserts a new order in status pending.
func (q *Queries) CreateOrder(ctx context.Context, arg CreateOrderParams) (Order, error) {
	row := q.db.QueryRow(ctx,
		`INSERT INTO orders (
			order_number, product_id, quantity, selection, breakdown,
			final_total, currency, status, need_designer, artwork_url
		) VALUES ($1, $2, $3, $4, $5, $6, $7, 'pending', $8, $9)
		RETURNING `+orderColumns,
		arg.OrderNumber, arg.ProductID, arg.Quantity, arg.Selection, arg.Breakdown,
		arg.FinalTotal, arg.Currency, arg.NeedDesigner, arg.ArtworkURL)
	return scanOrder(row)
}

// GetOrderByNumber returns one order by its customer-facing number.
func (q *Queries) GetOrderByNumber(ctx context.Context, orderNumber string) (Order, error) {
	row := q.db.QueryRow(ctx,
		`SELECT `+orderColumns+` FROM orders WHERE order_number = $1`, orderNumber)
	return scanOrder(row)
}

// SetOrderGatewayOrderParams links an order to its payment-gateway order.
type SetOrderGatewayOrderParams struct {
	OrderNumber    string
	GatewayOrderID string
}

// SetOrderGatewayOrder records the gateway order created for this order.
func (q *Queries) SetOrderGatewayOrder(ctx context.Context, arg SetOrderGatewayOrderParams) error {
	_, err := q.db.Exec(ctx,
		`UPDATE orders SET gateway_order_id = $2, updated_at = now()
		 WHERE order_number = $1`,
		arg.OrderNumber, arg.GatewayOrderID)
	return err
}

// MarkOrderPaidParams records a verified gateway payment.
type MarkOrderPaidParams struct {
	OrderNumber      string
	GatewayPaymentID string
}

// MarkOrderPaid transitions a pending order to paid. The WHERE clause
// guards against double confirmation; no row comes back if the order was
// not pending.
func (q *Queries) MarkOrderPaid(ctx context.Context, arg MarkOrderPaidParams) (Order, error) {
	row := q.db.QueryRow(ctx,
		`UPDATE orders SET status = 'paid', gateway_payment_id = $2, updated_at = now()
		 WHERE order_number = $1 AND status = 'pending'
		 RETURNING `+orderColumns,
		arg.OrderNumber, arg.GatewayPaymentID)
	return scanOrder(row)
}

// UpdateOrderStatusParams moves an order to a new status.
type UpdateOrderStatusParams struct {
	OrderNumber string
	Status      string
}

// UpdateOrderStatus sets an order's status. Transition legality is the
// service layer's concern.
func (q *Queries) UpdateOrderStatus(ctx context.Context, arg UpdateOrderStatusParams) (Order, error) {
	row := q.db.QueryRow(ctx,
		`UPDATE orders SET status = $2, updated_at = now()
		 WHERE order_number = $1
		 RETURNING `+orderColumns,
		arg.OrderNumber, arg.Status)
	return scanOrder(row)
}
