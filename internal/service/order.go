package service

import (
	"context"
	"crypto/rand"
	"encoding/json"
	"errors"
	"fmt"
	"log/slog"
	"math"
	"time"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgtype"
	"github.com/print24/print24/internal/currency"
	"github.com/print24/print24/internal/domain"
	"github.com/print24/print24/internal/payment"
	"github.com/print24/print24/internal/pricing"
	"github.com/print24/print24/internal/repository"
	"github.com/print24/print24/internal/telemetry"
)

// CreateOrderParams describes an order to place. ClientTotal is the total
// the customer's preview calculator showed; it is advisory only and never
// charged.
type CreateOrderParams struct {
	ProductSlug  string
	Selection    pricing.Selection
	NeedDesigner bool
	ArtworkURL   string
	ClientTotal  *float64
}

// ConfirmPaymentParams carries the gateway's checkout callback fields.
type ConfirmPaymentParams struct {
	OrderNumber      string
	GatewayOrderID   string
	GatewayPaymentID string
	Signature        string
}

// OrderDetail is the customer-facing view of an order.
type OrderDetail struct {
	OrderNumber    string            `json:"orderNumber"`
	ProductSlug    string            `json:"productSlug"`
	Status         string            `json:"status"`
	Quantity       int               `json:"quantity"`
	Breakdown      pricing.Breakdown `json:"breakdown"`
	FinalTotal     float64           `json:"finalTotal"`
	DisplayTotal   string            `json:"displayTotal"`
	Currency       string            `json:"currency"`
	GatewayOrderID string            `json:"gatewayOrderId,omitempty"`
	NeedDesigner   bool              `json:"needDesigner"`
	ArtworkURL     string            `json:"artworkUrl,omitempty"`
	CreatedAt      time.Time         `json:"createdAt"`
}

// OrderService manages the order lifecycle: creation with an authoritative
// recompute, payment confirmation, and fulfillment transitions.
type OrderService interface {
	CreateOrder(ctx context.Context, params CreateOrderParams) (*OrderDetail, error)
	GetOrderByNumber(ctx context.Context, orderNumber string) (*OrderDetail, error)
	ConfirmPayment(ctx context.Context, params ConfirmPaymentParams) (*OrderDetail, error)
	UpdateStatus(ctx context.Context, orderNumber, newStatus string) (*OrderDetail, error)
}

type orderService struct {
	repo         repository.Querier
	gateway      payment.Provider
	metrics      *telemetry.BusinessMetrics
	logger       *slog.Logger
	currencyCode string
}

// NewOrderService creates a new OrderService instance. metrics may be nil.
func NewOrderService(repo repository.Querier, gateway payment.Provider, metrics *telemetry.BusinessMetrics, logger *slog.Logger, currencyCode string) OrderService {
	if currencyCode == "" {
		currencyCode = "INR"
	}
	return &orderService{
		repo:         repo,
		gateway:      gateway,
		metrics:      metrics,
		logger:       logger,
		currencyCode: currencyCode,
	}
}

func (s *orderService) CreateOrder(ctx context.Context, params CreateOrderParams) (*OrderDetail, error) {
	const op = "order.create"

	// Regular orders must ship with print-ready artwork; designer-assisted
	// orders collect it later in the design workflow.
	if !params.NeedDesigner && params.ArtworkURL == "" {
		return nil, domain.Errorf(domain.EINVALID, op, "artwork is required unless a designer is requested")
	}
	if err := pricing.ValidateSelection(params.Selection); err != nil {
		return nil, domain.WrapError(err, domain.EINVALID, op, err.Error())
	}

	product, err := s.repo.GetProductBySlug(ctx, params.ProductSlug)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, domain.Errorf(domain.ENOTFOUND, op, "product %q not found", params.ProductSlug)
		}
		return nil, domain.WrapError(err, domain.EINTERNAL, op, "failed to load product")
	}

	cfg, err := decodePricing(product.Pricing)
	if err != nil {
		return nil, domain.WrapError(err, domain.EINTERNAL, op, "corrupt pricing snapshot")
	}

	// The server recompute is the price of record. A drifted client total
	// is logged for support but does not block the order.
	breakdown := pricing.Compute(&cfg, params.Selection)
	if params.ClientTotal != nil && math.Abs(*params.ClientTotal-breakdown.FinalTotal) > 0.01 {
		s.logger.Warn("client preview total drifted from server total",
			slog.String("product", params.ProductSlug),
			slog.Float64("client_total", *params.ClientTotal),
			slog.Float64("server_total", breakdown.FinalTotal),
		)
	}

	selectionJSON, err := json.Marshal(params.Selection)
	if err != nil {
		return nil, domain.WrapError(err, domain.EINTERNAL, op, "failed to encode selection")
	}
	breakdownJSON, err := json.Marshal(breakdown)
	if err != nil {
		return nil, domain.WrapError(err, domain.EINTERNAL, op, "failed to encode breakdown")
	}

	order, err := s.repo.CreateOrder(ctx, repository.CreateOrderParams{
		OrderNumber:  generateOrderNumber(),
		ProductID:    product.ID,
		Quantity:     int32(params.Selection.Quantity),
		Selection:    selectionJSON,
		Breakdown:    breakdownJSON,
		FinalTotal:   breakdown.FinalTotal,
		Currency:     s.currencyCode,
		NeedDesigner: params.NeedDesigner,
		ArtworkURL:   pgtype.Text{String: params.ArtworkURL, Valid: params.ArtworkURL != ""},
	})
	if err != nil {
		return nil, domain.WrapError(err, domain.EINTERNAL, op, "failed to create order")
	}

	gatewayOrder, err := s.gateway.CreateGatewayOrder(ctx, payment.CreateGatewayOrderParams{
		AmountPaise: payment.ToPaise(breakdown.FinalTotal),
		Currency:    s.currencyCode,
		Receipt:     order.OrderNumber,
	})
	if err != nil {
		// The order stays pending without a gateway reference; confirmation
		// will reject it until payment is re-initiated.
		s.logger.Error("gateway order creation failed",
			slog.String("order_number", order.OrderNumber),
			slog.String("error", err.Error()),
		)
		return nil, domain.WrapError(err, domain.EPAYMENT, op, "payment gateway could not register the order")
	}

	if err := s.repo.SetOrderGatewayOrder(ctx, repository.SetOrderGatewayOrderParams{
		OrderNumber:    order.OrderNumber,
		GatewayOrderID: gatewayOrder.ID,
	}); err != nil {
		return nil, domain.WrapError(err, domain.EINTERNAL, op, "failed to link gateway order")
	}
	order.GatewayOrderID = pgtype.Text{String: gatewayOrder.ID, Valid: true}

	if s.metrics != nil {
		s.metrics.OrdersCreated.WithLabelValues(params.ProductSlug).Inc()
		s.metrics.OrderValue.WithLabelValues(params.ProductSlug).Observe(breakdown.FinalTotal)
	}
	s.logger.Info("order created",
		slog.String("order_number", order.OrderNumber),
		slog.String("product", params.ProductSlug),
		slog.Int("quantity", params.Selection.Quantity),
		slog.Float64("final_total", breakdown.FinalTotal),
	)

	return s.orderDetail(order, params.ProductSlug)
}

func (s *orderService) GetOrderByNumber(ctx context.Context, orderNumber string) (*OrderDetail, error) {
	const op = "order.get"

	order, err := s.repo.GetOrderByNumber(ctx, orderNumber)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, domain.Errorf(domain.ENOTFOUND, op, "order %q not found", orderNumber)
		}
		return nil, domain.WrapError(err, domain.EINTERNAL, op, "failed to load order")
	}
	return s.orderDetail(order, s.productSlug(ctx, order.ProductID))
}

func (s *orderService) ConfirmPayment(ctx context.Context, params ConfirmPaymentParams) (*OrderDetail, error) {
	const op = "order.confirm_payment"

	if s.metrics != nil {
		s.metrics.PaymentAttempts.WithLabelValues("razorpay").Inc()
	}

	order, err := s.repo.GetOrderByNumber(ctx, params.OrderNumber)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, domain.Errorf(domain.ENOTFOUND, op, "order %q not found", params.OrderNumber)
		}
		return nil, domain.WrapError(err, domain.EINTERNAL, op, "failed to load order")
	}

	if !order.GatewayOrderID.Valid || order.GatewayOrderID.String != params.GatewayOrderID {
		s.paymentFailed("order_mismatch")
		return nil, domain.Errorf(domain.EPAYMENT, op, "payment does not belong to this order")
	}

	if !s.gateway.VerifyPaymentSignature(params.GatewayOrderID, params.GatewayPaymentID, params.Signature) {
		s.paymentFailed("bad_signature")
		s.logger.Warn("payment signature verification failed",
			slog.String("order_number", params.OrderNumber),
			slog.String("gateway_order_id", params.GatewayOrderID),
		)
		return nil, domain.Errorf(domain.EPAYMENT, op, "payment signature verification failed")
	}

	paid, err := s.repo.MarkOrderPaid(ctx, repository.MarkOrderPaidParams{
		OrderNumber:      params.OrderNumber,
		GatewayPaymentID: params.GatewayPaymentID,
	})
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			// Guarded update matched nothing: the order already left pending.
			s.paymentFailed("not_pending")
			return nil, domain.Errorf(domain.ECONFLICT, op, "order %q is not awaiting payment", params.OrderNumber)
		}
		return nil, domain.WrapError(err, domain.EINTERNAL, op, "failed to record payment")
	}

	if s.metrics != nil {
		s.metrics.PaymentSucceeded.WithLabelValues("razorpay").Inc()
		s.metrics.OrderStatusChanged.WithLabelValues(domain.OrderStatusPending, domain.OrderStatusPaid).Inc()
	}
	s.logger.Info("payment confirmed",
		slog.String("order_number", paid.OrderNumber),
		slog.String("gateway_payment_id", params.GatewayPaymentID),
	)

	return s.orderDetail(paid, s.productSlug(ctx, paid.ProductID))
}

func (s *orderService) UpdateStatus(ctx context.Context, orderNumber, newStatus string) (*OrderDetail, error) {
	const op = "order.update_status"

	if !domain.ValidOrderStatus(newStatus) {
		return nil, domain.Errorf(domain.EINVALID, op, "unknown order status %q", newStatus)
	}

	order, err := s.repo.GetOrderByNumber(ctx, orderNumber)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, domain.Errorf(domain.ENOTFOUND, op, "order %q not found", orderNumber)
		}
		return nil, domain.WrapError(err, domain.EINTERNAL, op, "failed to load order")
	}

	if !domain.CanTransitionOrder(order.Status, newStatus) {
		return nil, domain.Errorf(domain.EINVALID, op, "cannot move order from %s to %s", order.Status, newStatus)
	}

	updated, err := s.repo.UpdateOrderStatus(ctx, repository.UpdateOrderStatusParams{
		OrderNumber: orderNumber,
		Status:      newStatus,
	})
	if err != nil {
		return nil, domain.WrapError(err, domain.EINTERNAL, op, "failed to update order status")
	}

	if s.metrics != nil {
		s.metrics.OrderStatusChanged.WithLabelValues(order.Status, newStatus).Inc()
	}
	s.logger.Info("order status changed",
		slog.String("order_number", orderNumber),
		slog.String("from", order.Status),
		slog.String("to", newStatus),
	)

	return s.orderDetail(updated, s.productSlug(ctx, updated.ProductID))
}

func (s *orderService) paymentFailed(reason string) {
	if s.metrics != nil {
		s.metrics.PaymentFailed.WithLabelValues("razorpay", reason).Inc()
	}
}

// productSlug resolves an order's product slug for display. Lookup failure
// degrades to an empty slug rather than failing the order read.
func (s *orderService) productSlug(ctx context.Context, productID pgtype.UUID) string {
	product, err := s.repo.GetProduct(ctx, productID)
	if err != nil {
		return ""
	}
	return product.Slug
}

func (s *orderService) orderDetail(order repository.Order, productSlug string) (*OrderDetail, error) {
	var breakdown pricing.Breakdown
	if len(order.Breakdown) > 0 {
		if err := json.Unmarshal(order.Breakdown, &breakdown); err != nil {
			return nil, domain.WrapError(err, domain.EINTERNAL, "order.decode", "corrupt breakdown snapshot")
		}
	}
	return &OrderDetail{
		OrderNumber:    order.OrderNumber,
		ProductSlug:    productSlug,
		Status:         order.Status,
		Quantity:       int(order.Quantity),
		Breakdown:      breakdown,
		FinalTotal:     order.FinalTotal,
		DisplayTotal:   currency.FormatINR(order.FinalTotal),
		Currency:       order.Currency,
		GatewayOrderID: order.GatewayOrderID.String,
		NeedDesigner:   order.NeedDesigner,
		ArtworkURL:     order.ArtworkURL.String,
		CreatedAt:      order.CreatedAt.Time,
	}, nil
}

// generateOrderNumber builds a customer-facing order number like
// ORD-20260827-4F2A1C. Uniqueness is enforced by the database constraint.
func generateOrderNumber() string {
	var suffix [3]byte
	_, _ = rand.Read(suffix[:])
	return fmt.Sprintf("ORD-%s-%X", time.Now().UTC().Format("20060102"), suffix)
}
