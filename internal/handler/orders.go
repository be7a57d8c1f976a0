package handler

import (
	"net/http"

	"github.com/print24/print24/internal/pricing"
	"github.com/print24/print24/internal/service"
)

// OrderHandler serves order placement, lookup, and payment confirmation.
type OrderHandler struct {
	orders service.OrderService
}

// NewOrderHandler creates a new OrderHandler instance.
func NewOrderHandler(orders service.OrderService) *OrderHandler {
	return &OrderHandler{orders: orders}
}

type createOrderRequest struct {
	ProductSlug       string                     `json:"productSlug" validate:"required"`
	Quantity          int                        `json:"quantity" validate:"required,gt=0"`
	SelectedOptions   []pricing.Option           `json:"selectedOptions"`
	Finish            string                     `json:"finish"`
	DeliverySpeed     string                     `json:"deliverySpeed"`
	DynamicAttributes []pricing.DynamicAttribute `json:"selectedDynamicAttributes"`
	NeedDesigner      bool                       `json:"needDesigner"`
	ArtworkURL        string                     `json:"artworkUrl" validate:"omitempty,url"`
	ClientTotal       *float64                   `json:"clientTotal"`
}

// Create handles POST /api/orders.
func (h *OrderHandler) Create(w http.ResponseWriter, r *http.Request) {
	var req createOrderRequest
	if err := decodeJSON(r, &req); err != nil {
		respondError(w, r, err)
		return
	}

	detail, err := h.orders.CreateOrder(r.Context(), service.CreateOrderParams{
		ProductSlug: req.ProductSlug,
		Selection: pricing.Selection{
			Quantity:          req.Quantity,
			SelectedOptions:   req.SelectedOptions,
			Finish:            req.Finish,
			DeliverySpeed:     req.DeliverySpeed,
			DynamicAttributes: req.DynamicAttributes,
		},
		NeedDesigner: req.NeedDesigner,
		ArtworkURL:   req.ArtworkURL,
		ClientTotal:  req.ClientTotal,
	})
	if err != nil {
		respondError(w, r, err)
		return
	}
	respondJSON(w, http.StatusCreated, detail)
}

// Get handles GET /api/orders/{number}.
func (h *OrderHandler) Get(w http.ResponseWriter, r *http.Request) {
	detail, err := h.orders.GetOrderByNumber(r.Context(), r.PathValue("number"))
	if err != nil {
		respondError(w, r, err)
		return
	}
	respondJSON(w, http.StatusOK, detail)
}

type confirmPaymentRequest struct {
	GatewayOrderID   string `json:"gatewayOrderId" validate:"required"`
	GatewayPaymentID string `json:"gatewayPaymentId" validate:"required"`
	Signature        string `json:"signature" validate:"required"`
}

// ConfirmPayment handles POST /api/orders/{number}/payment, the checkout
// callback that carries the gateway's signature.
func (h *OrderHandler) ConfirmPayment(w http.ResponseWriter, r *http.Request) {
	var req confirmPaymentRequest
	if err := decodeJSON(r, &req); err != nil {
		respondError(w, r, err)
		return
	}

	detail, err := h.orders.ConfirmPayment(r.Context(), service.ConfirmPaymentParams{
		OrderNumber:      r.PathValue("number"),
		GatewayOrderID:   req.GatewayOrderID,
		GatewayPaymentID: req.GatewayPaymentID,
		Signature:        req.Signature,
	})
	if err != nil {
		respondError(w, r, err)
		return
	}
	respondJSON(w, http.StatusOK, detail)
}
