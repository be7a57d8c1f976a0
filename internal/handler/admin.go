package handler

import (
	"net/http"

	"github.com/print24/print24/internal/pricing"
	"github.com/print24/print24/internal/service"
)

// AdminHandler serves the back-office surface: pricing maintenance and
// order fulfillment.
type AdminHandler struct {
	products service.ProductService
	orders   service.OrderService
}

// NewAdminHandler creates a new AdminHandler instance.
func NewAdminHandler(products service.ProductService, orders service.OrderService) *AdminHandler {
	return &AdminHandler{products: products, orders: orders}
}

// UpdatePricing handles PUT /api/admin/products/{slug}/pricing. The body is
// a full pricing snapshot; partial updates are not supported.
func (h *AdminHandler) UpdatePricing(w http.ResponseWriter, r *http.Request) {
	var cfg pricing.Config
	if err := decodeJSON(r, &cfg); err != nil {
		respondError(w, r, err)
		return
	}

	detail, err := h.products.UpdatePricing(r.Context(), r.PathValue("slug"), cfg)
	if err != nil {
		respondError(w, r, err)
		return
	}
	respondJSON(w, http.StatusOK, detail)
}

type updateStatusRequest struct {
	Status string `json:"status" validate:"required"`
}

// UpdateOrderStatus handles PATCH /api/admin/orders/{number}/status.
func (h *AdminHandler) UpdateOrderStatus(w http.ResponseWriter, r *http.Request) {
	var req updateStatusRequest
	if err := decodeJSON(r, &req); err != nil {
		respondError(w, r, err)
		return
	}

	detail, err := h.orders.UpdateStatus(r.Context(), r.PathValue("number"), req.Status)
	if err != nil {
		respondError(w, r, err)
		return
	}
	respondJSON(w, http.StatusOK, detail)
}
