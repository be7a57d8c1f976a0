package handler

import (
	"net/http"

	"github.com/print24/print24/internal/service"
)

// ProductHandler serves the storefront catalog.
type ProductHandler struct {
	products service.ProductService
}

// NewProductHandler creates a new ProductHandler instance.
func NewProductHandler(products service.ProductService) *ProductHandler {
	return &ProductHandler{products: products}
}

// List handles GET /api/products.
func (h *ProductHandler) List(w http.ResponseWriter, r *http.Request) {
	items, err := h.products.ListProducts(r.Context())
	if err != nil {
		respondError(w, r, err)
		return
	}
	respondJSON(w, http.StatusOK, map[string]any{"products": items})
}

// Get handles GET /api/products/{slug}. The response includes the pricing
// snapshot the client-side preview calculator runs against.
func (h *ProductHandler) Get(w http.ResponseWriter, r *http.Request) {
	detail, err := h.products.GetProduct(r.Context(), r.PathValue("slug"))
	if err != nil {
		respondError(w, r, err)
		return
	}
	respondJSON(w, http.StatusOK, detail)
}
