package handler

import (
	"net/http"

	"github.com/print24/print24/internal/pricing"
	"github.com/print24/print24/internal/service"
)

// QuoteHandler serves authoritative price breakdowns.
type QuoteHandler struct {
	quotes service.QuoteService
}

// NewQuoteHandler creates a new QuoteHandler instance.
func NewQuoteHandler(quotes service.QuoteService) *QuoteHandler {
	return &QuoteHandler{quotes: quotes}
}

type quoteRequest struct {
	ProductSlug       string                     `json:"productSlug" validate:"required"`
	Quantity          int                        `json:"quantity" validate:"required,gt=0"`
	SelectedOptions   []pricing.Option           `json:"selectedOptions"`
	Finish            string                     `json:"finish"`
	DeliverySpeed     string                     `json:"deliverySpeed"`
	DynamicAttributes []pricing.DynamicAttribute `json:"selectedDynamicAttributes"`
}

func (req quoteRequest) selection() pricing.Selection {
	return pricing.Selection{
		Quantity:          req.Quantity,
		SelectedOptions:   req.SelectedOptions,
		Finish:            req.Finish,
		DeliverySpeed:     req.DeliverySpeed,
		DynamicAttributes: req.DynamicAttributes,
	}
}

// Compute handles POST /api/quote.
func (h *QuoteHandler) Compute(w http.ResponseWriter, r *http.Request) {
	var req quoteRequest
	if err := decodeJSON(r, &req); err != nil {
		respondError(w, r, err)
		return
	}

	quote, err := h.quotes.Quote(r.Context(), req.ProductSlug, req.selection())
	if err != nil {
		respondError(w, r, err)
		return
	}
	respondJSON(w, http.StatusOK, quote)
}
