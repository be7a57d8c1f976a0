// Package routes wires the HTTP API onto the router.
package routes

import (
	"net/http"

	"github.com/print24/print24/internal/handler"
	"github.com/print24/print24/internal/router"
	"github.com/print24/print24/internal/service"
	"github.com/prometheus/client_golang/prometheus/promhttp"
)

// Deps carries everything route registration needs.
type Deps struct {
	Products service.ProductService
	Quotes   service.QuoteService
	Orders   service.OrderService
}

// Register mounts all API routes. Middleware is the router's concern; this
// only binds patterns to handlers.
func Register(r *router.Router, deps Deps) {
	products := handler.NewProductHandler(deps.Products)
	quotes := handler.NewQuoteHandler(deps.Quotes)
	orders := handler.NewOrderHandler(deps.Orders)
	admin := handler.NewAdminHandler(deps.Products, deps.Orders)

	// Storefront
	r.Get("/api/products", products.List)
	r.Get("/api/products/{slug}", products.Get)
	r.Post("/api/quote", quotes.Compute)
	r.Post("/api/orders", orders.Create)
	r.Get("/api/orders/{number}", orders.Get)
	r.Post("/api/orders/{number}/payment", orders.ConfirmPayment)

	// Back office
	r.Put("/api/admin/products/{slug}/pricing", admin.UpdatePricing)
	r.Patch("/api/admin/orders/{number}/status", admin.UpdateOrderStatus)

	// Operational
	r.Get("/health", func(w http.ResponseWriter, _ *http.Request) {
		w.WriteHeader(http.StatusOK)
		_, _ = w.Write([]byte("ok"))
	})
	r.Handle(http.MethodGet, "/metrics", promhttp.Handler())
}
