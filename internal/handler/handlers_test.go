package handler_test

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/print24/print24/internal/domain"
	"github.com/print24/print24/internal/pricing"
	"github.com/print24/print24/internal/router"
	"github.com/print24/print24/internal/routes"
	"github.com/print24/print24/internal/service"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newAPI(deps routes.Deps) *router.Router {
	if deps.Products == nil {
		deps.Products = &service.MockProductService{}
	}
	if deps.Quotes == nil {
		deps.Quotes = &service.MockQuoteService{}
	}
	if deps.Orders == nil {
		deps.Orders = &service.MockOrderService{}
	}
	r := router.New()
	routes.Register(r, deps)
	return r
}

func doJSON(t *testing.T, api http.Handler, method, path, body string) *httptest.ResponseRecorder {
	t.Helper()
	var req *http.Request
	if body != "" {
		req = httptest.NewRequest(method, path, strings.NewReader(body))
		req.Header.Set("Content-Type", "application/json")
	} else {
		req = httptest.NewRequest(method, path, nil)
	}
	rec := httptest.NewRecorder()
	api.ServeHTTP(rec, req)
	return rec
}

func Test_QuoteEndpoint(t *testing.T) {
	var gotSlug string
	var gotSel pricing.Selection
	api := newAPI(routes.Deps{
		Quotes: &service.MockQuoteService{
			QuoteFunc: func(ctx context.Context, productSlug string, sel pricing.Selection) (*service.Quote, error) {
				gotSlug = productSlug
				gotSel = sel
				return &service.Quote{
					ProductSlug:  productSlug,
					Breakdown:    pricing.Breakdown{FinalTotal: 590},
					DisplayTotal: "₹590.00",
				}, nil
			},
		},
	})

	rec := doJSON(t, api, http.MethodPost, "/api/quote", `{
		"productSlug": "business-cards",
		"quantity": 5,
		"finish": "Matte",
		"selectedOptions": [{"name": "Lamination", "priceAdd": 5}]
	}`)

	require.Equal(t, http.StatusOK, rec.Code)
	assert.Equal(t, "business-cards", gotSlug)
	assert.Equal(t, 5, gotSel.Quantity)
	assert.Equal(t, "Matte", gotSel.Finish)
	require.Len(t, gotSel.SelectedOptions, 1)

	var quote service.Quote
	require.NoError(t, json.NewDecoder(rec.Body).Decode(&quote))
	assert.Equal(t, float64(590), quote.Breakdown.FinalTotal)
	assert.Equal(t, "₹590.00", quote.DisplayTotal)
}

func Test_QuoteEndpoint_Validation(t *testing.T) {
	tests := []struct {
		name string
		body string
	}{
		{"missing product", `{"quantity": 5}`},
		{"zero quantity", `{"productSlug": "business-cards", "quantity": 0}`},
		{"malformed json", `{"productSlug":`},
		{"unknown field", `{"productSlug": "x", "quantity": 1, "finalTotal": 0.01}`},
	}

	api := newAPI(routes.Deps{})
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			rec := doJSON(t, api, http.MethodPost, "/api/quote", tt.body)
			assert.Equal(t, http.StatusBadRequest, rec.Code)

			var body struct {
				Error struct{ Code string }
			}
			require.NoError(t, json.NewDecoder(rec.Body).Decode(&body))
			assert.Equal(t, domain.EINVALID, body.Error.Code)
		})
	}
}

func Test_ProductEndpoints(t *testing.T) {
	api := newAPI(routes.Deps{
		Products: &service.MockProductService{
			ListProductsFunc: func(ctx context.Context) ([]service.ProductSummary, error) {
				return []service.ProductSummary{{Slug: "business-cards", Name: "Business Cards", BasePrice: 2}}, nil
			},
			GetProductFunc: func(ctx context.Context, slug string) (*service.ProductDetail, error) {
				return &service.ProductDetail{Slug: slug, Pricing: pricing.Config{BasePrice: 2}}, nil
			},
		},
	})

	rec := doJSON(t, api, http.MethodGet, "/api/products", "")
	require.Equal(t, http.StatusOK, rec.Code)
	assert.Contains(t, rec.Body.String(), `"business-cards"`)

	rec = doJSON(t, api, http.MethodGet, "/api/products/business-cards", "")
	require.Equal(t, http.StatusOK, rec.Code)

	var detail service.ProductDetail
	require.NoError(t, json.NewDecoder(rec.Body).Decode(&detail))
	assert.Equal(t, "business-cards", detail.Slug)
	assert.Equal(t, float64(2), detail.Pricing.BasePrice)
}

func Test_ProductEndpoint_NotFound(t *testing.T) {
	api := newAPI(routes.Deps{})

	rec := doJSON(t, api, http.MethodGet, "/api/products/missing", "")

	assert.Equal(t, http.StatusNotFound, rec.Code)
	assert.Contains(t, rec.Body.String(), domain.ENOTFOUND)
}

func Test_CreateOrderEndpoint(t *testing.T) {
	var gotParams service.CreateOrderParams
	api := newAPI(routes.Deps{
		Orders: &service.MockOrderService{
			CreateOrderFunc: func(ctx context.Context, params service.CreateOrderParams) (*service.OrderDetail, error) {
				gotParams = params
				return &service.OrderDetail{
					OrderNumber: "ORD-20260827-AB12CD",
					Status:      domain.OrderStatusPending,
					FinalTotal:  5900,
				}, nil
			},
		},
	})

	rec := doJSON(t, api, http.MethodPost, "/api/orders", `{
		"productSlug": "business-cards",
		"quantity": 50,
		"artworkUrl": "https://cdn.example.com/artwork/42.pdf",
		"clientTotal": 5900
	}`)

	require.Equal(t, http.StatusCreated, rec.Code)
	assert.Equal(t, "business-cards", gotParams.ProductSlug)
	assert.Equal(t, 50, gotParams.Selection.Quantity)
	assert.Equal(t, "https://cdn.example.com/artwork/42.pdf", gotParams.ArtworkURL)
	require.NotNil(t, gotParams.ClientTotal)
	assert.Equal(t, float64(5900), *gotParams.ClientTotal)
}

func Test_CreateOrderEndpoint_BadArtworkURL(t *testing.T) {
	api := newAPI(routes.Deps{})

	rec := doJSON(t, api, http.MethodPost, "/api/orders", `{
		"productSlug": "business-cards",
		"quantity": 50,
		"artworkUrl": "not a url"
	}`)

	assert.Equal(t, http.StatusBadRequest, rec.Code)
}

func Test_ConfirmPaymentEndpoint(t *testing.T) {
	var gotParams service.ConfirmPaymentParams
	api := newAPI(routes.Deps{
		Orders: &service.MockOrderService{
			ConfirmPaymentFunc: func(ctx context.Context, params service.ConfirmPaymentParams) (*service.OrderDetail, error) {
				gotParams = params
				return &service.OrderDetail{OrderNumber: params.OrderNumber, Status: domain.OrderStatusPaid}, nil
			},
		},
	})

	rec := doJSON(t, api, http.MethodPost, "/api/orders/ORD-20260827-AB12CD/payment", `{
		"gatewayOrderId": "order_rzp1",
		"gatewayPaymentId": "pay_1",
		"signature": "deadbeef"
	}`)

	require.Equal(t, http.StatusOK, rec.Code)
	assert.Equal(t, "ORD-20260827-AB12CD", gotParams.OrderNumber)
	assert.Equal(t, "order_rzp1", gotParams.GatewayOrderID)
	assert.Contains(t, rec.Body.String(), domain.OrderStatusPaid)
}

func Test_ConfirmPaymentEndpoint_StatusMapping(t *testing.T) {
	tests := []struct {
		name       string
		err        error
		wantStatus int
	}{
		{"bad signature", domain.Errorf(domain.EPAYMENT, "t", "signature verification failed"), http.StatusPaymentRequired},
		{"double confirm", domain.Errorf(domain.ECONFLICT, "t", "order is not awaiting payment"), http.StatusConflict},
		{"unknown order", domain.Errorf(domain.ENOTFOUND, "t", "order not found"), http.StatusNotFound},
		{"database down", domain.Errorf(domain.EINTERNAL, "t", "boom"), http.StatusInternalServerError},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			api := newAPI(routes.Deps{
				Orders: &service.MockOrderService{
					ConfirmPaymentFunc: func(ctx context.Context, params service.ConfirmPaymentParams) (*service.OrderDetail, error) {
						return nil, tt.err
					},
				},
			})

			rec := doJSON(t, api, http.MethodPost, "/api/orders/ORD-1/payment", `{
				"gatewayOrderId": "o", "gatewayPaymentId": "p", "signature": "s"
			}`)

			assert.Equal(t, tt.wantStatus, rec.Code)
			if tt.wantStatus == http.StatusInternalServerError {
				assert.NotContains(t, rec.Body.String(), "boom", "internal details must not leak")
			}
		})
	}
}

func Test_AdminPricingEndpoint(t *testing.T) {
	var gotCfg pricing.Config
	api := newAPI(routes.Deps{
		Products: &service.MockProductService{
			UpdatePricingFunc: func(ctx context.Context, slug string, cfg pricing.Config) (*service.ProductDetail, error) {
				gotCfg = cfg
				return &service.ProductDetail{Slug: slug, Pricing: cfg}, nil
			},
		},
	})

	rec := doJSON(t, api, http.MethodPut, "/api/admin/products/business-cards/pricing", `{
		"basePrice": 3,
		"pricingType": "rangewise",
		"rangeWiseQuantities": [
			{"min": 1, "max": 499, "priceMultiplier": 1.0},
			{"min": 500, "priceMultiplier": 0.8}
		]
	}`)

	require.Equal(t, http.StatusOK, rec.Code)
	assert.Equal(t, float64(3), gotCfg.BasePrice)
	require.Len(t, gotCfg.RangeWiseQuantities, 2)
	assert.Nil(t, gotCfg.RangeWiseQuantities[1].Max)
}

func Test_AdminOrderStatusEndpoint(t *testing.T) {
	api := newAPI(routes.Deps{
		Orders: &service.MockOrderService{
			UpdateStatusFunc: func(ctx context.Context, orderNumber, newStatus string) (*service.OrderDetail, error) {
				return &service.OrderDetail{OrderNumber: orderNumber, Status: newStatus}, nil
			},
		},
	})

	rec := doJSON(t, api, http.MethodPatch, "/api/admin/orders/ORD-1/status", `{"status": "in_production"}`)

	require.Equal(t, http.StatusOK, rec.Code)
	assert.Contains(t, rec.Body.String(), "in_production")

	rec = doJSON(t, api, http.MethodPatch, "/api/admin/orders/ORD-1/status", `{}`)
	assert.Equal(t, http.StatusBadRequest, rec.Code)
}

func Test_HealthEndpoint(t *testing.T) {
	api := newAPI(routes.Deps{})

	rec := doJSON(t, api, http.MethodGet, "/health", "")

	assert.Equal(t, http.StatusOK, rec.Code)
	assert.Equal(t, "ok", rec.Body.String())
}
