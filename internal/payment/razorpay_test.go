package payment_test

import (
	"context"
	"crypto/hmac"
	"crypto/sha256"
	"encoding/hex"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/print24/print24/internal/payment"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func Test_RazorpayProvider_CreateGatewayOrder(t *testing.T) {
	var gotAuthUser string
	var gotBody map[string]any

	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, http.MethodPost, r.Method)
		assert.Equal(t, "/v1/orders", r.URL.Path)
		gotAuthUser, _, _ = r.BasicAuth()
		_ = json.NewDecoder(r.Body).Decode(&gotBody)

		w.Header().Set("Content-Type", "application/json")
		_ = json.NewEncoder(w).Encode(map[string]any{
			"id":       "order_ABC123",
			"amount":   gotBody["amount"],
			"currency": "INR",
			"status":   "created",
		})
	}))
	defer srv.Close()

	p, err := payment.NewRazorpayProvider(payment.RazorpayConfig{
		KeyID:     "rzp_test_key",
		KeySecret: "secret",
		BaseURL:   srv.URL,
	})
	require.NoError(t, err)

	order, err := p.CreateGatewayOrder(context.Background(), payment.CreateGatewayOrderParams{
		AmountPaise: 590000,
		Currency:    "INR",
		Receipt:     "ORD-20260101-0001",
	})

	require.NoError(t, err)
	assert.Equal(t, "order_ABC123", order.ID)
	assert.Equal(t, int64(590000), order.AmountPaise)
	assert.Equal(t, "created", order.Status)
	assert.Equal(t, "rzp_test_key", gotAuthUser)
	assert.Equal(t, float64(590000), gotBody["amount"], "amount must be sent in paise")
	assert.Equal(t, "ORD-20260101-0001", gotBody["receipt"])
}

func Test_RazorpayProvider_GatewayErrors(t *testing.T) {
	tests := []struct {
		name    string
		status  int
		wantErr error
	}{
		{"client error is rejection", http.StatusBadRequest, payment.ErrGatewayRejected},
		{"server error is unavailable", http.StatusBadGateway, payment.ErrGatewayUnavailable},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
				w.WriteHeader(tt.status)
			}))
			defer srv.Close()

			p, err := payment.NewRazorpayProvider(payment.RazorpayConfig{
				KeyID: "k", KeySecret: "s", BaseURL: srv.URL,
			})
			require.NoError(t, err)

			_, err = p.CreateGatewayOrder(context.Background(), payment.CreateGatewayOrderParams{
				AmountPaise: 100, Currency: "INR", Receipt: "ORD-1",
			})
			assert.ErrorIs(t, err, tt.wantErr)
		})
	}
}

func Test_RazorpayProvider_VerifyPaymentSignature(t *testing.T) {
	p, err := payment.NewRazorpayProvider(payment.RazorpayConfig{
		KeyID: "k", KeySecret: "shared-secret",
	})
	require.NoError(t, err)

	mac := hmac.New(sha256.New, []byte("shared-secret"))
	mac.Write([]byte("order_1|pay_1"))
	valid := hex.EncodeToString(mac.Sum(nil))

	assert.True(t, p.VerifyPaymentSignature("order_1", "pay_1", valid))
	assert.False(t, p.VerifyPaymentSignature("order_1", "pay_1", "forged"))
	assert.False(t, p.VerifyPaymentSignature("order_1", "pay_2", valid), "signature is bound to the payment ID")
}

func Test_RazorpayProvider_RequiresKeyPair(t *testing.T) {
	_, err := payment.NewRazorpayProvider(payment.RazorpayConfig{KeyID: "k"})
	assert.Error(t, err)
}

func Test_ToPaise(t *testing.T) {
	tests := []struct {
		rupees float64
		paise  int64
	}{
		{118, 11800},
		{324.5, 32450},
		{5900, 590000},
		{0.005, 1},   // rounds half up
		{99.994, 9999},
	}

	for _, tt := range tests {
		assert.Equal(t, tt.paise, payment.ToPaise(tt.rupees), "rupees %v", tt.rupees)
	}
}
