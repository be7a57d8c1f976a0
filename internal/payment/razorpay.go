package payment

import (
	"bytes"
	"context"
	"crypto/hmac"
	"crypto/sha256"
	"encoding/hex"
	"encoding/json"
	"fmt"
	"net/http"
	"time"
)

// RazorpayProvider talks to the Razorpay Orders API. Razorpay ships no Go
// SDK, so this is a thin client over its REST surface: basic auth with the
// key pair, JSON bodies, amounts in paise.
type RazorpayProvider struct {
	keyID     string
	keySecret string
	baseURL   string
	client    *http.Client
}

// RazorpayConfig holds gateway credentials. BaseURL is overridable so
// tests can point at a stub server.
type RazorpayConfig struct {
	KeyID     string
	KeySecret string
	BaseURL   string
}

// NewRazorpayProvider creates a Razorpay-backed provider.
func NewRazorpayProvider(cfg RazorpayConfig) (*RazorpayProvider, error) {
	if cfg.KeyID == "" || cfg.KeySecret == "" {
		return nil, fmt.Errorf("razorpay key pair is required")
	}
	baseURL := cfg.BaseURL
	if baseURL == "" {
		baseURL = "https://api.razorpay.com"
	}
	return &RazorpayProvider{
		keyID:     cfg.KeyID,
		keySecret: cfg.KeySecret,
		baseURL:   baseURL,
		client:    &http.Client{Timeout: 30 * time.Second},
	}, nil
}

type razorpayOrderRequest struct {
	Amount   int64  `json:"amount"`
	Currency string `json:"currency"`
	Receipt  string `json:"receipt"`
}

type razorpayOrderResponse struct {
	ID       string `json:"id"`
	Amount   int64  `json:"amount"`
	Currency string `json:"currency"`
	Status   string `json:"status"`
}

// CreateGatewayOrder registers an order via POST /v1/orders.
func (p *RazorpayProvider) CreateGatewayOrder(ctx context.Context, params CreateGatewayOrderParams) (*GatewayOrder, error) {
	body, err := json.Marshal(razorpayOrderRequest{
		Amount:   params.AmountPaise,
		Currency: params.Currency,
		Receipt:  params.Receipt,
	})
	if err != nil {
		return nil, fmt.Errorf("failed to encode order request: %w", err)
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodPost, p.baseURL+"/v1/orders", bytes.NewReader(body))
	if err != nil {
		return nil, fmt.Errorf("failed to build order request: %w", err)
	}
	req.SetBasicAuth(p.keyID, p.keySecret)
	req.Header.Set("Content-Type", "application/json")

	resp, err := p.client.Do(req)
	if err != nil {
		return nil, fmt.Errorf("%w: %v", ErrGatewayUnavailable, err)
	}
	defer resp.Body.Close()

	switch {
	case resp.StatusCode >= 500:
		return nil, fmt.Errorf("%w: status %d", ErrGatewayUnavailable, resp.StatusCode)
	case resp.StatusCode >= 400:
		return nil, fmt.Errorf("%w: status %d", ErrGatewayRejected, resp.StatusCode)
	}

	var order razorpayOrderResponse
	if err := json.NewDecoder(resp.Body).Decode(&order); err != nil {
		return nil, fmt.Errorf("failed to decode order response: %w", err)
	}

	return &GatewayOrder{
		ID:          order.ID,
		AmountPaise: order.Amount,
		Currency:    order.Currency,
		Status:      order.Status,
	}, nil
}

// VerifyPaymentSignature checks Razorpay's checkout signature:
// HMAC-SHA256 of "<order_id>|<payment_id>" keyed with the secret.
func (p *RazorpayProvider) VerifyPaymentSignature(gatewayOrderID, gatewayPaymentID, signature string) bool {
	mac := hmac.New(sha256.New, []byte(p.keySecret))
	mac.Write([]byte(gatewayOrderID + "|" + gatewayPaymentID))
	expected := hex.EncodeToString(mac.Sum(nil))
	return hmac.Equal([]byte(expected), []byte(signature))
}
