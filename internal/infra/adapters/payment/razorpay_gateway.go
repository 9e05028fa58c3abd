// File: internal/infra/adapters/payment/razorpay_gateway.go
package payment

import (
	"bytes"
	"context"
	"crypto/hmac"
	"crypto/sha256"
	"encoding/hex"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"time"

	"checkout-backend/internal/domain"
	"checkout-backend/internal/domain/model"
	"checkout-backend/internal/domain/ports/adapter"
)

var _ adapter.PaymentGateway = (*RazorpayGateway)(nil)

const defaultBaseURL = "https://api.razorpay.com/v1"

// RazorpayGateway implements adapter.PaymentGateway against the Razorpay REST
// API. Orders are created with Basic auth from the key pair; the key secret is
// also the shared secret for checkout callback signatures.
type RazorpayGateway struct {
	keyID   string
	secret  string
	baseURL string
	client  *http.Client
}

// NewRazorpayGateway accepts possibly-empty credentials; calls made without
// them return domain.ErrNotConfigured instead of failing construction, so the
// endpoints degrade to 500 rather than blocking startup.
func NewRazorpayGateway(keyID, keySecret string) *RazorpayGateway {
	return &RazorpayGateway{
		keyID:   keyID,
		secret:  keySecret,
		baseURL: defaultBaseURL,
		client:  &http.Client{Timeout: 10 * time.Second},
	}
}

// SetBaseURL overrides the API endpoint (tests, proxies).
func (g *RazorpayGateway) SetBaseURL(u string) {
	if u != "" {
		g.baseURL = u
	}
}

func (g *RazorpayGateway) Name() string { return "razorpay" }

// CreateOrder posts /orders and returns the provider's JSON body verbatim.
// payment_capture=1 tells the gateway to auto-authorize capture; plan and
// inviteId travel in notes for reconciliation on the provider's side.
func (g *RazorpayGateway) CreateOrder(ctx context.Context, req *model.OrderRequest) ([]byte, error) {
	if g.keyID == "" || g.secret == "" {
		return nil, domain.ErrNotConfigured
	}
	payload := map[string]any{
		"amount":          req.Amount,
		"currency":        req.Currency,
		"receipt":         req.Receipt,
		"payment_capture": 1,
		"notes": map[string]string{
			"plan":     req.Plan,
			"inviteId": req.InviteID,
		},
	}
	b, _ := json.Marshal(payload)
	httpReq, err := http.NewRequestWithContext(ctx, http.MethodPost, g.baseURL+"/orders", bytes.NewReader(b))
	if err != nil {
		return nil, err
	}
	httpReq.Header.Set("Content-Type", "application/json")
	httpReq.SetBasicAuth(g.keyID, g.secret)

	resp, err := g.client.Do(httpReq)
	if err != nil {
		return nil, fmt.Errorf("razorpay order request: %w", err)
	}
	defer resp.Body.Close()

	body, err := io.ReadAll(resp.Body)
	if err != nil {
		return nil, fmt.Errorf("razorpay order response: %w", err)
	}
	if resp.StatusCode < 200 || resp.StatusCode >= 300 {
		return nil, &domain.GatewayError{Status: resp.StatusCode, Body: body}
	}
	return body, nil
}

// ExpectedSignature returns hex(HMAC-SHA256(secret, orderID|paymentID)), the
// value Razorpay sends as razorpay_signature after a successful checkout.
func (g *RazorpayGateway) ExpectedSignature(orderID, paymentID string) (string, error) {
	if g.secret == "" {
		return "", domain.ErrNotConfigured
	}
	mac := hmac.New(sha256.New, []byte(g.secret))
	mac.Write([]byte(orderID + "|" + paymentID))
	return hex.EncodeToString(mac.Sum(nil)), nil
}
