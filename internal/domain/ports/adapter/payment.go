package adapter

import (
	"context"

	"checkout-backend/internal/domain/model"
)

// PaymentGateway creates orders with the upstream payment provider and derives
// callback signatures from the provider's shared secret.
type PaymentGateway interface {
	Name() string
	// CreateOrder posts an order-creation request and returns the provider's
	// JSON response verbatim. Non-2xx replies surface as *domain.GatewayError
	// so handlers can forward status and body untouched.
	CreateOrder(ctx context.Context, req *model.OrderRequest) ([]byte, error)
	// ExpectedSignature returns the hex HMAC-SHA256 digest of
	// "orderID|paymentID" under the gateway shared secret. Returns
	// domain.ErrNotConfigured when no secret is set.
	ExpectedSignature(orderID, paymentID string) (string, error)
}
