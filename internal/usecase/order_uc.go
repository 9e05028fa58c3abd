// File: internal/usecase/order_uc.go
package usecase

import (
	"context"
	"fmt"

	"github.com/oklog/ulid/v2"
	"github.com/rs/zerolog"

	"checkout-backend/internal/domain"
	"checkout-backend/internal/domain/model"
	"checkout-backend/internal/domain/ports/adapter"
)

// Compile-time check
var _ OrderUseCase = (*orderUC)(nil)

type OrderUseCase interface {
	// Create forwards an order-creation request to the payment gateway and
	// returns the gateway's JSON order object verbatim. Single attempt; the
	// caller owns idempotency via distinct receipts.
	Create(ctx context.Context, req *model.OrderRequest) ([]byte, error)
}

type orderUC struct {
	gateway adapter.PaymentGateway
	log     *zerolog.Logger
}

func NewOrderUseCase(gateway adapter.PaymentGateway, logger *zerolog.Logger) *orderUC {
	return &orderUC{gateway: gateway, log: logger}
}

func (u *orderUC) Create(ctx context.Context, req *model.OrderRequest) ([]byte, error) {
	if req.Amount <= 0 {
		return nil, fmt.Errorf("%w: amount is required", domain.ErrInvalidArgument)
	}
	if req.Currency == "" {
		req.Currency = "INR"
	}
	if req.Receipt == "" {
		// ULIDs are time-ordered, which keeps receipts sortable by creation.
		req.Receipt = "rcpt_" + ulid.Make().String()
	}

	body, err := u.gateway.CreateOrder(ctx, req)
	if err != nil {
		return nil, err
	}
	u.log.Info().
		Str("gateway", u.gateway.Name()).
		Str("receipt", req.Receipt).
		Int64("amount", req.Amount).
		Str("currency", req.Currency).
		Msg("gateway order created")
	return body, nil
}
