package repository

import (
	"context"

	"checkout-backend/internal/domain/model"
)

// PaymentLogRepository appends one audit row per successful verification.
// Appending the same (order id, payment id) pair twice is a no-op.
type PaymentLogRepository interface {
	Append(ctx context.Context, rec *model.PaymentRecord) error
}
