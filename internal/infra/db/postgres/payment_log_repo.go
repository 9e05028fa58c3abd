package postgres

import (
	"context"
	"errors"
	"fmt"

	"github.com/jackc/pgconn"
	"github.com/jackc/pgx/v4/pgxpool"

	"checkout-backend/internal/domain"
	"checkout-backend/internal/domain/model"
	"checkout-backend/internal/domain/ports/repository"
)

var _ repository.PaymentLogRepository = (*paymentLogRepo)(nil)

// paymentLogRepo appends one row per successful verification.
//
// Schema:
//
//	CREATE TABLE payment_log (
//	  id         UUID PRIMARY KEY,
//	  subject    TEXT NOT NULL,
//	  order_id   TEXT NOT NULL,
//	  payment_id TEXT NOT NULL,
//	  plan       TEXT,
//	  amount     BIGINT,
//	  created_at TIMESTAMPTZ NOT NULL,
//	  UNIQUE (order_id, payment_id)
//	);
type paymentLogRepo struct{ pool *pgxpool.Pool }

func NewPaymentLogRepo(pool *pgxpool.Pool) *paymentLogRepo {
	return &paymentLogRepo{pool: pool}
}

func (r *paymentLogRepo) Append(ctx context.Context, rec *model.PaymentRecord) error {
	const q = `
INSERT INTO payment_log (id, subject, order_id, payment_id, plan, amount, created_at)
VALUES ($1,$2,$3,$4,$5,$6,$7);`

	_, err := r.pool.Exec(ctx, q, rec.ID, rec.Subject, rec.OrderID, rec.PaymentID, rec.Plan, rec.Amount, rec.CreatedAt)
	if err != nil {
		var pgErr *pgconn.PgError
		if errors.As(err, &pgErr) && pgErr.Code == "23505" {
			// same payment verified again; the row is already there
			return nil
		}
		return fmt.Errorf("%w: append payment log: %v", domain.ErrOperationFailed, err)
	}
	return nil
}
