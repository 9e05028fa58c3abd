package redis

import (
	"context"
	"fmt"
	"strconv"
	"time"

	"checkout-backend/internal/domain"
	"checkout-backend/internal/domain/model"
	"checkout-backend/internal/domain/ports/repository"
)

var _ repository.EntitlementRepository = (*EntitlementRepo)(nil)

// EntitlementRepo stores one hash per subject. HSET touches only the listed
// fields, so a grant never clobbers unrelated fields on the document.
type EntitlementRepo struct {
	client RedisClient
}

func NewEntitlementRepo(client RedisClient) *EntitlementRepo {
	return &EntitlementRepo{client: client}
}

func (r *EntitlementRepo) key(subject string) string {
	return "entitlement:" + subject
}

func (r *EntitlementRepo) Grant(ctx context.Context, e *model.Entitlement) error {
	fields := []interface{}{
		"paid", "1",
		"paid_at", e.PaidAt.UTC().Format(time.RFC3339),
		"payment_method", e.PaymentMethod,
		"payment_order_id", e.OrderID,
		"payment_payment_id", e.PaymentID,
	}
	if e.Plan != "" {
		fields = append(fields, "plan", e.Plan)
	}
	if e.PlanAmount > 0 {
		fields = append(fields, "plan_amount", strconv.FormatInt(e.PlanAmount, 10))
	}
	if err := r.client.HSet(ctx, r.key(e.Subject), fields...); err != nil {
		return fmt.Errorf("%w: grant entitlement: %v", domain.ErrOperationFailed, err)
	}
	return nil
}

func (r *EntitlementRepo) Find(ctx context.Context, subject string) (*model.Entitlement, error) {
	m, err := r.client.HGetAll(ctx, r.key(subject))
	if err != nil {
		return nil, fmt.Errorf("%w: read entitlement: %v", domain.ErrOperationFailed, err)
	}
	if len(m) == 0 {
		return nil, domain.ErrNotFound
	}
	e := &model.Entitlement{
		Subject:       subject,
		Paid:          m["paid"] == "1",
		Plan:          m["plan"],
		PaymentMethod: m["payment_method"],
		OrderID:       m["payment_order_id"],
		PaymentID:     m["payment_payment_id"],
	}
	if v := m["paid_at"]; v != "" {
		if t, err := time.Parse(time.RFC3339, v); err == nil {
			e.PaidAt = t
		}
	}
	if v := m["plan_amount"]; v != "" {
		if n, err := strconv.ParseInt(v, 10, 64); err == nil {
			e.PlanAmount = n
		}
	}
	return e, nil
}
