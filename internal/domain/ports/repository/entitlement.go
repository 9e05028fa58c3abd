package repository

import (
	"context"

	"checkout-backend/internal/domain/model"
)

// EntitlementRepository persists per-subject entitlements with merge-update
// semantics: Grant must only touch the entitlement fields and never clobber
// unrelated fields already present on the subject's document.
type EntitlementRepository interface {
	Grant(ctx context.Context, e *model.Entitlement) error
	Find(ctx context.Context, subject string) (*model.Entitlement, error)
}
