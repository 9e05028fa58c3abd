package repository

import (
	"context"
	"time"

	"checkout-backend/internal/domain/model"
)

// InviteRepository mutates invite documents in place.
type InviteRepository interface {
	Create(ctx context.Context, inv *model.Invite) error
	Find(ctx context.Context, id string) (*model.Invite, error)
	// MarkUsed flips the named invite to used. The transition is
	// unconditional: re-marking an already-used invite succeeds silently.
	// Returns domain.ErrNotFound when the invite document does not exist.
	MarkUsed(ctx context.Context, id string, at time.Time) error
}
