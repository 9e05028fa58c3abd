package redis

import (
	"context"
	"fmt"
	"time"

	"checkout-backend/internal/domain"
	"checkout-backend/internal/domain/model"
	"checkout-backend/internal/domain/ports/repository"
)

var _ repository.InviteRepository = (*InviteRepo)(nil)

// InviteRepo mutates invite hashes in place. MarkUsed is not a single-use
// lock: the exists check and the write are separate commands, and a concurrent
// re-mark of an already-used invite succeeds silently.
type InviteRepo struct {
	client RedisClient
}

func NewInviteRepo(client RedisClient) *InviteRepo {
	return &InviteRepo{client: client}
}

func (r *InviteRepo) key(id string) string {
	return "invite:" + id
}

func (r *InviteRepo) Create(ctx context.Context, inv *model.Invite) error {
	fields := []interface{}{"used", boolField(inv.Used)}
	if !inv.UsedAt.IsZero() {
		fields = append(fields, "used_at", inv.UsedAt.UTC().Format(time.RFC3339))
	}
	if err := r.client.HSet(ctx, r.key(inv.ID), fields...); err != nil {
		return fmt.Errorf("%w: create invite: %v", domain.ErrOperationFailed, err)
	}
	return nil
}

func (r *InviteRepo) Find(ctx context.Context, id string) (*model.Invite, error) {
	m, err := r.client.HGetAll(ctx, r.key(id))
	if err != nil {
		return nil, fmt.Errorf("%w: read invite: %v", domain.ErrOperationFailed, err)
	}
	if len(m) == 0 {
		return nil, domain.ErrNotFound
	}
	inv := &model.Invite{ID: id, Used: m["used"] == "1"}
	if v := m["used_at"]; v != "" {
		if t, err := time.Parse(time.RFC3339, v); err == nil {
			inv.UsedAt = t
		}
	}
	return inv, nil
}

func (r *InviteRepo) MarkUsed(ctx context.Context, id string, at time.Time) error {
	ok, err := r.client.Exists(ctx, r.key(id))
	if err != nil {
		return fmt.Errorf("%w: check invite: %v", domain.ErrOperationFailed, err)
	}
	if !ok {
		return domain.ErrNotFound
	}
	fields := []interface{}{"used", "1", "used_at", at.UTC().Format(time.RFC3339)}
	if err := r.client.HSet(ctx, r.key(id), fields...); err != nil {
		return fmt.Errorf("%w: mark invite used: %v", domain.ErrOperationFailed, err)
	}
	return nil
}

func boolField(b bool) string {
	if b {
		return "1"
	}
	return "0"
}
