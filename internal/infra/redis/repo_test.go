//go:build !integration

package redis

import (
	"context"
	"errors"
	"testing"
	"time"

	"checkout-backend/internal/domain"
	"checkout-backend/internal/domain/model"
)

// fakeClient implements RedisClient over plain maps with HSET semantics:
// writes touch only the listed fields.
type fakeClient struct {
	hashes  map[string]map[string]string
	hsetErr error
}

func newFakeClient() *fakeClient {
	return &fakeClient{hashes: make(map[string]map[string]string)}
}

func (f *fakeClient) Ping(ctx context.Context) error { return nil }

func (f *fakeClient) HSet(ctx context.Context, key string, values ...interface{}) error {
	if f.hsetErr != nil {
		return f.hsetErr
	}
	h, ok := f.hashes[key]
	if !ok {
		h = make(map[string]string)
		f.hashes[key] = h
	}
	for i := 0; i+1 < len(values); i += 2 {
		h[values[i].(string)] = values[i+1].(string)
	}
	return nil
}

func (f *fakeClient) HGetAll(ctx context.Context, key string) (map[string]string, error) {
	out := make(map[string]string)
	for k, v := range f.hashes[key] {
		out[k] = v
	}
	return out, nil
}

func (f *fakeClient) Exists(ctx context.Context, key string) (bool, error) {
	_, ok := f.hashes[key]
	return ok, nil
}

func (f *fakeClient) Del(ctx context.Context, keys ...string) error {
	for _, k := range keys {
		delete(f.hashes, k)
	}
	return nil
}

func (f *fakeClient) Close() error { return nil }

func TestEntitlementRepo_GrantMergesFields(t *testing.T) {
	ctx := context.Background()
	cli := newFakeClient()
	repo := NewEntitlementRepo(cli)

	// Unrelated fields already on the subject's document must survive a grant.
	_ = cli.HSet(ctx, "entitlement:subject-1", "display_name", "Asha", "theme", "dark")

	paidAt := time.Date(2026, 9, 1, 12, 0, 0, 0, time.UTC)
	err := repo.Grant(ctx, &model.Entitlement{
		Subject:       "subject-1",
		Paid:          true,
		PaidAt:        paidAt,
		Plan:          "pro",
		PlanAmount:    50000,
		PaymentMethod: model.PaymentMethodRazorpay,
		OrderID:       "order_Hx1",
		PaymentID:     "pay_Jk9",
	})
	if err != nil {
		t.Fatalf("grant: %v", err)
	}

	doc := cli.hashes["entitlement:subject-1"]
	if doc["display_name"] != "Asha" || doc["theme"] != "dark" {
		t.Errorf("unrelated fields clobbered: %v", doc)
	}
	if doc["paid"] != "1" || doc["plan"] != "pro" || doc["plan_amount"] != "50000" {
		t.Errorf("entitlement fields = %v", doc)
	}
	if doc["paid_at"] != paidAt.Format(time.RFC3339) {
		t.Errorf("paid_at = %q", doc["paid_at"])
	}

	ent, err := repo.Find(ctx, "subject-1")
	if err != nil {
		t.Fatalf("find: %v", err)
	}
	if !ent.Paid || ent.PlanAmount != 50000 || ent.OrderID != "order_Hx1" || ent.PaymentID != "pay_Jk9" {
		t.Errorf("entitlement = %+v", ent)
	}
	if !ent.PaidAt.Equal(paidAt) {
		t.Errorf("paid_at = %v", ent.PaidAt)
	}
}

func TestEntitlementRepo_FindMissing(t *testing.T) {
	repo := NewEntitlementRepo(newFakeClient())
	if _, err := repo.Find(context.Background(), "nobody"); !errors.Is(err, domain.ErrNotFound) {
		t.Fatalf("expected ErrNotFound, got %v", err)
	}
}

func TestEntitlementRepo_GrantError(t *testing.T) {
	cli := newFakeClient()
	cli.hsetErr = errors.New("connection reset")
	repo := NewEntitlementRepo(cli)

	err := repo.Grant(context.Background(), &model.Entitlement{Subject: "s", PaidAt: time.Now()})
	if !errors.Is(err, domain.ErrOperationFailed) {
		t.Fatalf("expected ErrOperationFailed, got %v", err)
	}
}

func TestInviteRepo_MarkUsed(t *testing.T) {
	ctx := context.Background()
	cli := newFakeClient()
	repo := NewInviteRepo(cli)

	t.Run("missing invite", func(t *testing.T) {
		if err := repo.MarkUsed(ctx, "nope", time.Now()); !errors.Is(err, domain.ErrNotFound) {
			t.Fatalf("expected ErrNotFound, got %v", err)
		}
	})

	t.Run("marks and re-marks without error", func(t *testing.T) {
		if err := repo.Create(ctx, &model.Invite{ID: "inv-1"}); err != nil {
			t.Fatalf("create: %v", err)
		}
		at := time.Date(2026, 9, 1, 12, 0, 0, 0, time.UTC)
		if err := repo.MarkUsed(ctx, "inv-1", at); err != nil {
			t.Fatalf("mark used: %v", err)
		}
		inv, err := repo.Find(ctx, "inv-1")
		if err != nil {
			t.Fatalf("find: %v", err)
		}
		if !inv.Used || !inv.UsedAt.Equal(at) {
			t.Errorf("invite = %+v", inv)
		}

		// Unconditional transition: marking again is silently idempotent.
		if err := repo.MarkUsed(ctx, "inv-1", at.Add(time.Minute)); err != nil {
			t.Fatalf("re-mark: %v", err)
		}
	})
}
