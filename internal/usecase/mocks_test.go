// File: internal/usecase/mocks_test.go
package usecase

import (
	"context"
	"crypto/hmac"
	"crypto/sha256"
	"encoding/hex"
	"strconv"
	"sync"
	"time"

	"github.com/rs/zerolog"

	"checkout-backend/internal/domain"
	"checkout-backend/internal/domain/model"
)

func newTestLogger() *zerolog.Logger {
	l := zerolog.Nop()
	return &l
}

// memEntitlementRepo is a small in-memory implementation used by unit tests.
// It stores field maps to mimic the document store's merge-update semantics.
type memEntitlementRepo struct {
	mu       sync.RWMutex
	store    map[string]map[string]string
	grantErr error // used by tests to simulate write failures
	grants   int
}

func newMemEntitlementRepo() *memEntitlementRepo {
	return &memEntitlementRepo{store: make(map[string]map[string]string)}
}

func (m *memEntitlementRepo) Grant(ctx context.Context, e *model.Entitlement) error {
	if m.grantErr != nil {
		return m.grantErr
	}
	m.mu.Lock()
	defer m.mu.Unlock()
	m.grants++
	doc, ok := m.store[e.Subject]
	if !ok {
		doc = make(map[string]string)
		m.store[e.Subject] = doc
	}
	doc["paid"] = "1"
	doc["paid_at"] = e.PaidAt.UTC().Format(time.RFC3339)
	doc["payment_method"] = e.PaymentMethod
	doc["payment_order_id"] = e.OrderID
	doc["payment_payment_id"] = e.PaymentID
	if e.Plan != "" {
		doc["plan"] = e.Plan
	}
	if e.PlanAmount > 0 {
		doc["plan_amount"] = strconv.FormatInt(e.PlanAmount, 10)
	}
	return nil
}

func (m *memEntitlementRepo) Find(ctx context.Context, subject string) (*model.Entitlement, error) {
	m.mu.RLock()
	defer m.mu.RUnlock()
	doc, ok := m.store[subject]
	if !ok {
		return nil, domain.ErrNotFound
	}
	e := &model.Entitlement{
		Subject:       subject,
		Paid:          doc["paid"] == "1",
		Plan:          doc["plan"],
		PaymentMethod: doc["payment_method"],
		OrderID:       doc["payment_order_id"],
		PaymentID:     doc["payment_payment_id"],
	}
	if v := doc["paid_at"]; v != "" {
		if t, err := time.Parse(time.RFC3339, v); err == nil {
			e.PaidAt = t
		}
	}
	if v := doc["plan_amount"]; v != "" {
		n, _ := strconv.ParseInt(v, 10, 64)
		e.PlanAmount = n
	}
	return e, nil
}

type memInviteRepo struct {
	mu      sync.Mutex
	store   map[string]*model.Invite
	markErr error
}

func newMemInviteRepo() *memInviteRepo {
	return &memInviteRepo{store: make(map[string]*model.Invite)}
}

func (m *memInviteRepo) Create(ctx context.Context, inv *model.Invite) error {
	m.mu.Lock()
	defer m.mu.Unlock()
	cp := *inv
	m.store[inv.ID] = &cp
	return nil
}

func (m *memInviteRepo) Find(ctx context.Context, id string) (*model.Invite, error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	inv, ok := m.store[id]
	if !ok {
		return nil, domain.ErrNotFound
	}
	cp := *inv
	return &cp, nil
}

func (m *memInviteRepo) MarkUsed(ctx context.Context, id string, at time.Time) error {
	if m.markErr != nil {
		return m.markErr
	}
	m.mu.Lock()
	defer m.mu.Unlock()
	inv, ok := m.store[id]
	if !ok {
		return domain.ErrNotFound
	}
	inv.Used = true
	inv.UsedAt = at
	return nil
}

type memPaymentLog struct {
	mu        sync.Mutex
	records   []*model.PaymentRecord
	appendErr error
}

func newMemPaymentLog() *memPaymentLog { return &memPaymentLog{} }

func (m *memPaymentLog) Append(ctx context.Context, rec *model.PaymentRecord) error {
	if m.appendErr != nil {
		return m.appendErr
	}
	m.mu.Lock()
	defer m.mu.Unlock()
	for _, r := range m.records {
		if r.OrderID == rec.OrderID && r.PaymentID == rec.PaymentID {
			return nil
		}
	}
	cp := *rec
	m.records = append(m.records, &cp)
	return nil
}

// fakeGateway computes real HMAC signatures so signature tests exercise the
// actual algorithm, and records CreateOrder calls.
type fakeGateway struct {
	secret        string
	orderBody     []byte
	createErr     error
	createCalls   int
	lastOrderReq  *model.OrderRequest
	expectedCalls int
}

func (g *fakeGateway) Name() string { return "razorpay" }

func (g *fakeGateway) CreateOrder(ctx context.Context, req *model.OrderRequest) ([]byte, error) {
	g.createCalls++
	cp := *req
	g.lastOrderReq = &cp
	if g.createErr != nil {
		return nil, g.createErr
	}
	return g.orderBody, nil
}

func (g *fakeGateway) ExpectedSignature(orderID, paymentID string) (string, error) {
	g.expectedCalls++
	if g.secret == "" {
		return "", domain.ErrNotConfigured
	}
	return signPayment(g.secret, orderID, paymentID), nil
}

func signPayment(secret, orderID, paymentID string) string {
	mac := hmac.New(sha256.New, []byte(secret))
	mac.Write([]byte(orderID + "|" + paymentID))
	return hex.EncodeToString(mac.Sum(nil))
}
