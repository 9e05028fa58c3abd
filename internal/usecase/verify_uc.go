// File: internal/usecase/verify_uc.go
package usecase

import (
	"context"
	"crypto/hmac"
	"fmt"
	"time"

	"github.com/google/uuid"
	"github.com/rs/zerolog"

	"checkout-backend/internal/domain"
	"checkout-backend/internal/domain/model"
	"checkout-backend/internal/domain/ports/adapter"
	"checkout-backend/internal/domain/ports/repository"
)

// Compile-time check
var _ VerifyUseCase = (*verifyUC)(nil)

type VerifyUseCase interface {
	// Verify validates the payment signature for an already-authenticated
	// subject and, on success, durably grants the entitlement. Invite
	// consumption and audit logging are advisory effects: their failures are
	// logged and never surface to the caller.
	Verify(ctx context.Context, subject string, req *model.VerificationRequest) error
}

type verifyUC struct {
	entitlements repository.EntitlementRepository
	invites      repository.InviteRepository
	payLog       repository.PaymentLogRepository // nil disables audit logging
	gateway      adapter.PaymentGateway
	log          *zerolog.Logger
}

func NewVerifyUseCase(
	entitlements repository.EntitlementRepository,
	invites repository.InviteRepository,
	payLog repository.PaymentLogRepository,
	gateway adapter.PaymentGateway,
	logger *zerolog.Logger,
) *verifyUC {
	return &verifyUC{
		entitlements: entitlements,
		invites:      invites,
		payLog:       payLog,
		gateway:      gateway,
		log:          logger,
	}
}

func (u *verifyUC) Verify(ctx context.Context, subject string, req *model.VerificationRequest) error {
	if req.OrderID == "" || req.PaymentID == "" || req.Signature == "" {
		return fmt.Errorf("%w: order id, payment id and signature are required", domain.ErrInvalidArgument)
	}

	expected, err := u.gateway.ExpectedSignature(req.OrderID, req.PaymentID)
	if err != nil {
		return err
	}
	if !hmac.Equal([]byte(expected), []byte(req.Signature)) {
		// Both values kept at warning level for forensic audit; the response
		// body never echoes the expected signature.
		u.log.Warn().
			Str("order_id", req.OrderID).
			Str("payment_id", req.PaymentID).
			Str("expected", expected).
			Str("received", req.Signature).
			Msg("payment signature mismatch")
		return domain.ErrSignatureMismatch
	}

	now := time.Now()
	ent := &model.Entitlement{
		Subject:       subject,
		Paid:          true,
		PaidAt:        now,
		Plan:          req.Plan,
		PlanAmount:    req.Amount,
		PaymentMethod: model.PaymentMethodRazorpay,
		OrderID:       req.OrderID,
		PaymentID:     req.PaymentID,
	}
	if err := u.entitlements.Grant(ctx, ent); err != nil {
		return err
	}

	if req.InviteID != "" {
		if err := u.invites.MarkUsed(ctx, req.InviteID, now); err != nil {
			u.log.Warn().Err(err).Str("invite_id", req.InviteID).Msg("invite consume failed")
		}
	}

	if u.payLog != nil {
		rec := &model.PaymentRecord{
			ID:        uuid.NewString(),
			Subject:   subject,
			OrderID:   req.OrderID,
			PaymentID: req.PaymentID,
			Plan:      req.Plan,
			Amount:    req.Amount,
			CreatedAt: now,
		}
		if err := u.payLog.Append(ctx, rec); err != nil {
			u.log.Warn().Err(err).Str("order_id", req.OrderID).Msg("payment audit append failed")
		}
	}

	u.log.Info().
		Str("subject", subject).
		Str("order_id", req.OrderID).
		Str("payment_id", req.PaymentID).
		Msg("payment verified")
	return nil
}
