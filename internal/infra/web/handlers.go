package web

import (
	"encoding/json"
	"errors"
	"net/http"
	"strings"
	"time"

	"checkout-backend/internal/domain"
	"checkout-backend/internal/domain/model"
	"checkout-backend/internal/infra/logging"
	"checkout-backend/internal/infra/metrics"
)

func (s *Server) handleCreateOrder(w http.ResponseWriter, r *http.Request) {
	start := time.Now()
	ctx := r.Context()

	var req model.OrderRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		metrics.OrderCreateRequests.WithLabelValues("fail", "bad_json").Inc()
		writeError(w, http.StatusBadRequest, "invalid request body")
		return
	}

	body, err := s.orderUC.Create(ctx, &req)
	if err != nil {
		reason := "unknown"
		var gwErr *domain.GatewayError
		switch {
		case errors.As(err, &gwErr):
			// Transparency contract: the gateway's own status and body go back
			// to the caller untouched.
			reason = "gateway_error"
			w.Header().Set("Content-Type", "application/json")
			w.WriteHeader(gwErr.Status)
			_, _ = w.Write(gwErr.Body)
		case errors.Is(err, domain.ErrInvalidArgument):
			reason = "missing_amount"
			writeError(w, http.StatusBadRequest, err.Error())
		case errors.Is(err, domain.ErrNotConfigured):
			reason = "not_configured"
			writeError(w, http.StatusInternalServerError, "payment gateway not configured")
		default:
			reason = "upstream_error"
			writeError(w, http.StatusInternalServerError, err.Error())
		}
		metrics.OrderCreateRequests.WithLabelValues("fail", reason).Inc()
		metrics.OrderCreateDuration.WithLabelValues("fail").Observe(time.Since(start).Seconds())
		return
	}

	metrics.OrderCreateRequests.WithLabelValues("ok", "").Inc()
	metrics.OrderCreateDuration.WithLabelValues("ok").Observe(time.Since(start).Seconds())
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(http.StatusOK)
	_, _ = w.Write(body)
}

func (s *Server) handleVerify(w http.ResponseWriter, r *http.Request) {
	start := time.Now()
	ctx := r.Context()

	token, ok := bearerToken(r)
	if !ok {
		metrics.PaymentVerifyRequests.WithLabelValues("fail", "missing_token").Inc()
		writeError(w, http.StatusUnauthorized, "missing bearer token")
		return
	}

	subject, err := s.verifier.VerifySubject(ctx, token)
	if err != nil {
		if errors.Is(err, domain.ErrNotConfigured) {
			metrics.PaymentVerifyRequests.WithLabelValues("fail", "not_configured").Inc()
			writeError(w, http.StatusInternalServerError, "identity verification not configured")
			return
		}
		logging.With(ctx, s.log).Warn().
			Str("token", logging.Redact(token, s.dev)).
			Msg("bearer token rejected")
		metrics.PaymentVerifyRequests.WithLabelValues("fail", "invalid_token").Inc()
		writeError(w, http.StatusUnauthorized, "invalid bearer token")
		return
	}
	ctx = logging.WithSubject(ctx, subject)

	var req model.VerificationRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		metrics.PaymentVerifyRequests.WithLabelValues("fail", "bad_json").Inc()
		writeError(w, http.StatusBadRequest, "invalid request body")
		return
	}

	if err := s.verifyUC.Verify(ctx, subject, &req); err != nil {
		reason := "unknown"
		switch {
		case errors.Is(err, domain.ErrInvalidArgument):
			reason = "missing_fields"
			writeError(w, http.StatusBadRequest, err.Error())
		case errors.Is(err, domain.ErrSignatureMismatch):
			reason = "bad_signature"
			writeError(w, http.StatusBadRequest, "invalid payment signature")
		case errors.Is(err, domain.ErrNotConfigured):
			reason = "not_configured"
			writeError(w, http.StatusInternalServerError, "payment gateway not configured")
		default:
			reason = "persist_error"
			writeError(w, http.StatusInternalServerError, err.Error())
		}
		metrics.PaymentVerifyRequests.WithLabelValues("fail", reason).Inc()
		metrics.PaymentVerifyDuration.WithLabelValues("fail").Observe(time.Since(start).Seconds())
		return
	}

	metrics.PaymentVerifyRequests.WithLabelValues("ok", "").Inc()
	metrics.PaymentVerifyDuration.WithLabelValues("ok").Observe(time.Since(start).Seconds())
	writeJSON(w, http.StatusOK, map[string]bool{"ok": true})
}

// bearerToken extracts the token from "Authorization: Bearer <token>".
func bearerToken(r *http.Request) (string, bool) {
	hdr := r.Header.Get("Authorization")
	if hdr == "" {
		return "", false
	}
	parts := strings.SplitN(hdr, " ", 2)
	if len(parts) != 2 || !strings.EqualFold(parts[0], "bearer") || strings.TrimSpace(parts[1]) == "" {
		return "", false
	}
	return strings.TrimSpace(parts[1]), true
}

func writeJSON(w http.ResponseWriter, status int, v any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	_ = json.NewEncoder(w).Encode(v)
}

func writeError(w http.ResponseWriter, status int, msg string) {
	writeJSON(w, status, map[string]string{"error": msg})
}
