package web

import (
	"net/http"
	"time"

	"github.com/go-chi/chi/v5"
	"github.com/prometheus/client_golang/prometheus/promhttp"
	"github.com/rs/zerolog"

	"checkout-backend/internal/domain/ports/adapter"
	"checkout-backend/internal/infra/metrics"
	"checkout-backend/internal/usecase"
)

// Server wires the checkout endpoints to their use cases.
type Server struct {
	orderUC  usecase.OrderUseCase
	verifyUC usecase.VerifyUseCase
	verifier adapter.IdentityVerifier
	log      *zerolog.Logger
	dev      bool
}

func NewServer(
	orderUC usecase.OrderUseCase,
	verifyUC usecase.VerifyUseCase,
	verifier adapter.IdentityVerifier,
	logger *zerolog.Logger,
	dev bool,
) *Server {
	return &Server{
		orderUC:  orderUC,
		verifyUC: verifyUC,
		verifier: verifier,
		log:      logger,
		dev:      dev,
	}
}

// Router builds the chi mux. chi answers 405 for wrong verbs on registered
// paths, which covers the method gate for both endpoints.
func (s *Server) Router() *chi.Mux {
	metrics.MustRegister()

	r := chi.NewRouter()
	r.Use(
		TraceID(),
		RequestLog(s.log),
		Recover(s.log),
		Timeout(15*time.Second),
	)

	r.Post("/api/v1/orders", s.handleCreateOrder)
	r.Post("/api/v1/verify", s.handleVerify)

	r.Get("/health", func(w http.ResponseWriter, _ *http.Request) {
		w.WriteHeader(http.StatusOK)
		_, _ = w.Write([]byte("OK"))
	})
	r.Method(http.MethodGet, "/metrics", promhttp.Handler())
	return r
}
