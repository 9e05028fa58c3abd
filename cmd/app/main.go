// File: cmd/app/main.go
package main

import (
	"context"
	"flag"
	"fmt"
	"log"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"checkout-backend/internal/config"
	"checkout-backend/internal/domain/ports/repository"
	"checkout-backend/internal/infra/adapters/identity"
	payAdapters "checkout-backend/internal/infra/adapters/payment"
	pg "checkout-backend/internal/infra/db/postgres"
	"checkout-backend/internal/infra/logging"
	red "checkout-backend/internal/infra/redis"
	"checkout-backend/internal/infra/web"
	"checkout-backend/internal/usecase"
)

func main() {
	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()

	// ---- CLI flags ----
	cfgPath := flag.String("config", "config.yaml", "path to YAML config file")
	devMode := flag.Bool("dev", false, "enable developer mode (console logs, unredacted tokens)")
	flag.Parse()

	cfg, err := config.LoadConfig(*cfgPath, *devMode)
	if err != nil {
		log.Fatalf("config: %v", err)
	}
	if cfg.Runtime.Dev {
		log.Printf("[DEV MODE] Enabled")
	}

	logger := logging.New(cfg.Log, cfg.Runtime.Dev)

	// ---- Redis (document store) ----
	redisClient, err := red.NewClient(ctx, &cfg.Redis)
	if err != nil {
		log.Fatalf("redis: %v", err)
	}
	defer redisClient.Close()

	entRepo := red.NewEntitlementRepo(redisClient)
	invRepo := red.NewInviteRepo(redisClient)

	// ---- Postgres (optional payment audit log) ----
	var payLog repository.PaymentLogRepository
	if cfg.Database.URL != "" {
		pool, err := pg.NewPgxPool(ctx, cfg.Database.URL, 10)
		if err != nil {
			log.Fatalf("postgres: %v", err)
		}
		defer pool.Close()
		payLog = pg.NewPaymentLogRepo(pool)
	} else {
		logger.Info().Msg("database.url not set; payment audit log disabled")
	}

	// ---- Adapters ----
	gateway := payAdapters.NewRazorpayGateway(cfg.Razorpay.KeyID, cfg.Razorpay.KeySecret)
	gateway.SetBaseURL(cfg.Razorpay.BaseURL)
	if cfg.Razorpay.KeyID == "" || cfg.Razorpay.KeySecret == "" {
		logger.Warn().Msg("razorpay credentials not configured; checkout endpoints will answer 500")
	}
	verifier := identity.NewJWTVerifier(cfg.Identity.JWTSecret)
	if cfg.Identity.JWTSecret == "" {
		logger.Warn().Msg("identity.jwt_secret not configured; /api/v1/verify will answer 500")
	}

	// ---- Use cases ----
	orderUC := usecase.NewOrderUseCase(gateway, logger)
	verifyUC := usecase.NewVerifyUseCase(entRepo, invRepo, payLog, gateway, logger)

	// ---- HTTP server ----
	srv := web.NewServer(orderUC, verifyUC, verifier, logger, cfg.Runtime.Dev)
	httpSrv := &http.Server{
		Addr:    fmt.Sprintf(":%d", cfg.Server.Port),
		Handler: srv.Router(),
	}

	go func() {
		logger.Info().Int("port", cfg.Server.Port).Msg("http server listening")
		if err := httpSrv.ListenAndServe(); err != nil && err != http.ErrServerClosed {
			logger.Error().Err(err).Msg("http server stopped")
			cancel()
		}
	}()

	// ---- Graceful shutdown ----
	sig := make(chan os.Signal, 1)
	signal.Notify(sig, syscall.SIGINT, syscall.SIGTERM)
	select {
	case s := <-sig:
		logger.Info().Str("signal", s.String()).Msg("shutting down")
	case <-ctx.Done():
	}

	shutCtx, shutCancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer shutCancel()
	if err := httpSrv.Shutdown(shutCtx); err != nil {
		logger.Error().Err(err).Msg("shutdown")
	}
}
