package main

import (
	"log"
	"net/http"

	"storepay-be/internal/config"
	"storepay-be/internal/logger"
	"storepay-be/internal/metrics"
	"storepay-be/internal/middleware"
	"storepay-be/internal/payment"
	"storepay-be/internal/payment/api"

	"go.uber.org/zap"
)

// setupRouter wires the payment endpoints behind the middleware chain.
func setupRouter(h *api.Handler, corsOrigin string) http.Handler {
	mux := http.NewServeMux()
	mux.HandleFunc("POST /payment/razorpay/initiate", h.Initiate)
	mux.HandleFunc("POST /payment/razorpay/verify", h.Verify)
	mux.HandleFunc("GET /healthz", h.Health)

	var handler http.Handler = mux
	handler = logger.LoggingMiddleware(handler)
	handler = logger.RequestIDMiddleware(handler)
	handler = middleware.RateLimitMiddleware(handler)
	handler = middleware.CORS(corsOrigin)(handler)

	return handler
}

func main() {
	cfg, err := config.Load()
	if err != nil {
		log.Fatalf("invalid configuration: %v", err)
	}

	logger.Init(cfg.AppEnv)
	defer logger.Sync()

	svc, err := payment.NewService(cfg.KeyID, cfg.KeySecret,
		payment.WithCurrency(cfg.Currency),
		payment.WithBaseURL(cfg.GatewayBaseURL),
	)
	if err != nil {
		logger.L().Fatal("failed to construct payment service", zap.Error(err))
	}

	handler := api.NewHandler(svc, &metrics.Payments{})
	router := setupRouter(handler, cfg.CORSOrigin)

	logger.L().Info("payment server listening", zap.String("port", cfg.AppPort))
	if err := http.ListenAndServe(":"+cfg.AppPort, router); err != nil {
		logger.L().Fatal("server stopped", zap.Error(err))
	}
}
