package handler

import (
	"stripe-account-reconciler/internal/adapter/http/middleware"
	"stripe-account-reconciler/internal/core/ports"

	"github.com/gin-gonic/gin"
	"github.com/rs/zerolog"
)

// RouterDeps holds all dependencies needed to set up routes.
type RouterDeps struct {
	ReconcilerSvc   ports.ReconcilerService
	WebhookSvc      ports.WebhookService
	WebhookVerifier ports.WebhookVerifier
	EventStore      ports.EventStore
	TokenSvc        ports.TokenService
	HealthCheckers  []ports.HealthChecker
	Logger          zerolog.Logger
}

// SetupRouter initialises the Gin engine with all routes and middleware.
func SetupRouter(deps RouterDeps) *gin.Engine {
	gin.SetMode(gin.ReleaseMode)
	r := gin.New()

	// Global middleware
	r.Use(middleware.Recovery(deps.Logger))
	r.Use(middleware.RequestLogger(deps.Logger))
	r.Use(middleware.MaxBodySize(1 << 20)) // 1 MB request body limit

	// Health check (deep, verifies PostgreSQL + Redis)
	r.GET("/health", HealthCheck(deps.HealthCheckers...))

	// --- Webhook ingest (signature-authenticated) ---
	webhookHandler := NewWebhookHandler(deps.WebhookVerifier, deps.EventStore, deps.WebhookSvc, deps.Logger)
	r.POST("/webhooks/stripe", webhookHandler.HandleStripeWebhook)

	// --- Internal orchestration API (JWT-authenticated) ---
	jwtAuth := middleware.JWTAuth(deps.TokenSvc, deps.Logger)
	accountHandler := NewAccountHandler(deps.ReconcilerSvc)

	internal := r.Group("/internal", jwtAuth)
	{
		internal.POST("/accounts", accountHandler.CreateAccount)
		internal.POST("/accounts/sync", accountHandler.SyncAccount)
		internal.POST("/accounts/bank", accountHandler.SyncBankAccount)
		internal.DELETE("/accounts", accountHandler.Disconnect)
	}

	return r
}
