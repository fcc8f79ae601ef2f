package main

import (
	"context"
	"fmt"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"stripe-account-reconciler/config"
	httpHandler "stripe-account-reconciler/internal/adapter/http/handler"
	pgStorage "stripe-account-reconciler/internal/adapter/storage/postgres"
	redisStorage "stripe-account-reconciler/internal/adapter/storage/redis"
	"stripe-account-reconciler/internal/adapter/stripeapi"
	"stripe-account-reconciler/internal/core/ports"
	"stripe-account-reconciler/internal/service"
	"stripe-account-reconciler/pkg/logger"
)

// webhookTolerance is the allowed webhook timestamp drift.
const webhookTolerance = 5 * time.Minute

func main() {
	// Load configuration
	cfg, err := config.Load("")
	if err != nil {
		fmt.Fprintf(os.Stderr, "failed to load config: %v\n", err)
		os.Exit(1)
	}

	// Initialize logger
	log := logger.New(cfg.Log.Level, cfg.Log.Pretty)

	log.Info().
		Str("mode", cfg.Server.Mode).
		Int("port", cfg.Server.Port).
		Msg("Starting Stripe Account Reconciler")

	ctx := context.Background()

	// Initialize PostgreSQL pool
	pool, err := pgStorage.NewPool(ctx, cfg.Database, log)
	if err != nil {
		log.Fatal().Err(err).Msg("Failed to connect to PostgreSQL")
	}
	defer pool.Close()
	log.Info().Msg("PostgreSQL connected")

	// Initialize Redis client
	rdb, err := redisStorage.NewClient(ctx, cfg.Redis, log)
	if err != nil {
		log.Fatal().Err(err).Msg("Failed to connect to Redis")
	}
	defer rdb.Close()
	log.Info().Msg("Redis connected")

	// Initialize repositories
	userRepo := pgStorage.NewUserRepo(pool)
	snapshotRepo := pgStorage.NewSnapshotRepo(pool)
	merchantAccountRepo := pgStorage.NewMerchantAccountRepo(pool)
	bankAccountRepo := pgStorage.NewBankAccountRepo(pool)
	requirementRepo := pgStorage.NewRequirementRequestRepo(pool)
	transactor := pgStorage.NewTransactor(pool)

	// Initialize Redis stores
	eventStore := redisStorage.NewEventStore(rdb)
	notifier := redisStorage.NewNotifyQueue(rdb)

	// Initialize core services
	encSvc, err := service.NewAESEncryptionService(cfg.AES.Key)
	if err != nil {
		log.Fatal().Err(err).Msg("Failed to initialize encryption service")
	}
	tokenSvc := service.NewJWTTokenService(cfg.JWT.Secret, cfg.JWT.Expiry, cfg.JWT.Issuer)
	webhookVerifier := service.NewStripeWebhookVerifier(cfg.Stripe.WebhookSecret, webhookTolerance)

	// Initialize Stripe API client
	stripeClient := stripeapi.NewClient(cfg.Stripe, log)

	// Initialize business services
	treeBuilder := service.NewTreeBuilder(encSvc)
	reconcilerSvc := service.NewReconcilerService(
		userRepo,
		snapshotRepo,
		merchantAccountRepo,
		bankAccountRepo,
		stripeClient,
		notifier,
		treeBuilder,
		transactor,
		cfg.Server.IsTest(),
		log,
	)
	webhookSvc := service.NewWebhookService(
		userRepo,
		merchantAccountRepo,
		bankAccountRepo,
		requirementRepo,
		stripeClient,
		notifier,
		reconcilerSvc,
		log,
	)

	// Initialize health checkers
	pgHealth := pgStorage.NewHealthCheck(pool)
	redisHealth := redisStorage.NewHealthCheck(rdb)

	// Setup Gin router with all routes
	router := httpHandler.SetupRouter(httpHandler.RouterDeps{
		ReconcilerSvc:   reconcilerSvc,
		WebhookSvc:      webhookSvc,
		WebhookVerifier: webhookVerifier,
		EventStore:      eventStore,
		TokenSvc:        tokenSvc,
		HealthCheckers:  []ports.HealthChecker{pgHealth, redisHealth},
		Logger:          log,
	})

	// HTTP Server with graceful shutdown
	addr := fmt.Sprintf("%s:%d", cfg.Server.Host, cfg.Server.Port)
	srv := &http.Server{
		Addr:    addr,
		Handler: router,
	}

	// Start server in goroutine
	go func() {
		log.Info().Str("addr", addr).Msg("HTTP server listening")
		if err := srv.ListenAndServe(); err != nil && err != http.ErrServerClosed {
			log.Fatal().Err(err).Msg("HTTP server failed")
		}
	}()

	// Graceful shutdown
	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	<-quit
	log.Info().Msg("Shutting down server...")

	shutdownCtx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()

	if err := srv.Shutdown(shutdownCtx); err != nil {
		log.Error().Err(err).Msg("Server forced to shutdown")
	}

	log.Info().Msg("Server exited")
}
