package main

import (
	"context"
	"net/http"
	"os/signal"
	"syscall"
	"time"

	"bet-engine/internal/catalog"
	"bet-engine/internal/config"
	"bet-engine/internal/database"
	"bet-engine/internal/handler"
	"bet-engine/internal/logger"
	"bet-engine/internal/producer"
	"bet-engine/internal/repository/postgres"
	"bet-engine/internal/service"
	"bet-engine/internal/worker"

	_ "bet-engine/docs"
)

// @title Bet Engine API
// @version 1.0
// @description Wallet-ledger and bet-lifecycle engine
// @host localhost:8080
// @BasePath /api/v1
func main() {
	// Setup logger
	log := logger.New(true)

	// Load configuration from environment
	cfg, err := config.Load()
	if err != nil {
		log.Fatal().Err(err).Msg("Failed to load config")
	}

	// Initialize database connection
	dbCtx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()

	dbPool, err := database.NewPool(dbCtx, cfg.Database)
	if err != nil {
		log.Fatal().Err(err).Msg("failed to connect to database")
	}
	defer dbPool.Close()

	// Repositories
	accountRepo := postgres.NewAccountRepository(dbPool)
	ledgerRepo := postgres.NewLedgerRepository(dbPool)
	betRepo := postgres.NewBetRepository(dbPool)
	idemRepo := postgres.NewIdempotencyRepository(dbPool)

	// Transaction manager used by services
	txManager := postgres.NewTransactionManager(dbPool)

	// Event catalog, optionally fronted by a redis snapshot cache
	var cat catalog.Catalog = catalog.NewPostgresCatalog(dbPool)
	if cfg.Redis.Addr != "" {
		rdb, err := catalog.ConnectRedis(cfg.Redis.Addr)
		if err != nil {
			log.Fatal().Err(err).Msg("failed to connect to redis")
		}
		defer rdb.Close()
		cat = catalog.NewCachedCatalog(cat, rdb, cfg.Redis.OddsTTL, log)
		log.Info().Str("addr", cfg.Redis.Addr).Msg("odds cache enabled")
	}

	// Bet lifecycle event publisher, no-op unless brokers are configured
	var pub producer.Publisher = producer.NopPublisher{}
	if cfg.Kafka.Brokers != "" {
		kp := producer.NewKafkaPublisher(cfg.Kafka.Brokers, cfg.Kafka.Topic, log)
		defer kp.Close()
		pub = kp
		log.Info().Str("brokers", cfg.Kafka.Brokers).Str("topic", cfg.Kafka.Topic).Msg("bet event publishing enabled")
	}

	// Services
	betService := service.NewBetService(accountRepo, ledgerRepo, betRepo, idemRepo, cat, txManager, pub, cfg.Bet, log)
	settlementService := service.NewSettlementService(accountRepo, ledgerRepo, betRepo, cat, txManager, pub, cfg.Bet, log)
	reconService := service.NewReconciliationService(accountRepo, ledgerRepo, txManager, cfg.Worker.ReconcileBatch, log)

	// Root context to be canceled on SIGINT / SIGTERM
	ctx, stop := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
	defer stop()

	// Worker auditing account balances against the ledger
	reconWorker := worker.NewReconciliationWorker(reconService, cfg.Worker.ReconcileInterval, log)
	reconWorker.Start(ctx)
	defer reconWorker.Stop()

	// http handler
	h := handler.NewHandler(betService, settlementService, log)
	router := h.SetupRoutes()

	// http server configuration
	srv := &http.Server{
		Addr:         ":" + cfg.Server.Port,
		Handler:      router,
		ReadTimeout:  cfg.Server.ReadTimeout,
		WriteTimeout: cfg.Server.WriteTimeout,
	}

	go func() {
		if err := srv.ListenAndServe(); err != nil && err != http.ErrServerClosed {
			log.Fatal().Err(err).Msg("Failed to start server")
		}
	}()

	log.Info().Str("port", cfg.Server.Port).Msg("Server started")

	// Wait for shutdown signal
	<-ctx.Done()
	log.Info().Msg("Shutdown signal received, starting graceful shutdown...")

	// Graceful shutdown
	shutdownCtx, shutdownCancel := context.WithTimeout(context.Background(), cfg.Server.ShutdownTimeout)
	defer shutdownCancel()

	if err := srv.Shutdown(shutdownCtx); err != nil {
		log.Error().Err(err).Msg("Server shutdown error")
	} else {
		log.Info().Msg("HTTP server stopped gracefully")
	}

	log.Info().Msg("Shutdown complete")
}
