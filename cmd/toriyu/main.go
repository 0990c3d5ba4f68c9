package main

import (
	"context"
	"log/slog"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/hibiken/asynq"

	"github.com/toriyu-water/toriyu-pos/internal/app"
	"github.com/toriyu-water/toriyu-pos/internal/auth"
	"github.com/toriyu-water/toriyu-pos/internal/catalog"
	"github.com/toriyu-water/toriyu-pos/internal/observability"
	"github.com/toriyu-water/toriyu-pos/internal/platform/cache"
	"github.com/toriyu-water/toriyu-pos/internal/platform/db"
	"github.com/toriyu-water/toriyu-pos/internal/purchasing"
	"github.com/toriyu-water/toriyu-pos/internal/reports"
	"github.com/toriyu-water/toriyu-pos/internal/sales"
	"github.com/toriyu-water/toriyu-pos/internal/shared"
	"github.com/toriyu-water/toriyu-pos/jobs"
)

func main() {
	if app.InTestMode() {
		slog.Default().Info("test mode detected, skipping runtime startup")
		return
	}

	ctx, stop := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
	defer stop()

	cfg, err := app.LoadConfig()
	if err != nil {
		slog.Default().Error("load config", slog.Any("error", err))
		os.Exit(1)
	}

	logger := app.NewLogger(cfg)

	dbpool, err := db.New(ctx, cfg.PGDSN)
	if err != nil {
		logger.Error("connect postgres", slog.Any("error", err))
		os.Exit(1)
	}
	defer dbpool.Close()

	redisClient, err := cache.New(ctx, cfg.RedisAddr)
	if err != nil {
		logger.Error("connect redis", slog.Any("error", err))
		os.Exit(1)
	}
	defer func() {
		if err := redisClient.Close(); err != nil {
			logger.Warn("redis close", slog.Any("error", err))
		}
	}()

	sessionManager := shared.NewSessionManager(redisClient, "toriyu_session", cfg.SessionSecret, cfg.SessionTTL, cfg.IsProduction())
	csrfManager := shared.NewCSRFManager(cfg.CSRFSecret)

	authMiddleware := auth.Middleware{Logger: logger}

	authRepo := auth.NewRepository(dbpool)
	authService := auth.NewService(authRepo)
	authHandler := auth.NewHandler(logger, authService, sessionManager, csrfManager)

	catalogRepo := catalog.NewRepository(dbpool)
	catalogService := catalog.NewService(catalogRepo)
	catalogHandler := catalog.NewHandler(logger, catalogService, authMiddleware)

	reportCache := reports.NewCache(redisClient, cfg.ReportCacheTTL)
	reportRepo := reports.NewRepository(dbpool)
	reportService := reports.NewService(logger, reportRepo, reportCache)
	reportHandler := reports.NewHandler(logger, reportService, authMiddleware)

	salesRepo := sales.NewRepository(dbpool)
	salesService := sales.NewService(logger, salesRepo, catalogRepo, sales.PoolTxRunner(dbpool), reportCache)
	salesHandler := sales.NewHandler(logger, salesService, authMiddleware)

	purchasingRepo := purchasing.NewRepository(dbpool)
	purchasingService := purchasing.NewService(logger, purchasingRepo, catalogRepo, purchasing.PoolTxRunner(dbpool), reportCache)
	purchasingHandler := purchasing.NewHandler(logger, purchasingService, authMiddleware)

	metrics := observability.NewMetrics()

	inspector := asynq.NewInspector(asynq.RedisClientOpt{Addr: cfg.RedisAddr})
	defer func() {
		if err := inspector.Close(); err != nil {
			logger.Warn("inspector close", slog.Any("error", err))
		}
	}()
	jobHandler := jobs.NewHandler(inspector, logger)

	router := app.NewRouter(app.RouterParams{
		Logger:            logger,
		Config:            cfg,
		SessionManager:    sessionManager,
		CSRFManager:       csrfManager,
		AuthHandler:       authHandler,
		CatalogHandler:    catalogHandler,
		SalesHandler:      salesHandler,
		PurchasingHandler: purchasingHandler,
		ReportsHandler:    reportHandler,
		JobHandler:        jobHandler,
		Metrics:           metrics,
	})

	server := &http.Server{
		Addr:         cfg.AppAddr,
		Handler:      router,
		ReadTimeout:  cfg.AppReadTimeout,
		WriteTimeout: cfg.AppWriteTimeout,
	}

	go func() {
		logger.Info("starting http server", slog.String("addr", cfg.AppAddr))
		if err := server.ListenAndServe(); err != nil && err != http.ErrServerClosed {
			logger.Error("http server", slog.Any("error", err))
			stop()
		}
	}()

	<-ctx.Done()
	logger.Info("shutting down")

	shutdownCtx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()
	if err := server.Shutdown(shutdownCtx); err != nil {
		logger.Error("graceful shutdown", slog.Any("error", err))
	}
}
