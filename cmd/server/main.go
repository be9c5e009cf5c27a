package main

import (
	"context"
	"fmt"
	"net/http"
	"os"
	"os/signal"
	"syscall"

	"github.com/joho/godotenv"
	"github.com/rs/zerolog/log"

	"github.com/iho/tbrecon/internal/adapter/excel"
	httpAdapter "github.com/iho/tbrecon/internal/adapter/http"
	"github.com/iho/tbrecon/internal/adapter/http/handler"
	"github.com/iho/tbrecon/internal/adapter/id"
	"github.com/iho/tbrecon/internal/adapter/pdftext"
	"github.com/iho/tbrecon/internal/adapter/repository/instrumented"
	"github.com/iho/tbrecon/internal/adapter/repository/memory"
	redisRepo "github.com/iho/tbrecon/internal/adapter/repository/redis"
	"github.com/iho/tbrecon/internal/adapter/sheetfetch"
	"github.com/iho/tbrecon/internal/infrastructure/config"
	"github.com/iho/tbrecon/internal/infrastructure/logger"
	"github.com/iho/tbrecon/internal/infrastructure/metrics"
	redisInfra "github.com/iho/tbrecon/internal/infrastructure/redis"
	"github.com/iho/tbrecon/internal/reftable"
	"github.com/iho/tbrecon/internal/usecase"

	goredis "github.com/redis/go-redis/v9"
)

func main() {
	// Load .env if present
	_ = godotenv.Load()

	// Load configuration
	cfg, err := config.Load()
	if err != nil {
		log.Fatal().Err(err).Msg("failed to load configuration")
	}

	// Setup logger
	appLogger := logger.New(logger.Config{
		Level:  cfg.LogLevel,
		Format: cfg.LogFormat,
	})
	log.Logger = appLogger

	ctx := context.Background()

	// Reference table: built-in unless a profile is configured
	table := reftable.Default()
	if cfg.ReferenceTablePath != "" {
		table, err = reftable.LoadFile(cfg.ReferenceTablePath)
		if err != nil {
			log.Fatal().Err(err).Str("path", cfg.ReferenceTablePath).Msg("failed to load reference table")
		}
		log.Info().Str("path", cfg.ReferenceTablePath).Int("entries", len(table.Entries)).Msg("loaded reference table profile")
	}

	m := metrics.New()

	// Sheet cache: Redis when configured, in-process memory otherwise
	var redisClient *goredis.Client
	var sheetCache usecase.Cache
	if cfg.RedisURL != "" {
		redisClient, err = redisInfra.NewClient(ctx, cfg.RedisURL)
		if err != nil {
			log.Fatal().Err(err).Msg("failed to connect to redis")
		}
		defer redisClient.Close()
		log.Info().Msg("connected to redis")
		sheetCache = redisRepo.NewSheetCache(redisClient)
	} else {
		log.Info().Msg("no redis configured, caching sheets in memory")
		sheetCache = memory.NewCache()
	}
	sheetCache = instrumented.NewCache(sheetCache, m)

	// Wire the reconciliation pipeline
	fetcher := sheetfetch.NewFetcher(
		&http.Client{Timeout: cfg.SheetFetchTimeout},
		cfg.SheetURLTemplate,
		appLogger,
	)
	sheets := usecase.NewSheetSource(fetcher, sheetCache, cfg.SheetCacheTTL, appLogger)
	reconcileUC := usecase.NewReconcileUseCase(
		pdftext.NewExtractor(),
		sheets,
		excel.NewStaffDirectory(),
		table,
		id.NewULIDGenerator(),
		appLogger,
	)

	// Initialize handlers
	reconcileHandler := handler.NewReconcileHandler(reconcileUC, excel.NewRenderer(), m, appLogger)
	healthHandler := handler.NewHealthHandler(redisClient)

	// Create router
	router := httpAdapter.NewRouter(httpAdapter.RouterConfig{
		ReconcileHandler: reconcileHandler,
		HealthHandler:    healthHandler,
		Logger:           appLogger,
	})

	// Create server
	server := &http.Server{
		Addr:         fmt.Sprintf(":%s", cfg.HTTPPort),
		Handler:      router,
		ReadTimeout:  cfg.HTTPReadTimeout,
		WriteTimeout: cfg.HTTPWriteTimeout,
	}

	// Start server in goroutine
	go func() {
		log.Info().Str("port", cfg.HTTPPort).Msg("starting server")
		if err := server.ListenAndServe(); err != nil && err != http.ErrServerClosed {
			log.Fatal().Err(err).Msg("server failed")
		}
	}()

	// Wait for interrupt signal
	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	<-quit

	log.Info().Msg("shutting down server...")

	// Graceful shutdown
	shutdownCtx, cancel := context.WithTimeout(context.Background(), cfg.HTTPShutdownTimeout)
	defer cancel()

	if err := server.Shutdown(shutdownCtx); err != nil {
		log.Fatal().Err(err).Msg("server forced to shutdown")
	}

	log.Info().Msg("server stopped")
}
