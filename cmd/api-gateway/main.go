package main

import (
	"context"
	"errors"
	"fmt"
	"log"
	"net/http"
	"os/signal"
	"syscall"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/jmoiron/sqlx"
	swaggerFiles "github.com/swaggo/files"
	ginSwagger "github.com/swaggo/gin-swagger"
	"go.uber.org/zap"

	_ "github.com/noah-isme/monev-api/api/swagger"
	"github.com/noah-isme/monev-api/internal/handler"
	"github.com/noah-isme/monev-api/internal/middleware"
	"github.com/noah-isme/monev-api/internal/repository"
	"github.com/noah-isme/monev-api/internal/service"
	"github.com/noah-isme/monev-api/internal/upstream"
	"github.com/noah-isme/monev-api/pkg/cache"
	"github.com/noah-isme/monev-api/pkg/config"
	"github.com/noah-isme/monev-api/pkg/database"
	"github.com/noah-isme/monev-api/pkg/jobs"
	"github.com/noah-isme/monev-api/pkg/logger"
	corsmiddleware "github.com/noah-isme/monev-api/pkg/middleware/cors"
	reqidmiddleware "github.com/noah-isme/monev-api/pkg/middleware/requestid"
)

// @title MONEV API
// @version 1.0.0
// @description Aggregation layer between the MONEV dashboard and the SAS analytics backend
// @BasePath /api/v1
// @schemes http https

func main() {
	cfg, err := config.Load()
	if err != nil {
		log.Fatalf("failed to load config: %v", err)
	}

	logr, err := logger.New(cfg)
	if err != nil {
		log.Fatalf("failed to init logger: %v", err)
	}
	defer logr.Sync() //nolint:errcheck

	if cfg.Env == config.EnvProduction {
		gin.SetMode(gin.ReleaseMode)
	}

	ctx, stop := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
	defer stop()

	metrics := service.NewMetricsService()
	client := upstream.NewClient(cfg.Upstream, logr, upstream.WithObserver(metrics))

	actionService := service.NewETLActionService(nil, metrics, logr)
	if cfg.ActionLog.Enabled {
		db, err := openActionLog(ctx, cfg, logr)
		if err != nil {
			logr.Fatal("failed to open etl action log", zap.Error(err))
		}
		defer db.Close() //nolint:errcheck
		actionService = service.NewETLActionService(repository.NewETLActionRepository(db), metrics, logr)
		if cfg.ActionLog.Workers > 0 {
			// Background context so queued records still flush after a shutdown signal.
			actionService.StartAsync(context.Background(), jobs.QueueConfig{Workers: cfg.ActionLog.Workers, MaxRetries: 3})
			defer actionService.Stop()
		}
	}

	var guard handler.TriggerGuard
	if cfg.RateLimit.Enabled {
		rdb, err := cache.NewRedis(ctx, cfg.Redis)
		if err != nil {
			logr.Fatal("failed to connect redis", zap.Error(err))
		}
		counter := repository.NewRateLimitRepository(rdb)
		defer closeCounter(counter, logr)
		limiter := middleware.RateLimitConfig{
			Counter:  counter,
			Observer: metrics,
			Limit:    cfg.RateLimit.Limit,
			Window:   cfg.RateLimit.Window,
			Logger:   logr,
		}
		guard = func(scope string) gin.HandlerFunc { return middleware.RateLimit(limiter, scope) }
	}

	etlService := service.NewETLService(client, logr)
	tpService := service.NewTPEtlService(client, logr)
	statsService := service.NewStatsService(client, logr)
	exportService := service.NewExportService(tpService, service.ExportServiceConfig{
		Locale:  cfg.Export.Locale,
		MaxRows: cfg.Export.MaxRows,
	}, logr)

	r := gin.New()
	r.Use(gin.Recovery())
	r.Use(reqidmiddleware.Middleware())
	r.Use(logger.GinMiddleware(logr))
	r.Use(corsmiddleware.New(cfg.CORS.AllowedOrigins))
	r.Use(middleware.Metrics(metrics))

	handler.Register(r, cfg.APIPrefix, handler.Handlers{
		Stats:   handler.NewStatsHandler(statsService),
		ETL:     handler.NewETLHandler(etlService, actionService),
		TPEtl:   handler.NewTPEtlHandler(tpService),
		Export:  handler.NewExportHandler(exportService),
		Metrics: handler.NewMetricsHandler(metrics, client),
	}, guard)

	if cfg.Env != config.EnvProduction {
		r.GET("/docs/*any", ginSwagger.WrapHandler(swaggerFiles.Handler))
	}

	addr := fmt.Sprintf(":%d", cfg.Port)
	srv := &http.Server{Addr: addr, Handler: r, ReadHeaderTimeout: 10 * time.Second}

	go func() {
		logr.Sugar().Infow("server starting", "addr", addr, "env", cfg.Env, "upstream", client.BaseURL())
		if err := srv.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			logr.Sugar().Fatalw("server failed", "error", err)
		}
	}()

	<-ctx.Done()
	shutdownCtx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()
	if err := srv.Shutdown(shutdownCtx); err != nil {
		logr.Sugar().Errorw("graceful shutdown failed", "error", err)
	}
	logr.Info("server stopped")
}

func openActionLog(ctx context.Context, cfg *config.Config, logr *zap.Logger) (*sqlx.DB, error) {
	db, err := database.NewPostgres(ctx, cfg.Database)
	if err != nil {
		return nil, err
	}
	if cfg.ActionLog.AutoMigrate {
		if err := database.Migrate(db); err != nil {
			_ = db.Close()
			return nil, fmt.Errorf("migrate etl action log: %w", err)
		}
		logr.Info("etl action log migrated")
	}
	return db, nil
}

func closeCounter(counter *repository.RateLimitRepository, logr *zap.Logger) {
	if err := counter.Close(); err != nil {
		logr.Warn("failed to close redis", zap.Error(err))
	}
}
