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
	"go.opentelemetry.io/contrib/instrumentation/net/http/otelhttp"
	"go.uber.org/zap"

	_ "github.com/noah-isme/colleague-student-api/api/swagger"
	"github.com/noah-isme/colleague-student-api/internal/handler"
	"github.com/noah-isme/colleague-student-api/internal/repository"
	"github.com/noah-isme/colleague-student-api/internal/router"
	"github.com/noah-isme/colleague-student-api/internal/service"
	"github.com/noah-isme/colleague-student-api/internal/telemetry"
	"github.com/noah-isme/colleague-student-api/pkg/cache"
	"github.com/noah-isme/colleague-student-api/pkg/config"
	"github.com/noah-isme/colleague-student-api/pkg/database"
	"github.com/noah-isme/colleague-student-api/pkg/logger"
)

// @title Colleague Student API
// @version 1.0.0
// @description Student reference data and section transactions over the ERP replica
// @BasePath /
// @schemes http
// @securityDefinitions.apikey BearerAuth
// @in header
// @name Authorization

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

	shutdownTracer, err := telemetry.InitTracer(cfg.Tracing.Enabled, cfg.ServiceName, logr)
	if err != nil {
		logr.Fatal("failed to init tracing", zap.Error(err))
	}

	db, err := database.NewPostgres(ctx, cfg.Database, cfg.ServiceName)
	if err != nil {
		logr.Fatal("failed to connect database", zap.Error(err))
	}
	defer db.Close()

	var metrics *service.MetricsService
	if cfg.Metrics.Enabled {
		metrics = service.NewMetricsService()
	}

	readiness := map[string]handler.Pinger{"database": handler.PingFunc(db.PingContext)}

	var cacheStore service.CacheRepository
	if cfg.Reference.CacheEnabled {
		client, err := cache.NewRedis(ctx, cfg.Redis)
		if err != nil {
			logr.Warn("redis unavailable, serving without cache", zap.Error(err))
		} else {
			cacheRepo := repository.NewCacheRepository(client, logr)
			defer cacheRepo.Close() //nolint:errcheck
			cacheStore = cacheRepo
			readiness["cache"] = cacheRepo
		}
	}
	cacheSvc := service.NewCacheService(cacheStore, metrics, cfg.Reference.CacheTTL, logr, cfg.Reference.CacheEnabled)

	sectionRepo := repository.NewSectionRepository(db, metrics)
	attendanceRepo := repository.NewSectionAttendanceRepository(db, metrics)
	registrationRepo := repository.NewRegistrationRepository(db, metrics)
	placeholderRepo := repository.NewCoursePlaceholderRepository(db, metrics)

	engine := router.New(router.Dependencies{
		Config: cfg,
		Logger: logr,
		DB:     db,
		Reference: repository.ReferenceOptions{
			Cache:   cacheSvc,
			TTL:     cfg.Reference.CacheTTL,
			Metrics: metrics,
			Logger:  logr,
		},
		Metrics:   metrics,
		Auth:      service.NewAuthService(service.AuthConfig{AccessTokenSecret: cfg.JWT.Secret, Issuer: cfg.JWT.Issuer}),
		Audit:     repository.NewAuditRepository(db),
		Readiness: readiness,

		Attendance:         service.NewAttendanceService(attendanceRepo, sectionRepo, nil, logr),
		Registration:       service.NewRegistrationService(registrationRepo, nil),
		CoursePlaceholders: service.NewCoursePlaceholderService(placeholderRepo, cacheSvc, cfg.Reference.CacheTTL, nil, logr),
		SectionPermissions: service.NewSectionPermissionService(sectionRepo),
		Textbooks:          service.NewTextbookService(sectionRepo, nil),
	})

	srv := &http.Server{
		Addr:              fmt.Sprintf(":%d", cfg.Port),
		Handler:           otelhttp.NewHandler(engine, cfg.ServiceName),
		ReadHeaderTimeout: 10 * time.Second,
	}

	go func() {
		logr.Info("server starting", zap.String("addr", srv.Addr), zap.String("env", cfg.Env))
		if err := srv.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			logr.Fatal("server failed", zap.Error(err))
		}
	}()

	<-ctx.Done()
	logr.Info("shutting down")

	shutdownCtx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()
	if err := srv.Shutdown(shutdownCtx); err != nil {
		logr.Warn("graceful shutdown failed", zap.Error(err))
	}
	if err := shutdownTracer(shutdownCtx); err != nil {
		logr.Warn("tracer shutdown failed", zap.Error(err))
	}
}
