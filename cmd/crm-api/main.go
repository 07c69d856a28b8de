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
	"github.com/redis/go-redis/v9"
	"go.mongodb.org/mongo-driver/mongo/readpref"
	"go.uber.org/zap"

	_ "github.com/noah-isme/admissions-crm-api/api/swagger"
	"github.com/noah-isme/admissions-crm-api/internal/handler"
	"github.com/noah-isme/admissions-crm-api/internal/repository"
	"github.com/noah-isme/admissions-crm-api/internal/router"
	"github.com/noah-isme/admissions-crm-api/internal/service"
	"github.com/noah-isme/admissions-crm-api/pkg/cache"
	"github.com/noah-isme/admissions-crm-api/pkg/config"
	"github.com/noah-isme/admissions-crm-api/pkg/database"
	"github.com/noah-isme/admissions-crm-api/pkg/logger"
)

// @title Admissions CRM API
// @version 1.0.0
// @description Student directory, follow-up tasks, notes and communication logs for admissions staff.
// @BasePath /api
// @schemes http https
// @securityDefinitions.apikey BearerAuth
// @in header
// @name Authorization

const shutdownTimeout = 15 * time.Second

func main() {
	cfg, err := config.Load()
	if err != nil {
		log.Fatalf("failed to load config: %v", err)
	}
	if err := cfg.Validate(); err != nil {
		log.Fatalf("invalid config: %v", err)
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

	mongoClient, err := database.NewMongo(ctx, cfg.Mongo, metrics)
	if err != nil {
		logr.Fatal("failed to connect to mongo", zap.Error(err))
	}
	defer func() {
		disconnectCtx, cancel := context.WithTimeout(context.Background(), shutdownTimeout)
		defer cancel()
		_ = mongoClient.Disconnect(disconnectCtx)
	}()
	db := mongoClient.Database(cfg.Mongo.Database)
	if err := repository.EnsureIndexes(ctx, db); err != nil {
		logr.Warn("index bootstrap failed", zap.Error(err))
	}

	var redisClient *redis.Client
	if cfg.Cache.Enabled {
		redisClient, err = cache.NewRedis(ctx, cfg.Redis)
		if err != nil {
			logr.Warn("redis unavailable, continuing without cache", zap.Error(err))
			redisClient = nil
		} else {
			defer redisClient.Close() //nolint:errcheck
		}
	}

	cacheSvc := service.NewCacheService(repository.NewCacheRepository(redisClient, "crm"), metrics, logr, redisClient != nil)
	validate := service.NewValidator()

	studentRepo := repository.NewStudentRepository(db)
	configSvc := service.NewConfigurationService(repository.NewConfigurationRepository(db), cacheSvc, cfg.Cache.ConfigTTL, validate, logr)
	userSvc := service.NewUserService(repository.NewUserRepository(db), validate, logr)
	tokenSvc := service.NewTokenService(service.TokenConfig{
		Secret:   cfg.Auth.TokenSecret,
		Issuer:   cfg.Auth.Issuer,
		Audience: cfg.Auth.Audience,
	})

	checks := map[string]handler.Pinger{
		"mongo": handler.PingFunc(func(ctx context.Context) error { return mongoClient.Ping(ctx, readpref.Primary()) }),
	}
	if redisClient != nil {
		checks["redis"] = handler.PingFunc(func(ctx context.Context) error { return redisClient.Ping(ctx).Err() })
	}

	engine := router.New(router.Options{
		APIPrefix:      cfg.APIPrefix,
		AllowedOrigins: cfg.CORS.AllowedOrigins,
		EnableDocs:     cfg.Env != config.EnvProduction,
		Logger:         logr,
		Metrics:        metrics,
		Tokens:         tokenSvc,
		Roles:          userSvc,
		Students: handler.NewStudentHandler(
			service.NewStudentSearchService(studentRepo, configSvc, metrics, logr),
			service.NewStudentService(studentRepo, cacheSvc, cfg.Cache.StatsTTL, logr),
			service.NewExportService(studentRepo, logr),
		),
		Tasks: handler.NewTaskHandler(service.NewTaskService(repository.NewTaskRepository(db), validate, logr)),
		Notes: handler.NewNoteHandler(service.NewNoteService(repository.NewNoteRepository(db), validate, logr)),
		Activity: handler.NewActivityHandler(
			service.NewCommunicationService(repository.NewCommunicationRepository(db), validate, logr),
			service.NewInteractionService(repository.NewInteractionRepository(db), validate, logr),
		),
		Users:  handler.NewUserHandler(userSvc),
		Config: handler.NewConfigurationHandler(configSvc),
		Health: handler.NewMetricsHandler(metrics, checks["mongo"], checks),
	})

	srv := &http.Server{
		Addr:              fmt.Sprintf(":%d", cfg.Port),
		Handler:           engine,
		ReadHeaderTimeout: 10 * time.Second,
	}

	go func() {
		logr.Info("server starting", zap.String("addr", srv.Addr), zap.String("env", cfg.Env), zap.Bool("cache", cacheSvc.Enabled()))
		if err := srv.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			logr.Fatal("server failed", zap.Error(err))
		}
	}()

	<-ctx.Done()
	logr.Info("shutting down")
	shutdownCtx, cancel := context.WithTimeout(context.Background(), shutdownTimeout)
	defer cancel()
	if err := srv.Shutdown(shutdownCtx); err != nil {
		logr.Error("graceful shutdown failed", zap.Error(err))
	}
}
