package main

import (
	"context"
	"errors"
	"log"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"alumni-directory-backend/config"
	_ "alumni-directory-backend/docs" // Important for Swagger
	"alumni-directory-backend/internal/delivery/http/middleware"
	v1 "alumni-directory-backend/internal/delivery/http/v1"
	"alumni-directory-backend/internal/repository/postgres"
	"alumni-directory-backend/internal/usecase"
	"alumni-directory-backend/pkg/auth"
	"alumni-directory-backend/pkg/database"
	"alumni-directory-backend/pkg/logger"
	"alumni-directory-backend/pkg/redis"
	"alumni-directory-backend/pkg/storage"
	"alumni-directory-backend/pkg/validation"

	"go.uber.org/zap"
)

// @title           Alumni Directory API
// @version         1.0
// @description     Alumni directory backend: academic registration, alumni profiles and directory search.
// @host            localhost:8080
// @BasePath        /v1
// @securityDefinitions.apikey BearerAuth
// @in header
// @name Authorization
func main() {
	// 1. Load Config
	cfg, err := config.LoadConfig()
	if err != nil {
		log.Fatalf("Failed to load config: %v", err)
	}

	// 2. Setup Logger
	if _, err := logger.Init(cfg.LogLevel, cfg.LogFormat); err != nil {
		log.Fatalf("Failed to init logger: %v", err)
	}
	defer logger.Sync()
	logger.L().Info("starting alumni directory backend", zap.String("port", cfg.Port))

	ctx := context.Background()

	// 3. Setup Database
	dbPool, err := database.NewPostgresConnection(ctx, cfg.DBUrl)
	if err != nil {
		logger.L().Error("failed to connect to database", zap.Error(err))
		os.Exit(1)
	}
	defer dbPool.Close()

	// 4. Setup Redis (optional, rate limiting falls back to memory)
	if cfg.RedisURL != "" {
		if err := redis.Initialize(redis.Config{URL: cfg.RedisURL, Password: cfg.RedisPassword}); err != nil {
			logger.L().Warn("redis unavailable, using in-memory rate limiting", zap.Error(err))
		} else {
			defer redis.Close()
		}
	}

	// 5. Setup Object Storage
	avatarStorage, err := storage.NewS3Storage(ctx, storage.Config{
		Endpoint:        cfg.S3Endpoint,
		PublicEndpoint:  cfg.S3PublicEndpoint,
		Region:          cfg.S3Region,
		Bucket:          cfg.S3Bucket,
		AccessKeyID:     cfg.S3AccessKey,
		SecretAccessKey: cfg.S3SecretKey,
		UploadURLTTL:    cfg.UploadURLTTL,
	})
	if err != nil {
		logger.L().Error("failed to init object storage", zap.Error(err))
		os.Exit(1)
	}

	// 6. Setup Repositories
	userRepo := postgres.NewUserRepository(dbPool)
	profileRepo := postgres.NewAlumniProfileRepository(dbPool)

	// 7. Setup UseCases
	validate := validation.New()
	commandUC := usecase.NewAlumniCommandUsecase(userRepo, profileRepo, avatarStorage, validate, time.Now)
	queryUC := usecase.NewAlumniQueryUsecase(userRepo, profileRepo, time.Now)
	accountUC := usecase.NewAccountUsecase(userRepo, profileRepo, avatarStorage, commandUC, queryUC, validate, cfg.LinkedEmailDomain, time.Now)
	avatarUC := usecase.NewAvatarUsecase(avatarStorage)
	exportUC := usecase.NewExportUsecase(profileRepo, time.Now)
	checks := map[string]usecase.HealthCheck{
		"database": dbPool.Ping,
		"storage":  avatarStorage.CheckBucket,
	}
	if cfg.RedisURL != "" {
		checks["redis"] = redis.HealthCheck
	}
	healthUC := usecase.NewHealthUsecase(checks, 2*time.Second)

	// 8. Setup Auth (JWKS only when RS256 issuers are configured)
	authCfg := middleware.AuthConfig{Secret: cfg.JWTSecret}
	if cfg.JWKSURL != "" {
		authCfg.JWKS = auth.NewProvider(cfg.JWKSURL)
	}

	// 9. Setup Router
	router := v1.NewRouter(v1.RouterDeps{
		AccountUC: accountUC,
		CommandUC: commandUC,
		QueryUC:   queryUC,
		AvatarUC:  avatarUC,
		ExportUC:  exportUC,
		HealthUC:  healthUC,
		Auth:      authCfg,
		Config:    cfg,
	})

	// 10. Start Server
	srv := &http.Server{
		Addr:              ":" + cfg.Port,
		Handler:           router,
		ReadHeaderTimeout: 10 * time.Second,
	}

	go func() {
		if err := srv.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			logger.L().Error("listen failed", zap.Error(err))
		}
	}()

	// Graceful Shutdown
	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	<-quit
	logger.L().Info("shutting down server")

	shutdownCtx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()

	if err := srv.Shutdown(shutdownCtx); err != nil {
		logger.L().Error("server forced to shutdown", zap.Error(err))
	}

	logger.L().Info("server exiting")
}
