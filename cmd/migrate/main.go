package main

import (
	"context"
	"log"
	"os"
	"time"

	"alumni-directory-backend/config"
	"alumni-directory-backend/internal/repository/postgres"
	"alumni-directory-backend/pkg/database"
	"alumni-directory-backend/pkg/logger"

	"go.uber.org/zap"
)

// Applies the embedded schema. Every statement is idempotent so it is safe to rerun on deploy.
func main() {
	cfg, err := config.LoadConfig()
	if err != nil {
		log.Fatalf("Failed to load config: %v", err)
	}
	if _, err := logger.Init(cfg.LogLevel, cfg.LogFormat); err != nil {
		log.Fatalf("Failed to init logger: %v", err)
	}
	defer logger.Sync()

	ctx, cancel := context.WithTimeout(context.Background(), time.Minute)
	defer cancel()

	dbPool, err := database.NewPostgresConnection(ctx, cfg.DBUrl)
	if err != nil {
		logger.L().Error("failed to connect to database", zap.Error(err))
		os.Exit(1)
	}
	defer dbPool.Close()

	if err := postgres.ApplySchema(ctx, dbPool); err != nil {
		logger.L().Error("schema migration failed", zap.Error(err))
		os.Exit(1)
	}
	logger.L().Info("schema applied")
}
