package main

import (
	"context"
	"log"

	"github.com/joho/godotenv"
	"go.uber.org/zap"

	"finboard/internal/api"
	"finboard/internal/auth"
	"finboard/internal/config"
	"finboard/internal/db"
	"finboard/internal/middleware"
	"finboard/internal/store"
)

func main() {
	if err := godotenv.Load(); err != nil {
		log.Printf("Warning: Error loading .env file: %v", err)
	}

	logger, err := zap.NewProduction()
	if err != nil {
		log.Fatalf("Error creating logger: %v", err)
	}
	defer logger.Sync()

	cfg, err := config.Load()
	if err != nil {
		logger.Fatal("loading configuration", zap.Error(err))
	}
	if cfg.UsingDefaultSecret() {
		logger.Warn("JWT_SECRET not set, using insecure default")
	}

	ctx := context.Background()
	client, err := db.Connect(ctx, cfg.MongoURI)
	if err != nil {
		logger.Fatal("creating store client", zap.Error(err))
	}
	defer client.Disconnect(ctx)

	// An unreachable store at startup is logged, not fatal: the driver
	// connects lazily, so requests fail individually until it recovers.
	if err := db.Ping(ctx, client); err != nil {
		logger.Error("store unreachable at startup", zap.Error(err))
	} else {
		logger.Info("connected to store",
			zap.String("database", cfg.DatabaseName),
			zap.String("collection", db.CollectionName))
	}

	creds, err := auth.NewStaticCredentials(cfg.AuthEmail, cfg.AuthPassword)
	if err != nil {
		logger.Fatal("preparing credentials", zap.Error(err))
	}

	txns := store.NewMongoStore(db.Transactions(client, cfg.DatabaseName))
	server := api.NewServer(txns, creds, middleware.NewAuth(cfg.JWTSecret), logger)

	logger.Info("server starting", zap.String("port", cfg.Port))
	if err := server.Start(":" + cfg.Port); err != nil {
		logger.Fatal("server stopped", zap.Error(err))
	}
}
