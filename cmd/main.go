package main

import (
	"context"
	"os"
	"os/signal"
	"syscall"

	"github.com/AnthoniusHendriyanto/shop-service/config"
	"github.com/AnthoniusHendriyanto/shop-service/db"
	"github.com/AnthoniusHendriyanto/shop-service/internal/auth/service"
	"github.com/AnthoniusHendriyanto/shop-service/internal/logging"
	"github.com/AnthoniusHendriyanto/shop-service/internal/server"
)

func main() {
	cfg := config.Load()
	logger := logging.New(cfg.LogLevel, cfg.LogFormat)

	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()

	sigs := make(chan os.Signal, 1)
	signal.Notify(sigs, syscall.SIGINT, syscall.SIGTERM, syscall.SIGQUIT)
	go func() {
		<-sigs
		cancel()
	}()

	hasher := service.NewBcryptHasher(cfg.BcryptCost)
	tokenService := service.NewTokenService(cfg.AccessTokenSecret, cfg.RefreshTokenSecret, cfg.AccessExpiryMin, cfg.RefreshExpiryMin)

	store := db.New()
	if cfg.SeedSampleData {
		if err := db.Seed(ctx, store, hasher); err != nil {
			logger.Error(ctx, "failed to seed sample data", "error", err)
			os.Exit(1)
		}
		logger.Info(ctx, "sample data loaded", "demo_login", "test@example.com")
	}

	srv := server.New(cfg, store, tokenService, hasher, logger)
	if err := srv.Run(ctx); err != nil {
		logger.Error(ctx, "server exited", "error", err)
		os.Exit(1)
	}
	logger.Info(ctx, "server stopped")
}
