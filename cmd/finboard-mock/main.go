package main

import (
	"context"
	"errors"
	"net/http"
	"os"
	"time"

	"finboard/internal/cli"
	"finboard/internal/log"
	"finboard/internal/middleware/ratelimit"
	"finboard/internal/mockapi"
)

func main() {
	// Load .env file for local development (ignore errors in production/docker)
	cli.LoadEnvFile()

	logger := cli.SetupLogger("info", os.Stdout)
	cfg := cli.LoadAndValidateConfig(logger)
	logger = cli.SetupLogger(cfg.LogLevel, os.Stdout)

	store := mockapi.NewStore()
	if cfg.MockSeed {
		user, err := mockapi.Seed(store)
		if err != nil {
			logger.Error("Failed to seed demo data", log.FieldError, err)
			os.Exit(1)
		}
		logger.Info("Seeded demo account", "email", user.Email, "password", mockapi.DemoPassword)
	}

	rate := ratelimit.DefaultConfig()
	rate.RequestsPerSecond = cfg.MockRateLimit
	rate.Burst = cfg.MockRateLimit * 2

	srv := mockapi.NewServer(":"+cfg.Port, store,
		mockapi.WithLogger(logger),
		mockapi.WithRateLimit(rate),
	)
	srv.WriteTimeout = 10 * time.Second
	srv.IdleTimeout = 60 * time.Second
	srv.MaxHeaderBytes = 1 << 16 // 64KB

	ctx, done := cli.GracefulShutdown(logger, 30*time.Second, func(ctx context.Context) {
		if err := srv.Shutdown(ctx); err != nil {
			logger.Error("Server shutdown error", log.FieldError, err)
		}
	})

	logger.Info("Starting finboard mock API", "port", cfg.Port, "seeded", cfg.MockSeed,
		log.FieldOperation, log.OpStartup)
	if err := srv.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
		logger.Error("Server error", log.FieldError, err, "port", cfg.Port)
		os.Exit(1)
	}

	cli.WaitForShutdown(ctx, done)
	logger.Info("Server stopped gracefully")
}
