package main

import (
	"context"
	"errors"
	"os"
	"time"

	"finboard/internal/amqp"
	"finboard/internal/cli"
	"finboard/internal/log"
)

// finboard-notify consumes the notifications published by the CLI and keeps
// a history of them in SQLite.
func main() {
	// Load .env file for local development (ignore errors in production/docker)
	cli.LoadEnvFile()

	logger := cli.SetupLogger("info", os.Stdout)
	cfg := cli.LoadAndValidateConfig(logger)
	logger = cli.SetupLogger(cfg.LogLevel, os.Stdout)

	if cfg.AMQPURL == "" {
		logger.Error("AMQP_URL is required for the notification worker")
		os.Exit(1)
	}
	logger.Info("Starting finboard-notify", log.FieldOperation, log.OpStartup)

	repo := cli.InitSQLite(logger, cfg.TokenDBPath)
	defer repo.Close()

	client, err := amqp.NewClient(cfg.AMQPURL, cfg.AMQPExchange, cfg.AMQPQueue, logger)
	if err != nil {
		logger.Error("Failed to initialize AMQP client", log.FieldError, err)
		os.Exit(1)
	}
	defer client.Close()

	ctx, done := cli.GracefulShutdown(logger, 30*time.Second, nil)

	handle := func(ctx context.Context, msg *amqp.NotificationMessage) error {
		n := msg.Notification()
		id, err := repo.AppendNotification(ctx, msg.UserID, n)
		if err != nil {
			return err
		}
		logger.InfoContext(ctx, "Recorded notification", log.FieldID, id, log.FieldUserID, msg.UserID,
			"type", string(n.Type), "message", n.Message, log.FieldOperation, log.OpConsume)
		return nil
	}

	if err := client.ConsumeNotifications(ctx, handle); err != nil && !errors.Is(err, context.Canceled) {
		logger.Error("Message consumption failed", log.FieldError, err)
		os.Exit(1)
	}

	cli.WaitForShutdown(ctx, done)
	logger.Info("Worker stopped")
}
