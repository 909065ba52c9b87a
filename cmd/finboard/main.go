package main

import (
	"context"
	"errors"
	"fmt"
	"os"
	"os/signal"
	"syscall"

	"finboard/internal/amqp"
	"finboard/internal/backend"
	"finboard/internal/cli"
	"finboard/internal/log"
	"finboard/internal/notify"
	"finboard/internal/sheets"
)

func main() {
	os.Exit(run())
}

func run() int {
	// Load .env file for local development (ignore errors in production)
	cli.LoadEnvFile()

	// Bootstrap logging at warn so page output stays clean; the configured
	// level applies once the config is loaded.
	logger := cli.SetupLogger("warn", os.Stderr)
	cfg := cli.LoadAndValidateConfig(logger)
	logger = cli.SetupLogger(cfg.LogLevel, os.Stderr)

	ctx, stop := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
	defer stop()

	backendCfg, err := backend.FromAppConfig(cfg)
	if err != nil {
		logger.Error("Invalid backend configuration", log.FieldError, err)
		return 1
	}
	factory := backend.NewFactory(logger)

	tokens, err := factory.CreateTokenStore(ctx, backendCfg)
	if err != nil {
		logger.Error("Failed to initialize token store", log.FieldError, err)
		return 1
	}
	if tokens.Cleanup != nil {
		defer tokens.Cleanup()
	}

	// The exporter is only built when the export command asks for it.
	var exporter *backend.ExporterResult
	openExporter := func(ctx context.Context) (sheets.TransactionExporter, error) {
		if exporter == nil {
			res, err := factory.CreateExporter(ctx, backendCfg)
			if err != nil {
				return nil, err
			}
			exporter = res
		}
		return exporter.Exporter, nil
	}
	defer func() {
		if exporter != nil && exporter.Cleanup != nil {
			exporter.Cleanup()
		}
	}()

	sinks := notify.Multi{notify.NewWriter(os.Stderr), notify.NewLogNotifier(logger)}
	publisher, err := factory.CreatePublisher(ctx, backendCfg)
	if err != nil {
		logger.Error("Failed to initialize notification publisher", log.FieldError, err)
		return 1
	}
	if publisher.Cleanup != nil {
		defer publisher.Cleanup()
	}

	var app *cli.App
	if publisher.Client != nil {
		sinks = append(sinks, amqp.NewNotifier(publisher.Client, func() string {
			if u, ok := app.Session().User(); ok {
				return u.ID
			}
			return ""
		}, logger))
	}

	app = cli.New(cli.Options{
		APIURL:     cfg.APIURL,
		Timeout:    cfg.HTTPTimeout,
		Tokens:     tokens.Tokens,
		Notifier:   sinks,
		Out:        os.Stdout,
		Err:        os.Stderr,
		Logger:     logger,
		LatestOnly: cfg.LatestOnly,
		Exporter:   openExporter,
	})
	defer app.Close()

	if err := app.Run(ctx, os.Args[1:]); err != nil {
		var usage *cli.UsageError
		if errors.As(err, &usage) {
			fmt.Fprintln(os.Stderr, err)
			cli.Usage(os.Stderr)
			return 2
		}
		logger.Debug("Command failed", log.FieldError, err)
		return 1
	}
	return 0
}
