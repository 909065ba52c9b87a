package backend

import (
	"context"
	"fmt"

	"finboard/internal/amqp"
	"finboard/internal/log"
	"finboard/internal/session"
	gsheet "finboard/internal/sheets/google"
	"finboard/internal/sheets/memory"
	"finboard/internal/storage"
)

// DefaultFactory implements the Factory interface
type DefaultFactory struct {
	logger *log.Logger
}

// NewFactory creates a new backend factory
func NewFactory(logger *log.Logger) Factory {
	return &DefaultFactory{
		logger: log.OrDiscard(logger).WithComponent(log.ComponentBackend),
	}
}

// CreateTokenStore implements Factory.CreateTokenStore
func (f *DefaultFactory) CreateTokenStore(ctx context.Context, config Config) (*TokenResult, error) {
	if err := config.ValidateTokenBackend(); err != nil {
		return nil, err
	}

	switch config.TokenBackend {
	case SQLiteBackend:
		repo, err := storage.NewSQLiteRepository(config.TokenDBPath, f.logger)
		if err != nil {
			return nil, fmt.Errorf("failed to initialize SQLite repository: %w", err)
		}
		f.logger.InfoContext(ctx, "Initialized SQLite token store",
			"db_path", config.TokenDBPath, "slot", config.TokenSlot)
		return &TokenResult{
			Tokens:     repo.TokenStore(config.TokenSlot),
			Repository: repo,
			Cleanup:    repo.Close,
		}, nil
	default:
		f.logger.InfoContext(ctx, "Initialized memory token store")
		return &TokenResult{Tokens: session.NewMemoryTokenStore("")}, nil
	}
}

// CreateExporter implements Factory.CreateExporter
func (f *DefaultFactory) CreateExporter(ctx context.Context, config Config) (*ExporterResult, error) {
	if err := config.ValidateExportBackend(); err != nil {
		return nil, err
	}

	switch config.ExportBackend {
	case SheetsBackend:
		cli, err := gsheet.New(ctx, gsheet.Config{
			SpreadsheetID:   config.GoogleSpreadsheetID,
			SheetName:       config.GoogleSheetName,
			CredentialsFile: config.GoogleCredentialsFile,
		}, f.logger)
		if err != nil {
			return nil, fmt.Errorf("failed to initialize Google Sheets client: %w", err)
		}
		f.logger.InfoContext(ctx, "Initialized Google Sheets exporter", "sheet", config.GoogleSheetName)
		return &ExporterResult{Exporter: cli}, nil
	default:
		f.logger.InfoContext(ctx, "Initialized memory exporter")
		return &ExporterResult{Exporter: memory.New(config.GoogleSheetName)}, nil
	}
}

// CreatePublisher implements Factory.CreatePublisher. AMQP is optional: an
// empty URL or an unreachable broker yields a result with a nil Client.
func (f *DefaultFactory) CreatePublisher(ctx context.Context, config Config) (*PublisherResult, error) {
	if config.AMQPURL == "" {
		return &PublisherResult{}, nil
	}
	client, err := amqp.NewClient(config.AMQPURL, config.AMQPExchange, config.AMQPQueue, f.logger)
	if err != nil {
		f.logger.WarnContext(ctx, "Failed to initialize AMQP client, continuing without notification fan-out",
			log.FieldError, err)
		return &PublisherResult{}, nil
	}
	f.logger.InfoContext(ctx, "Initialized AMQP client",
		"exchange", config.AMQPExchange,
		"queue", config.AMQPQueue)
	return &PublisherResult{Client: client, Cleanup: client.Close}, nil
}
