package backend

import (
	"context"

	"finboard/internal/amqp"
	"finboard/internal/session"
	"finboard/internal/sheets"
	"finboard/internal/storage"
)

// CleanupFunc represents a cleanup function for resources
type CleanupFunc func() error

// TokenResult holds the token store and, for sqlite, the repository behind it.
type TokenResult struct {
	Tokens     session.TokenStore
	Repository *storage.SQLiteRepository
	Cleanup    CleanupFunc
}

// ExporterResult holds the spreadsheet exporter.
type ExporterResult struct {
	Exporter sheets.TransactionExporter
	Cleanup  CleanupFunc
}

// PublisherResult holds the AMQP client. Client is nil when AMQP is not
// configured or could not be reached.
type PublisherResult struct {
	Client  *amqp.Client
	Cleanup CleanupFunc
}

// Factory creates backends based on configuration
type Factory interface {
	CreateTokenStore(ctx context.Context, config Config) (*TokenResult, error)
	CreateExporter(ctx context.Context, config Config) (*ExporterResult, error)
	CreatePublisher(ctx context.Context, config Config) (*PublisherResult, error)
}

// Config holds configuration for backend creation
type Config struct {
	// Session token persistence
	TokenBackend BackendType
	TokenDBPath  string
	TokenSlot    string

	// Spreadsheet export
	ExportBackend         BackendType
	GoogleSpreadsheetID   string
	GoogleSheetName       string
	GoogleCredentialsFile string

	// Notification fan-out, optional
	AMQPURL      string
	AMQPExchange string
	AMQPQueue    string
}

// BackendType represents the type of backend
type BackendType string

const (
	SQLiteBackend BackendType = "sqlite"
	SheetsBackend BackendType = "sheets"
	MemoryBackend BackendType = "memory"
)

// String implements fmt.Stringer
func (bt BackendType) String() string {
	return string(bt)
}

// IsValidTokenBackend reports whether bt can persist session tokens.
func (bt BackendType) IsValidTokenBackend() bool {
	return bt == SQLiteBackend || bt == MemoryBackend
}

// IsValidExportBackend reports whether bt can receive exports.
func (bt BackendType) IsValidExportBackend() bool {
	return bt == SheetsBackend || bt == MemoryBackend
}
