package backend

import (
	"fmt"

	"finboard/internal/config"
)

// FromAppConfig converts the application config to backend config
func FromAppConfig(appConfig *config.Config) (Config, error) {
	if appConfig == nil {
		return Config{}, fmt.Errorf("app config is nil")
	}

	cfg := Config{
		TokenBackend: BackendType(appConfig.TokenBackend),
		TokenDBPath:  appConfig.TokenDBPath,
		TokenSlot:    appConfig.TokenSlot,

		ExportBackend:         BackendType(appConfig.ExportBackend),
		GoogleSpreadsheetID:   appConfig.GoogleSpreadsheetID,
		GoogleSheetName:       appConfig.GoogleSheetName,
		GoogleCredentialsFile: appConfig.GoogleCredentialsFile,

		AMQPURL:      appConfig.AMQPURL,
		AMQPExchange: appConfig.AMQPExchange,
		AMQPQueue:    appConfig.AMQPQueue,
	}
	if !cfg.TokenBackend.IsValidTokenBackend() {
		return Config{}, fmt.Errorf("invalid token backend in config: %s", appConfig.TokenBackend)
	}
	if !cfg.ExportBackend.IsValidExportBackend() {
		return Config{}, fmt.Errorf("invalid export backend in config: %s", appConfig.ExportBackend)
	}
	return cfg, nil
}

// ValidateTokenBackend checks the settings CreateTokenStore needs.
func (c Config) ValidateTokenBackend() error {
	if !c.TokenBackend.IsValidTokenBackend() {
		return fmt.Errorf("invalid token backend: %s", c.TokenBackend)
	}
	if c.TokenBackend == SQLiteBackend && c.TokenDBPath == "" {
		return fmt.Errorf("SQLite database path is required for sqlite token backend")
	}
	return nil
}

// ValidateExportBackend checks the settings CreateExporter needs.
func (c Config) ValidateExportBackend() error {
	if !c.ExportBackend.IsValidExportBackend() {
		return fmt.Errorf("invalid export backend: %s", c.ExportBackend)
	}
	if c.ExportBackend == SheetsBackend {
		if c.GoogleSpreadsheetID == "" {
			return fmt.Errorf("Google Spreadsheet ID is required for sheets backend")
		}
		if c.GoogleSheetName == "" {
			return fmt.Errorf("Google Sheet name is required for sheets backend")
		}
	}
	return nil
}
