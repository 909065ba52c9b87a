package config

import (
	"fmt"
	"net/url"
	"os"
	"path/filepath"
	"slices"
	"strconv"
	"strings"
	"time"

	"gopkg.in/yaml.v3"
)

type Config struct {
	// API client
	APIURL      string        `yaml:"api_url"`
	HTTPTimeout time.Duration `yaml:"http_timeout"`
	LatestOnly  bool          `yaml:"latest_only"`
	LogLevel    string        `yaml:"log_level"`

	// Session token persistence
	TokenBackend string `yaml:"token_backend"`
	TokenDBPath  string `yaml:"token_db"`
	TokenSlot    string `yaml:"token_slot"`

	// AMQP notification fan-out (disabled when AMQPURL is empty)
	AMQPURL      string `yaml:"amqp_url"`
	AMQPExchange string `yaml:"amqp_exchange"`
	AMQPQueue    string `yaml:"amqp_queue"`

	// Spreadsheet export
	ExportBackend         string `yaml:"export_backend"`
	GoogleSpreadsheetID   string `yaml:"google_spreadsheet_id"`
	GoogleSheetName       string `yaml:"google_sheet_name"`
	GoogleCredentialsFile string `yaml:"google_credentials_file"`

	// Mock API server
	Port          string `yaml:"port"`
	MockRateLimit int    `yaml:"mock_rate_limit"`
	MockSeed      bool   `yaml:"mock_seed"`

	// File is the YAML file the values were read from, if any.
	File string `yaml:"-"`

	fileErr error
}

var (
	validTokenBackends  = []string{"memory", "sqlite"}
	validExportBackends = []string{"memory", "sheets"}
	validLogLevels      = []string{"debug", "info", "warn", "warning", "error"}
)

func defaults() *Config {
	return &Config{
		APIURL:          "http://localhost:8081/api",
		HTTPTimeout:     15 * time.Second,
		LogLevel:        "info",
		TokenBackend:    "sqlite",
		TokenDBPath:     "./data/finboard.db",
		TokenSlot:       "default",
		AMQPExchange:    "finboard",
		AMQPQueue:       "notifications",
		ExportBackend:   "sheets",
		GoogleSheetName: "Transactions",
		Port:            "8081",
		MockRateLimit:   20,
	}
}

// Load builds the configuration from defaults, then the YAML file named by
// FINBOARD_CONFIG, then environment variables. A broken YAML file is reported
// by Validate.
func Load() *Config {
	cfg := defaults()

	if path := os.Getenv("FINBOARD_CONFIG"); path != "" {
		cfg.File = path
		cfg.fileErr = cfg.readFile(path)
	}

	cfg.APIURL = getEnv("FINBOARD_API_URL", cfg.APIURL)
	cfg.HTTPTimeout = getEnvDuration("FINBOARD_HTTP_TIMEOUT", cfg.HTTPTimeout)
	cfg.LatestOnly = getEnvBool("FINBOARD_LATEST_ONLY", cfg.LatestOnly)
	cfg.LogLevel = getEnv("FINBOARD_LOG_LEVEL", cfg.LogLevel)

	cfg.TokenBackend = getEnv("FINBOARD_TOKEN_BACKEND", cfg.TokenBackend)
	cfg.TokenDBPath = getEnv("FINBOARD_TOKEN_DB", cfg.TokenDBPath)
	cfg.TokenSlot = getEnv("FINBOARD_TOKEN_SLOT", cfg.TokenSlot)

	cfg.AMQPURL = getEnv("AMQP_URL", cfg.AMQPURL)
	cfg.AMQPExchange = getEnv("AMQP_EXCHANGE", cfg.AMQPExchange)
	cfg.AMQPQueue = getEnv("AMQP_QUEUE", cfg.AMQPQueue)

	cfg.ExportBackend = getEnv("FINBOARD_EXPORT_BACKEND", cfg.ExportBackend)
	cfg.GoogleSpreadsheetID = getEnv("GOOGLE_SPREADSHEET_ID", cfg.GoogleSpreadsheetID)
	cfg.GoogleSheetName = getEnv("GOOGLE_SHEET_NAME", cfg.GoogleSheetName)
	cfg.GoogleCredentialsFile = getEnv("GOOGLE_APPLICATION_CREDENTIALS", cfg.GoogleCredentialsFile)

	cfg.Port = getEnv("PORT", cfg.Port)
	cfg.MockRateLimit = getEnvInt("MOCK_RATE_LIMIT", cfg.MockRateLimit)
	cfg.MockSeed = getEnvBool("MOCK_SEED", cfg.MockSeed)

	return cfg
}

func (c *Config) readFile(path string) error {
	data, err := os.ReadFile(path)
	if err != nil {
		return fmt.Errorf("read config file: %w", err)
	}
	if err := yaml.Unmarshal(data, c); err != nil {
		return fmt.Errorf("parse config file %s: %w", path, err)
	}
	return nil
}

// Validate validates the configuration and returns an error if invalid
func (c *Config) Validate() error {
	var errors []string

	if c.fileErr != nil {
		errors = append(errors, c.fileErr.Error())
	}

	if u, err := url.Parse(c.APIURL); err != nil {
		errors = append(errors, fmt.Sprintf("invalid API URL '%s': %v", c.APIURL, err))
	} else if u.Scheme != "http" && u.Scheme != "https" {
		errors = append(errors, fmt.Sprintf("invalid API URL scheme '%s': must be 'http' or 'https'", u.Scheme))
	} else if u.Host == "" {
		errors = append(errors, fmt.Sprintf("invalid API URL '%s': missing host", c.APIURL))
	}

	if c.HTTPTimeout < time.Second {
		errors = append(errors, fmt.Sprintf("invalid HTTP timeout %v: must be at least 1 second", c.HTTPTimeout))
	} else if c.HTTPTimeout > 5*time.Minute {
		errors = append(errors, fmt.Sprintf("invalid HTTP timeout %v: must be at most 5 minutes", c.HTTPTimeout))
	}

	if c.LogLevel != "" && !slices.Contains(validLogLevels, strings.ToLower(c.LogLevel)) {
		errors = append(errors, fmt.Sprintf("invalid log level '%s': must be one of %v", c.LogLevel, validLogLevels))
	}

	if !slices.Contains(validTokenBackends, c.TokenBackend) {
		errors = append(errors, fmt.Sprintf("invalid token backend '%s': must be one of %v", c.TokenBackend, validTokenBackends))
	}
	if c.TokenBackend == "sqlite" {
		if c.TokenDBPath == "" {
			errors = append(errors, "token database path cannot be empty when using sqlite token backend")
		} else {
			dir := filepath.Dir(c.TokenDBPath)
			if dir != "." && dir != "" {
				if _, err := os.Stat(dir); os.IsNotExist(err) {
					if err := os.MkdirAll(dir, 0755); err != nil {
						errors = append(errors, fmt.Sprintf("cannot create token database directory '%s': %v", dir, err))
					}
				}
			}
		}
	}

	if c.AMQPURL != "" {
		if parsedURL, err := url.Parse(c.AMQPURL); err != nil {
			errors = append(errors, fmt.Sprintf("invalid AMQP URL '%s': %v", c.AMQPURL, err))
		} else if parsedURL.Scheme != "amqp" && parsedURL.Scheme != "amqps" {
			errors = append(errors, fmt.Sprintf("invalid AMQP URL scheme '%s': must be 'amqp' or 'amqps'", parsedURL.Scheme))
		}
		if c.AMQPExchange == "" {
			errors = append(errors, "AMQP exchange name cannot be empty when AMQP URL is provided")
		}
		if c.AMQPQueue == "" {
			errors = append(errors, "AMQP queue name cannot be empty when AMQP URL is provided")
		}
	}

	if !slices.Contains(validExportBackends, c.ExportBackend) {
		errors = append(errors, fmt.Sprintf("invalid export backend '%s': must be one of %v", c.ExportBackend, validExportBackends))
	}
	if c.ExportBackend == "sheets" && c.GoogleSpreadsheetID != "" {
		if c.GoogleSheetName == "" {
			errors = append(errors, "Google Sheet name is required when a spreadsheet ID is set")
		}
		if c.GoogleCredentialsFile != "" {
			if _, err := os.Stat(c.GoogleCredentialsFile); os.IsNotExist(err) {
				errors = append(errors, fmt.Sprintf("Google credentials file does not exist: %s", c.GoogleCredentialsFile))
			}
		}
	}

	if port, err := strconv.Atoi(c.Port); err != nil {
		errors = append(errors, fmt.Sprintf("invalid port '%s': must be a number", c.Port))
	} else if port < 1 || port > 65535 {
		errors = append(errors, fmt.Sprintf("invalid port %d: must be between 1 and 65535", port))
	}

	if c.MockRateLimit < 1 {
		errors = append(errors, fmt.Sprintf("invalid mock rate limit %d: must be at least 1", c.MockRateLimit))
	} else if c.MockRateLimit > 10000 {
		errors = append(errors, fmt.Sprintf("invalid mock rate limit %d: must be at most 10000", c.MockRateLimit))
	}

	if len(errors) > 0 {
		return fmt.Errorf("configuration validation failed:\n- %s", strings.Join(errors, "\n- "))
	}
	return nil
}

// AMQPEnabled reports whether notifications should be published.
func (c *Config) AMQPEnabled() bool {
	return c.AMQPURL != ""
}

func getEnv(key, defaultValue string) string {
	if value := os.Getenv(key); value != "" {
		return value
	}
	return defaultValue
}

func getEnvInt(key string, defaultValue int) int {
	if value := os.Getenv(key); value != "" {
		if i, err := strconv.Atoi(value); err == nil {
			return i
		}
	}
	return defaultValue
}

func getEnvDuration(key string, defaultValue time.Duration) time.Duration {
	if value := os.Getenv(key); value != "" {
		if d, err := time.ParseDuration(value); err == nil {
			return d
		}
	}
	return defaultValue
}

func getEnvBool(key string, defaultValue bool) bool {
	if value := os.Getenv(key); value != "" {
		if b, err := strconv.ParseBool(value); err == nil {
			return b
		}
	}
	return defaultValue
}
