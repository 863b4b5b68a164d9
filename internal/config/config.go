package config

import (
	"fmt"
	"os"
	"strconv"
	"time"
)

// Config holds all application configuration
type Config struct {
	// Server configuration
	Server ServerConfig

	// Spreadsheet configuration
	Sheets SheetsConfig

	// Session configuration
	Session SessionConfig

	// Logging configuration
	Log LogConfig
}

// ServerConfig holds HTTP server settings
type ServerConfig struct {
	Port            string
	ReadTimeout     time.Duration
	WriteTimeout    time.Duration
	ShutdownTimeout time.Duration
}

// SheetsConfig holds the Google Sheets store settings.
// One spreadsheet holds all four worksheets.
type SheetsConfig struct {
	CredentialsFile string
	SpreadsheetID   string
	Clients         string
	Addresses       string
	Services        string
	Users           string
}

// SessionConfig holds cookie session settings
type SessionConfig struct {
	Secret string
	Name   string
}

// LogConfig holds logging settings
type LogConfig struct {
	Level  string
	Format string // "json" or "pretty"
}

// Load reads configuration from environment variables
func Load() (*Config, error) {
	cfg := &Config{
		Server: ServerConfig{
			Port:            getEnv("PORT", "5000"),
			ReadTimeout:     getDurationEnv("SERVER_READ_TIMEOUT", 30*time.Second),
			WriteTimeout:    getDurationEnv("SERVER_WRITE_TIMEOUT", 30*time.Second),
			ShutdownTimeout: getDurationEnv("SERVER_SHUTDOWN_TIMEOUT", 30*time.Second),
		},
		Sheets: SheetsConfig{
			CredentialsFile: getEnv("GOOGLE_CREDENTIALS_FILE", "credentials.json"),
			SpreadsheetID:   getEnv("SPREADSHEET_ID", ""),
			Clients:         getEnv("SHEET_CLIENTS", "CLIENTES"),
			Addresses:       getEnv("SHEET_ADDRESSES", "DIRECCIONES"),
			Services:        getEnv("SHEET_SERVICES", "SERVICIOS"),
			Users:           getEnv("SHEET_USERS", "USUARIOS"),
		},
		Session: SessionConfig{
			Secret: getEnv("SESSION_SECRET", ""),
			Name:   getEnv("SESSION_NAME", "smmb_session"),
		},
		Log: LogConfig{
			Level:  getEnv("LOG_LEVEL", "info"),
			Format: getEnv("LOG_FORMAT", "json"),
		},
	}

	// Validate required configuration
	if err := cfg.Validate(); err != nil {
		return nil, err
	}

	return cfg, nil
}

// Validate checks if the configuration is valid
func (c *Config) Validate() error {
	if c.Sheets.SpreadsheetID == "" {
		return fmt.Errorf("SPREADSHEET_ID is required")
	}
	if c.Sheets.CredentialsFile == "" {
		return fmt.Errorf("GOOGLE_CREDENTIALS_FILE is required")
	}
	if c.Session.Secret == "" {
		return fmt.Errorf("SESSION_SECRET is required")
	}
	return nil
}

// Helper functions for environment variable parsing

func getEnv(key, defaultValue string) string {
	if value := os.Getenv(key); value != "" {
		return value
	}
	return defaultValue
}

func getIntEnv(key string, defaultValue int) int {
	if value := os.Getenv(key); value != "" {
		if intVal, err := strconv.Atoi(value); err == nil {
			return intVal
		}
	}
	return defaultValue
}

func getDurationEnv(key string, defaultValue time.Duration) time.Duration {
	if value := os.Getenv(key); value != "" {
		if duration, err := time.ParseDuration(value); err == nil {
			return duration
		}
	}
	return defaultValue
}
