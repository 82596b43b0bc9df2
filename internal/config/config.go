// Package config loads server settings from the environment, optionally
// seeded from a .env file.
package config

import (
	"fmt"
	"log/slog"
	"os"
	"strconv"
	"strings"
	"time"

	"github.com/joho/godotenv"

	"github.com/mmynk/roomsplit/internal/calculator"
)

const (
	BackendSQLite   = "sqlite"
	BackendPostgres = "postgres"
)

type Config struct {
	// HTTP Server
	Port string

	// Storage
	DataBackend string
	DBPath      string
	DatabaseURL string
	DBMaxConns  int

	// Ledger
	DefaultCurrency string
	RemovedPolicy   calculator.RemovedPolicy

	// Events
	AMQPURL      string
	AMQPExchange string

	// Auth
	JWTSecret               string
	TokenTTL                time.Duration
	HouseholdName           string
	HouseholdPassphraseHash string
}

// Load reads an optional .env file and builds a Config from the environment.
func Load() (*Config, error) {
	if err := godotenv.Load(); err != nil {
		slog.Debug("No .env file found, relying on environment variables")
	}

	policy, err := calculator.ParseRemovedPolicy(getEnv("REMOVED_PARTICIPANT_POLICY", "drop"))
	if err != nil {
		return nil, err
	}

	return &Config{
		Port: getEnv("PORT", "8080"),

		DataBackend: strings.ToLower(getEnv("DATA_BACKEND", BackendSQLite)),
		DBPath:      getEnv("DB_PATH", "./data/roomsplit.db"),
		DatabaseURL: getEnv("DATABASE_URL", ""),
		DBMaxConns:  getEnvInt("DB_MAX_CONNS", 10),

		DefaultCurrency: strings.ToUpper(getEnv("DEFAULT_CURRENCY", "AED")),
		RemovedPolicy:   policy,

		AMQPURL:      getEnv("AMQP_URL", ""),
		AMQPExchange: getEnv("AMQP_EXCHANGE", "roomsplit"),

		JWTSecret:               getEnv("JWT_SECRET", ""),
		TokenTTL:                getEnvDuration("TOKEN_TTL", 24*time.Hour),
		HouseholdName:           getEnv("HOUSEHOLD_NAME", "household"),
		HouseholdPassphraseHash: getEnv("HOUSEHOLD_PASSPHRASE_HASH", ""),
	}, nil
}

// AuthEnabled reports whether a household passphrase has been configured.
func (c *Config) AuthEnabled() bool {
	return c.HouseholdPassphraseHash != ""
}

// EventsEnabled reports whether ledger events should be published.
func (c *Config) EventsEnabled() bool {
	return c.AMQPURL != ""
}

// Validate validates the configuration and returns an error if invalid
func (c *Config) Validate() error {
	var errors []string

	if port, err := strconv.Atoi(c.Port); err != nil {
		errors = append(errors, fmt.Sprintf("invalid port '%s': must be a number", c.Port))
	} else if port < 1 || port > 65535 {
		errors = append(errors, fmt.Sprintf("invalid port %d: must be between 1 and 65535", port))
	}

	switch c.DataBackend {
	case BackendSQLite:
		if c.DBPath == "" {
			errors = append(errors, "DB_PATH is required for the sqlite backend")
		}
	case BackendPostgres:
		if c.DatabaseURL == "" {
			errors = append(errors, "DATABASE_URL is required for the postgres backend")
		}
	default:
		errors = append(errors, fmt.Sprintf("invalid data backend '%s': must be one of sqlite, postgres", c.DataBackend))
	}

	if len(c.DefaultCurrency) != 3 {
		errors = append(errors, fmt.Sprintf("invalid currency '%s': must be a 3-letter code", c.DefaultCurrency))
	}

	if c.AuthEnabled() {
		if len(c.JWTSecret) < 32 {
			errors = append(errors, "JWT_SECRET must be at least 32 characters when auth is enabled")
		}
		if c.TokenTTL <= 0 {
			errors = append(errors, "TOKEN_TTL must be positive")
		}
	}

	if len(errors) > 0 {
		return fmt.Errorf("configuration validation failed:\n  - %s", strings.Join(errors, "\n  - "))
	}
	return nil
}

func getEnv(key, fallback string) string {
	if value, ok := os.LookupEnv(key); ok && value != "" {
		return value
	}
	return fallback
}

func getEnvInt(key string, fallback int) int {
	if value := os.Getenv(key); value != "" {
		if n, err := strconv.Atoi(value); err == nil {
			return n
		}
		slog.Warn("Ignoring invalid integer setting", "key", key, "value", value)
	}
	return fallback
}

func getEnvDuration(key string, fallback time.Duration) time.Duration {
	if value := os.Getenv(key); value != "" {
		if d, err := time.ParseDuration(value); err == nil {
			return d
		}
		slog.Warn("Ignoring invalid duration setting", "key", key, "value", value)
	}
	return fallback
}
