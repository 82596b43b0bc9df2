package config

import (
	"strings"
	"testing"
	"time"

	"github.com/mmynk/roomsplit/internal/calculator"
)

func validConfig() Config {
	return Config{
		Port:            "8080",
		DataBackend:     BackendSQLite,
		DBPath:          "./test.db",
		DefaultCurrency: "AED",
		TokenTTL:        time.Hour,
	}
}

func TestConfig_Validate(t *testing.T) {
	tests := []struct {
		name        string
		mutate      func(c *Config)
		wantErr     bool
		errorString string
	}{
		{
			name:    "valid sqlite backend config",
			mutate:  func(c *Config) {},
			wantErr: false,
		},
		{
			name: "valid postgres backend config",
			mutate: func(c *Config) {
				c.DataBackend = BackendPostgres
				c.DatabaseURL = "postgres://localhost/roomsplit"
			},
			wantErr: false,
		},
		{
			name:        "invalid port - non-numeric",
			mutate:      func(c *Config) { c.Port = "abc" },
			wantErr:     true,
			errorString: "invalid port 'abc': must be a number",
		},
		{
			name:        "invalid port - out of range high",
			mutate:      func(c *Config) { c.Port = "70000" },
			wantErr:     true,
			errorString: "invalid port 70000: must be between 1 and 65535",
		},
		{
			name:        "invalid data backend",
			mutate:      func(c *Config) { c.DataBackend = "sheets" },
			wantErr:     true,
			errorString: "invalid data backend 'sheets'",
		},
		{
			name:        "postgres backend missing url",
			mutate:      func(c *Config) { c.DataBackend = BackendPostgres },
			wantErr:     true,
			errorString: "DATABASE_URL is required",
		},
		{
			name:        "sqlite backend missing path",
			mutate:      func(c *Config) { c.DBPath = "" },
			wantErr:     true,
			errorString: "DB_PATH is required",
		},
		{
			name:        "bad currency",
			mutate:      func(c *Config) { c.DefaultCurrency = "DIRHAM" },
			wantErr:     true,
			errorString: "must be a 3-letter code",
		},
		{
			name: "auth enabled with short secret",
			mutate: func(c *Config) {
				c.HouseholdPassphraseHash = "$2a$10$hash"
				c.JWTSecret = "short"
			},
			wantErr:     true,
			errorString: "JWT_SECRET must be at least 32 characters",
		},
		{
			name: "auth enabled with strong secret",
			mutate: func(c *Config) {
				c.HouseholdPassphraseHash = "$2a$10$hash"
				c.JWTSecret = strings.Repeat("s", 32)
			},
			wantErr: false,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			cfg := validConfig()
			tt.mutate(&cfg)

			err := cfg.Validate()
			if (err != nil) != tt.wantErr {
				t.Fatalf("Validate() error = %v, wantErr %v", err, tt.wantErr)
			}
			if tt.wantErr && !strings.Contains(err.Error(), tt.errorString) {
				t.Errorf("Validate() error = %q, want to contain %q", err.Error(), tt.errorString)
			}
		})
	}
}

func TestLoad(t *testing.T) {
	t.Setenv("PORT", "9090")
	t.Setenv("DATA_BACKEND", "SQLite")
	t.Setenv("DEFAULT_CURRENCY", "eur")
	t.Setenv("REMOVED_PARTICIPANT_POLICY", "retain")
	t.Setenv("TOKEN_TTL", "90m")
	t.Setenv("DB_MAX_CONNS", "not-a-number")
	t.Setenv("AMQP_URL", "")
	t.Setenv("HOUSEHOLD_PASSPHRASE_HASH", "")

	cfg, err := Load()
	if err != nil {
		t.Fatalf("Load() failed: %v", err)
	}

	if cfg.Port != "9090" {
		t.Errorf("Port = %s, want 9090", cfg.Port)
	}
	if cfg.DataBackend != BackendSQLite {
		t.Errorf("DataBackend = %s, want sqlite", cfg.DataBackend)
	}
	if cfg.DefaultCurrency != "EUR" {
		t.Errorf("DefaultCurrency = %s, want EUR", cfg.DefaultCurrency)
	}
	if cfg.RemovedPolicy != calculator.RetainRemoved {
		t.Errorf("RemovedPolicy = %v, want retain", cfg.RemovedPolicy)
	}
	if cfg.TokenTTL != 90*time.Minute {
		t.Errorf("TokenTTL = %v, want 90m", cfg.TokenTTL)
	}
	if cfg.DBMaxConns != 10 {
		t.Errorf("DBMaxConns = %d, want fallback 10", cfg.DBMaxConns)
	}
	if cfg.EventsEnabled() {
		t.Error("Expected events to be disabled without AMQP_URL")
	}
	if cfg.AuthEnabled() {
		t.Error("Expected auth to be disabled without passphrase hash")
	}
}

func TestLoad_InvalidPolicy(t *testing.T) {
	t.Setenv("REMOVED_PARTICIPANT_POLICY", "forgive")

	if _, err := Load(); err == nil {
		t.Error("Expected error for unknown removed participant policy")
	}
}
