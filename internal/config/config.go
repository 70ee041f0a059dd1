// internal/config/config.go
package config

import (
	"fmt"

	"github.com/jaydeep-99o/Trade-pay/pkg/db"

	"github.com/kelseyhightower/envconfig"
	"github.com/shopspring/decimal"
)

// AppConfig holds all application-wide configuration, read from the
// environment with sensible local-development defaults.
type AppConfig struct {
	ServerPort string `envconfig:"SERVER_PORT" default:"8080"`

	DBHost     string `envconfig:"DB_HOST" default:"localhost"`
	DBPort     int    `envconfig:"DB_PORT" default:"5432"`
	DBUser     string `envconfig:"DB_USER" default:"user"`
	DBPassword string `envconfig:"DB_PASSWORD" default:"password"`
	DBName     string `envconfig:"DB_NAME" default:"tradepay"`
	DBSSLMode  string `envconfig:"DB_SSLMODE" default:"disable"`

	// StartingBalance is credited to every account at registration.
	StartingBalance int64 `envconfig:"STARTING_BALANCE" default:"10000"`
	// MinTransferAmount is the smallest transferable unit.
	MinTransferAmount int64 `envconfig:"MIN_TRANSFER_AMOUNT" default:"1"`
	// TxMaxAttempts bounds the optimistic-concurrency retry loop.
	TxMaxAttempts int `envconfig:"TX_MAX_ATTEMPTS" default:"3"`
}

// LoadConfig reads configuration from environment variables.
func LoadConfig() (*AppConfig, error) {
	var cfg AppConfig
	if err := envconfig.Process("", &cfg); err != nil {
		return nil, fmt.Errorf("failed to process environment: %w", err)
	}
	if cfg.StartingBalance < 0 {
		return nil, fmt.Errorf("STARTING_BALANCE must not be negative, got %d", cfg.StartingBalance)
	}
	if cfg.MinTransferAmount <= 0 {
		return nil, fmt.Errorf("MIN_TRANSFER_AMOUNT must be positive, got %d", cfg.MinTransferAmount)
	}
	if cfg.TxMaxAttempts <= 0 {
		return nil, fmt.Errorf("TX_MAX_ATTEMPTS must be positive, got %d", cfg.TxMaxAttempts)
	}
	return &cfg, nil
}

// DBConfig returns the database connection settings.
func (c *AppConfig) DBConfig() db.Config {
	return db.Config{
		Host:     c.DBHost,
		Port:     c.DBPort,
		User:     c.DBUser,
		Password: c.DBPassword,
		DBName:   c.DBName,
		SSLMode:  c.DBSSLMode,
	}
}

// StartingBalanceDecimal returns the registration credit as a decimal amount.
func (c *AppConfig) StartingBalanceDecimal() decimal.Decimal {
	return decimal.NewFromInt(c.StartingBalance)
}

// MinTransferDecimal returns the minimum transferable unit as a decimal amount.
func (c *AppConfig) MinTransferDecimal() decimal.Decimal {
	return decimal.NewFromInt(c.MinTransferAmount)
}
