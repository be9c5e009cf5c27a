package config

import (
	"time"

	"github.com/caarlos0/env/v10"
)

// Config holds all application configuration.
type Config struct {
	// HTTP Server
	HTTPPort            string        `env:"HTTP_PORT"             envDefault:"8080"`
	HTTPReadTimeout     time.Duration `env:"HTTP_READ_TIMEOUT"     envDefault:"30s"`
	HTTPWriteTimeout    time.Duration `env:"HTTP_WRITE_TIMEOUT"    envDefault:"30s"`
	HTTPShutdownTimeout time.Duration `env:"HTTP_SHUTDOWN_TIMEOUT" envDefault:"10s"`

	// Staff reference sheet
	SheetURLTemplate  string        `env:"SHEET_URL_TEMPLATE"  envDefault:""`
	SheetFetchTimeout time.Duration `env:"SHEET_FETCH_TIMEOUT" envDefault:"30s"`
	SheetCacheTTL     time.Duration `env:"SHEET_CACHE_TTL"     envDefault:"24h"`

	// Redis (optional - leave empty to cache sheets in process memory)
	RedisURL string `env:"REDIS_URL" envDefault:""`

	// Reference table profile (optional - empty means the built-in table)
	ReferenceTablePath string `env:"REFERENCE_TABLE_PATH" envDefault:""`

	// Logging
	LogLevel  string `env:"LOG_LEVEL"  envDefault:"info"`
	LogFormat string `env:"LOG_FORMAT" envDefault:"json"`
}

// Load loads configuration from environment variables.
func Load() (*Config, error) {
	cfg := &Config{}
	err := env.Parse(cfg)
	if err != nil {
		return nil, err
	}

	return cfg, nil
}
