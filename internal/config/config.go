// Package config loads process configuration from RPG_SHEET_* environment
// variables and builds the process logger.
package config

import (
	"fmt"
	"time"

	"github.com/caarlos0/env/v11"

	"github.com/KirkDiggler/rpg-sheet/internal/errors"
)

// EnvPrefix is prepended to every variable name
const EnvPrefix = "RPG_SHEET_"

// Store kinds
const (
	StoreRedis  = "redis"
	StoreSQLite = "sqlite"
)

// Config is the process configuration. Cobra flags override these values.
type Config struct {
	GRPCPort        int           `env:"GRPC_PORT" envDefault:"50051"`
	Store           string        `env:"STORE" envDefault:"redis"`
	RedisAddr       string        `env:"REDIS_ADDR" envDefault:"localhost:6379"`
	SQLitePath      string        `env:"SQLITE_PATH" envDefault:"rpg-sheet.db"`
	SheetID         string        `env:"SHEET_ID" envDefault:"default"`
	RulesetPath     string        `env:"RULESET_PATH"`
	LogLevel        string        `env:"LOG_LEVEL" envDefault:"info"`
	LogFormat       string        `env:"LOG_FORMAT" envDefault:"text"`
	ShutdownTimeout time.Duration `env:"SHUTDOWN_TIMEOUT" envDefault:"30s"`
}

// Load parses the process environment
func Load() (*Config, error) {
	return parse(env.Options{Prefix: EnvPrefix})
}

// LoadFrom parses an explicit environment map instead of the process
// environment
func LoadFrom(environment map[string]string) (*Config, error) {
	return parse(env.Options{Prefix: EnvPrefix, Environment: environment})
}

func parse(opts env.Options) (*Config, error) {
	var cfg Config
	if err := env.ParseWithOptions(&cfg, opts); err != nil {
		return nil, fmt.Errorf("parse env: %w", err)
	}
	return &cfg, nil
}

// Validate checks the values after env and flags are applied
func (c *Config) Validate() error {
	vb := errors.NewValidationBuilder()

	errors.ValidateRange("grpc_port", c.GRPCPort, 1, 65535, vb)
	errors.ValidateEnum("store", c.Store, []string{StoreRedis, StoreSQLite}, vb)
	if c.Store == StoreRedis && c.RedisAddr == "" {
		vb.RequiredField("redis_addr")
	}
	if c.Store == StoreSQLite && c.SQLitePath == "" {
		vb.RequiredField("sqlite_path")
	}
	if c.SheetID == "" {
		vb.RequiredField("sheet_id")
	}
	if _, err := ParseLevel(c.LogLevel); err != nil {
		vb.Field("log_level", err.Error())
	}
	errors.ValidateEnum("log_format", c.LogFormat, []string{FormatText, FormatJSON}, vb)
	if c.ShutdownTimeout <= 0 {
		vb.Field("shutdown_timeout", "must be positive")
	}

	return vb.Build()
}
