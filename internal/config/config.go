// Package config loads runtime configuration from environment variables.
package config

import (
	"fmt"
	"strings"
	"time"

	"github.com/kelseyhightower/envconfig"
	"github.com/shopspring/decimal"

	"github.com/mmynk/carnival/internal/calculator"
)

// Config holds runtime configuration for the server.
type Config struct {
	AppAddr         string        `envconfig:"APP_ADDR" default:":8080"`
	AppReadTimeout  time.Duration `envconfig:"APP_READ_TIMEOUT" default:"15s"`
	AppWriteTimeout time.Duration `envconfig:"APP_WRITE_TIMEOUT" default:"15s"`

	DBPath string `envconfig:"DB_PATH" default:"./data/carnival.db"`

	LogLevel  string `envconfig:"LOG_LEVEL" default:"info"`
	LogFormat string `envconfig:"LOG_FORMAT" default:"pretty"`

	ReconcilePolicy    string          `envconfig:"RECONCILE_POLICY" default:"presence"`
	DriftWarnThreshold decimal.Decimal `envconfig:"DRIFT_WARN_THRESHOLD" default:"0.01"`

	// JWTSecret enables recorder attribution on writes when set.
	JWTSecret  string `envconfig:"JWT_SECRET"`
	CORSOrigin string `envconfig:"CORS_ORIGIN" default:"*"`

	// RateLimitPerMinute caps RPC calls per client IP. Zero disables it.
	RateLimitPerMinute int `envconfig:"RATE_LIMIT_PER_MINUTE" default:"120"`
}

// Load reads configuration from environment variables.
func Load() (*Config, error) {
	var cfg Config
	if err := envconfig.Process("", &cfg); err != nil {
		return nil, err
	}
	if _, err := cfg.Policy(); err != nil {
		return nil, err
	}
	switch strings.ToLower(cfg.LogFormat) {
	case "pretty", "json":
	default:
		return nil, fmt.Errorf("unknown log format %q", cfg.LogFormat)
	}
	if cfg.RateLimitPerMinute < 0 {
		return nil, fmt.Errorf("rate limit cannot be negative, got %d", cfg.RateLimitPerMinute)
	}
	if cfg.DriftWarnThreshold.IsNegative() {
		return nil, fmt.Errorf("drift warn threshold cannot be negative, got %s", cfg.DriftWarnThreshold)
	}
	return &cfg, nil
}

// Policy returns the parsed reconcile policy.
func (c *Config) Policy() (calculator.ReconcilePolicy, error) {
	return calculator.ParsePolicy(c.ReconcilePolicy)
}
