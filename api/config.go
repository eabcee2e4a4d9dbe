// Package api exposes the cronwhen engine over HTTP: one validation
// endpoint plus health and prometheus metrics. It is a thin shell; all
// semantics live in the root package.
package api

import (
	"fmt"

	"github.com/caarlos0/env/v11"
	"github.com/joho/godotenv"
	"go.uber.org/zap"
)

// Config is the server configuration, read from the environment with an
// optional .env file on top.
type Config struct {
	Addr         string `env:"CRONWHEN_ADDR" envDefault:":8080"`
	RunCount     int    `env:"CRONWHEN_RUN_COUNT" envDefault:"5"`
	MaxRunCount  int    `env:"CRONWHEN_MAX_RUN_COUNT" envDefault:"100"`
	IterationCap int    `env:"CRONWHEN_ITERATION_CAP" envDefault:"1576800"`
	LogLevel     string `env:"CRONWHEN_LOG_LEVEL" envDefault:"info"`
}

// LoadConfig reads the server configuration. A missing .env file is
// fine; a malformed environment is not.
func LoadConfig(logger *zap.SugaredLogger) (*Config, error) {
	if err := godotenv.Load(".env"); err != nil {
		logger.Debugw("no .env file loaded", "error", err)
	}
	cfg := &Config{}
	if err := env.Parse(cfg); err != nil {
		return nil, fmt.Errorf("api: parse environment: %w", err)
	}
	if err := cfg.validate(); err != nil {
		return nil, err
	}
	return cfg, nil
}

// validate rejects settings the validator would refuse per request, so
// a bad environment fails at startup rather than surfacing as a 500 on
// every call.
func (c *Config) validate() error {
	if c.RunCount <= 0 {
		return fmt.Errorf("api: CRONWHEN_RUN_COUNT must be greater than 0, got %d", c.RunCount)
	}
	if c.MaxRunCount < c.RunCount {
		return fmt.Errorf("api: CRONWHEN_MAX_RUN_COUNT must be at least CRONWHEN_RUN_COUNT (%d), got %d", c.RunCount, c.MaxRunCount)
	}
	if c.IterationCap <= 0 {
		return fmt.Errorf("api: CRONWHEN_ITERATION_CAP must be greater than 0, got %d", c.IterationCap)
	}
	return nil
}
