// Package bootstrap wires configuration, storage, and the
// classification stack into runnable components for the cmd
// entrypoints.
package bootstrap

import (
	"fmt"

	"github.com/jonesrussell/comment-sentiment/internal/config"
	"github.com/jonesrussell/comment-sentiment/internal/logger"
)

// LoadConfig loads configuration from the environment and .env files.
func LoadConfig() (*config.Config, error) {
	cfg, err := config.Load()
	if err != nil {
		return nil, fmt.Errorf("load config: %w", err)
	}
	return cfg, nil
}

// CreateLogger creates a logger instance from configuration.
func CreateLogger(cfg *config.Config) (logger.Logger, error) {
	level := cfg.Logging.Level
	if cfg.Service.Debug {
		level = "debug"
	}

	log, err := logger.New(level)
	if err != nil {
		return nil, fmt.Errorf("create logger: %w", err)
	}
	return log.With(logger.String("service", cfg.Service.Name)), nil
}
