package app

import (
	"log/slog"
	"time"
)

// Option is a functional option for configuring App initialization
type Option func(*appConfig)

// appConfig holds the configuration for App initialization
type appConfig struct {
	devMode bool
	clock   func() time.Time
	logger  *slog.Logger
}

// WithDevMode enables destructive development operations such as Reset
func WithDevMode(enabled bool) Option {
	return func(cfg *appConfig) {
		cfg.devMode = enabled
	}
}

// WithClock overrides the clock used to stamp new tasks
func WithClock(now func() time.Time) Option {
	return func(cfg *appConfig) {
		cfg.clock = now
	}
}

// WithLogger sets the logger for the application
func WithLogger(logger *slog.Logger) Option {
	return func(cfg *appConfig) {
		if logger != nil {
			cfg.logger = logger
		}
	}
}
