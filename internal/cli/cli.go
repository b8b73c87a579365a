// Package cli holds the plumbing shared by the non-interactive commands
package cli

import (
	"context"
	"fmt"
	"log/slog"

	"github.com/thenoetrevino/taskmaster/internal/app"
	"github.com/thenoetrevino/taskmaster/internal/config"
	"github.com/thenoetrevino/taskmaster/internal/testutil"
)

type configKey struct{}

// CLI represents the CLI application context
type CLI struct {
	App   *app.App // Application container with services
	Dev   bool
	owned bool
}

// WithConfig stores the resolved configuration for commands to pick up
func WithConfig(ctx context.Context, cfg *config.Config) context.Context {
	return context.WithValue(ctx, configKey{}, cfg)
}

// ConfigFromContext returns the configuration stored by WithConfig, or nil
func ConfigFromContext(ctx context.Context) *config.Config {
	cfg, _ := ctx.Value(configKey{}).(*config.Config)
	return cfg
}

// NewCLI opens and initializes storage described by cfg
func NewCLI(ctx context.Context, cfg *config.Config) (*CLI, error) {
	application := app.Open(ctx, cfg.DatabasePath,
		app.WithDevMode(cfg.DevMode),
		app.WithLogger(slog.Default()),
	)
	if err := application.Initialize(ctx); err != nil {
		_ = application.Close()
		return nil, fmt.Errorf("failed to initialize database: %w", err)
	}

	return &CLI{
		App:   application,
		Dev:   cfg.DevMode,
		owned: true,
	}, nil
}

// GetCLIFromContext returns a CLI for the command's context. Tests inject a
// ready App under testutil.TestAppKey; otherwise the stored config (or the
// config file) decides where the database lives.
func GetCLIFromContext(ctx context.Context) (*CLI, error) {
	if testApp, ok := ctx.Value(testutil.TestAppKey).(*app.App); ok && testApp != nil {
		return &CLI{
			App: testApp,
			Dev: testApp.TaskService.ResetAvailable(),
		}, nil
	}

	cfg := ConfigFromContext(ctx)
	if cfg == nil {
		loaded, err := config.Load()
		if err != nil {
			return nil, fmt.Errorf("failed to load config: %w", err)
		}
		cfg = loaded
	}

	return NewCLI(ctx, cfg)
}

// Close cleans up CLI resources. An injected App belongs to the caller.
func (c *CLI) Close() error {
	if !c.owned {
		return nil
	}
	return c.App.Close()
}
