package app

import (
	"context"
	"database/sql"
	"errors"
	"log/slog"

	"github.com/thenoetrevino/taskmaster/internal/database"
	taskservice "github.com/thenoetrevino/taskmaster/internal/services/task"
)

// App holds all application services and provides dependency injection.
// This is the main application container that manages service lifecycles.
type App struct {
	db     *sql.DB
	store  *database.TaskStore
	logger *slog.Logger

	// openErr is set when the database could not be opened; Initialize reports it
	openErr error

	// Service layer (business logic)
	TaskService taskservice.Service
}

// New creates a new App around an already open database.
// This is the single entry point for creating the application container.
func New(db *sql.DB, opts ...Option) *App {
	cfg := &appConfig{logger: slog.Default()}
	for _, opt := range opts {
		opt(cfg)
	}

	storeOpts := []database.StoreOption{
		database.WithDevMode(cfg.devMode),
		database.WithLogger(cfg.logger),
	}
	if cfg.clock != nil {
		storeOpts = append(storeOpts, database.WithClock(cfg.clock))
	}

	store := database.NewTaskStore(db, storeOpts...)
	return &App{
		db:          db,
		store:       store,
		logger:      cfg.logger,
		TaskService: taskservice.NewService(store),
	}
}

// Open opens the database at path and builds the container around it.
// An unavailable database does not fail Open: the returned App reports the
// failure from Initialize so interactive callers can show it instead of exiting.
func Open(ctx context.Context, path string, opts ...Option) *App {
	db, err := database.Open(ctx, path)
	a := New(db, opts...)
	if err != nil {
		a.logger.Error("failed to open database", "path", path, "error", err)
		a.openErr = err
	}
	return a
}

// Initialize prepares storage. It must succeed before any task operation.
func (a *App) Initialize(ctx context.Context) error {
	if a.openErr != nil {
		return a.openErr
	}
	return a.TaskService.Initialize(ctx)
}

// Repo returns the underlying repository for direct database access
func (a *App) Repo() database.TaskRepository {
	return a.store
}

// Close releases the database connection
func (a *App) Close() error {
	if a.db == nil {
		return nil
	}
	if err := a.db.Close(); err != nil && !errors.Is(err, sql.ErrConnDone) {
		return err
	}
	return nil
}
