package database

import (
	"context"
	"database/sql"
	"log/slog"
	"sync/atomic"
	"time"

	"github.com/thenoetrevino/taskmaster/internal/models"
)

const selectTasks = `SELECT id, title, description, priority, completed, created_at FROM tasks`

// TaskStore owns the task table. Construct it with NewTaskStore and call
// Initialize once at startup; every other method returns ErrNotInitialized
// until then.
type TaskStore struct {
	db          *sql.DB
	now         func() time.Time
	devMode     bool
	logger      *slog.Logger
	initialized atomic.Bool
}

var _ TaskRepository = (*TaskStore)(nil)

// StoreOption configures a TaskStore
type StoreOption func(*TaskStore)

// WithClock overrides the clock used for created_at
func WithClock(now func() time.Time) StoreOption {
	return func(s *TaskStore) {
		s.now = now
	}
}

// WithDevMode enables Reset
func WithDevMode(enabled bool) StoreOption {
	return func(s *TaskStore) {
		s.devMode = enabled
	}
}

// WithLogger sets the logger for store operations
func WithLogger(logger *slog.Logger) StoreOption {
	return func(s *TaskStore) {
		s.logger = logger
	}
}

// NewTaskStore wraps an open database connection
func NewTaskStore(db *sql.DB, opts ...StoreOption) *TaskStore {
	s := &TaskStore{
		db:     db,
		now:    time.Now,
		logger: slog.Default(),
	}
	for _, opt := range opts {
		opt(s)
	}
	return s
}

// Initialize creates the task table if it does not exist. It may be called
// any number of times and never modifies existing rows.
func (s *TaskStore) Initialize(ctx context.Context) error {
	if s.db == nil {
		return &StorageInitError{Op: "initialize", Err: ErrNoConnection}
	}
	if err := createSchema(ctx, s.db); err != nil {
		s.logger.Error("Error initializing database", "error", err)
		return &StorageInitError{Op: "initialize", Err: err}
	}
	s.initialized.Store(true)
	s.logger.Debug("database initialized")
	return nil
}

// Initialized reports whether Initialize has succeeded
func (s *TaskStore) Initialized() bool {
	return s.initialized.Load()
}

// DevMode reports whether Reset is enabled
func (s *TaskStore) DevMode() bool {
	return s.devMode
}

// Create inserts an active task and returns its id. An empty or unknown
// priority is stored as medium. Title emptiness is the caller's concern.
func (s *TaskStore) Create(ctx context.Context, title, description, priority string) (int, error) {
	if !s.Initialized() {
		return 0, ErrNotInitialized
	}

	p := models.ParsePriority(priority)
	result, err := s.db.ExecContext(ctx,
		`INSERT INTO tasks (title, description, priority, completed, created_at)
		 VALUES (?, ?, ?, 0, ?)`,
		title, description, string(p), formatTimestamp(s.now()),
	)
	if err != nil {
		s.logger.Error("Error adding task", "error", err)
		return 0, &StorageWriteError{Op: "create", Err: err}
	}

	id, err := result.LastInsertId()
	if err != nil {
		s.logger.Error("Error adding task", "error", err)
		return 0, &StorageWriteError{Op: "create", Err: err}
	}

	s.logger.Debug("task added", "id", id, "priority", p)
	return int(id), nil
}

// ListChecked returns every task, newest first, with ties broken by the
// higher id. Read failures are returned as *StorageReadError.
func (s *TaskStore) ListChecked(ctx context.Context) ([]*models.Task, error) {
	if !s.Initialized() {
		return nil, ErrNotInitialized
	}

	rows, err := s.db.QueryContext(ctx, selectTasks+` ORDER BY created_at DESC, id DESC`)
	if err != nil {
		return nil, &StorageReadError{Op: "list", Err: err}
	}
	defer func() {
		if err := rows.Close(); err != nil {
			s.logger.Error("error closing rows", "error", err)
		}
	}()

	tasks := []*models.Task{}
	for rows.Next() {
		task, err := scanTask(rows)
		if err != nil {
			return nil, &StorageReadError{Op: "list", Err: err}
		}
		tasks = append(tasks, task)
	}

	if err := rows.Err(); err != nil {
		return nil, &StorageReadError{Op: "list", Err: err}
	}

	s.logger.Debug("tasks loaded", "count", len(tasks))
	return tasks, nil
}

// List is ListChecked with failures degraded to an empty result. A caller
// cannot tell a read failure from an empty table; use ListChecked when
// that matters.
func (s *TaskStore) List(ctx context.Context) []*models.Task {
	tasks, err := s.ListChecked(ctx)
	if err != nil {
		s.logger.Error("Error getting tasks", "error", err)
		return []*models.Task{}
	}
	return tasks
}

// Delete removes the task with the given id and reports how many rows
// changed. A missing id is not an error.
func (s *TaskStore) Delete(ctx context.Context, id int) (int64, error) {
	if !s.Initialized() {
		return 0, ErrNotInitialized
	}

	result, err := s.db.ExecContext(ctx, "DELETE FROM tasks WHERE id = ?", id)
	if err != nil {
		s.logger.Error("Error deleting task", "id", id, "error", err)
		return 0, &StorageWriteError{Op: "delete", Err: err}
	}

	changes, err := result.RowsAffected()
	if err != nil {
		return 0, &StorageWriteError{Op: "delete", Err: err}
	}

	s.logger.Debug("task deleted", "id", id, "changes", changes)
	return changes, nil
}

// ToggleCompletion writes the negation of currentCompleted. The stored
// value is not re-read first, so a stale currentCompleted writes the wrong
// state; the last caller wins.
func (s *TaskStore) ToggleCompletion(ctx context.Context, id int, currentCompleted bool) (int64, error) {
	if !s.Initialized() {
		return 0, ErrNotInitialized
	}

	result, err := s.db.ExecContext(ctx,
		"UPDATE tasks SET completed = ? WHERE id = ?",
		completedValue(!currentCompleted), id,
	)
	if err != nil {
		s.logger.Error("Error toggling task completion", "id", id, "error", err)
		return 0, &StorageWriteError{Op: "toggle completion", Err: err}
	}

	changes, err := result.RowsAffected()
	if err != nil {
		return 0, &StorageWriteError{Op: "toggle completion", Err: err}
	}

	s.logger.Debug("task completion toggled", "id", id, "completed", !currentCompleted, "changes", changes)
	return changes, nil
}

// Reset drops and recreates the task table, discarding all tasks.
// It is refused unless the store was built WithDevMode(true).
func (s *TaskStore) Reset(ctx context.Context) error {
	if !s.devMode {
		return ErrResetDisabled
	}
	if !s.Initialized() {
		return ErrNotInitialized
	}

	err := withTx(ctx, s.db, func(tx *sql.Tx) error {
		if err := dropSchema(ctx, tx); err != nil {
			return err
		}
		return createSchema(ctx, tx)
	})
	if err != nil {
		s.logger.Error("Error resetting database", "error", err)
		return &StorageWriteError{Op: "reset", Err: err}
	}

	s.logger.Info("database reset")
	return nil
}

// scannable is satisfied by *sql.Row and *sql.Rows
type scannable interface {
	Scan(dest ...any) error
}

func scanTask(s scannable) (*models.Task, error) {
	var (
		task        models.Task
		title       sql.NullString
		description sql.NullString
		priority    sql.NullString
		completed   any
		createdAt   any
	)
	if err := s.Scan(&task.ID, &title, &description, &priority, &completed, &createdAt); err != nil {
		return nil, err
	}

	ts, err := parseTimestamp(createdAt)
	if err != nil {
		return nil, err
	}

	task.Title = NullStringToString(title)
	task.Description = NullStringToString(description)
	task.Priority = models.ParsePriority(NullStringToString(priority))
	task.Completed = NormalizeCompleted(completed)
	task.CreatedAt = ts
	return &task, nil
}
