package task

import (
	"context"
	"fmt"
	"log/slog"
	"strings"
	"unicode/utf8"

	"github.com/thenoetrevino/taskmaster/internal/database"
	"github.com/thenoetrevino/taskmaster/internal/models"
)

// Service defines all task-related business operations
type Service interface {
	// Lifecycle
	Initialize(ctx context.Context) error
	ResetAvailable() bool
	Reset(ctx context.Context) error

	// Read operations
	ListTasks(ctx context.Context) []*models.Task
	ListTasksChecked(ctx context.Context) ([]*models.Task, error)

	// Write operations
	CreateTask(ctx context.Context, req CreateTaskRequest) (int, error)
	DeleteTask(ctx context.Context, taskID int) (int64, error)
	ToggleTaskCompletion(ctx context.Context, taskID int, currentCompleted bool) (int64, error)
}

// CreateTaskRequest encapsulates all data needed to create a task
type CreateTaskRequest struct {
	Title       string
	Description string
	Priority    string // Optional: empty or unknown means medium
}

// service implements Service interface
type service struct {
	repo database.TaskRepository
}

// NewService creates a new task service
func NewService(repo database.TaskRepository) Service {
	return &service{
		repo: repo,
	}
}

// Initialize prepares the underlying store; safe to call repeatedly
func (s *service) Initialize(ctx context.Context) error {
	if err := s.repo.Initialize(ctx); err != nil {
		return fmt.Errorf("failed to initialize database: %w", err)
	}
	return nil
}

// ResetAvailable reports whether the store allows Reset
func (s *service) ResetAvailable() bool {
	return s.repo.DevMode()
}

// Reset discards every task. Only available in dev mode.
func (s *service) Reset(ctx context.Context) error {
	if err := s.repo.Reset(ctx); err != nil {
		return fmt.Errorf("failed to reset database: %w", err)
	}
	slog.Info("tasks reset")
	return nil
}

// ListTasks returns all tasks newest first. Read failures yield an empty list.
func (s *service) ListTasks(ctx context.Context) []*models.Task {
	return s.repo.List(ctx)
}

// ListTasksChecked is ListTasks for callers that must see read failures
func (s *service) ListTasksChecked(ctx context.Context) ([]*models.Task, error) {
	tasks, err := s.repo.ListChecked(ctx)
	if err != nil {
		return nil, fmt.Errorf("failed to list tasks: %w", err)
	}
	return tasks, nil
}

// CreateTask trims and validates the request before it reaches the store
func (s *service) CreateTask(ctx context.Context, req CreateTaskRequest) (int, error) {
	title := strings.TrimSpace(req.Title)
	if err := validateTitle(title); err != nil {
		return 0, err
	}

	id, err := s.repo.Create(ctx, title, strings.TrimSpace(req.Description), req.Priority)
	if err != nil {
		return 0, fmt.Errorf("failed to create task: %w", err)
	}

	slog.Info("task created", "id", id, "priority", models.ParsePriority(req.Priority))
	return id, nil
}

// DeleteTask hard-deletes a task; a missing id reports zero changes
func (s *service) DeleteTask(ctx context.Context, taskID int) (int64, error) {
	changes, err := s.repo.Delete(ctx, taskID)
	if err != nil {
		return 0, fmt.Errorf("failed to delete task %d: %w", taskID, err)
	}
	return changes, nil
}

// ToggleTaskCompletion sets completed to !currentCompleted
func (s *service) ToggleTaskCompletion(ctx context.Context, taskID int, currentCompleted bool) (int64, error) {
	changes, err := s.repo.ToggleCompletion(ctx, taskID, currentCompleted)
	if err != nil {
		return 0, fmt.Errorf("failed to update task %d: %w", taskID, err)
	}
	return changes, nil
}

func validateTitle(title string) error {
	if title == "" {
		return ErrEmptyTitle
	}
	if utf8.RuneCountInString(title) > models.MaxTitleLength {
		return ErrTitleTooLong
	}
	return nil
}
