package database

import (
	"context"

	"github.com/thenoetrevino/taskmaster/internal/models"
)

// TaskRepository is the persistence contract the service layer depends on.
// Consumers depend on this interface so tests can substitute a fake.
type TaskRepository interface {
	Initialize(ctx context.Context) error
	Initialized() bool
	DevMode() bool

	Create(ctx context.Context, title, description, priority string) (int, error)
	List(ctx context.Context) []*models.Task
	ListChecked(ctx context.Context) ([]*models.Task, error)
	Delete(ctx context.Context, id int) (int64, error)
	ToggleCompletion(ctx context.Context, id int, currentCompleted bool) (int64, error)
	Reset(ctx context.Context) error
}
