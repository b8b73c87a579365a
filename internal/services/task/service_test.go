package task

import (
	"context"
	"errors"
	"strings"
	"testing"

	"github.com/thenoetrevino/taskmaster/internal/database"
	"github.com/thenoetrevino/taskmaster/internal/models"
)

// ============================================================================
// TEST HELPERS
// ============================================================================

// setupTestService returns a service over an initialized in-memory store
func setupTestService(t *testing.T, devMode bool) Service {
	t.Helper()
	db, err := database.Open(context.Background(), database.MemoryPath)
	if err != nil {
		t.Fatalf("Failed to create test database: %v", err)
	}
	t.Cleanup(func() {
		_ = db.Close()
	})

	svc := NewService(database.NewTaskStore(db, database.WithDevMode(devMode)))
	if err := svc.Initialize(context.Background()); err != nil {
		t.Fatalf("Failed to initialize: %v", err)
	}
	return svc
}

// fakeRepo records calls and returns canned errors
type fakeRepo struct {
	createCalls int
	lastTitle   string
	lastDesc    string
	err         error
}

func (f *fakeRepo) Initialize(ctx context.Context) error { return f.err }
func (f *fakeRepo) Initialized() bool                    { return true }
func (f *fakeRepo) DevMode() bool                        { return false }

func (f *fakeRepo) Create(ctx context.Context, title, description, priority string) (int, error) {
	f.createCalls++
	f.lastTitle = title
	f.lastDesc = description
	if f.err != nil {
		return 0, f.err
	}
	return 7, nil
}

func (f *fakeRepo) List(ctx context.Context) []*models.Task { return []*models.Task{} }

func (f *fakeRepo) ListChecked(ctx context.Context) ([]*models.Task, error) {
	if f.err != nil {
		return nil, f.err
	}
	return []*models.Task{}, nil
}

func (f *fakeRepo) Delete(ctx context.Context, id int) (int64, error) { return 0, f.err }

func (f *fakeRepo) ToggleCompletion(ctx context.Context, id int, currentCompleted bool) (int64, error) {
	return 0, f.err
}

func (f *fakeRepo) Reset(ctx context.Context) error { return f.err }

// ============================================================================
// CREATE
// ============================================================================

func TestCreateTask_Success(t *testing.T) {
	svc := setupTestService(t, false)
	ctx := context.Background()

	id, err := svc.CreateTask(ctx, CreateTaskRequest{
		Title:       "  Buy milk  ",
		Description: "  semi-skimmed ",
		Priority:    "high",
	})
	if err != nil {
		t.Fatalf("CreateTask failed: %v", err)
	}

	tasks := svc.ListTasks(ctx)
	if len(tasks) != 1 {
		t.Fatalf("expected 1 task, got %d", len(tasks))
	}
	got := tasks[0]
	if got.ID != id || got.Title != "Buy milk" || got.Description != "semi-skimmed" {
		t.Errorf("unexpected task: %+v", got)
	}
	if got.Priority != models.PriorityHigh || got.Completed {
		t.Errorf("unexpected priority/completed: %+v", got)
	}
}

func TestCreateTask_ValidationNeverReachesStore(t *testing.T) {
	tests := []struct {
		name  string
		title string
		want  error
	}{
		{"empty", "", ErrEmptyTitle},
		{"whitespace", "   \t", ErrEmptyTitle},
		{"too long", strings.Repeat("x", models.MaxTitleLength+1), ErrTitleTooLong},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			repo := &fakeRepo{}
			svc := NewService(repo)

			_, err := svc.CreateTask(context.Background(), CreateTaskRequest{Title: tt.title})
			if !errors.Is(err, tt.want) {
				t.Errorf("error = %v, want %v", err, tt.want)
			}
			if repo.createCalls != 0 {
				t.Errorf("store should not be called, got %d calls", repo.createCalls)
			}
		})
	}
}

func TestCreateTask_MaxLengthTitleAccepted(t *testing.T) {
	repo := &fakeRepo{}
	svc := NewService(repo)

	title := strings.Repeat("é", models.MaxTitleLength)
	if _, err := svc.CreateTask(context.Background(), CreateTaskRequest{Title: title}); err != nil {
		t.Fatalf("title of exactly %d runes should be accepted: %v", models.MaxTitleLength, err)
	}
	if repo.lastTitle != title {
		t.Error("title should be passed through unchanged")
	}
}

func TestCreateTask_WrapsStoreError(t *testing.T) {
	storeErr := &database.StorageWriteError{Op: "create", Err: errors.New("disk full")}
	svc := NewService(&fakeRepo{err: storeErr})

	_, err := svc.CreateTask(context.Background(), CreateTaskRequest{Title: "x"})
	var writeErr *database.StorageWriteError
	if !errors.As(err, &writeErr) {
		t.Fatalf("expected wrapped StorageWriteError, got %v", err)
	}
}

// ============================================================================
// LIST / DELETE / TOGGLE
// ============================================================================

func TestListTasksChecked_WrapsError(t *testing.T) {
	svc := NewService(&fakeRepo{err: &database.StorageReadError{Op: "list", Err: errors.New("io")}})

	if _, err := svc.ListTasksChecked(context.Background()); !database.IsStorageError(err) {
		t.Errorf("expected storage error, got %v", err)
	}
	if tasks := svc.ListTasks(context.Background()); len(tasks) != 0 {
		t.Errorf("ListTasks should be empty, got %d", len(tasks))
	}
}

func TestDeleteAndToggle(t *testing.T) {
	svc := setupTestService(t, false)
	ctx := context.Background()

	id, err := svc.CreateTask(ctx, CreateTaskRequest{Title: "Walk dog"})
	if err != nil {
		t.Fatalf("CreateTask failed: %v", err)
	}

	changes, err := svc.ToggleTaskCompletion(ctx, id, false)
	if err != nil || changes != 1 {
		t.Fatalf("ToggleTaskCompletion = (%d, %v), want (1, nil)", changes, err)
	}
	if !svc.ListTasks(ctx)[0].Completed {
		t.Error("task should be completed")
	}

	changes, err = svc.DeleteTask(ctx, id)
	if err != nil || changes != 1 {
		t.Fatalf("DeleteTask = (%d, %v), want (1, nil)", changes, err)
	}

	changes, err = svc.DeleteTask(ctx, id)
	if err != nil || changes != 0 {
		t.Errorf("second DeleteTask = (%d, %v), want (0, nil)", changes, err)
	}
	if len(svc.ListTasks(ctx)) != 0 {
		t.Error("task should be gone")
	}
}

// ============================================================================
// RESET
// ============================================================================

func TestReset_RespectsDevMode(t *testing.T) {
	prod := setupTestService(t, false)
	if prod.ResetAvailable() {
		t.Error("reset should not be available outside dev mode")
	}
	if err := prod.Reset(context.Background()); !errors.Is(err, database.ErrResetDisabled) {
		t.Errorf("Reset error = %v, want ErrResetDisabled", err)
	}

	dev := setupTestService(t, true)
	ctx := context.Background()
	if _, err := dev.CreateTask(ctx, CreateTaskRequest{Title: "temp"}); err != nil {
		t.Fatalf("CreateTask failed: %v", err)
	}
	if err := dev.Reset(ctx); err != nil {
		t.Fatalf("Reset failed: %v", err)
	}
	if len(dev.ListTasks(ctx)) != 0 {
		t.Error("reset should leave no tasks")
	}
}

// ============================================================================
// RESULT
// ============================================================================

func TestResults(t *testing.T) {
	ok := CreatedResult(3, nil)
	if !ok.Success || ok.ID != 3 || ok.Error != "" {
		t.Errorf("CreatedResult success = %+v", ok)
	}

	failed := ChangedResult(0, errors.New("boom"))
	if failed.Success || failed.Error != "boom" {
		t.Errorf("ChangedResult failure = %+v", failed)
	}

	zero := ChangedResult(0, nil)
	if !zero.Success || zero.Changes != 0 {
		t.Errorf("zero-change delete should still succeed: %+v", zero)
	}

	if r := ErrorResult(nil); !r.Success {
		t.Errorf("ErrorResult(nil) = %+v", r)
	}
}
