package database

import (
	"context"
	"errors"
	"os"
	"path/filepath"
	"testing"
)

func TestOpen_CreatesParentDirectory(t *testing.T) {
	dbPath := filepath.Join(t.TempDir(), "nested", "dir", "tasks.db")

	db, err := Open(context.Background(), dbPath)
	if err != nil {
		t.Fatalf("Open failed: %v", err)
	}
	defer db.Close()

	if !fileExists(filepath.Dir(dbPath)) {
		t.Error("parent directory should have been created")
	}
}

func TestOpen_UnavailableStorage(t *testing.T) {
	// A regular file where a directory is expected makes the path unusable
	blocker := filepath.Join(t.TempDir(), "blocker")
	if err := os.WriteFile(blocker, []byte("x"), 0o644); err != nil {
		t.Fatalf("Failed to write blocker file: %v", err)
	}

	_, err := Open(context.Background(), filepath.Join(blocker, "sub", "tasks.db"))
	var initErr *StorageInitError
	if !errors.As(err, &initErr) {
		t.Fatalf("expected StorageInitError, got %v", err)
	}
	if !IsStorageError(err) {
		t.Error("IsStorageError should recognize init errors")
	}
}

// TestPersistence_AcrossRestart simulates closing and relaunching the app
func TestPersistence_AcrossRestart(t *testing.T) {
	db, dbPath := setupTestDBFile(t)
	ctx := context.Background()

	store := NewTaskStore(db)
	if err := store.Initialize(ctx); err != nil {
		t.Fatalf("Initialize failed: %v", err)
	}
	id, err := store.Create(ctx, "Persisted", "written before restart", "high")
	if err != nil {
		t.Fatalf("Create failed: %v", err)
	}
	if _, err := store.ToggleCompletion(ctx, id, false); err != nil {
		t.Fatalf("ToggleCompletion failed: %v", err)
	}

	db = closeAndReopenDB(t, db, dbPath)
	store = NewTaskStore(db)
	if err := store.Initialize(ctx); err != nil {
		t.Fatalf("Initialize after restart failed: %v", err)
	}

	tasks := store.List(ctx)
	if len(tasks) != 1 {
		t.Fatalf("expected 1 task after restart, got %d", len(tasks))
	}
	got := tasks[0]
	if got.ID != id || got.Title != "Persisted" || got.Description != "written before restart" {
		t.Errorf("unexpected task after restart: %+v", got)
	}
	if got.Priority != "high" || !got.Completed {
		t.Errorf("priority/completed not persisted: %+v", got)
	}
}
