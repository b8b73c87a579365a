package database

import (
	"context"
	"database/sql"
	"os"
	"path/filepath"
	"testing"
	"time"

	_ "modernc.org/sqlite"
)

// ============================================================================
// DATABASE SETUP HELPERS
// ============================================================================

// setupTestDB opens an in-memory database without creating the schema
func setupTestDB(t *testing.T) *sql.DB {
	t.Helper()
	db, err := Open(context.Background(), MemoryPath)
	if err != nil {
		t.Fatalf("Failed to create test database: %v", err)
	}
	t.Cleanup(func() {
		_ = db.Close()
	})
	return db
}

// setupTestStore returns an initialized dev-mode store over an in-memory database
func setupTestStore(t *testing.T, opts ...StoreOption) (*TaskStore, *sql.DB) {
	t.Helper()
	db := setupTestDB(t)
	opts = append([]StoreOption{WithDevMode(true)}, opts...)
	store := NewTaskStore(db, opts...)
	if err := store.Initialize(context.Background()); err != nil {
		t.Fatalf("Failed to initialize store: %v", err)
	}
	return store, db
}

// setupTestDBFile opens a file-based database for persistence tests
func setupTestDBFile(t *testing.T) (*sql.DB, string) {
	t.Helper()
	dbPath := filepath.Join(t.TempDir(), "tasks.db")
	db, err := Open(context.Background(), dbPath)
	if err != nil {
		t.Fatalf("Failed to open test database: %v", err)
	}
	return db, dbPath
}

// closeAndReopenDB simulates app restart by closing and reopening the database
func closeAndReopenDB(t *testing.T, db *sql.DB, dbPath string) *sql.DB {
	t.Helper()
	if err := db.Close(); err != nil {
		t.Fatalf("Failed to close database: %v", err)
	}

	newDB, err := Open(context.Background(), dbPath)
	if err != nil {
		t.Fatalf("Failed to reopen database: %v", err)
	}
	t.Cleanup(func() {
		_ = newDB.Close()
	})
	return newDB
}

// ============================================================================
// CLOCK HELPERS
// ============================================================================

// stepClock returns a clock that advances by step on every call
func stepClock(start time.Time, step time.Duration) func() time.Time {
	current := start
	return func() time.Time {
		now := current
		current = current.Add(step)
		return now
	}
}

// fixedClock always returns the same instant
func fixedClock(at time.Time) func() time.Time {
	return func() time.Time {
		return at
	}
}

// insertRaw writes a row bypassing the store so tests can control the
// physical representation of each column.
func insertRaw(t *testing.T, db *sql.DB, title string, completed any, createdAt string) int {
	t.Helper()
	result, err := db.ExecContext(context.Background(),
		"INSERT INTO tasks (title, completed, created_at) VALUES (?, ?, ?)",
		title, completed, createdAt)
	if err != nil {
		t.Fatalf("Failed to insert raw task: %v", err)
	}
	id, _ := result.LastInsertId()
	return int(id)
}

func fileExists(path string) bool {
	_, err := os.Stat(path)
	return err == nil
}
