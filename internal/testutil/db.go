package testutil

import (
	"context"
	"database/sql"
	"testing"

	"github.com/thenoetrevino/taskmaster/internal/database"
)

// ContextKey is a custom type for context keys to avoid collisions
type ContextKey string

// TestAppKey carries a prebuilt *app.App into CLI commands under test
const TestAppKey ContextKey = "testApp"

// SetupTestDB creates an in-memory database. The schema is not created;
// pair it with SetupTestStore or call Initialize on a store.
func SetupTestDB(t *testing.T) *sql.DB {
	t.Helper()
	db, err := database.Open(context.Background(), database.MemoryPath)
	if err != nil {
		t.Fatalf("Failed to create test database: %v", err)
	}
	t.Cleanup(func() {
		_ = db.Close()
	})
	return db
}

// SetupTestStore returns an in-memory database and an initialized dev-mode
// store over it
func SetupTestStore(t *testing.T, opts ...database.StoreOption) (*sql.DB, *database.TaskStore) {
	t.Helper()
	db := SetupTestDB(t)

	opts = append([]database.StoreOption{database.WithDevMode(true)}, opts...)
	store := database.NewTaskStore(db, opts...)
	if err := store.Initialize(context.Background()); err != nil {
		t.Fatalf("Failed to initialize store: %v", err)
	}
	return db, store
}

// InsertRawTask writes a row directly, bypassing the store, so tests can plant
// legacy completed representations ("1", "true", 1.0) and hand-written
// created_at values. An empty createdAt uses the column default.
func InsertRawTask(t *testing.T, db *sql.DB, title string, completed any, createdAt string) int {
	t.Helper()

	var (
		result sql.Result
		err    error
	)
	if createdAt == "" {
		result, err = db.ExecContext(context.Background(),
			"INSERT INTO tasks (title, completed) VALUES (?, ?)", title, completed)
	} else {
		result, err = db.ExecContext(context.Background(),
			"INSERT INTO tasks (title, completed, created_at) VALUES (?, ?, ?)", title, completed, createdAt)
	}
	if err != nil {
		t.Fatalf("Failed to insert raw task: %v", err)
	}

	id, _ := result.LastInsertId()
	return int(id)
}

// CountRows returns the number of rows in the task table
func CountRows(t *testing.T, db *sql.DB) int {
	t.Helper()
	var n int
	if err := db.QueryRowContext(context.Background(), "SELECT COUNT(*) FROM tasks").Scan(&n); err != nil {
		t.Fatalf("Failed to count tasks: %v", err)
	}
	return n
}
