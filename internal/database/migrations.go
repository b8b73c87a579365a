package database

import (
	"context"
	"database/sql"
)

// sqlExecer is satisfied by both *sql.DB and *sql.Tx
type sqlExecer interface {
	ExecContext(ctx context.Context, query string, args ...any) (sql.Result, error)
}

// createSchema creates the tasks table and its ordering index if absent.
// Existing rows are never touched.
func createSchema(ctx context.Context, db sqlExecer) error {
	_, err := db.ExecContext(ctx, `
		CREATE TABLE IF NOT EXISTS tasks (
			id INTEGER PRIMARY KEY AUTOINCREMENT,
			title TEXT NOT NULL DEFAULT '',
			description TEXT DEFAULT '',
			priority TEXT DEFAULT 'medium',
			completed INTEGER DEFAULT 0,
			created_at TIMESTAMP DEFAULT CURRENT_TIMESTAMP
		)
	`)
	if err != nil {
		return err
	}

	_, err = db.ExecContext(ctx, `
		CREATE INDEX IF NOT EXISTS idx_tasks_created
		ON tasks(created_at DESC, id DESC)
	`)
	return err
}

// dropSchema removes the tasks table and everything in it
func dropSchema(ctx context.Context, db sqlExecer) error {
	_, err := db.ExecContext(ctx, "DROP TABLE IF EXISTS tasks")
	return err
}
