// Package database owns the on-device task table backed by SQLite
package database

import (
	"context"
	"database/sql"
	"fmt"
	"log/slog"
	"os"
	"path/filepath"

	_ "modernc.org/sqlite"
)

// MemoryPath opens a private in-memory database
const MemoryPath = ":memory:"

// Open opens the SQLite file at path, creating its parent directory if needed.
// Any failure is reported as a *StorageInitError.
func Open(ctx context.Context, path string) (*sql.DB, error) {
	if path != MemoryPath {
		if err := os.MkdirAll(filepath.Dir(path), 0o755); err != nil {
			return nil, &StorageInitError{Op: "create directory", Err: err}
		}
	}

	db, err := sql.Open("sqlite", path)
	if err != nil {
		return nil, &StorageInitError{Op: "open", Err: err}
	}

	// One connection: a single foreground writer, and ":memory:" databases
	// are per-connection.
	db.SetMaxOpenConns(1)
	db.SetMaxIdleConns(1)

	pragmas := []string{
		"PRAGMA busy_timeout = 5000",
	}
	if path != MemoryPath {
		pragmas = append(pragmas, "PRAGMA journal_mode = WAL")
	}
	for _, pragma := range pragmas {
		if _, err := db.ExecContext(ctx, pragma); err != nil {
			closeQuietly(db)
			return nil, &StorageInitError{Op: "configure", Err: fmt.Errorf("%s: %w", pragma, err)}
		}
	}

	if err := db.PingContext(ctx); err != nil {
		closeQuietly(db)
		return nil, &StorageInitError{Op: "ping", Err: err}
	}

	slog.Debug("database opened", "path", path)
	return db, nil
}

func closeQuietly(db *sql.DB) {
	if err := db.Close(); err != nil {
		slog.Error("error closing db", "error", err)
	}
}
