package database

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"log/slog"
	"strings"
	"time"
)

// timestampLayout is fixed-width so that text order equals time order
const timestampLayout = "2006-01-02 15:04:05.000000000"

// readLayouts covers what the store writes, SQLite's CURRENT_TIMESTAMP,
// and the formats the driver itself produces.
var readLayouts = []string{
	timestampLayout,
	"2006-01-02 15:04:05.999999999-07:00",
	time.RFC3339Nano,
	"2006-01-02 15:04:05",
	"2006-01-02T15:04:05",
	"2006-01-02",
}

// withTx executes a function within a database transaction.
// It automatically handles begin, rollback on error, and commit on success.
func withTx(ctx context.Context, db *sql.DB, fn func(*sql.Tx) error) error {
	tx, err := db.BeginTx(ctx, nil)
	if err != nil {
		return fmt.Errorf("failed to begin transaction: %w", err)
	}
	defer func() {
		if err := tx.Rollback(); err != nil && !errors.Is(err, sql.ErrTxDone) {
			slog.Error("failed to rollback transaction", "error", err)
		}
	}()

	if err := fn(tx); err != nil {
		return err
	}

	if err := tx.Commit(); err != nil {
		return fmt.Errorf("failed to commit transaction: %w", err)
	}

	return nil
}

// NormalizeCompleted converts a stored completion flag to a strict boolean.
// Boolean true, integer 1, and the strings "1" and "true" are true;
// every other value, including NULL, is false.
func NormalizeCompleted(v any) bool {
	switch val := v.(type) {
	case bool:
		return val
	case int64:
		return val == 1
	case int:
		return val == 1
	case float64:
		return val == 1
	case string:
		return val == "1" || val == "true"
	case []byte:
		s := string(val)
		return s == "1" || s == "true"
	default:
		return false
	}
}

// completedValue is the integer written for a completion flag
func completedValue(completed bool) int {
	if completed {
		return 1
	}
	return 0
}

// formatTimestamp renders t in the layout the store writes
func formatTimestamp(t time.Time) string {
	return t.UTC().Format(timestampLayout)
}

// parseTimestamp reads a created_at value in any representation the
// driver may hand back.
func parseTimestamp(v any) (time.Time, error) {
	switch val := v.(type) {
	case time.Time:
		return val.UTC(), nil
	case string:
		return parseTimestampString(val)
	case []byte:
		return parseTimestampString(string(val))
	case int64:
		return time.Unix(val, 0).UTC(), nil
	case nil:
		return time.Time{}, nil
	default:
		return time.Time{}, fmt.Errorf("unsupported timestamp type %T", v)
	}
}

func parseTimestampString(s string) (time.Time, error) {
	s = strings.TrimSpace(s)
	for _, layout := range readLayouts {
		if t, err := time.ParseInLocation(layout, s, time.UTC); err == nil {
			return t.UTC(), nil
		}
	}
	return time.Time{}, fmt.Errorf("unrecognized timestamp %q", s)
}

// NullStringToString converts sql.NullString to string.
// Returns empty string if the value is not valid.
func NullStringToString(ns sql.NullString) string {
	if ns.Valid {
		return ns.String
	}
	return ""
}
