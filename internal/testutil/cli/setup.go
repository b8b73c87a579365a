package cli

import (
	"context"
	"database/sql"
	"testing"

	"github.com/thenoetrevino/taskmaster/internal/app"
	"github.com/thenoetrevino/taskmaster/internal/testutil"
)

// SetupCLITest creates an in-memory DB and returns both the DB and an
// initialized App instance. It lives in its own package to avoid import
// cycles when service tests import testutil.
func SetupCLITest(t *testing.T, opts ...app.Option) (*sql.DB, *app.App) {
	t.Helper()
	db := testutil.SetupTestDB(t)

	appInstance := app.New(db, opts...)
	if err := appInstance.Initialize(context.Background()); err != nil {
		t.Fatalf("Failed to initialize app: %v", err)
	}

	return db, appInstance
}

// CreateTestTask inserts an active task and returns its ID
func CreateTestTask(t *testing.T, db *sql.DB, title string) int {
	t.Helper()
	return testutil.InsertRawTask(t, db, title, 0, "")
}
