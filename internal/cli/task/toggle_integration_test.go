package task

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/thenoetrevino/taskmaster/internal/cli"
	"github.com/thenoetrevino/taskmaster/internal/testutil"
	testcli "github.com/thenoetrevino/taskmaster/internal/testutil/cli"
)

func TestToggleTask(t *testing.T) {
	db, app := testcli.SetupCLITest(t)
	ctx := context.Background()

	isCompleted := func(id int) bool {
		for _, task := range app.TaskService.ListTasks(ctx) {
			if task.ID == id {
				return task.Completed
			}
		}
		t.Fatalf("task %d not found", id)
		return false
	}

	t.Run("Looks up the current state", func(t *testing.T) {
		taskID := testcli.CreateTestTask(t, db, "Flip me")

		output, err := testcli.ExecuteCLICommand(t, app, ToggleCmd(), []string{itoa(taskID)})
		require.NoError(t, err)
		assert.Contains(t, output, "marked completed")
		assert.True(t, isCompleted(taskID))

		output, err = testcli.ExecuteCLICommand(t, app, ToggleCmd(), []string{itoa(taskID)})
		require.NoError(t, err)
		assert.Contains(t, output, "marked active")
		assert.False(t, isCompleted(taskID))
	})

	t.Run("Explicit state is written as its opposite", func(t *testing.T) {
		taskID := testcli.CreateTestTask(t, db, "Stale view")

		// A caller that still believes the task is completed sets it active,
		// which leaves an active task active.
		_, err := testcli.ExecuteCLICommand(t, app, ToggleCmd(), []string{itoa(taskID), "--completed=true"})
		require.NoError(t, err)
		assert.False(t, isCompleted(taskID))

		output, err := testcli.ExecuteCLICommand(t, app, ToggleCmd(), []string{itoa(taskID), "--completed=false", "--json"})
		require.NoError(t, err)

		result := testutil.ParseJSON(t, output)
		assert.Equal(t, true, result["completed"])
		assert.True(t, isCompleted(taskID))
	})

	t.Run("Unknown id", func(t *testing.T) {
		_, err := testcli.ExecuteCLICommand(t, app, ToggleCmd(), []string{"404"})
		assert.Equal(t, cli.ExitNotFound, cli.ExitCode(err))

		_, err = testcli.ExecuteCLICommand(t, app, ToggleCmd(), []string{"404", "--completed=false"})
		assert.Equal(t, cli.ExitNotFound, cli.ExitCode(err))
	})
}
