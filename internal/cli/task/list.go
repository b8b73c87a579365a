package task

import (
	"encoding/json"
	"fmt"
	"time"

	"github.com/spf13/cobra"
	"github.com/thenoetrevino/taskmaster/internal/cli"
	"github.com/thenoetrevino/taskmaster/internal/cli/styles"
	"github.com/thenoetrevino/taskmaster/internal/models"
)

// ListCmd returns the task list subcommand
func ListCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "list",
		Short: "List tasks",
		Long:  "List all tasks, newest first.",
		Args:  cobra.NoArgs,
		RunE:  runList,
	}

	addOutputFlags(cmd, "Minimal output (ID only)")

	return cmd
}

func runList(cmd *cobra.Command, args []string) error {
	ctx := cmd.Context()
	formatter := formatterFor(cmd)

	cliInstance, err := openCLI(cmd, formatter)
	if err != nil {
		return err
	}
	defer closeCLI(cliInstance)

	// The checked variant: a read failure must not look like an empty list here
	tasks, err := cliInstance.App.TaskService.ListTasksChecked(ctx)
	if err != nil {
		return formatter.Fail(cli.ExitError, "TASK_FETCH_ERROR", err, "")
	}

	out := cmd.OutOrStdout()

	if formatter.Quiet {
		for _, t := range tasks {
			fmt.Fprintf(out, "%d\n", t.ID)
		}
		return nil
	}

	counts := models.CountTasks(tasks)
	if formatter.JSON {
		return json.NewEncoder(out).Encode(map[string]any{
			"success": true,
			"tasks":   tasks,
			"counts":  counts,
		})
	}

	if len(tasks) == 0 {
		fmt.Fprintln(out, "No tasks yet. Add one with 'taskmaster task create --title=...'")
		return nil
	}

	fmt.Fprintf(out, "Found %d tasks (%d completed):\n\n", counts.Total, counts.Completed)
	now := time.Now()
	for _, t := range tasks {
		fmt.Fprintln(out, styles.RenderTaskLine(t, now))
	}

	return nil
}
