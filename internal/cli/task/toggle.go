package task

import (
	"encoding/json"
	"fmt"

	"github.com/spf13/cobra"
	"github.com/thenoetrevino/taskmaster/internal/cli"
)

// ToggleCmd returns the task toggle subcommand
func ToggleCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "toggle <id>",
		Short: "Flip a task between active and completed",
		Long: `Flip a task between active and completed.

The task is set to the opposite of --completed. When --completed is not
given, the stored value is looked up first.

Examples:
  taskmaster task toggle 3
  taskmaster task toggle 3 --completed=false   # marks task 3 completed
`,
		Args: cobra.ExactArgs(1),
		RunE: runToggle,
	}

	cmd.Flags().Bool("completed", false, "Completion state the caller last saw")
	addOutputFlags(cmd, "Minimal output")

	return cmd
}

func runToggle(cmd *cobra.Command, args []string) error {
	ctx := cmd.Context()
	formatter := formatterFor(cmd)

	taskID, err := cli.ParseTaskID(args[0])
	if err != nil {
		return formatter.Fail(cli.ExitDataErr, "INVALID_TASK_ID", err, "")
	}

	cliInstance, err := openCLI(cmd, formatter)
	if err != nil {
		return err
	}
	defer closeCLI(cliInstance)

	svc := cliInstance.App.TaskService

	current, _ := cmd.Flags().GetBool("completed")
	if !cmd.Flags().Changed("completed") {
		task, err := findTask(ctx, svc, taskID)
		if err != nil {
			return formatter.Fail(cli.ExitError, "TASK_FETCH_ERROR", err, "")
		}
		if task == nil {
			return notFound(formatter, taskID)
		}
		current = task.Completed
	}

	changes, err := svc.ToggleTaskCompletion(ctx, taskID, current)
	if err != nil {
		return formatter.Fail(cli.ExitError, "UPDATE_ERROR", err, "")
	}
	if changes == 0 {
		return notFound(formatter, taskID)
	}

	completed := !current
	if formatter.Quiet {
		return nil
	}

	if formatter.JSON {
		return json.NewEncoder(cmd.OutOrStdout()).Encode(map[string]any{
			"success":   true,
			"task_id":   taskID,
			"completed": completed,
		})
	}

	state := "active"
	if completed {
		state = "completed"
	}
	fmt.Fprintf(cmd.OutOrStdout(), "✓ Task %d marked %s\n", taskID, state)
	return nil
}
