package task

import (
	"bufio"
	"encoding/json"
	"fmt"
	"strings"

	"github.com/spf13/cobra"
	"github.com/thenoetrevino/taskmaster/internal/cli"
)

// DeleteCmd returns the task delete subcommand
func DeleteCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "delete <id>",
		Short: "Delete a task",
		Long:  "Permanently delete a task by ID (requires confirmation unless --force or --quiet).",
		Args:  cobra.ExactArgs(1),
		RunE:  runDelete,
	}

	cmd.Flags().Bool("force", false, "Skip confirmation")
	addOutputFlags(cmd, "Minimal output")

	return cmd
}

func runDelete(cmd *cobra.Command, args []string) error {
	ctx := cmd.Context()

	force, _ := cmd.Flags().GetBool("force")
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

	// Ask for confirmation unless force, quiet or json
	if !force && !formatter.Quiet && !formatter.JSON {
		task, err := findTask(ctx, svc, taskID)
		if err != nil {
			return formatter.Fail(cli.ExitError, "TASK_FETCH_ERROR", err, "")
		}
		if task == nil {
			return notFound(formatter, taskID)
		}

		fmt.Fprintf(cmd.OutOrStdout(), "Delete task #%d: '%s'? (y/N): ", taskID, task.Title)
		response, _ := bufio.NewReader(cmd.InOrStdin()).ReadString('\n')
		response = strings.ToLower(strings.TrimSpace(response))
		if response != "y" && response != "yes" {
			fmt.Fprintln(cmd.OutOrStdout(), "Cancelled")
			return nil
		}
	}

	changes, err := svc.DeleteTask(ctx, taskID)
	if err != nil {
		return formatter.Fail(cli.ExitError, "DELETE_ERROR", err, "")
	}
	if changes == 0 {
		return notFound(formatter, taskID)
	}

	if formatter.Quiet {
		return nil
	}

	if formatter.JSON {
		return json.NewEncoder(cmd.OutOrStdout()).Encode(map[string]any{
			"success": true,
			"task_id": taskID,
			"changes": changes,
		})
	}

	fmt.Fprintf(cmd.OutOrStdout(), "✓ Task %d deleted successfully\n", taskID)
	return nil
}

func notFound(formatter *cli.OutputFormatter, taskID int) error {
	return formatter.Fail(cli.ExitNotFound, "TASK_NOT_FOUND",
		fmt.Errorf("task %d not found", taskID),
		"Use 'taskmaster task list' to see available tasks")
}
