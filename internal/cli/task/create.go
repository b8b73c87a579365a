package task

import (
	"encoding/json"
	"errors"
	"fmt"
	"log/slog"

	"github.com/spf13/cobra"
	"github.com/thenoetrevino/taskmaster/internal/cli"
	taskservice "github.com/thenoetrevino/taskmaster/internal/services/task"
)

// CreateCmd returns the task create subcommand
func CreateCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "create",
		Short: "Create a new task",
		Long: `Create a new task. New tasks start active.

Examples:
  # Simple task (human-readable output)
  taskmaster task create --title="Buy milk"

  # JSON output for agents
  taskmaster task create --title="Buy milk" --json

  # Quiet mode for bash capture
  TASK_ID=$(taskmaster task create --title="Buy milk" --quiet)

  # Description from stdin
  echo "two litres" | taskmaster task create --title="Buy milk" --description=- --priority=high
`,
		RunE: runCreate,
	}

	cmd.Flags().String("title", "", "Task title (required)")
	if err := cmd.MarkFlagRequired("title"); err != nil {
		slog.Error("Error marking flag as required", "error", err)
	}

	cmd.Flags().String("description", "", "Task description (use - for stdin)")
	cmd.Flags().String("priority", "medium", "Priority: "+cli.PriorityChoices())

	addOutputFlags(cmd, "Minimal output (ID only)")

	return cmd
}

func runCreate(cmd *cobra.Command, args []string) error {
	ctx := cmd.Context()

	title, _ := cmd.Flags().GetString("title")
	descriptionFlag, _ := cmd.Flags().GetString("description")
	priorityFlag, _ := cmd.Flags().GetString("priority")
	formatter := formatterFor(cmd)

	priority, err := cli.ParsePriority(priorityFlag)
	if err != nil {
		return formatter.Fail(cli.ExitValidation, "INVALID_PRIORITY", err,
			"Valid priorities are: "+cli.PriorityChoices())
	}

	description, err := cli.ReadDescription(descriptionFlag, cmd.InOrStdin())
	if err != nil {
		return formatter.Fail(cli.ExitDataErr, "STDIN_READ_ERROR", err, "")
	}

	cliInstance, err := openCLI(cmd, formatter)
	if err != nil {
		return err
	}
	defer closeCLI(cliInstance)

	taskID, err := cliInstance.App.TaskService.CreateTask(ctx, taskservice.CreateTaskRequest{
		Title:       title,
		Description: description,
		Priority:    string(priority),
	})
	if err != nil {
		if errors.Is(err, taskservice.ErrEmptyTitle) || errors.Is(err, taskservice.ErrTitleTooLong) {
			return formatter.Fail(cli.ExitValidation, "INVALID_TITLE", err, "Provide a non-empty --title")
		}
		return formatter.Fail(cli.ExitError, "TASK_CREATE_ERROR", err, "")
	}

	if formatter.Quiet {
		fmt.Fprintf(cmd.OutOrStdout(), "%d\n", taskID)
		return nil
	}

	if formatter.JSON {
		return json.NewEncoder(cmd.OutOrStdout()).Encode(map[string]any{
			"success":  true,
			"task_id":  taskID,
			"priority": priority,
		})
	}

	fmt.Fprintf(cmd.OutOrStdout(), "✓ Task %d created successfully\n", taskID)
	return nil
}
