package task

import (
	"context"
	"log/slog"

	"github.com/spf13/cobra"
	"github.com/thenoetrevino/taskmaster/internal/cli"
	"github.com/thenoetrevino/taskmaster/internal/models"
	taskservice "github.com/thenoetrevino/taskmaster/internal/services/task"
)

// TaskCmd returns the task parent command
func TaskCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "task",
		Short: "Manage tasks",
	}

	cmd.AddCommand(CreateCmd())
	cmd.AddCommand(ListCmd())
	cmd.AddCommand(DeleteCmd())
	cmd.AddCommand(ToggleCmd())

	return cmd
}

// addOutputFlags registers the agent-friendly flags every subcommand carries
func addOutputFlags(cmd *cobra.Command, quietHelp string) {
	cmd.Flags().Bool("json", false, "Output in JSON format")
	cmd.Flags().Bool("quiet", false, quietHelp)
}

func formatterFor(cmd *cobra.Command) *cli.OutputFormatter {
	jsonOutput, _ := cmd.Flags().GetBool("json")
	quietMode, _ := cmd.Flags().GetBool("quiet")
	return &cli.OutputFormatter{JSON: jsonOutput, Quiet: quietMode, Out: cmd.OutOrStdout()}
}

// openCLI resolves the CLI for cmd and reports initialization failures
func openCLI(cmd *cobra.Command, formatter *cli.OutputFormatter) (*cli.CLI, error) {
	cliInstance, err := cli.GetCLIFromContext(cmd.Context())
	if err != nil {
		return nil, formatter.Fail(cli.ExitError, "INITIALIZATION_ERROR", err, "")
	}
	return cliInstance, nil
}

func closeCLI(cliInstance *cli.CLI) {
	if err := cliInstance.Close(); err != nil {
		slog.Error("Error closing CLI", "error", err)
	}
}

// findTask looks up a task by id in the current list
func findTask(ctx context.Context, svc taskservice.Service, id int) (*models.Task, error) {
	tasks, err := svc.ListTasksChecked(ctx)
	if err != nil {
		return nil, err
	}
	for _, t := range tasks {
		if t.ID == id {
			return t, nil
		}
	}
	return nil, nil
}
