// Package store holds the commands that manage the task database itself
package store

import (
	"encoding/json"
	"errors"
	"fmt"
	"log/slog"

	"github.com/spf13/cobra"
	"github.com/thenoetrevino/taskmaster/internal/cli"
	"github.com/thenoetrevino/taskmaster/internal/database"
)

// InitCmd returns the init command
func InitCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "init",
		Short: "Create the task database if it does not exist",
		Long:  "Create the task database if it does not exist. Existing tasks are never modified.",
		Args:  cobra.NoArgs,
		RunE:  runInit,
	}

	cmd.Flags().Bool("json", false, "Output in JSON format")
	cmd.Flags().Bool("quiet", false, "Minimal output")

	return cmd
}

func runInit(cmd *cobra.Command, args []string) error {
	jsonOutput, _ := cmd.Flags().GetBool("json")
	quietMode, _ := cmd.Flags().GetBool("quiet")
	formatter := &cli.OutputFormatter{JSON: jsonOutput, Quiet: quietMode, Out: cmd.OutOrStdout()}

	// GetCLIFromContext initializes storage; success means the table exists
	cliInstance, err := cli.GetCLIFromContext(cmd.Context())
	if err != nil {
		return formatter.Fail(cli.ExitError, "INITIALIZATION_ERROR", err,
			"Check that the database directory is writable")
	}
	defer func() {
		if err := cliInstance.Close(); err != nil {
			slog.Error("Error closing CLI", "error", err)
		}
	}()

	if quietMode {
		return nil
	}
	if jsonOutput {
		return json.NewEncoder(cmd.OutOrStdout()).Encode(map[string]any{
			"success": true,
		})
	}

	fmt.Fprintln(cmd.OutOrStdout(), "✓ Task database ready")
	return nil
}

// ResetCmd returns the reset command
func ResetCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "reset",
		Short: "Delete every task (dev mode only)",
		Long: `Drop and recreate the task table, discarding every task.

Only available in dev mode (--dev, dev_mode: true, or TASKMASTER_DEV_MODE=1).
Requires --force.`,
		Args: cobra.NoArgs,
		RunE: runReset,
	}

	cmd.Flags().Bool("force", false, "Confirm that every task should be deleted")
	cmd.Flags().Bool("json", false, "Output in JSON format")
	cmd.Flags().Bool("quiet", false, "Minimal output")

	return cmd
}

func runReset(cmd *cobra.Command, args []string) error {
	ctx := cmd.Context()

	force, _ := cmd.Flags().GetBool("force")
	jsonOutput, _ := cmd.Flags().GetBool("json")
	quietMode, _ := cmd.Flags().GetBool("quiet")
	formatter := &cli.OutputFormatter{JSON: jsonOutput, Quiet: quietMode, Out: cmd.OutOrStdout()}

	if !force {
		return formatter.Fail(cli.ExitUsage, "CONFIRMATION_REQUIRED",
			errors.New("reset deletes every task"), "Re-run with --force")
	}

	cliInstance, err := cli.GetCLIFromContext(ctx)
	if err != nil {
		return formatter.Fail(cli.ExitError, "INITIALIZATION_ERROR", err, "")
	}
	defer func() {
		if err := cliInstance.Close(); err != nil {
			slog.Error("Error closing CLI", "error", err)
		}
	}()

	if err := cliInstance.App.TaskService.Reset(ctx); err != nil {
		if errors.Is(err, database.ErrResetDisabled) {
			return formatter.Fail(cli.ExitValidation, "RESET_DISABLED", err,
				"Enable dev mode with --dev or TASKMASTER_DEV_MODE=1")
		}
		return formatter.Fail(cli.ExitError, "RESET_ERROR", err, "")
	}

	if quietMode {
		return nil
	}
	if jsonOutput {
		return json.NewEncoder(cmd.OutOrStdout()).Encode(map[string]any{
			"success": true,
		})
	}

	fmt.Fprintln(cmd.OutOrStdout(), "✓ All tasks deleted")
	return nil
}
