// Package cmd wires the cobra command tree: the TUI by default, plus
// scriptable subcommands
package cmd

import (
	"context"
	"errors"
	"fmt"
	"io"
	"log/slog"
	"os"
	"os/signal"
	"syscall"

	tea "charm.land/bubbletea/v2"
	"github.com/spf13/cobra"
	"github.com/thenoetrevino/taskmaster/internal/app"
	"github.com/thenoetrevino/taskmaster/internal/cli"
	"github.com/thenoetrevino/taskmaster/internal/cli/store"
	"github.com/thenoetrevino/taskmaster/internal/cli/styles"
	"github.com/thenoetrevino/taskmaster/internal/cli/task"
	"github.com/thenoetrevino/taskmaster/internal/config"
	"github.com/thenoetrevino/taskmaster/internal/logging"
	"github.com/thenoetrevino/taskmaster/internal/tui"
	"github.com/thenoetrevino/taskmaster/internal/tui/theme"
)

// NewRootCmd builds the command tree
func NewRootCmd() *cobra.Command {
	var logFile io.Closer

	rootCmd := &cobra.Command{
		Use:   "taskmaster",
		Short: "Taskmaster - a terminal task manager",
		Long: `Taskmaster keeps a local list of tasks with a priority and an optional
markdown description.

Run without arguments to open the interactive TUI, or use the task
subcommands for scripting.`,
		SilenceUsage:  true,
		SilenceErrors: true,
		Args:          cobra.NoArgs,
		PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
			cfg, err := loadConfig(cmd)
			if err != nil {
				fmt.Fprintln(cmd.ErrOrStderr(), "Error:", err)
				return cli.Exit(cli.ExitUsage, err)
			}

			// A broken log file should never stop the program
			logFile, err = logging.Init(config.DataDir(), cfg.LogLevel)
			if err != nil {
				slog.SetDefault(logging.Discard())
				fmt.Fprintln(cmd.ErrOrStderr(), "Warning: logging disabled:", err)
			}

			styles.Init(cfg.ColorScheme)
			theme.Init(cfg.ColorScheme)

			cmd.SetContext(cli.WithConfig(cmd.Context(), cfg))
			return nil
		},
		PersistentPostRunE: func(cmd *cobra.Command, args []string) error {
			if logFile != nil {
				return logFile.Close()
			}
			return nil
		},
		RunE: runTUI,
	}

	rootCmd.PersistentFlags().String("db", "", "Path to the task database (overrides config)")
	rootCmd.PersistentFlags().Bool("dev", false, "Enable development mode (allows reset)")

	rootCmd.SetFlagErrorFunc(func(cmd *cobra.Command, err error) error {
		fmt.Fprintf(cmd.ErrOrStderr(), "Error: %v\n\n%s", err, cmd.UsageString())
		return cli.Exitf(cli.ExitUsage, "%w", err)
	})

	rootCmd.AddCommand(task.TaskCmd())
	rootCmd.AddCommand(store.InitCmd())
	rootCmd.AddCommand(store.ResetCmd())

	return rootCmd
}

// loadConfig reads the config file and environment, then applies flags
func loadConfig(cmd *cobra.Command) (*config.Config, error) {
	cfg, err := config.Load()
	if err != nil {
		return nil, fmt.Errorf("failed to load config: %w", err)
	}

	if cmd.Flags().Changed("db") {
		cfg.DatabasePath, _ = cmd.Flags().GetString("db")
	}
	if cmd.Flags().Changed("dev") {
		cfg.DevMode, _ = cmd.Flags().GetBool("dev")
	}
	return cfg, nil
}

// runTUI opens storage and runs the interactive program. Storage failures
// are shown inside the TUI rather than aborting here.
func runTUI(cmd *cobra.Command, args []string) error {
	ctx := cmd.Context()
	cfg := cli.ConfigFromContext(ctx)

	application := app.Open(ctx, cfg.DatabasePath,
		app.WithDevMode(cfg.DevMode),
		app.WithLogger(slog.Default()),
	)
	defer func() {
		if err := application.Close(); err != nil {
			slog.Error("failed to close database", "error", err)
		}
	}()

	slog.Info("starting tui", "database", cfg.DatabasePath, "dev_mode", cfg.DevMode)

	p := tea.NewProgram(tui.InitialModel(ctx, application, cfg))
	if _, err := p.Run(); err != nil {
		return fmt.Errorf("error running program: %w", err)
	}
	return nil
}

// Execute runs the root command and exits with the command's exit code
func Execute() {
	ctx, cancel := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer cancel()

	err := NewRootCmd().ExecuteContext(ctx)
	if err != nil {
		// Commands report their own failures; anything else is printed here
		var cmdErr *cli.CommandError
		if !errors.As(err, &cmdErr) {
			fmt.Fprintln(os.Stderr, "Error:", err)
		}
	}

	cancel()
	os.Exit(cli.ExitCode(err))
}
