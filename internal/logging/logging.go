// Package logging routes application logs to a file so they never draw over the TUI
package logging

import (
	"fmt"
	"io"
	"log"
	"log/slog"
	"os"
	"path/filepath"
	"time"

	charmlog "github.com/charmbracelet/log"
)

// FileName is the log file created inside the log directory
const FileName = "taskmaster.log"

// Logger is the global slog instance for the application
var Logger = slog.Default()

// NewLogger builds a slog logger backed by a charmbracelet/log handler
func NewLogger(w io.Writer, level string) (*slog.Logger, error) {
	lvl, err := charmlog.ParseLevel(level)
	if err != nil {
		return nil, fmt.Errorf("invalid log level %q: %w", level, err)
	}

	handler := charmlog.NewWithOptions(w, charmlog.Options{
		Level:           lvl,
		ReportTimestamp: true,
		TimeFormat:      time.DateTime,
		Formatter:       charmlog.LogfmtFormatter,
	})
	return slog.New(handler), nil
}

// Init writes logs to <dir>/logs/taskmaster.log and makes that the default
// slog logger. The returned file should be closed on exit.
func Init(dir, level string) (io.Closer, error) {
	logDir := filepath.Join(dir, "logs")
	if err := os.MkdirAll(logDir, 0o755); err != nil {
		return nil, err
	}

	// Open log file in append mode
	file, err := os.OpenFile(filepath.Join(logDir, FileName), os.O_CREATE|os.O_WRONLY|os.O_APPEND, 0o644)
	if err != nil {
		return nil, err
	}

	logger, err := NewLogger(file, level)
	if err != nil {
		_ = file.Close()
		return nil, err
	}

	Logger = logger
	slog.SetDefault(Logger)

	// Redirect standard log package output to the same file
	log.SetOutput(file)
	log.SetFlags(log.LstdFlags)

	return file, nil
}

// Discard returns a logger that drops everything
func Discard() *slog.Logger {
	return slog.New(slog.NewTextHandler(io.Discard, nil))
}
