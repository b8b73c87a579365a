package cli

import (
	"fmt"
	"io"
	"strconv"
	"strings"

	"github.com/thenoetrevino/taskmaster/internal/models"
)

// ParsePriority validates a priority flag. Empty means the default.
func ParsePriority(priority string) (models.Priority, error) {
	if strings.TrimSpace(priority) == "" {
		return models.DefaultPriority, nil
	}
	p, ok := models.LookupPriority(priority)
	if !ok {
		return "", fmt.Errorf("invalid priority '%s' (must be: %s)", priority, PriorityChoices())
	}
	return p, nil
}

// PriorityChoices lists the accepted priority values for help and errors
func PriorityChoices() string {
	names := make([]string, 0, len(models.Priorities()))
	for _, p := range models.Priorities() {
		names = append(names, string(p))
	}
	return strings.Join(names, ", ")
}

// ParseTaskID parses a positional task id argument
func ParseTaskID(arg string) (int, error) {
	id, err := strconv.Atoi(strings.TrimSpace(arg))
	if err != nil || id <= 0 {
		return 0, fmt.Errorf("invalid task id '%s'", arg)
	}
	return id, nil
}

// ReadDescription returns value, or all of stdin when value is "-"
func ReadDescription(value string, stdin io.Reader) (string, error) {
	if value != "-" {
		return value, nil
	}
	data, err := io.ReadAll(stdin)
	if err != nil {
		return "", err
	}
	return strings.TrimRight(string(data), "\n"), nil
}
