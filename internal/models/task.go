package models

import "time"

// Task represents a single to-do item
type Task struct {
	ID          int       `json:"id"`
	Title       string    `json:"title"`
	Description string    `json:"description"`
	Priority    Priority  `json:"priority"`
	Completed   bool      `json:"completed"`
	CreatedAt   time.Time `json:"created_at"`
}

// GetID lets output formatters print only the ID in quiet mode
func (t *Task) GetID() int {
	return t.ID
}

// State reports the lifecycle state of a stored task
func (t *Task) State() TaskState {
	if t.Completed {
		return StateCompleted
	}
	return StateActive
}

// TaskState is the per-task lifecycle state.
// Deleted is terminal; the record no longer exists once reached.
type TaskState int

const (
	StateActive TaskState = iota
	StateCompleted
	StateDeleted
)

func (s TaskState) String() string {
	switch s {
	case StateActive:
		return "active"
	case StateCompleted:
		return "completed"
	case StateDeleted:
		return "deleted"
	default:
		return "unknown"
	}
}

// TaskCounts summarizes a task list for headers and status lines
type TaskCounts struct {
	Total     int `json:"total"`
	Completed int `json:"completed"`
}

// CountTasks tallies total and completed tasks
func CountTasks(tasks []*Task) TaskCounts {
	counts := TaskCounts{Total: len(tasks)}
	for _, t := range tasks {
		if t.Completed {
			counts.Completed++
		}
	}
	return counts
}
