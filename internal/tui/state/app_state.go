package state

import "github.com/thenoetrevino/taskmaster/internal/models"

// StorageStatus tracks whether the task store is usable.
type StorageStatus int

const (
	StoragePending StorageStatus = iota
	StorageReady
	StorageFailed
)

// AppState holds the data the screens render: the last loaded task list
// and the storage status.
type AppState struct {
	tasks   []*models.Task
	counts  models.TaskCounts
	storage StorageStatus
	devMode bool
}

// NewAppState creates an empty AppState.
func NewAppState(devMode bool) *AppState {
	return &AppState{
		tasks:   []*models.Task{},
		devMode: devMode,
	}
}

// Tasks returns the last loaded list, newest first.
func (s *AppState) Tasks() []*models.Task {
	return s.tasks
}

// SetTasks replaces the list and recomputes the header counts.
func (s *AppState) SetTasks(tasks []*models.Task) {
	if tasks == nil {
		tasks = []*models.Task{}
	}
	s.tasks = tasks
	s.counts = models.CountTasks(tasks)
}

// TaskAt returns the task at idx, or nil when out of range.
func (s *AppState) TaskAt(idx int) *models.Task {
	if idx < 0 || idx >= len(s.tasks) {
		return nil
	}
	return s.tasks[idx]
}

// Counts returns total and completed counts for the loaded list.
func (s *AppState) Counts() models.TaskCounts {
	return s.counts
}

// Storage returns the storage status.
func (s *AppState) Storage() StorageStatus {
	return s.storage
}

// SetStorage records the outcome of storage initialization.
func (s *AppState) SetStorage(status StorageStatus) {
	s.storage = status
}

// DevMode reports whether development-only actions are offered.
func (s *AppState) DevMode() bool {
	return s.devMode
}
