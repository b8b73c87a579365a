package tui

import (
	"context"
	"log/slog"
	"time"

	tea "charm.land/bubbletea/v2"
	"github.com/thenoetrevino/taskmaster/internal/app"
	"github.com/thenoetrevino/taskmaster/internal/config"
	"github.com/thenoetrevino/taskmaster/internal/models"
	taskservice "github.com/thenoetrevino/taskmaster/internal/services/task"
	"github.com/thenoetrevino/taskmaster/internal/tui/state"
)

// dbTimeout bounds every storage call made from the event loop
const dbTimeout = 5 * time.Second

// Model represents the application state for the TUI
type Model struct {
	ctx context.Context

	App         *app.App
	TaskService taskservice.Service
	Config      *config.Config
	Keys        KeyMap

	AppState          *state.AppState
	UIState           *state.UIState
	FormState         *state.FormState
	NotificationState *state.NotificationState

	now func() time.Time
}

// InitialModel creates the TUI model. Storage is initialized by Init, not here,
// so a broken database still yields a running program that can report it.
func InitialModel(ctx context.Context, a *app.App, cfg *config.Config) Model {
	if cfg == nil {
		cfg = config.Default()
	}

	return Model{
		ctx:               ctx,
		App:               a,
		TaskService:       a.TaskService,
		Config:            cfg,
		Keys:              NewKeyMap(cfg.KeyMappings),
		AppState:          state.NewAppState(a.TaskService.ResetAvailable()),
		UIState:           state.NewUIState(),
		FormState:         state.NewFormState(),
		NotificationState: state.NewNotificationState(),
		now:               time.Now,
	}
}

// Init initializes the Bubble Tea application
func (m Model) Init() tea.Cmd {
	return m.initStorage
}

func (m Model) initStorage() tea.Msg {
	ctx, cancel := m.DbContext()
	defer cancel()
	return storageReadyMsg{err: m.App.Initialize(ctx)}
}

// DbContext returns a context for one storage call
func (m Model) DbContext() (context.Context, context.CancelFunc) {
	return context.WithTimeout(m.ctx, dbTimeout)
}

// reloadTasks re-queries the list. Read failures surface as an empty list.
func (m *Model) reloadTasks() {
	ctx, cancel := m.DbContext()
	defer cancel()

	m.AppState.SetTasks(m.TaskService.ListTasks(ctx))
	m.UIState.ClampSelection(len(m.AppState.Tasks()))
	m.UIState.EnsureVisible(m.visibleRows())
	slog.Debug("tasks reloaded", "count", len(m.AppState.Tasks()))
}

// selectedTask returns the highlighted task, or nil if the list is empty
func (m Model) selectedTask() *models.Task {
	return m.AppState.TaskAt(m.UIState.SelectedTask())
}
