package tui

import (
	"context"
	"database/sql"
	"testing"

	tea "charm.land/bubbletea/v2"
	"github.com/thenoetrevino/taskmaster/internal/app"
	"github.com/thenoetrevino/taskmaster/internal/config"
	clitest "github.com/thenoetrevino/taskmaster/internal/testutil/cli"
)

// setupTestModel returns a sized model over an initialized in-memory store
func setupTestModel(t *testing.T, opts ...app.Option) (Model, *sql.DB) {
	t.Helper()
	db, a := clitest.SetupCLITest(t, opts...)

	m := InitialModel(context.Background(), a, config.Default())
	newModel, _ := m.Update(tea.WindowSizeMsg{Width: 100, Height: 40})
	m = newModel.(Model)

	newModel, _ = m.Update(m.Init()())
	return newModel.(Model), db
}

// press builds a key press for a keystroke name as bubbletea reports it
func press(s string) tea.KeyPressMsg {
	switch s {
	case "esc":
		return tea.KeyPressMsg(tea.Key{Code: tea.KeyEsc})
	case "enter":
		return tea.KeyPressMsg(tea.Key{Code: tea.KeyEnter})
	case "space":
		return tea.KeyPressMsg(tea.Key{Code: tea.KeySpace})
	case "up":
		return tea.KeyPressMsg(tea.Key{Code: tea.KeyUp})
	case "down":
		return tea.KeyPressMsg(tea.Key{Code: tea.KeyDown})
	case "ctrl+c":
		return tea.KeyPressMsg(tea.Key{Code: 'c', Mod: tea.ModCtrl})
	case "ctrl+s":
		return tea.KeyPressMsg(tea.Key{Code: 's', Mod: tea.ModCtrl})
	}
	r := []rune(s)[0]
	return tea.KeyPressMsg(tea.Key{Text: s, Code: r})
}

// sendKeys feeds key presses through Update in order
func sendKeys(m Model, keys ...string) (Model, tea.Cmd) {
	var cmd tea.Cmd
	for _, k := range keys {
		var newModel tea.Model
		newModel, cmd = m.Update(press(k))
		m = newModel.(Model)
	}
	return m, cmd
}

func isQuit(cmd tea.Cmd) bool {
	if cmd == nil {
		return false
	}
	_, ok := cmd().(tea.QuitMsg)
	return ok
}

func countTasks(t *testing.T, db *sql.DB) int {
	t.Helper()
	var n int
	if err := db.QueryRow("SELECT COUNT(*) FROM tasks").Scan(&n); err != nil {
		t.Fatalf("count tasks: %v", err)
	}
	return n
}
