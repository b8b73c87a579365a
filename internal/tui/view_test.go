package tui

import (
	"context"
	"fmt"
	"testing"

	tea "charm.land/bubbletea/v2"
	"github.com/stretchr/testify/assert"
	"github.com/thenoetrevino/taskmaster/internal/config"
	clitest "github.com/thenoetrevino/taskmaster/internal/testutil/cli"
)

func content(v tea.View) string {
	return fmt.Sprint(v.Content)
}

func TestView_LoadingBeforeSize(t *testing.T) {
	_, a := clitest.SetupCLITest(t)
	m := InitialModel(context.Background(), a, config.Default())

	v := m.View()
	assert.Equal(t, "Loading...", content(v))
	assert.True(t, v.AltScreen)
	assert.True(t, v.ReportFocus)
}

func TestView_Home(t *testing.T) {
	m, _ := setupTestModel(t)
	out := content(m.View())

	assert.Contains(t, out, "Taskmaster")
	assert.Contains(t, out, "view tasks")
	assert.NotContains(t, out, "reset all tasks")
}

func TestView_ListShowsCountsAndRows(t *testing.T) {
	m, db := setupTestModel(t)
	clitest.CreateTestTask(t, db, "Write report")
	clitest.CreateTestTask(t, db, "Call mom")

	m, _ = sendKeys(m, "l", "space")
	out := content(m.View())

	assert.Contains(t, out, "2 total · 1 completed")
	assert.Contains(t, out, "Write report")
	assert.Contains(t, out, "Call mom")
	assert.Contains(t, out, "MEDIUM")
}

func TestView_EmptyList(t *testing.T) {
	m, _ := setupTestModel(t)
	m, _ = sendKeys(m, "l")

	assert.Contains(t, content(m.View()), "No tasks yet.")
}

func TestView_DeleteConfirm(t *testing.T) {
	m, db := setupTestModel(t)
	clitest.CreateTestTask(t, db, "Target")

	m, _ = sendKeys(m, "l", "d")
	out := content(m.View())

	assert.Contains(t, out, "Delete task?")
	assert.Contains(t, out, "Target")
}

func TestView_AddForm(t *testing.T) {
	m, _ := setupTestModel(t)
	m, _ = sendKeys(m, "a")

	out := content(m.View())
	assert.Contains(t, out, "New Task")
	assert.Contains(t, out, "Title")
}

func TestView_Help(t *testing.T) {
	m, _ := setupTestModel(t)
	m, _ = sendKeys(m, "?")

	out := content(m.View())
	assert.Contains(t, out, "Keyboard shortcuts")
	assert.Contains(t, out, "new task")
}

func TestView_FormWarningInStatusBar(t *testing.T) {
	m, _ := setupTestModel(t)
	m, _ = sendKeys(m, "a", "ctrl+s")

	assert.Contains(t, content(m.View()), "Please enter a task title")
}
