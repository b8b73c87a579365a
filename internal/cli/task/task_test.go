package task

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestTaskCmd_Subcommands(t *testing.T) {
	cmd := TaskCmd()

	names := make([]string, 0, len(cmd.Commands()))
	for _, sub := range cmd.Commands() {
		names = append(names, sub.Name())
	}

	assert.ElementsMatch(t, []string{"create", "list", "delete", "toggle"}, names)
}

func TestSubcommands_HaveOutputFlags(t *testing.T) {
	for _, sub := range TaskCmd().Commands() {
		assert.NotNil(t, sub.Flags().Lookup("json"), "%s should have --json", sub.Name())
		assert.NotNil(t, sub.Flags().Lookup("quiet"), "%s should have --quiet", sub.Name())
	}
}
