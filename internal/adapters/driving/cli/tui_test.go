package cli

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestTUICmd_Use(t *testing.T) {
	assert.Equal(t, "tui", tuiCmd.Use)
	assert.Contains(t, tuiCmd.Long, "Ctrl+C")
}

func TestTUICmd_RequiresTerminal(t *testing.T) {
	cleanup := setupTestServices()
	defer cleanup()

	original := isTerminal
	isTerminal = func() bool { return false }
	defer func() { isTerminal = original }()

	_, _, err := execute(t, "tui")

	assert.ErrorIs(t, err, errNotTerminal)
}
