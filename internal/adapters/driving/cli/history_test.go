package cli

import (
	"encoding/json"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestHistoryCmd_Empty(t *testing.T) {
	cleanup := setupTestServices()
	defer cleanup()

	stdout, _, err := execute(t, "history")

	require.NoError(t, err)
	assert.Equal(t, "No equations balanced yet.\n", stdout)
}

func TestHistoryCmd_ListsBalanced(t *testing.T) {
	cleanup := setupTestServices()
	defer cleanup()

	_, _, err := execute(t, "balance", "H2 + O2 -> H2O")
	require.NoError(t, err)
	_, _, err = execute(t, "balance", "Fe + O2 = Fe2O3")
	require.NoError(t, err)
	_, _, err = execute(t, "balance", "H2 = O2")
	require.Error(t, err)

	stdout, _, err := execute(t, "history")

	require.NoError(t, err)
	assert.Contains(t, stdout, "  [1] 2 H2 + 1 O2 = 2 H2O")
	assert.Contains(t, stdout, "  [2] 4 Fe + 3 O2 = 2 Fe2O3")
	assert.NotContains(t, stdout, "[3]")
	assert.Contains(t, stdout, "H2 + O2 = H2O")
}

func TestHistoryCmd_JSON(t *testing.T) {
	cleanup := setupTestServices()
	defer cleanup()

	_, _, err := execute(t, "balance", "H2 + O2 = H2O")
	require.NoError(t, err)

	stdout, _, err := execute(t, "history", "--json")
	require.NoError(t, err)

	var out []historyEntryOutput
	require.NoError(t, json.Unmarshal([]byte(stdout), &out))
	require.Len(t, out, 1)
	assert.NotEmpty(t, out[0].ID)
	assert.Equal(t, "H2 + O2 = H2O", out[0].Original)
	assert.Equal(t, "2 H2 + 1 O2 = 2 H2O", out[0].Balanced)
	assert.False(t, out[0].CreatedAt.IsZero())
}

func TestHistoryCmd_JSONEmpty(t *testing.T) {
	cleanup := setupTestServices()
	defer cleanup()

	stdout, _, err := execute(t, "history", "--json")

	require.NoError(t, err)
	assert.Equal(t, "[]\n", stdout)
}

func TestHistoryClearCmd(t *testing.T) {
	cleanup := setupTestServices()
	defer cleanup()

	_, _, err := execute(t, "balance", "H2 + O2 = H2O")
	require.NoError(t, err)

	stdout, _, err := execute(t, "history", "clear")
	require.NoError(t, err)
	assert.Equal(t, "History cleared.\n", stdout)

	stdout, _, err = execute(t, "history")
	require.NoError(t, err)
	assert.Equal(t, "No equations balanced yet.\n", stdout)
}
