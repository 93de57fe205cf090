package keymap

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestDefaultKeyMap(t *testing.T) {
	km := DefaultKeyMap()

	require.NotNil(t, km)
	assert.Equal(t, []string{"q", "ctrl+c"}, km.Quit.Keys())
	assert.Equal(t, []string{"esc"}, km.Back.Keys())
	assert.Equal(t, []string{"enter"}, km.Balance.Keys())
	assert.Equal(t, []string{"c"}, km.Clear.Keys())
}

func TestKeyMap_HelpText(t *testing.T) {
	km := DefaultKeyMap()

	assert.Equal(t, "balance", km.Balance.Help().Desc)
	assert.Equal(t, "rebalance", km.Select.Help().Desc)
	assert.Equal(t, "↑/k", km.Up.Help().Key)
}

func TestKeyMap_BalanceHelp(t *testing.T) {
	km := DefaultKeyMap()

	bindings := km.BalanceHelp()

	require.Len(t, bindings, 2)
	assert.Equal(t, km.Balance.Keys(), bindings[0].Keys())
}

func TestKeyMap_HistoryHelp(t *testing.T) {
	km := DefaultKeyMap()

	bindings := km.HistoryHelp()

	assert.Len(t, bindings, 5)
}

func TestKeyMap_FullHelp(t *testing.T) {
	km := DefaultKeyMap()

	groups := km.FullHelp()

	require.Len(t, groups, 3)
	for _, g := range groups {
		assert.Len(t, g, 3)
	}
}

func TestMatches(t *testing.T) {
	km := DefaultKeyMap()

	tests := []struct {
		name string
		key  string
		want bool
	}{
		{"quit q", "q", true},
		{"quit ctrl+c", "ctrl+c", true},
		{"vim up", "k", false},
		{"empty", "", false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, Matches(tt.key, km.Quit))
		})
	}

	assert.True(t, Matches("k", km.Up))
	assert.True(t, Matches("down", km.Down))
}
