package cli

import (
	"bytes"
	"context"
	"errors"
	"os"
	"path/filepath"
	"testing"

	"github.com/spf13/cobra"
	"github.com/spf13/pflag"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/custodia-labs/chembalance/internal/adapters/driven/storage/memory"
	"github.com/custodia-labs/chembalance/internal/core/domain"
	"github.com/custodia-labs/chembalance/internal/core/services"
)

// setupTestServices injects services over in-memory stores.
func setupTestServices() func() {
	history := memory.NewHistoryStore()
	config := memory.NewConfigStore()

	SetServices(&Services{
		Balance:     services.NewBalanceService(history, domain.DefaultSettings().Balance),
		History:     services.NewHistoryService(history),
		Settings:    services.NewSettingsService(config),
		ConfigStore: config,
	})
	return func() {
		SetServices(nil)
	}
}

// resetFlags restores every flag in the tree to its default.
func resetFlags(cmd *cobra.Command) {
	reset := func(f *pflag.Flag) {
		_ = f.Value.Set(f.DefValue)
		f.Changed = false
	}
	cmd.Flags().VisitAll(reset)
	cmd.PersistentFlags().VisitAll(reset)
	for _, c := range cmd.Commands() {
		resetFlags(c)
	}
}

// executeContext runs the root command with args and captures its output.
func executeContext(t *testing.T, ctx context.Context, args ...string) (stdout, stderr string, err error) {
	t.Helper()

	var out, errOut bytes.Buffer
	rootCmd.SetOut(&out)
	rootCmd.SetErr(&errOut)
	rootCmd.SetArgs(args)
	defer func() {
		rootCmd.SetArgs(nil)
		rootCmd.SetOut(nil)
		rootCmd.SetErr(nil)
		resetFlags(rootCmd)
	}()

	err = rootCmd.ExecuteContext(ctx)
	return out.String(), errOut.String(), err
}

func execute(t *testing.T, args ...string) (stdout, stderr string, err error) {
	t.Helper()
	return executeContext(t, context.Background(), args...)
}

func TestRootCmd_Use(t *testing.T) {
	assert.Equal(t, "chembalance", rootCmd.Use)
	assert.Contains(t, rootCmd.Long, "4 Fe + 3 O2 = 2 Fe2O3")
}

func TestRootCmd_PersistentFlags(t *testing.T) {
	for _, name := range []string{"verbose", "config-dir", "no-config"} {
		assert.NotNil(t, rootCmd.PersistentFlags().Lookup(name), name)
	}
	assert.Equal(t, "v", rootCmd.PersistentFlags().Lookup("verbose").Shorthand)
}

func TestRootCmd_Subcommands(t *testing.T) {
	names := make(map[string]bool)
	for _, c := range rootCmd.Commands() {
		names[c.Name()] = true
	}

	for _, want := range []string{"balance", "history", "serve", "mcp", "settings", "tui", "version"} {
		assert.True(t, names[want], "missing command %q", want)
	}
}

func TestBootstrap_NoConfig(t *testing.T) {
	SetServices(nil)
	t.Cleanup(func() { SetServices(nil) })

	stdout, _, err := execute(t, "--no-config", "balance", "H2 + O2 = H2O")

	require.NoError(t, err)
	assert.Equal(t, "2 H2 + 1 O2 = 2 H2O\n", stdout)
	assert.Equal(t, ":memory:", configStore.Path())
}

func TestBootstrap_ConfigDir(t *testing.T) {
	dir := t.TempDir()
	SetServices(nil)
	t.Cleanup(func() { SetServices(nil) })

	_, _, err := execute(t, "--config-dir", dir, "settings", "set", "history.backend", "sqlite")
	require.NoError(t, err)

	data, err := os.ReadFile(filepath.Join(dir, "config.toml"))
	require.NoError(t, err)
	assert.Contains(t, string(data), "sqlite")

	// A fresh bootstrap picks up the sqlite backend.
	SetServices(nil)
	stdout, _, err := execute(t, "--config-dir", dir, "history")
	require.NoError(t, err)
	assert.Contains(t, stdout, "No equations balanced yet.")
	assert.Empty(t, closers, "closers run after the command")
}

func TestOpenHistoryStore(t *testing.T) {
	t.Cleanup(func() { require.NoError(t, shutdown()) })

	store, err := openHistoryStore(domain.HistoryBackendMemory)
	require.NoError(t, err)
	assert.IsType(t, &memory.HistoryStore{}, store)

	store, err = openHistoryStore(domain.HistoryBackendSQLite)
	require.NoError(t, err)
	assert.NotNil(t, store)
	assert.Len(t, closers, 1)

	_, err = openHistoryStore("redis")
	assert.ErrorIs(t, err, domain.ErrInvalidInput)
}

func TestShutdown_JoinsErrors(t *testing.T) {
	var order []int
	closers = []func() error{
		func() error { order = append(order, 1); return errors.New("first") },
		func() error { order = append(order, 2); return nil },
		func() error { order = append(order, 3); return errors.New("third") },
	}

	err := shutdown()

	require.Error(t, err)
	assert.Contains(t, err.Error(), "first")
	assert.Contains(t, err.Error(), "third")
	assert.Equal(t, []int{3, 2, 1}, order)
	assert.Nil(t, closers)
}

func TestSetServices_Nil(t *testing.T) {
	cleanup := setupTestServices()
	defer cleanup()
	require.NotNil(t, balanceService)

	SetServices(nil)

	assert.Nil(t, balanceService)
	assert.Nil(t, historyService)
	assert.Nil(t, settingsService)
	assert.Nil(t, configStore)
}
