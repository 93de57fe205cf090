// Package cli provides the cobra command tree for chembalance.
// It is a driving adapter: commands call core services through driving ports.
package cli

import (
	"context"
	"errors"
	"fmt"

	"github.com/spf13/cobra"

	"github.com/custodia-labs/chembalance/internal/adapters/driven/config/file"
	"github.com/custodia-labs/chembalance/internal/adapters/driven/storage/memory"
	"github.com/custodia-labs/chembalance/internal/adapters/driven/storage/sqlite"
	"github.com/custodia-labs/chembalance/internal/core/domain"
	"github.com/custodia-labs/chembalance/internal/core/ports/driven"
	"github.com/custodia-labs/chembalance/internal/core/ports/driving"
	"github.com/custodia-labs/chembalance/internal/core/services"
	"github.com/custodia-labs/chembalance/internal/logger"
)

// version is set at build time via -ldflags "-X ...cli.version=...".
var version = "dev"

var (
	verbose   bool
	configDir string
	noConfig  bool
)

// Services wired by bootstrap, or injected with SetServices.
var (
	balanceService  driving.BalanceService
	historyService  driving.HistoryService
	settingsService driving.SettingsService
	configStore     driven.ConfigStore

	// closers run after the command finishes.
	closers []func() error
)

// Services groups the dependencies the commands use.
type Services struct {
	Balance     driving.BalanceService
	History     driving.HistoryService
	Settings    driving.SettingsService
	ConfigStore driven.ConfigStore
}

// SetServices injects services, bypassing bootstrap.
func SetServices(s *Services) {
	if s == nil {
		balanceService, historyService, settingsService, configStore = nil, nil, nil, nil
		return
	}
	balanceService = s.Balance
	historyService = s.History
	settingsService = s.Settings
	configStore = s.ConfigStore
}

var rootCmd = &cobra.Command{
	Use:   "chembalance",
	Short: "Balance chemical equations",
	Long: `chembalance balances chemical equations with exact rational arithmetic.

Equations use '+' between compounds and '=' or '->' between the sides:

  chembalance balance "Fe + O2 -> Fe2O3"
  4 Fe + 3 O2 = 2 Fe2O3

The same balancer is available over HTTP (serve), MCP (mcp serve) and an
interactive terminal UI (tui).`,
	SilenceUsage:  true,
	SilenceErrors: true,
	PersistentPreRunE: func(_ *cobra.Command, _ []string) error {
		logger.SetVerbose(verbose)
		if balanceService != nil {
			return nil
		}
		return bootstrap()
	},
	PersistentPostRunE: func(_ *cobra.Command, _ []string) error {
		return shutdown()
	},
}

func init() {
	rootCmd.PersistentFlags().BoolVarP(&verbose, "verbose", "v", false, "enable debug logging")
	rootCmd.PersistentFlags().StringVar(&configDir, "config-dir", "", "config directory (default ~/.chembalance)")
	rootCmd.PersistentFlags().BoolVar(&noConfig, "no-config", false, "ignore the config file and use defaults")
}

// Execute runs the root command. Long-running commands stop when ctx is
// cancelled.
func Execute(ctx context.Context) error {
	return rootCmd.ExecuteContext(ctx)
}

// bootstrap builds the config store, settings and services.
func bootstrap() error {
	var store driven.ConfigStore
	if noConfig {
		store = memory.NewConfigStore()
	} else {
		fs, err := file.NewConfigStore(configDir)
		if err != nil {
			return fmt.Errorf("loading config: %w", err)
		}
		store = fs
	}
	logger.Debug("Config: %s", store.Path())

	settingsSvc := services.NewSettingsService(store)
	settings, err := settingsSvc.Get()
	if err != nil {
		return fmt.Errorf("reading settings: %w", err)
	}

	history, err := openHistoryStore(settings.History.Backend)
	if err != nil {
		return err
	}

	SetServices(&Services{
		Balance:     services.NewBalanceService(history, settings.Balance),
		History:     services.NewHistoryService(history),
		Settings:    settingsSvc,
		ConfigStore: store,
	})
	return nil
}

// openHistoryStore creates the history store for backend.
func openHistoryStore(backend domain.HistoryBackend) (driven.HistoryStore, error) {
	switch backend {
	case domain.HistoryBackendSQLite:
		store, err := sqlite.NewStore()
		if err != nil {
			return nil, fmt.Errorf("opening sqlite history: %w", err)
		}
		closers = append(closers, store.Close)
		logger.Debug("History backend: sqlite (%s)", store.Path())
		return store.HistoryStore(), nil
	case domain.HistoryBackendMemory:
		logger.Debug("History backend: memory")
		return memory.NewHistoryStore(), nil
	default:
		return nil, fmt.Errorf("%w: unknown history backend %q", domain.ErrInvalidInput, backend)
	}
}

// shutdown runs and clears the registered closers.
func shutdown() error {
	var errs []error
	for i := len(closers) - 1; i >= 0; i-- {
		if err := closers[i](); err != nil {
			errs = append(errs, err)
		}
	}
	closers = nil
	return errors.Join(errs...)
}
