package cli

import (
	"errors"
	"fmt"

	"github.com/spf13/cobra"

	"github.com/custodia-labs/chembalance/internal/adapters/driving/httpapi"
	"github.com/custodia-labs/chembalance/internal/core/domain"
	"github.com/custodia-labs/chembalance/internal/logger"
)

var (
	serveAddr  string
	serveWatch bool
)

var serveCmd = &cobra.Command{
	Use:   "serve",
	Short: "Start the HTTP API",
	Long: `Serves the balancer over HTTP until interrupted.

Routes:
  POST   /balance   {"equation": "H2 + O2 -> H2O"} -> {"balanced": "2 H2 + 1 O2 = 2 H2O"}
  GET    /history   balanced equations, oldest first
  DELETE /history   clear the history
  GET    /health    liveness

CORS origins and rate limits come from the server.* settings. With --watch
the config file is reloaded when it changes, and balance and server settings
apply to subsequent requests without a restart.`,
	RunE: runServe,
}

func init() {
	serveCmd.Flags().StringVar(&serveAddr, "addr", "", "listen address (default from server.addr)")
	serveCmd.Flags().BoolVar(&serveWatch, "watch", false, "reload settings when the config file changes")
	rootCmd.AddCommand(serveCmd)
}

// balanceConfigurer is implemented by balance services whose settings can
// change at runtime.
type balanceConfigurer interface {
	Configure(settings domain.BalanceSettings)
}

func runServe(cmd *cobra.Command, _ []string) error {
	settings, err := currentSettings()
	if err != nil {
		return err
	}
	if serveAddr != "" {
		settings.Server.Addr = serveAddr
	}

	server, err := httpapi.NewServer(&httpapi.Ports{
		Balance: balanceService,
		History: historyService,
	}, settings.Server)
	if err != nil {
		return err
	}

	if serveWatch {
		if configStore == nil {
			return errors.New("config store not configured")
		}
		if err := configStore.Watch(cmd.Context(), func() { reloadSettings(server) }); err != nil {
			return fmt.Errorf("watching config: %w", err)
		}
		logger.Info("Watching %s for changes", configStore.Path())
	}

	return server.ListenAndServe(cmd.Context())
}

// currentSettings returns stored settings, or defaults without a settings service.
func currentSettings() (*domain.Settings, error) {
	if settingsService == nil {
		defaults := domain.DefaultSettings()
		return &defaults, nil
	}
	settings, err := settingsService.Get()
	if err != nil {
		return nil, fmt.Errorf("failed to get settings: %w", err)
	}
	return settings, nil
}

// reloadSettings applies freshly loaded settings to the running services.
// Invalid settings are logged and ignored.
func reloadSettings(server *httpapi.Server) {
	settings, err := currentSettings()
	if err != nil {
		logger.Warn("Reload failed: %v", err)
		return
	}
	if err := settings.Validate(); err != nil {
		logger.Warn("Ignoring invalid settings: %v", err)
		return
	}

	if b, ok := balanceService.(balanceConfigurer); ok {
		b.Configure(settings.Balance)
	}
	server.Configure(settings.Server)
	logger.Info("Settings reloaded")
}
