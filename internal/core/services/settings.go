package services

import (
	"fmt"
	"sort"
	"strconv"
	"strings"

	"github.com/custodia-labs/chembalance/internal/core/domain"
	"github.com/custodia-labs/chembalance/internal/core/ports/driven"
	"github.com/custodia-labs/chembalance/internal/core/ports/driving"
)

// Ensure SettingsService implements the interface.
var _ driving.SettingsService = (*SettingsService)(nil)

// Config keys for settings storage.
const (
	KeyMultipleSolutions = "balance.multiple_solutions"
	KeyMaxCoefficient    = "balance.max_coefficient"
	KeyMaxCompounds      = "balance.max_compounds"
	KeyMaxInputLength    = "balance.max_input_length"
	KeyServerAddr        = "server.addr"
	KeyAllowedOrigins    = "server.allowed_origins"
	KeyRateLimit         = "server.rate_limit"
	KeyRateBurst         = "server.rate_burst"
	KeyHistoryBackend    = "history.backend"
)

// setters parse a string value into the matching settings field.
var setters = map[string]func(*domain.Settings, string) error{
	KeyMultipleSolutions: func(s *domain.Settings, v string) error {
		s.Balance.MultipleSolutions = domain.SolutionPolicy(v)
		return nil
	},
	KeyMaxCoefficient: func(s *domain.Settings, v string) error {
		n, err := strconv.ParseInt(v, 10, 64)
		s.Balance.MaxCoefficient = n
		return err
	},
	KeyMaxCompounds: func(s *domain.Settings, v string) error {
		n, err := strconv.Atoi(v)
		s.Balance.MaxCompounds = n
		return err
	},
	KeyMaxInputLength: func(s *domain.Settings, v string) error {
		n, err := strconv.Atoi(v)
		s.Balance.MaxInputLength = n
		return err
	},
	KeyServerAddr: func(s *domain.Settings, v string) error {
		s.Server.Addr = v
		return nil
	},
	KeyAllowedOrigins: func(s *domain.Settings, v string) error {
		s.Server.AllowedOrigins = splitList(v)
		return nil
	},
	KeyRateLimit: func(s *domain.Settings, v string) error {
		n, err := strconv.Atoi(v)
		s.Server.RateLimit = n
		return err
	},
	KeyRateBurst: func(s *domain.Settings, v string) error {
		n, err := strconv.Atoi(v)
		s.Server.RateBurst = n
		return err
	},
	KeyHistoryBackend: func(s *domain.Settings, v string) error {
		s.History.Backend = domain.HistoryBackend(v)
		return nil
	},
}

// SettingsService manages application settings.
type SettingsService struct {
	configStore driven.ConfigStore
}

// NewSettingsService creates a new settings service.
func NewSettingsService(configStore driven.ConfigStore) *SettingsService {
	return &SettingsService{configStore: configStore}
}

// Get retrieves current application settings. Missing or invalid stored
// values fall back to defaults.
func (s *SettingsService) Get() (*domain.Settings, error) {
	defaults := domain.DefaultSettings()

	settings := &domain.Settings{
		Balance: domain.BalanceSettings{
			MultipleSolutions: s.getPolicy(defaults.Balance.MultipleSolutions),
			MaxCoefficient:    int64(s.getInt(KeyMaxCoefficient, int(defaults.Balance.MaxCoefficient))),
			MaxCompounds:      s.getInt(KeyMaxCompounds, defaults.Balance.MaxCompounds),
			MaxInputLength:    s.getInt(KeyMaxInputLength, defaults.Balance.MaxInputLength),
		},
		Server: domain.ServerSettings{
			Addr:           s.getString(KeyServerAddr, defaults.Server.Addr),
			AllowedOrigins: s.getStringSlice(KeyAllowedOrigins, defaults.Server.AllowedOrigins),
			RateLimit:      s.getInt(KeyRateLimit, defaults.Server.RateLimit),
			RateBurst:      s.getInt(KeyRateBurst, defaults.Server.RateBurst),
		},
		History: domain.HistorySettings{
			Backend: s.getBackend(defaults.History.Backend),
		},
	}

	return settings, nil
}

// Save validates and persists application settings.
func (s *SettingsService) Save(settings *domain.Settings) error {
	if err := settings.Validate(); err != nil {
		return err
	}

	values := []struct {
		key   string
		value any
	}{
		{KeyMultipleSolutions, settings.Balance.MultipleSolutions.String()},
		{KeyMaxCoefficient, settings.Balance.MaxCoefficient},
		{KeyMaxCompounds, int64(settings.Balance.MaxCompounds)},
		{KeyMaxInputLength, int64(settings.Balance.MaxInputLength)},
		{KeyServerAddr, settings.Server.Addr},
		{KeyAllowedOrigins, settings.Server.AllowedOrigins},
		{KeyRateLimit, int64(settings.Server.RateLimit)},
		{KeyRateBurst, int64(settings.Server.RateBurst)},
		{KeyHistoryBackend, settings.History.Backend.String()},
	}
	for _, v := range values {
		if err := s.configStore.Set(v.key, v.value); err != nil {
			return fmt.Errorf("save %s: %w", v.key, err)
		}
	}
	return nil
}

// Set parses value for key, validates the result and persists it.
func (s *SettingsService) Set(key, value string) error {
	set, ok := setters[key]
	if !ok {
		return fmt.Errorf("%w: unknown setting %q (known: %s)", domain.ErrInvalidInput, key, strings.Join(s.Keys(), ", "))
	}

	settings, err := s.Get()
	if err != nil {
		return err
	}
	if err := set(settings, strings.TrimSpace(value)); err != nil {
		return fmt.Errorf("%w: %s: %v", domain.ErrInvalidInput, key, err)
	}
	return s.Save(settings)
}

// Keys lists every key accepted by Set, sorted.
func (s *SettingsService) Keys() []string {
	keys := make([]string, 0, len(setters))
	for k := range setters {
		keys = append(keys, k)
	}
	sort.Strings(keys)
	return keys
}

// Validate checks the stored settings.
func (s *SettingsService) Validate() error {
	settings, err := s.Get()
	if err != nil {
		return err
	}
	return settings.Validate()
}

// GetDefaults returns default settings.
func (s *SettingsService) GetDefaults() domain.Settings {
	return domain.DefaultSettings()
}

// Helper methods for reading config with defaults.

func (s *SettingsService) getString(key, defaultVal string) string {
	val := s.configStore.GetString(key)
	if val == "" {
		return defaultVal
	}
	return val
}

func (s *SettingsService) getInt(key string, defaultVal int) int {
	val := s.configStore.GetInt(key)
	if val == 0 {
		return defaultVal
	}
	return val
}

func (s *SettingsService) getStringSlice(key string, defaultVal []string) []string {
	if _, exists := s.configStore.Get(key); !exists {
		return append([]string(nil), defaultVal...)
	}
	return s.configStore.GetStringSlice(key)
}

func (s *SettingsService) getPolicy(defaultVal domain.SolutionPolicy) domain.SolutionPolicy {
	policy := domain.SolutionPolicy(s.configStore.GetString(KeyMultipleSolutions))
	if !policy.IsValid() {
		return defaultVal
	}
	return policy
}

func (s *SettingsService) getBackend(defaultVal domain.HistoryBackend) domain.HistoryBackend {
	backend := domain.HistoryBackend(s.configStore.GetString(KeyHistoryBackend))
	if !backend.IsValid() {
		return defaultVal
	}
	return backend
}

// splitList parses "a, b,c" into a trimmed slice without empty items.
func splitList(v string) []string {
	var out []string
	for _, item := range strings.Split(v, ",") {
		if item = strings.TrimSpace(item); item != "" {
			out = append(out, item)
		}
	}
	return out
}
