package tui

import (
	"context"
	"errors"
	"time"

	"github.com/custodia-labs/chembalance/internal/core/domain"
)

// MockBalanceService implements driving.BalanceService for testing.
type MockBalanceService struct {
	Err error
}

func (m *MockBalanceService) Balance(_ context.Context, equation string) (*domain.BalancedEquation, error) {
	if m.Err != nil {
		return nil, m.Err
	}
	return &domain.BalancedEquation{
		Original: equation,
		Reactants: []domain.Term{
			{Coefficient: 2, Compound: domain.Compound{Display: "H2"}},
			{Coefficient: 1, Compound: domain.Compound{Display: "O2"}},
		},
		Products: []domain.Term{{Coefficient: 2, Compound: domain.Compound{Display: "H2O"}}},
		Text:     "2 H2 + 1 O2 = 2 H2O",
		Nullity:  1,
	}, nil
}

func (m *MockBalanceService) Explain(context.Context, string) (*domain.Explanation, error) {
	return nil, errors.New("not implemented")
}

// MockHistoryService implements driving.HistoryService for testing.
type MockHistoryService struct {
	Entries []domain.HistoryEntry
}

func (m *MockHistoryService) List(context.Context) ([]domain.HistoryEntry, error) {
	return m.Entries, nil
}

func (m *MockHistoryService) Clear(context.Context) error {
	m.Entries = nil
	return nil
}

// MockSettingsService implements driving.SettingsService for testing.
type MockSettingsService struct {
	Settings *domain.Settings
	Err      error
}

func (m *MockSettingsService) Get() (*domain.Settings, error) {
	if m.Err != nil {
		return nil, m.Err
	}
	if m.Settings == nil {
		s := domain.DefaultSettings()
		return &s, nil
	}
	return m.Settings, nil
}

func (m *MockSettingsService) Save(s *domain.Settings) error {
	m.Settings = s
	return nil
}

func (m *MockSettingsService) Set(string, string) error { return nil }

func (m *MockSettingsService) Keys() []string { return nil }

func (m *MockSettingsService) Validate() error { return nil }

func (m *MockSettingsService) GetDefaults() domain.Settings { return domain.DefaultSettings() }

func sampleHistory() []domain.HistoryEntry {
	return []domain.HistoryEntry{
		{ID: "1", Original: "H2 + O2 = H2O", Balanced: "2 H2 + 1 O2 = 2 H2O", CreatedAt: time.Unix(1700000000, 0)},
		{ID: "2", Original: "C + O2 = CO2", Balanced: "1 C + 1 O2 = 1 CO2", CreatedAt: time.Unix(1700000060, 0)},
	}
}
