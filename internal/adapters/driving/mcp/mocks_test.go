package mcp

import (
	"context"
	"math/big"

	"github.com/custodia-labs/chembalance/internal/core/domain"
)

// mockBalanceService is a mock implementation of driving.BalanceService.
type mockBalanceService struct {
	result      *domain.BalancedEquation
	explanation *domain.Explanation
	err         error
	lastInput   string
}

func (m *mockBalanceService) Balance(_ context.Context, equation string) (*domain.BalancedEquation, error) {
	m.lastInput = equation
	return m.result, m.err
}

func (m *mockBalanceService) Explain(_ context.Context, equation string) (*domain.Explanation, error) {
	m.lastInput = equation
	return m.explanation, m.err
}

// mockHistoryService is a mock implementation of driving.HistoryService.
type mockHistoryService struct {
	entries []domain.HistoryEntry
	err     error
}

func (m *mockHistoryService) List(_ context.Context) ([]domain.HistoryEntry, error) {
	return m.entries, m.err
}

func (m *mockHistoryService) Clear(_ context.Context) error {
	m.entries = nil
	return m.err
}

// waterResult is "2 H2 + 1 O2 = 2 H2O".
func waterResult() *domain.BalancedEquation {
	h2 := domain.Compound{Display: "H2", Formula: domain.NewChemicalFormula(map[string]int64{"H": 2})}
	o2 := domain.Compound{Display: "O2", Formula: domain.NewChemicalFormula(map[string]int64{"O": 2})}
	h2o := domain.Compound{Display: "H2O", Formula: domain.NewChemicalFormula(map[string]int64{"H": 2, "O": 1})}
	return &domain.BalancedEquation{
		Original:  "H2 + O2 = H2O",
		Reactants: []domain.Term{{Coefficient: 2, Compound: h2}, {Coefficient: 1, Compound: o2}},
		Products:  []domain.Term{{Coefficient: 2, Compound: h2o}},
		Text:      "2 H2 + 1 O2 = 2 H2O",
		Nullity:   1,
	}
}

// waterExplanation is the explanation of H2 + O2 = H2O.
func waterExplanation() *domain.Explanation {
	return &domain.Explanation{
		Matrix: &domain.StoichiometricMatrix{
			Elements:  []string{"H", "O"},
			Columns:   []string{"H2", "O2", "H2O"},
			Reactants: 2,
			Entries:   [][]int64{{2, 0, -2}, {0, 2, -1}},
		},
		PivotColumns: []int{0, 1},
		FreeColumns:  []int{2},
		Basis:        [][]*big.Rat{{big.NewRat(1, 1), big.NewRat(1, 2), big.NewRat(1, 1)}},
	}
}

func sampleHistory() []domain.HistoryEntry {
	return []domain.HistoryEntry{
		{ID: "id-1", Original: "H2 + O2 = H2O", Balanced: "2 H2 + 1 O2 = 2 H2O"},
		{ID: "id-2", Original: "Fe + O2 = Fe2O3", Balanced: "4 Fe + 3 O2 = 2 Fe2O3"},
		{ID: "id-3", Original: "H2O = H2 + O2", Balanced: "2 H2O = 2 H2 + 1 O2"},
	}
}
