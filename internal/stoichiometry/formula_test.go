package stoichiometry

import (
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/custodia-labs/chembalance/internal/core/domain"
)

func TestParseFormula(t *testing.T) {
	tests := []struct {
		formula string
		want    map[string]int64
	}{
		{"H2O", map[string]int64{"H": 2, "O": 1}},
		{"Fe2O3", map[string]int64{"Fe": 2, "O": 3}},
		{"NaCl", map[string]int64{"Na": 1, "Cl": 1}},
		{"O", map[string]int64{"O": 1}},
		{"C6H12O6", map[string]int64{"C": 6, "H": 12, "O": 6}},
		{"CH3COOH", map[string]int64{"C": 2, "H": 4, "O": 2}},
		{"KMnO4", map[string]int64{"K": 1, "Mn": 1, "O": 4}},
		{"H010", map[string]int64{"H": 10}},
		{"H2147483647", map[string]int64{"H": 2147483647}},
	}

	for _, tt := range tests {
		t.Run(tt.formula, func(t *testing.T) {
			f, err := ParseFormula(tt.formula)
			require.NoError(t, err)
			assert.True(t, domain.NewChemicalFormula(tt.want).Equal(f), "got %v", f.Counts())
		})
	}
}

func TestParseFormula_CaseSensitive(t *testing.T) {
	co, err := ParseFormula("CO")
	require.NoError(t, err)
	cobalt, err := ParseFormula("Co")
	require.NoError(t, err)

	assert.Equal(t, []string{"C", "O"}, co.Elements())
	assert.Equal(t, []string{"Co"}, cobalt.Elements())
}

func TestParseFormula_Errors(t *testing.T) {
	tests := []struct {
		name     string
		formula  string
		position int
		reason   string
	}{
		{"empty", "", -1, "empty formula"},
		{"lowercase start", "h2o", 0, "lowercase"},
		{"leading digit", "2H", 0, "count without"},
		{"embedded space", "H2 O2", 2, "unexpected character ' '"},
		{"parenthesis", "Ca(OH)2", 2, "grouping is not supported"},
		{"zero count", "H0", 1, "zero count for H"},
		{"plus sign", "H+", 1, "unexpected character '+'"},
		{"hydrate dot", "CuSO4·5H2O", 5, "unexpected character '·'"},
		{"three letter symbol", "Abc", 2, "lowercase"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := ParseFormula(tt.formula)
			require.Error(t, err)
			assert.True(t, errors.Is(err, domain.ErrParse))

			var pe *domain.ParseError
			require.True(t, errors.As(err, &pe))
			assert.Equal(t, tt.position, pe.Position)
			assert.Contains(t, pe.Reason, tt.reason)
		})
	}
}

func TestParseFormula_CountOverflow(t *testing.T) {
	_, err := ParseFormula("H99999999999")

	require.Error(t, err)
	assert.True(t, errors.Is(err, domain.ErrArithmeticOverflow))
	assert.False(t, errors.Is(err, domain.ErrParse))
}
