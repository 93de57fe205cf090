package domain

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestNewChemicalFormula_CopiesInput(t *testing.T) {
	counts := map[string]int64{"H": 2, "O": 1}
	f := NewChemicalFormula(counts)

	counts["H"] = 99

	assert.Equal(t, int64(2), f.Count("H"))
}

func TestNewChemicalFormula_DropsNonPositive(t *testing.T) {
	f := NewChemicalFormula(map[string]int64{"H": 2, "O": 0, "N": -1})

	assert.Equal(t, 1, f.Len())
	assert.False(t, f.Has("O"))
	assert.False(t, f.Has("N"))
}

func TestChemicalFormula_Elements_Sorted(t *testing.T) {
	f := NewChemicalFormula(map[string]int64{"O": 4, "S": 1, "H": 2, "Cl": 1, "C": 1})

	assert.Equal(t, []string{"C", "Cl", "H", "O", "S"}, f.Elements())
}

func TestChemicalFormula_CountsReturnsCopy(t *testing.T) {
	f := NewChemicalFormula(map[string]int64{"Na": 1})

	c := f.Counts()
	c["Na"] = 5

	assert.Equal(t, int64(1), f.Count("Na"))
}

func TestChemicalFormula_Equal(t *testing.T) {
	a := NewChemicalFormula(map[string]int64{"H": 2, "O": 1})
	b := NewChemicalFormula(map[string]int64{"O": 1, "H": 2})
	c := NewChemicalFormula(map[string]int64{"H": 2, "O": 2})

	assert.True(t, a.Equal(b))
	assert.False(t, a.Equal(c))
	assert.False(t, a.Equal(NewChemicalFormula(nil)))
}

func TestChemicalFormula_String(t *testing.T) {
	assert.Equal(t, "H2O", NewChemicalFormula(map[string]int64{"H": 2, "O": 1}).String())
	assert.Equal(t, "Fe2O3", NewChemicalFormula(map[string]int64{"O": 3, "Fe": 2}).String())
	assert.Equal(t, "", NewChemicalFormula(nil).String())
	assert.True(t, NewChemicalFormula(nil).IsEmpty())
}

func TestEquation_Compounds(t *testing.T) {
	eq := &Equation{
		Reactants: []Compound{{Display: "H2"}, {Display: "O2"}},
		Products:  []Compound{{Display: "H2O"}},
	}

	all := eq.Compounds()

	assert.Len(t, all, 3)
	assert.Equal(t, "H2", all[0].String())
	assert.Equal(t, "H2O", all[2].String())
	assert.Equal(t, 3, eq.Size())
}

func TestBalancedEquation_Coefficients(t *testing.T) {
	b := &BalancedEquation{
		Reactants: []Term{{Coefficient: 2}, {Coefficient: 1}},
		Products:  []Term{{Coefficient: 2}},
		Nullity:   1,
	}

	assert.Equal(t, []int64{2, 1, 2}, b.Coefficients())
	assert.False(t, b.Ambiguous())

	b.Nullity = 2
	assert.True(t, b.Ambiguous())
}
