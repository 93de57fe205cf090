package domain

import (
	"math/big"
	"time"
)

// Equation is an unbalanced chemical equation.
// Both Reactants and Products are non-empty for a valid equation.
type Equation struct {
	// Raw is the normalised input text ("->" replaced by "=", trimmed).
	Raw string

	// Reactants are the left-hand side compounds, in input order.
	Reactants []Compound

	// Products are the right-hand side compounds, in input order.
	Products []Compound
}

// Compounds returns reactants followed by products.
// This is the column order of the stoichiometric matrix.
func (e *Equation) Compounds() []Compound {
	all := make([]Compound, 0, len(e.Reactants)+len(e.Products))
	all = append(all, e.Reactants...)
	all = append(all, e.Products...)
	return all
}

// Size returns the total number of compounds.
func (e *Equation) Size() int {
	return len(e.Reactants) + len(e.Products)
}

// StoichiometricMatrix encodes per-element conservation constraints.
// Row i corresponds to Elements[i]; column j to the j-th compound with
// reactant columns first. Product entries are negated.
type StoichiometricMatrix struct {
	// Elements are the row labels, sorted lexicographically.
	Elements []string

	// Columns are the compound display strings, reactants first.
	Columns []string

	// Reactants is the number of leading reactant columns.
	Reactants int

	// Entries holds the signed atom counts, Entries[row][col].
	Entries [][]int64
}

// Rows returns the number of element rows.
func (m *StoichiometricMatrix) Rows() int {
	return len(m.Entries)
}

// Cols returns the number of compound columns.
func (m *StoichiometricMatrix) Cols() int {
	return len(m.Columns)
}

// Solution is a vector in the null space of a StoichiometricMatrix.
// Entries are exact rationals, one per matrix column.
type Solution struct {
	// Vector holds the exact rational ratio, one entry per compound.
	Vector []*big.Rat

	// Nullity is the dimension of the null space the vector was drawn from.
	// A value above 1 means the equation admits independent balancings.
	Nullity int
}

// Term is one coefficient/compound pair of a balanced equation.
type Term struct {
	Coefficient int64
	Compound    Compound
}

// BalancedEquation is an equation annotated with minimal positive
// integer coefficients satisfying per-element conservation.
type BalancedEquation struct {
	// Original is the normalised equation text that was balanced.
	Original string

	// Reactants and Products carry the coefficients in input order.
	Reactants []Term
	Products  []Term

	// Text is the rendered balanced equation.
	Text string

	// Nullity is the null-space dimension observed while solving.
	Nullity int
}

// Coefficients returns all coefficients, reactants first.
func (b *BalancedEquation) Coefficients() []int64 {
	coeffs := make([]int64, 0, len(b.Reactants)+len(b.Products))
	for _, t := range b.Reactants {
		coeffs = append(coeffs, t.Coefficient)
	}
	for _, t := range b.Products {
		coeffs = append(coeffs, t.Coefficient)
	}
	return coeffs
}

// Ambiguous reports whether more than one independent balancing exists.
func (b *BalancedEquation) Ambiguous() bool {
	return b.Nullity > 1
}

// HistoryEntry records one successful balance.
type HistoryEntry struct {
	// ID is a unique identifier (UUID).
	ID string

	// Original is the normalised equation that was submitted.
	Original string

	// Balanced is the rendered balanced equation.
	Balanced string

	// CreatedAt is when the entry was recorded.
	CreatedAt time.Time
}

// Explanation exposes the intermediate linear algebra of a balance.
type Explanation struct {
	// Equation is the parsed input.
	Equation *Equation

	// Matrix is the stoichiometric matrix.
	Matrix *StoichiometricMatrix

	// Reduced is the exact reduced row-echelon form of Matrix.
	Reduced [][]*big.Rat

	// PivotColumns lists the pivot column of each nonzero reduced row.
	PivotColumns []int

	// FreeColumns lists the columns that parametrise the null space.
	FreeColumns []int

	// Basis holds one null-space basis vector per free column.
	Basis [][]*big.Rat
}

// Nullity returns the null-space dimension.
func (e *Explanation) Nullity() int {
	return len(e.FreeColumns)
}
