package stoichiometry

import (
	"math/big"

	"github.com/custodia-labs/chembalance/internal/core/domain"
)

// RREF is the exact reduced row-echelon form of a matrix.
type RREF struct {
	// Rows holds the reduced matrix; rows past len(Pivots) are zero.
	Rows [][]*big.Rat

	// Pivots is the pivot column of each leading nonzero row.
	Pivots []int

	// Free lists the non-pivot columns in ascending order.
	Free []int
}

// Rank returns the number of pivot rows.
func (r *RREF) Rank() int {
	return len(r.Pivots)
}

// ReducedRowEchelon runs Gauss-Jordan elimination over exact rationals.
//
// The pivot of each column is the topmost nonzero entry at or below the
// current row, so the result depends only on the matrix.
func ReducedRowEchelon(m *domain.StoichiometricMatrix) *RREF {
	rows, cols := m.Rows(), m.Cols()

	a := make([][]*big.Rat, rows)
	for i := range a {
		a[i] = make([]*big.Rat, cols)
		for j := range a[i] {
			a[i][j] = new(big.Rat).SetInt64(m.Entries[i][j])
		}
	}

	pivots := make([]int, 0, rows)
	r := 0
	for c := 0; c < cols && r < rows; c++ {
		p := -1
		for i := r; i < rows; i++ {
			if a[i][c].Sign() != 0 {
				p = i
				break
			}
		}
		if p < 0 {
			continue
		}
		a[r], a[p] = a[p], a[r]

		// Entries left of c in the pivot row are already zero.
		inv := new(big.Rat).Inv(a[r][c])
		for j := c; j < cols; j++ {
			a[r][j].Mul(a[r][j], inv)
		}

		tmp := new(big.Rat)
		for i := 0; i < rows; i++ {
			if i == r || a[i][c].Sign() == 0 {
				continue
			}
			f := new(big.Rat).Set(a[i][c])
			for j := c; j < cols; j++ {
				a[i][j].Sub(a[i][j], tmp.Mul(f, a[r][j]))
			}
		}

		pivots = append(pivots, c)
		r++
	}

	free := make([]int, 0, cols-len(pivots))
	next := 0
	for c := 0; c < cols; c++ {
		if next < len(pivots) && pivots[next] == c {
			next++
			continue
		}
		free = append(free, c)
	}

	return &RREF{Rows: a, Pivots: pivots, Free: free}
}

// Basis returns one null-space vector per free column, in column order.
// Vector k sets free column Free[k] to 1, the other free columns to 0,
// and solves each pivot variable from its reduced row.
func (r *RREF) Basis(cols int) [][]*big.Rat {
	basis := make([][]*big.Rat, 0, len(r.Free))
	for _, fc := range r.Free {
		v := make([]*big.Rat, cols)
		for j := range v {
			v[j] = new(big.Rat)
		}
		v[fc].SetInt64(1)
		for row, pc := range r.Pivots {
			v[pc].Neg(r.Rows[row][fc])
		}
		basis = append(basis, v)
	}
	return basis
}

// NullSpace returns a basis of the null space of m.
// It fails with SingularSystemError when only the zero vector exists.
func NullSpace(m *domain.StoichiometricMatrix) ([][]*big.Rat, error) {
	rref := ReducedRowEchelon(m)
	if len(rref.Free) == 0 {
		return nil, &domain.SingularSystemError{Elements: m.Rows(), Compounds: m.Cols()}
	}
	return rref.Basis(m.Cols()), nil
}

// SolveNullSpace returns the first null-space basis vector of m.
//
// When the null space has more than one dimension the vector of the
// lowest-index free column is chosen; Solution.Nullity records the
// dimension so callers can tell the choice was not unique.
func SolveNullSpace(m *domain.StoichiometricMatrix) (*domain.Solution, error) {
	if m.Cols() == 0 {
		return nil, &domain.ParseError{Position: -1, Reason: "equation has no compounds"}
	}
	basis, err := NullSpace(m)
	if err != nil {
		return nil, err
	}
	return &domain.Solution{Vector: basis[0], Nullity: len(basis)}, nil
}

// SumBasis adds the basis vectors component-wise.
func SumBasis(basis [][]*big.Rat) []*big.Rat {
	if len(basis) == 0 {
		return nil
	}
	sum := make([]*big.Rat, len(basis[0]))
	for j := range sum {
		sum[j] = new(big.Rat)
		for _, v := range basis {
			sum[j].Add(sum[j], v[j])
		}
	}
	return sum
}
