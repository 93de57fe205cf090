package stoichiometry

import (
	"fmt"
	"math"
	"math/big"

	"github.com/custodia-labs/chembalance/internal/core/domain"
)

// Normalize scales a rational solution to minimal positive integers.
//
// The vector is multiplied by the LCM of its denominators, divided by the
// GCD of the resulting integers, and flipped if the reactant prefix is
// negative. Zero entries, mixed signs and coefficients above
// maxCoefficient are errors. A maxCoefficient <= 0 means math.MaxInt64.
func Normalize(sol *domain.Solution, reactants int, maxCoefficient int64) ([]int64, error) {
	if sol == nil || len(sol.Vector) == 0 {
		return nil, &domain.BalanceError{Reason: "empty solution vector"}
	}
	n := len(sol.Vector)
	if reactants < 1 || reactants >= n {
		return nil, &domain.BalanceError{Reason: fmt.Sprintf("invalid reactant count %d for %d compounds", reactants, n)}
	}
	if maxCoefficient <= 0 {
		maxCoefficient = math.MaxInt64
	}

	lcm := big.NewInt(1)
	for _, q := range sol.Vector {
		lcm = lcmInt(lcm, q.Denom())
	}

	ints := make([]*big.Int, n)
	gcd := new(big.Int)
	for i, q := range sol.Vector {
		scale := new(big.Int).Quo(lcm, q.Denom())
		ints[i] = scale.Mul(scale, q.Num())
		gcd.GCD(nil, nil, gcd, new(big.Int).Abs(ints[i]))
	}
	if gcd.Sign() == 0 {
		return nil, &domain.BalanceError{Reason: "solution is the zero vector"}
	}
	for i := range ints {
		ints[i].Quo(ints[i], gcd)
	}

	for i, v := range ints {
		if v.Sign() == 0 {
			return nil, &domain.BalanceError{Reason: fmt.Sprintf("compound %d drops out with coefficient 0", i+1)}
		}
	}

	sign := ints[0].Sign()
	for _, v := range ints[1:reactants] {
		if v.Sign() != sign {
			return nil, &domain.BalanceError{Reason: "reactant coefficients have mixed signs"}
		}
	}
	if sign < 0 {
		for _, v := range ints {
			v.Neg(v)
		}
	}
	for i, v := range ints[reactants:] {
		if v.Sign() < 0 {
			return nil, &domain.BalanceError{
				Reason: fmt.Sprintf("product %d needs a negative coefficient", i+1),
			}
		}
	}

	limit := big.NewInt(maxCoefficient)
	coeffs := make([]int64, n)
	for i, v := range ints {
		if v.Cmp(limit) > 0 {
			return nil, &domain.ArithmeticOverflowError{
				Quantity: fmt.Sprintf("coefficient %s of compound %d", v.String(), i+1),
				Limit:    limit.String(),
			}
		}
		coeffs[i] = v.Int64()
	}
	return coeffs, nil
}

// lcmInt returns lcm(a, b) for positive a and b.
func lcmInt(a, b *big.Int) *big.Int {
	g := new(big.Int).GCD(nil, nil, a, b)
	l := new(big.Int).Quo(a, g)
	return l.Mul(l, b)
}

// GCD returns the greatest common divisor of the absolute values.
func GCD(values []int64) int64 {
	g := new(big.Int)
	for _, v := range values {
		g.GCD(nil, nil, g, new(big.Int).Abs(big.NewInt(v)))
	}
	return g.Int64()
}
