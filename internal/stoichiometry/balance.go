package stoichiometry

import (
	"errors"
	"fmt"
	"math/big"
	"sort"

	"github.com/custodia-labs/chembalance/internal/core/domain"
)

// Balancer balances equations under a fixed set of limits and policies.
type Balancer struct {
	policy         domain.SolutionPolicy
	maxCoefficient int64
	maxCompounds   int
	maxInputLength int
}

// Option configures a Balancer.
type Option func(*Balancer)

// WithPolicy sets how a null space of dimension > 1 is handled.
func WithPolicy(policy domain.SolutionPolicy) Option {
	return func(b *Balancer) {
		if policy.IsValid() {
			b.policy = policy
		}
	}
}

// WithMaxCoefficient bounds every output coefficient.
func WithMaxCoefficient(limit int64) Option {
	return func(b *Balancer) {
		if limit > 0 {
			b.maxCoefficient = limit
		}
	}
}

// WithMaxCompounds bounds the number of compounds per equation.
func WithMaxCompounds(limit int) Option {
	return func(b *Balancer) {
		if limit > 0 {
			b.maxCompounds = limit
		}
	}
}

// WithMaxInputLength bounds the equation text length in bytes.
func WithMaxInputLength(limit int) Option {
	return func(b *Balancer) {
		if limit > 0 {
			b.maxInputLength = limit
		}
	}
}

// WithSettings applies every limit from balance settings.
func WithSettings(s domain.BalanceSettings) Option {
	return func(b *Balancer) {
		WithPolicy(s.MultipleSolutions)(b)
		WithMaxCoefficient(s.MaxCoefficient)(b)
		WithMaxCompounds(s.MaxCompounds)(b)
		WithMaxInputLength(s.MaxInputLength)(b)
	}
}

// New creates a Balancer with defaults from domain.DefaultSettings.
func New(opts ...Option) *Balancer {
	d := domain.DefaultSettings().Balance
	b := &Balancer{
		policy:         d.MultipleSolutions,
		maxCoefficient: d.MaxCoefficient,
		maxCompounds:   d.MaxCompounds,
		maxInputLength: d.MaxInputLength,
	}
	for _, opt := range opts {
		opt(b)
	}
	return b
}

// Policy returns the configured multiple-solution policy.
func (b *Balancer) Policy() domain.SolutionPolicy {
	return b.policy
}

// Balance computes minimal positive integer coefficients for text.
func (b *Balancer) Balance(text string) (*domain.BalancedEquation, error) {
	eq, err := b.parse(text)
	if err != nil {
		return nil, err
	}

	m, err := BuildMatrix(eq)
	if err != nil {
		return nil, err
	}

	sol, err := b.solve(m)
	if err != nil {
		return nil, err
	}

	coeffs, err := Normalize(sol, len(eq.Reactants), b.maxCoefficient)
	if err != nil {
		var be *domain.BalanceError
		if sol.Nullity > 1 && errors.As(err, &be) {
			return nil, &domain.BalanceError{
				Reason: fmt.Sprintf("%s (null space has dimension %d)", be.Reason, sol.Nullity),
				Err:    domain.ErrUnderdetermined,
			}
		}
		return nil, err
	}

	reactants, products, err := Terms(eq, coeffs)
	if err != nil {
		return nil, err
	}

	return &domain.BalancedEquation{
		Original:  eq.Raw,
		Reactants: reactants,
		Products:  products,
		Text:      FormatTerms(reactants, products),
		Nullity:   sol.Nullity,
	}, nil
}

// Explain returns the intermediate matrices for text without normalising.
func (b *Balancer) Explain(text string) (*domain.Explanation, error) {
	eq, err := b.parse(text)
	if err != nil {
		return nil, err
	}
	m, err := BuildMatrix(eq)
	if err != nil {
		return nil, err
	}

	rref := ReducedRowEchelon(m)
	return &domain.Explanation{
		Equation:     eq,
		Matrix:       m,
		Reduced:      rref.Rows,
		PivotColumns: rref.Pivots,
		FreeColumns:  rref.Free,
		Basis:        rref.Basis(m.Cols()),
	}, nil
}

// parse applies input limits and splits the equation.
func (b *Balancer) parse(text string) (*domain.Equation, error) {
	if len(text) > b.maxInputLength {
		return nil, &domain.ParseError{
			Input:    truncate(text, 32),
			Position: -1,
			Reason:   fmt.Sprintf("equation longer than %d bytes", b.maxInputLength),
		}
	}

	eq, err := SplitEquation(text)
	if err != nil {
		return nil, err
	}
	if eq.Size() > b.maxCompounds {
		return nil, &domain.ParseError{
			Input:    eq.Raw,
			Position: -1,
			Reason:   fmt.Sprintf("%d compounds exceeds the limit of %d", eq.Size(), b.maxCompounds),
		}
	}
	return eq, nil
}

// solve picks the null-space vector according to the policy.
func (b *Balancer) solve(m *domain.StoichiometricMatrix) (*domain.Solution, error) {
	if b.policy != domain.SolutionPolicySum {
		sol, err := SolveNullSpace(m)
		if err != nil {
			return nil, err
		}
		if sol.Nullity > 1 && b.policy == domain.SolutionPolicyReject {
			return nil, &domain.BalanceError{
				Reason: fmt.Sprintf("%d independent balancings exist", sol.Nullity),
				Err:    domain.ErrUnderdetermined,
			}
		}
		return sol, nil
	}

	basis, err := NullSpace(m)
	if err != nil {
		return nil, err
	}
	return &domain.Solution{Vector: SumBasis(basis), Nullity: len(basis)}, nil
}

// Balance balances text with default settings.
func Balance(text string) (*domain.BalancedEquation, error) {
	return New().Balance(text)
}

// Verify checks that every element is conserved exactly and that
// all coefficients are positive.
func Verify(b *domain.BalancedEquation) error {
	totals := make(map[string]*big.Int)
	add := func(terms []domain.Term, sign int64) error {
		for _, t := range terms {
			if t.Coefficient <= 0 {
				return &domain.BalanceError{Reason: fmt.Sprintf("non-positive coefficient for %s", t.Compound.Display)}
			}
			for _, elem := range t.Compound.Formula.Elements() {
				if totals[elem] == nil {
					totals[elem] = new(big.Int)
				}
				n := new(big.Int).Mul(big.NewInt(t.Coefficient), big.NewInt(t.Compound.Formula.Count(elem)))
				if sign < 0 {
					n.Neg(n)
				}
				totals[elem].Add(totals[elem], n)
			}
		}
		return nil
	}

	if err := add(b.Reactants, 1); err != nil {
		return err
	}
	if err := add(b.Products, -1); err != nil {
		return err
	}

	for _, elem := range sortedKeys(totals) {
		if totals[elem].Sign() != 0 {
			return &domain.BalanceError{Reason: fmt.Sprintf("element %s is not conserved (difference %s)", elem, totals[elem])}
		}
	}
	return nil
}

func sortedKeys(m map[string]*big.Int) []string {
	keys := make([]string, 0, len(m))
	for k := range m {
		keys = append(keys, k)
	}
	sort.Strings(keys)
	return keys
}

func truncate(s string, n int) string {
	if len(s) <= n {
		return s
	}
	return s[:n] + "..."
}
