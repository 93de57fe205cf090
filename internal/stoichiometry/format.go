package stoichiometry

import (
	"fmt"
	"strconv"
	"strings"

	"github.com/custodia-labs/chembalance/internal/core/domain"
)

// Terms pairs coefficients with the compounds of eq, reactants first.
// coeffs must hold exactly one entry per compound.
func Terms(eq *domain.Equation, coeffs []int64) (reactants, products []domain.Term, err error) {
	if len(coeffs) != eq.Size() {
		return nil, nil, fmt.Errorf("%w: %d coefficients for %d compounds", domain.ErrInvalidInput, len(coeffs), eq.Size())
	}

	reactants = make([]domain.Term, len(eq.Reactants))
	for i, c := range eq.Reactants {
		reactants[i] = domain.Term{Coefficient: coeffs[i], Compound: c}
	}
	offset := len(eq.Reactants)
	products = make([]domain.Term, len(eq.Products))
	for i, c := range eq.Products {
		products[i] = domain.Term{Coefficient: coeffs[offset+i], Compound: c}
	}
	return reactants, products, nil
}

// FormatTerms renders "c1 A + c2 B = c3 C". A coefficient of 1 is kept.
func FormatTerms(reactants, products []domain.Term) string {
	return joinTerms(reactants) + " = " + joinTerms(products)
}

// Format renders eq with the given coefficients.
func Format(eq *domain.Equation, coeffs []int64) (string, error) {
	reactants, products, err := Terms(eq, coeffs)
	if err != nil {
		return "", err
	}
	return FormatTerms(reactants, products), nil
}

func joinTerms(terms []domain.Term) string {
	parts := make([]string, len(terms))
	for i, t := range terms {
		parts[i] = strconv.FormatInt(t.Coefficient, 10) + " " + t.Compound.Display
	}
	return strings.Join(parts, " + ")
}
