package stoichiometry

import (
	"fmt"
	"strings"

	"github.com/custodia-labs/chembalance/internal/core/domain"
)

// Arrow is accepted in place of "=".
const Arrow = "->"

// NormalizeEquation trims the text and rewrites arrows to "=".
func NormalizeEquation(raw string) string {
	return strings.TrimSpace(strings.ReplaceAll(raw, Arrow, "="))
}

// SplitEquation turns "A + B = C" (or "A + B -> C") into an Equation.
// Every compound is parsed with ParseFormula; the first failure is returned.
func SplitEquation(raw string) (*domain.Equation, error) {
	text := NormalizeEquation(raw)
	if text == "" {
		return nil, &domain.ParseError{Input: raw, Position: -1, Reason: "empty equation"}
	}

	if n := strings.Count(text, "="); n != 1 {
		return nil, &domain.ParseError{
			Input:    text,
			Position: -1,
			Reason:   fmt.Sprintf("expected exactly one '=' or '->', found %d", n),
		}
	}

	left, right, _ := strings.Cut(text, "=")

	reactants, err := splitSide(text, left, "reactant")
	if err != nil {
		return nil, err
	}
	products, err := splitSide(text, right, "product")
	if err != nil {
		return nil, err
	}

	return &domain.Equation{
		Raw:       text,
		Reactants: reactants,
		Products:  products,
	}, nil
}

// splitSide parses one side of the equation.
func splitSide(text, side, kind string) ([]domain.Compound, error) {
	if strings.TrimSpace(side) == "" {
		return nil, &domain.ParseError{Input: text, Position: -1, Reason: "no " + kind + "s"}
	}

	tokens := strings.Split(side, "+")
	compounds := make([]domain.Compound, 0, len(tokens))
	for i, tok := range tokens {
		display := strings.TrimSpace(tok)
		if display == "" {
			return nil, &domain.ParseError{
				Input:    text,
				Position: -1,
				Reason:   fmt.Sprintf("empty %s at position %d", kind, i+1),
			}
		}

		formula, err := ParseFormula(display)
		if err != nil {
			return nil, fmt.Errorf("%s %d: %w", kind, i+1, err)
		}
		compounds = append(compounds, domain.Compound{Display: display, Formula: formula})
	}
	return compounds, nil
}
