package stoichiometry

import (
	"sort"

	"github.com/custodia-labs/chembalance/internal/core/domain"
)

// BuildMatrix assembles the stoichiometric matrix of an equation.
//
// Rows are the distinct elements sorted lexicographically; columns are
// the reactants followed by the products, in input order. Product counts
// are negated so that a null vector of the matrix conserves every element.
func BuildMatrix(eq *domain.Equation) (*domain.StoichiometricMatrix, error) {
	if eq == nil || len(eq.Reactants) == 0 || len(eq.Products) == 0 {
		return nil, &domain.ParseError{Position: -1, Reason: "equation needs at least one reactant and one product"}
	}

	compounds := eq.Compounds()

	seen := make(map[string]struct{})
	for _, c := range compounds {
		for _, elem := range c.Formula.Elements() {
			seen[elem] = struct{}{}
		}
	}
	elements := make([]string, 0, len(seen))
	for elem := range seen {
		elements = append(elements, elem)
	}
	sort.Strings(elements)

	columns := make([]string, len(compounds))
	for j, c := range compounds {
		columns[j] = c.Display
	}

	reactants := len(eq.Reactants)
	entries := make([][]int64, len(elements))
	for i, elem := range elements {
		row := make([]int64, len(compounds))
		for j, c := range compounds {
			n := c.Formula.Count(elem)
			if j >= reactants {
				n = -n
			}
			row[j] = n
		}
		entries[i] = row
	}

	return &domain.StoichiometricMatrix{
		Elements:  elements,
		Columns:   columns,
		Reactants: reactants,
		Entries:   entries,
	}, nil
}
