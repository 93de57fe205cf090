package domain

import (
	"sort"
	"strconv"
	"strings"
)

// ChemicalFormula maps element symbols to positive atom counts.
// Values are immutable once constructed: the underlying map is never exposed.
type ChemicalFormula struct {
	counts map[string]int64
}

// NewChemicalFormula creates a formula from element counts.
// The input map is copied; entries with a non-positive count are dropped.
func NewChemicalFormula(counts map[string]int64) ChemicalFormula {
	c := make(map[string]int64, len(counts))
	for elem, n := range counts {
		if n > 0 {
			c[elem] = n
		}
	}
	return ChemicalFormula{counts: c}
}

// Count returns the number of atoms of elem, or 0 if absent.
func (f ChemicalFormula) Count(elem string) int64 {
	return f.counts[elem]
}

// Has reports whether elem appears in the formula.
func (f ChemicalFormula) Has(elem string) bool {
	_, ok := f.counts[elem]
	return ok
}

// Len returns the number of distinct elements.
func (f ChemicalFormula) Len() int {
	return len(f.counts)
}

// IsEmpty reports whether the formula has no elements.
func (f ChemicalFormula) IsEmpty() bool {
	return len(f.counts) == 0
}

// Elements returns the element symbols in lexicographic order.
func (f ChemicalFormula) Elements() []string {
	elems := make([]string, 0, len(f.counts))
	for elem := range f.counts {
		elems = append(elems, elem)
	}
	sort.Strings(elems)
	return elems
}

// Counts returns a copy of the element counts.
func (f ChemicalFormula) Counts() map[string]int64 {
	c := make(map[string]int64, len(f.counts))
	for elem, n := range f.counts {
		c[elem] = n
	}
	return c
}

// Equal reports whether both formulas have identical element counts.
func (f ChemicalFormula) Equal(other ChemicalFormula) bool {
	if len(f.counts) != len(other.counts) {
		return false
	}
	for elem, n := range f.counts {
		if other.counts[elem] != n {
			return false
		}
	}
	return true
}

// String renders the formula in canonical (sorted, expanded) form, e.g. "H2O".
func (f ChemicalFormula) String() string {
	var b strings.Builder
	for _, elem := range f.Elements() {
		b.WriteString(elem)
		if n := f.counts[elem]; n != 1 {
			b.WriteString(strconv.FormatInt(n, 10))
		}
	}
	return b.String()
}

// Compound is a single chemical formula on one side of an equation.
type Compound struct {
	// Display is the compound exactly as the user entered it (trimmed).
	Display string

	// Formula is the parsed elemental composition.
	Formula ChemicalFormula
}

// String returns the display string.
func (c Compound) String() string {
	return c.Display
}
