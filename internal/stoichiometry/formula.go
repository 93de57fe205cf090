package stoichiometry

import (
	"errors"
	"fmt"
	"math"
	"strconv"
	"unicode/utf8"

	"github.com/custodia-labs/chembalance/internal/core/domain"
)

// ParseFormula parses a fully expanded formula such as "C6H12O6".
//
// The grammar is a sequence of Upper [Lower] [Digits] tokens. A missing
// digit run means a count of 1 and repeated elements are summed. Groups,
// hydrates and charges are not supported.
func ParseFormula(formula string) (domain.ChemicalFormula, error) {
	if formula == "" {
		return domain.ChemicalFormula{}, &domain.ParseError{Input: formula, Position: -1, Reason: "empty formula"}
	}

	counts := make(map[string]int64)
	i := 0
	for i < len(formula) {
		if !isUpper(formula[i]) {
			return domain.ChemicalFormula{}, &domain.ParseError{
				Input:    formula,
				Position: i,
				Reason:   unexpectedReason(formula, i),
			}
		}

		start := i
		i++
		if i < len(formula) && isLower(formula[i]) {
			i++
		}
		elem := formula[start:i]

		digits := i
		for i < len(formula) && isDigit(formula[i]) {
			i++
		}

		count := int64(1)
		if i > digits {
			n, err := strconv.ParseInt(formula[digits:i], 10, 32)
			if errors.Is(err, strconv.ErrRange) {
				return domain.ChemicalFormula{}, &domain.ArithmeticOverflowError{
					Quantity: fmt.Sprintf("count of %s in %q", elem, formula),
					Limit:    strconv.Itoa(math.MaxInt32),
				}
			}
			if err != nil {
				return domain.ChemicalFormula{}, &domain.ParseError{Input: formula, Position: digits, Reason: err.Error()}
			}
			if n == 0 {
				return domain.ChemicalFormula{}, &domain.ParseError{
					Input:    formula,
					Position: digits,
					Reason:   "zero count for " + elem,
				}
			}
			count = n
		}

		counts[elem] += count
	}

	f := domain.NewChemicalFormula(counts)
	if f.IsEmpty() {
		return domain.ChemicalFormula{}, &domain.ParseError{Input: formula, Position: -1, Reason: "no element symbols"}
	}
	return f, nil
}

// unexpectedReason explains why the byte at i cannot start a token.
func unexpectedReason(s string, i int) string {
	c := s[i]
	switch {
	case isDigit(c):
		return "count without a preceding element symbol"
	case isLower(c):
		return fmt.Sprintf("lowercase %q cannot start an element symbol", c)
	case c == '(' || c == ')' || c == '[' || c == ']':
		return "grouping is not supported; expand the formula"
	default:
		r, _ := utf8.DecodeRuneInString(s[i:])
		return fmt.Sprintf("unexpected character %q", r)
	}
}

func isUpper(c byte) bool { return c >= 'A' && c <= 'Z' }
func isLower(c byte) bool { return c >= 'a' && c <= 'z' }
func isDigit(c byte) bool { return c >= '0' && c <= '9' }
