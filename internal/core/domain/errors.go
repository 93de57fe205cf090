package domain

import (
	"errors"
	"fmt"
)

// Domain errors represent business logic failures.
// These are distinct from infrastructure errors.
var (
	// ErrNotFound indicates a requested entity does not exist.
	ErrNotFound = errors.New("not found")

	// ErrInvalidInput indicates malformed or invalid input.
	ErrInvalidInput = errors.New("invalid input")

	// Balancing Errors.

	// ErrParse indicates malformed compound or equation syntax.
	ErrParse = errors.New("parse error")

	// ErrSingularSystem indicates the null space is trivial: the element
	// set cannot be conserved by any nonzero set of coefficients.
	ErrSingularSystem = errors.New("singular system")

	// ErrBalance indicates a non-trivial solution exists but no
	// all-positive nonzero integer coefficients can be derived from it.
	ErrBalance = errors.New("cannot balance equation")

	// ErrArithmeticOverflow indicates a count or coefficient exceeds the
	// representable or configured magnitude.
	ErrArithmeticOverflow = errors.New("arithmetic overflow")

	// ErrUnderdetermined indicates the equation admits more than one
	// independent balancing and the configured policy rejects it.
	ErrUnderdetermined = errors.New("equation has multiple independent solutions")
)

// Error codes exposed at service boundaries.
const (
	CodeParse         = "parse_error"
	CodeSingular      = "singular_system"
	CodeBalance       = "balance_error"
	CodeOverflow      = "arithmetic_overflow"
	CodeInvalidInput  = "invalid_input"
	CodeInternalError = "internal_error"
)

// ParseError reports malformed compound or equation syntax.
type ParseError struct {
	// Input is the text being parsed (a compound or the whole equation).
	Input string

	// Position is the byte offset of the offending character, or -1.
	Position int

	// Reason describes what was wrong.
	Reason string
}

func (e *ParseError) Error() string {
	if e.Position >= 0 {
		return fmt.Sprintf("parse error: %s at position %d in %q", e.Reason, e.Position, e.Input)
	}
	return fmt.Sprintf("parse error: %s in %q", e.Reason, e.Input)
}

// Is reports whether target is ErrParse.
func (e *ParseError) Is(target error) bool {
	return target == ErrParse
}

// SingularSystemError reports a zero-dimensional null space.
type SingularSystemError struct {
	Elements  int
	Compounds int
}

func (e *SingularSystemError) Error() string {
	return fmt.Sprintf(
		"singular system: only the zero vector conserves all %d elements across %d compounds",
		e.Elements, e.Compounds)
}

// Is reports whether target is ErrSingularSystem.
func (e *SingularSystemError) Is(target error) bool {
	return target == ErrSingularSystem
}

// BalanceError reports that normalisation could not yield
// all-positive nonzero integer coefficients.
type BalanceError struct {
	Reason string

	// Err is an optional underlying cause, e.g. ErrUnderdetermined.
	Err error
}

func (e *BalanceError) Error() string {
	return "cannot balance equation: " + e.Reason
}

// Is reports whether target is ErrBalance.
func (e *BalanceError) Is(target error) bool {
	return target == ErrBalance
}

// Unwrap returns the underlying cause.
func (e *BalanceError) Unwrap() error {
	return e.Err
}

// ArithmeticOverflowError reports a magnitude beyond the allowed bound.
type ArithmeticOverflowError struct {
	// Quantity names what overflowed, e.g. "coefficient".
	Quantity string

	// Limit is the bound that was exceeded, rendered for humans.
	Limit string
}

func (e *ArithmeticOverflowError) Error() string {
	return fmt.Sprintf("arithmetic overflow: %s exceeds %s", e.Quantity, e.Limit)
}

// Is reports whether target is ErrArithmeticOverflow.
func (e *ArithmeticOverflowError) Is(target error) bool {
	return target == ErrArithmeticOverflow
}

// ErrorCode maps an error to a stable machine-readable code.
func ErrorCode(err error) string {
	switch {
	case err == nil:
		return ""
	case errors.Is(err, ErrParse):
		return CodeParse
	case errors.Is(err, ErrSingularSystem):
		return CodeSingular
	case errors.Is(err, ErrBalance):
		return CodeBalance
	case errors.Is(err, ErrArithmeticOverflow):
		return CodeOverflow
	case errors.Is(err, ErrInvalidInput):
		return CodeInvalidInput
	default:
		return CodeInternalError
	}
}
