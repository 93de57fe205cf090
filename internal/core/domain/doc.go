// Package domain defines the core business entities for chembalance.
//
// This package is part of the hexagonal architecture's innermost layer.
// It has NO external dependencies and defines the fundamental types:
//
//   - ChemicalFormula: Element symbol to atom count for one compound
//   - Compound: A formula with the display string the user typed
//   - Equation: Ordered reactant and product compounds
//   - StoichiometricMatrix: Signed element counts, one row per element
//   - Solution: An exact rational null-space vector of the matrix
//   - BalancedEquation: Minimal positive integer coefficients per compound
//
// # Architectural Position
//
// Domain is at the centre of the hexagon. It may only import
// the Go standard library. All other packages depend on domain,
// never the reverse.
//
// # Import Rules
//
//   - Can Import: Standard library only
//   - Cannot Import: Any internal/ package, any external dependency
package domain
