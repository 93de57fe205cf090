// Package stoichiometry balances chemical equations with exact arithmetic.
//
// The pipeline runs in five steps, each exposed as its own function:
//
//   - ParseFormula: "Fe2O3" -> {Fe: 2, O: 3}
//   - SplitEquation: "Fe + O2 -> Fe2O3" -> reactant and product compounds
//   - BuildMatrix: compounds -> signed stoichiometric matrix
//   - SolveNullSpace: matrix -> exact rational null-space vector
//   - Normalize + Format: vector -> minimal positive integers -> text
//
// Every intermediate value in the solver is a math/big.Rat. Floating point
// is never used, so a returned vector is always an exact null vector.
//
// The package is pure and holds no state; all functions are safe for
// concurrent use.
package stoichiometry
