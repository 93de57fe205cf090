package driving

import (
	"context"

	"github.com/custodia-labs/chembalance/internal/core/domain"
)

// BalanceService balances chemical equations for external actors.
type BalanceService interface {
	// Balance returns the balanced form of equation and records it in
	// the history.
	Balance(ctx context.Context, equation string) (*domain.BalancedEquation, error)

	// Explain returns the stoichiometric matrix, its reduced form and the
	// null-space basis without normalising or recording anything.
	Explain(ctx context.Context, equation string) (*domain.Explanation, error)
}
