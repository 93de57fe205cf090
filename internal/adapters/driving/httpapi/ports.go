package httpapi

import "github.com/custodia-labs/chembalance/internal/core/ports/driving"

// Ports aggregates the driving ports used by the HTTP server.
type Ports struct {
	// Balance balances equations. Required.
	Balance driving.BalanceService

	// History backs the /history routes. Without it they answer 404.
	History driving.HistoryService
}

// Validate ensures all required ports are set.
func (p *Ports) Validate() error {
	if p.Balance == nil {
		return ErrMissingBalanceService
	}
	return nil
}
