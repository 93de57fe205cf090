package mcp

import (
	"github.com/custodia-labs/chembalance/internal/core/ports/driving"
)

// Ports aggregates all driving port interfaces required by the MCP server.
// This provides a single injection point for dependency injection.
type Ports struct {
	// Balance balances and explains equations.
	Balance driving.BalanceService

	// History exposes past balances. Optional.
	History driving.HistoryService
}

// Validate ensures all required ports are set.
func (p *Ports) Validate() error {
	if p.Balance == nil {
		return ErrMissingBalanceService
	}
	return nil
}
