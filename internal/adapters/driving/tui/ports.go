// Package tui provides an interactive terminal user interface for chembalance.
// It implements a driving adapter following hexagonal architecture principles.
package tui

import (
	"fmt"

	"github.com/custodia-labs/chembalance/internal/core/ports/driving"
)

// Ports aggregates the driving ports used by the TUI.
type Ports struct {
	// Balance balances equations. Required.
	Balance driving.BalanceService

	// History lists and clears past balances. Optional; the History menu
	// entry is hidden without it.
	History driving.HistoryService

	// Settings supplies input limits. Optional.
	Settings driving.SettingsService
}

// NewPorts creates a Ports aggregate with the required balance service.
func NewPorts(balance driving.BalanceService) *Ports {
	return &Ports{Balance: balance}
}

// Validate ensures all required ports are set.
func (p *Ports) Validate() error {
	if p == nil {
		return fmt.Errorf("%w: nil ports", ErrInvalidPorts)
	}
	if p.Balance == nil {
		return ErrMissingBalanceService
	}
	return nil
}
