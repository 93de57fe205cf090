// Package messages defines Bubbletea message types for the TUI.
// Messages represent events and commands that flow through the Elm architecture.
package messages

import (
	"github.com/custodia-labs/chembalance/internal/core/domain"
)

// BalanceRequested is a command to balance an equation.
type BalanceRequested struct {
	Equation string
}

// BalanceCompleted carries the result of a balance back to the model.
type BalanceCompleted struct {
	Equation string
	Result   *domain.BalancedEquation
	Err      error
}

// HistoryLoaded carries the balance history.
type HistoryLoaded struct {
	Entries []domain.HistoryEntry
	Err     error
}

// HistoryCleared signals the history was cleared.
type HistoryCleared struct {
	Err error
}

// HistorySelected is sent when a history entry is picked for re-balancing.
type HistorySelected struct {
	Entry domain.HistoryEntry
}

// ViewChanged is sent when navigating between views.
type ViewChanged struct {
	View ViewType
}

// ViewType identifies which view is currently active.
type ViewType int

const (
	// ViewMenu is the main navigation menu.
	ViewMenu ViewType = iota
	// ViewBalance is the equation input and result view.
	ViewBalance
	// ViewHistory lists previously balanced equations.
	ViewHistory
	// ViewHelp is the help/keybindings view.
	ViewHelp
)

// String returns the string representation of the view type.
func (v ViewType) String() string {
	switch v {
	case ViewMenu:
		return "menu"
	case ViewBalance:
		return "balance"
	case ViewHistory:
		return "history"
	case ViewHelp:
		return "help"
	default:
		return "unknown"
	}
}

// ErrorOccurred signals that an error happened.
type ErrorOccurred struct {
	Err error
}

// Quit signals the application should exit.
type Quit struct{}
