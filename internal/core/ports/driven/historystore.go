package driven

import (
	"context"

	"github.com/custodia-labs/chembalance/internal/core/domain"
)

// HistoryStore persists successfully balanced equations.
// Entries are returned in insertion order.
type HistoryStore interface {
	// Append records an entry. Entries are never modified after Append.
	Append(ctx context.Context, entry domain.HistoryEntry) error

	// List returns all entries, oldest first.
	List(ctx context.Context) ([]domain.HistoryEntry, error)

	// Clear removes every entry.
	Clear(ctx context.Context) error

	// Count returns the number of stored entries.
	Count(ctx context.Context) (int, error)
}
