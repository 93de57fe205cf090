package driving

import (
	"context"

	"github.com/custodia-labs/chembalance/internal/core/domain"
)

// HistoryService exposes the balance history.
type HistoryService interface {
	// List returns every recorded balance, oldest first.
	List(ctx context.Context) ([]domain.HistoryEntry, error)

	// Clear removes all history entries.
	Clear(ctx context.Context) error
}
