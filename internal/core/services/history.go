package services

import (
	"context"
	"errors"
	"fmt"

	"github.com/custodia-labs/chembalance/internal/core/domain"
	"github.com/custodia-labs/chembalance/internal/core/ports/driven"
	"github.com/custodia-labs/chembalance/internal/core/ports/driving"
	"github.com/custodia-labs/chembalance/internal/logger"
)

// Ensure HistoryService implements the interface.
var _ driving.HistoryService = (*HistoryService)(nil)

// ErrNoHistoryStore is returned when the service has no backing store.
var ErrNoHistoryStore = errors.New("history store not configured")

// HistoryService exposes the balance history.
type HistoryService struct {
	store driven.HistoryStore
}

// NewHistoryService creates a new history service.
func NewHistoryService(store driven.HistoryStore) *HistoryService {
	return &HistoryService{store: store}
}

// List returns every recorded balance, oldest first.
func (s *HistoryService) List(ctx context.Context) ([]domain.HistoryEntry, error) {
	if s.store == nil {
		return nil, ErrNoHistoryStore
	}
	entries, err := s.store.List(ctx)
	if err != nil {
		return nil, fmt.Errorf("history: %w", err)
	}
	logger.Debug("History has %d entries", len(entries))
	return entries, nil
}

// Clear removes all history entries.
func (s *HistoryService) Clear(ctx context.Context) error {
	if s.store == nil {
		return ErrNoHistoryStore
	}
	if err := s.store.Clear(ctx); err != nil {
		return fmt.Errorf("history: %w", err)
	}
	logger.Info("History cleared")
	return nil
}
