package services

import (
	"context"
	"fmt"
	"sync"
	"time"

	"github.com/google/uuid"

	"github.com/custodia-labs/chembalance/internal/core/domain"
	"github.com/custodia-labs/chembalance/internal/core/ports/driven"
	"github.com/custodia-labs/chembalance/internal/core/ports/driving"
	"github.com/custodia-labs/chembalance/internal/logger"
	"github.com/custodia-labs/chembalance/internal/stoichiometry"
)

// Ensure BalanceService implements the interface.
var _ driving.BalanceService = (*BalanceService)(nil)

// BalanceService balances equations and records successes in the history.
type BalanceService struct {
	history driven.HistoryStore

	mu       sync.RWMutex
	balancer *stoichiometry.Balancer

	now   func() time.Time
	newID func() string
}

// NewBalanceService creates a balance service using the given limits.
// history may be nil, in which case nothing is recorded.
func NewBalanceService(history driven.HistoryStore, settings domain.BalanceSettings) *BalanceService {
	return &BalanceService{
		history:  history,
		balancer: stoichiometry.New(stoichiometry.WithSettings(settings)),
		now:      func() time.Time { return time.Now().UTC() },
		newID:    uuid.NewString,
	}
}

// Configure replaces the balancing limits. Requests already running keep
// the previous limits.
func (s *BalanceService) Configure(settings domain.BalanceSettings) {
	b := stoichiometry.New(stoichiometry.WithSettings(settings))

	s.mu.Lock()
	s.balancer = b
	s.mu.Unlock()

	logger.Debug("Balance settings updated: policy=%s max_coefficient=%d max_compounds=%d",
		b.Policy(), settings.MaxCoefficient, settings.MaxCompounds)
}

// Balance balances equation, verifies conservation and appends the result
// to the history.
func (s *BalanceService) Balance(ctx context.Context, equation string) (*domain.BalancedEquation, error) {
	if err := ctx.Err(); err != nil {
		return nil, err
	}

	logger.Section("Balance")
	logger.Debug("Equation: %q", equation)

	result, err := s.current().Balance(equation)
	if err != nil {
		logger.Debug("Balance failed (%s): %v", domain.ErrorCode(err), err)
		return nil, err
	}

	if err := stoichiometry.Verify(result); err != nil {
		logger.Error("Verification failed for %q: %v", result.Text, err)
		return nil, fmt.Errorf("verify %q: %w", result.Text, err)
	}

	if result.Ambiguous() {
		logger.Warn("%q has %d independent balancings; returning one of them", result.Original, result.Nullity)
	}
	logger.Debug("Balanced: %s", result.Text)

	if s.history != nil {
		entry := domain.HistoryEntry{
			ID:        s.newID(),
			Original:  result.Original,
			Balanced:  result.Text,
			CreatedAt: s.now(),
		}
		if err := s.history.Append(ctx, entry); err != nil {
			return nil, fmt.Errorf("record history: %w", err)
		}
	}

	return result, nil
}

// Explain returns the intermediate matrices for equation.
func (s *BalanceService) Explain(ctx context.Context, equation string) (*domain.Explanation, error) {
	if err := ctx.Err(); err != nil {
		return nil, err
	}

	logger.Section("Explain")
	exp, err := s.current().Explain(equation)
	if err != nil {
		return nil, err
	}
	logger.Debug("Matrix %dx%d, rank %d, nullity %d",
		exp.Matrix.Rows(), exp.Matrix.Cols(), len(exp.PivotColumns), exp.Nullity())
	return exp, nil
}

func (s *BalanceService) current() *stoichiometry.Balancer {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.balancer
}
