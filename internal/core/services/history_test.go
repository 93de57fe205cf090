package services

import (
	"context"
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/custodia-labs/chembalance/internal/adapters/driven/storage/memory"
	"github.com/custodia-labs/chembalance/internal/core/domain"
)

func TestHistoryService_ListAndClear(t *testing.T) {
	ctx := context.Background()
	store := memory.NewHistoryStore()
	require.NoError(t, store.Append(ctx, domain.HistoryEntry{ID: "1", Original: "a", Balanced: "b"}))
	svc := NewHistoryService(store)

	entries, err := svc.List(ctx)
	require.NoError(t, err)
	assert.Len(t, entries, 1)

	require.NoError(t, svc.Clear(ctx))

	entries, err = svc.List(ctx)
	require.NoError(t, err)
	assert.Empty(t, entries)
}

func TestHistoryService_NilStore(t *testing.T) {
	svc := NewHistoryService(nil)

	_, err := svc.List(context.Background())
	assert.ErrorIs(t, err, ErrNoHistoryStore)
	assert.ErrorIs(t, svc.Clear(context.Background()), ErrNoHistoryStore)
}

func TestHistoryService_WrapsStoreErrors(t *testing.T) {
	boom := errors.New("boom")
	svc := NewHistoryService(&failingHistoryStore{err: boom})

	_, err := svc.List(context.Background())
	assert.ErrorIs(t, err, boom)
	assert.Contains(t, err.Error(), "history:")

	assert.ErrorIs(t, svc.Clear(context.Background()), boom)
}
