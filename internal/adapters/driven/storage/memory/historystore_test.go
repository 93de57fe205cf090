package memory

import (
	"context"
	"errors"
	"fmt"
	"sync"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/custodia-labs/chembalance/internal/core/domain"
)

func entry(id, original, balanced string) domain.HistoryEntry {
	return domain.HistoryEntry{
		ID:        id,
		Original:  original,
		Balanced:  balanced,
		CreatedAt: time.Date(2024, 1, 1, 0, 0, 0, 0, time.UTC),
	}
}

func TestHistoryStore_AppendAndList(t *testing.T) {
	ctx := context.Background()
	store := NewHistoryStore()

	require.NoError(t, store.Append(ctx, entry("1", "H2 + O2 = H2O", "2 H2 + 1 O2 = 2 H2O")))
	require.NoError(t, store.Append(ctx, entry("2", "Fe + O2 = Fe2O3", "4 Fe + 3 O2 = 2 Fe2O3")))

	list, err := store.List(ctx)
	require.NoError(t, err)
	require.Len(t, list, 2)
	assert.Equal(t, "1", list[0].ID)
	assert.Equal(t, "4 Fe + 3 O2 = 2 Fe2O3", list[1].Balanced)

	count, err := store.Count(ctx)
	require.NoError(t, err)
	assert.Equal(t, 2, count)
}

func TestHistoryStore_ListReturnsCopy(t *testing.T) {
	ctx := context.Background()
	store := NewHistoryStore()
	require.NoError(t, store.Append(ctx, entry("1", "a", "b")))

	list, _ := store.List(ctx)
	list[0].Balanced = "changed"

	again, _ := store.List(ctx)
	assert.Equal(t, "b", again[0].Balanced)
}

func TestHistoryStore_Append_RequiresID(t *testing.T) {
	store := NewHistoryStore()

	err := store.Append(context.Background(), entry("", "a", "b"))

	assert.True(t, errors.Is(err, domain.ErrInvalidInput))
}

func TestHistoryStore_Clear(t *testing.T) {
	ctx := context.Background()
	store := NewHistoryStore()
	require.NoError(t, store.Append(ctx, entry("1", "a", "b")))

	require.NoError(t, store.Clear(ctx))

	list, err := store.List(ctx)
	require.NoError(t, err)
	assert.Empty(t, list)
}

func TestHistoryStore_ConcurrentAppend(t *testing.T) {
	ctx := context.Background()
	store := NewHistoryStore()
	var wg sync.WaitGroup

	for i := 0; i < 100; i++ {
		wg.Add(1)
		go func(n int) {
			defer wg.Done()
			_ = store.Append(ctx, entry(fmt.Sprint(n), "a", "b"))
		}(i)
	}
	wg.Wait()

	count, err := store.Count(ctx)
	require.NoError(t, err)
	assert.Equal(t, 100, count)
}
