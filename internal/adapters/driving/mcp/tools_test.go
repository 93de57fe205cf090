package mcp

import (
	"context"
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/custodia-labs/chembalance/internal/core/domain"
)

func TestServer_handleBalance(t *testing.T) {
	ctx := context.Background()

	t.Run("returns balanced equation", func(t *testing.T) {
		mock := &mockBalanceService{result: waterResult()}
		server, err := NewServer(&Ports{Balance: mock})
		require.NoError(t, err)

		_, output, err := server.handleBalance(ctx, nil, BalanceInput{Equation: "H2 + O2 -> H2O"})

		require.NoError(t, err)
		assert.Equal(t, "H2 + O2 -> H2O", mock.lastInput)
		assert.Equal(t, "H2 + O2 = H2O", output.Original)
		assert.Equal(t, "2 H2 + 1 O2 = 2 H2O", output.Balanced)
		assert.Equal(t, []int64{2, 1, 2}, output.Coefficients)
		assert.Equal(t, 1, output.Nullity)
	})

	t.Run("prefixes error code", func(t *testing.T) {
		mock := &mockBalanceService{err: &domain.SingularSystemError{Elements: 2, Compounds: 2}}
		server, err := NewServer(&Ports{Balance: mock})
		require.NoError(t, err)

		_, _, err = server.handleBalance(ctx, nil, BalanceInput{Equation: "H2 = O2"})

		require.Error(t, err)
		assert.True(t, errors.Is(err, domain.ErrSingularSystem))
		assert.Contains(t, err.Error(), "singular_system: ")
	})
}

func TestServer_handleExplain(t *testing.T) {
	ctx := context.Background()

	t.Run("returns matrix and basis", func(t *testing.T) {
		server, err := NewServer(&Ports{Balance: &mockBalanceService{explanation: waterExplanation()}})
		require.NoError(t, err)

		_, output, err := server.handleExplain(ctx, nil, ExplainInput{Equation: "H2 + O2 = H2O"})

		require.NoError(t, err)
		assert.Equal(t, []string{"H", "O"}, output.Elements)
		assert.Equal(t, []string{"H2", "O2", "H2O"}, output.Compounds)
		assert.Equal(t, [][]int64{{2, 0, -2}, {0, 2, -1}}, output.Matrix)
		assert.Equal(t, 2, output.Rank)
		assert.Equal(t, 1, output.Nullity)
		assert.Equal(t, [][]string{{"1", "1/2", "1"}}, output.Basis)
	})

	t.Run("returns error", func(t *testing.T) {
		server, err := NewServer(&Ports{Balance: &mockBalanceService{err: &domain.ParseError{Position: -1, Reason: "empty equation"}}})
		require.NoError(t, err)

		_, _, err = server.handleExplain(ctx, nil, ExplainInput{})

		require.Error(t, err)
		assert.Contains(t, err.Error(), "parse_error")
	})
}

func TestServer_handleHistory(t *testing.T) {
	ctx := context.Background()

	t.Run("returns all entries", func(t *testing.T) {
		server, err := NewServer(&Ports{
			Balance: &mockBalanceService{},
			History: &mockHistoryService{entries: sampleHistory()},
		})
		require.NoError(t, err)

		_, output, err := server.handleHistory(ctx, nil, HistoryInput{})

		require.NoError(t, err)
		assert.Equal(t, 3, output.Count)
		assert.Equal(t, "id-1", output.Entries[0].ID)
		assert.Equal(t, "4 Fe + 3 O2 = 2 Fe2O3", output.Entries[1].Balanced)
	})

	t.Run("limit keeps most recent", func(t *testing.T) {
		server, err := NewServer(&Ports{
			Balance: &mockBalanceService{},
			History: &mockHistoryService{entries: sampleHistory()},
		})
		require.NoError(t, err)

		_, output, err := server.handleHistory(ctx, nil, HistoryInput{Limit: 2})

		require.NoError(t, err)
		assert.Equal(t, 2, output.Count)
		assert.Equal(t, "id-2", output.Entries[0].ID)
		assert.Equal(t, "id-3", output.Entries[1].ID)
	})

	t.Run("returns error on failure", func(t *testing.T) {
		server, err := NewServer(&Ports{
			Balance: &mockBalanceService{},
			History: &mockHistoryService{err: errors.New("store closed")},
		})
		require.NoError(t, err)

		_, _, err = server.handleHistory(ctx, nil, HistoryInput{})

		assert.EqualError(t, err, "store closed")
	})
}
