package balance

import (
	"context"
	"errors"
	"testing"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/custodia-labs/chembalance/internal/adapters/driving/tui/messages"
	"github.com/custodia-labs/chembalance/internal/adapters/driving/tui/styles"
	"github.com/custodia-labs/chembalance/internal/core/domain"
)

// MockBalanceService implements driving.BalanceService for testing.
type MockBalanceService struct {
	BalanceFunc func(ctx context.Context, equation string) (*domain.BalancedEquation, error)
	calls       []string
}

func (m *MockBalanceService) Balance(ctx context.Context, equation string) (*domain.BalancedEquation, error) {
	m.calls = append(m.calls, equation)
	if m.BalanceFunc != nil {
		return m.BalanceFunc(ctx, equation)
	}
	return water(), nil
}

func (m *MockBalanceService) Explain(context.Context, string) (*domain.Explanation, error) {
	return nil, errors.New("not implemented")
}

func water() *domain.BalancedEquation {
	return &domain.BalancedEquation{
		Original: "H2 + O2 = H2O",
		Reactants: []domain.Term{
			{Coefficient: 2, Compound: domain.Compound{Display: "H2"}},
			{Coefficient: 1, Compound: domain.Compound{Display: "O2"}},
		},
		Products: []domain.Term{
			{Coefficient: 2, Compound: domain.Compound{Display: "H2O"}},
		},
		Text:    "2 H2 + 1 O2 = 2 H2O",
		Nullity: 1,
	}
}

func typeText(v *View, text string) {
	for _, r := range text {
		v.Update(tea.KeyMsg{Type: tea.KeyRunes, Runes: []rune{r}})
	}
}

func newReadyView(service *MockBalanceService) *View {
	v := NewView(styles.DefaultStyles(), nil, service)
	v.SetDimensions(120, 30)
	return v
}

func TestNewView(t *testing.T) {
	v := NewView(nil, nil, nil)

	require.NotNil(t, v)
	assert.NotNil(t, v.styles)
	assert.NotNil(t, v.keymap)
	assert.False(t, v.Ready())
	assert.Empty(t, v.Equation())
	assert.NotNil(t, v.Init())
	assert.Equal(t, "Initialising...", v.View())
}

func TestView_WithContext(t *testing.T) {
	v := NewView(nil, nil, nil)
	type contextKey string
	ctx := context.WithValue(context.Background(), contextKey("k"), "v")

	assert.Same(t, v, v.WithContext(ctx))
	assert.Equal(t, ctx, v.ctx)
}

func TestView_Update_WindowSize(t *testing.T) {
	v := NewView(nil, nil, nil)

	_, cmd := v.Update(tea.WindowSizeMsg{Width: 100, Height: 40})

	assert.Nil(t, cmd)
	assert.True(t, v.Ready())
	assert.Equal(t, 100, v.width)
}

func TestView_Balance_Success(t *testing.T) {
	service := &MockBalanceService{}
	v := newReadyView(service)
	typeText(v, "H2 + O2 -> H2O")

	_, cmd := v.Update(tea.KeyMsg{Type: tea.KeyEnter})
	require.NotNil(t, cmd)
	msg := cmd()

	completed, ok := msg.(messages.BalanceCompleted)
	require.True(t, ok)
	assert.Equal(t, []string{"H2 + O2 -> H2O"}, service.calls)
	assert.Equal(t, "H2 + O2 -> H2O", completed.Equation)

	v.Update(completed)

	require.NotNil(t, v.Result())
	assert.NoError(t, v.Err())
	view := v.View()
	assert.Contains(t, view, "2 H2 + 1 O2 = 2 H2O")
	assert.Contains(t, view, "Coefficients: 2, 1, 2")
	assert.NotContains(t, view, "independent balancings")
}

func TestView_Balance_Ambiguous(t *testing.T) {
	service := &MockBalanceService{
		BalanceFunc: func(context.Context, string) (*domain.BalancedEquation, error) {
			r := water()
			r.Nullity = 2
			return r, nil
		},
	}
	v := newReadyView(service)
	typeText(v, "x")

	_, cmd := v.Update(tea.KeyMsg{Type: tea.KeyEnter})
	v.Update(cmd())

	assert.Contains(t, v.View(), "2 independent balancings")
}

func TestView_Balance_Error(t *testing.T) {
	parseErr := &domain.ParseError{Input: "H2 + O2", Position: -1, Reason: "expected exactly one '=' or '->', found 0"}
	service := &MockBalanceService{
		BalanceFunc: func(context.Context, string) (*domain.BalancedEquation, error) {
			return nil, parseErr
		},
	}
	v := newReadyView(service)
	typeText(v, "H2 + O2")

	_, cmd := v.Update(tea.KeyMsg{Type: tea.KeyEnter})
	v.Update(cmd())

	assert.ErrorIs(t, v.Err(), domain.ErrParse)
	assert.Nil(t, v.Result())
	view := v.View()
	assert.Contains(t, view, "Error: ")
	assert.Contains(t, view, domain.CodeParse)
}

func TestView_Balance_EmptyInputIgnored(t *testing.T) {
	service := &MockBalanceService{}
	v := newReadyView(service)
	typeText(v, "   ")

	_, cmd := v.Update(tea.KeyMsg{Type: tea.KeyEnter})

	assert.Nil(t, cmd)
	assert.Empty(t, service.calls)
}

func TestView_Balance_NoService(t *testing.T) {
	v := NewView(nil, nil, nil)
	v.SetDimensions(80, 24)
	v.SetEquation("H2 = H2")

	_, cmd := v.Update(tea.KeyMsg{Type: tea.KeyEnter})
	require.NotNil(t, cmd)
	msg := cmd()

	assert.Equal(t, messages.ErrorOccurred{Err: ErrNoBalanceService}, msg)
	v.Update(msg)
	assert.ErrorIs(t, v.Err(), ErrNoBalanceService)
}

func TestView_Escape(t *testing.T) {
	v := newReadyView(&MockBalanceService{})

	_, cmd := v.Update(tea.KeyMsg{Type: tea.KeyEsc})

	require.NotNil(t, cmd)
	assert.Equal(t, messages.ViewChanged{View: messages.ViewMenu}, cmd())
}

func TestView_SuccessClearsError(t *testing.T) {
	v := newReadyView(&MockBalanceService{})
	v.Update(messages.ErrorOccurred{Err: errors.New("boom")})
	require.Error(t, v.Err())

	v.Update(messages.BalanceCompleted{Result: water()})

	assert.NoError(t, v.Err())
	assert.NotNil(t, v.Result())
}

func TestView_SetEquationAndReset(t *testing.T) {
	v := newReadyView(&MockBalanceService{})
	v.SetEquation("C + O2 = CO2")
	v.Update(messages.BalanceCompleted{Result: water()})

	assert.Equal(t, "C + O2 = CO2", v.Equation())

	v.Reset()

	assert.Empty(t, v.Equation())
	assert.Nil(t, v.Result())
	assert.NoError(t, v.Err())
}

func TestView_SetMaxInputLength(t *testing.T) {
	v := newReadyView(&MockBalanceService{})

	v.SetMaxInputLength(4)
	v.SetEquation("H2 + O2 = H2O")

	assert.Equal(t, "H2 +", v.Equation())
}

func TestJoinInts(t *testing.T) {
	assert.Equal(t, "4, 3, 2", joinInts([]int64{4, 3, 2}))
	assert.Empty(t, joinInts(nil))
}
