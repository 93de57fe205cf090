package input

import (
	"testing"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/custodia-labs/chembalance/internal/adapters/driving/tui/styles"
)

func TestNewEquationInput(t *testing.T) {
	in := NewEquationInput(styles.DefaultStyles())

	require.NotNil(t, in)
	assert.True(t, in.Focused())
	assert.Empty(t, in.Value())
	assert.Equal(t, 50, in.Width())
}

func TestNewEquationInput_NilStyles(t *testing.T) {
	in := NewEquationInput(nil)

	require.NotNil(t, in)
	assert.NotNil(t, in.styles)
}

func TestEquationInput_Init(t *testing.T) {
	assert.NotNil(t, NewEquationInput(nil).Init())
}

func TestEquationInput_Typing(t *testing.T) {
	in := NewEquationInput(nil)

	for _, r := range "H2O" {
		in, _ = in.Update(tea.KeyMsg{Type: tea.KeyRunes, Runes: []rune{r}})
	}

	assert.Equal(t, "H2O", in.Value())
}

func TestEquationInput_SetValueAndReset(t *testing.T) {
	in := NewEquationInput(nil)

	in.SetValue("C + O2 = CO2")
	assert.Equal(t, "C + O2 = CO2", in.Value())

	in.Reset()
	assert.Empty(t, in.Value())
}

func TestEquationInput_CharLimit(t *testing.T) {
	in := NewEquationInput(nil)

	in.SetCharLimit(3)
	in.SetValue("H2 + O2")
	assert.Equal(t, "H2 ", in.Value())

	in.SetCharLimit(0)
	in.SetValue("H2 + O2")
	assert.Equal(t, "H2 + O2", in.Value())
}

func TestEquationInput_FocusBlur(t *testing.T) {
	in := NewEquationInput(nil)

	in.Blur()
	assert.False(t, in.Focused())

	in.Focus()
	assert.True(t, in.Focused())
}

func TestEquationInput_SetWidth(t *testing.T) {
	in := NewEquationInput(nil)

	in.SetWidth(100)
	assert.Equal(t, 100, in.Width())
	assert.Equal(t, 84, in.textinput.Width)

	in.SetWidth(10)
	assert.Equal(t, 20, in.textinput.Width)
}

func TestEquationInput_View(t *testing.T) {
	in := NewEquationInput(nil)

	assert.Contains(t, in.View(), "Equation:")
}
