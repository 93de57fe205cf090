// Package input provides text input components for the TUI.
package input

import (
	"github.com/charmbracelet/bubbles/textinput"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"

	"github.com/custodia-labs/chembalance/internal/adapters/driving/tui/styles"
)

// DefaultCharLimit matches the default balance.max_input_length.
const DefaultCharLimit = 1024

// EquationInput wraps a bubbles textinput for entering equations.
type EquationInput struct {
	textinput textinput.Model
	styles    *styles.Styles
	width     int
}

// NewEquationInput creates a focused equation input.
func NewEquationInput(s *styles.Styles) *EquationInput {
	if s == nil {
		s = styles.DefaultStyles()
	}

	ti := textinput.New()
	ti.Placeholder = "H2 + O2 -> H2O"
	ti.Focus()
	ti.CharLimit = DefaultCharLimit
	ti.Width = 50

	return &EquationInput{
		textinput: ti,
		styles:    s,
		width:     50,
	}
}

// Init starts the cursor blinking.
func (e *EquationInput) Init() tea.Cmd {
	return textinput.Blink
}

// Update handles input messages.
func (e *EquationInput) Update(msg tea.Msg) (*EquationInput, tea.Cmd) {
	var cmd tea.Cmd
	e.textinput, cmd = e.textinput.Update(msg)
	return e, cmd
}

// View renders the labelled input.
func (e *EquationInput) View() string {
	label := e.styles.Title.Render("Equation: ")
	field := e.styles.InputField.Render(e.textinput.View())
	//nolint:misspell // lipgloss.Center is the library constant
	return lipgloss.JoinHorizontal(lipgloss.Center, label, field)
}

// Value returns the current input value.
func (e *EquationInput) Value() string {
	return e.textinput.Value()
}

// SetValue replaces the input value and moves the cursor to the end.
func (e *EquationInput) SetValue(value string) {
	e.textinput.SetValue(value)
	e.textinput.CursorEnd()
}

// SetCharLimit bounds the input length; values <= 0 keep the default.
func (e *EquationInput) SetCharLimit(limit int) {
	if limit <= 0 {
		limit = DefaultCharLimit
	}
	e.textinput.CharLimit = limit
}

// Focus sets focus on the input.
func (e *EquationInput) Focus() tea.Cmd {
	return e.textinput.Focus()
}

// Blur removes focus from the input.
func (e *EquationInput) Blur() {
	e.textinput.Blur()
}

// Focused returns whether the input is focused.
func (e *EquationInput) Focused() bool {
	return e.textinput.Focused()
}

// SetWidth sets the width of the input, leaving room for the label.
func (e *EquationInput) SetWidth(width int) {
	e.width = width
	e.textinput.Width = max(width-16, 20)
}

// Width returns the current width.
func (e *EquationInput) Width() int {
	return e.width
}

// Reset clears the input.
func (e *EquationInput) Reset() {
	e.textinput.Reset()
}
