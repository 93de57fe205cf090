// Package balance provides the equation input and result view for the TUI.
package balance

import (
	"context"
	"errors"
	"fmt"
	"strconv"
	"strings"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"

	"github.com/custodia-labs/chembalance/internal/adapters/driving/tui/components/input"
	"github.com/custodia-labs/chembalance/internal/adapters/driving/tui/components/status"
	"github.com/custodia-labs/chembalance/internal/adapters/driving/tui/keymap"
	"github.com/custodia-labs/chembalance/internal/adapters/driving/tui/messages"
	"github.com/custodia-labs/chembalance/internal/adapters/driving/tui/styles"
	"github.com/custodia-labs/chembalance/internal/core/domain"
	"github.com/custodia-labs/chembalance/internal/core/ports/driving"
)

// ErrNoBalanceService is reported when the view has no service to call.
var ErrNoBalanceService = errors.New("balance service not available")

// View is the equation input with the last result underneath.
type View struct {
	styles    *styles.Styles
	keymap    *keymap.KeyMap
	input     *input.EquationInput
	statusbar *status.Bar

	service driving.BalanceService
	ctx     context.Context

	result *domain.BalancedEquation
	err    error

	width  int
	height int
	ready  bool
}

// NewView creates a balance view.
func NewView(s *styles.Styles, km *keymap.KeyMap, service driving.BalanceService) *View {
	if s == nil {
		s = styles.DefaultStyles()
	}
	if km == nil {
		km = keymap.DefaultKeyMap()
	}

	return &View{
		styles:    s,
		keymap:    km,
		input:     input.NewEquationInput(s),
		statusbar: status.NewBar(s, km.BalanceHelp()...),
		service:   service,
		ctx:       context.Background(),
		width:     80,
		height:    24,
	}
}

// WithContext sets the context used for balance calls.
func (v *View) WithContext(ctx context.Context) *View {
	v.ctx = ctx
	return v
}

// Init starts the input cursor.
func (v *View) Init() tea.Cmd {
	return v.input.Init()
}

// Update handles messages for the balance view.
func (v *View) Update(msg tea.Msg) (*View, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		v.SetDimensions(msg.Width, msg.Height)
		return v, nil

	case tea.KeyMsg:
		return v.handleKey(msg)

	case messages.BalanceCompleted:
		v.handleCompleted(msg)
		return v, nil

	case messages.ErrorOccurred:
		v.setError(msg.Err)
		return v, nil
	}

	var cmd tea.Cmd
	v.input, cmd = v.input.Update(msg)
	return v, cmd
}

func (v *View) handleKey(msg tea.KeyMsg) (*View, tea.Cmd) {
	switch {
	case keymap.Matches(msg.String(), v.keymap.Back):
		return v, func() tea.Msg {
			return messages.ViewChanged{View: messages.ViewMenu}
		}

	case keymap.Matches(msg.String(), v.keymap.Balance):
		equation := strings.TrimSpace(v.input.Value())
		if equation == "" {
			return v, nil
		}
		v.statusbar.SetState(status.StateBalancing)
		v.statusbar.SetMessage("")
		return v, v.balance(equation)
	}

	var cmd tea.Cmd
	v.input, cmd = v.input.Update(msg)
	return v, cmd
}

// balance runs the service off the update loop.
func (v *View) balance(equation string) tea.Cmd {
	service, ctx := v.service, v.ctx
	return func() tea.Msg {
		if service == nil {
			return messages.ErrorOccurred{Err: ErrNoBalanceService}
		}
		result, err := service.Balance(ctx, equation)
		return messages.BalanceCompleted{Equation: equation, Result: result, Err: err}
	}
}

func (v *View) handleCompleted(msg messages.BalanceCompleted) {
	if msg.Err != nil {
		v.setError(msg.Err)
		return
	}

	v.err = nil
	v.result = msg.Result
	v.statusbar.SetState(status.StateBalanced)
	v.statusbar.SetMessage("")
}

func (v *View) setError(err error) {
	v.err = err
	v.result = nil
	v.statusbar.SetState(status.StateError)
	v.statusbar.SetMessage(domain.ErrorCode(err))
}

// View renders the balance view.
func (v *View) View() string {
	if !v.ready {
		return "Initialising..."
	}

	sections := []string{
		v.styles.Title.Render("Balance"),
		v.styles.Subtitle.Render("Separate compounds with '+' and sides with '=' or '->'"),
		"",
		v.input.View(),
		"",
	}

	switch {
	case v.err != nil:
		sections = append(sections, v.styles.Error.Render("Error: "+v.err.Error()), "")
	case v.result != nil:
		sections = append(sections, v.renderResult()...)
	}

	sections = append(sections, v.statusbar.View())
	return lipgloss.JoinVertical(lipgloss.Left, sections...)
}

func (v *View) renderResult() []string {
	r := v.result
	lines := []string{
		v.styles.Result.Render(v.renderTerms(r.Reactants) + " = " + v.renderTerms(r.Products)),
		v.styles.Muted.Render("Coefficients: " + joinInts(r.Coefficients())),
	}
	if r.Ambiguous() {
		lines = append(lines, v.styles.Warning.Render(fmt.Sprintf(
			"Note: %d independent balancings exist; this is one of them.", r.Nullity)))
	}
	return append(lines, "")
}

func (v *View) renderTerms(terms []domain.Term) string {
	parts := make([]string, len(terms))
	for i, t := range terms {
		parts[i] = v.styles.Coefficient.Render(strconv.FormatInt(t.Coefficient, 10)) + " " +
			v.styles.Normal.Render(t.Compound.Display)
	}
	return strings.Join(parts, " + ")
}

func joinInts(values []int64) string {
	parts := make([]string, len(values))
	for i, n := range values {
		parts[i] = strconv.FormatInt(n, 10)
	}
	return strings.Join(parts, ", ")
}

// SetDimensions sets the view dimensions.
func (v *View) SetDimensions(width, height int) {
	v.width = width
	v.height = height
	v.ready = true
	v.input.SetWidth(width)
	v.statusbar.SetWidth(width)
}

// SetEquation fills the input, e.g. when re-balancing a history entry.
func (v *View) SetEquation(equation string) {
	v.input.SetValue(equation)
}

// SetMaxInputLength bounds the equation input.
func (v *View) SetMaxInputLength(n int) {
	v.input.SetCharLimit(n)
}

// Equation returns the current input text.
func (v *View) Equation() string {
	return v.input.Value()
}

// Result returns the last successful balance.
func (v *View) Result() *domain.BalancedEquation {
	return v.result
}

// Err returns the last error.
func (v *View) Err() error {
	return v.err
}

// Ready returns whether the view has dimensions.
func (v *View) Ready() bool {
	return v.ready
}

// Reset clears input, result and error and focuses the input.
func (v *View) Reset() {
	v.input.Reset()
	v.input.Focus()
	v.result = nil
	v.err = nil
	v.statusbar.Clear()
}
