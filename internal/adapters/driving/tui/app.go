package tui

import (
	"context"
	"fmt"

	tea "github.com/charmbracelet/bubbletea"

	"github.com/custodia-labs/chembalance/internal/adapters/driving/tui/keymap"
	"github.com/custodia-labs/chembalance/internal/adapters/driving/tui/messages"
	"github.com/custodia-labs/chembalance/internal/adapters/driving/tui/styles"
	"github.com/custodia-labs/chembalance/internal/adapters/driving/tui/views/balance"
	"github.com/custodia-labs/chembalance/internal/adapters/driving/tui/views/history"
	"github.com/custodia-labs/chembalance/internal/adapters/driving/tui/views/menu"
	"github.com/custodia-labs/chembalance/internal/logger"
)

// App is the main TUI application following the Elm architecture.
// It implements tea.Model for use with Bubbletea.
type App struct {
	ports  *Ports
	ctx    context.Context
	styles *styles.Styles

	menuView    *menu.View
	balanceView *balance.View

	// historyView is nil when no history service is wired.
	historyView *history.View

	currentView messages.ViewType
	err         error

	width  int
	height int
	ready  bool
}

// Ensure App implements tea.Model.
var _ tea.Model = (*App)(nil)

// NewApp creates a new TUI application with the given ports.
func NewApp(ports *Ports) (*App, error) {
	if err := ports.Validate(); err != nil {
		return nil, fmt.Errorf("creating app: %w", err)
	}

	s := styles.DefaultStyles()
	km := keymap.DefaultKeyMap()

	a := &App{
		ports:       ports,
		ctx:         context.Background(),
		styles:      s,
		menuView:    menu.NewView(s, ports.History != nil),
		balanceView: balance.NewView(s, km, ports.Balance),
		currentView: messages.ViewMenu,
	}
	if ports.History != nil {
		a.historyView = history.NewView(s, km, ports.History)
	}

	if ports.Settings != nil {
		settings, err := ports.Settings.Get()
		if err != nil {
			logger.Debug("TUI: using default input limit: %v", err)
		} else {
			a.balanceView.SetMaxInputLength(settings.Balance.MaxInputLength)
		}
	}

	return a, nil
}

// WithContext sets the context used for service calls.
func (a *App) WithContext(ctx context.Context) *App {
	a.ctx = ctx
	a.balanceView.WithContext(ctx)
	if a.historyView != nil {
		a.historyView.WithContext(ctx)
	}
	return a
}

// Init implements tea.Model.
func (a *App) Init() tea.Cmd {
	return tea.Batch(
		tea.EnterAltScreen,
		tea.SetWindowTitle("chembalance"),
	)
}

// Update implements tea.Model.
//
//nolint:gocyclo // central message router
func (a *App) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	var cmd tea.Cmd

	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		a.SetDimensions(msg.Width, msg.Height)
		return a, nil

	case tea.KeyMsg:
		if msg.String() == "ctrl+c" {
			return a, tea.Quit
		}
		return a, a.routeKey(msg)

	case messages.ViewChanged:
		return a, a.switchTo(msg.View)

	case messages.BalanceCompleted:
		a.err = msg.Err
		a.balanceView, cmd = a.balanceView.Update(msg)
		return a, cmd

	case messages.HistoryLoaded, messages.HistoryCleared:
		if a.historyView != nil {
			a.historyView, cmd = a.historyView.Update(msg)
			a.err = a.historyView.Err()
		}
		return a, cmd

	case messages.HistorySelected:
		a.balanceView.Reset()
		a.balanceView.SetEquation(msg.Entry.Original)
		a.currentView = messages.ViewBalance
		return a, a.balanceView.Init()

	case messages.ErrorOccurred:
		a.err = msg.Err
		switch a.currentView {
		case messages.ViewBalance:
			a.balanceView, cmd = a.balanceView.Update(msg)
		case messages.ViewHistory:
			a.historyView, cmd = a.historyView.Update(msg)
		case messages.ViewMenu, messages.ViewHelp:
		}
		return a, cmd

	case messages.Quit:
		return a, tea.Quit
	}

	// Cursor blink and other ticks.
	if a.currentView == messages.ViewBalance {
		a.balanceView, cmd = a.balanceView.Update(msg)
	}
	return a, cmd
}

func (a *App) routeKey(msg tea.KeyMsg) tea.Cmd {
	var cmd tea.Cmd
	switch a.currentView {
	case messages.ViewMenu:
		a.menuView, cmd = a.menuView.Update(msg)
	case messages.ViewBalance:
		a.balanceView, cmd = a.balanceView.Update(msg)
	case messages.ViewHistory:
		a.historyView, cmd = a.historyView.Update(msg)
	case messages.ViewHelp:
		if msg.Type == tea.KeyEsc {
			a.currentView = messages.ViewMenu
		}
	}
	return cmd
}

func (a *App) switchTo(view messages.ViewType) tea.Cmd {
	switch view {
	case messages.ViewBalance:
		a.currentView = view
		a.balanceView.Reset()
		return a.balanceView.Init()
	case messages.ViewHistory:
		if a.historyView == nil {
			return nil
		}
		a.currentView = view
		return a.historyView.Init()
	case messages.ViewMenu, messages.ViewHelp:
		a.currentView = view
	}
	return nil
}

// View implements tea.Model.
func (a *App) View() string {
	if !a.ready {
		return "Initialising..."
	}

	switch a.currentView {
	case messages.ViewBalance:
		return a.balanceView.View()
	case messages.ViewHistory:
		return a.historyView.View()
	case messages.ViewHelp:
		return a.viewHelp()
	case messages.ViewMenu:
	}
	return a.menuView.View()
}

func (a *App) viewHelp() string {
	return a.styles.Title.Render("Help") + `

Navigation:
  esc         Back to menu
  ctrl+c      Quit

Menu:
  j/k, ↑/↓    Navigate options
  enter       Select option
  q           Quit

Balance:
  (type)      Enter an equation, e.g. Fe + O2 -> Fe2O3
  enter       Balance

History:
  j/k, ↑/↓    Navigate entries
  enter       Re-balance the selected equation
  c           Clear history
  r           Refresh

[esc] back to menu`
}

// Run starts the TUI and blocks until it exits.
func (a *App) Run() error {
	p := tea.NewProgram(a, tea.WithAltScreen(), tea.WithContext(a.ctx))
	_, err := p.Run()
	return err
}

// CurrentView returns the current view type.
func (a *App) CurrentView() messages.ViewType {
	return a.currentView
}

// Err returns the last error that occurred.
func (a *App) Err() error {
	return a.err
}

// Ready returns whether the app has received its dimensions.
func (a *App) Ready() bool {
	return a.ready
}

// SetDimensions sets the terminal dimensions on the app and its views.
func (a *App) SetDimensions(width, height int) {
	a.width = width
	a.height = height
	a.ready = true
	a.menuView.SetDimensions(width, height)
	a.balanceView.SetDimensions(width, height)
	if a.historyView != nil {
		a.historyView.SetDimensions(width, height)
	}
}
