// Package history provides the balance history view for the TUI.
package history

import (
	"context"
	"errors"
	"fmt"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"

	"github.com/custodia-labs/chembalance/internal/adapters/driving/tui/components/list"
	"github.com/custodia-labs/chembalance/internal/adapters/driving/tui/components/status"
	"github.com/custodia-labs/chembalance/internal/adapters/driving/tui/keymap"
	"github.com/custodia-labs/chembalance/internal/adapters/driving/tui/messages"
	"github.com/custodia-labs/chembalance/internal/adapters/driving/tui/styles"
	"github.com/custodia-labs/chembalance/internal/core/ports/driving"
)

// ErrNoHistoryService is reported when the view has no service to call.
var ErrNoHistoryService = errors.New("history service not available")

// View lists previously balanced equations.
type View struct {
	styles    *styles.Styles
	keymap    *keymap.KeyMap
	list      *list.HistoryList
	statusbar *status.Bar

	service driving.HistoryService
	ctx     context.Context

	err    error
	width  int
	height int
	ready  bool
}

// NewView creates a history view.
func NewView(s *styles.Styles, km *keymap.KeyMap, service driving.HistoryService) *View {
	if s == nil {
		s = styles.DefaultStyles()
	}
	if km == nil {
		km = keymap.DefaultKeyMap()
	}

	return &View{
		styles:    s,
		keymap:    km,
		list:      list.NewHistoryList(s),
		statusbar: status.NewBar(s, km.HistoryHelp()...),
		service:   service,
		ctx:       context.Background(),
		width:     80,
		height:    24,
	}
}

// WithContext sets the context for service calls.
func (v *View) WithContext(ctx context.Context) *View {
	v.ctx = ctx
	return v
}

// Init loads the history.
func (v *View) Init() tea.Cmd {
	return v.load()
}

// Update handles messages for the history view.
func (v *View) Update(msg tea.Msg) (*View, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		v.SetDimensions(msg.Width, msg.Height)
		return v, nil

	case tea.KeyMsg:
		return v.handleKey(msg)

	case messages.HistoryLoaded:
		if msg.Err != nil {
			v.setError(msg.Err)
			return v, nil
		}
		v.err = nil
		v.list.SetEntries(msg.Entries)
		v.statusbar.SetState(status.StateReady)
		v.statusbar.SetMessage(fmt.Sprintf("%d entries", len(msg.Entries)))
		return v, nil

	case messages.HistoryCleared:
		if msg.Err != nil {
			v.setError(msg.Err)
			return v, nil
		}
		v.err = nil
		v.list.SetEntries(nil)
		v.statusbar.SetState(status.StateReady)
		v.statusbar.SetMessage("History cleared")
		return v, nil

	case messages.ErrorOccurred:
		v.setError(msg.Err)
		return v, nil
	}
	return v, nil
}

func (v *View) handleKey(msg tea.KeyMsg) (*View, tea.Cmd) {
	key := msg.String()
	switch {
	case keymap.Matches(key, v.keymap.Back):
		return v, func() tea.Msg {
			return messages.ViewChanged{View: messages.ViewMenu}
		}
	case keymap.Matches(key, v.keymap.Select):
		entry := v.list.SelectedEntry()
		if entry == nil {
			return v, nil
		}
		selected := *entry
		return v, func() tea.Msg {
			return messages.HistorySelected{Entry: selected}
		}
	case keymap.Matches(key, v.keymap.Clear):
		return v, v.clear()
	case keymap.Matches(key, v.keymap.Refresh):
		return v, v.load()
	}

	v.list, _ = v.list.Update(msg)
	return v, nil
}

func (v *View) load() tea.Cmd {
	service, ctx := v.service, v.ctx
	return func() tea.Msg {
		if service == nil {
			return messages.ErrorOccurred{Err: ErrNoHistoryService}
		}
		entries, err := service.List(ctx)
		return messages.HistoryLoaded{Entries: entries, Err: err}
	}
}

func (v *View) clear() tea.Cmd {
	service, ctx := v.service, v.ctx
	return func() tea.Msg {
		if service == nil {
			return messages.ErrorOccurred{Err: ErrNoHistoryService}
		}
		return messages.HistoryCleared{Err: service.Clear(ctx)}
	}
}

func (v *View) setError(err error) {
	v.err = err
	v.statusbar.SetState(status.StateError)
	v.statusbar.SetMessage(err.Error())
}

// View renders the history view.
func (v *View) View() string {
	if !v.ready {
		return "Initialising..."
	}

	sections := []string{v.styles.Title.Render("History"), ""}
	if v.err != nil {
		sections = append(sections, v.styles.Error.Render("Error: "+v.err.Error()), "")
	}
	sections = append(sections, v.list.View(), "", v.statusbar.View())
	return lipgloss.JoinVertical(lipgloss.Left, sections...)
}

// SetDimensions sets the view dimensions.
func (v *View) SetDimensions(width, height int) {
	v.width = width
	v.height = height
	v.ready = true
	v.list.SetDimensions(width, height-6)
	v.statusbar.SetWidth(width)
}

// Count returns the number of displayed entries.
func (v *View) Count() int {
	return v.list.Count()
}

// Err returns the last error.
func (v *View) Err() error {
	return v.err
}
