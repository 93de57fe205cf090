// Package list provides list display components for the TUI.
package list

import (
	"fmt"
	"strings"

	tea "github.com/charmbracelet/bubbletea"

	"github.com/custodia-labs/chembalance/internal/adapters/driving/tui/styles"
	"github.com/custodia-labs/chembalance/internal/core/domain"
)

// timeLayout formats entry timestamps.
const timeLayout = "2006-01-02 15:04:05"

// HistoryList displays balanced equations, most recent first.
type HistoryList struct {
	entries  []domain.HistoryEntry
	selected int
	styles   *styles.Styles
	width    int
	height   int
}

// NewHistoryList creates an empty history list.
func NewHistoryList(s *styles.Styles) *HistoryList {
	if s == nil {
		s = styles.DefaultStyles()
	}

	return &HistoryList{
		styles: s,
		width:  80,
		height: 10,
	}
}

// Init initialises the list.
func (l *HistoryList) Init() tea.Cmd {
	return nil
}

// Update handles list navigation keys.
func (l *HistoryList) Update(msg tea.Msg) (*HistoryList, tea.Cmd) {
	if msg, ok := msg.(tea.KeyMsg); ok {
		switch msg.String() {
		case "up", "k":
			l.MoveUp()
		case "down", "j":
			l.MoveDown()
		}
	}
	return l, nil
}

// View renders the visible window of entries.
func (l *HistoryList) View() string {
	if len(l.entries) == 0 {
		return l.styles.Muted.Render("No equations balanced yet")
	}

	lines := make([]string, 0, len(l.entries)*2+2)
	lines = append(lines, l.styles.Subtitle.Render(fmt.Sprintf("History (%d)", len(l.entries))), "")

	// Two lines per entry.
	visible := max((l.height-2)/2, 1)
	start := 0
	if l.selected >= visible {
		start = l.selected - visible + 1
	}
	end := min(start+visible, len(l.entries))

	for i := start; i < end; i++ {
		lines = append(lines, l.renderEntry(i, &l.entries[i]))
	}
	return strings.Join(lines, "\n")
}

func (l *HistoryList) renderEntry(index int, e *domain.HistoryEntry) string {
	balanced := truncate(e.Balanced, max(l.width-4, 10))
	var first string
	if index == l.selected {
		first = l.styles.Selected.Render("> " + balanced)
	} else {
		first = l.styles.Normal.Render("  " + balanced)
	}

	second := l.styles.Muted.Render("    " + e.CreatedAt.Local().Format(timeLayout) + "  " + truncate(e.Original, max(l.width-26, 10)))
	return first + "\n" + second
}

func truncate(s string, n int) string {
	if len(s) <= n {
		return s
	}
	return s[:n-3] + "..."
}

// SetEntries replaces the entries, newest first, and resets the selection.
func (l *HistoryList) SetEntries(entries []domain.HistoryEntry) {
	l.entries = make([]domain.HistoryEntry, len(entries))
	for i, e := range entries {
		l.entries[len(entries)-1-i] = e
	}
	l.selected = 0
}

// Entries returns the displayed entries, newest first.
func (l *HistoryList) Entries() []domain.HistoryEntry {
	return l.entries
}

// Selected returns the index of the selected entry.
func (l *HistoryList) Selected() int {
	return l.selected
}

// SelectedEntry returns the selected entry, or nil if the list is empty.
func (l *HistoryList) SelectedEntry() *domain.HistoryEntry {
	if l.selected < 0 || l.selected >= len(l.entries) {
		return nil
	}
	return &l.entries[l.selected]
}

// MoveUp moves selection up.
func (l *HistoryList) MoveUp() {
	if l.selected > 0 {
		l.selected--
	}
}

// MoveDown moves selection down.
func (l *HistoryList) MoveDown() {
	if l.selected < len(l.entries)-1 {
		l.selected++
	}
}

// SetDimensions sets the component dimensions.
func (l *HistoryList) SetDimensions(width, height int) {
	l.width = width
	l.height = height
}

// Count returns the number of entries.
func (l *HistoryList) Count() int {
	return len(l.entries)
}
