// Package activity renders the bounded activity log, newest entry first.
package activity

import (
	"fmt"
	"strings"

	"github.com/charmbracelet/bubbles/viewport"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"

	core "github.com/sadopc/edgepanel/internal/core/activity"
	"github.com/sadopc/edgepanel/internal/ui/theme"
)

// Model is the activity log panel.
type Model struct {
	viewport viewport.Model
	entries  []core.Entry
	capacity int
	styles   theme.Styles
	th       theme.Theme
	focused  bool
	width    int
	height   int
}

// New creates an empty activity panel.
func New(t theme.Theme, s theme.Styles) Model {
	return Model{
		viewport: viewport.New(0, 0),
		styles:   s,
		th:       t,
	}
}

// SetEntries replaces the shown entries. capacity is only displayed.
func (m *Model) SetEntries(entries []core.Entry, capacity int) {
	m.entries = entries
	m.capacity = capacity
	m.render()
}

// Len returns the number of shown entries.
func (m Model) Len() int {
	return len(m.entries)
}

// SetFocused sets whether this panel has focus.
func (m *Model) SetFocused(focused bool) {
	m.focused = focused
}

// SetTheme swaps colors after a theme change.
func (m *Model) SetTheme(t theme.Theme, s theme.Styles) {
	m.th = t
	m.styles = s
	m.render()
}

// SetSize updates the panel dimensions.
func (m *Model) SetSize(w, h int) {
	m.width = w
	m.height = h
	m.viewport.Width = max(w-2, 0)
	m.viewport.Height = max(h-3, 0)
	m.render()
}

func (m *Model) render() {
	lines := make([]string, 0, len(m.entries))
	msgWidth := max(m.viewport.Width-11, 10)
	for _, e := range m.entries {
		ts := m.styles.Timestamp.Render("[" + e.Timestamp + "]")
		msg := lipgloss.NewStyle().
			Foreground(m.th.EntryColor(e.Kind)).
			Width(msgWidth).
			Render(e.Message)
		lines = append(lines, lipgloss.JoinHorizontal(lipgloss.Top, ts, " ", msg))
	}
	m.viewport.SetContent(strings.Join(lines, "\n"))
	m.viewport.GotoTop()
}

// Update implements tea.Model.
func (m Model) Update(msg tea.Msg) (Model, tea.Cmd) {
	var cmd tea.Cmd
	m.viewport, cmd = m.viewport.Update(msg)
	return m, cmd
}

// View renders the panel.
func (m Model) View() string {
	border := m.styles.UnfocusedBorder
	if m.focused {
		border = m.styles.FocusedBorder
	}

	innerW := max(m.width-2, 0)
	innerH := max(m.height-2, 0)

	title := m.styles.Title.Render("Activity Log")
	if m.capacity > 0 {
		title += m.styles.Muted.Render(" " + fmt.Sprintf("%d/%d", len(m.entries), m.capacity))
	}

	body := m.viewport.View()
	if len(m.entries) == 0 {
		body = lipgloss.Place(innerW, innerH-1, lipgloss.Center, lipgloss.Center,
			m.styles.Muted.Render("Activity logs will appear here..."))
	}

	return border.Width(innerW).Height(innerH).Render(title + "\n" + body)
}
