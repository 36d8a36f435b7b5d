// Package response renders the last command outcome.
package response

import (
	"fmt"
	"strings"

	"github.com/charmbracelet/bubbles/spinner"
	"github.com/charmbracelet/bubbles/viewport"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"

	"github.com/sadopc/edgepanel/internal/protocol"
	"github.com/sadopc/edgepanel/internal/ui/theme"
)

// Model is the response panel.
type Model struct {
	viewport viewport.Model
	spinner  spinner.Model
	search   SearchBar

	outcome *protocol.Outcome
	styles  theme.Styles
	th      theme.Theme
	focused bool
	loading bool
	width   int
	height  int
}

// New creates a new response panel model.
func New(t theme.Theme, s theme.Styles) Model {
	sp := spinner.New()
	sp.Spinner = spinner.Dot
	sp.Style = lipgloss.NewStyle().Foreground(t.Accent)

	return Model{
		viewport: viewport.New(0, 0),
		spinner:  sp,
		search:   NewSearchBar(s),
		styles:   s,
		th:       t,
	}
}

// SetOutcome shows out. Nil clears the panel.
func (m *Model) SetOutcome(out *protocol.Outcome) {
	m.outcome = out
	m.render()
	m.viewport.GotoTop()
}

// Outcome returns the displayed outcome, nil when the panel is empty.
func (m Model) Outcome() *protocol.Outcome {
	return m.outcome
}

// SetLoading puts the panel into loading state. It returns the spinner tick
// when loading starts.
func (m *Model) SetLoading(loading bool) tea.Cmd {
	wasLoading := m.loading
	m.loading = loading
	if loading && !wasLoading {
		return m.spinner.Tick
	}
	return nil
}

// Loading reports whether a command is in flight.
func (m Model) Loading() bool {
	return m.loading
}

// SetFocused sets whether this panel has focus.
func (m *Model) SetFocused(focused bool) {
	m.focused = focused
}

// SetTheme swaps colors after a theme change.
func (m *Model) SetTheme(t theme.Theme, s theme.Styles) {
	m.th = t
	m.styles = s
	m.search.setStyles(s)
	m.spinner.Style = lipgloss.NewStyle().Foreground(t.Accent)
	m.render()
}

// SetSize updates the panel dimensions.
func (m *Model) SetSize(w, h int) {
	m.width = w
	m.height = h
	m.search.SetWidth(max(w-2, 0))
	m.fitViewport()
	m.render()
}

// fitViewport sizes the body below the border (2), title (1), headline (1)
// and, while shown, the search bar (1).
func (m *Model) fitViewport() {
	m.viewport.Width = max(m.width-2, 0)
	reserved := 4
	if m.search.Active() {
		reserved++
	}
	m.viewport.Height = max(m.height-reserved, 0)
}

// Searching reports whether the search bar is taking keystrokes.
func (m Model) Searching() bool {
	return m.search.Typing()
}

// SearchQuery returns the text being searched for.
func (m Model) SearchQuery() string {
	return m.search.Query()
}

// SearchMatches returns how many lines match the current query.
func (m Model) SearchMatches() int {
	return m.search.Matches()
}

func (m *Model) render() {
	if m.outcome == nil {
		m.search.SetMatches(nil)
		m.viewport.SetContent("")
		return
	}
	query := m.search.Query()
	if query == "" {
		m.search.SetMatches(nil)
		m.viewport.SetContent(m.details(true))
		return
	}

	plain := m.details(false)
	if m.viewport.Width > 0 {
		plain = lipgloss.NewStyle().Width(m.viewport.Width).Render(plain)
	}
	mark := lipgloss.NewStyle().Background(m.th.Yellow).Foreground(m.th.Base).Bold(true)
	content, matches := HighlightMatches(plain, query, mark)
	m.search.SetMatches(matches)
	m.viewport.SetContent(content)
	if line := m.search.CurrentMatchLine(); line >= 0 {
		m.viewport.SetYOffset(line)
	}
}

// details renders the outcome body. Colored output is skipped while
// searching so matches line up with the text.
func (m Model) details(color bool) string {
	out := m.outcome
	body := func() string {
		text := string(prettyJSON(out.Data))
		if color {
			return highlightJSON(text, m.viewport.Width)
		}
		return text
	}
	if out.Success {
		return body()
	}

	label := m.styles.Key
	lines := []string{
		label.Render("Message: ") + m.styles.Normal.Render(out.ErrorMessage),
		label.Render("Status:  ") + m.styles.Normal.Render(out.StatusText),
	}
	if !color {
		lines = []string{"Message: " + out.ErrorMessage, "Status:  " + out.StatusText}
	}
	if len(out.Data) > 0 && string(out.Data) != "null" {
		lines = append(lines, "", body())
	}
	return strings.Join(lines, "\n")
}

func (m Model) headline() string {
	out := m.outcome
	style := lipgloss.NewStyle().Foreground(m.th.StatusColor(out.StatusCode)).Bold(true)
	var head string
	if out.Success {
		head = style.Render(fmt.Sprintf("✓ Success (%d)", out.StatusCode))
	} else {
		head = style.Render(fmt.Sprintf("✗ Error (%d)", out.StatusCode))
	}
	if timing := timingLine(out, m.styles); timing != "" {
		head += "  " + timing
	}
	return head
}

// Update implements tea.Model.
func (m Model) Update(msg tea.Msg) (Model, tea.Cmd) {
	switch msg := msg.(type) {
	case spinner.TickMsg:
		if m.loading {
			var cmd tea.Cmd
			m.spinner, cmd = m.spinner.Update(msg)
			return m, cmd
		}
		return m, nil
	case tea.KeyMsg:
		if m.search.Typing() {
			var cmd tea.Cmd
			m.search, cmd = m.search.Update(msg)
			m.fitViewport()
			m.render()
			return m, cmd
		}
		switch msg.String() {
		case "/":
			cmd := m.search.Open()
			m.fitViewport()
			m.render()
			return m, cmd
		case "n":
			if m.search.Active() {
				m.search.NextMatch()
				m.render()
				return m, nil
			}
		case "N":
			if m.search.Active() {
				m.search.PrevMatch()
				m.render()
				return m, nil
			}
		case "esc":
			if m.search.Active() {
				m.search.Close()
				m.fitViewport()
				m.render()
				return m, nil
			}
		case "g":
			m.viewport.GotoTop()
			return m, nil
		case "G":
			m.viewport.GotoBottom()
			return m, nil
		}
	}

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
	title := m.styles.Title.Render("Response")

	var body string
	switch {
	case m.loading:
		body = lipgloss.Place(innerW, innerH-1, lipgloss.Center, lipgloss.Center,
			m.spinner.View()+" Waiting for response...")
	case m.outcome == nil:
		body = lipgloss.Place(innerW, innerH-1, lipgloss.Center, lipgloss.Center,
			m.styles.Muted.Render("API responses will appear here..."))
	default:
		body = m.headline() + "\n" + m.viewport.View()
		if m.search.Active() {
			body += "\n" + m.search.View()
		}
	}

	return border.Width(innerW).Height(innerH).Render(title + "\n" + body)
}
