package response

import (
	"fmt"
	"strings"

	"github.com/charmbracelet/bubbles/textinput"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"

	"github.com/sadopc/edgepanel/internal/ui/theme"
)

// SearchBar finds text in the displayed response.
type SearchBar struct {
	input   textinput.Model
	active  bool
	query   string
	matches []int // line indices of matches
	current int   // index into matches
	styles  theme.Styles
	width   int
}

// NewSearchBar creates a hidden search bar.
func NewSearchBar(s theme.Styles) SearchBar {
	ti := textinput.New()
	ti.Placeholder = "Search response..."
	ti.CharLimit = 256
	ti.Prompt = "/ "
	return SearchBar{input: ti, styles: s}
}

// Active reports whether the bar is shown.
func (m SearchBar) Active() bool {
	return m.active
}

// Typing reports whether the bar is taking keystrokes.
func (m SearchBar) Typing() bool {
	return m.active && m.input.Focused()
}

// Query returns the current search text.
func (m SearchBar) Query() string {
	return m.query
}

// Open shows the bar with an empty query.
func (m *SearchBar) Open() tea.Cmd {
	m.active = true
	m.input.SetValue("")
	m.query = ""
	m.matches = nil
	m.current = 0
	return m.input.Focus()
}

// Close hides the bar and drops the query.
func (m *SearchBar) Close() {
	m.active = false
	m.input.Blur()
	m.query = ""
	m.matches = nil
	m.current = 0
}

func (m *SearchBar) setStyles(s theme.Styles) {
	m.styles = s
}

// SetWidth sets the bar width.
func (m *SearchBar) SetWidth(w int) {
	m.width = w
	m.input.Width = max(w-20, 10)
}

// Update handles keys while the bar is typing.
func (m SearchBar) Update(msg tea.Msg) (SearchBar, tea.Cmd) {
	if !m.Typing() {
		return m, nil
	}

	if key, ok := msg.(tea.KeyMsg); ok {
		switch key.String() {
		case "esc":
			m.Close()
			return m, nil
		case "enter":
			m.query = m.input.Value()
			m.input.Blur()
			return m, nil
		}
	}

	var cmd tea.Cmd
	m.input, cmd = m.input.Update(msg)
	m.query = m.input.Value()
	return m, cmd
}

// SetMatches stores the matching line indices.
func (m *SearchBar) SetMatches(matches []int) {
	m.matches = matches
	if m.current >= len(matches) {
		m.current = 0
	}
}

// Matches returns the number of matching lines.
func (m SearchBar) Matches() int {
	return len(m.matches)
}

// NextMatch moves to the next match, wrapping around.
func (m *SearchBar) NextMatch() {
	if len(m.matches) > 0 {
		m.current = (m.current + 1) % len(m.matches)
	}
}

// PrevMatch moves to the previous match, wrapping around.
func (m *SearchBar) PrevMatch() {
	if len(m.matches) > 0 {
		m.current = (m.current - 1 + len(m.matches)) % len(m.matches)
	}
}

// CurrentMatchLine returns the line of the current match, or -1.
func (m SearchBar) CurrentMatchLine() int {
	if m.current < len(m.matches) {
		return m.matches[m.current]
	}
	return -1
}

// View renders the bar.
func (m SearchBar) View() string {
	if !m.active {
		return ""
	}

	var info string
	if m.query != "" {
		if len(m.matches) == 0 {
			info = m.styles.Error.Render(" No matches")
		} else {
			info = m.styles.Muted.Render(fmt.Sprintf(" %d/%d", m.current+1, len(m.matches)))
		}
	}
	return lipgloss.NewStyle().Width(m.width).MaxWidth(m.width).Render(m.input.View() + info)
}

// HighlightMatches marks every case-insensitive occurrence of query in
// content and returns the indices of the lines that matched.
func HighlightMatches(content, query string, mark lipgloss.Style) (string, []int) {
	if query == "" {
		return content, nil
	}

	lines := strings.Split(content, "\n")
	lowerQuery := strings.ToLower(query)
	var matchLines []int

	for i, line := range lines {
		lowerLine := strings.ToLower(line)
		if !strings.Contains(lowerLine, lowerQuery) {
			continue
		}
		matchLines = append(matchLines, i)

		// Lowering may change byte lengths, so fall back to marking the line.
		if len(lowerLine) != len(line) {
			lines[i] = mark.Render(line)
			continue
		}

		var b strings.Builder
		rest := line
		for {
			idx := strings.Index(strings.ToLower(rest), lowerQuery)
			if idx < 0 {
				b.WriteString(rest)
				break
			}
			b.WriteString(rest[:idx])
			b.WriteString(mark.Render(rest[idx : idx+len(lowerQuery)]))
			rest = rest[idx+len(lowerQuery):]
		}
		lines[i] = b.String()
	}

	return strings.Join(lines, "\n"), matchLines
}
