package components

import (
	"github.com/charmbracelet/bubbles/textinput"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"

	"github.com/sadopc/edgepanel/internal/ui/msgs"
	"github.com/sadopc/edgepanel/internal/ui/theme"
)

// Prompt is a single-line input dialog. Enter submits the value through
// the callback; Esc cancels and submits an empty value.
type Prompt struct {
	Visible  bool
	Title    string
	input    textinput.Model
	onSubmit func(value string) tea.Msg
	theme    theme.Theme
}

// NewPrompt creates a hidden prompt.
func NewPrompt(t theme.Theme) Prompt {
	ti := textinput.New()
	ti.CharLimit = 512
	ti.Width = 52
	return Prompt{input: ti, theme: t}
}

// SetTheme swaps colors after a theme change.
func (m *Prompt) SetTheme(t theme.Theme) {
	m.theme = t
}

// Show opens the prompt prefilled with value.
func (m *Prompt) Show(title, value string, onSubmit func(string) tea.Msg) {
	m.Visible = true
	m.Title = title
	m.onSubmit = onSubmit
	m.input.SetValue(value)
	m.input.CursorEnd()
	m.input.Focus()
}

// Value returns the current input.
func (m Prompt) Value() string {
	return m.input.Value()
}

func (m *Prompt) hide() {
	m.Visible = false
	m.input.Blur()
}

func (m Prompt) submit(value string) (Prompt, tea.Cmd) {
	m.hide()
	if m.onSubmit == nil {
		return m, setMode(msgs.ModeNormal)
	}
	out := m.onSubmit(value)
	return m, tea.Sequence(setMode(msgs.ModeNormal), func() tea.Msg { return out })
}

// Update implements tea.Model.
func (m Prompt) Update(msg tea.Msg) (Prompt, tea.Cmd) {
	if !m.Visible {
		return m, nil
	}

	if key, ok := msg.(tea.KeyMsg); ok {
		switch key.String() {
		case "esc":
			return m.submit("")
		case "enter":
			return m.submit(m.input.Value())
		}
	}

	var cmd tea.Cmd
	m.input, cmd = m.input.Update(msg)
	return m, cmd
}

// View renders the prompt dialog.
func (m Prompt) View() string {
	if !m.Visible {
		return ""
	}

	const boxWidth = 60

	title := lipgloss.NewStyle().
		Foreground(m.theme.Text).
		Bold(true).
		Width(boxWidth - 4).
		Align(lipgloss.Center).
		Render(m.Title)
	hint := lipgloss.NewStyle().
		Foreground(m.theme.Muted).
		Italic(true).
		Render("Enter to save · Esc to cancel")

	return lipgloss.NewStyle().
		Width(boxWidth).
		Background(m.theme.Surface).
		Foreground(m.theme.Text).
		Border(lipgloss.RoundedBorder()).
		BorderForeground(m.theme.BorderFocused).
		Padding(1, 2).
		Render(title + "\n\n" + m.input.View() + "\n\n" + hint)
}
