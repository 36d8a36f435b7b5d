package components

import (
	"strings"

	"github.com/charmbracelet/bubbles/viewport"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"

	"github.com/sadopc/edgepanel/internal/ui/msgs"
	"github.com/sadopc/edgepanel/internal/ui/theme"
)

type helpSection struct {
	Title    string
	Bindings []helpBinding
}

type helpBinding struct {
	Key  string
	Desc string
}

var helpSections = []helpSection{
	{
		Title: "General",
		Bindings: []helpBinding{
			{"Ctrl+C / q", "Quit"},
			{"Ctrl+K", "Open command palette"},
			{"?", "Toggle this help"},
			{"Tab / Shift+Tab", "Cycle focus"},
			{"t", "Switch theme"},
		},
	},
	{
		Title: "Controls",
		Bindings: []helpBinding{
			{"s", "Start detector"},
			{"x", "Stop detector"},
			{"Ctrl+S", "Send text"},
			{"i", "Edit base URL and text"},
			{"Esc", "Back to normal mode"},
			{"←/→ Enter", "Pick and press a button"},
		},
	},
	{
		Title: "Response",
		Bindings: []helpBinding{
			{"j / k", "Scroll"},
			{"/", "Search response"},
			{"n / N", "Next / previous match"},
			{"y", "Copy response body"},
			{"Y", "Copy last command as cURL"},
			{"p", "Save snapshot from response"},
			{"C", "Clear response"},
		},
	},
	{
		Title: "Activity",
		Bindings: []helpBinding{
			{"j / k", "Scroll"},
			{"c", "Clear activity log"},
		},
	},
}

const helpBoxWidth = 64

// Help is a help overlay showing keybindings.
type Help struct {
	Visible  bool
	viewport viewport.Model
	theme    theme.Theme
	height   int
}

// NewHelp creates a new help overlay.
func NewHelp(t theme.Theme) Help {
	return Help{theme: t}
}

// SetTheme swaps colors after a theme change.
func (m *Help) SetTheme(t theme.Theme) {
	m.theme = t
	if m.Visible {
		m.build()
	}
}

// SetSize sets the terminal height used to size the viewport.
func (m *Help) SetSize(_, h int) {
	m.height = h
}

// Toggle toggles help visibility.
func (m *Help) Toggle() {
	m.Visible = !m.Visible
	if m.Visible {
		m.build()
	}
}

func (m *Help) build() {
	contentWidth := helpBoxWidth - 6

	keyStyle := lipgloss.NewStyle().Foreground(m.theme.Accent).Bold(true).Width(16).Align(lipgloss.Right)
	descStyle := lipgloss.NewStyle().Foreground(m.theme.Text)
	sectionStyle := lipgloss.NewStyle().Foreground(m.theme.Blue).Bold(true).MarginTop(1)
	sepStyle := lipgloss.NewStyle().Foreground(m.theme.Muted)

	var lines []string
	for _, section := range helpSections {
		lines = append(lines, sectionStyle.Render(section.Title))
		lines = append(lines, sepStyle.Render(strings.Repeat("─", contentWidth)))
		for _, b := range section.Bindings {
			lines = append(lines, keyStyle.Render(b.Key)+sepStyle.Render(" │ ")+descStyle.Render(b.Desc))
		}
	}

	m.viewport = viewport.New(contentWidth, max(m.height-8, 10))
	m.viewport.SetContent(strings.Join(lines, "\n"))
}

// Update implements tea.Model.
func (m Help) Update(msg tea.Msg) (Help, tea.Cmd) {
	if !m.Visible {
		return m, nil
	}

	if key, ok := msg.(tea.KeyMsg); ok {
		switch key.String() {
		case "esc", "?", "q":
			m.Visible = false
			return m, setMode(msgs.ModeNormal)
		}
	}

	var cmd tea.Cmd
	m.viewport, cmd = m.viewport.Update(msg)
	return m, cmd
}

// View renders the help overlay.
func (m Help) View() string {
	if !m.Visible {
		return ""
	}

	title := lipgloss.NewStyle().
		Foreground(m.theme.Text).
		Bold(true).
		Width(helpBoxWidth - 6).
		Align(lipgloss.Center).
		Render("Keyboard Shortcuts")

	return lipgloss.NewStyle().
		Width(helpBoxWidth).
		Background(m.theme.Surface).
		Foreground(m.theme.Text).
		Border(lipgloss.RoundedBorder()).
		BorderForeground(m.theme.BorderFocused).
		Padding(1, 2).
		Render(title + "\n\n" + m.viewport.View())
}
