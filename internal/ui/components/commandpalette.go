package components

import (
	"strings"

	"github.com/charmbracelet/bubbles/textinput"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"
	"github.com/sahilm/fuzzy"

	"github.com/sadopc/edgepanel/internal/core/dispatch"
	"github.com/sadopc/edgepanel/internal/ui/msgs"
	"github.com/sadopc/edgepanel/internal/ui/theme"
)

// paletteCommand is a command entry in the palette.
type paletteCommand struct {
	Name     string
	Shortcut string
	Msg      tea.Msg
}

var defaultCommands = []paletteCommand{
	{Name: "Start Detector", Shortcut: "s", Msg: msgs.DispatchMsg{Action: dispatch.ActionStart}},
	{Name: "Stop Detector", Shortcut: "x", Msg: msgs.DispatchMsg{Action: dispatch.ActionStop}},
	{Name: "Send Text", Shortcut: "Ctrl+S", Msg: msgs.DispatchMsg{Action: dispatch.ActionSendText}},
	{Name: "Clear Activity Log", Shortcut: "c", Msg: msgs.ClearLogMsg{}},
	{Name: "Clear Response", Shortcut: "C", Msg: msgs.ClearResponseMsg{}},
	{Name: "Save Snapshot", Shortcut: "p", Msg: msgs.SaveSnapshotMsg{}},
	{Name: "Copy Response", Shortcut: "y", Msg: msgs.CopyResponseMsg{}},
	{Name: "Copy as cURL", Shortcut: "Y", Msg: msgs.CopyAsCurlMsg{}},
	{Name: "Switch Theme", Shortcut: "t", Msg: msgs.OpenThemePickerMsg{}},
	{Name: "Help", Shortcut: "?", Msg: msgs.ShowHelpMsg{}},
	{Name: "Quit", Shortcut: "Ctrl+C", Msg: tea.Quit()},
}

// CommandPalette is a fuzzy command palette overlay.
type CommandPalette struct {
	Visible  bool
	input    textinput.Model
	commands []paletteCommand
	filtered []paletteCommand
	cursor   int
	theme    theme.Theme
}

// NewCommandPalette creates a new command palette.
func NewCommandPalette(t theme.Theme) CommandPalette {
	ti := textinput.New()
	ti.Placeholder = "Type a command..."
	ti.CharLimit = 64
	ti.Width = 54

	return CommandPalette{
		input:    ti,
		commands: defaultCommands,
		filtered: defaultCommands,
		theme:    t,
	}
}

// SetTheme swaps colors after a theme change.
func (m *CommandPalette) SetTheme(t theme.Theme) {
	m.theme = t
}

// Open shows the command palette.
func (m *CommandPalette) Open() {
	m.show(defaultCommands, "Type a command...")
}

// OpenThemePicker opens the palette in theme selection mode.
func (m *CommandPalette) OpenThemePicker(themeNames []string) {
	cmds := make([]paletteCommand, len(themeNames))
	for i, name := range themeNames {
		cmds[i] = paletteCommand{Name: name, Msg: msgs.SwitchThemeMsg{Name: name}}
	}
	m.show(cmds, "Select theme...")
}

func (m *CommandPalette) show(cmds []paletteCommand, placeholder string) {
	m.Visible = true
	m.commands = cmds
	m.filtered = cmds
	m.cursor = 0
	m.input.Placeholder = placeholder
	m.input.SetValue("")
	m.input.Focus()
}

// Close hides the palette and restores the default command list.
func (m *CommandPalette) Close() {
	m.Visible = false
	m.input.Blur()
	m.commands = defaultCommands
	m.filtered = defaultCommands
	m.input.Placeholder = "Type a command..."
}

// Filtered returns the names of the commands matching the current query.
func (m CommandPalette) Filtered() []string {
	names := make([]string, len(m.filtered))
	for i, c := range m.filtered {
		names[i] = c.Name
	}
	return names
}

// Update implements tea.Model.
func (m CommandPalette) Update(msg tea.Msg) (CommandPalette, tea.Cmd) {
	if !m.Visible {
		return m, nil
	}

	if key, ok := msg.(tea.KeyMsg); ok {
		switch key.String() {
		case "esc":
			m.Close()
			return m, setMode(msgs.ModeNormal)
		case "enter":
			if m.cursor < len(m.filtered) {
				selected := m.filtered[m.cursor]
				m.Close()
				return m, tea.Sequence(setMode(msgs.ModeNormal), func() tea.Msg { return selected.Msg })
			}
			return m, nil
		case "up", "ctrl+p":
			if m.cursor > 0 {
				m.cursor--
			}
			return m, nil
		case "down", "ctrl+n":
			if m.cursor < len(m.filtered)-1 {
				m.cursor++
			}
			return m, nil
		}
	}

	var cmd tea.Cmd
	m.input, cmd = m.input.Update(msg)
	m.filter(m.input.Value())
	return m, cmd
}

func (m *CommandPalette) filter(query string) {
	if query == "" {
		m.filtered = m.commands
	} else {
		names := make([]string, len(m.commands))
		for i, c := range m.commands {
			names[i] = c.Name
		}
		matches := fuzzy.Find(query, names)
		m.filtered = make([]paletteCommand, len(matches))
		for i, match := range matches {
			m.filtered[i] = m.commands[match.Index]
		}
	}
	m.cursor = min(m.cursor, max(len(m.filtered)-1, 0))
}

// View renders the command palette overlay.
func (m CommandPalette) View() string {
	if !m.Visible {
		return ""
	}

	const boxWidth = 60
	inner := boxWidth - 6

	title := lipgloss.NewStyle().
		Foreground(m.theme.Text).
		Bold(true).
		Width(boxWidth - 4).
		Align(lipgloss.Center).
		Render("Command Palette")

	nameStyle := lipgloss.NewStyle().Foreground(m.theme.Text)
	shortcutStyle := lipgloss.NewStyle().Foreground(m.theme.Muted)
	cursorStyle := lipgloss.NewStyle().
		Background(m.theme.Overlay).
		Foreground(m.theme.Text).
		Width(boxWidth - 4)

	var items []string
	for i, c := range m.filtered {
		if i == 15 {
			break
		}
		gap := max(inner-lipgloss.Width(c.Name)-lipgloss.Width(c.Shortcut), 1)
		if i == m.cursor {
			items = append(items, cursorStyle.Render(c.Name+strings.Repeat(" ", gap)+c.Shortcut))
			continue
		}
		items = append(items, nameStyle.Render(c.Name)+strings.Repeat(" ", gap)+shortcutStyle.Render(c.Shortcut))
	}
	if len(items) == 0 {
		items = append(items, shortcutStyle.Render("No matching commands"))
	}

	content := title + "\n\n" + m.input.View() + "\n\n" + strings.Join(items, "\n")

	return lipgloss.NewStyle().
		Width(boxWidth).
		Background(m.theme.Surface).
		Foreground(m.theme.Text).
		Border(lipgloss.RoundedBorder()).
		BorderForeground(m.theme.BorderFocused).
		Padding(1, 2).
		Render(content)
}

func setMode(mode msgs.AppMode) tea.Cmd {
	return func() tea.Msg { return msgs.SetModeMsg{Mode: mode} }
}
