// Package controls is the left-hand panel: base URL, detector buttons,
// status indicator and the text sender.
package controls

import (
	"strings"

	"github.com/charmbracelet/bubbles/textarea"
	"github.com/charmbracelet/bubbles/textinput"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"

	"github.com/sadopc/edgepanel/internal/core/activity"
	"github.com/sadopc/edgepanel/internal/core/dispatch"
	"github.com/sadopc/edgepanel/internal/ui/msgs"
	"github.com/sadopc/edgepanel/internal/ui/theme"
)

// Field is a focusable element of the panel, in tab order.
type Field int

const (
	FieldBaseURL Field = iota
	FieldStart
	FieldStop
	FieldText
	FieldSend
	fieldCount
)

// Model is the controls panel.
type Model struct {
	baseURL textinput.Model
	text    textarea.Model

	field   Field
	editing bool
	loading bool
	status  activity.Status

	styles  theme.Styles
	th      theme.Theme
	focused bool
	width   int
	height  int
}

// New creates the panel with baseURL prefilled.
func New(t theme.Theme, s theme.Styles, baseURL string) Model {
	ti := textinput.New()
	ti.Placeholder = "http://localhost:3000"
	ti.CharLimit = 2048
	ti.SetValue(baseURL)

	ta := textarea.New()
	ta.Placeholder = "Enter your text here..."
	ta.ShowLineNumbers = false
	ta.SetHeight(4)
	ta.CharLimit = 0

	return Model{
		baseURL: ti,
		text:    ta,
		status:  activity.ReadyStatus,
		styles:  s,
		th:      t,
	}
}

// BaseURL returns the configured base URL as typed.
func (m Model) BaseURL() string {
	return m.baseURL.Value()
}

// SetBaseURL replaces the base URL.
func (m *Model) SetBaseURL(u string) {
	m.baseURL.SetValue(u)
}

// Text returns the text area content verbatim.
func (m Model) Text() string {
	return m.text.Value()
}

// SetText replaces the text area content.
func (m *Model) SetText(s string) {
	m.text.SetValue(s)
}

// SetStatus updates the status indicator.
func (m *Model) SetStatus(s activity.Status) {
	m.status = s
}

// SetLoading disables the buttons while a command is in flight.
func (m *Model) SetLoading(loading bool) {
	m.loading = loading
}

// Loading reports whether a command is in flight.
func (m Model) Loading() bool {
	return m.loading
}

// CanSendText reports whether the Send button is enabled.
func (m Model) CanSendText() bool {
	return !m.loading && strings.TrimSpace(m.text.Value()) != ""
}

// Field returns the focused field.
func (m Model) Field() Field {
	return m.field
}

// Editing reports whether an input owns the keyboard.
func (m Model) Editing() bool {
	return m.editing
}

// StartEditing focuses the current input, or the base URL when a button
// is selected.
func (m *Model) StartEditing() tea.Cmd {
	if m.field != FieldBaseURL && m.field != FieldText {
		m.field = FieldBaseURL
	}
	m.editing = true
	if m.field == FieldText {
		m.baseURL.Blur()
		return m.text.Focus()
	}
	m.text.Blur()
	return m.baseURL.Focus()
}

// StopEditing releases keyboard focus.
func (m *Model) StopEditing() {
	m.editing = false
	m.baseURL.Blur()
	m.text.Blur()
}

// SetFocused sets whether this panel has focus.
func (m *Model) SetFocused(focused bool) {
	m.focused = focused
	if !focused {
		m.StopEditing()
	}
}

// SetTheme swaps colors after a theme change.
func (m *Model) SetTheme(t theme.Theme, s theme.Styles) {
	m.th = t
	m.styles = s
}

// SetSize updates the panel dimensions.
func (m *Model) SetSize(w, h int) {
	m.width = w
	m.height = h
	inner := max(w-4, 10)
	m.baseURL.Width = inner - 2
	m.text.SetWidth(inner)
	// title, url label+input, buttons, status, text label, send button, spacing
	m.text.SetHeight(min(max(h-16, 2), 8))
}

func (m *Model) move(delta int) {
	m.field = Field((int(m.field) + delta + int(fieldCount)) % int(fieldCount))
}

// Press activates the focused button and returns the resulting command.
func (m Model) Press() tea.Cmd {
	var action dispatch.Action
	switch m.field {
	case FieldStart:
		action = dispatch.ActionStart
	case FieldStop:
		action = dispatch.ActionStop
	case FieldSend:
		if !m.CanSendText() {
			return nil
		}
		action = dispatch.ActionSendText
	default:
		return nil
	}
	if m.loading {
		return nil
	}
	return func() tea.Msg { return msgs.DispatchMsg{Action: action} }
}

// Update implements tea.Model.
func (m Model) Update(msg tea.Msg) (Model, tea.Cmd) {
	key, isKey := msg.(tea.KeyMsg)

	if m.editing {
		if isKey {
			switch key.String() {
			case "esc":
				m.StopEditing()
				return m, func() tea.Msg { return msgs.SetModeMsg{Mode: msgs.ModeNormal} }
			case "tab", "shift+tab":
				m.StopEditing()
				if key.String() == "tab" {
					m.move(1)
				} else {
					m.move(-1)
				}
				return m, func() tea.Msg { return msgs.SetModeMsg{Mode: msgs.ModeNormal} }
			case "enter":
				if m.field == FieldBaseURL {
					m.StopEditing()
					m.field = FieldStart
					return m, func() tea.Msg { return msgs.SetModeMsg{Mode: msgs.ModeNormal} }
				}
			}
		}
		var cmd tea.Cmd
		if m.field == FieldText {
			m.text, cmd = m.text.Update(msg)
		} else {
			m.baseURL, cmd = m.baseURL.Update(msg)
		}
		return m, cmd
	}

	if !isKey {
		return m, nil
	}

	switch key.String() {
	case "j", "down", "l", "right":
		m.move(1)
	case "k", "up", "h", "left":
		m.move(-1)
	case "enter", " ":
		if m.field == FieldBaseURL || m.field == FieldText {
			cmd := m.StartEditing()
			return m, tea.Batch(cmd, func() tea.Msg { return msgs.SetModeMsg{Mode: msgs.ModeInsert} })
		}
		return m, m.Press()
	}
	return m, nil
}

// View renders the panel.
func (m Model) View() string {
	border := m.styles.UnfocusedBorder
	if m.focused {
		border = m.styles.FocusedBorder
	}
	innerW := max(m.width-2, 0)
	innerH := max(m.height-2, 0)

	section := func(title string) string {
		return m.styles.Title.Render(title)
	}
	marker := func(f Field) string {
		if m.focused && m.field == f {
			return m.styles.Key.Render("▸ ")
		}
		return "  "
	}

	var b strings.Builder
	b.WriteString(section("Configuration") + "\n")
	b.WriteString(m.styles.Muted.Render("Base URL:") + "\n")
	b.WriteString(marker(FieldBaseURL) + m.baseURL.View() + "\n\n")

	b.WriteString(section("Controls") + "\n")
	b.WriteString(marker(FieldStart) + m.button(FieldStart, "▶ Start", !m.loading))
	b.WriteString(marker(FieldStop) + m.button(FieldStop, "■ Stop", !m.loading) + "\n")
	b.WriteString(m.statusLine() + "\n\n")

	b.WriteString(section("Text Support") + "\n")
	b.WriteString(m.styles.Muted.Render("Enter text:") + "\n")
	b.WriteString(m.textView() + "\n")
	sendLabel := "↑ Send Text"
	if m.loading {
		sendLabel = "… Sending..."
	}
	b.WriteString(marker(FieldSend) + m.button(FieldSend, sendLabel, m.CanSendText()))

	return border.Width(innerW).Height(innerH).Render(b.String())
}

func (m Model) button(f Field, label string, enabled bool) string {
	if m.loading && f != FieldSend {
		label = "… Loading..."
	}
	switch {
	case !enabled:
		return m.styles.ButtonDisabled.Render(label)
	case m.focused && m.field == f:
		return m.styles.ButtonFocused.Render(label)
	default:
		return m.styles.Button.Render(label)
	}
}

func (m Model) statusLine() string {
	dot := lipgloss.NewStyle().Foreground(m.th.StatusKindColor(m.status.Kind)).Render("●")
	return dot + " " + m.styles.Normal.Render(m.status.Message)
}

func (m Model) textView() string {
	style := m.styles.UnfocusedBorder
	if m.focused && m.field == FieldText {
		style = m.styles.FocusedBorder
	}
	return style.Render(m.text.View())
}
