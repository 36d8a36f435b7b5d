package components

import (
	"fmt"
	"strings"
	"time"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"
	"github.com/dustin/go-humanize"

	"github.com/sadopc/edgepanel/internal/ui/msgs"
	"github.com/sadopc/edgepanel/internal/ui/theme"
)

// clearStatusMsg clears a temporary status message.
type clearStatusMsg struct{}

// StatusBar is a full-width bottom status bar.
type StatusBar struct {
	statusCode int
	duration   time.Duration
	size       int64
	mode       msgs.AppMode
	focus      msgs.PanelFocus
	message    string
	baseURL    string
	width      int
	theme      theme.Theme
	styles     theme.Styles
}

// NewStatusBar creates a new status bar.
func NewStatusBar(t theme.Theme, s theme.Styles) StatusBar {
	return StatusBar{
		theme:  t,
		styles: s,
		mode:   msgs.ModeNormal,
	}
}

// SetOutcome sets the last response summary. A zero code clears it.
func (m *StatusBar) SetOutcome(code int, duration time.Duration, size int64) {
	m.statusCode = code
	m.duration = duration
	m.size = size
}

// SetMode sets the current app mode.
func (m *StatusBar) SetMode(mode msgs.AppMode) {
	m.mode = mode
}

// SetFocus sets the focused panel name.
func (m *StatusBar) SetFocus(p msgs.PanelFocus) {
	m.focus = p
}

// SetWidth sets the available width.
func (m *StatusBar) SetWidth(w int) {
	m.width = w
}

// SetMessage sets a temporary status message.
func (m *StatusBar) SetMessage(text string) {
	m.message = text
}

// SetBaseURL sets the backend shown on the right.
func (m *StatusBar) SetBaseURL(u string) {
	m.baseURL = u
}

// SetTheme swaps colors after a theme change.
func (m *StatusBar) SetTheme(t theme.Theme, s theme.Styles) {
	m.theme = t
	m.styles = s
}

// Update implements tea.Model.
func (m StatusBar) Update(msg tea.Msg) (StatusBar, tea.Cmd) {
	if _, ok := msg.(clearStatusMsg); ok {
		m.message = ""
	}
	return m, nil
}

// View renders the status bar.
func (m StatusBar) View() string {
	seg := func(fg lipgloss.Color) lipgloss.Style {
		return lipgloss.NewStyle().Foreground(fg).Background(m.theme.Surface)
	}

	var leftParts []string
	if m.message != "" {
		leftParts = append(leftParts, seg(m.theme.Text).Render(m.message))
	} else {
		if m.statusCode > 0 {
			leftParts = append(leftParts, seg(m.theme.StatusColor(m.statusCode)).Bold(true).
				Render(fmt.Sprintf("%d", m.statusCode)))
		}
		if m.duration > 0 {
			leftParts = append(leftParts, seg(m.theme.Subtext).Render(formatDuration(m.duration)))
		}
		if m.size > 0 {
			leftParts = append(leftParts, seg(m.theme.Subtext).Render(humanize.IBytes(uint64(m.size))))
		}
	}
	left := strings.Join(leftParts, " │ ")

	mode := seg(m.theme.Accent).Bold(true).Render("[" + m.mode.String() + "] " + m.focus.String())

	var rightParts []string
	if m.baseURL != "" {
		rightParts = append(rightParts, seg(m.theme.Teal).Bold(true).Render(m.baseURL))
	}
	rightParts = append(rightParts, seg(m.theme.Muted).Render("?:help  Ctrl+K:command"))
	right := strings.Join(rightParts, " ")

	used := lipgloss.Width(left) + lipgloss.Width(mode) + lipgloss.Width(right) + 2
	gap1, gap2 := 1, 1
	if free := m.width - used; free > 2 {
		gap1 = free / 2
		gap2 = free - gap1
	}

	line := " " + left + strings.Repeat(" ", gap1) + mode + strings.Repeat(" ", gap2) + right
	return lipgloss.NewStyle().
		Background(m.theme.Surface).
		Foreground(m.theme.Text).
		Width(m.width).
		MaxWidth(m.width).
		Render(line)
}

func formatDuration(d time.Duration) string {
	switch {
	case d < time.Millisecond:
		return fmt.Sprintf("%dµs", d.Microseconds())
	case d < time.Second:
		return fmt.Sprintf("%dms", d.Milliseconds())
	default:
		return fmt.Sprintf("%.2fs", d.Seconds())
	}
}
