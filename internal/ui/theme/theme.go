package theme

import (
	"github.com/charmbracelet/lipgloss"

	"github.com/sadopc/edgepanel/internal/core/activity"
)

// Theme is the color palette used by every panel.
type Theme struct {
	Name string

	Base    lipgloss.Color
	Surface lipgloss.Color
	Overlay lipgloss.Color

	Text    lipgloss.Color
	Subtext lipgloss.Color
	Muted   lipgloss.Color

	Accent lipgloss.Color
	Red    lipgloss.Color
	Green  lipgloss.Color
	Yellow lipgloss.Color
	Blue   lipgloss.Color
	Peach  lipgloss.Color
	Teal   lipgloss.Color

	BorderFocused   lipgloss.Color
	BorderUnfocused lipgloss.Color
}

// MethodColor returns the color for an HTTP method.
func (t Theme) MethodColor(method string) lipgloss.Color {
	switch method {
	case "GET":
		return t.Green
	case "POST":
		return t.Yellow
	case "PUT":
		return t.Blue
	default:
		return t.Text
	}
}

// StatusColor returns the color for an HTTP status code. Zero means the
// request never got a response.
func (t Theme) StatusColor(code int) lipgloss.Color {
	switch {
	case code >= 200 && code < 300:
		return t.Green
	case code >= 300 && code < 400:
		return t.Blue
	case code >= 400 && code < 500:
		return t.Yellow
	case code >= 500, code == 0:
		return t.Red
	default:
		return t.Text
	}
}

// StatusKindColor colors the status indicator.
func (t Theme) StatusKindColor(k activity.StatusKind) lipgloss.Color {
	switch k {
	case activity.StatusLoading:
		return t.Yellow
	case activity.StatusSuccess:
		return t.Green
	case activity.StatusError:
		return t.Red
	default:
		return t.Subtext
	}
}

// EntryColor colors an activity log line.
func (t Theme) EntryColor(k activity.EntryKind) lipgloss.Color {
	switch k {
	case activity.KindSuccess:
		return t.Green
	case activity.KindError:
		return t.Red
	default:
		return t.Blue
	}
}
