package layout

import tea "github.com/charmbracelet/bubbletea"

// PanelLayout holds calculated dimensions for the panel grid: controls on
// the left, response above the activity log on the right.
type PanelLayout struct {
	Width  int
	Height int

	ControlsWidth int
	RightWidth    int

	ContentHeight  int // height minus title and status bar
	ControlsHeight int
	ResponseHeight int
	ActivityHeight int

	Stacked bool
}

const (
	titleBarHeight   = 1
	statusBarHeight  = 1
	minControlsWidth = 32
	maxControlsWidth = 48
	stackedBelow     = 80
)

// Calculate computes the panel layout from terminal dimensions.
func Calculate(width, height int) PanelLayout {
	l := PanelLayout{
		Width:         width,
		Height:        height,
		ContentHeight: max(height-titleBarHeight-statusBarHeight, 3),
	}

	if width < stackedBelow {
		l.Stacked = true
		l.ControlsWidth = width
		l.RightWidth = width
		l.ControlsHeight = l.ContentHeight / 2
		rest := l.ContentHeight - l.ControlsHeight
		l.ResponseHeight = rest / 2
		l.ActivityHeight = rest - l.ResponseHeight
		return l
	}

	l.ControlsWidth = clamp(width*2/5, minControlsWidth, maxControlsWidth)
	l.RightWidth = width - l.ControlsWidth
	l.ControlsHeight = l.ContentHeight
	l.ResponseHeight = l.ContentHeight * 3 / 5
	l.ActivityHeight = l.ContentHeight - l.ResponseHeight
	return l
}

// HandleResize processes a WindowSizeMsg and returns the updated layout.
func HandleResize(msg tea.WindowSizeMsg) PanelLayout {
	return Calculate(msg.Width, msg.Height)
}

func clamp(v, lo, hi int) int {
	if v < lo {
		return lo
	}
	if v > hi {
		return hi
	}
	return v
}
