package msgs

import (
	"time"

	"github.com/sadopc/edgepanel/internal/core/dispatch"
	"github.com/sadopc/edgepanel/internal/protocol"
)

// PanelFocus identifies a focusable panel.
type PanelFocus int

const (
	FocusControls PanelFocus = iota
	FocusResponse
	FocusActivity
)

func (p PanelFocus) String() string {
	switch p {
	case FocusControls:
		return "Controls"
	case FocusResponse:
		return "Response"
	case FocusActivity:
		return "Activity"
	default:
		return "Unknown"
	}
}

// AppMode represents the current input mode.
type AppMode int

const (
	ModeNormal AppMode = iota
	ModeInsert
	ModeCommandPalette
	ModeModal
)

func (m AppMode) String() string {
	switch m {
	case ModeNormal:
		return "NORMAL"
	case ModeInsert:
		return "INSERT"
	case ModeCommandPalette:
		return "COMMAND"
	case ModeModal:
		return "MODAL"
	default:
		return "UNKNOWN"
	}
}

// FocusPanelMsg requests focus change to a specific panel.
type FocusPanelMsg struct {
	Panel PanelFocus
}

// CycleFocusMsg cycles focus to the next/previous panel.
type CycleFocusMsg struct {
	Reverse bool
}

// DispatchMsg asks the app to run one backend command.
type DispatchMsg struct {
	Action dispatch.Action
}

// DispatchDoneMsg carries the outcome of a command back to the update loop.
type DispatchDoneMsg struct {
	Pending *dispatch.Pending
	Outcome *protocol.Outcome
}

// ClearLogMsg empties the activity log.
type ClearLogMsg struct{}

// ClearResponseMsg hides the last response.
type ClearResponseMsg struct{}

// SaveSnapshotMsg opens the save-path prompt for the snapshot in the last response.
type SaveSnapshotMsg struct{}

// SnapshotSavedMsg reports the result of writing a snapshot.
type SnapshotSavedMsg struct {
	Path string
	OK   bool
}

// CopyResponseMsg copies the response body to the clipboard.
type CopyResponseMsg struct{}

// CopyAsCurlMsg copies the last command as a cURL invocation.
type CopyAsCurlMsg struct{}

// OpenCommandPaletteMsg opens the command palette.
type OpenCommandPaletteMsg struct{}

// ShowHelpMsg toggles the help overlay.
type ShowHelpMsg struct{}

// SetModeMsg changes the app mode.
type SetModeMsg struct {
	Mode AppMode
}

// ToastMsg shows a toast notification.
type ToastMsg struct {
	Text     string
	Duration time.Duration
	IsError  bool
}

// OpenThemePickerMsg opens the palette listing theme names.
type OpenThemePickerMsg struct{}

// SwitchThemeMsg requests switching to a named theme.
type SwitchThemeMsg struct {
	Name string
}
