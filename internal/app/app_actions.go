package app

import (
	"bytes"
	"encoding/json"
	"time"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/tidwall/pretty"

	"github.com/sadopc/edgepanel/internal/bridge"
	"github.com/sadopc/edgepanel/internal/core/activity"
	"github.com/sadopc/edgepanel/internal/export"
	"github.com/sadopc/edgepanel/internal/ui/msgs"
)

// snapshotPathMsg carries the path chosen in the save prompt.
type snapshotPathMsg struct {
	dataURL string
	path    string
}

func (a App) promptSnapshot() (tea.Model, tea.Cmd) {
	out := a.recorder.Response()
	if out == nil {
		return a, a.toast.Show("No response to save", true, 0)
	}
	dataURL, ok := bridge.FindDataURL(out.Data)
	if !ok {
		return a, a.toast.Show("Response holds no snapshot", true, 0)
	}
	_, data, err := bridge.ParseDataURL(dataURL)
	if err != nil {
		return a, a.toast.Show("Snapshot is malformed", true, 0)
	}

	a.setMode(msgs.ModeModal)
	a.prompt.Show("Save snapshot as", bridge.SuggestFilename(data, a.now()), func(path string) tea.Msg {
		return snapshotPathMsg{dataURL: dataURL, path: path}
	})
	return a, nil
}

// saveSnapshot writes the file off the update loop.
func (a App) saveSnapshot(msg snapshotPathMsg) tea.Cmd {
	br := a.bridge
	return func() tea.Msg {
		ok := br.SaveSnapshot(msg.dataURL, msg.path)
		return msgs.SnapshotSavedMsg{Path: msg.path, OK: ok}
	}
}

func (a App) handleSnapshotSaved(msg msgs.SnapshotSavedMsg) (tea.Model, tea.Cmd) {
	if !msg.OK {
		a.recorder.AppendLog("✗ Snapshot not saved", activity.KindError)
		a.sync()
		return a, a.toast.Show("Snapshot not saved", true, 0)
	}
	a.recorder.AppendLog("Snapshot saved to "+msg.Path, activity.KindInfo)
	a.sync()
	return a, a.toast.Show("Saved "+msg.Path, false, 2*time.Second)
}

func (a App) copyResponse() (tea.Model, tea.Cmd) {
	out := a.recorder.Response()
	if out == nil {
		return a, a.toast.Show("Nothing to copy", true, 0)
	}

	var text string
	switch {
	case !out.Success:
		text = out.ErrorMessage
	case len(bytes.TrimSpace(out.Data)) > 0 && json.Valid(out.Data):
		text = string(bytes.TrimRight(pretty.Pretty(out.Data), "\n"))
	default:
		text = string(out.Data)
	}

	if err := a.clipboard(text); err != nil {
		a.logger.Warn("clipboard write failed", "err", err)
		return a, a.toast.Show("Copy failed: "+err.Error(), true, 0)
	}
	return a, a.toast.Show("Copied response", false, 2*time.Second)
}

func (a App) copyAsCurl() (tea.Model, tea.Cmd) {
	if a.lastRequest == nil {
		return a, a.toast.Show("No command sent yet", true, 0)
	}
	if err := a.clipboard(export.AsCurl(a.lastRequest)); err != nil {
		a.logger.Warn("clipboard write failed", "err", err)
		return a, a.toast.Show("Copy failed: "+err.Error(), true, 0)
	}
	return a, a.toast.Show("Copied as cURL", false, 2*time.Second)
}
