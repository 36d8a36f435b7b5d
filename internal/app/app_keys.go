package app

import (
	"github.com/charmbracelet/bubbles/key"
	tea "github.com/charmbracelet/bubbletea"

	"github.com/sadopc/edgepanel/internal/core/dispatch"
	"github.com/sadopc/edgepanel/internal/ui/msgs"
)

func (a App) handleKey(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	if key.Matches(msg, a.keys.Quit) {
		return a, tea.Quit
	}

	var cmd tea.Cmd
	switch {
	case a.commandPalette.Visible:
		a.commandPalette, cmd = a.commandPalette.Update(msg)
		return a, cmd
	case a.help.Visible:
		a.help, cmd = a.help.Update(msg)
		return a, cmd
	case a.prompt.Visible:
		a.prompt, cmd = a.prompt.Update(msg)
		return a, cmd
	}

	if key.Matches(msg, a.keys.SendText) {
		return a, dispatchCmd(dispatch.ActionSendText)
	}
	if key.Matches(msg, a.keys.CommandPalette) {
		return a, func() tea.Msg { return msgs.OpenCommandPaletteMsg{} }
	}

	if a.controls.Editing() {
		a.controls, cmd = a.controls.Update(msg)
		if !a.controls.Editing() {
			a.setMode(msgs.ModeNormal)
		}
		return a, cmd
	}

	if a.focus == msgs.FocusResponse && a.response.Searching() {
		a.response, cmd = a.response.Update(msg)
		if !a.response.Searching() {
			a.setMode(msgs.ModeNormal)
		}
		return a, cmd
	}

	if cmd, ok := a.globalKey(msg); ok {
		return a, cmd
	}
	return a.panelKey(msg)
}

// globalKey handles normal-mode shortcuts that work from any panel.
func (a *App) globalKey(msg tea.KeyMsg) (tea.Cmd, bool) {
	switch {
	case key.Matches(msg, a.keys.QuitLetter):
		return tea.Quit, true
	case key.Matches(msg, a.keys.Help):
		return func() tea.Msg { return msgs.ShowHelpMsg{} }, true
	case key.Matches(msg, a.keys.CycleFocus):
		a.cycleFocus(false)
		return nil, true
	case key.Matches(msg, a.keys.CycleFocusRev):
		a.cycleFocus(true)
		return nil, true
	case key.Matches(msg, a.keys.Insert):
		a.focus = msgs.FocusControls
		a.updateFocus()
		a.setMode(msgs.ModeInsert)
		return a.controls.StartEditing(), true
	case key.Matches(msg, a.keys.Start):
		return dispatchCmd(dispatch.ActionStart), true
	case key.Matches(msg, a.keys.Stop):
		return dispatchCmd(dispatch.ActionStop), true
	case key.Matches(msg, a.keys.ClearLog):
		return func() tea.Msg { return msgs.ClearLogMsg{} }, true
	case key.Matches(msg, a.keys.ClearResponse):
		return func() tea.Msg { return msgs.ClearResponseMsg{} }, true
	case key.Matches(msg, a.keys.CopyResponse):
		return func() tea.Msg { return msgs.CopyResponseMsg{} }, true
	case key.Matches(msg, a.keys.CopyCurl):
		return func() tea.Msg { return msgs.CopyAsCurlMsg{} }, true
	case key.Matches(msg, a.keys.SaveSnapshot):
		return func() tea.Msg { return msgs.SaveSnapshotMsg{} }, true
	case key.Matches(msg, a.keys.Theme):
		return func() tea.Msg { return msgs.OpenThemePickerMsg{} }, true
	}
	return nil, false
}

func (a App) panelKey(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	var cmd tea.Cmd
	switch a.focus {
	case msgs.FocusControls:
		a.controls, cmd = a.controls.Update(msg)
		if a.controls.Editing() {
			a.setMode(msgs.ModeInsert)
		}
	case msgs.FocusResponse:
		a.response, cmd = a.response.Update(msg)
		if a.response.Searching() {
			a.setMode(msgs.ModeInsert)
		}
	case msgs.FocusActivity:
		a.activity, cmd = a.activity.Update(msg)
	}
	return a, cmd
}

func dispatchCmd(action dispatch.Action) tea.Cmd {
	return func() tea.Msg { return msgs.DispatchMsg{Action: action} }
}
