package app

import (
	"context"

	tea "github.com/charmbracelet/bubbletea"

	"github.com/sadopc/edgepanel/internal/core/dispatch"
	"github.com/sadopc/edgepanel/internal/ui/msgs"
)

// startDispatch records the loading transition and runs the transport call
// off the update loop. Only one dispatch is in flight at a time.
func (a App) startDispatch(action dispatch.Action) (tea.Model, tea.Cmd) {
	if a.inFlight != nil {
		return a, nil
	}

	p, _ := a.dispatcher.Prepare(action, a.controls.BaseURL(), a.controls.Text())
	if p == nil {
		a.sync()
		return a, nil
	}

	a.inFlight = p
	a.lastRequest = p.Request
	a.statusBar.SetBaseURL(p.Request.BaseURL)
	a.controls.SetLoading(true)
	spin := a.response.SetLoading(true)
	a.sync()

	d := a.dispatcher
	timeout := a.cfg.RequestTimeout
	run := func() tea.Msg {
		ctx, cancel := context.WithTimeout(context.Background(), timeout)
		defer cancel()
		return msgs.DispatchDoneMsg{Pending: p, Outcome: d.Execute(ctx, p)}
	}
	return a, tea.Batch(spin, run)
}

func (a App) finishDispatch(msg msgs.DispatchDoneMsg) (tea.Model, tea.Cmd) {
	if msg.Pending == nil || a.inFlight == nil || msg.Pending.ID != a.inFlight.ID {
		return a, nil
	}

	a.dispatcher.Complete(msg.Pending, msg.Outcome)
	a.inFlight = nil
	a.controls.SetLoading(false)
	a.response.SetLoading(false)
	a.sync()
	return a, nil
}
