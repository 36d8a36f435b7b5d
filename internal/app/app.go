package app

import (
	"crypto/tls"
	"log/slog"
	"time"

	"github.com/atotto/clipboard"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"

	"github.com/sadopc/edgepanel/internal/bridge"
	"github.com/sadopc/edgepanel/internal/config"
	"github.com/sadopc/edgepanel/internal/core/activity"
	"github.com/sadopc/edgepanel/internal/core/dispatch"
	"github.com/sadopc/edgepanel/internal/logging"
	"github.com/sadopc/edgepanel/internal/protocol"
	httpclient "github.com/sadopc/edgepanel/internal/protocol/http"
	"github.com/sadopc/edgepanel/internal/ui/components"
	"github.com/sadopc/edgepanel/internal/ui/layout"
	"github.com/sadopc/edgepanel/internal/ui/msgs"
	activitypanel "github.com/sadopc/edgepanel/internal/ui/panels/activity"
	"github.com/sadopc/edgepanel/internal/ui/panels/controls"
	"github.com/sadopc/edgepanel/internal/ui/panels/response"
	"github.com/sadopc/edgepanel/internal/ui/theme"
)

// Option configures an App.
type Option func(*options)

type options struct {
	transport protocol.Transport
	logger    *slog.Logger
	clipboard func(string) error
	now       func() time.Time
	tls       *tls.Config
}

// WithTransport replaces the HTTP client behind the bridge.
func WithTransport(t protocol.Transport) Option {
	return func(o *options) { o.transport = t }
}

// WithTLSConfig sets the TLS configuration of the default HTTP client.
func WithTLSConfig(cfg *tls.Config) Option {
	return func(o *options) { o.tls = cfg }
}

// WithLogger sets the diagnostic logger.
func WithLogger(l *slog.Logger) Option {
	return func(o *options) { o.logger = l }
}

// WithClipboard replaces the system clipboard writer.
func WithClipboard(write func(string) error) Option {
	return func(o *options) { o.clipboard = write }
}

// WithClock sets the clock used for log timestamps and snapshot names.
func WithClock(now func() time.Time) Option {
	return func(o *options) { o.now = now }
}

// App is the root Bubble Tea model.
type App struct {
	controls controls.Model
	response response.Model
	activity activitypanel.Model

	statusBar      components.StatusBar
	commandPalette components.CommandPalette
	help           components.Help
	toast          components.Toast
	prompt         components.Prompt

	dispatcher *dispatch.Dispatcher
	recorder   *activity.Recorder
	bridge     *bridge.Bridge
	logger     *slog.Logger
	clipboard  func(string) error
	now        func() time.Time
	cfg        config.Config

	// inFlight is the dispatch whose result is pending, nil when idle.
	inFlight    *dispatch.Pending
	lastRequest *protocol.Request
	shown       *protocol.Outcome

	mode   msgs.AppMode
	focus  msgs.PanelFocus
	layout layout.PanelLayout
	keys   KeyMap

	theme  theme.Theme
	styles theme.Styles

	width  int
	height int
	ready  bool
}

// New creates a new App model.
func New(cfg config.Config, opts ...Option) App {
	cfg = cfg.Normalize()

	o := options{
		clipboard: clipboard.WriteAll,
		now:       time.Now,
	}
	for _, opt := range opts {
		opt(&o)
	}
	if o.logger == nil {
		o.logger = logging.Discard()
	}
	if o.transport == nil {
		client := httpclient.New()
		client.SetTimeout(cfg.RequestTimeout)
		client.SetLogger(o.logger)
		client.SetTLSConfig(o.tls)
		o.transport = client
	}

	t := theme.Resolve(cfg.Theme)
	s := theme.NewStyles(t)

	br := bridge.New(o.transport, o.logger)
	rec := activity.NewRecorder(
		activity.WithCapacity(cfg.LogCapacity),
		activity.WithClock(o.now),
	)

	a := App{
		controls: controls.New(t, s, cfg.BaseURL),
		response: response.New(t, s),
		activity: activitypanel.New(t, s),

		statusBar:      components.NewStatusBar(t, s),
		commandPalette: components.NewCommandPalette(t),
		help:           components.NewHelp(t),
		toast:          components.NewToast(t),
		prompt:         components.NewPrompt(t),

		dispatcher: dispatch.New(br, rec, o.logger),
		recorder:   rec,
		bridge:     br,
		logger:     o.logger,
		clipboard:  o.clipboard,
		now:        o.now,
		cfg:        cfg,

		mode:  msgs.ModeNormal,
		focus: msgs.FocusControls,
		keys:  DefaultKeyMap(cfg.VimMode),

		theme:  t,
		styles: s,
	}

	a.statusBar.SetBaseURL(cfg.BaseURL)
	a.updateFocus()
	a.sync()
	return a
}

// Recorder exposes the activity recorder backing the panels.
func (a App) Recorder() *activity.Recorder {
	return a.recorder
}

// Init implements tea.Model.
func (a App) Init() tea.Cmd {
	return nil
}

// Update implements tea.Model.
func (a App) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		a.width = msg.Width
		a.height = msg.Height
		a.layout = layout.HandleResize(msg)
		a.resizePanels()
		a.ready = true
		return a, nil

	case tea.KeyMsg:
		return a.handleKey(msg)

	case msgs.DispatchMsg:
		return a.startDispatch(msg.Action)

	case msgs.DispatchDoneMsg:
		return a.finishDispatch(msg)

	case msgs.ClearLogMsg:
		a.recorder.ClearLog()
		a.sync()
		return a, nil

	case msgs.ClearResponseMsg:
		a.recorder.ClearResponse()
		a.sync()
		return a, nil

	case msgs.SaveSnapshotMsg:
		return a.promptSnapshot()

	case snapshotPathMsg:
		return a, a.saveSnapshot(msg)

	case msgs.SnapshotSavedMsg:
		return a.handleSnapshotSaved(msg)

	case msgs.CopyResponseMsg:
		return a.copyResponse()

	case msgs.CopyAsCurlMsg:
		return a.copyAsCurl()

	case msgs.OpenCommandPaletteMsg:
		a.setMode(msgs.ModeCommandPalette)
		a.commandPalette.Open()
		return a, nil

	case msgs.OpenThemePickerMsg:
		a.setMode(msgs.ModeCommandPalette)
		a.commandPalette.OpenThemePicker(theme.Names())
		return a, nil

	case msgs.SwitchThemeMsg:
		a.applyTheme(theme.Resolve(msg.Name))
		return a, a.toast.Show("Theme: "+a.theme.Name, false, 2*time.Second)

	case msgs.ShowHelpMsg:
		a.help.SetSize(a.width, a.height)
		a.help.Toggle()
		if a.help.Visible {
			a.setMode(msgs.ModeModal)
		} else {
			a.setMode(msgs.ModeNormal)
		}
		return a, nil

	case msgs.SetModeMsg:
		a.setMode(msg.Mode)
		return a, nil

	case msgs.FocusPanelMsg:
		a.focus = msg.Panel
		a.updateFocus()
		return a, nil

	case msgs.CycleFocusMsg:
		a.cycleFocus(msg.Reverse)
		return a, nil

	case msgs.ToastMsg:
		return a, a.toast.Show(msg.Text, msg.IsError, msg.Duration)
	}

	var cmds []tea.Cmd
	var cmd tea.Cmd
	a.toast, cmd = a.toast.Update(msg)
	cmds = append(cmds, cmd)
	a.statusBar, cmd = a.statusBar.Update(msg)
	cmds = append(cmds, cmd)
	a.response, cmd = a.response.Update(msg)
	cmds = append(cmds, cmd)
	if a.controls.Editing() {
		a.controls, cmd = a.controls.Update(msg)
		cmds = append(cmds, cmd)
	}

	return a, tea.Batch(cmds...)
}

// sync copies recorder state into the panels.
func (a *App) sync() {
	a.controls.SetStatus(a.recorder.Status())
	a.activity.SetEntries(a.recorder.Entries(), a.recorder.Capacity())

	if out := a.recorder.Response(); out != a.shown {
		a.shown = out
		a.response.SetOutcome(out)
		if out != nil {
			a.statusBar.SetOutcome(out.StatusCode, out.Duration, out.Size)
		} else {
			a.statusBar.SetOutcome(0, 0, 0)
		}
	}
}

func (a *App) setMode(mode msgs.AppMode) {
	a.mode = mode
	a.statusBar.SetMode(mode)
}

func (a *App) cycleFocus(reverse bool) {
	panels := []msgs.PanelFocus{msgs.FocusControls, msgs.FocusResponse, msgs.FocusActivity}

	idx := 0
	for i, p := range panels {
		if p == a.focus {
			idx = i
			break
		}
	}
	if reverse {
		idx = (idx - 1 + len(panels)) % len(panels)
	} else {
		idx = (idx + 1) % len(panels)
	}

	a.focus = panels[idx]
	a.updateFocus()
}

func (a *App) updateFocus() {
	a.controls.SetFocused(a.focus == msgs.FocusControls)
	a.response.SetFocused(a.focus == msgs.FocusResponse)
	a.activity.SetFocused(a.focus == msgs.FocusActivity)
	a.statusBar.SetFocus(a.focus)
}

func (a *App) resizePanels() {
	l := a.layout
	a.controls.SetSize(l.ControlsWidth, l.ControlsHeight)
	a.response.SetSize(l.RightWidth, l.ResponseHeight)
	a.activity.SetSize(l.RightWidth, l.ActivityHeight)
	a.statusBar.SetWidth(a.width)
	a.help.SetSize(a.width, a.height)
}

func (a *App) applyTheme(t theme.Theme) {
	s := theme.NewStyles(t)
	a.theme = t
	a.styles = s
	a.controls.SetTheme(t, s)
	a.response.SetTheme(t, s)
	a.activity.SetTheme(t, s)
	a.statusBar.SetTheme(t, s)
	a.commandPalette.SetTheme(t)
	a.help.SetTheme(t)
	a.toast.SetTheme(t)
	a.prompt.SetTheme(t)
}

// View implements tea.Model.
func (a App) View() string {
	if !a.ready {
		return "Loading..."
	}

	title := lipgloss.NewStyle().
		Foreground(a.theme.Accent).
		Bold(true).
		Width(a.width).
		Render(" Edge LLM Demo · TestBed for Edge AI")

	right := lipgloss.JoinVertical(lipgloss.Left, a.response.View(), a.activity.View())

	var panels string
	if a.layout.Stacked {
		panels = lipgloss.JoinVertical(lipgloss.Left, a.controls.View(), right)
	} else {
		panels = lipgloss.JoinHorizontal(lipgloss.Top, a.controls.View(), right)
	}

	main := lipgloss.JoinVertical(lipgloss.Left, title, panels, a.statusBar.View())

	switch {
	case a.commandPalette.Visible:
		main = overlayCenter(a.commandPalette.View(), a.width, a.height, a.theme)
	case a.help.Visible:
		main = overlayCenter(a.help.View(), a.width, a.height, a.theme)
	case a.prompt.Visible:
		main = overlayCenter(a.prompt.View(), a.width, a.height, a.theme)
	}
	if a.toast.Visible {
		main = overlayTopRight(main, a.toast.View(), a.width)
	}

	return main
}

func overlayCenter(overlay string, width, height int, t theme.Theme) string {
	return lipgloss.Place(width, height, lipgloss.Center, lipgloss.Center, overlay,
		lipgloss.WithWhitespaceChars(" "),
		lipgloss.WithWhitespaceForeground(t.Base),
	)
}

func overlayTopRight(bg, overlay string, width int) string {
	gap := max(width-lipgloss.Width(overlay)-2, 0)
	positioned := lipgloss.NewStyle().MarginLeft(gap).Render(overlay)
	return positioned + "\n" + bg
}
