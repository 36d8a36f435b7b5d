package app

import "github.com/charmbracelet/bubbles/key"

// KeyMap defines all application keybindings.
type KeyMap struct {
	// Global
	Quit           key.Binding
	CommandPalette key.Binding
	Help           key.Binding
	SendText       key.Binding

	// Panel navigation
	CycleFocus    key.Binding
	CycleFocusRev key.Binding
	Insert        key.Binding

	// Single-key actions, only active in vim mode
	QuitLetter    key.Binding
	Start         key.Binding
	Stop          key.Binding
	ClearLog      key.Binding
	ClearResponse key.Binding
	CopyResponse  key.Binding
	CopyCurl      key.Binding
	SaveSnapshot  key.Binding
	Theme         key.Binding
}

// DefaultKeyMap returns the keybindings. With vim off, the single-letter
// actions are disabled and only reachable through the command palette.
func DefaultKeyMap(vim bool) KeyMap {
	k := KeyMap{
		Quit: key.NewBinding(
			key.WithKeys("ctrl+c"),
			key.WithHelp("ctrl+c", "quit"),
		),
		CommandPalette: key.NewBinding(
			key.WithKeys("ctrl+k"),
			key.WithHelp("ctrl+k", "command palette"),
		),
		Help: key.NewBinding(
			key.WithKeys("?"),
			key.WithHelp("?", "help"),
		),
		SendText: key.NewBinding(
			key.WithKeys("ctrl+s"),
			key.WithHelp("ctrl+s", "send text"),
		),
		CycleFocus: key.NewBinding(
			key.WithKeys("tab"),
			key.WithHelp("tab", "next panel"),
		),
		CycleFocusRev: key.NewBinding(
			key.WithKeys("shift+tab"),
			key.WithHelp("shift+tab", "prev panel"),
		),
		Insert: key.NewBinding(
			key.WithKeys("i"),
			key.WithHelp("i", "edit inputs"),
		),
		QuitLetter: key.NewBinding(
			key.WithKeys("q"),
			key.WithHelp("q", "quit"),
		),
		Start: key.NewBinding(
			key.WithKeys("s"),
			key.WithHelp("s", "start"),
		),
		Stop: key.NewBinding(
			key.WithKeys("x"),
			key.WithHelp("x", "stop"),
		),
		ClearLog: key.NewBinding(
			key.WithKeys("c"),
			key.WithHelp("c", "clear log"),
		),
		ClearResponse: key.NewBinding(
			key.WithKeys("C"),
			key.WithHelp("C", "clear response"),
		),
		CopyResponse: key.NewBinding(
			key.WithKeys("y"),
			key.WithHelp("y", "copy response"),
		),
		CopyCurl: key.NewBinding(
			key.WithKeys("Y"),
			key.WithHelp("Y", "copy as cURL"),
		),
		SaveSnapshot: key.NewBinding(
			key.WithKeys("p"),
			key.WithHelp("p", "save snapshot"),
		),
		Theme: key.NewBinding(
			key.WithKeys("t"),
			key.WithHelp("t", "switch theme"),
		),
	}

	if !vim {
		for _, b := range []*key.Binding{
			&k.QuitLetter, &k.Start, &k.Stop, &k.ClearLog, &k.ClearResponse,
			&k.CopyResponse, &k.CopyCurl, &k.SaveSnapshot, &k.Theme,
		} {
			b.SetEnabled(false)
		}
	}
	return k
}
