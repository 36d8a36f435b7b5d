package msgs

import "testing"

func TestAppModeString(t *testing.T) {
	tests := []struct {
		name string
		mode AppMode
		want string
	}{
		{name: "normal", mode: ModeNormal, want: "NORMAL"},
		{name: "insert", mode: ModeInsert, want: "INSERT"},
		{name: "command", mode: ModeCommandPalette, want: "COMMAND"},
		{name: "modal", mode: ModeModal, want: "MODAL"},
		{name: "unknown", mode: AppMode(999), want: "UNKNOWN"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := tt.mode.String(); got != tt.want {
				t.Fatalf("String() = %q, want %q", got, tt.want)
			}
		})
	}
}

func TestPanelFocusString(t *testing.T) {
	tests := map[PanelFocus]string{
		FocusControls:  "Controls",
		FocusResponse:  "Response",
		FocusActivity:  "Activity",
		PanelFocus(42): "Unknown",
	}
	for p, want := range tests {
		if got := p.String(); got != want {
			t.Errorf("String() = %q, want %q", got, want)
		}
	}
}
