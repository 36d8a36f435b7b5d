package layout

import (
	"testing"

	tea "github.com/charmbracelet/bubbletea"
)

func TestCalculate_WideScreen(t *testing.T) {
	l := Calculate(160, 40)

	if l.Stacked {
		t.Error("should not stack at 160 cols")
	}
	if l.ControlsWidth < minControlsWidth || l.ControlsWidth > maxControlsWidth {
		t.Errorf("controls width %d out of range", l.ControlsWidth)
	}
	if l.ControlsWidth+l.RightWidth != 160 {
		t.Errorf("widths should sum to 160, got %d", l.ControlsWidth+l.RightWidth)
	}
	if l.ResponseHeight+l.ActivityHeight != l.ContentHeight {
		t.Errorf("right column heights should sum to %d", l.ContentHeight)
	}
	if l.ContentHeight != 38 {
		t.Errorf("content height = %d, want 38", l.ContentHeight)
	}
}

func TestCalculate_NarrowScreenStacks(t *testing.T) {
	l := Calculate(60, 30)

	if !l.Stacked {
		t.Fatal("should stack below 80 cols")
	}
	if l.ControlsWidth != 60 || l.RightWidth != 60 {
		t.Errorf("stacked panels should take full width, got %d/%d", l.ControlsWidth, l.RightWidth)
	}
	if l.ControlsHeight+l.ResponseHeight+l.ActivityHeight != l.ContentHeight {
		t.Error("stacked heights should sum to content height")
	}
}

func TestCalculate_TinyTerminal(t *testing.T) {
	if l := Calculate(10, 1); l.ContentHeight < 3 {
		t.Errorf("content height should have a floor, got %d", l.ContentHeight)
	}
}

func TestHandleResize(t *testing.T) {
	l := HandleResize(tea.WindowSizeMsg{Width: 120, Height: 30})
	if l.Width != 120 || l.Height != 30 {
		t.Errorf("unexpected layout %+v", l)
	}
}
