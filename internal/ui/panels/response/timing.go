package response

import (
	"fmt"
	"strings"
	"time"

	"github.com/dustin/go-humanize"

	"github.com/sadopc/edgepanel/internal/protocol"
	"github.com/sadopc/edgepanel/internal/ui/theme"
)

// timingLine summarizes how long a command took and how much came back.
// It is empty when the outcome carries neither.
func timingLine(out *protocol.Outcome, s theme.Styles) string {
	if out == nil {
		return ""
	}

	var parts []string
	row := func(label, value string) {
		parts = append(parts, s.Key.Render(label)+" "+s.Normal.Render(value))
	}
	if out.Duration > 0 {
		row("Duration", formatDuration(out.Duration))
	}
	if out.Size > 0 {
		row("Size", humanize.IBytes(uint64(out.Size)))
	}
	return strings.Join(parts, s.Muted.Render(" · "))
}

func formatDuration(d time.Duration) string {
	switch {
	case d < time.Millisecond:
		return fmt.Sprintf("%dµs", d.Microseconds())
	case d < time.Second:
		return fmt.Sprintf("%dms", d.Milliseconds())
	default:
		return fmt.Sprintf("%.2fs", d.Seconds())
	}
}
