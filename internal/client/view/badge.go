package view

import (
	"github.com/workshift-app/workshift-go/internal/domain/attendance"
)

// Style names a visual treatment for a status badge. The terminal view maps
// these to colors; other frontends are free to map them differently.
type Style string

const (
	StyleActive        Style = "active"
	StyleComplete      Style = "complete"
	StyleIncomplete    Style = "incomplete"
	StyleBreakExceeded Style = "break_exceeded"
)

// Badge is the rendered form of an attendance status.
type Badge struct {
	Label string
	Style Style
}

var badges = map[string]Badge{
	attendance.StatusActive:        {Label: "Active", Style: StyleActive},
	attendance.StatusComplete:      {Label: "Complete", Style: StyleComplete},
	attendance.StatusIncomplete:    {Label: "Incomplete", Style: StyleIncomplete},
	attendance.StatusBreakExceeded: {Label: "Break Exceeded", Style: StyleBreakExceeded},
}

// BadgeFor looks up the badge for a status. Unknown statuses fall back to
// the active style so a new server-side status never breaks rendering.
func BadgeFor(status string) Badge {
	if badge, ok := badges[status]; ok {
		return badge
	}
	return Badge{Label: status, Style: StyleActive}
}
