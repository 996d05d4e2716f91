package view

import (
	"fmt"
	"time"

	"github.com/workshift-app/workshift-go/internal/domain/attendance"
)

// IsPunchedIn reports an open shift: punched in, not yet out. A nil record
// means no shift today.
func IsPunchedIn(record *attendance.Attendance) bool {
	if record == nil {
		return false
	}
	return record.PunchIn != nil && record.PunchOut == nil
}

// OnBreak reports an open break.
func OnBreak(record *attendance.Attendance) bool {
	if record == nil {
		return false
	}
	return record.BreakStart != nil && record.BreakEnd == nil
}

// FormatElapsed renders the time since punch-in as "Xh Ym". Minutes are
// floored, never rounded up; seconds are not shown.
func FormatElapsed(punchIn, now time.Time) string {
	elapsed := now.Sub(punchIn)
	if elapsed < 0 {
		elapsed = 0
	}

	totalMinutes := int(elapsed.Minutes())
	hours := totalMinutes / 60
	minutes := totalMinutes % 60
	return fmt.Sprintf("%dh %dm", hours, minutes)
}
