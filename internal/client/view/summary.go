package view

import (
	"github.com/workshift-app/workshift-go/internal/domain/attendance"
)

// MonthlySummary holds the counters shown above a monthly report.
type MonthlySummary struct {
	Total         int
	Complete      int
	Incomplete    int
	BreakExceeded int
}

// Summarize counts a month's records. Order-independent. Weekend records
// and records with no punch-in never count as incomplete, so incomplete +
// complete may be less than total.
func Summarize(records []attendance.Attendance) MonthlySummary {
	summary := MonthlySummary{Total: len(records)}
	for _, record := range records {
		if record.IsComplete {
			summary.Complete++
		}
		if !record.IsComplete && !record.IsWeekend && record.PunchIn != nil {
			summary.Incomplete++
		}
		if record.Status == attendance.StatusBreakExceeded {
			summary.BreakExceeded++
		}
	}
	return summary
}
