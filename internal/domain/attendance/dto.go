package attendance

import (
	"fmt"
	"time"

	"github.com/workshift-app/workshift-go/internal/pkg/validator"
)

// TodayStatusResponse wraps the possibly-absent record for the current day.
// A missing record is a valid empty state, not an error.
type TodayStatusResponse struct {
	HasAttendance bool        `json:"has_attendance"`
	Attendance    *Attendance `json:"attendance"`
}

// PunchOutResponse carries the server-computed shift totals. work_hours is
// total_hours minus break_duration; clients must not re-derive any of these.
type PunchOutResponse struct {
	Message       string     `json:"message"`
	TotalHours    float64    `json:"total_hours"`
	BreakDuration float64    `json:"break_duration"`
	WorkHours     float64    `json:"work_hours"`
	IsComplete    bool       `json:"is_complete"`
	Attendance    Attendance `json:"attendance"`
}

type MonthlyReportRequest struct {
	Month int `json:"month"`
	Year  int `json:"year"`
}

func (r *MonthlyReportRequest) Validate() error {
	var errs validator.ValidationErrors

	if r.Month < 1 || r.Month > 12 {
		errs = append(errs, validator.ValidationError{
			Field:   "month",
			Message: "month must be between 1 and 12",
		})
	}

	currentYear := time.Now().Year()
	if r.Year < 2020 || r.Year > currentYear+1 {
		errs = append(errs, validator.ValidationError{
			Field:   "year",
			Message: fmt.Sprintf("year must be between 2020 and %d", currentYear+1),
		})
	}

	if len(errs) > 0 {
		return errs
	}
	return nil
}

// Period returns the first and last calendar day of the requested month
// formatted as stored dates.
func (r *MonthlyReportRequest) Period() (startDate, endDate string) {
	start := time.Date(r.Year, time.Month(r.Month), 1, 0, 0, 0, 0, time.UTC)
	end := start.AddDate(0, 1, -1)
	return start.Format("2006-01-02"), end.Format("2006-01-02")
}
