package attendance

import (
	"time"
)

// Status values assigned by the server. "active" covers an open shift;
// the final three are set at punch-out.
const (
	StatusActive        = "active"
	StatusComplete      = "complete"
	StatusIncomplete    = "incomplete"
	StatusBreakExceeded = "break_exceeded"
)

// CompleteShiftHours is the minimum net working time for a complete shift.
const CompleteShiftHours = 9.0

// MaxBreakHours is the allowed break span before a shift is flagged break_exceeded.
const MaxBreakHours = 1.0

// Attendance is one user's record for one calendar day. Punch and break
// stamps are nil until the matching action happens; total_hours and
// break_duration are nil until punch-out computes them.
type Attendance struct {
	ID            string     `json:"attendance_id"`
	UserID        string     `json:"user_id"`
	UserName      string     `json:"user_name"`
	UserEmail     string     `json:"user_email"`
	Date          string     `json:"date"`
	PunchIn       *time.Time `json:"punch_in"`
	PunchOut      *time.Time `json:"punch_out"`
	BreakStart    *time.Time `json:"break_start"`
	BreakEnd      *time.Time `json:"break_end"`
	TotalHours    *float64   `json:"total_hours"`
	BreakDuration *float64   `json:"break_duration"`
	IsComplete    bool       `json:"is_complete"`
	IsWeekend     bool       `json:"is_weekend"`
	Status        string     `json:"status"`
}

// HasOpenShift reports a punch-in with no punch-out yet.
func (a *Attendance) HasOpenShift() bool {
	return a.PunchIn != nil && a.PunchOut == nil
}

// HasOpenBreak reports a break-start with no break-end yet.
func (a *Attendance) HasOpenBreak() bool {
	return a.BreakStart != nil && a.BreakEnd == nil
}

// IsWeekendDay reports whether t falls on Saturday or Sunday.
func IsWeekendDay(t time.Time) bool {
	wd := t.Weekday()
	return wd == time.Saturday || wd == time.Sunday
}

// RoundHours converts a span to decimal hours rounded to two places,
// matching the precision stored in total_hours and break_duration.
func RoundHours(start, end time.Time) float64 {
	hours := end.Sub(start).Hours()
	return float64(int64(hours*100+0.5)) / 100
}
