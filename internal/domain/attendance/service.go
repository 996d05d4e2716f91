package attendance

import (
	"context"
)

// AttendanceService implements the punch state machine and reporting reads.
// The acting user is taken from the JWT claims carried in ctx.
type AttendanceService interface {
	PunchIn(ctx context.Context) (Attendance, error)
	PunchOut(ctx context.Context) (PunchOutResponse, error)
	StartBreak(ctx context.Context) (Attendance, error)
	EndBreak(ctx context.Context) (Attendance, error)

	TodayStatus(ctx context.Context) (TodayStatusResponse, error)
	MyHistory(ctx context.Context) ([]Attendance, error)

	// Employer reads
	TodayAllEmployees(ctx context.Context) ([]Attendance, error)
	MonthlyReport(ctx context.Context, req MonthlyReportRequest) ([]Attendance, error)
}
