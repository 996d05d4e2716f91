package attendance

import (
	"context"
)

// AttendanceRepository defines data access for attendance records. Dates are
// "YYYY-MM-DD" strings in UTC; one record exists per user per date.
type AttendanceRepository interface {
	// Create inserts a new attendance record.
	Create(ctx context.Context, att Attendance) (Attendance, error)

	// GetByUserAndDate retrieves a user's record for a date.
	// Returns (nil, nil) when no record exists.
	GetByUserAndDate(ctx context.Context, userID, date string) (*Attendance, error)

	// Update persists punch/break stamps and computed totals.
	Update(ctx context.Context, att Attendance) (Attendance, error)

	// ListByUser returns a user's records, newest date first, capped at limit.
	ListByUser(ctx context.Context, userID string, limit int) ([]Attendance, error)

	// ListByDate returns every user's record for a single date.
	ListByDate(ctx context.Context, date string) ([]Attendance, error)

	// ListByDateRange returns all records with startDate <= date <= endDate,
	// newest date first.
	ListByDateRange(ctx context.Context, startDate, endDate string) ([]Attendance, error)
}
