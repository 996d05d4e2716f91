package attendance

import (
	"context"
	"fmt"
	"time"

	"github.com/go-chi/jwtauth/v5"
	"github.com/google/uuid"
	"github.com/workshift-app/workshift-go/internal/domain/attendance"
	"github.com/workshift-app/workshift-go/internal/domain/user"
	"github.com/workshift-app/workshift-go/internal/pkg/database"
	"github.com/workshift-app/workshift-go/internal/pkg/jwt"
)

// dateLayout is the stored form of an attendance day. All days are UTC.
const dateLayout = "2006-01-02"

type AttendanceServiceImpl struct {
	db *database.DB
	attendance.AttendanceRepository

	// now is swapped out in tests.
	now func() time.Time
}

func NewAttendanceService(db *database.DB, attendanceRepository attendance.AttendanceRepository) attendance.AttendanceService {
	return &AttendanceServiceImpl{
		db:                   db,
		AttendanceRepository: attendanceRepository,
		now:                  time.Now,
	}
}

func (s *AttendanceServiceImpl) actor(ctx context.Context) (user.Profile, error) {
	_, claims, err := jwtauth.FromContext(ctx)
	if err != nil {
		return user.Profile{}, fmt.Errorf("failed to read token claims: %w", err)
	}
	return jwt.ProfileFromClaims(claims), nil
}

// PunchIn implements attendance.AttendanceService. One record per user per
// UTC day; a second punch-in on the same day is rejected.
func (s *AttendanceServiceImpl) PunchIn(ctx context.Context) (attendance.Attendance, error) {
	actor, err := s.actor(ctx)
	if err != nil {
		return attendance.Attendance{}, err
	}

	now := s.now().UTC()
	today := now.Format(dateLayout)

	existing, err := s.AttendanceRepository.GetByUserAndDate(ctx, actor.UserID, today)
	if err != nil {
		return attendance.Attendance{}, fmt.Errorf("failed to get today's attendance: %w", err)
	}
	if existing != nil {
		return attendance.Attendance{}, attendance.ErrAlreadyPunchedIn
	}

	record := attendance.Attendance{
		ID:        uuid.NewString(),
		UserID:    actor.UserID,
		UserName:  actor.Name,
		UserEmail: actor.Email,
		Date:      today,
		PunchIn:   &now,
		IsWeekend: attendance.IsWeekendDay(now),
		Status:    attendance.StatusActive,
	}

	record, err = s.AttendanceRepository.Create(ctx, record)
	if err != nil {
		return attendance.Attendance{}, fmt.Errorf("failed to create attendance: %w", err)
	}

	return record, nil
}

// PunchOut implements attendance.AttendanceService. Totals are computed here
// and only here; a break never closed contributes zero break time.
func (s *AttendanceServiceImpl) PunchOut(ctx context.Context) (attendance.PunchOutResponse, error) {
	actor, err := s.actor(ctx)
	if err != nil {
		return attendance.PunchOutResponse{}, err
	}

	now := s.now().UTC()
	today := now.Format(dateLayout)

	record, err := s.AttendanceRepository.GetByUserAndDate(ctx, actor.UserID, today)
	if err != nil {
		return attendance.PunchOutResponse{}, fmt.Errorf("failed to get today's attendance: %w", err)
	}
	if record == nil || record.PunchIn == nil {
		return attendance.PunchOutResponse{}, attendance.ErrNotPunchedIn
	}
	if record.PunchOut != nil {
		return attendance.PunchOutResponse{}, attendance.ErrAlreadyPunchedOut
	}

	totalHours := attendance.RoundHours(*record.PunchIn, now)

	breakDuration := 0.0
	if record.BreakStart != nil && record.BreakEnd != nil {
		breakDuration = attendance.RoundHours(*record.BreakStart, *record.BreakEnd)
	}

	workHours := totalHours - breakDuration
	isComplete := workHours >= attendance.CompleteShiftHours

	status := attendance.StatusIncomplete
	if isComplete {
		status = attendance.StatusComplete
	}
	if breakDuration > attendance.MaxBreakHours {
		status = attendance.StatusBreakExceeded
	}

	record.PunchOut = &now
	record.TotalHours = &totalHours
	record.BreakDuration = &breakDuration
	record.IsComplete = isComplete
	record.Status = status

	updated, err := s.AttendanceRepository.Update(ctx, *record)
	if err != nil {
		return attendance.PunchOutResponse{}, fmt.Errorf("failed to update attendance: %w", err)
	}

	return attendance.PunchOutResponse{
		Message:       "Punched out successfully",
		TotalHours:    totalHours,
		BreakDuration: breakDuration,
		WorkHours:     workHours,
		IsComplete:    isComplete,
		Attendance:    updated,
	}, nil
}

// StartBreak implements attendance.AttendanceService. A shift carries at most
// one break.
func (s *AttendanceServiceImpl) StartBreak(ctx context.Context) (attendance.Attendance, error) {
	actor, err := s.actor(ctx)
	if err != nil {
		return attendance.Attendance{}, err
	}

	now := s.now().UTC()
	today := now.Format(dateLayout)

	record, err := s.AttendanceRepository.GetByUserAndDate(ctx, actor.UserID, today)
	if err != nil {
		return attendance.Attendance{}, fmt.Errorf("failed to get today's attendance: %w", err)
	}
	if record == nil || record.PunchIn == nil {
		return attendance.Attendance{}, attendance.ErrMustPunchInFirst
	}
	if record.PunchOut != nil {
		return attendance.Attendance{}, attendance.ErrShiftAlreadyClosed
	}
	if record.BreakStart != nil {
		if record.BreakEnd != nil {
			return attendance.Attendance{}, attendance.ErrBreakAlreadyTaken
		}
		return attendance.Attendance{}, attendance.ErrBreakInProgress
	}

	record.BreakStart = &now

	updated, err := s.AttendanceRepository.Update(ctx, *record)
	if err != nil {
		return attendance.Attendance{}, fmt.Errorf("failed to update attendance: %w", err)
	}

	return updated, nil
}

// EndBreak implements attendance.AttendanceService.
func (s *AttendanceServiceImpl) EndBreak(ctx context.Context) (attendance.Attendance, error) {
	actor, err := s.actor(ctx)
	if err != nil {
		return attendance.Attendance{}, err
	}

	now := s.now().UTC()
	today := now.Format(dateLayout)

	record, err := s.AttendanceRepository.GetByUserAndDate(ctx, actor.UserID, today)
	if err != nil {
		return attendance.Attendance{}, fmt.Errorf("failed to get today's attendance: %w", err)
	}
	if record == nil || record.PunchIn == nil {
		return attendance.Attendance{}, attendance.ErrNotPunchedIn
	}
	if record.BreakStart == nil {
		return attendance.Attendance{}, attendance.ErrNoActiveBreak
	}
	if record.BreakEnd != nil {
		return attendance.Attendance{}, attendance.ErrBreakAlreadyEnded
	}

	record.BreakEnd = &now

	updated, err := s.AttendanceRepository.Update(ctx, *record)
	if err != nil {
		return attendance.Attendance{}, fmt.Errorf("failed to update attendance: %w", err)
	}

	return updated, nil
}

// TodayStatus implements attendance.AttendanceService. An absent record is a
// valid empty state, not an error.
func (s *AttendanceServiceImpl) TodayStatus(ctx context.Context) (attendance.TodayStatusResponse, error) {
	actor, err := s.actor(ctx)
	if err != nil {
		return attendance.TodayStatusResponse{}, err
	}

	today := s.now().UTC().Format(dateLayout)

	record, err := s.AttendanceRepository.GetByUserAndDate(ctx, actor.UserID, today)
	if err != nil {
		return attendance.TodayStatusResponse{}, fmt.Errorf("failed to get today's attendance: %w", err)
	}

	return attendance.TodayStatusResponse{
		HasAttendance: record != nil,
		Attendance:    record,
	}, nil
}

const historyLimit = 90

// MyHistory implements attendance.AttendanceService.
func (s *AttendanceServiceImpl) MyHistory(ctx context.Context) ([]attendance.Attendance, error) {
	actor, err := s.actor(ctx)
	if err != nil {
		return nil, err
	}

	records, err := s.AttendanceRepository.ListByUser(ctx, actor.UserID, historyLimit)
	if err != nil {
		return nil, fmt.Errorf("failed to list attendance history: %w", err)
	}

	return records, nil
}

// TodayAllEmployees implements attendance.AttendanceService.
func (s *AttendanceServiceImpl) TodayAllEmployees(ctx context.Context) ([]attendance.Attendance, error) {
	today := s.now().UTC().Format(dateLayout)

	records, err := s.AttendanceRepository.ListByDate(ctx, today)
	if err != nil {
		return nil, fmt.Errorf("failed to list today's attendance: %w", err)
	}

	return records, nil
}

// MonthlyReport implements attendance.AttendanceService.
func (s *AttendanceServiceImpl) MonthlyReport(ctx context.Context, req attendance.MonthlyReportRequest) ([]attendance.Attendance, error) {
	if err := req.Validate(); err != nil {
		return nil, err
	}

	startDate, endDate := req.Period()

	records, err := s.AttendanceRepository.ListByDateRange(ctx, startDate, endDate)
	if err != nil {
		return nil, fmt.Errorf("failed to list monthly attendance: %w", err)
	}

	return records, nil
}
