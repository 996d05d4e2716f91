package cron

import (
	"context"
	"fmt"
	"log/slog"
	"time"

	"github.com/workshift-app/workshift-go/internal/config"
	"github.com/workshift-app/workshift-go/internal/domain/attendance"
	"github.com/workshift-app/workshift-go/internal/domain/user"
	"github.com/workshift-app/workshift-go/internal/pkg/email"
)

// AlertJobs wires the daily incomplete-shift alert into the scheduler.
type AlertJobs struct {
	attendanceRepo attendance.AttendanceRepository
	userRepo       user.UserRepository
	emailService   email.EmailService
	cfg            config.AlertConfig

	// lastSent guards against sending twice within the alert hour.
	lastSent string
}

func NewAlertJobs(
	attendanceRepo attendance.AttendanceRepository,
	userRepo user.UserRepository,
	emailService email.EmailService,
	cfg config.AlertConfig,
) *AlertJobs {
	return &AlertJobs{
		attendanceRepo: attendanceRepo,
		userRepo:       userRepo,
		emailService:   emailService,
		cfg:            cfg,
	}
}

func (j *AlertJobs) RegisterJobs(scheduler *Scheduler) {
	scheduler.AddJob("incomplete_shift_alert", 1*time.Hour, j.SendIncompleteShiftAlerts)
}

// SendIncompleteShiftAlerts runs hourly but only acts during the configured
// local hour. It mails every employer the day's incomplete shifts.
func (j *AlertJobs) SendIncompleteShiftAlerts(ctx context.Context) error {
	loc, err := time.LoadLocation(j.cfg.Timezone)
	if err != nil {
		return fmt.Errorf("invalid alert timezone %q: %w", j.cfg.Timezone, err)
	}

	now := time.Now().In(loc)
	if now.Hour() != j.cfg.Hour {
		return nil
	}

	today := time.Now().UTC().Format("2006-01-02")
	if j.lastSent == today {
		return nil
	}

	slog.Info("Cron: Starting incomplete shift alert job", "date", today)

	records, err := j.attendanceRepo.ListByDate(ctx, today)
	if err != nil {
		return fmt.Errorf("failed to list today's attendance: %w", err)
	}

	shifts := CollectIncompleteShifts(records)
	if len(shifts) == 0 {
		slog.Info("Cron: No incomplete shifts found", "date", today)
		j.lastSent = today
		return nil
	}

	employers, err := j.userRepo.ListByRole(ctx, user.RoleEmployer)
	if err != nil {
		return fmt.Errorf("failed to list employers: %w", err)
	}

	sent := 0
	for _, employer := range employers {
		if err := j.emailService.SendIncompleteShiftAlert(employer.Email, today, shifts); err != nil {
			slog.Error("Cron: Failed to send incomplete shift alert",
				"employer_email", employer.Email,
				"error", err)
			continue
		}
		sent++
	}

	slog.Info("Cron: Incomplete shift alerts sent",
		"date", today,
		"incomplete_shifts", len(shifts),
		"employers_notified", sent)

	j.lastSent = today
	return nil
}

// CollectIncompleteShifts filters a day's records down to alert rows.
// Weekend records are excluded. A shift is incomplete when both punches
// landed but totalled under the full-shift threshold, or when the user
// punched in and never out (reported as zero hours).
func CollectIncompleteShifts(records []attendance.Attendance) []email.IncompleteShift {
	var shifts []email.IncompleteShift
	for _, record := range records {
		if record.IsWeekend || record.PunchIn == nil {
			continue
		}

		switch {
		case record.PunchOut != nil:
			if record.TotalHours == nil || *record.TotalHours >= attendance.CompleteShiftHours {
				continue
			}
			shifts = append(shifts, email.IncompleteShift{
				Name:  record.UserName,
				Email: record.UserEmail,
				Hours: *record.TotalHours,
			})
		default:
			shifts = append(shifts, email.IncompleteShift{
				Name:  record.UserName,
				Email: record.UserEmail,
				Hours: 0,
			})
		}
	}
	return shifts
}
