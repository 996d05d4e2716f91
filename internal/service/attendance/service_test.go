package attendance

import (
	"context"
	"testing"
	"time"

	"github.com/go-chi/jwtauth/v5"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/workshift-app/workshift-go/internal/domain/attendance"
)

// stubAttendanceRepo keeps records in memory, keyed by user and date.
type stubAttendanceRepo struct {
	records map[string]attendance.Attendance
}

func newStubAttendanceRepo() *stubAttendanceRepo {
	return &stubAttendanceRepo{records: make(map[string]attendance.Attendance)}
}

func (r *stubAttendanceRepo) key(userID, date string) string {
	return userID + "|" + date
}

func (r *stubAttendanceRepo) Create(ctx context.Context, att attendance.Attendance) (attendance.Attendance, error) {
	r.records[r.key(att.UserID, att.Date)] = att
	return att, nil
}

func (r *stubAttendanceRepo) GetByUserAndDate(ctx context.Context, userID, date string) (*attendance.Attendance, error) {
	att, ok := r.records[r.key(userID, date)]
	if !ok {
		return nil, nil
	}
	return &att, nil
}

func (r *stubAttendanceRepo) Update(ctx context.Context, att attendance.Attendance) (attendance.Attendance, error) {
	for k, existing := range r.records {
		if existing.ID == att.ID {
			r.records[k] = att
			return att, nil
		}
	}
	return attendance.Attendance{}, attendance.ErrAttendanceNotFound
}

func (r *stubAttendanceRepo) ListByUser(ctx context.Context, userID string, limit int) ([]attendance.Attendance, error) {
	var out []attendance.Attendance
	for _, att := range r.records {
		if att.UserID == userID {
			out = append(out, att)
		}
	}
	if len(out) > limit {
		out = out[:limit]
	}
	return out, nil
}

func (r *stubAttendanceRepo) ListByDate(ctx context.Context, date string) ([]attendance.Attendance, error) {
	var out []attendance.Attendance
	for _, att := range r.records {
		if att.Date == date {
			out = append(out, att)
		}
	}
	return out, nil
}

func (r *stubAttendanceRepo) ListByDateRange(ctx context.Context, startDate, endDate string) ([]attendance.Attendance, error) {
	var out []attendance.Attendance
	for _, att := range r.records {
		if att.Date >= startDate && att.Date <= endDate {
			out = append(out, att)
		}
	}
	return out, nil
}

func employeeContext(t *testing.T, userID string) context.Context {
	t.Helper()

	ja := jwtauth.New("HS256", []byte("test-secret"), nil)
	_, tokenString, err := ja.Encode(map[string]interface{}{
		"user_id": userID,
		"email":   userID + "@example.com",
		"name":    "Test Employee",
		"role":    "employee",
		"type":    "access",
	})
	require.NoError(t, err)

	token, err := ja.Decode(tokenString)
	require.NoError(t, err)

	return jwtauth.NewContext(context.Background(), token, nil)
}

func newTestService(repo attendance.AttendanceRepository, at time.Time) *AttendanceServiceImpl {
	return &AttendanceServiceImpl{
		AttendanceRepository: repo,
		now:                  func() time.Time { return at },
	}
}

// Monday, a plain working day.
var workday = time.Date(2026, 3, 2, 9, 0, 0, 0, time.UTC)

func TestPunchInCreatesActiveRecord(t *testing.T) {
	repo := newStubAttendanceRepo()
	svc := newTestService(repo, workday)
	ctx := employeeContext(t, "u1")

	record, err := svc.PunchIn(ctx)
	require.NoError(t, err)

	assert.NotEmpty(t, record.ID)
	assert.Equal(t, "u1", record.UserID)
	assert.Equal(t, "2026-03-02", record.Date)
	assert.Equal(t, attendance.StatusActive, record.Status)
	assert.NotNil(t, record.PunchIn)
	assert.Nil(t, record.PunchOut)
	assert.False(t, record.IsWeekend)
}

func TestPunchInTwiceSameDayRejected(t *testing.T) {
	repo := newStubAttendanceRepo()
	svc := newTestService(repo, workday)
	ctx := employeeContext(t, "u1")

	_, err := svc.PunchIn(ctx)
	require.NoError(t, err)

	_, err = svc.PunchIn(ctx)
	assert.ErrorIs(t, err, attendance.ErrAlreadyPunchedIn)
}

func TestPunchInOnSaturdayFlagsWeekend(t *testing.T) {
	saturday := time.Date(2026, 3, 7, 9, 0, 0, 0, time.UTC)
	repo := newStubAttendanceRepo()
	svc := newTestService(repo, saturday)

	record, err := svc.PunchIn(employeeContext(t, "u1"))
	require.NoError(t, err)
	assert.True(t, record.IsWeekend)
}

func TestPunchOutWithoutPunchIn(t *testing.T) {
	repo := newStubAttendanceRepo()
	svc := newTestService(repo, workday)

	_, err := svc.PunchOut(employeeContext(t, "u1"))
	assert.ErrorIs(t, err, attendance.ErrNotPunchedIn)
}

func TestPunchOutComputesCompleteShift(t *testing.T) {
	repo := newStubAttendanceRepo()
	ctx := employeeContext(t, "u1")

	_, err := newTestService(repo, workday).PunchIn(ctx)
	require.NoError(t, err)

	// 9.5h later, no break
	out, err := newTestService(repo, workday.Add(9*time.Hour+30*time.Minute)).PunchOut(ctx)
	require.NoError(t, err)

	assert.InDelta(t, 9.5, out.TotalHours, 0.0001)
	assert.InDelta(t, 0.0, out.BreakDuration, 0.0001)
	assert.InDelta(t, 9.5, out.WorkHours, 0.0001)
	assert.True(t, out.IsComplete)
	assert.Equal(t, attendance.StatusComplete, out.Attendance.Status)
}

func TestPunchOutComputesIncompleteShift(t *testing.T) {
	repo := newStubAttendanceRepo()
	ctx := employeeContext(t, "u1")

	_, err := newTestService(repo, workday).PunchIn(ctx)
	require.NoError(t, err)

	out, err := newTestService(repo, workday.Add(6*time.Hour)).PunchOut(ctx)
	require.NoError(t, err)

	assert.InDelta(t, 6.0, out.TotalHours, 0.0001)
	assert.False(t, out.IsComplete)
	assert.Equal(t, attendance.StatusIncomplete, out.Attendance.Status)
}

func TestPunchOutBreakDeductedFromWorkHours(t *testing.T) {
	repo := newStubAttendanceRepo()
	ctx := employeeContext(t, "u1")

	_, err := newTestService(repo, workday).PunchIn(ctx)
	require.NoError(t, err)

	// 30-minute break from 12:00
	_, err = newTestService(repo, workday.Add(3*time.Hour)).StartBreak(ctx)
	require.NoError(t, err)
	_, err = newTestService(repo, workday.Add(3*time.Hour+30*time.Minute)).EndBreak(ctx)
	require.NoError(t, err)

	// Total span 9h15m, net 8h45m: under the complete threshold
	out, err := newTestService(repo, workday.Add(9*time.Hour+15*time.Minute)).PunchOut(ctx)
	require.NoError(t, err)

	assert.InDelta(t, 9.25, out.TotalHours, 0.0001)
	assert.InDelta(t, 0.5, out.BreakDuration, 0.0001)
	assert.InDelta(t, 8.75, out.WorkHours, 0.0001)
	assert.False(t, out.IsComplete)
	assert.Equal(t, attendance.StatusIncomplete, out.Attendance.Status)
}

func TestPunchOutBreakExceededOverridesStatus(t *testing.T) {
	repo := newStubAttendanceRepo()
	ctx := employeeContext(t, "u1")

	_, err := newTestService(repo, workday).PunchIn(ctx)
	require.NoError(t, err)

	// 90-minute break
	_, err = newTestService(repo, workday.Add(3*time.Hour)).StartBreak(ctx)
	require.NoError(t, err)
	_, err = newTestService(repo, workday.Add(4*time.Hour+30*time.Minute)).EndBreak(ctx)
	require.NoError(t, err)

	// Long day: net hours still complete, but the break span wins
	out, err := newTestService(repo, workday.Add(11*time.Hour)).PunchOut(ctx)
	require.NoError(t, err)

	assert.InDelta(t, 1.5, out.BreakDuration, 0.0001)
	assert.True(t, out.IsComplete)
	assert.Equal(t, attendance.StatusBreakExceeded, out.Attendance.Status)
}

func TestPunchOutExactlyNineHoursIsComplete(t *testing.T) {
	repo := newStubAttendanceRepo()
	ctx := employeeContext(t, "u1")

	_, err := newTestService(repo, workday).PunchIn(ctx)
	require.NoError(t, err)

	out, err := newTestService(repo, workday.Add(9*time.Hour)).PunchOut(ctx)
	require.NoError(t, err)
	assert.True(t, out.IsComplete)
}

func TestPunchOutTwiceRejected(t *testing.T) {
	repo := newStubAttendanceRepo()
	ctx := employeeContext(t, "u1")

	_, err := newTestService(repo, workday).PunchIn(ctx)
	require.NoError(t, err)
	_, err = newTestService(repo, workday.Add(8*time.Hour)).PunchOut(ctx)
	require.NoError(t, err)

	_, err = newTestService(repo, workday.Add(9*time.Hour)).PunchOut(ctx)
	assert.ErrorIs(t, err, attendance.ErrAlreadyPunchedOut)
}

func TestStartBreakGuards(t *testing.T) {
	repo := newStubAttendanceRepo()
	ctx := employeeContext(t, "u1")

	// No punch-in yet
	_, err := newTestService(repo, workday).StartBreak(ctx)
	assert.ErrorIs(t, err, attendance.ErrMustPunchInFirst)

	_, err = newTestService(repo, workday).PunchIn(ctx)
	require.NoError(t, err)

	_, err = newTestService(repo, workday.Add(time.Hour)).StartBreak(ctx)
	require.NoError(t, err)

	// Second break start while one is open
	_, err = newTestService(repo, workday.Add(2*time.Hour)).StartBreak(ctx)
	assert.ErrorIs(t, err, attendance.ErrBreakInProgress)
}

func TestStartBreakAfterPunchOutRejected(t *testing.T) {
	repo := newStubAttendanceRepo()
	ctx := employeeContext(t, "u1")

	_, err := newTestService(repo, workday).PunchIn(ctx)
	require.NoError(t, err)
	_, err = newTestService(repo, workday.Add(9*time.Hour)).PunchOut(ctx)
	require.NoError(t, err)

	_, err = newTestService(repo, workday.Add(10*time.Hour)).StartBreak(ctx)
	assert.ErrorIs(t, err, attendance.ErrShiftAlreadyClosed)
}

func TestEndBreakGuards(t *testing.T) {
	repo := newStubAttendanceRepo()
	ctx := employeeContext(t, "u1")

	_, err := newTestService(repo, workday).PunchIn(ctx)
	require.NoError(t, err)

	// No break started
	_, err = newTestService(repo, workday.Add(time.Hour)).EndBreak(ctx)
	assert.ErrorIs(t, err, attendance.ErrNoActiveBreak)

	_, err = newTestService(repo, workday.Add(time.Hour)).StartBreak(ctx)
	require.NoError(t, err)
	_, err = newTestService(repo, workday.Add(2*time.Hour)).EndBreak(ctx)
	require.NoError(t, err)

	// Ending again
	_, err = newTestService(repo, workday.Add(3*time.Hour)).EndBreak(ctx)
	assert.ErrorIs(t, err, attendance.ErrBreakAlreadyEnded)
}

func TestSecondBreakSameDayRejected(t *testing.T) {
	repo := newStubAttendanceRepo()
	ctx := employeeContext(t, "u1")

	_, err := newTestService(repo, workday).PunchIn(ctx)
	require.NoError(t, err)
	_, err = newTestService(repo, workday.Add(time.Hour)).StartBreak(ctx)
	require.NoError(t, err)
	_, err = newTestService(repo, workday.Add(2*time.Hour)).EndBreak(ctx)
	require.NoError(t, err)

	_, err = newTestService(repo, workday.Add(3*time.Hour)).StartBreak(ctx)
	assert.ErrorIs(t, err, attendance.ErrBreakAlreadyTaken)
}

func TestTodayStatus(t *testing.T) {
	repo := newStubAttendanceRepo()
	ctx := employeeContext(t, "u1")
	svc := newTestService(repo, workday)

	status, err := svc.TodayStatus(ctx)
	require.NoError(t, err)
	assert.False(t, status.HasAttendance)
	assert.Nil(t, status.Attendance)

	_, err = svc.PunchIn(ctx)
	require.NoError(t, err)

	status, err = svc.TodayStatus(ctx)
	require.NoError(t, err)
	assert.True(t, status.HasAttendance)
	require.NotNil(t, status.Attendance)
	assert.Equal(t, "u1", status.Attendance.UserID)
}

func TestMonthlyReportValidatesRequest(t *testing.T) {
	svc := newTestService(newStubAttendanceRepo(), workday)

	_, err := svc.MonthlyReport(context.Background(), attendance.MonthlyReportRequest{Month: 0, Year: 2026})
	assert.Error(t, err)
}

func TestMonthlyReportBounds(t *testing.T) {
	repo := newStubAttendanceRepo()
	svc := newTestService(repo, workday)

	for _, date := range []string{"2026-01-31", "2026-02-01", "2026-02-28", "2026-03-01"} {
		repo.records[date] = attendance.Attendance{ID: date, UserID: "u1", Date: date}
	}

	records, err := svc.MonthlyReport(context.Background(), attendance.MonthlyReportRequest{Month: 2, Year: 2026})
	require.NoError(t, err)

	require.Len(t, records, 2)
	for _, record := range records {
		assert.GreaterOrEqual(t, record.Date, "2026-02-01")
		assert.LessOrEqual(t, record.Date, "2026-02-28")
	}
}
