package attendance

import "errors"

// Attendance domain errors
var (
	// Punch errors
	ErrAlreadyPunchedIn  = errors.New("already punched in today")
	ErrNotPunchedIn      = errors.New("no active punch-in found for today")
	ErrAlreadyPunchedOut = errors.New("already punched out today")

	// Break errors
	ErrMustPunchInFirst   = errors.New("must punch in first")
	ErrBreakInProgress    = errors.New("break already in progress")
	ErrBreakAlreadyTaken  = errors.New("break already taken today")
	ErrNoActiveBreak      = errors.New("no active break found")
	ErrBreakAlreadyEnded  = errors.New("break already ended")
	ErrShiftAlreadyClosed = errors.New("already punched out")

	// General errors
	ErrAttendanceNotFound = errors.New("attendance record not found")
)
