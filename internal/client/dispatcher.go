package client

import (
	"context"
	"errors"
	"sync"
	"sync/atomic"

	"github.com/workshift-app/workshift-go/internal/domain/attendance"
)

// Command is one of the four punch actions.
type Command string

const (
	CommandPunchIn    Command = "punch-in"
	CommandPunchOut   Command = "punch-out"
	CommandStartBreak Command = "start-break"
	CommandEndBreak   Command = "end-break"
)

var (
	ErrCommandInFlight = errors.New("another command is already in progress")
	ErrUnknownCommand  = errors.New("unknown command")
)

// Dispatcher serializes punch commands. At most one command runs at a time;
// while one is in flight every other dispatch is rejected. Local state is
// never mutated optimistically: after a success the server state is
// refetched (punch-out also refreshes history).
type Dispatcher struct {
	api      *Client
	inFlight atomic.Bool

	mu      sync.RWMutex
	today   attendance.TodayStatusResponse
	history []attendance.Attendance
}

func NewDispatcher(api *Client) *Dispatcher {
	return &Dispatcher{api: api}
}

// Refresh fetches today's status, replacing the cached copy.
func (d *Dispatcher) Refresh(ctx context.Context) error {
	today, err := d.api.TodayStatus(ctx)
	if err != nil {
		return err
	}

	d.mu.Lock()
	d.today = today
	d.mu.Unlock()
	return nil
}

// RefreshHistory fetches the attendance history, replacing the cached copy.
func (d *Dispatcher) RefreshHistory(ctx context.Context) error {
	history, err := d.api.MyHistory(ctx)
	if err != nil {
		return err
	}

	d.mu.Lock()
	d.history = history
	d.mu.Unlock()
	return nil
}

// Today returns the cached today-status.
func (d *Dispatcher) Today() attendance.TodayStatusResponse {
	d.mu.RLock()
	defer d.mu.RUnlock()
	return d.today
}

// History returns the cached attendance history.
func (d *Dispatcher) History() []attendance.Attendance {
	d.mu.RLock()
	defer d.mu.RUnlock()
	return d.history
}

// Dispatch runs cmd against the server. The in-flight flag is cleared on
// every path out, success or failure, so the next command is never locked
// out. There is no retry and no backoff.
func (d *Dispatcher) Dispatch(ctx context.Context, cmd Command) error {
	if !d.inFlight.CompareAndSwap(false, true) {
		return ErrCommandInFlight
	}
	defer d.inFlight.Store(false)

	var err error
	switch cmd {
	case CommandPunchIn:
		_, err = d.api.PunchIn(ctx)
	case CommandPunchOut:
		_, err = d.api.PunchOut(ctx)
	case CommandStartBreak:
		_, err = d.api.StartBreak(ctx)
	case CommandEndBreak:
		_, err = d.api.EndBreak(ctx)
	default:
		return ErrUnknownCommand
	}
	if err != nil {
		return err
	}

	if err := d.Refresh(ctx); err != nil {
		return err
	}
	if cmd == CommandPunchOut {
		if err := d.RefreshHistory(ctx); err != nil {
			return err
		}
	}
	return nil
}

// InFlight reports whether a command is currently running.
func (d *Dispatcher) InFlight() bool {
	return d.inFlight.Load()
}
