package view

import (
	"context"
	"time"
)

// StartTicker invokes fn once per second with the current time until ctx is
// cancelled. It blocks; run it in a goroutine when the caller has other
// work. Cancellation stops the ticker immediately, so ticker goroutines are
// tied to the view's lifetime and never leak.
func StartTicker(ctx context.Context, fn func(now time.Time)) {
	ticker := time.NewTicker(1 * time.Second)
	defer ticker.Stop()

	fn(time.Now())

	for {
		select {
		case <-ctx.Done():
			return
		case now := <-ticker.C:
			fn(now)
		}
	}
}
