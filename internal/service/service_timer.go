package service

import (
	"context"
	"fmt"
	"sync"
	"time"
)

// sessionTimer counts the wall-clock duration of one login session on a
// ticker and fires a forced-logout callback exactly once when the elapsed
// time reaches the configured ceiling.
type sessionTimer struct {
	ceiling time.Duration
	tick    time.Duration
	now     func() time.Time

	mu        sync.Mutex
	cancel    context.CancelFunc
	wg        sync.WaitGroup
	startedAt time.Time
	fired     bool
}

// NewSessionTimer creates a sessionTimer with the given ceiling and tick
// interval. The timer is idle until Start is called. A non-positive tick
// defaults to one second.
func NewSessionTimer(ceiling, tick time.Duration) SessionTimer {
	if tick <= 0 {
		tick = time.Second
	}
	return &sessionTimer{
		ceiling: ceiling,
		tick:    tick,
		now:     time.Now,
	}
}

// Start implements SessionTimer. It stops any previously running timer, then
// launches a background goroutine that re-evaluates elapsed time every tick.
// The goroutine exits when ctx is cancelled or Stop is called.
func (t *sessionTimer) Start(ctx context.Context, onTick func(elapsed time.Duration), onCeiling func(elapsed time.Duration)) {
	t.Stop()

	t.mu.Lock()
	timerCtx, cancel := context.WithCancel(ctx)
	t.cancel = cancel
	t.startedAt = t.now()
	t.fired = false
	t.wg.Add(1)
	t.mu.Unlock()

	go func() {
		defer t.wg.Done()
		ticker := time.NewTicker(t.tick)
		defer ticker.Stop()

		for {
			select {
			case <-timerCtx.Done():
				return
			case <-ticker.C:
				if done := t.evaluate(onTick, onCeiling); done {
					return
				}
			}
		}
	}()
}

// evaluate runs one timer step: it reports the elapsed time and, when the
// ceiling has been reached, fires the forced-logout callback once and tells
// the caller to stop ticking.
func (t *sessionTimer) evaluate(onTick func(elapsed time.Duration), onCeiling func(elapsed time.Duration)) bool {
	t.mu.Lock()
	elapsed := t.now().Sub(t.startedAt)
	ceilingHit := t.ceiling > 0 && elapsed >= t.ceiling && !t.fired
	if ceilingHit {
		t.fired = true
	}
	t.mu.Unlock()

	if onTick != nil {
		onTick(elapsed)
	}
	if ceilingHit && onCeiling != nil {
		onCeiling(elapsed)
	}

	return ceilingHit
}

// Stop implements SessionTimer. It cancels the background goroutine's context
// and blocks until the goroutine has fully exited. Safe to call when the
// timer is not running (no-op in that case).
func (t *sessionTimer) Stop() {
	t.mu.Lock()
	cancel := t.cancel
	t.cancel = nil
	t.mu.Unlock()

	if cancel != nil {
		cancel()
	}
	t.wg.Wait()
}

// Elapsed implements SessionTimer.
func (t *sessionTimer) Elapsed() time.Duration {
	t.mu.Lock()
	defer t.mu.Unlock()

	if t.startedAt.IsZero() {
		return 0
	}
	return t.now().Sub(t.startedAt)
}

// FormatElapsed renders a duration as zero-padded HH:MM:SS, the form shown
// in the session clock and the logout summary.
func FormatElapsed(elapsed time.Duration) string {
	if elapsed < 0 {
		elapsed = 0
	}

	totalSeconds := int(elapsed / time.Second)
	hours := totalSeconds / 3600
	minutes := (totalSeconds % 3600) / 60
	seconds := totalSeconds % 60

	return fmt.Sprintf("%02d:%02d:%02d", hours, minutes, seconds)
}
