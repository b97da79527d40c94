// Package debounce collapses rapid repeated triggers into a single call
// after a quiet period, with an immediate-flush escape hatch.
package debounce

import (
	"sync"
	"time"
)

// Debouncer runs fn once per burst of triggers: each Trigger restarts the
// quiet-period timer, and fn fires when the timer is allowed to lapse.
// Flush bypasses the wait. All methods are safe for concurrent use; fn
// must be safe to call from the timer goroutine.
type Debouncer struct {
	wait time.Duration
	fn   func()

	mu    sync.Mutex
	timer *time.Timer
}

// New returns a Debouncer calling fn after wait of quiet.
func New(wait time.Duration, fn func()) *Debouncer {
	return &Debouncer{wait: wait, fn: fn}
}

// Trigger schedules fn after the quiet period, resetting any pending
// schedule.
func (d *Debouncer) Trigger() {
	d.mu.Lock()
	defer d.mu.Unlock()
	if d.timer != nil {
		d.timer.Stop()
	}
	d.timer = time.AfterFunc(d.wait, d.fn)
}

// Flush cancels any pending schedule and runs fn immediately, on the
// calling goroutine.
func (d *Debouncer) Flush() {
	d.mu.Lock()
	if d.timer != nil {
		d.timer.Stop()
		d.timer = nil
	}
	d.mu.Unlock()
	d.fn()
}

// Stop cancels any pending schedule without running fn.
func (d *Debouncer) Stop() {
	d.mu.Lock()
	defer d.mu.Unlock()
	if d.timer != nil {
		d.timer.Stop()
		d.timer = nil
	}
}
