// Package debounce coalesces bursts of events (map panning, keystrokes)
// into a single trailing invocation per key.
package debounce

import (
	"sync"
	"time"
)

// Debouncer schedules one pending function per key. Re-triggering a key
// before its delay elapses replaces the pending function and restarts the
// timer, so only the last value of a burst fires.
type Debouncer struct {
	delay time.Duration

	mu      sync.Mutex
	stopped bool
	timers  map[string]*time.Timer
	pending map[string]func()
}

func New(delay time.Duration) *Debouncer {
	return &Debouncer{
		delay:   delay,
		timers:  make(map[string]*time.Timer),
		pending: make(map[string]func()),
	}
}

// Trigger schedules fn to run after the configured delay, replacing any
// pending schedule for the same key.
func (d *Debouncer) Trigger(key string, fn func()) {
	d.mu.Lock()
	defer d.mu.Unlock()

	if d.stopped {
		return
	}

	if t, ok := d.timers[key]; ok {
		t.Stop()
	}
	d.pending[key] = fn
	d.timers[key] = time.AfterFunc(d.delay, func() {
		d.fire(key)
	})
}

// Flush runs the pending function for key immediately, if any. Used for
// the initial dispatch when the map signals readiness, which must not wait
// for an idle event.
func (d *Debouncer) Flush(key string) {
	d.fire(key)
}

// Cancel discards the pending schedule for key without running it.
func (d *Debouncer) Cancel(key string) {
	d.mu.Lock()
	defer d.mu.Unlock()
	d.discard(key)
}

// Stop cancels all pending schedules and rejects further triggers.
func (d *Debouncer) Stop() {
	d.mu.Lock()
	defer d.mu.Unlock()
	d.stopped = true
	for key := range d.timers {
		d.discard(key)
	}
}

func (d *Debouncer) fire(key string) {
	d.mu.Lock()
	fn := d.pending[key]
	d.discard(key)
	d.mu.Unlock()

	if fn != nil {
		fn()
	}
}

func (d *Debouncer) discard(key string) {
	if t, ok := d.timers[key]; ok {
		t.Stop()
		delete(d.timers, key)
	}
	delete(d.pending, key)
}
