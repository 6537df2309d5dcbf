// Package watcher reports settled changes to removable volumes and follows the helper log.
package watcher

import (
	"sync"
	"time"
)

// Debouncer coalesces a burst of events into one callback after a quiet window.
type Debouncer struct {
	mu       sync.Mutex
	timer    *time.Timer
	pending  bool
	window   time.Duration
	callback func()
}

// NewDebouncer creates a new debouncer with the given quiet window and callback.
func NewDebouncer(window time.Duration, callback func()) *Debouncer {
	return &Debouncer{
		window:   window,
		callback: callback,
	}
}

// Trigger records an event and restarts the quiet window.
func (d *Debouncer) Trigger() {
	d.mu.Lock()
	defer d.mu.Unlock()

	d.pending = true
	if d.timer != nil {
		d.timer.Stop()
	}
	d.timer = time.AfterFunc(d.window, d.fire)
}

func (d *Debouncer) fire() {
	d.mu.Lock()
	if !d.pending {
		d.timer = nil
		d.mu.Unlock()
		return
	}
	d.pending = false
	d.timer = nil
	d.mu.Unlock()

	if d.callback != nil {
		d.callback()
	}
}

// Stop drops any pending event without calling back.
func (d *Debouncer) Stop() {
	d.mu.Lock()
	defer d.mu.Unlock()

	if d.timer != nil {
		d.timer.Stop()
		d.timer = nil
	}
	d.pending = false
}
