package browser

import (
	"sync"
	"time"

	"github.com/romdo/go-debounce"
)

// Debouncer runs fn once the quiet interval has passed without another
// trigger. Flush skips the wait; after Stop nothing runs again.
type Debouncer struct {
	fn        func()
	debounced func()
	cancel    func()

	mu      sync.Mutex
	stopped bool
}

// NewDebouncer creates a debouncer that calls fn after wait
func NewDebouncer(wait time.Duration, fn func()) *Debouncer {
	d := &Debouncer{fn: fn}
	d.debounced, d.cancel = debounce.New(wait, fn)
	return d
}

// Trigger restarts the quiet interval
func (d *Debouncer) Trigger() {
	d.mu.Lock()
	defer d.mu.Unlock()

	if d.stopped {
		return
	}
	d.debounced()
}

// Cancel drops any pending call
func (d *Debouncer) Cancel() {
	d.cancel()
}

// Flush drops any pending call and runs fn now
func (d *Debouncer) Flush() {
	d.mu.Lock()
	if d.stopped {
		d.mu.Unlock()
		return
	}
	d.cancel()
	d.mu.Unlock()

	d.fn()
}

// Stop drops any pending call; later triggers and flushes are ignored
func (d *Debouncer) Stop() {
	d.mu.Lock()
	defer d.mu.Unlock()

	d.stopped = true
	d.cancel()
}
