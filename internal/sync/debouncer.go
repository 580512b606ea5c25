package sync

import (
	gosync "sync"
	"time"
)

// Debouncer collapses triggers for the same key that arrive within delay
// into one call of fn, made delay after the last trigger.
type Debouncer struct {
	delay time.Duration
	fn    func(key string)

	mu      gosync.Mutex
	pending map[string]pendingCall
	seq     uint64
	stopped bool
}

type pendingCall struct {
	timer *time.Timer
	seq   uint64
}

func NewDebouncer(delay time.Duration, fn func(key string)) *Debouncer {
	return &Debouncer{
		delay:   delay,
		fn:      fn,
		pending: map[string]pendingCall{},
	}
}

func (d *Debouncer) Trigger(key string) {
	d.mu.Lock()
	defer d.mu.Unlock()

	if d.stopped {
		return
	}
	if p, ok := d.pending[key]; ok {
		p.timer.Stop()
	}

	d.seq++
	seq := d.seq
	d.pending[key] = pendingCall{
		timer: time.AfterFunc(d.delay, func() { d.fire(key, seq) }),
		seq:   seq,
	}
}

func (d *Debouncer) fire(key string, seq uint64) {
	d.mu.Lock()
	p, ok := d.pending[key]
	if !ok || p.seq != seq || d.stopped {
		d.mu.Unlock()
		return
	}
	delete(d.pending, key)
	d.mu.Unlock()

	d.fn(key)
}

// Pending returns the number of keys waiting to fire.
func (d *Debouncer) Pending() int {
	d.mu.Lock()
	defer d.mu.Unlock()
	return len(d.pending)
}

// Stop cancels every pending call; later triggers are ignored.
func (d *Debouncer) Stop() {
	d.mu.Lock()
	defer d.mu.Unlock()

	d.stopped = true
	for key, p := range d.pending {
		p.timer.Stop()
		delete(d.pending, key)
	}
}
