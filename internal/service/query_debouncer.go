package service

import (
	"sync"
	"time"
)

// QueryDebouncer coalesces bursts of query changes into a single call
// carrying the latest query once input has been quiet for the wait period.
type QueryDebouncer interface {
	Submit(query string)
	Flush()
	Cancel()
	Stop()
}

type queryDebouncer struct {
	wait time.Duration
	fire func(query string)

	mu         sync.Mutex
	pending    string
	hasPending bool
	generation uint64
	timer      *time.Timer
	stopped    bool
}

// NewQueryDebouncer returns a debouncer calling fire after wait. A wait of
// zero or less calls fire synchronously from Submit.
func NewQueryDebouncer(wait time.Duration, fire func(query string)) QueryDebouncer {
	return &queryDebouncer{
		wait: wait,
		fire: fire,
	}
}

func (d *queryDebouncer) Submit(query string) {
	d.mu.Lock()
	if d.stopped {
		d.mu.Unlock()
		return
	}

	if d.wait <= 0 {
		d.mu.Unlock()
		d.fire(query)
		return
	}

	d.pending = query
	d.hasPending = true
	d.generation++
	generation := d.generation

	if d.timer != nil {
		d.timer.Stop()
	}
	d.timer = time.AfterFunc(d.wait, func() {
		d.flushGeneration(generation)
	})
	d.mu.Unlock()
}

// Flush fires the pending query immediately, if any.
func (d *queryDebouncer) Flush() {
	d.mu.Lock()
	generation := d.generation
	d.mu.Unlock()

	d.flushGeneration(generation)
}

func (d *queryDebouncer) flushGeneration(generation uint64) {
	d.mu.Lock()
	// a newer Submit owns the timer now
	if generation != d.generation || !d.hasPending || d.stopped {
		d.mu.Unlock()
		return
	}

	query := d.pending
	d.hasPending = false
	if d.timer != nil {
		d.timer.Stop()
		d.timer = nil
	}
	d.mu.Unlock()

	d.fire(query)
}

// Cancel drops the pending query without firing it. Later submissions are
// still accepted.
func (d *queryDebouncer) Cancel() {
	d.mu.Lock()
	defer d.mu.Unlock()

	d.generation++
	d.hasPending = false
	if d.timer != nil {
		d.timer.Stop()
		d.timer = nil
	}
}

// Stop drops any pending query and ignores further submissions.
func (d *queryDebouncer) Stop() {
	d.mu.Lock()
	defer d.mu.Unlock()

	d.stopped = true
	d.hasPending = false
	if d.timer != nil {
		d.timer.Stop()
		d.timer = nil
	}
}
