// Package inflight tracks dispatched handler invocations ("flights")
// so shutdown can cancel and join every one of them deterministically.
//
// A flight registers in the Tracker before its goroutine is spawned
// and removes itself when it reaches any terminal outcome. During
// normal operation nothing ever waits on a flight; the tracker exists
// so that Stop can turn fire-and-forget into fully accounted.
package inflight

import (
	"context"
	"sync"
	"sync/atomic"

	"github.com/xraph/cadence/id"
)

// Outcome is the terminal result of a flight.
type Outcome int

const (
	// Completed means the handler returned nil.
	Completed Outcome = iota
	// Retried means the handler failed and the request was re-enqueued
	// onto its model's retry lane. The flight itself is done.
	Retried
	// Failed means the handler failed with no retries remaining.
	Failed
	// Cancelled means the flight was cancelled during shutdown.
	Cancelled
)

// String returns the outcome name used in logs.
func (o Outcome) String() string {
	switch o {
	case Completed:
		return "completed"
	case Retried:
		return "retried"
	case Failed:
		return "failed"
	case Cancelled:
		return "cancelled"
	default:
		return "unknown"
	}
}

// Stats is a snapshot of per-outcome flight counts since the tracker
// was created.
type Stats struct {
	Completed uint64
	Retried   uint64
	Failed    uint64
	Cancelled uint64
}

// Tracker is the process-wide set of in-flight handler invocations
// across all models. Safe for concurrent use.
type Tracker struct {
	mu      sync.Mutex
	flights map[string]context.CancelFunc
	wg      sync.WaitGroup

	completed atomic.Uint64
	retried   atomic.Uint64
	failed    atomic.Uint64
	cancelled atomic.Uint64
}

// NewTracker returns an empty Tracker.
func NewTracker() *Tracker {
	return &Tracker{flights: make(map[string]context.CancelFunc)}
}

// Add registers a flight. Call before spawning the flight goroutine so
// shutdown can never miss a dispatch that is about to start.
func (t *Tracker) Add(fid id.FlightID, cancel context.CancelFunc) {
	t.mu.Lock()
	t.flights[fid.String()] = cancel
	t.mu.Unlock()
	t.wg.Add(1)
}

// Finish records the flight's terminal outcome and removes it.
// Every Add must be paired with exactly one Finish.
func (t *Tracker) Finish(fid id.FlightID, outcome Outcome) {
	t.mu.Lock()
	delete(t.flights, fid.String())
	t.mu.Unlock()

	switch outcome {
	case Completed:
		t.completed.Add(1)
	case Retried:
		t.retried.Add(1)
	case Failed:
		t.failed.Add(1)
	case Cancelled:
		t.cancelled.Add(1)
	}

	t.wg.Done()
}

// Len returns the number of flights not yet terminal.
func (t *Tracker) Len() int {
	t.mu.Lock()
	defer t.mu.Unlock()
	return len(t.flights)
}

// CancelAll requests cancellation of every tracked flight and returns
// how many were signalled. Flights still remove themselves through
// Finish; use Wait to join them.
func (t *Tracker) CancelAll() int {
	t.mu.Lock()
	defer t.mu.Unlock()
	for _, cancel := range t.flights {
		cancel()
	}
	return len(t.flights)
}

// Wait blocks until every tracked flight has finished or ctx expires.
func (t *Tracker) Wait(ctx context.Context) error {
	done := make(chan struct{})
	go func() {
		t.wg.Wait()
		close(done)
	}()

	select {
	case <-done:
		return nil
	case <-ctx.Done():
		return ctx.Err()
	}
}

// Stats returns a snapshot of per-outcome flight counts.
func (t *Tracker) Stats() Stats {
	return Stats{
		Completed: t.completed.Load(),
		Retried:   t.retried.Load(),
		Failed:    t.failed.Load(),
		Cancelled: t.cancelled.Load(),
	}
}
