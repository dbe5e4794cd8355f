// Package deadletter captures terminally failed requests in a bounded
// in-memory ring for inspection.
//
// Entries are observational only: the scheduler logs and drops a
// request once its retry budget is exhausted, and nothing in this
// package ever re-dispatches one. When the ring is full the oldest
// entry is evicted.
package deadletter

import (
	"sync"
	"time"

	"github.com/xraph/cadence/id"
	"github.com/xraph/cadence/request"
)

// DefaultCapacity is used when a Buffer is created without a positive
// capacity.
const DefaultCapacity = 128

// Entry records one terminally failed request.
type Entry struct {
	ID          id.DeadLetterID `json:"id"`
	FlightID    id.FlightID     `json:"flight_id"`
	Model       string          `json:"model"`
	RequestType string          `json:"request_type"`
	Request     request.Request `json:"request"`
	Error       string          `json:"error"`
	Attempts    int             `json:"attempts"`
	FailedAt    time.Time       `json:"failed_at"`
}

// Buffer is a fixed-capacity ring of dead-letter entries.
// Safe for concurrent use.
type Buffer struct {
	mu      sync.Mutex
	cap     int
	entries []*Entry
}

// NewBuffer creates a Buffer holding at most capacity entries.
// Non-positive capacities fall back to DefaultCapacity.
func NewBuffer(capacity int) *Buffer {
	if capacity <= 0 {
		capacity = DefaultCapacity
	}
	return &Buffer{cap: capacity}
}

// Push appends an entry, evicting the oldest when the ring is full.
func (b *Buffer) Push(e *Entry) {
	b.mu.Lock()
	defer b.mu.Unlock()

	if len(b.entries) == b.cap {
		copy(b.entries, b.entries[1:])
		b.entries[len(b.entries)-1] = e
		return
	}
	b.entries = append(b.entries, e)
}

// List returns the current entries, oldest first.
func (b *Buffer) List() []*Entry {
	b.mu.Lock()
	defer b.mu.Unlock()

	out := make([]*Entry, len(b.entries))
	copy(out, b.entries)
	return out
}

// Len returns the current number of entries.
func (b *Buffer) Len() int {
	b.mu.Lock()
	defer b.mu.Unlock()
	return len(b.entries)
}

// Purge removes all entries and returns how many were dropped.
func (b *Buffer) Purge() int {
	b.mu.Lock()
	defer b.mu.Unlock()

	n := len(b.entries)
	b.entries = nil
	return n
}
