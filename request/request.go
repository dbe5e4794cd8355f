// Package request defines the opaque request record exchanged between
// producers, the scheduler, and the external request handler.
//
// A Request is owned by its producer; the scheduler reads only the
// "type" discriminator (for logging) and manages its own retry counter
// field. Everything else passes through untouched.
package request

import "context"

// Reserved field names. Producers should not write RetryCountField;
// the scheduler owns it.
const (
	// TypeField holds the request's discriminator, used for logging only.
	TypeField = "type"

	// RetryCountField holds the scheduler-managed retry counter.
	RetryCountField = "__retry_count"
)

// Request is a producer-owned record dispatched to a model backend.
// Each request is held by exactly one lane or flight at a time, so it
// is never mutated concurrently and needs no internal locking.
type Request map[string]any

// Handler is the asynchronous execution callback supplied to
// Scheduler.Start. It is the scheduler's only integration point with
// the surrounding system: prompt assembly, network I/O, and reply
// delivery all happen inside it. A non-nil error feeds the retry
// policy; returning ctx.Err() after cancellation marks the flight as
// cancelled rather than failed.
type Handler func(ctx context.Context, req Request) error

// Type returns the "type" field, or "" when absent or not a string.
func (r Request) Type() string {
	t, _ := r[TypeField].(string)
	return t
}

// RetryCount returns the scheduler-managed retry counter, 0 when unset.
func (r Request) RetryCount() int {
	n, _ := r[RetryCountField].(int)
	return n
}

// SetRetryCount overwrites the scheduler-managed retry counter.
func (r Request) SetRetryCount(n int) {
	r[RetryCountField] = n
}
