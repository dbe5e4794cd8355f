package cadence

import "errors"

var (
	// ErrNilHandler is returned by Start when no handler is supplied.
	ErrNilHandler = errors.New("cadence: nil request handler")

	// ErrAlreadyStarted is returned by Start after a successful Start.
	ErrAlreadyStarted = errors.New("cadence: scheduler already started")

	// ErrStopped is returned by Start after Stop has been called;
	// a stopped scheduler cannot be restarted.
	ErrStopped = errors.New("cadence: scheduler stopped")
)
