// Package ext defines the extension system for Cadence.
//
// Extensions are notified of scheduler lifecycle events and can react
// to them — recording metrics, publishing events, writing audit logs.
// Each lifecycle hook is a separate interface so extensions opt in only
// to the events they care about.
//
// # Implementing an Extension
//
//	type MyExtension struct{}
//
//	func (e *MyExtension) Name() string { return "my-extension" }
//
//	// Opt in to specific hooks by implementing their interfaces.
//	func (e *MyExtension) OnDispatchCompleted(ctx context.Context, model string, req request.Request, elapsed time.Duration) error {
//	    log.Printf("dispatch to %s completed in %s", model, elapsed)
//	    return nil
//	}
//
// # Lifecycle Hooks
//
//   - [RequestEnqueued] — a request was admitted into a lane
//   - [LaneTrimmed] — the group-normal trim policy dropped old requests
//   - [DispatchStarted] — a flight began executing the handler
//   - [DispatchCompleted] — the handler returned successfully
//   - [DispatchRetrying] — the handler failed and the request was
//     re-enqueued onto the retry lane
//   - [DispatchFailed] — the handler failed with no retries remaining
//   - [DispatchCancelled] — the flight was cancelled during shutdown
//   - [Shutdown] — the scheduler finished shutting down
//
// The [Registry] fans out each event to all registered extensions that
// implement the corresponding hook interface. Hook errors are logged
// and never propagated.
package ext
