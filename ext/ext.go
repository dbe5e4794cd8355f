package ext

import (
	"context"
	"time"

	"github.com/xraph/cadence/lane"
	"github.com/xraph/cadence/request"
)

// Extension is the base interface all extensions must implement.
type Extension interface {
	// Name returns a unique human-readable name for the extension.
	Name() string
}

// RequestEnqueued is called after a request is admitted into a lane.
type RequestEnqueued interface {
	OnRequestEnqueued(ctx context.Context, model string, class lane.Class, req request.Request) error
}

// LaneTrimmed is called when the group-normal trim policy drops
// undispatched requests on an overflowing admission.
type LaneTrimmed interface {
	OnLaneTrimmed(ctx context.Context, model string, dropped int) error
}

// DispatchStarted is called when a flight begins executing the handler.
type DispatchStarted interface {
	OnDispatchStarted(ctx context.Context, model string, req request.Request) error
}

// DispatchCompleted is called after the handler returns successfully.
type DispatchCompleted interface {
	OnDispatchCompleted(ctx context.Context, model string, req request.Request, elapsed time.Duration) error
}

// DispatchRetrying is called when the handler fails and the request is
// re-enqueued onto its model's retry lane. attempt is the value of the
// request's retry counter after incrementing.
type DispatchRetrying interface {
	OnDispatchRetrying(ctx context.Context, model string, req request.Request, attempt int) error
}

// DispatchFailed is called when the handler fails terminally (no more
// retries remaining).
type DispatchFailed interface {
	OnDispatchFailed(ctx context.Context, model string, req request.Request, err error) error
}

// DispatchCancelled is called when a flight is cancelled during
// shutdown. Cancelled flights are never retried.
type DispatchCancelled interface {
	OnDispatchCancelled(ctx context.Context, model string, req request.Request) error
}

// Shutdown is called once the scheduler has finished shutting down.
type Shutdown interface {
	OnShutdown(ctx context.Context) error
}
