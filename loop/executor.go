package loop

import (
	"context"
	"errors"
	"log/slog"
	"time"

	"github.com/xraph/cadence/deadletter"
	"github.com/xraph/cadence/ext"
	"github.com/xraph/cadence/id"
	"github.com/xraph/cadence/inflight"
	"github.com/xraph/cadence/lane"
	"github.com/xraph/cadence/middleware"
	"github.com/xraph/cadence/request"
)

// Executor runs selected requests as tracked, fire-and-forget flights:
// middleware chain plus handler, then the retry policy. One Executor
// is shared by every model's loop.
type Executor struct {
	handler    request.Handler
	mw         middleware.Middleware
	tracker    *inflight.Tracker
	extensions *ext.Registry
	deadLetter *deadletter.Buffer // nil disables capture
	maxRetries int
	logger     *slog.Logger
}

// NewExecutor creates an Executor. deadLetter may be nil. A request is
// attempted at most maxRetries+1 times before being dropped.
func NewExecutor(
	handler request.Handler,
	tracker *inflight.Tracker,
	extensions *ext.Registry,
	deadLetter *deadletter.Buffer,
	maxRetries int,
	logger *slog.Logger,
	mws ...middleware.Middleware,
) *Executor {
	if logger == nil {
		logger = slog.Default()
	}
	return &Executor{
		handler:    handler,
		tracker:    tracker,
		extensions: extensions,
		deadLetter: deadLetter,
		maxRetries: maxRetries,
		logger:     logger,
		mw:         middleware.Chain(mws...),
	}
}

// Dispatch spawns a flight for req and returns as soon as it is
// registered in the tracker. The loop never observes the outcome; the
// flight feeds the retry lane itself on failure.
func (e *Executor) Dispatch(model string, lanes *lane.Set, req request.Request) {
	fctx, cancel := context.WithCancel(context.Background())
	fid := id.NewFlightID()
	e.tracker.Add(fid, cancel)

	go func() {
		defer cancel()

		e.extensions.EmitDispatchStarted(fctx, model, req)
		start := time.Now()
		err := e.mw(fctx, model, req, func(ctx context.Context) error {
			return e.handler(ctx, req)
		})
		e.finish(fctx, fid, model, lanes, req, err, time.Since(start))
	}()
}

// finish classifies the flight's outcome and applies the retry policy.
func (e *Executor) finish(
	fctx context.Context,
	fid id.FlightID,
	model string,
	lanes *lane.Set,
	req request.Request,
	err error,
	elapsed time.Duration,
) {
	switch {
	case err == nil:
		e.extensions.EmitDispatchCompleted(fctx, model, req, elapsed)
		e.tracker.Finish(fid, inflight.Completed)

	case errors.Is(err, context.Canceled) && fctx.Err() != nil:
		// Shutdown cancellation: a distinct terminal outcome, never
		// retried. The flight context is already dead, so hooks get a
		// fresh one.
		e.logger.Info("dispatch cancelled",
			slog.String("model", model),
			slog.String("request_type", req.Type()),
			slog.String("flight_id", fid.String()),
		)
		e.extensions.EmitDispatchCancelled(context.Background(), model, req)
		e.tracker.Finish(fid, inflight.Cancelled)

	default:
		e.retryOrDrop(fctx, fid, model, lanes, req, err)
	}
}

// retryOrDrop re-enqueues the request onto its model's retry lane, or
// drops it once the retry budget is exhausted.
func (e *Executor) retryOrDrop(
	fctx context.Context,
	fid id.FlightID,
	model string,
	lanes *lane.Set,
	req request.Request,
	dispatchErr error,
) {
	attempt := req.RetryCount()
	if attempt < e.maxRetries {
		req.SetRetryCount(attempt + 1)
		lanes.Push(lane.Retry, req)

		e.logger.Info("dispatch scheduled for retry",
			slog.String("model", model),
			slog.String("request_type", req.Type()),
			slog.Int("attempt", attempt+1),
			slog.Int("max_retries", e.maxRetries),
			slog.String("error", dispatchErr.Error()),
		)
		e.extensions.EmitDispatchRetrying(fctx, model, req, attempt+1)
		e.tracker.Finish(fid, inflight.Retried)
		return
	}

	e.logger.Warn("dispatch failed terminally, dropping request",
		slog.String("model", model),
		slog.String("request_type", req.Type()),
		slog.Int("retry_count", attempt),
		slog.String("error", dispatchErr.Error()),
	)
	if e.deadLetter != nil {
		e.deadLetter.Push(&deadletter.Entry{
			ID:          id.NewDeadLetterID(),
			FlightID:    fid,
			Model:       model,
			RequestType: req.Type(),
			Request:     req,
			Error:       dispatchErr.Error(),
			Attempts:    attempt + 1,
			FailedAt:    time.Now().UTC(),
		})
	}
	e.extensions.EmitDispatchFailed(fctx, model, req, dispatchErr)
	e.tracker.Finish(fid, inflight.Failed)
}
