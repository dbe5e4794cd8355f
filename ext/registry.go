package ext

import (
	"context"
	"log/slog"
	"time"

	"github.com/xraph/cadence/lane"
	"github.com/xraph/cadence/request"
)

// Named entry types pair a hook implementation with the extension name
// captured at registration time. This avoids type-asserting back to
// Extension inside the emit methods.
type requestEnqueuedEntry struct {
	name string
	hook RequestEnqueued
}

type laneTrimmedEntry struct {
	name string
	hook LaneTrimmed
}

type dispatchStartedEntry struct {
	name string
	hook DispatchStarted
}

type dispatchCompletedEntry struct {
	name string
	hook DispatchCompleted
}

type dispatchRetryingEntry struct {
	name string
	hook DispatchRetrying
}

type dispatchFailedEntry struct {
	name string
	hook DispatchFailed
}

type dispatchCancelledEntry struct {
	name string
	hook DispatchCancelled
}

type shutdownEntry struct {
	name string
	hook Shutdown
}

// Registry fans lifecycle events out to registered extensions.
// Register all extensions before the scheduler starts; Registry is not
// safe for concurrent registration.
type Registry struct {
	logger     *slog.Logger
	extensions []Extension

	requestEnqueued   []requestEnqueuedEntry
	laneTrimmed       []laneTrimmedEntry
	dispatchStarted   []dispatchStartedEntry
	dispatchCompleted []dispatchCompletedEntry
	dispatchRetrying  []dispatchRetryingEntry
	dispatchFailed    []dispatchFailedEntry
	dispatchCancelled []dispatchCancelledEntry
	shutdown          []shutdownEntry
}

// NewRegistry creates an extension registry with the given logger.
func NewRegistry(logger *slog.Logger) *Registry {
	if logger == nil {
		logger = slog.Default()
	}
	return &Registry{logger: logger}
}

// Register adds an extension and type-asserts it into all applicable
// hook caches. Extensions are notified in registration order.
func (r *Registry) Register(e Extension) {
	r.extensions = append(r.extensions, e)
	name := e.Name()

	if h, ok := e.(RequestEnqueued); ok {
		r.requestEnqueued = append(r.requestEnqueued, requestEnqueuedEntry{name, h})
	}
	if h, ok := e.(LaneTrimmed); ok {
		r.laneTrimmed = append(r.laneTrimmed, laneTrimmedEntry{name, h})
	}
	if h, ok := e.(DispatchStarted); ok {
		r.dispatchStarted = append(r.dispatchStarted, dispatchStartedEntry{name, h})
	}
	if h, ok := e.(DispatchCompleted); ok {
		r.dispatchCompleted = append(r.dispatchCompleted, dispatchCompletedEntry{name, h})
	}
	if h, ok := e.(DispatchRetrying); ok {
		r.dispatchRetrying = append(r.dispatchRetrying, dispatchRetryingEntry{name, h})
	}
	if h, ok := e.(DispatchFailed); ok {
		r.dispatchFailed = append(r.dispatchFailed, dispatchFailedEntry{name, h})
	}
	if h, ok := e.(DispatchCancelled); ok {
		r.dispatchCancelled = append(r.dispatchCancelled, dispatchCancelledEntry{name, h})
	}
	if h, ok := e.(Shutdown); ok {
		r.shutdown = append(r.shutdown, shutdownEntry{name, h})
	}
}

// Extensions returns all registered extensions.
func (r *Registry) Extensions() []Extension { return r.extensions }

// EmitRequestEnqueued notifies all extensions that implement RequestEnqueued.
func (r *Registry) EmitRequestEnqueued(ctx context.Context, model string, class lane.Class, req request.Request) {
	for _, e := range r.requestEnqueued {
		if err := e.hook.OnRequestEnqueued(ctx, model, class, req); err != nil {
			r.logHookError("OnRequestEnqueued", e.name, err)
		}
	}
}

// EmitLaneTrimmed notifies all extensions that implement LaneTrimmed.
func (r *Registry) EmitLaneTrimmed(ctx context.Context, model string, dropped int) {
	for _, e := range r.laneTrimmed {
		if err := e.hook.OnLaneTrimmed(ctx, model, dropped); err != nil {
			r.logHookError("OnLaneTrimmed", e.name, err)
		}
	}
}

// EmitDispatchStarted notifies all extensions that implement DispatchStarted.
func (r *Registry) EmitDispatchStarted(ctx context.Context, model string, req request.Request) {
	for _, e := range r.dispatchStarted {
		if err := e.hook.OnDispatchStarted(ctx, model, req); err != nil {
			r.logHookError("OnDispatchStarted", e.name, err)
		}
	}
}

// EmitDispatchCompleted notifies all extensions that implement DispatchCompleted.
func (r *Registry) EmitDispatchCompleted(ctx context.Context, model string, req request.Request, elapsed time.Duration) {
	for _, e := range r.dispatchCompleted {
		if err := e.hook.OnDispatchCompleted(ctx, model, req, elapsed); err != nil {
			r.logHookError("OnDispatchCompleted", e.name, err)
		}
	}
}

// EmitDispatchRetrying notifies all extensions that implement DispatchRetrying.
func (r *Registry) EmitDispatchRetrying(ctx context.Context, model string, req request.Request, attempt int) {
	for _, e := range r.dispatchRetrying {
		if err := e.hook.OnDispatchRetrying(ctx, model, req, attempt); err != nil {
			r.logHookError("OnDispatchRetrying", e.name, err)
		}
	}
}

// EmitDispatchFailed notifies all extensions that implement DispatchFailed.
func (r *Registry) EmitDispatchFailed(ctx context.Context, model string, req request.Request, dispatchErr error) {
	for _, e := range r.dispatchFailed {
		if err := e.hook.OnDispatchFailed(ctx, model, req, dispatchErr); err != nil {
			r.logHookError("OnDispatchFailed", e.name, err)
		}
	}
}

// EmitDispatchCancelled notifies all extensions that implement DispatchCancelled.
func (r *Registry) EmitDispatchCancelled(ctx context.Context, model string, req request.Request) {
	for _, e := range r.dispatchCancelled {
		if err := e.hook.OnDispatchCancelled(ctx, model, req); err != nil {
			r.logHookError("OnDispatchCancelled", e.name, err)
		}
	}
}

// EmitShutdown notifies all extensions that implement Shutdown.
func (r *Registry) EmitShutdown(ctx context.Context) {
	for _, e := range r.shutdown {
		if err := e.hook.OnShutdown(ctx); err != nil {
			r.logHookError("OnShutdown", e.name, err)
		}
	}
}

// logHookError logs a warning when a lifecycle hook returns an error.
// Errors from hooks are never propagated — they must not block dispatch.
func (r *Registry) logHookError(hook, extName string, err error) {
	r.logger.Warn("extension hook error",
		slog.String("hook", hook),
		slog.String("extension", extName),
		slog.String("error", err.Error()),
	)
}
