// Package middleware provides composable middleware for flight
// execution. Middleware wraps handler calls synchronously and can
// modify execution (recover from panics, log, record metrics, add
// tracing, enforce deadlines).
package middleware

import (
	"context"

	"github.com/xraph/cadence/request"
)

// Handler is the terminal function that invokes the request handler.
type Handler func(ctx context.Context) error

// Middleware wraps a Handler with cross-cutting logic. It receives the
// flight context, the target model, the request being dispatched, and
// the next handler to call. Middleware MUST call next to continue the
// chain (unless short-circuiting on error).
type Middleware func(ctx context.Context, model string, req request.Request, next Handler) error

// Chain composes multiple middleware into a single Middleware.
// Middleware are applied right-to-left: the first middleware in the
// list is the outermost wrapper.
//
// Example: Chain(logging, recover, metrics) executes as:
//
//	logging → recover → metrics → handler
func Chain(mws ...Middleware) Middleware {
	return func(ctx context.Context, model string, req request.Request, next Handler) error {
		// Build the chain from the end backwards.
		h := next
		for i := len(mws) - 1; i >= 0; i-- {
			mw := mws[i]
			prev := h
			h = func(ctx context.Context) error {
				return mw(ctx, model, req, prev)
			}
		}
		return h(ctx)
	}
}
