package middleware

import (
	"context"
	"fmt"
	"log/slog"
	"runtime/debug"

	"github.com/xraph/cadence/request"
)

// Recover returns middleware that recovers from panics in the handler
// chain. Panics are converted to errors (feeding the retry policy)
// and logged with a stack trace.
func Recover(logger *slog.Logger) Middleware {
	return func(ctx context.Context, model string, req request.Request, next Handler) (retErr error) {
		defer func() {
			if r := recover(); r != nil {
				stack := string(debug.Stack())
				logger.Error("request handler panicked",
					slog.String("model", model),
					slog.String("request_type", req.Type()),
					slog.Any("panic", r),
					slog.String("stack", stack),
				)
				retErr = fmt.Errorf("panic dispatching to %s: %v", model, r)
			}
		}()
		return next(ctx)
	}
}
