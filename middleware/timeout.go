package middleware

import (
	"context"
	"time"

	"github.com/xraph/cadence/request"
)

// Timeout returns middleware that bounds every handler invocation with
// the given deadline. The scheduler core imposes no timeout of its own;
// compose this when the handler should not be trusted to return. The
// resulting context.DeadlineExceeded surfaces as an ordinary handler
// failure and feeds the retry policy.
func Timeout(d time.Duration) Middleware {
	return func(ctx context.Context, _ string, _ request.Request, next Handler) error {
		if d <= 0 {
			return next(ctx)
		}
		ctx, cancel := context.WithTimeout(ctx, d)
		defer cancel()
		return next(ctx)
	}
}
