package middleware

import (
	"context"
	"log/slog"
	"time"

	"github.com/xraph/cadence/request"
)

// Logging returns middleware that logs dispatch start and completion.
func Logging(logger *slog.Logger) Middleware {
	return func(ctx context.Context, model string, req request.Request, next Handler) error {
		logger.Info("dispatch started",
			slog.String("model", model),
			slog.String("request_type", req.Type()),
			slog.Int("retry_count", req.RetryCount()),
		)

		start := time.Now()
		err := next(ctx)
		elapsed := time.Since(start)

		if err != nil {
			logger.Error("dispatch failed",
				slog.String("model", model),
				slog.String("request_type", req.Type()),
				slog.Duration("elapsed", elapsed),
				slog.String("error", err.Error()),
			)
		} else {
			logger.Info("dispatch completed",
				slog.String("model", model),
				slog.String("request_type", req.Type()),
				slog.Duration("elapsed", elapsed),
			)
		}

		return err
	}
}
