package cadence

import (
	"fmt"
	"log/slog"
	"time"

	"github.com/xraph/cadence/ext"
	"github.com/xraph/cadence/middleware"
)

// Option configures a Scheduler.
type Option func(*Scheduler) error

// WithMaxRetries sets how many times a failed dispatch is re-attempted
// via the retry lane before being dropped.
func WithMaxRetries(n int) Option {
	return func(s *Scheduler) error {
		if n < 0 {
			return fmt.Errorf("cadence: negative max retries %d", n)
		}
		s.config.MaxRetries = n
		return nil
	}
}

// WithDefaultInterval sets the cadence for models with no explicit
// interval entry. Non-positive values fall back to the package default.
func WithDefaultInterval(d time.Duration) Option {
	return func(s *Scheduler) error {
		s.config.DefaultInterval = d
		return nil
	}
}

// WithIntervals sets the initial model → cadence mapping. Equivalent to
// calling UpdateModelIntervals before any loop starts.
func WithIntervals(intervals map[string]time.Duration) Option {
	return func(s *Scheduler) error {
		s.initialIntervals = intervals
		return nil
	}
}

// WithShutdownTimeout bounds Stop when the caller's context carries no
// deadline.
func WithShutdownTimeout(d time.Duration) Option {
	return func(s *Scheduler) error {
		s.config.ShutdownTimeout = d
		return nil
	}
}

// WithLogger sets the structured logger for the scheduler.
func WithLogger(l *slog.Logger) Option {
	return func(s *Scheduler) error {
		if l == nil {
			return fmt.Errorf("cadence: nil logger")
		}
		s.logger = l
		return nil
	}
}

// WithExtension registers a lifecycle extension.
func WithExtension(e ext.Extension) Option {
	return func(s *Scheduler) error {
		s.pendingExts = append(s.pendingExts, e)
		return nil
	}
}

// WithMiddleware appends middleware to the dispatch chain. Middleware
// wrap every handler invocation, outermost first in call order.
func WithMiddleware(m middleware.Middleware) Option {
	return func(s *Scheduler) error {
		s.mws = append(s.mws, m)
		return nil
	}
}

// WithDeadLetter enables the in-memory capture of terminally failed
// requests, holding at most capacity entries.
func WithDeadLetter(capacity int) Option {
	return func(s *Scheduler) error {
		if capacity <= 0 {
			return fmt.Errorf("cadence: non-positive dead letter capacity %d", capacity)
		}
		s.config.DeadLetterCapacity = capacity
		return nil
	}
}
