package loop

import (
	"context"
	"log/slog"
	"time"

	"golang.org/x/time/rate"

	"github.com/xraph/cadence/interval"
	"github.com/xraph/cadence/lane"
	"github.com/xraph/cadence/request"
)

// Loop is one model's scheduler loop. Producers append to the model's
// lane set from any goroutine; only the Loop pops, so no cross-loop
// locking exists beyond the lanes' own append/pop primitive.
type Loop struct {
	model     string
	lanes     *lane.Set
	intervals *interval.Registry
	exec      *Executor
	logger    *slog.Logger

	// limiter paces cycles: limit 1/interval, burst 1 yields exactly
	// the train-departs cadence — the next cycle starts no sooner than
	// interval after the previous one, idle or not.
	limiter *rate.Limiter
	current time.Duration

	cur cursor
}

// New creates a Loop for model. Call Run in its own goroutine.
func New(model string, lanes *lane.Set, intervals *interval.Registry, exec *Executor, logger *slog.Logger) *Loop {
	if logger == nil {
		logger = slog.Default()
	}
	iv := intervals.Interval(model)
	return &Loop{
		model:     model,
		lanes:     lanes,
		intervals: intervals,
		exec:      exec,
		logger:    logger,
		limiter:   rate.NewLimiter(rate.Every(iv), 1),
		current:   iv,
	}
}

// Run drives cycles until ctx is cancelled. Every cycle departs on the
// model's cadence whether or not a request was ready; the limiter wait
// is the loop's only suspension point, and cancellation interrupts it.
func (l *Loop) Run(ctx context.Context) {
	l.logger.Debug("scheduler loop started",
		slog.String("model", l.model),
		slog.Duration("interval", l.current),
	)

	for {
		// Registry updates apply to future cycles only.
		if iv := l.intervals.Interval(l.model); iv != l.current {
			l.logger.Debug("dispatch interval updated",
				slog.String("model", l.model),
				slog.Duration("from", l.current),
				slog.Duration("to", iv),
			)
			l.current = iv
			l.limiter.SetLimit(rate.Every(iv))
		}

		if err := l.limiter.Wait(ctx); err != nil {
			l.logger.Debug("scheduler loop stopped", slog.String("model", l.model))
			return
		}

		req, cls, ok := l.selectNext()
		if !ok {
			continue // the cycle departs empty
		}

		l.logger.Debug("request selected",
			slog.String("model", l.model),
			slog.String("lane", cls.String()),
			slog.String("request_type", req.Type()),
		)
		l.exec.Dispatch(l.model, l.lanes, req)
	}
}

// selectNext applies the selection precedence: the retry lane is served
// unconditionally with no fairness accounting, then the cursor's
// rotation over the four fair lanes, then background.
func (l *Loop) selectNext() (request.Request, lane.Class, bool) {
	if req, ok := l.lanes.Pop(lane.Retry); ok {
		return req, lane.Retry, true
	}
	if req, cls, ok := l.cur.next(l.lanes); ok {
		return req, cls, true
	}
	if req, ok := l.lanes.Pop(lane.Background); ok {
		return req, lane.Background, true
	}
	return nil, 0, false
}
