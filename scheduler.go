package cadence

import (
	"context"
	"log/slog"
	"sync"
	"time"

	"github.com/xraph/cadence/deadletter"
	"github.com/xraph/cadence/ext"
	"github.com/xraph/cadence/inflight"
	"github.com/xraph/cadence/interval"
	"github.com/xraph/cadence/lane"
	"github.com/xraph/cadence/loop"
	"github.com/xraph/cadence/middleware"
	"github.com/xraph/cadence/request"
)

// Handler is the asynchronous execution callback supplied to Start.
type Handler = request.Handler

// modelRuntime bundles one model's lanes and loop handle.
type modelRuntime struct {
	lanes   *lane.Set
	loop    *loop.Loop
	running bool
}

// Scheduler is the central coordinator: it owns the model → lane-set
// mapping, spins one scheduler loop per model, and tracks every
// dispatched flight for graceful shutdown.
//
// Create one with New and functional options, admit requests through
// the Add* methods (safe before or after Start), and call Stop exactly
// once when done. All methods are safe for concurrent use.
type Scheduler struct {
	config Config
	logger *slog.Logger

	// Collected by options, consumed by New.
	initialIntervals map[string]time.Duration
	pendingExts      []ext.Extension
	mws              []middleware.Middleware

	intervals  *interval.Registry
	tracker    *inflight.Tracker
	extensions *ext.Registry
	deadLetter *deadletter.Buffer

	mu         sync.Mutex
	models     map[string]*modelRuntime
	exec       *loop.Executor
	started    bool
	stopped    bool
	loopCtx    context.Context
	loopCancel context.CancelFunc
	wg         sync.WaitGroup
}

// New creates a Scheduler with the given options.
func New(opts ...Option) (*Scheduler, error) {
	s := &Scheduler{
		config: DefaultConfig(),
		logger: slog.Default(),
		models: make(map[string]*modelRuntime),
	}
	for _, opt := range opts {
		if err := opt(s); err != nil {
			return nil, err
		}
	}

	s.intervals = interval.NewRegistry(s.config.DefaultInterval)
	if s.initialIntervals != nil {
		s.intervals.Set(s.initialIntervals)
	}
	s.tracker = inflight.NewTracker()
	s.extensions = ext.NewRegistry(s.logger)
	for _, e := range s.pendingExts {
		s.extensions.Register(e)
	}
	if s.config.DeadLetterCapacity > 0 {
		s.deadLetter = deadletter.NewBuffer(s.config.DeadLetterCapacity)
	}
	return s, nil
}

// Logger returns the scheduler's logger.
func (s *Scheduler) Logger() *slog.Logger { return s.logger }

// Config returns a copy of the scheduler's configuration.
func (s *Scheduler) Config() Config { return s.config }

// ──────────────────────────────────────────────────
// Admission API
// ──────────────────────────────────────────────────

// AddSuperadminRequest admits urgent operator traffic.
func (s *Scheduler) AddSuperadminRequest(req request.Request, model string) {
	s.add(lane.Superadmin, req, model)
}

// AddPrivateRequest admits direct-conversation traffic.
func (s *Scheduler) AddPrivateRequest(req request.Request, model string) {
	s.add(lane.Private, req, model)
}

// AddAgentIntroRequest admits an agent introduction. Intro traffic
// shares the private lane and its priority.
func (s *Scheduler) AddAgentIntroRequest(req request.Request, model string) {
	s.add(lane.Private, req, model)
}

// AddGroupMentionRequest admits a group message that mentions the agent.
func (s *Scheduler) AddGroupMentionRequest(req request.Request, model string) {
	s.add(lane.GroupMention, req, model)
}

// AddGroupNormalRequest admits ambient group chatter. The group-normal
// trim policy applies: an admission that overflows the lane drops all
// but the most recently admitted items.
func (s *Scheduler) AddGroupNormalRequest(req request.Request, model string) {
	s.add(lane.GroupNormal, req, model)
}

// AddBackgroundRequest admits lowest-priority background work.
func (s *Scheduler) AddBackgroundRequest(req request.Request, model string) {
	s.add(lane.Background, req, model)
}

// add appends to the named lane, lazily creating the model's runtime.
// Admission never blocks and never fails.
func (s *Scheduler) add(cls lane.Class, req request.Request, model string) {
	if model == "" {
		model = DefaultModel
	}
	rt := s.runtime(model)

	dropped := rt.lanes.Push(cls, req)
	if dropped > 0 {
		s.logger.Debug("group-normal lane trimmed",
			slog.String("model", model),
			slog.Int("dropped", dropped),
		)
		s.extensions.EmitLaneTrimmed(context.Background(), model, dropped)
	}
	s.extensions.EmitRequestEnqueued(context.Background(), model, cls, req)
}

// runtime returns the model's runtime, creating it — and, once the
// scheduler is started, its loop — on first admission.
func (s *Scheduler) runtime(model string) *modelRuntime {
	s.mu.Lock()
	defer s.mu.Unlock()

	rt, ok := s.models[model]
	if !ok {
		rt = &modelRuntime{lanes: lane.NewSet()}
		s.models[model] = rt
		s.logger.Info("model queue set created",
			slog.String("model", model),
			slog.Duration("interval", s.intervals.Interval(model)),
		)
	}
	if s.started && !s.stopped && !rt.running {
		s.startLoopLocked(model, rt)
	}
	return rt
}

// startLoopLocked spins the model's scheduler loop. Caller holds s.mu;
// s.exec is set (Start has run).
func (s *Scheduler) startLoopLocked(model string, rt *modelRuntime) {
	rt.loop = loop.New(model, rt.lanes, s.intervals, s.exec, s.logger)
	rt.running = true
	s.wg.Add(1)
	go func() {
		defer s.wg.Done()
		rt.loop.Run(s.loopCtx)
	}()
}

// ──────────────────────────────────────────────────
// Intervals
// ──────────────────────────────────────────────────

// UpdateModelIntervals replaces the model → cadence mapping. Safe to
// call at any time; running loops pick the new cadence up on their
// next cycle.
func (s *Scheduler) UpdateModelIntervals(intervals map[string]time.Duration) {
	s.intervals.Set(intervals)
}

// Interval returns the dispatch cadence for model.
func (s *Scheduler) Interval(model string) time.Duration {
	return s.intervals.Interval(model)
}

// ──────────────────────────────────────────────────
// Lifecycle
// ──────────────────────────────────────────────────

// Start supplies the request handler and begins dispatching for
// already-seen and future models. It returns immediately; loops run in
// their own goroutines.
func (s *Scheduler) Start(handler Handler) error {
	if handler == nil {
		return ErrNilHandler
	}

	s.mu.Lock()
	defer s.mu.Unlock()

	if s.stopped {
		return ErrStopped
	}
	if s.started {
		return ErrAlreadyStarted
	}
	s.started = true

	s.exec = loop.NewExecutor(
		handler, s.tracker, s.extensions, s.deadLetter,
		s.config.MaxRetries, s.logger, s.mws...,
	)
	s.loopCtx, s.loopCancel = context.WithCancel(context.Background())
	for model, rt := range s.models {
		s.startLoopLocked(model, rt)
	}

	s.logger.Info("scheduler started",
		slog.Int("models", len(s.models)),
		slog.Int("max_retries", s.config.MaxRetries),
	)
	return nil
}

// Stop shuts the scheduler down: it cancels every scheduler loop,
// waits for them to unwind, then cancels all in-flight dispatches and
// waits for the in-flight set to drain. Lane contents never selected
// are discarded. Safe to call more than once; later calls return
// immediately.
func (s *Scheduler) Stop(ctx context.Context) error {
	s.mu.Lock()
	if !s.started || s.stopped {
		s.mu.Unlock()
		return nil
	}
	s.stopped = true
	cancelLoops := s.loopCancel
	s.mu.Unlock()

	if _, hasDeadline := ctx.Deadline(); !hasDeadline && s.config.ShutdownTimeout > 0 {
		var cancel context.CancelFunc
		ctx, cancel = context.WithTimeout(ctx, s.config.ShutdownTimeout)
		defer cancel()
	}

	s.logger.Info("scheduler stopping")

	// Loops first: each is interrupted at its sleep point, so no new
	// flights spawn after this returns.
	cancelLoops()
	loopsDone := make(chan struct{})
	go func() {
		s.wg.Wait()
		close(loopsDone)
	}()
	select {
	case <-loopsDone:
	case <-ctx.Done():
		return ctx.Err()
	}

	// Then the flights that were already in the air.
	if n := s.tracker.CancelAll(); n > 0 {
		s.logger.Info("cancelling in-flight dispatches", slog.Int("count", n))
	}
	if err := s.tracker.Wait(ctx); err != nil {
		return err
	}

	stats := s.tracker.Stats()
	s.logger.Info("scheduler stopped",
		slog.Uint64("completed", stats.Completed),
		slog.Uint64("retried", stats.Retried),
		slog.Uint64("failed", stats.Failed),
		slog.Uint64("cancelled", stats.Cancelled),
	)
	s.extensions.EmitShutdown(ctx)
	return nil
}

// ──────────────────────────────────────────────────
// Introspection
// ──────────────────────────────────────────────────

// Stats is a point-in-time snapshot of scheduler activity.
type Stats struct {
	// Models is the number of distinct model names seen.
	Models int
	// InFlight is the number of dispatches not yet terminal.
	InFlight int
	// Flights tallies terminal flight outcomes since creation.
	Flights inflight.Stats
}

// Stats returns a snapshot of scheduler activity.
func (s *Scheduler) Stats() Stats {
	s.mu.Lock()
	models := len(s.models)
	s.mu.Unlock()

	return Stats{
		Models:   models,
		InFlight: s.tracker.Len(),
		Flights:  s.tracker.Stats(),
	}
}

// DeadLetters returns the captured terminally failed requests, oldest
// first, or nil when capture is disabled.
func (s *Scheduler) DeadLetters() []*deadletter.Entry {
	if s.deadLetter == nil {
		return nil
	}
	return s.deadLetter.List()
}
