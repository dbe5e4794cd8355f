package loop_test

import (
	"context"
	"log/slog"
	"sync"
	"testing"
	"time"

	"github.com/xraph/cadence/ext"
	"github.com/xraph/cadence/inflight"
	"github.com/xraph/cadence/interval"
	"github.com/xraph/cadence/lane"
	"github.com/xraph/cadence/loop"
	"github.com/xraph/cadence/request"
)

// recorder captures dispatched request types in arrival order.
type recorder struct {
	mu    sync.Mutex
	types []string
}

func (r *recorder) handle(_ context.Context, req request.Request) error {
	r.mu.Lock()
	r.types = append(r.types, req.Type())
	r.mu.Unlock()
	return nil
}

func (r *recorder) snapshot() []string {
	r.mu.Lock()
	defer r.mu.Unlock()
	out := make([]string, len(r.types))
	copy(out, r.types)
	return out
}

func TestLoop_RunDispatchesInPriorityOrder(t *testing.T) {
	rec := &recorder{}
	tracker := inflight.NewTracker()
	extensions := ext.NewRegistry(slog.Default())
	exec := loop.NewExecutor(rec.handle, tracker, extensions, nil, 1, slog.Default())

	lanes := lane.NewSet()
	lanes.Push(lane.Background, request.Request{"type": "bg"})
	lanes.Push(lane.Retry, request.Request{"type": "retry"})
	lanes.Push(lane.Private, request.Request{"type": "priv"})

	intervals := interval.NewRegistry(5 * time.Millisecond)
	l := loop.New("m", lanes, intervals, exec, slog.Default())

	ctx, cancel := context.WithCancel(context.Background())
	done := make(chan struct{})
	go func() {
		l.Run(ctx)
		close(done)
	}()

	waitFor(t, func() bool { return len(rec.snapshot()) == 3 },
		"loop did not dispatch all three requests")
	cancel()
	select {
	case <-done:
	case <-time.After(time.Second):
		t.Fatal("loop did not stop after cancellation")
	}

	got := rec.snapshot()
	want := []string{"retry", "priv", "bg"}
	for i := range want {
		if got[i] != want[i] {
			t.Fatalf("dispatch order = %v, want %v", got, want)
		}
	}
}

func TestLoop_StopsPromptlyWhileIdle(t *testing.T) {
	tracker := inflight.NewTracker()
	extensions := ext.NewRegistry(slog.Default())
	exec := loop.NewExecutor(
		func(_ context.Context, _ request.Request) error { return nil },
		tracker, extensions, nil, 1, slog.Default(),
	)

	// A long interval: cancellation must interrupt the sleep, not wait
	// for the next cycle.
	intervals := interval.NewRegistry(time.Hour)
	l := loop.New("m", lane.NewSet(), intervals, exec, slog.Default())

	ctx, cancel := context.WithCancel(context.Background())
	done := make(chan struct{})
	go func() {
		l.Run(ctx)
		close(done)
	}()

	time.Sleep(20 * time.Millisecond)
	cancel()

	select {
	case <-done:
	case <-time.After(time.Second):
		t.Fatal("idle loop did not stop after cancellation")
	}
}
