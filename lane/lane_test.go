package lane_test

import (
	"fmt"
	"sync"
	"testing"

	"github.com/xraph/cadence/lane"
	"github.com/xraph/cadence/request"
)

func numbered(n int) request.Request {
	return request.Request{"type": "test", "seq": n}
}

func seq(t *testing.T, req request.Request) int {
	t.Helper()
	n, ok := req["seq"].(int)
	if !ok {
		t.Fatalf("request has no seq field: %v", req)
	}
	return n
}

func TestLane_FIFO(t *testing.T) {
	var l lane.Lane
	for i := range 5 {
		l.Push(numbered(i))
	}
	if l.Len() != 5 {
		t.Fatalf("Len() = %d, want 5", l.Len())
	}
	for i := range 5 {
		req, ok := l.Pop()
		if !ok {
			t.Fatalf("Pop() #%d: lane unexpectedly empty", i)
		}
		if got := seq(t, req); got != i {
			t.Errorf("Pop() #%d seq = %d, want %d", i, got, i)
		}
	}
	if _, ok := l.Pop(); ok {
		t.Error("Pop() on drained lane returned ok")
	}
}

func TestLane_ConcurrentProducers(t *testing.T) {
	var l lane.Lane
	var wg sync.WaitGroup
	const producers, perProducer = 8, 50

	for p := range producers {
		wg.Add(1)
		go func(p int) {
			defer wg.Done()
			for i := range perProducer {
				l.Push(request.Request{"type": fmt.Sprintf("p%d", p), "seq": i})
			}
		}(p)
	}
	wg.Wait()

	if got := l.Len(); got != producers*perProducer {
		t.Errorf("Len() = %d, want %d", got, producers*perProducer)
	}
}

func TestLane_PushCapped(t *testing.T) {
	var l lane.Lane

	// The first limit pushes are admitted untouched.
	for i := range 10 {
		if dropped := l.PushCapped(numbered(i), 10, 2); dropped != 0 {
			t.Fatalf("push #%d dropped %d, want 0", i, dropped)
		}
	}

	// The overflowing push trims to the 2 most recent.
	dropped := l.PushCapped(numbered(10), 10, 2)
	if dropped != 9 {
		t.Errorf("overflow push dropped %d, want 9", dropped)
	}
	if l.Len() != 2 {
		t.Fatalf("Len() after trim = %d, want 2", l.Len())
	}

	first, _ := l.Pop()
	second, _ := l.Pop()
	if seq(t, first) != 9 || seq(t, second) != 10 {
		t.Errorf("kept seqs = %d,%d, want 9,10", seq(t, first), seq(t, second))
	}
}

func TestLane_PushCappedNeverExceedsLimit(t *testing.T) {
	var l lane.Lane
	for i := range 50 {
		l.PushCapped(numbered(i), 10, 2)
		if got := l.Len(); got > 10 {
			t.Fatalf("after push #%d Len() = %d, exceeds limit 10", i, got)
		}
	}
}
