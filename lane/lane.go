package lane

import (
	"sync"

	"github.com/xraph/cadence/request"
)

// Lane is an unbounded concurrent FIFO of requests. Multiple producers
// may push; a single consumer pops.
type Lane struct {
	mu    sync.Mutex
	items []request.Request
}

// Push appends a request to the tail.
func (l *Lane) Push(req request.Request) {
	l.mu.Lock()
	l.items = append(l.items, req)
	l.mu.Unlock()
}

// PushCapped appends a request and then, if the lane holds more than
// limit items, trims it to the keep most recently admitted (relative
// order preserved). It returns the number of requests dropped.
func (l *Lane) PushCapped(req request.Request, limit, keep int) int {
	l.mu.Lock()
	defer l.mu.Unlock()

	l.items = append(l.items, req)
	if len(l.items) <= limit {
		return 0
	}

	dropped := len(l.items) - keep
	kept := make([]request.Request, keep)
	copy(kept, l.items[len(l.items)-keep:])
	l.items = kept
	return dropped
}

// Pop removes and returns the head, or false when the lane is empty.
func (l *Lane) Pop() (request.Request, bool) {
	l.mu.Lock()
	defer l.mu.Unlock()

	if len(l.items) == 0 {
		return nil, false
	}
	req := l.items[0]
	l.items[0] = nil // release the head for GC
	l.items = l.items[1:]
	return req, true
}

// Len returns the current number of queued requests.
func (l *Lane) Len() int {
	l.mu.Lock()
	defer l.mu.Unlock()
	return len(l.items)
}
