package lane

import "github.com/xraph/cadence/request"

// Trim policy constants for the group-normal lane. When an admission
// leaves the lane holding more than GroupNormalLimit items it is
// trimmed to the GroupNormalKeep most recently admitted.
const (
	GroupNormalLimit = 10
	GroupNormalKeep  = 2
)

// Set bundles the six lanes for one model. Created once per model name
// on first admission and owned by that model's scheduler loop for the
// process lifetime.
type Set struct {
	lanes [numClasses]Lane
}

// NewSet returns an empty lane set.
func NewSet() *Set {
	return &Set{}
}

// Push appends a request to the named lane and returns how many older
// requests were dropped by the group-normal trim policy (always 0 for
// every other lane).
func (s *Set) Push(c Class, req request.Request) int {
	if c == GroupNormal {
		return s.lanes[c].PushCapped(req, GroupNormalLimit, GroupNormalKeep)
	}
	s.lanes[c].Push(req)
	return 0
}

// Pop removes and returns the head of the named lane.
func (s *Set) Pop(c Class) (request.Request, bool) {
	return s.lanes[c].Pop()
}

// Len returns the current depth of the named lane.
func (s *Set) Len(c Class) int {
	return s.lanes[c].Len()
}
