package loop

import (
	"github.com/xraph/cadence/lane"
	"github.com/xraph/cadence/request"
)

// fairLanes is the rotation order serviced by the fairness cursor.
// Retry and background sit outside the rotation: retry preempts it,
// background backstops it.
var fairLanes = [...]lane.Class{
	lane.Superadmin,
	lane.Private,
	lane.GroupMention,
	lane.GroupNormal,
}

// maxConsecutivePicks is how many cycles in a row one lane may be
// served before the cursor advances past it. Deliberately 2, not 1:
// downstream interleaving depends on this exact cadence.
const maxConsecutivePicks = 2

// cursor is the per-model fairness state: the lane index currently
// being serviced and its consecutive-pick count. Owned by a single
// Loop; not safe for concurrent use.
type cursor struct {
	idx   int
	picks int
}

// next pops the head of the first non-empty fair lane at or after the
// cursor position, wrapping. Landing on a different lane restarts the
// consecutive-pick count; after maxConsecutivePicks from the same lane
// the cursor advances past it.
func (c *cursor) next(s *lane.Set) (request.Request, lane.Class, bool) {
	for k := range len(fairLanes) {
		j := (c.idx + k) % len(fairLanes)
		req, ok := s.Pop(fairLanes[j])
		if !ok {
			continue
		}

		if j != c.idx {
			c.idx = j
			c.picks = 0
		}
		c.picks++
		if c.picks >= maxConsecutivePicks {
			c.idx = (j + 1) % len(fairLanes)
			c.picks = 0
		}
		return req, fairLanes[j], true
	}
	return nil, 0, false
}
