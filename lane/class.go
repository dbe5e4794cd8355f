package lane

// Class identifies one of a model's six priority lanes.
type Class int

const (
	// Retry has absolute priority: a non-empty retry lane is served
	// every cycle, bypassing fairness accounting.
	Retry Class = iota
	// Superadmin carries urgent operator traffic.
	Superadmin
	// Private carries direct-conversation traffic (and agent intros).
	Private
	// GroupMention carries group messages that mention the agent.
	GroupMention
	// GroupNormal carries ambient group chatter; size-capped by the
	// trim policy.
	GroupNormal
	// Background has the lowest priority, served only when every other
	// lane is empty.
	Background

	numClasses = int(Background) + 1
)

// String returns the lane name used in logs and events.
func (c Class) String() string {
	switch c {
	case Retry:
		return "retry"
	case Superadmin:
		return "superadmin"
	case Private:
		return "private"
	case GroupMention:
		return "group-mention"
	case GroupNormal:
		return "group-normal"
	case Background:
		return "background"
	default:
		return "unknown"
	}
}
