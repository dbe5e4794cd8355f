package redisrelay

import "time"

// Scheduler lifecycle event types. Each constant maps to one ext
// lifecycle hook and is used as the Event.Type of the published
// message.
const (
	EventRequestEnqueued   = "cadence.request.enqueued"
	EventLaneTrimmed       = "cadence.lane.trimmed"
	EventDispatchStarted   = "cadence.dispatch.started"
	EventDispatchCompleted = "cadence.dispatch.completed"
	EventDispatchRetrying  = "cadence.dispatch.retrying"
	EventDispatchFailed    = "cadence.dispatch.failed"
	EventDispatchCancelled = "cadence.dispatch.cancelled"
	EventShutdown          = "cadence.scheduler.shutdown"
)

// AllEvents returns every lifecycle event type, in emission-source
// order. Useful with WithEvents when building a filter from a base set.
func AllEvents() []string {
	return []string{
		EventRequestEnqueued,
		EventLaneTrimmed,
		EventDispatchStarted,
		EventDispatchCompleted,
		EventDispatchRetrying,
		EventDispatchFailed,
		EventDispatchCancelled,
		EventShutdown,
	}
}

// Event is the JSON envelope published to the Redis channel. Fields
// that do not apply to a given event type are omitted.
type Event struct {
	Type      string    `json:"type"`
	Timestamp time.Time `json:"timestamp"`

	Model       string `json:"model,omitempty"`
	Lane        string `json:"lane,omitempty"`
	RequestType string `json:"request_type,omitempty"`
	RetryCount  int    `json:"retry_count,omitempty"`

	// Dropped is set on lane-trimmed events.
	Dropped int `json:"dropped,omitempty"`
	// Attempt is set on retrying events.
	Attempt int `json:"attempt,omitempty"`
	// ElapsedMs is set on completed events.
	ElapsedMs int64 `json:"elapsed_ms,omitempty"`
	// Error is set on failed events.
	Error string `json:"error,omitempty"`
}
