package redisrelay

// Option configures an Extension.
type Option func(*Extension)

// WithChannel overrides the Pub/Sub channel events are published to.
func WithChannel(channel string) Option {
	return func(h *Extension) {
		if channel != "" {
			h.channel = channel
		}
	}
}

// WithEvents restricts the extension to publish only the listed event
// types. By default all event types are published. Unknown types are
// silently ignored.
func WithEvents(events ...string) Option {
	return func(h *Extension) {
		h.enabled = make(map[string]bool, len(events))
		for _, e := range events {
			h.enabled[e] = true
		}
	}
}
