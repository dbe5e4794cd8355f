// Package interval maps model names to their dispatch cadence.
//
// The registry never returns an error: invalid configuration degrades
// to the process-wide default cadence so a bad config entry can slow a
// model down to the default pace but never stall it.
package interval

import (
	"sync"
	"time"
)

// Default is the process-wide fallback cadence used when a registry is
// constructed without an explicit default.
const Default = 5 * time.Second

// Registry maps model names to a positive dispatch cadence. Safe for
// concurrent use; loops read it every cycle while configuration
// updates replace the mapping.
type Registry struct {
	def time.Duration

	mu        sync.RWMutex
	intervals map[string]time.Duration
}

// NewRegistry creates a Registry with the given default cadence.
// A non-positive default falls back to the package Default.
func NewRegistry(def time.Duration) *Registry {
	if def <= 0 {
		def = Default
	}
	return &Registry{
		def:       def,
		intervals: make(map[string]time.Duration),
	}
}

// Set replaces the whole mapping. Non-positive cadences are coerced to
// the registry default; unrecognized model names are simply added.
// Running loops pick the new values up on their next cycle.
func (r *Registry) Set(intervals map[string]time.Duration) {
	next := make(map[string]time.Duration, len(intervals))
	for model, iv := range intervals {
		if iv <= 0 {
			iv = r.def
		}
		next[model] = iv
	}

	r.mu.Lock()
	r.intervals = next
	r.mu.Unlock()
}

// Interval returns the cadence for model, or the default when the
// model has no explicit entry.
func (r *Registry) Interval(model string) time.Duration {
	r.mu.RLock()
	defer r.mu.RUnlock()

	if iv, ok := r.intervals[model]; ok {
		return iv
	}
	return r.def
}

// Default returns the registry's fallback cadence.
func (r *Registry) Default() time.Duration { return r.def }
