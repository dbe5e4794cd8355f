package cadence

import (
	"time"

	"github.com/xraph/cadence/interval"
)

// DefaultModel is the model name used when an admission call passes an
// empty model name.
const DefaultModel = "default"

// Config holds configuration for the Scheduler.
type Config struct {
	// MaxRetries is the number of re-dispatch attempts after the first
	// failure. A request is attempted at most MaxRetries+1 times before
	// being dropped.
	MaxRetries int

	// DefaultInterval is the dispatch cadence for models with no
	// explicit interval entry.
	DefaultInterval time.Duration

	// ShutdownTimeout bounds Stop when the caller's context carries no
	// deadline of its own. Zero means wait indefinitely.
	ShutdownTimeout time.Duration

	// DeadLetterCapacity sizes the in-memory capture of terminally
	// failed requests. Zero disables capture.
	DeadLetterCapacity int
}

// DefaultConfig returns a Config with sensible defaults.
func DefaultConfig() Config {
	return Config{
		MaxRetries:      3,
		DefaultInterval: interval.Default,
		ShutdownTimeout: 30 * time.Second,
	}
}
