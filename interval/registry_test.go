package interval_test

import (
	"testing"
	"time"

	"github.com/xraph/cadence/interval"
)

func TestRegistry_DefaultForUnknownModel(t *testing.T) {
	r := interval.NewRegistry(2 * time.Second)
	if got := r.Interval("never-seen"); got != 2*time.Second {
		t.Errorf("Interval(unknown) = %v, want 2s", got)
	}
}

func TestRegistry_NonPositiveDefaultFallsBack(t *testing.T) {
	r := interval.NewRegistry(0)
	if got := r.Default(); got != interval.Default {
		t.Errorf("Default() = %v, want %v", got, interval.Default)
	}
	r = interval.NewRegistry(-time.Second)
	if got := r.Interval("m"); got != interval.Default {
		t.Errorf("Interval() = %v, want %v", got, interval.Default)
	}
}

func TestRegistry_SetCoercesInvalidValues(t *testing.T) {
	r := interval.NewRegistry(3 * time.Second)
	r.Set(map[string]time.Duration{
		"fast":   500 * time.Millisecond,
		"zero":   0,
		"broken": -10 * time.Second,
	})

	if got := r.Interval("fast"); got != 500*time.Millisecond {
		t.Errorf("Interval(fast) = %v, want 500ms", got)
	}
	if got := r.Interval("zero"); got != 3*time.Second {
		t.Errorf("Interval(zero) = %v, want default 3s", got)
	}
	if got := r.Interval("broken"); got != 3*time.Second {
		t.Errorf("Interval(broken) = %v, want default 3s", got)
	}
}

func TestRegistry_SetReplacesWholeMapping(t *testing.T) {
	r := interval.NewRegistry(time.Second)
	r.Set(map[string]time.Duration{"a": 2 * time.Second})
	r.Set(map[string]time.Duration{"b": 4 * time.Second})

	// "a" was dropped by the second replacement.
	if got := r.Interval("a"); got != time.Second {
		t.Errorf("Interval(a) after replacement = %v, want default 1s", got)
	}
	if got := r.Interval("b"); got != 4*time.Second {
		t.Errorf("Interval(b) = %v, want 4s", got)
	}
}
