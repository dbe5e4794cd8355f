package loop

import (
	"testing"

	"github.com/xraph/cadence/lane"
	"github.com/xraph/cadence/request"
)

func tagged(name string, n int) request.Request {
	return request.Request{"type": name, "seq": n}
}

func pickType(t *testing.T, c *cursor, s *lane.Set) string {
	t.Helper()
	req, _, ok := c.next(s)
	if !ok {
		t.Fatal("cursor.next() found nothing")
	}
	return req.Type()
}

func TestCursor_TwoPicksThenRotate(t *testing.T) {
	s := lane.NewSet()
	for i := range 3 {
		s.Push(lane.Superadmin, tagged("sa", i))
	}
	for i := range 3 {
		s.Push(lane.Private, tagged("priv", i))
	}

	var c cursor
	want := []string{"sa", "sa", "priv", "priv", "sa", "priv"}
	// After two superadmin picks the cursor advances to private; after
	// two private picks it advances past the empty mention/normal lanes
	// and wraps back.
	for i, w := range want {
		if got := pickType(t, &c, s); got != w {
			t.Fatalf("pick #%d = %q, want %q", i, got, w)
		}
	}
}

func TestCursor_SkipsEmptyLanes(t *testing.T) {
	s := lane.NewSet()
	s.Push(lane.GroupNormal, tagged("gn", 0))
	s.Push(lane.GroupNormal, tagged("gn", 1))

	var c cursor
	if got := pickType(t, &c, s); got != "gn" {
		t.Fatalf("pick = %q, want gn", got)
	}
	if got := pickType(t, &c, s); got != "gn" {
		t.Fatalf("pick = %q, want gn", got)
	}
	if _, _, ok := c.next(s); ok {
		t.Fatal("cursor.next() on empty fair lanes returned ok")
	}
}

func TestCursor_LaneChangeRestartsCount(t *testing.T) {
	s := lane.NewSet()
	// One private item, then superadmin refills: the single private
	// pick must not inherit the count from a different lane.
	s.Push(lane.Private, tagged("priv", 0))

	var c cursor
	if got := pickType(t, &c, s); got != "priv" {
		t.Fatalf("pick = %q, want priv", got)
	}

	s.Push(lane.Private, tagged("priv", 1))
	s.Push(lane.Private, tagged("priv", 2))
	if got := pickType(t, &c, s); got != "priv" {
		t.Fatalf("pick = %q, want priv (second consecutive)", got)
	}

	// Two consecutive private picks: the cursor has advanced, so a
	// fresh superadmin item still waits until the rotation wraps.
	s.Push(lane.GroupMention, tagged("gm", 0))
	if got := pickType(t, &c, s); got != "gm" {
		t.Fatalf("pick = %q, want gm after rotation", got)
	}
}

func TestLoop_SelectPrecedence(t *testing.T) {
	s := lane.NewSet()
	l := &Loop{lanes: s}

	s.Push(lane.Background, tagged("bg", 0))
	s.Push(lane.GroupNormal, tagged("gn", 0))
	s.Push(lane.Superadmin, tagged("sa", 0))
	s.Push(lane.Retry, tagged("retry", 0))

	order := make([]string, 0, 4)
	for range 4 {
		req, _, ok := l.selectNext()
		if !ok {
			t.Fatal("selectNext() found nothing")
		}
		order = append(order, req.Type())
	}

	want := []string{"retry", "sa", "gn", "bg"}
	for i := range want {
		if order[i] != want[i] {
			t.Fatalf("selection order = %v, want %v", order, want)
		}
	}

	if _, _, ok := l.selectNext(); ok {
		t.Fatal("selectNext() on drained set returned ok")
	}
}

func TestLoop_RetryBypassesFairness(t *testing.T) {
	s := lane.NewSet()
	l := &Loop{lanes: s}

	s.Push(lane.Superadmin, tagged("sa", 0))
	for i := range 3 {
		s.Push(lane.Retry, tagged("retry", i))
	}

	// Every retry item drains before any fair lane is touched, and the
	// cursor state is untouched by retry picks.
	for i := range 3 {
		req, cls, _ := l.selectNext()
		if cls != lane.Retry {
			t.Fatalf("pick #%d from %s, want retry", i, cls)
		}
		if req.Type() != "retry" {
			t.Fatalf("pick #%d = %q, want retry", i, req.Type())
		}
	}
	if l.cur.picks != 0 {
		t.Errorf("cursor picks = %d after retry-only cycles, want 0", l.cur.picks)
	}
}
