package clock

import (
	"testing"
	"time"
)

func TestScheduler_AfterFiresOnce(t *testing.T) {
	s := NewScheduler()
	calls := 0
	timer := s.After(100*time.Millisecond, func() { calls++ })

	s.Advance(99 * time.Millisecond)
	if calls != 0 {
		t.Fatalf("fired early: calls = %d", calls)
	}
	s.Advance(1 * time.Millisecond)
	if calls != 1 {
		t.Fatalf("expected 1 call, got %d", calls)
	}
	s.Advance(time.Second)
	if calls != 1 {
		t.Errorf("one-shot fired again: calls = %d", calls)
	}
	if timer.Active() {
		t.Error("expected finished timer to be inactive")
	}
}

func TestScheduler_SameDelayKeepsRegistrationOrder(t *testing.T) {
	s := NewScheduler()
	var order []int
	for i := 0; i < 5; i++ {
		i := i
		s.After(50*time.Millisecond, func() { order = append(order, i) })
	}
	s.Advance(50 * time.Millisecond)

	if len(order) != 5 {
		t.Fatalf("expected 5 callbacks, got %d", len(order))
	}
	for i, v := range order {
		if v != i {
			t.Errorf("order[%d] = %d, want %d", i, v, i)
		}
	}
}

func TestScheduler_EveryWithLimit(t *testing.T) {
	s := NewScheduler()
	calls := 0
	s.Every(300*time.Millisecond, 6, func() { calls++ })

	s.Advance(10 * time.Second)
	if calls != 6 {
		t.Errorf("expected 6 pulses, got %d", calls)
	}
	if s.Pending() != 0 {
		t.Errorf("expected empty queue, got %d pending", s.Pending())
	}
}

func TestScheduler_EveryUnboundedCatchesUpInOneAdvance(t *testing.T) {
	s := NewScheduler()
	var at []time.Duration
	s.Every(200*time.Millisecond, 0, func() { at = append(at, s.Now()) })

	s.Advance(time.Second)
	if len(at) != 5 {
		t.Fatalf("expected 5 ticks, got %d", len(at))
	}
	for i, d := range at {
		want := time.Duration(i+1) * 200 * time.Millisecond
		if d != want {
			t.Errorf("tick %d at %v, want %v", i, d, want)
		}
	}
	if s.Now() != time.Second {
		t.Errorf("Now() = %v, want 1s", s.Now())
	}
}

func TestScheduler_CancelFromCallback(t *testing.T) {
	s := NewScheduler()
	calls := 0
	var timer *Timer
	timer = s.Every(100*time.Millisecond, 0, func() {
		calls++
		if calls == 3 {
			timer.Cancel()
		}
	})
	s.Advance(time.Second)
	if calls != 3 {
		t.Errorf("expected 3 calls before cancel, got %d", calls)
	}
}

func TestScheduler_CancelOwner(t *testing.T) {
	s := NewScheduler()
	fired := map[string]bool{}
	s.AfterFor(7, 100*time.Millisecond, func() { fired["a"] = true })
	s.EveryFor(7, 50*time.Millisecond, 0, func() { fired["b"] = true })
	s.AfterFor(8, 100*time.Millisecond, func() { fired["other"] = true })

	s.CancelOwner(7)
	s.Advance(time.Second)

	if fired["a"] || fired["b"] {
		t.Errorf("owner timers fired after CancelOwner: %v", fired)
	}
	if !fired["other"] {
		t.Error("unrelated owner's timer should still fire")
	}
}

func TestScheduler_NestedScheduleWithinAdvance(t *testing.T) {
	s := NewScheduler()
	var order []string
	s.After(100*time.Millisecond, func() {
		order = append(order, "outer")
		s.After(0, func() { order = append(order, "immediate") })
		s.After(50*time.Millisecond, func() { order = append(order, "later") })
	})
	s.Advance(200 * time.Millisecond)

	want := []string{"outer", "immediate", "later"}
	if len(order) != len(want) {
		t.Fatalf("order = %v, want %v", order, want)
	}
	for i := range want {
		if order[i] != want[i] {
			t.Errorf("order[%d] = %s, want %s", i, order[i], want[i])
		}
	}
}

func TestScheduler_Reset(t *testing.T) {
	s := NewScheduler()
	calls := 0
	s.After(10*time.Millisecond, func() { calls++ })
	s.Advance(5 * time.Millisecond)
	s.Reset()
	s.Advance(time.Second)

	if calls != 0 {
		t.Errorf("reset timer fired: %d", calls)
	}
	if s.Now() != time.Second {
		t.Errorf("Now() after reset+advance = %v, want 1s", s.Now())
	}
}
