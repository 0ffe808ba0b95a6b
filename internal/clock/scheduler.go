// Package clock is the simulation's timer service: one-shot and repeating
// callbacks on a simulated millisecond timeline, advanced by the frame loop.
//
// Everything runs on the caller's goroutine. Callbacks fire in due-time order;
// callbacks that fall due at the same instant fire in registration order.
package clock

import (
	"container/heap"
	"time"

	"chaos-rush/internal/types"
)

// Timer is a handle to a scheduled callback.
type Timer struct {
	due      time.Duration
	seq      uint64
	period   time.Duration
	left     int // remaining firings for repeating timers, -1 = unbounded
	owner    types.EntityID
	fn       func()
	canceled bool
	done     bool
	index    int
}

// Cancel prevents any further firing. Safe to call more than once and from
// inside the timer's own callback.
func (t *Timer) Cancel() {
	if t == nil {
		return
	}
	t.canceled = true
}

// Active reports whether the timer may still fire.
func (t *Timer) Active() bool {
	return t != nil && !t.canceled && !t.done
}

// Scheduler owns the simulated clock.
type Scheduler struct {
	now   time.Duration
	seq   uint64
	queue timerQueue
	owned map[types.EntityID][]*Timer
}

func NewScheduler() *Scheduler {
	return &Scheduler{owned: make(map[types.EntityID][]*Timer)}
}

// Now returns the simulated time elapsed since the scheduler was created.
func (s *Scheduler) Now() time.Duration {
	return s.now
}

// After runs fn once, d from now.
func (s *Scheduler) After(d time.Duration, fn func()) *Timer {
	return s.schedule(0, d, 0, 1, fn)
}

// AfterFor is After bound to an owner; CancelOwner(owner) neutralizes it.
func (s *Scheduler) AfterFor(owner types.EntityID, d time.Duration, fn func()) *Timer {
	return s.schedule(owner, d, 0, 1, fn)
}

// Every runs fn every period. times == 0 repeats until cancelled.
func (s *Scheduler) Every(period time.Duration, times int, fn func()) *Timer {
	return s.schedule(0, period, period, times, fn)
}

// EveryFor is Every bound to an owner.
func (s *Scheduler) EveryFor(owner types.EntityID, period time.Duration, times int, fn func()) *Timer {
	return s.schedule(owner, period, period, times, fn)
}

func (s *Scheduler) schedule(owner types.EntityID, delay, period time.Duration, times int, fn func()) *Timer {
	if delay < 0 {
		delay = 0
	}
	if period > 0 && period < time.Millisecond {
		// нулевой период зациклил бы Advance
		period = time.Millisecond
	}
	left := times
	if times <= 0 {
		left = -1
	}
	s.seq++
	t := &Timer{
		due:    s.now + delay,
		seq:    s.seq,
		period: period,
		left:   left,
		owner:  owner,
		fn:     fn,
	}
	heap.Push(&s.queue, t)
	if owner != 0 {
		s.owned[owner] = append(s.owned[owner], t)
	}
	return t
}

// CancelOwner cancels every pending timer bound to owner.
func (s *Scheduler) CancelOwner(owner types.EntityID) {
	for _, t := range s.owned[owner] {
		t.Cancel()
	}
	delete(s.owned, owner)
}

// Pending returns the number of timers that can still fire.
func (s *Scheduler) Pending() int {
	n := 0
	for _, t := range s.queue {
		if t.Active() {
			n++
		}
	}
	return n
}

// Advance moves the clock forward by dt, firing everything that falls due.
func (s *Scheduler) Advance(dt time.Duration) {
	if dt < 0 {
		return
	}
	target := s.now + dt
	for s.queue.Len() > 0 {
		next := s.queue[0]
		if next.due > target {
			break
		}
		heap.Pop(&s.queue)
		if next.canceled {
			s.forget(next)
			continue
		}
		s.now = next.due
		if next.left > 0 {
			next.left--
		}
		repeat := next.period > 0 && next.left != 0
		if repeat {
			s.seq++
			next.due += next.period
			next.seq = s.seq
			heap.Push(&s.queue, next)
		} else {
			next.done = true
		}
		next.fn()
		if !repeat || next.canceled {
			s.forget(next)
		}
	}
	s.now = target
}

func (s *Scheduler) forget(t *Timer) {
	if t.owner == 0 {
		return
	}
	list := s.owned[t.owner]
	for i, o := range list {
		if o == t {
			list = append(list[:i], list[i+1:]...)
			break
		}
	}
	if len(list) == 0 {
		delete(s.owned, t.owner)
	} else {
		s.owned[t.owner] = list
	}
}

// Reset drops every timer and rewinds the clock to zero.
func (s *Scheduler) Reset() {
	for _, t := range s.queue {
		t.Cancel()
	}
	s.queue = nil
	s.now = 0
	s.seq = 0
	s.owned = make(map[types.EntityID][]*Timer)
}

type timerQueue []*Timer

func (q timerQueue) Len() int { return len(q) }

func (q timerQueue) Less(i, j int) bool {
	if q[i].due != q[j].due {
		return q[i].due < q[j].due
	}
	return q[i].seq < q[j].seq
}

func (q timerQueue) Swap(i, j int) {
	q[i], q[j] = q[j], q[i]
	q[i].index = i
	q[j].index = j
}

func (q *timerQueue) Push(x any) {
	t := x.(*Timer)
	t.index = len(*q)
	*q = append(*q, t)
}

func (q *timerQueue) Pop() any {
	old := *q
	n := len(old)
	t := old[n-1]
	old[n-1] = nil
	t.index = -1
	*q = old[:n-1]
	return t
}
