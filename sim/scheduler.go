// Implements the virtual-time event scheduler: a monotonic clock plus an
// ordered queue of pending wake-ups. All engine state mutation happens
// inside its single-threaded dispatch loop.

package sim

import (
	"container/heap"
	"fmt"

	"github.com/sirupsen/logrus"
)

// Scheduler owns the virtual clock and the pending event set. It is the
// single logical thread of control: event actions execute one at a time,
// and an action that needs to wait registers a follow-up event (or a pool
// waiter) and returns, it never blocks the dispatch loop.
type Scheduler struct {
	clock   int64
	seq     uint64
	pending eventHeap
	halted  bool
}

// NewScheduler creates a scheduler with the clock at zero and no pending
// events.
func NewScheduler() *Scheduler {
	s := &Scheduler{pending: make(eventHeap, 0)}
	heap.Init(&s.pending)
	return s
}

// Now returns the current virtual time in minutes. The clock never moves
// backward.
func (s *Scheduler) Now() int64 {
	return s.clock
}

// ScheduleAfter registers fn to run delay minutes from now. A negative
// delay is a contract violation and returns ErrInvalidDelay.
func (s *Scheduler) ScheduleAfter(delay int64, fn func()) error {
	if delay < 0 {
		return fmt.Errorf("%w: %d", ErrInvalidDelay, delay)
	}
	s.push(s.clock+delay, fn)
	return nil
}

// ScheduleAt registers fn to run at the absolute time at. A time already
// in the past is clamped to the current clock, so a late spawn runs
// immediately instead of failing.
func (s *Scheduler) ScheduleAt(at int64, fn func()) {
	if at < s.clock {
		at = s.clock
	}
	s.push(at, fn)
}

func (s *Scheduler) push(at int64, fn func()) {
	ev := &event{time: at, seq: s.seq, fn: fn}
	s.seq++
	heap.Push(&s.pending, ev)
}

// Run dispatches events in (time, sequence) order until none remain.
// Each action may schedule further events; the loop terminates naturally
// once every process has run to completion.
func (s *Scheduler) Run() {
	for s.pending.Len() > 0 && !s.halted {
		ev := heap.Pop(&s.pending).(*event)
		s.clock = ev.time
		logrus.Debugf("[t=%05d] dispatching event #%d", s.clock, ev.seq)
		ev.fn()
	}
}

// Halt stops the dispatch loop before the next event. Used when an
// internal invariant violation makes further progress meaningless.
func (s *Scheduler) Halt() {
	s.halted = true
}

// Pending reports the number of events not yet dispatched.
func (s *Scheduler) Pending() int {
	return s.pending.Len()
}
