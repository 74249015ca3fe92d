package engine

import (
	"container/heap"
	"time"
)

// Scheduler runs deferred callbacks on the game loop's own goroutine
// Time is virtual: it moves only through Advance, so callbacks never overlap a frame or each other
// Not safe for concurrent use
type Scheduler struct {
	now   time.Duration
	seq   uint64
	queue timerQueue
}

type timerEntry struct {
	deadline  time.Duration
	seq       uint64
	period    time.Duration // zero for one-shot
	fn        func()
	index     int // heap position, -1 when not queued
	cancelled bool
}

// Timer is a handle to a scheduled callback; the zero value is inert
type Timer struct {
	entry *timerEntry
	sched *Scheduler
}

// NewScheduler creates an empty scheduler at virtual time zero
func NewScheduler() *Scheduler {
	return &Scheduler{}
}

// Now returns the scheduler's virtual time
func (s *Scheduler) Now() time.Duration {
	return s.now
}

// Pending returns the number of queued timers
func (s *Scheduler) Pending() int {
	return len(s.queue)
}

// After runs fn once, d after the current virtual time
func (s *Scheduler) After(d time.Duration, fn func()) Timer {
	if d < 0 {
		d = 0
	}
	return s.push(s.now+d, 0, fn)
}

// Every runs fn every d, first at now+d
// Deadlines advance from the previous deadline so the period does not drift with frame jitter
// A non-positive period returns an inert timer
func (s *Scheduler) Every(d time.Duration, fn func()) Timer {
	if d <= 0 {
		return Timer{}
	}
	return s.push(s.now+d, d, fn)
}

func (s *Scheduler) push(deadline, period time.Duration, fn func()) Timer {
	s.seq++
	e := &timerEntry{deadline: deadline, seq: s.seq, period: period, fn: fn}
	heap.Push(&s.queue, e)
	return Timer{entry: e, sched: s}
}

// Advance moves virtual time forward by dt, firing due timers in deadline order
// Ties fire in scheduling order; callbacks see Now() equal to their own deadline
// Returns the number of callbacks run
func (s *Scheduler) Advance(dt time.Duration) int {
	if dt < 0 {
		dt = 0
	}
	target := s.now + dt
	fired := 0

	for len(s.queue) > 0 && s.queue[0].deadline <= target {
		e := heap.Pop(&s.queue).(*timerEntry)
		s.now = e.deadline

		if e.period > 0 {
			// Re-arm before the call so the callback can cancel its own repetition
			s.seq++
			e.seq = s.seq
			e.deadline += e.period
			heap.Push(&s.queue, e)
		} else {
			e.cancelled = true
		}

		e.fn()
		fired++
	}

	s.now = target
	return fired
}

// CancelAll drops every pending timer
func (s *Scheduler) CancelAll() {
	for _, e := range s.queue {
		e.cancelled = true
		e.index = -1
	}
	s.queue = s.queue[:0]
}

// Cancel stops the timer; returns true if this prevented at least one future call
func (t Timer) Cancel() bool {
	if t.entry == nil || t.entry.cancelled {
		return false
	}
	t.entry.cancelled = true
	if t.entry.index >= 0 {
		heap.Remove(&t.sched.queue, t.entry.index)
	}
	return true
}

// Active reports whether the timer will still fire
func (t Timer) Active() bool {
	return t.entry != nil && !t.entry.cancelled
}

// timerQueue is a min-heap on (deadline, seq)
type timerQueue []*timerEntry

func (q timerQueue) Len() int { return len(q) }

func (q timerQueue) Less(i, j int) bool {
	if q[i].deadline != q[j].deadline {
		return q[i].deadline < q[j].deadline
	}
	return q[i].seq < q[j].seq
}

func (q timerQueue) Swap(i, j int) {
	q[i], q[j] = q[j], q[i]
	q[i].index = i
	q[j].index = j
}

func (q *timerQueue) Push(x any) {
	e := x.(*timerEntry)
	e.index = len(*q)
	*q = append(*q, e)
}

func (q *timerQueue) Pop() any {
	old := *q
	n := len(old)
	e := old[n-1]
	old[n-1] = nil
	e.index = -1
	*q = old[:n-1]
	return e
}
