package engine

import (
	"context"
	"sync"
	"sync/atomic"
	"time"
)

// Loop drives a World in real time on a fixed frame interval
// Other goroutines reach the world only through Post, which runs commands on the loop goroutine before the next frame
type Loop struct {
	world *World
	clock *FrameClock

	interval time.Duration
	posts    chan func(*World)
	onFrame  []func(*World)

	frames   atomic.Uint64
	dropped  atomic.Uint64
	running  atomic.Bool
	stopChan chan struct{}
	stopOnce sync.Once
}

// NewLoop creates a loop; deltas come from provider, clamped to maxDelta
func NewLoop(world *World, provider TimeProvider, interval, maxDelta time.Duration, queueSize int) *Loop {
	if queueSize < 1 {
		queueSize = 1
	}
	return &Loop{
		world:    world,
		clock:    NewFrameClock(provider, maxDelta),
		interval: interval,
		posts:    make(chan func(*World), queueSize),
		stopChan: make(chan struct{}),
	}
}

// OnFrame registers fn to run after each frame's systems, must be called before Run
func (l *Loop) OnFrame(fn func(*World)) {
	l.onFrame = append(l.onFrame, fn)
}

// Post queues fn for the loop goroutine without blocking
// Returns false when the queue is full and the command was dropped
func (l *Loop) Post(fn func(*World)) bool {
	select {
	case l.posts <- fn:
		return true
	default:
		l.dropped.Add(1)
		return false
	}
}

// Frames returns the number of frames run
func (l *Loop) Frames() uint64 {
	return l.frames.Load()
}

// Dropped returns the number of posted commands discarded on a full queue
func (l *Loop) Dropped() uint64 {
	return l.dropped.Load()
}

// Run blocks, ticking the world until ctx is done or Stop is called
func (l *Loop) Run(ctx context.Context) error {
	if !l.running.CompareAndSwap(false, true) {
		return nil
	}
	defer l.running.Store(false)

	ticker := time.NewTicker(l.interval)
	defer ticker.Stop()

	l.clock.Delta()

	for {
		select {
		case <-ctx.Done():
			return ctx.Err()
		case <-l.stopChan:
			return nil
		case fn := <-l.posts:
			fn(l.world)
		case <-ticker.C:
			l.Step()
		}
	}
}

// Step drains posted commands and runs one frame with the measured delta
func (l *Loop) Step() {
drain:
	for {
		select {
		case fn := <-l.posts:
			fn(l.world)
		default:
			break drain
		}
	}

	l.world.Tick(l.clock.Delta())
	for _, fn := range l.onFrame {
		fn(l.world)
	}
	l.frames.Add(1)
}

// Stop ends Run; safe to call more than once
func (l *Loop) Stop() {
	l.stopOnce.Do(func() {
		close(l.stopChan)
	})
}
