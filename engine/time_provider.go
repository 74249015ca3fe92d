package engine

import "time"

// TimeProvider supplies the current time
type TimeProvider interface {
	Now() time.Time
}

// MonotonicTimeProvider provides the real system time with monotonic clock readings
type MonotonicTimeProvider struct{}

// NewMonotonicTimeProvider creates a new monotonic time provider
func NewMonotonicTimeProvider() *MonotonicTimeProvider {
	return &MonotonicTimeProvider{}
}

// Now returns the current time with monotonic clock reading
func (p *MonotonicTimeProvider) Now() time.Time {
	return time.Now()
}

// FrameClock turns a TimeProvider into per-frame deltas
// Deltas are clamped to [0, maxDelta] so a stall cannot inject a huge step
type FrameClock struct {
	provider TimeProvider
	maxDelta time.Duration
	last     time.Time
	started  bool
}

// NewFrameClock creates a frame clock; maxDelta <= 0 disables the upper clamp
func NewFrameClock(provider TimeProvider, maxDelta time.Duration) *FrameClock {
	return &FrameClock{provider: provider, maxDelta: maxDelta}
}

// Delta returns the time since the previous call; the first call returns zero
func (c *FrameClock) Delta() time.Duration {
	now := c.provider.Now()
	if !c.started {
		c.started = true
		c.last = now
		return 0
	}

	dt := now.Sub(c.last)
	c.last = now
	if dt < 0 {
		return 0
	}
	if c.maxDelta > 0 && dt > c.maxDelta {
		return c.maxDelta
	}
	return dt
}

// Seconds converts a frame delta to float32 seconds
func Seconds(dt time.Duration) float32 {
	return float32(dt.Seconds())
}
