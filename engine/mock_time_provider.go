package engine

import (
	"sync/atomic"
	"time"
)

// MockTimeProvider is a hand-driven clock for deterministic frame tests
// Safe to advance from a test goroutine while the loop reads it
type MockTimeProvider struct {
	epoch  time.Time
	offset atomic.Int64
}

// NewMockTimeProvider starts the clock at epoch
func NewMockTimeProvider(epoch time.Time) *MockTimeProvider {
	return &MockTimeProvider{epoch: epoch}
}

func (m *MockTimeProvider) Now() time.Time {
	return m.epoch.Add(time.Duration(m.offset.Load()))
}

// Advance moves the clock by d; negative d moves it backwards
func (m *MockTimeProvider) Advance(d time.Duration) {
	m.offset.Add(int64(d))
}

// Elapsed is the total offset from the epoch
func (m *MockTimeProvider) Elapsed() time.Duration {
	return time.Duration(m.offset.Load())
}
