package engine

import (
	"testing"
	"time"
)

func TestMonotonicTimeProvider(t *testing.T) {
	provider := NewMonotonicTimeProvider()

	t1 := provider.Now()
	time.Sleep(10 * time.Millisecond)
	t2 := provider.Now()

	if !t2.After(t1) {
		t.Errorf("Expected t2 to be after t1, but got t1=%v, t2=%v", t1, t2)
	}
}

func TestMockTimeProvider(t *testing.T) {
	startTime := time.Date(2025, 1, 1, 0, 0, 0, 0, time.UTC)
	mock := NewMockTimeProvider(startTime)

	if now := mock.Now(); !now.Equal(startTime) {
		t.Errorf("Expected initial time to be %v, got %v", startTime, now)
	}

	mock.Advance(90 * time.Minute)
	if now := mock.Now(); !now.Equal(startTime.Add(90 * time.Minute)) {
		t.Errorf("Expected time after Advance, got %v", now)
	}

	mock.Advance(-30 * time.Minute)
	if got := mock.Elapsed(); got != time.Hour {
		t.Errorf("Elapsed = %v, want 1h", got)
	}
}

func TestFrameClockDeltas(t *testing.T) {
	mock := NewMockTimeProvider(time.Date(2025, 1, 1, 0, 0, 0, 0, time.UTC))
	clock := NewFrameClock(mock, 100*time.Millisecond)

	if dt := clock.Delta(); dt != 0 {
		t.Fatalf("first delta = %v, want 0", dt)
	}

	tests := []struct {
		advance time.Duration
		want    time.Duration
	}{
		{33 * time.Millisecond, 33 * time.Millisecond},
		{0, 0},
		{2 * time.Second, 100 * time.Millisecond},
		{-time.Second, 0},
	}
	for _, tt := range tests {
		mock.Advance(tt.advance)
		if dt := clock.Delta(); dt != tt.want {
			t.Errorf("advance %v: delta = %v, want %v", tt.advance, dt, tt.want)
		}
	}
}
