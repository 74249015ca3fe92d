package input

import (
	"sync"
	"time"

	"github.com/lixenwraith/dreadmaze/parameter"
)

// Keys is a set of held movement keys
type Keys uint8

// Has reports whether k is in the set
func (s Keys) Has(k Key) bool {
	return s&(1<<k) != 0
}

// With returns the set with k added
func (s Keys) With(k Key) Keys {
	return s | (1 << k)
}

type hold struct {
	until time.Time
}

// Snapshot is the debounced set of held movement keys
// Written by the input goroutine, read once per frame by the game loop
type Snapshot struct {
	mu      sync.Mutex
	holds   [keyCount]hold
	initial time.Duration
	repeat  time.Duration
}

// NewSnapshot creates a snapshot with the default hold windows
func NewSnapshot() *Snapshot {
	return NewSnapshotWithWindows(parameter.KeyHoldInitial, parameter.KeyHoldRepeat)
}

// NewSnapshotWithWindows creates a snapshot with explicit hold windows
func NewSnapshotWithWindows(initial, repeat time.Duration) *Snapshot {
	return &Snapshot{initial: initial, repeat: repeat}
}

// Press records a press of k at time at
// A fresh press holds for the initial window, a repeat while held extends by the repeat window
// Pressing a key releases its opposite
func (s *Snapshot) Press(k Key, at time.Time) {
	if k >= keyCount {
		return
	}
	s.mu.Lock()
	defer s.mu.Unlock()

	s.holds[k.Opposite()] = hold{}

	h := &s.holds[k]
	if at.Before(h.until) {
		if ext := at.Add(s.repeat); ext.After(h.until) {
			h.until = ext
		}
		return
	}
	h.until = at.Add(s.initial)
}

// Release drops k immediately
func (s *Snapshot) Release(k Key) {
	if k >= keyCount {
		return
	}
	s.mu.Lock()
	s.holds[k] = hold{}
	s.mu.Unlock()
}

// ReleaseAll drops every held key
func (s *Snapshot) ReleaseAll() {
	s.mu.Lock()
	s.holds = [keyCount]hold{}
	s.mu.Unlock()
}

// IsHeld reports whether k is held at now
func (s *Snapshot) IsHeld(k Key, now time.Time) bool {
	if k >= keyCount {
		return false
	}
	s.mu.Lock()
	defer s.mu.Unlock()
	return now.Before(s.holds[k].until)
}

// Held returns every key held at now
func (s *Snapshot) Held(now time.Time) Keys {
	s.mu.Lock()
	defer s.mu.Unlock()

	var out Keys
	for k := Key(0); k < keyCount; k++ {
		if now.Before(s.holds[k].until) {
			out = out.With(k)
		}
	}
	return out
}
