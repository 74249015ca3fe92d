package component

import "github.com/lixenwraith/dreadmaze/parameter"

// SanityState is the bounded sanity resource
// Every mutation clamps to [SanityMin, SanityMax]
type SanityState struct {
	value float32
}

// NewSanityState returns full sanity
func NewSanityState() *SanityState {
	return &SanityState{value: parameter.SanityMax}
}

// Value returns current sanity
func (s *SanityState) Value() float32 {
	return s.value
}

// Drain lowers sanity by amount and returns the new value
// Negative amounts are ignored
func (s *SanityState) Drain(amount float32) float32 {
	if amount > 0 {
		s.value = clampSanity(s.value - amount)
	}
	return s.value
}

// Restore raises sanity by amount and returns the new value
func (s *SanityState) Restore(amount float32) float32 {
	if amount > 0 {
		s.value = clampSanity(s.value + amount)
	}
	return s.value
}

// Fraction is the lost share of sanity: 0 at full, 1 when depleted
func (s *SanityState) Fraction() float32 {
	return 1 - s.value/parameter.SanityMax
}

// Percent returns sanity as a percentage for display
func (s *SanityState) Percent() float32 {
	return s.value / parameter.SanityMax * 100
}

// Depleted reports whether sanity has reached the floor
func (s *SanityState) Depleted() bool {
	return s.value <= parameter.SanityMin
}

func clampSanity(v float32) float32 {
	if v < parameter.SanityMin {
		return parameter.SanityMin
	}
	if v > parameter.SanityMax {
		return parameter.SanityMax
	}
	return v
}
