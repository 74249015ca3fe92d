package engine

import "time"

// System is a per-frame update step
type System interface {
	Name() string
	Priority() int // Lower values run first
	Phases() PhaseMask
	Update(w *World, dt time.Duration)
}

// Attachable systems receive the world when registered, before any frame runs
type Attachable interface {
	Attach(w *World)
}
