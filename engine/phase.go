package engine

import "time"

// Phase is the top-level session state
type Phase uint8

const (
	PhaseBoot Phase = iota
	PhaseIntro
	PhasePlaying
	PhaseWon
	PhaseLost
	phaseCount
)

var phaseNames = [phaseCount]string{"boot", "intro", "playing", "won", "lost"}

func (p Phase) String() string {
	if p >= phaseCount {
		return "unknown"
	}
	return phaseNames[p]
}

// Terminal reports whether no transition leaves p
func (p Phase) Terminal() bool {
	return p == PhaseWon || p == PhaseLost
}

// PhaseMask is a set of phases
type PhaseMask uint8

// MaskOf builds a mask from phases
func MaskOf(phases ...Phase) PhaseMask {
	var m PhaseMask
	for _, p := range phases {
		m |= 1 << p
	}
	return m
}

// Has reports whether p is in the mask
func (m PhaseMask) Has(p Phase) bool {
	return m&(1<<p) != 0
}

// Transition records one phase change
type Transition struct {
	From  Phase
	To    Phase
	Cause string
	At    time.Duration
}

// PhaseMachine holds the session phase
// Transitions are one-directional and latched: each target phase is entered at most once
type PhaseMachine struct {
	phase     Phase
	cause     string
	entered   [phaseCount]bool
	listeners []func(Transition)
	history   []Transition
	clock     func() time.Duration
}

// NewPhaseMachine starts in Boot; clock stamps transitions and may be nil
func NewPhaseMachine(clock func() time.Duration) *PhaseMachine {
	m := &PhaseMachine{phase: PhaseBoot, clock: clock}
	m.entered[PhaseBoot] = true
	return m
}

// Current returns the active phase
func (m *PhaseMachine) Current() Phase {
	return m.phase
}

// Cause returns the cause of the latest transition
func (m *PhaseMachine) Cause() string {
	return m.cause
}

// History returns every transition so far
func (m *PhaseMachine) History() []Transition {
	return append([]Transition(nil), m.history...)
}

// OnTransition registers fn to run once per transition, in registration order
func (m *PhaseMachine) OnTransition(fn func(Transition)) {
	m.listeners = append(m.listeners, fn)
}

// Acknowledge moves Boot to Intro
func (m *PhaseMachine) Acknowledge() bool {
	return m.transition(PhaseBoot, PhaseIntro, "acknowledged")
}

// BeginPlay moves Intro to Playing
func (m *PhaseMachine) BeginPlay() bool {
	return m.transition(PhaseIntro, PhasePlaying, "intro complete")
}

// Win moves Playing to Won
func (m *PhaseMachine) Win(cause string) bool {
	return m.transition(PhasePlaying, PhaseWon, cause)
}

// Lose moves Playing to Lost
func (m *PhaseMachine) Lose(cause string) bool {
	return m.transition(PhasePlaying, PhaseLost, cause)
}

func (m *PhaseMachine) transition(from, to Phase, cause string) bool {
	if m.phase != from || m.entered[to] {
		return false
	}
	m.entered[to] = true

	tr := Transition{From: from, To: to, Cause: cause}
	if m.clock != nil {
		tr.At = m.clock()
	}
	m.phase = to
	m.cause = cause
	m.history = append(m.history, tr)

	for _, fn := range m.listeners {
		fn(tr)
	}
	return true
}
