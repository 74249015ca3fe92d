package system

import (
	"time"

	"github.com/lixenwraith/dreadmaze/engine"
	"github.com/lixenwraith/dreadmaze/parameter"
	"github.com/lixenwraith/dreadmaze/vmath"
)

// OutcomeSystem evaluates win and lose conditions, always last in a frame
// Loss is checked before the exit so a frame that does both ends in Lost
type OutcomeSystem struct {
	exitRadius float32
}

// NewOutcomeSystem creates an outcome system
func NewOutcomeSystem(exitRadius float32) *OutcomeSystem {
	if exitRadius <= 0 {
		exitRadius = parameter.ExitRadius
	}
	return &OutcomeSystem{exitRadius: exitRadius}
}

// Name returns system's name
func (s *OutcomeSystem) Name() string {
	return "outcome"
}

func (s *OutcomeSystem) Priority() int {
	return parameter.PriorityOutcome
}

func (s *OutcomeSystem) Phases() engine.PhaseMask {
	return engine.MaskOf(engine.PhasePlaying)
}

// Attach plays the ending cues and logs the session summary on terminal transitions
func (s *OutcomeSystem) Attach(w *engine.World) {
	w.Phase.OnTransition(func(tr engine.Transition) {
		switch tr.To {
		case engine.PhaseWon:
			w.Cue(engine.CueEscape)
		case engine.PhaseLost:
			w.Cue(engine.CueDeath)
		default:
			return
		}
		LogSummary(w)
	})
}

func (s *OutcomeSystem) Update(w *engine.World, _ time.Duration) {
	if w.Sanity.Depleted() {
		w.Phase.Lose("sanity")
		return
	}
	if w.HasExit && !w.Player.Frozen && vmath.HorizontalDistance(w.Player.Position, w.Exit) <= s.exitRadius {
		w.Phase.Win("exit")
	}
}
