package system

import (
	"time"

	"github.com/lixenwraith/dreadmaze/engine"
	"github.com/lixenwraith/dreadmaze/parameter"
	"github.com/lixenwraith/dreadmaze/vmath"
)

// PickupSystem collects orbs within reach and restores sanity
type PickupSystem struct {
	radius float32
}

// NewPickupSystem creates a pickup system with the given collection radius
func NewPickupSystem(radius float32) *PickupSystem {
	if radius <= 0 {
		radius = parameter.OrbPickupRadius
	}
	return &PickupSystem{radius: radius}
}

// Name returns system's name
func (s *PickupSystem) Name() string {
	return "pickup"
}

func (s *PickupSystem) Priority() int {
	return parameter.PriorityPickup
}

func (s *PickupSystem) Phases() engine.PhaseMask {
	return engine.MaskOf(engine.PhasePlaying)
}

func (s *PickupSystem) Update(w *engine.World, _ time.Duration) {
	for _, orb := range w.Orbs {
		if orb.Collected || vmath.HorizontalDistance(orb.Position, w.Player.Position) > s.radius {
			continue
		}

		orb.Collected = true
		w.Stats.OrbsCollected++
		after := w.Sanity.Restore(orb.Restore)
		w.Overlay.SetSanityDisplay(w.Sanity.Percent())
		w.Cue(engine.CueOrb)

		w.Logger.Info("orb collected", "restore", orb.Restore, "sanity", after, "collected", w.Stats.OrbsCollected)
	}
}
