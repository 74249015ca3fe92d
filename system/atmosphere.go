package system

import (
	"time"

	"github.com/lixenwraith/dreadmaze/atmosphere"
	"github.com/lixenwraith/dreadmaze/engine"
	"github.com/lixenwraith/dreadmaze/parameter"
)

// AtmosphereSystem recomputes the atmosphere bundle and feeds the continuous audio mix
type AtmosphereSystem struct {
	laws   atmosphere.Laws
	warned map[string]bool
}

// NewAtmosphereSystem creates an atmosphere system with the given laws
func NewAtmosphereSystem(laws atmosphere.Laws) *AtmosphereSystem {
	return &AtmosphereSystem{
		laws:   laws,
		warned: make(map[string]bool),
	}
}

// Name returns system's name
func (s *AtmosphereSystem) Name() string {
	return "atmosphere"
}

func (s *AtmosphereSystem) Priority() int {
	return parameter.PriorityAtmosphere
}

// Phases keeps the atmosphere alive on the end screens
func (s *AtmosphereSystem) Phases() engine.PhaseMask {
	return engine.MaskOf(engine.PhaseIntro, engine.PhasePlaying, engine.PhaseWon, engine.PhaseLost)
}

func (s *AtmosphereSystem) Update(w *engine.World, _ time.Duration) {
	in := atmosphere.Inputs{
		SanityFraction:   w.Sanity.Fraction(),
		MinEnemyDistance: w.Proximity,
		Elapsed:          engine.Seconds(w.Elapsed),
		Noise: [3]float32{
			w.Rng.Float32()*2 - 1,
			w.Rng.Float32()*2 - 1,
			w.Rng.Float32()*2 - 1,
		},
	}
	w.Atmosphere = s.laws.Map(in)

	s.setLevel(w, engine.CueHeartbeat, w.Atmosphere.Heartbeat)
	s.setLevel(w, engine.CueDrone, w.Atmosphere.Drone)
}

// setLevel logs a failing cue once instead of every frame
func (s *AtmosphereSystem) setLevel(w *engine.World, cue string, level float32) {
	if err := w.Cues.SetLevel(cue, level); err != nil && !s.warned[cue] {
		s.warned[cue] = true
		w.Logger.Warn("cue unavailable", "cue", cue, "error", err)
	}
}
