package audio

import (
	"errors"
	"fmt"

	"github.com/elliotchance/orderedmap/v2"
	"github.com/gopxl/beep"

	"github.com/lixenwraith/dreadmaze/engine"
	"github.com/lixenwraith/dreadmaze/parameter"
)

var (
	ErrUnknownCue   = errors.New("unknown cue")
	ErrWrongCueKind = errors.New("cue kind does not support operation")
	ErrDuplicateCue = errors.New("cue already registered")
)

// CueKind selects how a cue is driven
type CueKind int

const (
	// KindOneShot plays a finite sound on every Play
	KindOneShot CueKind = iota
	// KindLoop is an endless sound toggled by Loop and Stop
	KindLoop
	// KindLayer is an endless sound that runs from start and is shaped by SetLevel
	KindLayer
)

func (k CueKind) String() string {
	switch k {
	case KindOneShot:
		return "oneshot"
	case KindLoop:
		return "loop"
	case KindLayer:
		return "layer"
	}
	return "unknown"
}

// Continuous reports whether the kind is endless
func (k CueKind) Continuous() bool {
	return k == KindLoop || k == KindLayer
}

// Cue is a named sound recipe
type Cue struct {
	Name string
	Kind CueKind
	// Volume is the effects.Volume exponent at full level, base 2
	Volume float64
	Build  func(rate beep.SampleRate) beep.Streamer
}

// Bank is the cue registry in registration order
type Bank struct {
	cues *orderedmap.OrderedMap[string, Cue]
}

// NewBank creates an empty bank
func NewBank() *Bank {
	return &Bank{cues: orderedmap.NewOrderedMap[string, Cue]()}
}

// Register adds a cue; names are unique
func (b *Bank) Register(c Cue) error {
	if c.Build == nil {
		return fmt.Errorf("cue %q: no builder", c.Name)
	}
	if _, ok := b.cues.Get(c.Name); ok {
		return fmt.Errorf("%w: %s", ErrDuplicateCue, c.Name)
	}
	b.cues.Set(c.Name, c)
	return nil
}

// Lookup finds a cue by name
func (b *Bank) Lookup(name string) (Cue, error) {
	c, ok := b.cues.Get(name)
	if !ok {
		return Cue{}, fmt.Errorf("%w: %s", ErrUnknownCue, name)
	}
	return c, nil
}

// Names lists cues in registration order
func (b *Bank) Names() []string {
	names := make([]string, 0, b.cues.Len())
	for el := b.cues.Front(); el != nil; el = el.Next() {
		names = append(names, el.Key)
	}
	return names
}

// Len returns the number of cues
func (b *Bank) Len() int {
	return b.cues.Len()
}

// DefaultBank registers every cue the game systems emit
func DefaultBank() *Bank {
	b := NewBank()
	for _, c := range []Cue{
		{Name: engine.CueFootsteps, Kind: KindLoop, Volume: parameter.FootstepsVolume, Build: func(r beep.SampleRate) beep.Streamer {
			return NewPulse(parameter.FootstepPeriod, r, func() beep.Streamer { return footfall(r) })
		}},
		{Name: engine.CueHeartbeat, Kind: KindLayer, Volume: parameter.HeartbeatMaxVolume, Build: func(r beep.SampleRate) beep.Streamer {
			return NewPulse(parameter.HeartbeatPeriod, r, func() beep.Streamer { return heartbeat(r) })
		}},
		{Name: engine.CueDrone, Kind: KindLayer, Volume: parameter.DroneMaxVolume, Build: droneStream},
		{Name: engine.CueWhisper, Kind: KindOneShot, Build: func(r beep.SampleRate) beep.Streamer {
			return whisper(r, parameter.WhisperDuration)
		}},
		{Name: engine.CueCaught, Kind: KindOneShot, Build: func(r beep.SampleRate) beep.Streamer {
			return beep.Mix(
				sting(r, 900, -500, WaveSaw, 0.35, parameter.CaughtDuration),
				sting(r, 0, 0, WaveNoise, 0.2, parameter.CaughtDuration),
			)
		}},
		{Name: engine.CueOrb, Kind: KindOneShot, Build: func(r beep.SampleRate) beep.Streamer {
			return sting(r, 660, 800, WaveSine, 0.3, parameter.OrbDuration)
		}},
		{Name: engine.CueEscape, Kind: KindOneShot, Build: func(r beep.SampleRate) beep.Streamer {
			return beep.Mix(
				sting(r, 392, 60, WaveSine, 0.25, parameter.EscapeDuration),
				sting(r, 523.25, 60, WaveSine, 0.2, parameter.EscapeDuration),
			)
		}},
		{Name: engine.CueDeath, Kind: KindOneShot, Build: func(r beep.SampleRate) beep.Streamer {
			return sting(r, 110, -35, WaveSaw, 0.4, parameter.DeathDuration)
		}},
	} {
		// Static table; names are distinct
		_ = b.Register(c)
	}
	return b
}
