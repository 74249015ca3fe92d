// Package atmosphere maps game state to the atmosphere parameter bundle
// Every function here is pure: same inputs, same outputs, and every output is continuous in its inputs
package atmosphere

import (
	"github.com/chewxy/math32"

	"github.com/lixenwraith/dreadmaze/component"
	"github.com/lixenwraith/dreadmaze/parameter"
	"github.com/lixenwraith/dreadmaze/vmath"
)

// NoEnemy is the distance reported when no enemy exists
const NoEnemy = math32.MaxFloat32

// Inputs is everything the mapper reads
type Inputs struct {
	// SanityFraction is 1 - sanity/100
	SanityFraction float32

	// MinEnemyDistance is the nearest enemy distance, NoEnemy without enemies
	MinEnemyDistance float32

	// Elapsed is session time in seconds
	Elapsed float32

	// Noise holds zero-mean samples in [-1, 1]: flicker, jitter yaw, jitter pitch
	Noise [3]float32
}

// Laws holds the tuning constants of every mapping
type Laws struct {
	FogBase, FogGain float32

	VignetteBase, VignetteGain, VignetteProximityGain float32

	AberrationSanityGain, AberrationProximityGain float32

	JitterSanityGain, JitterProximityGain float32

	ProximityRadius float32

	FlickerBase, FlickerDepth, FlickerNoiseGain, FlickerFloor float32
	FlickerFreq                                               [3]float32
	FlickerWeight                                             [3]float32

	ViewRadiusMax, ViewRadiusScale float32

	HeartbeatSanityGain float32
}

// DefaultLaws returns the stock tuning
func DefaultLaws() Laws {
	return Laws{
		FogBase:                 parameter.FogBase,
		FogGain:                 parameter.FogGain,
		VignetteBase:            parameter.VignetteBase,
		VignetteGain:            parameter.VignetteGain,
		VignetteProximityGain:   parameter.VignetteProximityGain,
		AberrationSanityGain:    parameter.AberrationSanityGain,
		AberrationProximityGain: parameter.AberrationProximityGain,
		JitterSanityGain:        parameter.JitterSanityGain,
		JitterProximityGain:     parameter.JitterProximityGain,
		ProximityRadius:         parameter.ProximityRadius,
		FlickerBase:             parameter.FlickerBase,
		FlickerDepth:            parameter.FlickerDepth,
		FlickerNoiseGain:        parameter.FlickerNoiseGain,
		FlickerFloor:            parameter.FlickerFloor,
		FlickerFreq:             [3]float32{parameter.FlickerFreqA, parameter.FlickerFreqB, parameter.FlickerFreqC},
		FlickerWeight:           [3]float32{parameter.FlickerWeightA, parameter.FlickerWeightB, parameter.FlickerWeightC},
		ViewRadiusMax:           parameter.ViewRadiusMax,
		ViewRadiusScale:         parameter.ViewRadiusScale,
		HeartbeatSanityGain:     parameter.HeartbeatSanityGain,
	}
}

var defaultLaws = DefaultLaws()

// Map applies the stock laws
func Map(in Inputs) component.AtmosphereParams {
	return defaultLaws.Map(in)
}

// ProximityFactor is max(0, 1 - d/radius): 1 at contact, 0 at or beyond radius
func ProximityFactor(d, radius float32) float32 {
	if radius <= 0 {
		return 0
	}
	return vmath.Clamp01(1 - d/radius)
}

// Map recomputes the full bundle from inputs
func (l Laws) Map(in Inputs) component.AtmosphereParams {
	sf := vmath.Clamp01(in.SanityFraction)
	sf2 := sf * sf
	pf := ProximityFactor(in.MinEnemyDistance, l.ProximityRadius)

	fog := l.FogBase + sf*l.FogGain
	jitter := sf2*l.JitterSanityGain + pf*l.JitterProximityGain
	light := l.Flicker(sf, in.Elapsed, in.Noise[0])

	return component.AtmosphereParams{
		SanityFraction:  sf,
		ProximityFactor: pf,
		Fog:             fog,
		Vignette:        l.VignetteBase + sf2*l.VignetteGain + pf*l.VignetteProximityGain,
		Aberration:      sf2*l.AberrationSanityGain + pf*l.AberrationProximityGain,
		Jitter:          jitter,
		JitterYaw:       jitter * vmath.Clamp(in.Noise[1], -1, 1),
		JitterPitch:     jitter * vmath.Clamp(in.Noise[2], -1, 1),
		Light:           light,
		ViewRadius:      l.ViewRadiusMax * light / (1 + fog*l.ViewRadiusScale),
		Heartbeat:       math32.Max(pf, sf2*l.HeartbeatSanityGain),
		Drone:           sf,
	}
}

// Flicker is the light intensity: a fixed sinusoid mix deepened by lost sanity plus a sanity-scaled random term
func (l Laws) Flicker(sanityFraction, t, noise float32) float32 {
	var wave float32
	for i := range l.FlickerFreq {
		wave += l.FlickerWeight[i] * vmath.Wave(l.FlickerFreq[i], t)
	}

	v := l.FlickerBase -
		l.FlickerDepth*(1+sanityFraction)*wave -
		vmath.Clamp(noise, -1, 1)*sanityFraction*l.FlickerNoiseGain

	return math32.Max(v, l.FlickerFloor)
}
