package parameter

import "time"

// Audio Engine
const (
	// AudioSampleRate is the speaker sample rate
	AudioSampleRate = 48000

	// AudioBufferDuration is the speaker buffer length
	AudioBufferDuration = 100 * time.Millisecond
)

// Cue Durations
const (
	WhisperDuration = 1800 * time.Millisecond
	CaughtDuration  = 1400 * time.Millisecond
	OrbDuration     = 450 * time.Millisecond
	EscapeDuration  = 1600 * time.Millisecond
	DeathDuration   = 2500 * time.Millisecond
)

// Continuous Mix
const (
	// DroneMaxVolume and HeartbeatMaxVolume are the beep effects.Volume exponents at full intensity
	DroneMaxVolume     = 0.0
	HeartbeatMaxVolume = 0.5

	// MixSilentBelow mutes a continuous layer when its level falls under this threshold
	MixSilentBelow = 0.02
)

// Continuous Cue Rhythm
const (
	// FootstepPeriod is the time between footfalls while walking
	FootstepPeriod = 480 * time.Millisecond
	// HeartbeatPeriod is one lub-dub cycle
	HeartbeatPeriod = 900 * time.Millisecond
	// FootstepsVolume is the walking loop exponent
	FootstepsVolume = -1.0
)
