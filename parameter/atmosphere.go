package parameter

// Fog: density = base + sanityFraction * gain
const (
	FogBase = 0.02
	FogGain = 0.10
)

// Vignette: weight = base + sanityFraction^2 * gain + proximityFactor * proximityGain
const (
	VignetteBase          = 0.15
	VignetteGain          = 0.55
	VignetteProximityGain = 0.30
)

// Chromatic aberration: amount = sanityFraction^2 * k1 + proximityFactor * k2
const (
	AberrationSanityGain    = 0.012
	AberrationProximityGain = 0.008
)

// Camera jitter: magnitude = sanityFraction^2 * k3 + proximityFactor * k4 (radians)
const (
	JitterSanityGain    = 0.020
	JitterProximityGain = 0.035
)

// ProximityRadius normalizes enemy distance into the proximity factor
const ProximityRadius = 10.0

// Light flicker
// intensity = base - depth*(1+sanityFraction)*wave(t) - noise*sanityFraction*noiseGain
const (
	FlickerBase      = 1.0
	FlickerDepth     = 0.06
	FlickerNoiseGain = 0.18
	FlickerFreqA     = 1.7 // Hz
	FlickerFreqB     = 4.3
	FlickerFreqC     = 11.1
	FlickerWeightA   = 0.5
	FlickerWeightB   = 0.3
	FlickerWeightC   = 0.2

	// FlickerFloor is the minimum light intensity
	FlickerFloor = 0.2
)

// Heartbeat layer level = max(proximityFactor, sanityFraction^2 * gain)
const HeartbeatSanityGain = 0.5

// View radius for the top-down renderer: radius = max / (1 + fogDensity*scale)
const (
	ViewRadiusMax   = 9.0
	ViewRadiusScale = 30.0
)
