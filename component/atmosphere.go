package component

// AtmosphereParams is the per-frame derived atmosphere bundle
// Always fully recomputed, never mutated in place
type AtmosphereParams struct {
	// Inputs echoed for consumers
	SanityFraction  float32
	ProximityFactor float32

	Fog        float32
	Vignette   float32
	Aberration float32

	// Jitter is the shake magnitude, JitterYaw and JitterPitch the bounded zero-mean offset applied this frame
	Jitter      float32
	JitterYaw   float32
	JitterPitch float32

	// Light is the flickering light intensity multiplier
	Light float32

	// ViewRadius is how far the player can see, in world units
	ViewRadius float32

	// Heartbeat and Drone are audio mix levels in [0, 1]
	Heartbeat float32
	Drone     float32
}
