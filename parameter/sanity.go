package parameter

// Sanity Resource
const (
	// SanityMax is the upper bound and initial value of sanity
	SanityMax = 100.0

	// SanityMin is the lower bound; reaching it loses the session
	SanityMin = 0.0
)

// Orb Pickups
const (
	// OrbRestoreAmount is the sanity restored by one orb
	OrbRestoreAmount = 15.0

	// OrbPickupRadius is the horizontal distance at which an orb is collected
	OrbPickupRadius = 0.6

	// OrbDefaultCount is the number of orbs placed when a scenario enables orbs without positions
	OrbDefaultCount = 6
)

// Exit
const (
	// ExitRadius is the horizontal distance to the exit that wins the session
	ExitRadius = 0.6
)
