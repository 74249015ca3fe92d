package parameter

import "time"

// Dread Scheduler
const (
	// DreadDrainDefault is the uniform drain applied when a message carries no drain of its own
	DreadDrainDefault = 6.25

	// DreadInterval is the period between time-interval triggers
	DreadInterval = 20 * time.Second

	// DreadDistanceInterval is the walked distance between distance-interval triggers
	DreadDistanceInterval = 6.0

	// DreadInitialDelay is the delay after Playing begins before the scheduler arms
	DreadInitialDelay = 8 * time.Second
)

// Overlay Display Timing
// Display duration = base + perRune * len(text), capped at max
const (
	DisplayBaseDuration    = 2 * time.Second
	DisplayPerRuneDuration = 60 * time.Millisecond
	DisplayMaxDuration     = 7 * time.Second
)

// Intro Sequence
const (
	// IntroDelay is the scripted length of the Intro phase before Playing
	IntroDelay = 9 * time.Second

	// IntroLineSpacing is the time between consecutive intro lines
	IntroLineSpacing = 3 * time.Second
)
