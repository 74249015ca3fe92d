package parameter

import "time"

// Game Loop & Engine Timing
const (
	// FrameUpdateInterval is the target frame interval (~30 FPS, terminal refresh bound)
	FrameUpdateInterval = 33 * time.Millisecond

	// MaxFrameDelta caps a single frame's delta so a stall does not inject a huge step into feedback loops
	MaxFrameDelta = 100 * time.Millisecond

	// PostQueueSize is the capacity of the command queue posted from the input goroutine to the loop
	PostQueueSize = 64
)
