package parameter

// Player Locomotion
const (
	// PlayerSpeed is horizontal walk speed in world units per second
	PlayerSpeed = 1.2

	// PlayerRadius is the horizontal half-extent of the collision envelope
	PlayerRadius = 0.25

	// PlayerHeight is the vertical extent of the collision envelope
	PlayerHeight = 1.7

	// GravityBias is the constant downward displacement appended to every move request
	GravityBias = 0.05

	// GroundY is the ground plane height; entities never rise above it
	GroundY = 0.0

	// MinFacingDisplacement is the resolved horizontal displacement below which facing is left unchanged
	MinFacingDisplacement = 1e-4
)
