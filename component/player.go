package component

import (
	"github.com/go-gl/mathgl/mgl32"

	"github.com/lixenwraith/dreadmaze/physics"
)

// PlayerState is the player avatar, written only by locomotion
type PlayerState struct {
	// Foot point in world space
	Position mgl32.Vec3

	// Horizontal unit vector of the latest resolved movement
	Facing mgl32.Vec3

	Moving bool

	Envelope physics.Envelope

	// Walked is the cumulative horizontal distance since session start, never decreases
	Walked float32

	// Frozen stops locomotion after the player is caught
	Frozen bool
}

// NewPlayerState places a player at start facing -Z
func NewPlayerState(start mgl32.Vec3, env physics.Envelope) *PlayerState {
	return &PlayerState{
		Position: start,
		Facing:   mgl32.Vec3{0, 0, -1},
		Envelope: env,
	}
}
