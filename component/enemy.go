package component

import (
	"github.com/go-gl/mathgl/mgl32"

	"github.com/lixenwraith/dreadmaze/physics"
)

// EnemyState is one pursuer; enemies are relocated, never destroyed
type EnemyState struct {
	ID       int
	Spawn    mgl32.Vec3
	Position mgl32.Vec3
	Facing   mgl32.Vec3

	BaseSpeed float32

	// Solid enemies move through the collider; phasing enemies ignore walls
	Solid    bool
	Envelope physics.Envelope

	// Distance to the player sampled this frame
	Distance float32

	Teleports int
}

// NewEnemyState places an enemy at its spawn point
func NewEnemyState(id int, spawn mgl32.Vec3, speed float32, solid bool, env physics.Envelope) *EnemyState {
	return &EnemyState{
		ID:        id,
		Spawn:     spawn,
		Position:  spawn,
		Facing:    mgl32.Vec3{0, 0, 1},
		BaseSpeed: speed,
		Solid:     solid,
		Envelope:  env,
	}
}
