package component

import "github.com/go-gl/mathgl/mgl32"

// Orb is a sanity pickup, consumed once
type Orb struct {
	Position  mgl32.Vec3
	Restore   float32
	Collected bool
}
