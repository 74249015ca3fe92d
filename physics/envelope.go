package physics

import (
	"github.com/ethaniccc/float32-cube/cube"
	"github.com/go-gl/mathgl/mgl32"
)

// Envelope is an entity's collision volume: a vertical capsule approximated by its bounding box
// Position is the foot point (bottom center)
type Envelope struct {
	Radius float32
	Height float32
}

// Box returns the envelope's bounding box at pos
func (e Envelope) Box(pos mgl32.Vec3) cube.BBox {
	return cube.Box(
		pos.X()-e.Radius, pos.Y(), pos.Z()-e.Radius,
		pos.X()+e.Radius, pos.Y()+e.Height, pos.Z()+e.Radius,
	)
}

// FootOf returns the foot point of a bounding box produced by Box
func FootOf(bb cube.BBox) mgl32.Vec3 {
	return mgl32.Vec3{
		(bb.Min().X() + bb.Max().X()) * 0.5,
		bb.Min().Y(),
		(bb.Min().Z() + bb.Max().Z()) * 0.5,
	}
}
