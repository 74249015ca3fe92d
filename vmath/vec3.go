package vmath

import (
	"github.com/chewxy/math32"
	"github.com/go-gl/mathgl/mgl32"
)

// Epsilon is the squared-length threshold under which a vector is treated as zero
const Epsilon = 1e-12

// Flatten zeroes the vertical component
func Flatten(v mgl32.Vec3) mgl32.Vec3 {
	return mgl32.Vec3{v.X(), 0, v.Z()}
}

// SafeNormalize returns the unit vector of v, or the zero vector when v has no length
// mgl32 Normalize divides by zero on a zero vector
func SafeNormalize(v mgl32.Vec3) mgl32.Vec3 {
	l2 := v.LenSqr()
	if l2 <= Epsilon {
		return mgl32.Vec3{}
	}
	return v.Mul(1 / math32.Sqrt(l2))
}

// FlatNormalize flattens v and re-normalizes it
func FlatNormalize(v mgl32.Vec3) mgl32.Vec3 {
	return SafeNormalize(Flatten(v))
}

// HorizontalDistance returns the XZ-plane distance between a and b
func HorizontalDistance(a, b mgl32.Vec3) float32 {
	dx := b.X() - a.X()
	dz := b.Z() - a.Z()
	return math32.Sqrt(dx*dx + dz*dz)
}

// HorizontalLen returns the XZ-plane length of v
func HorizontalLen(v mgl32.Vec3) float32 {
	return math32.Sqrt(v.X()*v.X() + v.Z()*v.Z())
}

// PolarOffset returns (cos θ, 0, sin θ) * r
func PolarOffset(theta, r float32) mgl32.Vec3 {
	return mgl32.Vec3{math32.Cos(theta) * r, 0, math32.Sin(theta) * r}
}

// Yaw returns the heading angle of a horizontal direction, 0 along +X, counter-clockwise towards +Z
func Yaw(dir mgl32.Vec3) float32 {
	return math32.Atan2(dir.Z(), dir.X())
}
