package physics

import (
	"github.com/chewxy/math32"
	"github.com/ethaniccc/float32-cube/cube"
	"github.com/go-gl/mathgl/mgl32"
)

// contactEpsilon snaps near-zero penetrations to exact contact
const contactEpsilon = 1e-6

type clipResult struct {
	penetration           float32
	clippedVelocity       mgl32.Vec3
	depenetratingVelocity mgl32.Vec3
}

// ClipVelocity clips the velocity of a moving box against a stationary one
// With oneWay the velocity is only clipped; otherwise an already-penetrating box is also pushed out
// along the axis of least penetration
func ClipVelocity(stationary, moving cube.BBox, vel mgl32.Vec3, oneWay bool) mgl32.Vec3 {
	res := clip(stationary, moving, vel)
	if oneWay {
		return res.clippedVelocity
	}
	return res.depenetratingVelocity
}

func clip(stationary, moving cube.BBox, velocity mgl32.Vec3) (res clipResult) {
	res.clippedVelocity = velocity
	res.depenetratingVelocity = velocity

	if stationary.Min() == stationary.Max() {
		return
	}

	var axisPen, axisPenSigned, normal [3]float32
	separating, separatingAxis := 0, 0
	minPen := float32(math32.MaxFloat32)

	for i := 0; i < 3; i++ {
		lo := moving.Max()[i] - stationary.Min()[i]
		hi := stationary.Max()[i] - moving.Min()[i]
		if math32.Abs(lo) <= contactEpsilon {
			lo = 0
		}
		if math32.Abs(hi) <= contactEpsilon {
			hi = 0
		}

		loPos := math32.Max(0, lo)
		hiPos := math32.Max(0, hi)

		switch {
		case loPos == 0:
			axisPenSigned[i] = lo
			normal[i] = -1
			separating++
			separatingAxis = i
		case hiPos == 0:
			axisPenSigned[i] = hi
			normal[i] = 1
			separating++
			separatingAxis = i
		case loPos < hiPos:
			axisPen[i] = loPos
			axisPenSigned[i] = loPos
			normal[i] = -1
		default:
			axisPen[i] = hiPos
			axisPenSigned[i] = hiPos
			normal[i] = 1
		}

		// Separated on two axes: the sweep along a single axis can never meet this box
		if separating > 1 {
			return
		}
		minPen = math32.Min(minPen, axisPen[i])
	}

	if separating == 0 {
		res.penetration = minPen
		best := 0
		for i := 1; i < 3; i++ {
			if axisPen[i] < axisPen[best] {
				best = i
			}
		}
		push := axisPen[best] * normal[best]
		if push > 0 {
			res.depenetratingVelocity[best] = math32.Max(push, velocity[best])
		} else {
			res.depenetratingVelocity[best] = math32.Min(push, velocity[best])
		}
		return
	}

	swept := axisPenSigned[separatingAxis] - normal[separatingAxis]*velocity[separatingAxis]
	if swept <= 0 {
		return
	}

	resolved := axisPenSigned[separatingAxis] * normal[separatingAxis]
	res.clippedVelocity[separatingAxis] = resolved
	res.depenetratingVelocity[separatingAxis] = resolved
	return
}
