package physics

import (
	"slices"

	"github.com/chewxy/math32"
	"github.com/ethaniccc/float32-cube/cube"
	"github.com/go-gl/mathgl/mgl32"
)

// broadphaseMargin grows the swept region when gathering candidate boxes
const broadphaseMargin = 0.05

type cellKey struct{ x, z int }

// World is immutable static geometry with a uniform XZ grid broadphase
// Safe for concurrent reads after construction
type World struct {
	boxes    []cube.BBox
	cellSize float32
	cells    map[cellKey][]int
}

// NewWorld indexes the given static boxes; cellSize is the broadphase cell edge
func NewWorld(boxes []cube.BBox, cellSize float32) *World {
	if cellSize <= 0 {
		cellSize = 1
	}
	w := &World{
		boxes:    append([]cube.BBox(nil), boxes...),
		cellSize: cellSize,
		cells:    make(map[cellKey][]int),
	}
	for i, bb := range w.boxes {
		w.forCells(bb, func(k cellKey) {
			w.cells[k] = append(w.cells[k], i)
		})
	}
	return w
}

// Boxes returns the static geometry
func (w *World) Boxes() []cube.BBox {
	return w.boxes
}

func (w *World) forCells(bb cube.BBox, fn func(cellKey)) {
	minX := int(math32.Floor(bb.Min().X() / w.cellSize))
	maxX := int(math32.Floor(bb.Max().X() / w.cellSize))
	minZ := int(math32.Floor(bb.Min().Z() / w.cellSize))
	maxZ := int(math32.Floor(bb.Max().Z() / w.cellSize))
	for x := minX; x <= maxX; x++ {
		for z := minZ; z <= maxZ; z++ {
			fn(cellKey{x, z})
		}
	}
}

// nearby returns boxes intersecting region, each once, in index order
func (w *World) nearby(region cube.BBox) []cube.BBox {
	seen := make(map[int]struct{})
	var idx []int
	w.forCells(region, func(k cellKey) {
		for _, i := range w.cells[k] {
			if _, ok := seen[i]; ok {
				continue
			}
			seen[i] = struct{}{}
			if w.boxes[i].IntersectsWith(region) {
				idx = append(idx, i)
			}
		}
	})
	slices.Sort(idx)
	out := make([]cube.BBox, len(idx))
	for j, i := range idx {
		out[j] = w.boxes[i]
	}
	return out
}

// Move resolves a swept move of env from pos by delta against static geometry
// Returns the resolved displacement; the mover slides along obstructions and never penetrates them
// Axes resolve in Y, X, Z order
func (w *World) Move(env Envelope, pos, delta mgl32.Vec3) mgl32.Vec3 {
	bb := env.Box(pos)
	candidates := w.nearby(bb.Extend(delta).Grow(broadphaseMargin))
	if len(candidates) == 0 {
		return delta
	}

	yVel := mgl32.Vec3{0, delta.Y(), 0}
	for _, c := range candidates {
		yVel = ClipVelocity(c, bb, yVel, false)
	}
	bb = bb.Translate(yVel)

	xVel := mgl32.Vec3{delta.X(), 0, 0}
	for _, c := range candidates {
		xVel = ClipVelocity(c, bb, xVel, false)
	}
	bb = bb.Translate(xVel)

	zVel := mgl32.Vec3{0, 0, delta.Z()}
	for _, c := range candidates {
		zVel = ClipVelocity(c, bb, zVel, false)
	}

	return yVel.Add(xVel).Add(zVel)
}

// Overlaps reports whether env at pos intersects any static box (touching does not count)
func (w *World) Overlaps(env Envelope, pos mgl32.Vec3) bool {
	bb := env.Box(pos)
	return len(w.nearby(bb)) > 0
}
