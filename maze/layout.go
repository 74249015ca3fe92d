package maze

import (
	"math/rand"

	"github.com/ethaniccc/float32-cube/cube"
	"github.com/go-gl/mathgl/mgl32"
)

// Layout is a grid placed in world space: tile (x, y) spans [x, x+1)*TileSize along X and [y, y+1)*TileSize along Z
type Layout struct {
	Grid       *Grid
	TileSize   float32
	WallHeight float32

	Walls []cube.BBox
	Floor cube.BBox

	Start mgl32.Vec3
	Exit  mgl32.Vec3

	// Passage tile centers reachable from Start, nearest first
	Reachable []Point
	distance  [][]int
}

// NewLayout converts a grid into static geometry
// Horizontal wall runs merge into single boxes to keep the collision world small
func NewLayout(g *Grid, tileSize, wallHeight, floorDepth float32) *Layout {
	l := &Layout{
		Grid:       g,
		TileSize:   tileSize,
		WallHeight: wallHeight,
	}

	for y := 0; y < g.Height(); y++ {
		x := 0
		for x < g.Width() {
			if !g.Cells[y][x] {
				x++
				continue
			}
			runStart := x
			for x < g.Width() && g.Cells[y][x] {
				x++
			}
			l.Walls = append(l.Walls, cube.Box(
				float32(runStart)*tileSize, 0, float32(y)*tileSize,
				float32(x)*tileSize, wallHeight, float32(y+1)*tileSize,
			))
		}
	}

	l.Floor = cube.Box(0, -floorDepth, 0, float32(g.Width())*tileSize, 0, float32(g.Height())*tileSize)
	l.Start = l.Center(g.Start)
	l.Exit = l.Center(g.End)

	l.distance = g.Distances(g.Start)
	maxDist := 0
	for y := range l.distance {
		for _, d := range l.distance[y] {
			maxDist = max(maxDist, d)
		}
	}
	// Bucket by distance so Reachable is ordered without a sort
	buckets := make([][]Point, maxDist+1)
	for y := range l.distance {
		for x, d := range l.distance[y] {
			if d >= 0 {
				buckets[d] = append(buckets[d], Point{x, y})
			}
		}
	}
	for _, b := range buckets {
		l.Reachable = append(l.Reachable, b...)
	}

	return l
}

// Boxes returns walls and floor for the collision world
func (l *Layout) Boxes() []cube.BBox {
	out := make([]cube.BBox, 0, len(l.Walls)+1)
	out = append(out, l.Floor)
	return append(out, l.Walls...)
}

// Center returns the ground-level world position of a tile's center
func (l *Layout) Center(p Point) mgl32.Vec3 {
	return mgl32.Vec3{
		(float32(p.X) + 0.5) * l.TileSize,
		0,
		(float32(p.Y) + 0.5) * l.TileSize,
	}
}

// TileAt returns the tile containing a world position
func (l *Layout) TileAt(pos mgl32.Vec3) Point {
	return Point{
		X: floorDiv(pos.X(), l.TileSize),
		Y: floorDiv(pos.Z(), l.TileSize),
	}
}

// StepsFromStart returns the passage distance of p from the start tile, -1 if unreachable
func (l *Layout) StepsFromStart(p Point) int {
	if !l.Grid.InBounds(p) {
		return -1
	}
	return l.distance[p.Y][p.X]
}

// Scatter picks n distinct reachable tiles at least minSteps from the start, excluding Start and End
// Returns fewer than n when the dungeon is too small
func (l *Layout) Scatter(n, minSteps int, rng *rand.Rand) []mgl32.Vec3 {
	var pool []Point
	for _, p := range l.Reachable {
		if p == l.Grid.Start || p == l.Grid.End {
			continue
		}
		if l.distance[p.Y][p.X] >= minSteps {
			pool = append(pool, p)
		}
	}

	rng.Shuffle(len(pool), func(i, j int) { pool[i], pool[j] = pool[j], pool[i] })
	if n > len(pool) {
		n = len(pool)
	}

	out := make([]mgl32.Vec3, 0, n)
	for _, p := range pool[:n] {
		out = append(out, l.Center(p))
	}
	return out
}

func floorDiv(v, size float32) int {
	q := v / size
	i := int(q)
	if q < 0 && float32(i) != q {
		i--
	}
	return i
}
