package maze

import "math/rand"

// Tile types
const (
	Wall    = true
	Passage = false
)

// Point is a tile coordinate; Y grows downward on screen and along +Z in world space
type Point struct {
	X, Y int
}

var (
	orthoDirs = []Point{{0, -1}, {0, 1}, {-1, 0}, {1, 0}}
	jumpDirs  = []Point{{0, -2}, {0, 2}, {-2, 0}, {2, 0}}
)

// Config controls dungeon generation
type Config struct {
	Width, Height int

	// Braiding: 0.0 (perfect maze, every corridor a dead end) to 1.0 (no dead ends)
	// Plaza and pillar constraints take precedence
	Braiding float64

	StartPos *Point // Optional (nil = top-left room)
	EndPos   *Point // Optional (nil = bottom-right room)
}

// Grid is a generated dungeon, indexed [y][x]
type Grid struct {
	Cells      [][]bool
	Start, End Point
}

// Width returns the tile column count
func (g *Grid) Width() int {
	if len(g.Cells) == 0 {
		return 0
	}
	return len(g.Cells[0])
}

// Height returns the tile row count
func (g *Grid) Height() int {
	return len(g.Cells)
}

// InBounds reports whether p lies on the grid
func (g *Grid) InBounds(p Point) bool {
	return p.X >= 0 && p.Y >= 0 && p.Y < g.Height() && p.X < g.Width()
}

// IsWall reports whether p is a wall; out of bounds counts as wall
func (g *Grid) IsWall(p Point) bool {
	if !g.InBounds(p) {
		return true
	}
	return g.Cells[p.Y][p.X] == Wall
}

// Generate carves a dungeon with a recursive backtracker, then braids dead ends into loops
// All randomness comes from rng, so a seed reproduces the same dungeon
func Generate(cfg Config, rng *rand.Rand) *Grid {
	rows := ensureOdd(cfg.Height)
	cols := ensureOdd(cfg.Width)

	cells := make([][]bool, rows)
	for y := range cells {
		cells[y] = make([]bool, cols)
		for x := range cells[y] {
			cells[y][x] = Wall
		}
	}

	g := &Grid{
		Cells: cells,
		Start: resolvePoint(rows, cols, cfg.StartPos, 1, 1),
		End:   resolvePoint(rows, cols, cfg.EndPos, cols-2, rows-2),
	}

	carve(g, g.Start, rng)
	if cfg.Braiding > 0 {
		braid(g, cfg.Braiding, rng)
	}

	forceOpen(g, g.Start)
	forceOpen(g, g.End)

	return g
}

// carve generates a uniform spanning tree over odd tiles from start
func carve(g *Grid, start Point, rng *rand.Rand) {
	rows, cols := g.Height(), g.Width()
	if start.X <= 0 || start.X >= cols-1 || start.Y <= 0 || start.Y >= rows-1 {
		start = Point{1, 1}
	}

	stack := []Point{start}
	g.Cells[start.Y][start.X] = Passage

	candidates := make([]Point, 0, 4)
	for len(stack) > 0 {
		curr := stack[len(stack)-1]
		candidates = candidates[:0]

		for _, d := range jumpDirs {
			nx, ny := curr.X+d.X, curr.Y+d.Y
			// Leave a one-tile wall border
			if nx > 0 && nx < cols-1 && ny > 0 && ny < rows-1 && g.Cells[ny][nx] == Wall {
				candidates = append(candidates, d)
			}
		}

		if len(candidates) == 0 {
			stack = stack[:len(stack)-1]
			continue
		}

		d := candidates[rng.Intn(len(candidates))]
		g.Cells[curr.Y+d.Y/2][curr.X+d.X/2] = Passage
		next := Point{curr.X + d.X, curr.Y + d.Y}
		g.Cells[next.Y][next.X] = Passage
		stack = append(stack, next)
	}
}

// braid opens a wall at dead ends with the given probability, creating loops
func braid(g *Grid, probability float64, rng *rand.Rand) {
	rows, cols := g.Height(), g.Width()

	for y := 1; y < rows-1; y += 2 {
		for x := 1; x < cols-1; x += 2 {
			if g.Cells[y][x] == Wall {
				continue
			}

			exits := 0
			for _, d := range orthoDirs {
				if g.Cells[y+d.Y][x+d.X] == Passage {
					exits++
				}
			}
			if exits != 1 || rng.Float64() >= probability {
				continue
			}

			var candidates []Point
			for _, jd := range jumpDirs {
				n := Point{x + jd.X, y + jd.Y}
				w := Point{x + jd.X/2, y + jd.Y/2}
				if g.InBounds(n) && !g.IsWall(n) && g.IsWall(w) && canSafelyRemoveWall(g, w) {
					candidates = append(candidates, w)
				}
			}
			if len(candidates) > 0 {
				c := candidates[rng.Intn(len(candidates))]
				g.Cells[c.Y][c.X] = Passage
			}
		}
	}
}

// canSafelyRemoveWall rejects removals that create a 2x2 open plaza or an isolated pillar
func canSafelyRemoveWall(g *Grid, w Point) bool {
	open := func(x, y int) bool {
		p := Point{x, y}
		return g.InBounds(p) && !g.IsWall(p)
	}
	x, y := w.X, w.Y

	if open(x-1, y-1) && open(x, y-1) && open(x-1, y) {
		return false
	}
	if open(x, y-1) && open(x+1, y-1) && open(x+1, y) {
		return false
	}
	if open(x-1, y) && open(x-1, y+1) && open(x, y+1) {
		return false
	}
	if open(x+1, y) && open(x, y+1) && open(x+1, y+1) {
		return false
	}

	for _, d := range orthoDirs {
		n := Point{x + d.X, y + d.Y}
		if !g.InBounds(n) || !g.IsWall(n) {
			continue
		}
		links := 0
		for _, d2 := range orthoDirs {
			nn := Point{n.X + d2.X, n.Y + d2.Y}
			if nn == w {
				continue
			}
			if g.InBounds(nn) && g.IsWall(nn) {
				links++
			}
		}
		if links == 0 {
			return false
		}
	}

	return true
}

func ensureOdd(n int) int {
	if n < 3 {
		return 3
	}
	if n%2 == 0 {
		return n - 1
	}
	return n
}

func resolvePoint(rows, cols int, p *Point, defX, defY int) Point {
	if p == nil {
		return Point{defX, defY}
	}
	x := min(max(p.X, 0), cols-1)
	y := min(max(p.Y, 0), rows-1)
	return Point{x, y}
}

// forceOpen makes p walkable and connects it to a neighbor if it would be isolated
func forceOpen(g *Grid, p Point) {
	if !g.InBounds(p) {
		return
	}
	g.Cells[p.Y][p.X] = Passage

	for _, d := range orthoDirs {
		n := Point{p.X + d.X, p.Y + d.Y}
		if g.InBounds(n) && !g.IsWall(n) {
			return
		}
	}
	for _, d := range orthoDirs {
		n := Point{p.X + d.X, p.Y + d.Y}
		if n.X > 0 && n.X < g.Width()-1 && n.Y > 0 && n.Y < g.Height()-1 {
			g.Cells[n.Y][n.X] = Passage
			return
		}
	}
}

// Distances returns BFS step distances from origin over passages; unreachable tiles are -1
func (g *Grid) Distances(origin Point) [][]int {
	dist := make([][]int, g.Height())
	for y := range dist {
		dist[y] = make([]int, g.Width())
		for x := range dist[y] {
			dist[y][x] = -1
		}
	}
	if g.IsWall(origin) {
		return dist
	}

	dist[origin.Y][origin.X] = 0
	queue := []Point{origin}
	for len(queue) > 0 {
		curr := queue[0]
		queue = queue[1:]
		for _, d := range orthoDirs {
			n := Point{curr.X + d.X, curr.Y + d.Y}
			if g.IsWall(n) || dist[n.Y][n.X] >= 0 {
				continue
			}
			dist[n.Y][n.X] = dist[curr.Y][curr.X] + 1
			queue = append(queue, n)
		}
	}
	return dist
}
