package parameter

// Maze Layout
const (
	// MazeWidth and MazeHeight are tile counts (rounded down to odd)
	MazeWidth  = 41
	MazeHeight = 21

	// MazeBraiding is the dead-end removal probability
	MazeBraiding = 0.35

	// TileSize is the world-space edge length of one tile
	TileSize = 1.0

	// WallHeight is the world-space height of wall boxes
	WallHeight = 3.0

	// FloorDepth is the thickness of the floor slab below the ground plane
	FloorDepth = 1.0

	// BroadphaseCellSize is the collision grid cell edge in world units
	BroadphaseCellSize = 2.0

	// OrbMinSpawnTiles keeps orbs off the start corridor
	OrbMinSpawnTiles = 3
)
