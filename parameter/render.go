package parameter

// Top-down View
const (
	// TileColumns is the terminal cells per maze tile horizontally; cells are roughly twice as tall as wide
	TileColumns = 2
	// StatusBarRows is reserved at the bottom of the screen
	StatusBarRows = 1
	// JitterCellsPerRadian converts camera jitter into a whole-cell view shake
	JitterCellsPerRadian = 40.0
	// AberrationCells converts chromatic aberration into a channel offset in cells
	AberrationCells = 150.0
	// MinVisibleLight drops cells darker than this to black
	MinVisibleLight = 0.04
	// SanityBarWidth is the status bar gauge length in cells
	SanityBarWidth = 20
	// MessageMaxWidth wraps overlay messages
	MessageMaxWidth = 60
)
